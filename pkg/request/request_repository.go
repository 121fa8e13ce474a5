package request

import (
	"Relief-Ops-Console/entities"
	"context"

	"gorm.io/gorm"
)

type (
	RequestRepository interface {
		CreateRequest(ctx context.Context, request *entities.DemandRequest) error
		GetRequestByID(ctx context.Context, id string) (*entities.DemandRequest, error)
		GetRequests(ctx context.Context) ([]*entities.DemandRequest, error)
		GetAllocatedQuantity(ctx context.Context, requestID string) (int, error)
		UpdateRequestStatus(ctx context.Context, id string, status string) error
		DeleteRequest(ctx context.Context, id string) error

		GetCandidateResources(ctx context.Context, resourceType string) ([]*entities.Resource, error)
		GetDisasterLocation(ctx context.Context, disasterID string) (*entities.DisasterLocation, error)
	}

	requestRepository struct {
		db *gorm.DB
	}
)

func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) CreateRequest(ctx context.Context, request *entities.DemandRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *requestRepository) GetRequestByID(ctx context.Context, id string) (*entities.DemandRequest, error) {
	var request entities.DemandRequest
	if err := r.db.WithContext(ctx).
		Preload("Disaster").
		Where("id = ?", id).
		First(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *requestRepository) GetRequests(ctx context.Context) ([]*entities.DemandRequest, error) {
	var requests []*entities.DemandRequest
	if err := r.db.WithContext(ctx).
		Preload("Disaster").
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *requestRepository) GetAllocatedQuantity(ctx context.Context, requestID string) (int, error) {
	var result struct {
		Total int
	}
	if err := r.db.WithContext(ctx).
		Model(&entities.Allocation{}).
		Select("COALESCE(SUM(allocated_quantity), 0) as total").
		Where("request_id = ? AND status <> ?", requestID, "Cancelled").
		Scan(&result).Error; err != nil {
		return 0, err
	}
	return result.Total, nil
}

func (r *requestRepository) UpdateRequestStatus(ctx context.Context, id string, status string) error {
	result := r.db.WithContext(ctx).
		Model(&entities.DemandRequest{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *requestRepository) DeleteRequest(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entities.DemandRequest{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *requestRepository) GetCandidateResources(ctx context.Context, resourceType string) ([]*entities.Resource, error) {
	var resources []*entities.Resource
	if err := r.db.WithContext(ctx).
		Preload("StorageLocation").
		Where("resource_type = ?", resourceType).
		Find(&resources).Error; err != nil {
		return nil, err
	}
	return resources, nil
}

func (r *requestRepository) GetDisasterLocation(ctx context.Context, disasterID string) (*entities.DisasterLocation, error) {
	var location entities.DisasterLocation
	if err := r.db.WithContext(ctx).
		Where("disaster_id = ?", disasterID).
		First(&location).Error; err != nil {
		return nil, err
	}
	return &location, nil
}
