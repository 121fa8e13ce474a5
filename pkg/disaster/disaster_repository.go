package disaster

import (
	"Relief-Ops-Console/entities"
	"context"

	"gorm.io/gorm"
)

type (
	DisasterRepository interface {
		CreateDisaster(ctx context.Context, disaster *entities.Disaster) error
		GetDisasters(ctx context.Context) ([]*entities.Disaster, error)
		GetDisasterByID(ctx context.Context, id string) (*entities.Disaster, error)
		UpdateSeverity(ctx context.Context, id string, severity string) error
		UpsertLocation(ctx context.Context, location *entities.DisasterLocation) error
		CountPendingRequests(ctx context.Context, disasterID string) (int64, error)
		CountHighPriorityRequests(ctx context.Context, disasterID string) (int64, error)
	}

	disasterRepository struct {
		db *gorm.DB
	}
)

func NewDisasterRepository(db *gorm.DB) DisasterRepository {
	return &disasterRepository{db: db}
}

func (r *disasterRepository) CreateDisaster(ctx context.Context, disaster *entities.Disaster) error {
	return r.db.WithContext(ctx).Create(disaster).Error
}

func (r *disasterRepository) GetDisasters(ctx context.Context) ([]*entities.Disaster, error) {
	var disasters []*entities.Disaster
	if err := r.db.WithContext(ctx).
		Preload("GeoLocation").
		Order("created_at").
		Find(&disasters).Error; err != nil {
		return nil, err
	}
	return disasters, nil
}

func (r *disasterRepository) GetDisasterByID(ctx context.Context, id string) (*entities.Disaster, error) {
	var disaster entities.Disaster
	if err := r.db.WithContext(ctx).
		Preload("GeoLocation").
		Where("id = ?", id).
		First(&disaster).Error; err != nil {
		return nil, err
	}
	return &disaster, nil
}

func (r *disasterRepository) UpdateSeverity(ctx context.Context, id string, severity string) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Disaster{}).
		Where("id = ?", id).
		Update("severity_level", severity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *disasterRepository) UpsertLocation(ctx context.Context, location *entities.DisasterLocation) error {
	var existing entities.DisasterLocation
	err := r.db.WithContext(ctx).
		Where("disaster_id = ?", location.DisasterID).
		First(&existing).Error
	if err == nil {
		return r.db.WithContext(ctx).
			Model(&existing).
			Updates(map[string]interface{}{
				"latitude":  location.Latitude,
				"longitude": location.Longitude,
			}).Error
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	return r.db.WithContext(ctx).Create(location).Error
}

func (r *disasterRepository) CountPendingRequests(ctx context.Context, disasterID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.DemandRequest{}).
		Where("disaster_id = ? AND status = ?", disasterID, "Pending").
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *disasterRepository) CountHighPriorityRequests(ctx context.Context, disasterID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.DemandRequest{}).
		Where("disaster_id = ? AND priority_level = ?", disasterID, "High").
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
