package resource

import (
	"Relief-Ops-Console/entities"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	ResourceRepository interface {
		CreateResource(ctx context.Context, resource *entities.Resource) error
		GetResources(ctx context.Context) ([]*entities.Resource, error)
		GetResourceByID(ctx context.Context, id string) (*entities.Resource, error)
		UpdateResource(ctx context.Context, id string, updates map[string]interface{}) (*entities.Resource, error)
		Replenish(ctx context.Context, id string, quantity int) (*entities.Resource, error)
		GetLowStock(ctx context.Context, threshold int) ([]*entities.Resource, error)
		GetLatestAlerts(ctx context.Context) (map[string]time.Time, error)
	}

	resourceRepository struct {
		db *gorm.DB
	}
)

func NewResourceRepository(db *gorm.DB) ResourceRepository {
	return &resourceRepository{db: db}
}

func (r *resourceRepository) CreateResource(ctx context.Context, resource *entities.Resource) error {
	return r.db.WithContext(ctx).Create(resource).Error
}

func (r *resourceRepository) GetResources(ctx context.Context) ([]*entities.Resource, error) {
	var resources []*entities.Resource
	if err := r.db.WithContext(ctx).
		Preload("StorageLocation").
		Order("created_at").
		Find(&resources).Error; err != nil {
		return nil, err
	}
	return resources, nil
}

func (r *resourceRepository) GetResourceByID(ctx context.Context, id string) (*entities.Resource, error) {
	var resource entities.Resource
	if err := r.db.WithContext(ctx).
		Preload("StorageLocation").
		Where("id = ?", id).
		First(&resource).Error; err != nil {
		return nil, err
	}
	return &resource, nil
}

func (r *resourceRepository) UpdateResource(ctx context.Context, id string, updates map[string]interface{}) (*entities.Resource, error) {
	resource, err := r.GetResourceByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).
		Model(resource).
		Updates(updates).Error; err != nil {
		return nil, err
	}
	return resource, nil
}

// Replenish adds stock under the same row lock the allocation path takes,
// so restocks and commits against one resource serialize.
func (r *resourceRepository) Replenish(ctx context.Context, id string, quantity int) (*entities.Resource, error) {
	var resource entities.Resource
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&resource).Error; err != nil {
			return err
		}
		resource.QuantityAvailable += quantity
		resource.Status = "Available"
		return tx.Model(&resource).Updates(map[string]interface{}{
			"quantity_available": resource.QuantityAvailable,
			"status":             resource.Status,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &resource, nil
}

func (r *resourceRepository) GetLowStock(ctx context.Context, threshold int) ([]*entities.Resource, error) {
	var resources []*entities.Resource
	if err := r.db.WithContext(ctx).
		Preload("StorageLocation").
		Where("quantity_available < ?", threshold).
		Order("resource_type").
		Find(&resources).Error; err != nil {
		return nil, err
	}
	return resources, nil
}

func (r *resourceRepository) GetLatestAlerts(ctx context.Context) (map[string]time.Time, error) {
	var rows []struct {
		ResourceID string
		AlertedAt  time.Time
	}
	if err := r.db.WithContext(ctx).
		Model(&entities.ResourceAlert{}).
		Select("resource_id, MAX(alerted_at) as alerted_at").
		Group("resource_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	latest := make(map[string]time.Time, len(rows))
	for _, row := range rows {
		latest[row.ResourceID] = row.AlertedAt
	}
	return latest, nil
}
