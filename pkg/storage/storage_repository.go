package storage

import (
	"Relief-Ops-Console/entities"
	"context"

	"gorm.io/gorm"
)

type (
	StorageRepository interface {
		CreateStorageLocation(ctx context.Context, location *entities.StorageLocation) error
		GetStorageLocations(ctx context.Context) ([]*entities.StorageLocation, error)
		DeleteStorageLocation(ctx context.Context, id string) error
	}

	storageRepository struct {
		db *gorm.DB
	}
)

func NewStorageRepository(db *gorm.DB) StorageRepository {
	return &storageRepository{db: db}
}

func (r *storageRepository) CreateStorageLocation(ctx context.Context, location *entities.StorageLocation) error {
	return r.db.WithContext(ctx).Create(location).Error
}

func (r *storageRepository) GetStorageLocations(ctx context.Context) ([]*entities.StorageLocation, error) {
	var locations []*entities.StorageLocation
	if err := r.db.WithContext(ctx).
		Order("city, name").
		Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *storageRepository) DeleteStorageLocation(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entities.StorageLocation{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
