package storage

import (
	"Relief-Ops-Console/domain"
	"Relief-Ops-Console/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	StorageService interface {
		CreateStorageLocation(ctx context.Context, req domain.CreateStorageLocationRequest) (*domain.StorageLocationResponse, error)
		GetStorageLocations(ctx context.Context) ([]*domain.StorageLocationResponse, error)
		DeleteStorageLocation(ctx context.Context, id string) error
	}

	storageService struct {
		storageRepository StorageRepository
	}
)

func NewStorageService(storageRepository StorageRepository) StorageService {
	return &storageService{storageRepository: storageRepository}
}

func (s *storageService) CreateStorageLocation(ctx context.Context, req domain.CreateStorageLocationRequest) (*domain.StorageLocationResponse, error) {
	location := &entities.StorageLocation{
		ID:            uuid.New(),
		Name:          req.Name,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		Capacity:      req.Capacity,
		ContactNumber: req.ContactNumber,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
	}
	if err := s.storageRepository.CreateStorageLocation(ctx, location); err != nil {
		return nil, err
	}
	return toStorageLocationResponse(location), nil
}

func (s *storageService) GetStorageLocations(ctx context.Context) ([]*domain.StorageLocationResponse, error) {
	locations, err := s.storageRepository.GetStorageLocations(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.StorageLocationResponse, 0, len(locations))
	for _, location := range locations {
		result = append(result, toStorageLocationResponse(location))
	}
	return result, nil
}

func (s *storageService) DeleteStorageLocation(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrParseUUID
	}
	if err := s.storageRepository.DeleteStorageLocation(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrStorageLocationNotFound
		}
		return err
	}
	return nil
}

func toStorageLocationResponse(location *entities.StorageLocation) *domain.StorageLocationResponse {
	return &domain.StorageLocationResponse{
		ID:            location.ID.String(),
		Name:          location.Name,
		Address:       location.Address,
		City:          location.City,
		State:         location.State,
		Capacity:      location.Capacity,
		ContactNumber: location.ContactNumber,
		Latitude:      location.Latitude,
		Longitude:     location.Longitude,
		CreatedAt:     location.CreatedAt,
	}
}
