package resource

import (
	"Relief-Ops-Console/domain"
	"Relief-Ops-Console/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ResourceService interface {
		CreateResource(ctx context.Context, req domain.CreateResourceRequest) (*domain.ResourceResponse, error)
		GetResources(ctx context.Context) ([]*domain.ResourceResponse, error)
		UpdateResource(ctx context.Context, id string, req domain.UpdateResourceRequest) (*domain.ResourceResponse, error)
		Replenish(ctx context.Context, id string, req domain.ReplenishResourceRequest) (*domain.ResourceResponse, error)
		GetLowStock(ctx context.Context) ([]*domain.LowStockResource, error)
	}

	resourceService struct {
		resourceRepository ResourceRepository
		lowStockThreshold  int
	}
)

func NewResourceService(resourceRepository ResourceRepository, lowStockThreshold int) ResourceService {
	return &resourceService{
		resourceRepository: resourceRepository,
		lowStockThreshold:  lowStockThreshold,
	}
}

func (s *resourceService) CreateResource(ctx context.Context, req domain.CreateResourceRequest) (*domain.ResourceResponse, error) {
	status := req.Status
	if status == "" {
		status = "Available"
	}

	resource := &entities.Resource{
		ID:                uuid.New(),
		ResourceType:      req.ResourceType,
		QuantityAvailable: req.QuantityAvailable,
		Status:            status,
	}
	if req.StorageLocationID != "" {
		storageID, err := uuid.Parse(req.StorageLocationID)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		resource.StorageLocationID = &storageID
	}

	if err := s.resourceRepository.CreateResource(ctx, resource); err != nil {
		return nil, err
	}
	return toResourceResponse(resource), nil
}

func (s *resourceService) GetResources(ctx context.Context) ([]*domain.ResourceResponse, error) {
	resources, err := s.resourceRepository.GetResources(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.ResourceResponse, 0, len(resources))
	for _, resource := range resources {
		result = append(result, toResourceResponse(resource))
	}
	return result, nil
}

func (s *resourceService) UpdateResource(ctx context.Context, id string, req domain.UpdateResourceRequest) (*domain.ResourceResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrParseUUID
	}

	updates := map[string]interface{}{}
	if req.QuantityAvailable != nil {
		updates["quantity_available"] = *req.QuantityAvailable
	}
	if req.Status != "" {
		updates["status"] = req.Status
	}
	if req.StorageLocationID != "" {
		storageID, err := uuid.Parse(req.StorageLocationID)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		updates["storage_location_id"] = storageID
	}

	resource, err := s.resourceRepository.UpdateResource(ctx, id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrResourceNotFound
		}
		return nil, err
	}
	return toResourceResponse(resource), nil
}

func (s *resourceService) Replenish(ctx context.Context, id string, req domain.ReplenishResourceRequest) (*domain.ResourceResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrParseUUID
	}

	resource, err := s.resourceRepository.Replenish(ctx, id, req.Quantity)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrResourceNotFound
		}
		return nil, err
	}
	return toResourceResponse(resource), nil
}

// GetLowStock lists resources under the configured replenishment threshold.
// A resource exactly at the threshold is not low stock. Read-only: alert
// records are written by the external notification pipeline.
func (s *resourceService) GetLowStock(ctx context.Context) ([]*domain.LowStockResource, error) {
	resources, err := s.resourceRepository.GetLowStock(ctx, s.lowStockThreshold)
	if err != nil {
		return nil, err
	}
	alerts, err := s.resourceRepository.GetLatestAlerts(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.LowStockResource, 0, len(resources))
	for _, resource := range resources {
		entry := &domain.LowStockResource{
			ResourceID:        resource.ID.String(),
			ResourceType:      resource.ResourceType,
			QuantityAvailable: resource.QuantityAvailable,
			LastAlertedAt:     resource.UpdatedAt,
		}
		if resource.StorageLocation != nil {
			entry.StorageName = resource.StorageLocation.Name
		}
		if alertedAt, ok := alerts[resource.ID.String()]; ok {
			entry.LastAlertedAt = alertedAt
		}
		result = append(result, entry)
	}
	return result, nil
}

func toResourceResponse(resource *entities.Resource) *domain.ResourceResponse {
	resp := &domain.ResourceResponse{
		ID:                resource.ID.String(),
		ResourceType:      resource.ResourceType,
		QuantityAvailable: resource.QuantityAvailable,
		Status:            resource.Status,
		CreatedAt:         resource.CreatedAt,
	}
	if resource.StorageLocationID != nil {
		resp.StorageLocationID = resource.StorageLocationID.String()
	}
	if resource.StorageLocation != nil {
		resp.StorageName = resource.StorageLocation.Name
		resp.StorageCity = resource.StorageLocation.City
		resp.StorageState = resource.StorageLocation.State
	}
	return resp
}
