package allocation

import (
	"Relief-Ops-Console/domain"
	"Relief-Ops-Console/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	AllocationService interface {
		Allocate(ctx context.Context, req domain.CreateAllocationRequest) (*domain.AllocationResponse, error)
		GetAllocations(ctx context.Context) ([]*domain.AllocationResponse, error)
		UpdateAllocationStatus(ctx context.Context, id string, req domain.UpdateAllocationStatusRequest) (*domain.AllocationResponse, error)
		GetAllocationLogs(ctx context.Context) ([]*domain.AllocationLogResponse, error)
	}

	allocationService struct {
		allocationRepository AllocationRepository
	}
)

const allocationLogLimit = 50

func NewAllocationService(allocationRepository AllocationRepository) AllocationService {
	return &allocationService{allocationRepository: allocationRepository}
}

func (s *allocationService) Allocate(ctx context.Context, req domain.CreateAllocationRequest) (*domain.AllocationResponse, error) {
	requestID, err := uuid.Parse(req.RequestID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	resourceID, err := uuid.Parse(req.ResourceID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	if req.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	allocation, err := s.allocationRepository.Allocate(ctx, requestID, resourceID, req.Quantity)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, err
	}

	return toAllocationResponse(allocation), nil
}

func (s *allocationService) GetAllocations(ctx context.Context) ([]*domain.AllocationResponse, error) {
	allocations, err := s.allocationRepository.GetAllocations(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.AllocationResponse, 0, len(allocations))
	for _, allocation := range allocations {
		result = append(result, toAllocationResponse(allocation))
	}
	return result, nil
}

// UpdateAllocationStatus accepts any member of the status enum for any
// prior status. The enum itself is enforced by the handler validator.
func (s *allocationService) UpdateAllocationStatus(ctx context.Context, id string, req domain.UpdateAllocationStatusRequest) (*domain.AllocationResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrParseUUID
	}

	allocation, err := s.allocationRepository.UpdateAllocationStatus(ctx, id, req.Status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAllocationNotFound
		}
		return nil, err
	}
	allocation.Status = req.Status

	return toAllocationResponse(allocation), nil
}

func (s *allocationService) GetAllocationLogs(ctx context.Context) ([]*domain.AllocationLogResponse, error) {
	logs, err := s.allocationRepository.GetAllocationLogs(ctx, allocationLogLimit)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.AllocationLogResponse, 0, len(logs))
	for _, entry := range logs {
		result = append(result, &domain.AllocationLogResponse{
			ID:           entry.ID.String(),
			AllocationID: entry.AllocationID.String(),
			Action:       entry.Action,
			ActionDate:   entry.ActionDate,
		})
	}
	return result, nil
}

func toAllocationResponse(allocation *entities.Allocation) *domain.AllocationResponse {
	resp := &domain.AllocationResponse{
		ID:                allocation.ID.String(),
		RequestID:         allocation.RequestID.String(),
		ResourceID:        allocation.ResourceID.String(),
		AllocatedQuantity: allocation.AllocatedQuantity,
		Status:            allocation.Status,
		CreatedAt:         allocation.CreatedAt,
	}
	if allocation.Request != nil {
		resp.RequestResourceType = allocation.Request.ResourceType
		resp.QuantityRequested = allocation.Request.QuantityRequested
	}
	if allocation.Resource != nil {
		resp.AllocatedResourceType = allocation.Resource.ResourceType
	}
	if len(allocation.Dispatches) > 0 {
		dispatch := allocation.Dispatches[0]
		resp.DispatchStatus = dispatch.Status
		if dispatch.Transport != nil {
			resp.VehicleType = dispatch.Transport.VehicleType
		}
	}
	return resp
}
