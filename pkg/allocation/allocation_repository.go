package allocation

import (
	"Relief-Ops-Console/domain"
	"Relief-Ops-Console/entities"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	AllocationRepository interface {
		Allocate(ctx context.Context, requestID, resourceID uuid.UUID, quantity int) (*entities.Allocation, error)
		GetAllocations(ctx context.Context) ([]*entities.Allocation, error)
		UpdateAllocationStatus(ctx context.Context, id string, status string) (*entities.Allocation, error)
		GetAllocationLogs(ctx context.Context, limit int) ([]*entities.AllocationLog, error)
	}

	allocationRepository struct {
		db *gorm.DB
	}
)

func NewAllocationRepository(db *gorm.DB) AllocationRepository {
	return &allocationRepository{db: db}
}

// Allocate reserves quantity against the resource in one transaction. The
// resource and request rows are locked FOR UPDATE, so concurrent commits
// against the same resource serialize and the commit-time guard sees the
// true availability. Every write (decrement, allocation row, log entry,
// request transition) rolls back together on failure.
func (r *allocationRepository) Allocate(ctx context.Context, requestID, resourceID uuid.UUID, quantity int) (*entities.Allocation, error) {
	var created *entities.Allocation

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var resource entities.Resource
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", resourceID).
			First(&resource).Error; err != nil {
			return err
		}

		var request entities.DemandRequest
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", requestID).
			First(&request).Error; err != nil {
			return err
		}

		if request.Status == "Cancelled" {
			return domain.ErrRequestClosed
		}
		if resource.Status == "Unavailable" && resource.QuantityAvailable == 0 {
			return domain.ErrResourceClosed
		}

		var allocated struct {
			Total int
		}
		if err := tx.Model(&entities.Allocation{}).
			Select("COALESCE(SUM(allocated_quantity), 0) as total").
			Where("request_id = ? AND status <> ?", requestID, "Cancelled").
			Scan(&allocated).Error; err != nil {
			return err
		}

		if err := CheckAllocation(quantity, resource.QuantityAvailable, request.QuantityRequested, allocated.Total); err != nil {
			return err
		}

		remaining := resource.QuantityAvailable - quantity
		updates := map[string]interface{}{"quantity_available": remaining}
		if remaining == 0 {
			updates["status"] = "Unavailable"
		}
		if err := tx.Model(&resource).Updates(updates).Error; err != nil {
			return err
		}

		created = &entities.Allocation{
			ID:                uuid.New(),
			RequestID:         requestID,
			ResourceID:        resourceID,
			AllocatedQuantity: quantity,
			Status:            "Dispatched",
		}
		if err := tx.Create(created).Error; err != nil {
			return err
		}

		logEntry := &entities.AllocationLog{
			ID:           uuid.New(),
			AllocationID: created.ID,
			Action:       fmt.Sprintf("Allocated %d x %s to request %s", quantity, resource.ResourceType, requestID),
			ActionDate:   time.Now(),
		}
		if err := tx.Create(logEntry).Error; err != nil {
			return err
		}

		status := NextRequestStatus(allocated.Total, quantity, request.QuantityRequested)
		return tx.Model(&request).Update("status", status).Error
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (r *allocationRepository) GetAllocations(ctx context.Context) ([]*entities.Allocation, error) {
	var allocations []*entities.Allocation
	if err := r.db.WithContext(ctx).
		Preload("Request").
		Preload("Resource").
		Preload("Dispatches").
		Preload("Dispatches.Transport").
		Order("created_at DESC").
		Find(&allocations).Error; err != nil {
		return nil, err
	}
	return allocations, nil
}

func (r *allocationRepository) UpdateAllocationStatus(ctx context.Context, id string, status string) (*entities.Allocation, error) {
	var allocation entities.Allocation
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&allocation).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).
		Model(&allocation).
		Update("status", status).Error; err != nil {
		return nil, err
	}
	return &allocation, nil
}

func (r *allocationRepository) GetAllocationLogs(ctx context.Context, limit int) ([]*entities.AllocationLog, error) {
	var logs []*entities.AllocationLog
	if err := r.db.WithContext(ctx).
		Order("action_date DESC").
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
