package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetAllocations         = "allocations retrieved successfully"
	MessageSuccessCreateAllocation       = "allocation committed successfully"
	MessageSuccessUpdateAllocationStatus = "allocation status updated successfully"
	MessageSuccessGetAllocationLogs      = "allocation logs retrieved successfully"
	MessageFailedGetAllocations          = "failed to retrieve allocations"
	MessageFailedCreateAllocation        = "failed to commit allocation"
	MessageFailedUpdateAllocationStatus  = "failed to update allocation status"
	MessageFailedGetAllocationLogs       = "failed to retrieve allocation logs"

	ErrAllocationNotFound     = errors.New("allocation not found")
	ErrInvalidQuantity        = errors.New("quantity must be positive")
	ErrInsufficientInventory  = errors.New("quantity exceeds available inventory")
	ErrOverRequested          = errors.New("quantity exceeds remaining requested amount")
	ErrRequestClosed          = errors.New("demand request is cancelled")
	ErrResourceClosed         = errors.New("resource is not available for allocation")
	ErrAllocationConflict     = errors.New("allocation lost a concurrent commit, retry")
)

type (
	CreateAllocationRequest struct {
		RequestID  string `json:"request_id" validate:"required,uuid"`
		ResourceID string `json:"resource_id" validate:"required,uuid"`
		Quantity   int    `json:"quantity" validate:"required,min=1"`
	}

	UpdateAllocationStatusRequest struct {
		Status string `json:"status" validate:"required,oneof=Dispatched Pending Delivered Cancelled"`
	}

	AllocationResponse struct {
		ID                    string    `json:"id"`
		RequestID             string    `json:"request_id"`
		RequestResourceType   string    `json:"resource_type,omitempty"`
		QuantityRequested     int       `json:"quantity_requested,omitempty"`
		ResourceID            string    `json:"resource_id"`
		AllocatedResourceType string    `json:"allocated_resource_type,omitempty"`
		AllocatedQuantity     int       `json:"allocated_quantity"`
		Status                string    `json:"status"`
		DispatchStatus        string    `json:"dispatch_status,omitempty"`
		VehicleType           string    `json:"vehicle_type,omitempty"`
		CreatedAt             time.Time `json:"created_at"`
	}

	AllocationLogResponse struct {
		ID           string    `json:"id"`
		AllocationID string    `json:"allocation_id"`
		Action       string    `json:"action"`
		ActionDate   time.Time `json:"action_date"`
	}
)
