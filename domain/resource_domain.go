package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetResources      = "resources retrieved successfully"
	MessageSuccessCreateResource    = "resource created successfully"
	MessageSuccessUpdateResource    = "resource updated successfully"
	MessageSuccessReplenishResource = "resource replenished successfully"
	MessageSuccessGetLowStock       = "low stock resources retrieved successfully"
	MessageFailedGetResources       = "failed to retrieve resources"
	MessageFailedCreateResource     = "failed to create resource"
	MessageFailedUpdateResource     = "failed to update resource"
	MessageFailedReplenishResource  = "failed to replenish resource"
	MessageFailedGetLowStock        = "failed to retrieve low stock resources"

	ErrResourceNotFound = errors.New("resource not found")
)

type (
	CreateResourceRequest struct {
		ResourceType      string `json:"resource_type" validate:"required,max=50"`
		QuantityAvailable int    `json:"quantity_available" validate:"min=0"`
		Status            string `json:"status" validate:"omitempty,oneof=Available Unavailable Reserved"`
		StorageLocationID string `json:"storage_location_id" validate:"omitempty,uuid"`
	}

	UpdateResourceRequest struct {
		QuantityAvailable *int   `json:"quantity_available" validate:"omitempty,min=0"`
		Status            string `json:"status" validate:"omitempty,oneof=Available Unavailable Reserved"`
		StorageLocationID string `json:"storage_location_id" validate:"omitempty,uuid"`
	}

	ReplenishResourceRequest struct {
		Quantity int `json:"quantity" validate:"required,min=1"`
	}

	ResourceResponse struct {
		ID                string    `json:"id"`
		ResourceType      string    `json:"resource_type"`
		QuantityAvailable int       `json:"quantity_available"`
		Status            string    `json:"status"`
		StorageLocationID string    `json:"storage_location_id,omitempty"`
		StorageName       string    `json:"storage_name,omitempty"`
		StorageCity       string    `json:"storage_city,omitempty"`
		StorageState      string    `json:"storage_state,omitempty"`
		CreatedAt         time.Time `json:"created_at"`
	}

	LowStockResource struct {
		ResourceID        string    `json:"resource_id"`
		ResourceType      string    `json:"resource_type"`
		QuantityAvailable int       `json:"quantity_available"`
		StorageName       string    `json:"storage_name,omitempty"`
		LastAlertedAt     time.Time `json:"last_alerted_at"`
	}
)
