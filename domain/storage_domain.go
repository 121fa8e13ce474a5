package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetStorageLocations   = "storage locations retrieved successfully"
	MessageSuccessCreateStorageLocation = "storage location created successfully"
	MessageSuccessDeleteStorageLocation = "storage location deleted successfully"
	MessageFailedGetStorageLocations    = "failed to retrieve storage locations"
	MessageFailedCreateStorageLocation  = "failed to create storage location"
	MessageFailedDeleteStorageLocation  = "failed to delete storage location"

	ErrStorageLocationNotFound = errors.New("storage location not found")
)

type (
	CreateStorageLocationRequest struct {
		Name          string  `json:"name" validate:"required,max=100"`
		Address       string  `json:"address" validate:"omitempty,max=150"`
		City          string  `json:"city" validate:"required,max=50"`
		State         string  `json:"state" validate:"omitempty,max=50"`
		Capacity      int     `json:"capacity" validate:"min=0"`
		ContactNumber string  `json:"contact_number" validate:"omitempty,max=20"`
		Latitude      float64 `json:"latitude" validate:"min=-90,max=90"`
		Longitude     float64 `json:"longitude" validate:"min=-180,max=180"`
	}

	StorageLocationResponse struct {
		ID            string    `json:"id"`
		Name          string    `json:"name"`
		Address       string    `json:"address,omitempty"`
		City          string    `json:"city"`
		State         string    `json:"state,omitempty"`
		Capacity      int       `json:"capacity"`
		ContactNumber string    `json:"contact_number,omitempty"`
		Latitude      float64   `json:"latitude"`
		Longitude     float64   `json:"longitude"`
		CreatedAt     time.Time `json:"created_at"`
	}
)
