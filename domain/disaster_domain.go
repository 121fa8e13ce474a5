package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetDisasters       = "disasters retrieved successfully"
	MessageSuccessCreateDisaster     = "disaster recorded successfully"
	MessageSuccessUpdateSeverity     = "disaster severity updated successfully"
	MessageSuccessSetDisasterGeo     = "disaster coordinates updated successfully"
	MessageFailedGetDisasters        = "failed to retrieve disasters"
	MessageFailedCreateDisaster      = "failed to record disaster"
	MessageFailedUpdateSeverity      = "failed to update disaster severity"
	MessageFailedSetDisasterGeo      = "failed to update disaster coordinates"

	ErrDisasterNotFound = errors.New("disaster not found")
)

type (
	CreateDisasterRequest struct {
		Type          string `json:"type" validate:"required,max=50"`
		Location      string `json:"location" validate:"required,max=150"`
		SeverityLevel string `json:"severity_level" validate:"omitempty,oneof=Low Medium High Critical"`
	}

	UpdateSeverityRequest struct {
		SeverityLevel string `json:"severity_level" validate:"required,oneof=Low Medium High Critical"`
	}

	SetDisasterGeoRequest struct {
		Latitude  float64 `json:"latitude" validate:"required,min=-90,max=90"`
		Longitude float64 `json:"longitude" validate:"required,min=-180,max=180"`
	}

	DisasterResponse struct {
		ID              string    `json:"id"`
		Type            string    `json:"type"`
		Location        string    `json:"location"`
		SeverityLevel   string    `json:"severity_level"`
		Latitude        *float64  `json:"latitude,omitempty"`
		Longitude       *float64  `json:"longitude,omitempty"`
		PendingRequests int64     `json:"pending_requests"`
		HighPriority    int64     `json:"high_priority"`
		CreatedAt       time.Time `json:"created_at"`
	}
)
