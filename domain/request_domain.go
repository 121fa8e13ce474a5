package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRequests          = "demand requests retrieved successfully"
	MessageSuccessCreateRequest        = "demand request created successfully"
	MessageSuccessUpdateRequestStatus  = "demand request status updated successfully"
	MessageSuccessDeleteRequest        = "demand request deleted successfully"
	MessageSuccessGetRecommendations   = "recommendations retrieved successfully"
	MessageFailedGetRequests           = "failed to retrieve demand requests"
	MessageFailedCreateRequest         = "failed to create demand request"
	MessageFailedUpdateRequestStatus   = "failed to update demand request status"
	MessageFailedDeleteRequest         = "failed to delete demand request"
	MessageFailedGetRecommendations    = "failed to retrieve recommendations"

	ErrRequestNotFound = errors.New("demand request not found")
)

// Fulfillment tiers for ranked resource candidates. The numeric rank drives
// the sort order: Ready before Partial before Unavailable.
const (
	FulfillmentReady       = "Ready"
	FulfillmentPartial     = "Partial"
	FulfillmentUnavailable = "Unavailable"
)

type (
	CreateDemandRequest struct {
		DisasterID        string `json:"disaster_id" validate:"required,uuid"`
		RequestedBy       string `json:"requested_by" validate:"required,max=100"`
		PriorityLevel     string `json:"priority_level" validate:"required,oneof=Low Medium High"`
		Location          string `json:"location" validate:"omitempty,max=150"`
		ResourceType      string `json:"resource_type" validate:"required,max=50"`
		QuantityRequested int    `json:"quantity_requested" validate:"required,min=1"`
	}

	UpdateRequestStatusRequest struct {
		Status string `json:"status" validate:"required,oneof=Pending 'In Progress' Fulfilled Cancelled"`
	}

	DemandRequestResponse struct {
		ID                string    `json:"id"`
		DisasterID        string    `json:"disaster_id"`
		DisasterType      string    `json:"disaster_type"`
		RequestedBy       string    `json:"requested_by"`
		PriorityLevel     string    `json:"priority_level"`
		Location          string    `json:"location,omitempty"`
		ResourceType      string    `json:"resource_type"`
		QuantityRequested int       `json:"quantity_requested"`
		AllocatedQuantity int       `json:"allocated_quantity"`
		Status            string    `json:"status"`
		CreatedAt         time.Time `json:"created_at"`
	}

	// Recommendation is one ranked candidate for fulfilling a demand
	// request. DistanceKm is nil when either side lacks a geocoordinate.
	Recommendation struct {
		ResourceID        string   `json:"resource_id"`
		ResourceType      string   `json:"resource_type"`
		QuantityAvailable int      `json:"quantity_available"`
		StorageCity       string   `json:"storage_city,omitempty"`
		StorageState      string   `json:"storage_state,omitempty"`
		DistanceKm        *float64 `json:"distance_km"`
		FulfillmentStatus string   `json:"fulfillment_status"`
	}
)
