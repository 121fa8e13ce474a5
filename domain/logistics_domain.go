package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetTransports         = "transports retrieved successfully"
	MessageSuccessCreateTransport       = "transport registered successfully"
	MessageSuccessUpdateTransportStatus = "transport status updated successfully"
	MessageSuccessGetDispatches         = "dispatches retrieved successfully"
	MessageSuccessCreateDispatch        = "dispatch created successfully"
	MessageSuccessUpdateDispatchStatus  = "dispatch status updated successfully"
	MessageFailedGetTransports          = "failed to retrieve transports"
	MessageFailedCreateTransport        = "failed to register transport"
	MessageFailedUpdateTransportStatus  = "failed to update transport status"
	MessageFailedGetDispatches          = "failed to retrieve dispatches"
	MessageFailedCreateDispatch         = "failed to create dispatch"
	MessageFailedUpdateDispatchStatus   = "failed to update dispatch status"

	ErrTransportNotFound = errors.New("transport not found")
	ErrDispatchNotFound  = errors.New("dispatch not found")
)

type (
	CreateTransportRequest struct {
		VehicleType     string `json:"vehicle_type" validate:"required,max=50"`
		Capacity        int    `json:"capacity" validate:"min=0"`
		Status          string `json:"status" validate:"omitempty,oneof=Available 'In Transit' 'Under Maintenance'"`
		DriverName      string `json:"driver_name" validate:"omitempty,max=100"`
		ContactNumber   string `json:"contact_number" validate:"omitempty,max=20"`
		CurrentLocation string `json:"current_location" validate:"omitempty,max=100"`
	}

	UpdateTransportStatusRequest struct {
		Status string `json:"status" validate:"required,oneof=Available 'In Transit' 'Under Maintenance'"`
	}

	CreateDispatchRequest struct {
		AllocationID string `json:"allocation_id" validate:"required,uuid"`
		TransportID  string `json:"transport_id" validate:"omitempty,uuid"`
		Status       string `json:"status" validate:"omitempty,oneof='In Transit' Pending Delivered"`
	}

	UpdateDispatchStatusRequest struct {
		Status string `json:"status" validate:"required,oneof='In Transit' Pending Delivered"`
	}

	TransportResponse struct {
		ID              string    `json:"id"`
		VehicleType     string    `json:"vehicle_type"`
		Capacity        int       `json:"capacity"`
		Status          string    `json:"status"`
		DriverName      string    `json:"driver_name,omitempty"`
		ContactNumber   string    `json:"contact_number,omitempty"`
		CurrentLocation string    `json:"current_location,omitempty"`
		CreatedAt       time.Time `json:"created_at"`
	}

	DispatchResponse struct {
		ID           string    `json:"id"`
		AllocationID string    `json:"allocation_id"`
		RequestID    string    `json:"request_id,omitempty"`
		TransportID  string    `json:"transport_id,omitempty"`
		VehicleType  string    `json:"vehicle_type,omitempty"`
		Status       string    `json:"status"`
		CreatedAt    time.Time `json:"created_at"`
	}
)
