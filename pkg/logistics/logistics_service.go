package logistics

import (
	"Relief-Ops-Console/domain"
	"Relief-Ops-Console/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	LogisticsService interface {
		CreateTransport(ctx context.Context, req domain.CreateTransportRequest) (*domain.TransportResponse, error)
		GetTransports(ctx context.Context) ([]*domain.TransportResponse, error)
		UpdateTransportStatus(ctx context.Context, id string, req domain.UpdateTransportStatusRequest) (*domain.TransportResponse, error)

		CreateDispatch(ctx context.Context, req domain.CreateDispatchRequest) (*domain.DispatchResponse, error)
		GetDispatches(ctx context.Context) ([]*domain.DispatchResponse, error)
		UpdateDispatchStatus(ctx context.Context, id string, req domain.UpdateDispatchStatusRequest) (*domain.DispatchResponse, error)
	}

	logisticsService struct {
		logisticsRepository LogisticsRepository
	}
)

func NewLogisticsService(logisticsRepository LogisticsRepository) LogisticsService {
	return &logisticsService{logisticsRepository: logisticsRepository}
}

func (s *logisticsService) CreateTransport(ctx context.Context, req domain.CreateTransportRequest) (*domain.TransportResponse, error) {
	status := req.Status
	if status == "" {
		status = "Available"
	}

	transport := &entities.Transport{
		ID:              uuid.New(),
		VehicleType:     req.VehicleType,
		Capacity:        req.Capacity,
		Status:          status,
		DriverName:      req.DriverName,
		ContactNumber:   req.ContactNumber,
		CurrentLocation: req.CurrentLocation,
	}
	if err := s.logisticsRepository.CreateTransport(ctx, transport); err != nil {
		return nil, err
	}
	return toTransportResponse(transport), nil
}

func (s *logisticsService) GetTransports(ctx context.Context) ([]*domain.TransportResponse, error) {
	transports, err := s.logisticsRepository.GetTransports(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.TransportResponse, 0, len(transports))
	for _, transport := range transports {
		result = append(result, toTransportResponse(transport))
	}
	return result, nil
}

func (s *logisticsService) UpdateTransportStatus(ctx context.Context, id string, req domain.UpdateTransportStatusRequest) (*domain.TransportResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrParseUUID
	}

	transport, err := s.logisticsRepository.UpdateTransportStatus(ctx, id, req.Status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTransportNotFound
		}
		return nil, err
	}
	return toTransportResponse(transport), nil
}

func (s *logisticsService) CreateDispatch(ctx context.Context, req domain.CreateDispatchRequest) (*domain.DispatchResponse, error) {
	allocationID, err := uuid.Parse(req.AllocationID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	status := req.Status
	if status == "" {
		status = "In Transit"
	}

	dispatch := &entities.Dispatch{
		ID:           uuid.New(),
		AllocationID: allocationID,
		Status:       status,
	}
	if req.TransportID != "" {
		transportID, err := uuid.Parse(req.TransportID)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		dispatch.TransportID = &transportID
	}

	if err := s.logisticsRepository.CreateDispatch(ctx, dispatch); err != nil {
		return nil, err
	}
	return toDispatchResponse(dispatch), nil
}

func (s *logisticsService) GetDispatches(ctx context.Context) ([]*domain.DispatchResponse, error) {
	dispatches, err := s.logisticsRepository.GetDispatches(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.DispatchResponse, 0, len(dispatches))
	for _, dispatch := range dispatches {
		result = append(result, toDispatchResponse(dispatch))
	}
	return result, nil
}

func (s *logisticsService) UpdateDispatchStatus(ctx context.Context, id string, req domain.UpdateDispatchStatusRequest) (*domain.DispatchResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrParseUUID
	}

	dispatch, err := s.logisticsRepository.UpdateDispatchStatus(ctx, id, req.Status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDispatchNotFound
		}
		return nil, err
	}
	return toDispatchResponse(dispatch), nil
}

func toTransportResponse(transport *entities.Transport) *domain.TransportResponse {
	return &domain.TransportResponse{
		ID:              transport.ID.String(),
		VehicleType:     transport.VehicleType,
		Capacity:        transport.Capacity,
		Status:          transport.Status,
		DriverName:      transport.DriverName,
		ContactNumber:   transport.ContactNumber,
		CurrentLocation: transport.CurrentLocation,
		CreatedAt:       transport.CreatedAt,
	}
}

func toDispatchResponse(dispatch *entities.Dispatch) *domain.DispatchResponse {
	resp := &domain.DispatchResponse{
		ID:           dispatch.ID.String(),
		AllocationID: dispatch.AllocationID.String(),
		Status:       dispatch.Status,
		CreatedAt:    dispatch.CreatedAt,
	}
	if dispatch.TransportID != nil {
		resp.TransportID = dispatch.TransportID.String()
	}
	if dispatch.Allocation != nil {
		resp.RequestID = dispatch.Allocation.RequestID.String()
	}
	if dispatch.Transport != nil {
		resp.VehicleType = dispatch.Transport.VehicleType
	}
	return resp
}
