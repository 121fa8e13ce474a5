package disaster

import (
	"Relief-Ops-Console/domain"
	"Relief-Ops-Console/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	DisasterService interface {
		CreateDisaster(ctx context.Context, req domain.CreateDisasterRequest) (*domain.DisasterResponse, error)
		GetDisasters(ctx context.Context) ([]*domain.DisasterResponse, error)
		UpdateSeverity(ctx context.Context, id string, req domain.UpdateSeverityRequest) error
		SetLocation(ctx context.Context, id string, req domain.SetDisasterGeoRequest) error
	}

	disasterService struct {
		disasterRepository DisasterRepository
	}
)

func NewDisasterService(disasterRepository DisasterRepository) DisasterService {
	return &disasterService{disasterRepository: disasterRepository}
}

func (s *disasterService) CreateDisaster(ctx context.Context, req domain.CreateDisasterRequest) (*domain.DisasterResponse, error) {
	severity := req.SeverityLevel
	if severity == "" {
		severity = "Low"
	}

	disaster := &entities.Disaster{
		ID:            uuid.New(),
		Type:          req.Type,
		Location:      req.Location,
		SeverityLevel: severity,
	}
	if err := s.disasterRepository.CreateDisaster(ctx, disaster); err != nil {
		return nil, err
	}
	return toDisasterResponse(disaster, 0, 0), nil
}

func (s *disasterService) GetDisasters(ctx context.Context) ([]*domain.DisasterResponse, error) {
	disasters, err := s.disasterRepository.GetDisasters(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.DisasterResponse, 0, len(disasters))
	for _, disaster := range disasters {
		pending, err := s.disasterRepository.CountPendingRequests(ctx, disaster.ID.String())
		if err != nil {
			return nil, err
		}
		high, err := s.disasterRepository.CountHighPriorityRequests(ctx, disaster.ID.String())
		if err != nil {
			return nil, err
		}
		result = append(result, toDisasterResponse(disaster, pending, high))
	}
	return result, nil
}

func (s *disasterService) UpdateSeverity(ctx context.Context, id string, req domain.UpdateSeverityRequest) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrParseUUID
	}
	if err := s.disasterRepository.UpdateSeverity(ctx, id, req.SeverityLevel); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrDisasterNotFound
		}
		return err
	}
	return nil
}

func (s *disasterService) SetLocation(ctx context.Context, id string, req domain.SetDisasterGeoRequest) error {
	disasterID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrParseUUID
	}
	if _, err := s.disasterRepository.GetDisasterByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrDisasterNotFound
		}
		return err
	}

	return s.disasterRepository.UpsertLocation(ctx, &entities.DisasterLocation{
		ID:         uuid.New(),
		DisasterID: disasterID,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
	})
}

func toDisasterResponse(disaster *entities.Disaster, pending, high int64) *domain.DisasterResponse {
	resp := &domain.DisasterResponse{
		ID:              disaster.ID.String(),
		Type:            disaster.Type,
		Location:        disaster.Location,
		SeverityLevel:   disaster.SeverityLevel,
		PendingRequests: pending,
		HighPriority:    high,
		CreatedAt:       disaster.CreatedAt,
	}
	if disaster.GeoLocation != nil {
		resp.Latitude = &disaster.GeoLocation.Latitude
		resp.Longitude = &disaster.GeoLocation.Longitude
	}
	return resp
}
