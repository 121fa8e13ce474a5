package request

import (
	"Relief-Ops-Console/domain"
	"Relief-Ops-Console/entities"
	"Relief-Ops-Console/pkg/geo"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RequestService interface {
		CreateRequest(ctx context.Context, req domain.CreateDemandRequest) (*domain.DemandRequestResponse, error)
		GetRequests(ctx context.Context) ([]*domain.DemandRequestResponse, error)
		UpdateRequestStatus(ctx context.Context, id string, req domain.UpdateRequestStatusRequest) error
		DeleteRequest(ctx context.Context, id string) error
		GetRecommendations(ctx context.Context, id string) ([]*domain.Recommendation, error)
	}

	requestService struct {
		requestRepository RequestRepository
	}
)

func NewRequestService(requestRepository RequestRepository) RequestService {
	return &requestService{requestRepository: requestRepository}
}

func (s *requestService) CreateRequest(ctx context.Context, req domain.CreateDemandRequest) (*domain.DemandRequestResponse, error) {
	disasterID, err := uuid.Parse(req.DisasterID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	request := &entities.DemandRequest{
		ID:                uuid.New(),
		DisasterID:        disasterID,
		RequestedBy:       req.RequestedBy,
		PriorityLevel:     req.PriorityLevel,
		Location:          req.Location,
		ResourceType:      req.ResourceType,
		QuantityRequested: req.QuantityRequested,
		Status:            "Pending",
	}

	if err := s.requestRepository.CreateRequest(ctx, request); err != nil {
		return nil, err
	}

	return s.toResponse(ctx, request), nil
}

func (s *requestService) GetRequests(ctx context.Context) ([]*domain.DemandRequestResponse, error) {
	requests, err := s.requestRepository.GetRequests(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.DemandRequestResponse, 0, len(requests))
	for _, request := range requests {
		result = append(result, s.toResponse(ctx, request))
	}
	return result, nil
}

func (s *requestService) UpdateRequestStatus(ctx context.Context, id string, req domain.UpdateRequestStatusRequest) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrParseUUID
	}
	if err := s.requestRepository.UpdateRequestStatus(ctx, id, req.Status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRequestNotFound
		}
		return err
	}
	return nil
}

func (s *requestService) DeleteRequest(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrParseUUID
	}
	if err := s.requestRepository.DeleteRequest(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRequestNotFound
		}
		return err
	}
	return nil
}

// GetRecommendations ranks every resource of the request's type.
// Recommendations are an advisory snapshot: availability is re-checked at
// allocation commit time.
func (s *requestService) GetRecommendations(ctx context.Context, id string) ([]*domain.Recommendation, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrParseUUID
	}

	request, err := s.requestRepository.GetRequestByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, err
	}

	var disasterCoord *geo.Coordinate
	location, err := s.requestRepository.GetDisasterLocation(ctx, request.DisasterID.String())
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if location != nil {
		disasterCoord = &geo.Coordinate{Latitude: location.Latitude, Longitude: location.Longitude}
	}

	resources, err := s.requestRepository.GetCandidateResources(ctx, request.ResourceType)
	if err != nil {
		return nil, err
	}

	candidates := make([]Candidate, 0, len(resources))
	for _, resource := range resources {
		candidate := Candidate{
			ResourceID:        resource.ID.String(),
			ResourceType:      resource.ResourceType,
			QuantityAvailable: resource.QuantityAvailable,
		}
		if resource.StorageLocation != nil {
			candidate.StorageCity = resource.StorageLocation.City
			candidate.StorageState = resource.StorageLocation.State
			storageCoord := &geo.Coordinate{
				Latitude:  resource.StorageLocation.Latitude,
				Longitude: resource.StorageLocation.Longitude,
			}
			candidate.DistanceKm = geo.Distance(storageCoord, disasterCoord)
		}
		candidates = append(candidates, candidate)
	}

	return RankCandidates(request.QuantityRequested, candidates), nil
}

func (s *requestService) toResponse(ctx context.Context, request *entities.DemandRequest) *domain.DemandRequestResponse {
	resp := &domain.DemandRequestResponse{
		ID:                request.ID.String(),
		DisasterID:        request.DisasterID.String(),
		RequestedBy:       request.RequestedBy,
		PriorityLevel:     request.PriorityLevel,
		Location:          request.Location,
		ResourceType:      request.ResourceType,
		QuantityRequested: request.QuantityRequested,
		Status:            request.Status,
		CreatedAt:         request.CreatedAt,
	}
	if request.Disaster != nil {
		resp.DisasterType = request.Disaster.Type
	}
	if allocated, err := s.requestRepository.GetAllocatedQuantity(ctx, request.ID.String()); err == nil {
		resp.AllocatedQuantity = allocated
	}
	return resp
}
