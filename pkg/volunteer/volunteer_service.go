package volunteer

import (
	"Relief-Ops-Console/domain"
	"Relief-Ops-Console/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	VolunteerService interface {
		CreateVolunteer(ctx context.Context, req domain.CreateVolunteerRequest) (*domain.VolunteerResponse, error)
		GetRoster(ctx context.Context) (*domain.VolunteerRosterResponse, error)
		Assign(ctx context.Context, req domain.AssignVolunteerRequest) (*domain.VolunteerAssignmentResponse, error)
		GetAssignments(ctx context.Context) ([]*domain.VolunteerAssignmentResponse, error)
		GetVolunteerAssignments(ctx context.Context, volunteerID string) ([]*domain.VolunteerAssignmentResponse, error)
		UpdateAssignmentStatus(ctx context.Context, id string, req domain.UpdateAssignmentStatusRequest) (*domain.VolunteerAssignmentResponse, error)
	}

	volunteerService struct {
		volunteerRepository VolunteerRepository
	}
)

const recentAssignmentLimit = 50

func NewVolunteerService(volunteerRepository VolunteerRepository) VolunteerService {
	return &volunteerService{volunteerRepository: volunteerRepository}
}

func (s *volunteerService) CreateVolunteer(ctx context.Context, req domain.CreateVolunteerRequest) (*domain.VolunteerResponse, error) {
	availability := req.AvailabilityStatus
	if availability == "" {
		availability = "Available"
	}

	volunteer := &entities.Volunteer{
		ID:                 uuid.New(),
		Name:               req.Name,
		SkillSet:           req.SkillSet,
		AvailabilityStatus: availability,
		ContactNumber:      req.ContactNumber,
		Location:           req.Location,
	}
	if err := s.volunteerRepository.CreateVolunteer(ctx, volunteer); err != nil {
		return nil, err
	}

	return toVolunteerResponse(volunteer, 0), nil
}

func (s *volunteerService) GetRoster(ctx context.Context) (*domain.VolunteerRosterResponse, error) {
	volunteers, err := s.volunteerRepository.GetVolunteers(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.volunteerRepository.GetOpenAssignmentCounts(ctx)
	if err != nil {
		return nil, err
	}
	assignments, err := s.volunteerRepository.GetAssignments(ctx, recentAssignmentLimit)
	if err != nil {
		return nil, err
	}

	roster := make([]*domain.VolunteerResponse, 0, len(volunteers))
	for _, v := range volunteers {
		roster = append(roster, toVolunteerResponse(v, counts[v.ID.String()]))
	}
	recent := make([]*domain.VolunteerAssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		recent = append(recent, toAssignmentResponse(a))
	}

	return &domain.VolunteerRosterResponse{Roster: roster, Assignments: recent}, nil
}

// Assign never fails for lack of a match: when no volunteer is available the
// assignment is created unstaffed, to be picked up once the roster frees up.
func (s *volunteerService) Assign(ctx context.Context, req domain.AssignVolunteerRequest) (*domain.VolunteerAssignmentResponse, error) {
	disasterID, err := uuid.Parse(req.DisasterID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	assignment, err := s.volunteerRepository.AssignVolunteer(ctx, disasterID, req.Task, req.SkillSet)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDisasterNotFound
		}
		return nil, err
	}

	return toAssignmentResponse(assignment), nil
}

func (s *volunteerService) GetAssignments(ctx context.Context) ([]*domain.VolunteerAssignmentResponse, error) {
	assignments, err := s.volunteerRepository.GetAssignments(ctx, 0)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.VolunteerAssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		result = append(result, toAssignmentResponse(a))
	}
	return result, nil
}

func (s *volunteerService) GetVolunteerAssignments(ctx context.Context, volunteerID string) ([]*domain.VolunteerAssignmentResponse, error) {
	if _, err := uuid.Parse(volunteerID); err != nil {
		return nil, domain.ErrParseUUID
	}

	assignments, err := s.volunteerRepository.GetVolunteerAssignments(ctx, volunteerID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.VolunteerAssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		result = append(result, toAssignmentResponse(a))
	}
	return result, nil
}

func (s *volunteerService) UpdateAssignmentStatus(ctx context.Context, id string, req domain.UpdateAssignmentStatusRequest) (*domain.VolunteerAssignmentResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrParseUUID
	}

	assignment, err := s.volunteerRepository.UpdateAssignmentStatus(ctx, id, req.Status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAssignmentNotFound
		}
		return nil, err
	}

	return toAssignmentResponse(assignment), nil
}

func toVolunteerResponse(volunteer *entities.Volunteer, openAssignments int64) *domain.VolunteerResponse {
	return &domain.VolunteerResponse{
		ID:                 volunteer.ID.String(),
		Name:               volunteer.Name,
		SkillSet:           volunteer.SkillSet,
		AvailabilityStatus: volunteer.AvailabilityStatus,
		ContactNumber:      volunteer.ContactNumber,
		Location:           volunteer.Location,
		OpenAssignments:    openAssignments,
		CreatedAt:          volunteer.CreatedAt,
	}
}

func toAssignmentResponse(assignment *entities.VolunteerAssignment) *domain.VolunteerAssignmentResponse {
	resp := &domain.VolunteerAssignmentResponse{
		ID:             assignment.ID.String(),
		DisasterID:     assignment.DisasterID.String(),
		Task:           assignment.Task,
		RequestedSkill: assignment.RequestedSkill,
		Status:         assignment.Status,
		CreatedAt:      assignment.CreatedAt,
	}
	if assignment.VolunteerID != nil {
		resp.VolunteerID = assignment.VolunteerID.String()
	}
	if assignment.Volunteer != nil {
		resp.VolunteerName = assignment.Volunteer.Name
	}
	if assignment.Disaster != nil {
		resp.DisasterType = assignment.Disaster.Type
	}
	return resp
}
