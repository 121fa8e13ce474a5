package volunteer

import (
	"Relief-Ops-Console/domain"
	"Relief-Ops-Console/entities"
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeVolunteerRepository reproduces the real repository's serialized
// select-then-insert with a mutex in place of row locks.
type fakeVolunteerRepository struct {
	mu          sync.Mutex
	disasters   map[uuid.UUID]*entities.Disaster
	volunteers  []*entities.Volunteer
	assignments []*entities.VolunteerAssignment
}

func newFakeVolunteerRepository() *fakeVolunteerRepository {
	return &fakeVolunteerRepository{disasters: make(map[uuid.UUID]*entities.Disaster)}
}

func (f *fakeVolunteerRepository) CreateVolunteer(_ context.Context, volunteer *entities.Volunteer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.volunteers = append(f.volunteers, volunteer)
	return nil
}

func (f *fakeVolunteerRepository) GetVolunteers(_ context.Context) ([]*entities.Volunteer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*entities.Volunteer(nil), f.volunteers...), nil
}

func (f *fakeVolunteerRepository) GetOpenAssignmentCounts(_ context.Context) (map[string]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.openCountsLocked(), nil
}

func (f *fakeVolunteerRepository) openCountsLocked() map[string]int64 {
	counts := make(map[string]int64)
	for _, a := range f.assignments {
		if a.VolunteerID != nil && (a.Status == "Assigned" || a.Status == "In Progress") {
			counts[a.VolunteerID.String()]++
		}
	}
	return counts
}

func (f *fakeVolunteerRepository) AssignVolunteer(_ context.Context, disasterID uuid.UUID, task, skillFilter string) (*entities.VolunteerAssignment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.disasters[disasterID]; !ok {
		return nil, gorm.ErrRecordNotFound
	}

	counts := f.openCountsLocked()
	var candidates []MatchCandidate
	for _, v := range f.volunteers {
		if v.AvailabilityStatus == "Available" {
			candidates = append(candidates, MatchCandidate{
				ID:              v.ID.String(),
				Name:            v.Name,
				SkillSet:        v.SkillSet,
				OpenAssignments: counts[v.ID.String()],
			})
		}
	}

	assignment := &entities.VolunteerAssignment{
		ID:             uuid.New(),
		DisasterID:     disasterID,
		Task:           task,
		RequestedSkill: skillFilter,
		Status:         "Assigned",
	}
	if match := SelectVolunteer(candidates, skillFilter); match != nil {
		matchID := uuid.MustParse(match.ID)
		assignment.VolunteerID = &matchID
		assignment.Volunteer = &entities.Volunteer{ID: matchID, Name: match.Name}
	}
	f.assignments = append(f.assignments, assignment)
	return assignment, nil
}

func (f *fakeVolunteerRepository) GetAssignments(_ context.Context, limit int) ([]*entities.VolunteerAssignment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := append([]*entities.VolunteerAssignment(nil), f.assignments...)
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeVolunteerRepository) GetVolunteerAssignments(_ context.Context, volunteerID string) ([]*entities.VolunteerAssignment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var mine []*entities.VolunteerAssignment
	for _, a := range f.assignments {
		if a.VolunteerID != nil && a.VolunteerID.String() == volunteerID {
			mine = append(mine, a)
		}
	}
	return mine, nil
}

func (f *fakeVolunteerRepository) UpdateAssignmentStatus(_ context.Context, id string, status string) (*entities.VolunteerAssignment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.assignments {
		if a.ID.String() == id {
			a.Status = status
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func rosterVolunteer(name, skills, availability string) *entities.Volunteer {
	return &entities.Volunteer{
		ID:                 uuid.New(),
		Name:               name,
		SkillSet:           skills,
		AvailabilityStatus: availability,
	}
}

func TestAssignSelectsAvailableSkillMatch(t *testing.T) {
	repo := newFakeVolunteerRepository()
	disasterID := uuid.New()
	repo.disasters[disasterID] = &entities.Disaster{ID: disasterID, Type: "Flood"}

	busyMedic := rosterVolunteer("V1", "Medical", "Busy")
	freeMedic := rosterVolunteer("V2", "Medical", "Available")
	logistics := rosterVolunteer("V3", "Logistics", "Available")
	repo.volunteers = []*entities.Volunteer{busyMedic, freeMedic, logistics}

	service := NewVolunteerService(repo)
	resp, err := service.Assign(context.Background(), domain.AssignVolunteerRequest{
		DisasterID: disasterID.String(),
		Task:       "Field triage",
		SkillSet:   "Medical",
	})
	require.NoError(t, err)
	assert.Equal(t, freeMedic.ID.String(), resp.VolunteerID)
	assert.Equal(t, "Assigned", resp.Status)
}

func TestAssignFallsBackAcrossSkills(t *testing.T) {
	repo := newFakeVolunteerRepository()
	disasterID := uuid.New()
	repo.disasters[disasterID] = &entities.Disaster{ID: disasterID, Type: "Flood"}
	logistics := rosterVolunteer("V3", "Logistics", "Available")
	repo.volunteers = []*entities.Volunteer{
		rosterVolunteer("V1", "Medical", "Busy"),
		rosterVolunteer("V2", "Medical", "Unavailable"),
		logistics,
	}

	service := NewVolunteerService(repo)
	resp, err := service.Assign(context.Background(), domain.AssignVolunteerRequest{
		DisasterID: disasterID.String(),
		Task:       "Field triage",
		SkillSet:   "Medical",
	})
	require.NoError(t, err)
	assert.Equal(t, logistics.ID.String(), resp.VolunteerID)
}

func TestAssignEmptyRosterCreatesUnstaffedAssignment(t *testing.T) {
	repo := newFakeVolunteerRepository()
	disasterID := uuid.New()
	repo.disasters[disasterID] = &entities.Disaster{ID: disasterID, Type: "Earthquake"}

	service := NewVolunteerService(repo)
	resp, err := service.Assign(context.Background(), domain.AssignVolunteerRequest{
		DisasterID: disasterID.String(),
		Task:       "Debris survey",
	})
	require.NoError(t, err)
	assert.Empty(t, resp.VolunteerID)
	assert.Empty(t, resp.VolunteerName)
	assert.Equal(t, "Assigned", resp.Status)
	assert.Len(t, repo.assignments, 1)
}

func TestAssignUnknownDisaster(t *testing.T) {
	service := NewVolunteerService(newFakeVolunteerRepository())

	_, err := service.Assign(context.Background(), domain.AssignVolunteerRequest{
		DisasterID: uuid.NewString(),
		Task:       "Anything",
	})
	assert.ErrorIs(t, err, domain.ErrDisasterNotFound)
}

// Concurrent assigns must see each other's inserts: with two equally idle
// medics, two racing calls spread across both instead of double-booking one.
func TestAssignConcurrentCallsSpreadLoad(t *testing.T) {
	repo := newFakeVolunteerRepository()
	disasterID := uuid.New()
	repo.disasters[disasterID] = &entities.Disaster{ID: disasterID, Type: "Flood"}
	repo.volunteers = []*entities.Volunteer{
		rosterVolunteer("A", "Medical", "Available"),
		rosterVolunteer("B", "Medical", "Available"),
	}

	service := NewVolunteerService(repo)
	var wg sync.WaitGroup
	picked := make([]string, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			resp, err := service.Assign(context.Background(), domain.AssignVolunteerRequest{
				DisasterID: disasterID.String(),
				Task:       "Shift",
				SkillSet:   "Medical",
			})
			require.NoError(t, err)
			picked[slot] = resp.VolunteerID
		}(i)
	}
	wg.Wait()

	assert.NotEqual(t, picked[0], picked[1])
}

func TestUpdateAssignmentStatusNotFound(t *testing.T) {
	service := NewVolunteerService(newFakeVolunteerRepository())

	_, err := service.UpdateAssignmentStatus(context.Background(), uuid.NewString(), domain.UpdateAssignmentStatusRequest{Status: "Completed"})
	assert.ErrorIs(t, err, domain.ErrAssignmentNotFound)
}
