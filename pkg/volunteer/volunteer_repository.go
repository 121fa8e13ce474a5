package volunteer

import (
	"Relief-Ops-Console/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	VolunteerRepository interface {
		CreateVolunteer(ctx context.Context, volunteer *entities.Volunteer) error
		GetVolunteers(ctx context.Context) ([]*entities.Volunteer, error)
		GetOpenAssignmentCounts(ctx context.Context) (map[string]int64, error)
		AssignVolunteer(ctx context.Context, disasterID uuid.UUID, task, skillFilter string) (*entities.VolunteerAssignment, error)
		GetAssignments(ctx context.Context, limit int) ([]*entities.VolunteerAssignment, error)
		GetVolunteerAssignments(ctx context.Context, volunteerID string) ([]*entities.VolunteerAssignment, error)
		UpdateAssignmentStatus(ctx context.Context, id string, status string) (*entities.VolunteerAssignment, error)
	}

	volunteerRepository struct {
		db *gorm.DB
	}
)

func NewVolunteerRepository(db *gorm.DB) VolunteerRepository {
	return &volunteerRepository{db: db}
}

func (r *volunteerRepository) CreateVolunteer(ctx context.Context, volunteer *entities.Volunteer) error {
	return r.db.WithContext(ctx).Create(volunteer).Error
}

func (r *volunteerRepository) GetVolunteers(ctx context.Context) ([]*entities.Volunteer, error) {
	var volunteers []*entities.Volunteer
	if err := r.db.WithContext(ctx).
		Order("name").
		Find(&volunteers).Error; err != nil {
		return nil, err
	}
	return volunteers, nil
}

func (r *volunteerRepository) GetOpenAssignmentCounts(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		VolunteerID string
		Total       int64
	}
	if err := r.db.WithContext(ctx).
		Model(&entities.VolunteerAssignment{}).
		Select("volunteer_id, COUNT(*) as total").
		Where("volunteer_id IS NOT NULL AND status IN ?", []string{"Assigned", "In Progress"}).
		Group("volunteer_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.VolunteerID] = row.Total
	}
	return counts, nil
}

// AssignVolunteer runs selection and insert in one transaction with the
// Available volunteer rows locked, so two concurrent assignment calls
// cannot double-book the same volunteer on stale open-assignment counts.
func (r *volunteerRepository) AssignVolunteer(ctx context.Context, disasterID uuid.UUID, task, skillFilter string) (*entities.VolunteerAssignment, error) {
	var created *entities.VolunteerAssignment

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var disaster entities.Disaster
		if err := tx.Where("id = ?", disasterID).First(&disaster).Error; err != nil {
			return err
		}

		var available []*entities.Volunteer
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("availability_status = ?", "Available").
			Find(&available).Error; err != nil {
			return err
		}

		var rows []struct {
			VolunteerID string
			Total       int64
		}
		if err := tx.Model(&entities.VolunteerAssignment{}).
			Select("volunteer_id, COUNT(*) as total").
			Where("volunteer_id IS NOT NULL AND status IN ?", []string{"Assigned", "In Progress"}).
			Group("volunteer_id").
			Scan(&rows).Error; err != nil {
			return err
		}
		counts := make(map[string]int64, len(rows))
		for _, row := range rows {
			counts[row.VolunteerID] = row.Total
		}

		candidates := make([]MatchCandidate, 0, len(available))
		for _, v := range available {
			candidates = append(candidates, MatchCandidate{
				ID:              v.ID.String(),
				Name:            v.Name,
				SkillSet:        v.SkillSet,
				OpenAssignments: counts[v.ID.String()],
			})
		}

		created = &entities.VolunteerAssignment{
			ID:             uuid.New(),
			DisasterID:     disasterID,
			Task:           task,
			RequestedSkill: skillFilter,
			Status:         "Assigned",
		}
		if match := SelectVolunteer(candidates, skillFilter); match != nil {
			matchID, err := uuid.Parse(match.ID)
			if err != nil {
				return err
			}
			created.VolunteerID = &matchID
			created.Volunteer = &entities.Volunteer{ID: matchID, Name: match.Name}
		}

		return tx.Omit("Volunteer").Create(created).Error
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (r *volunteerRepository) GetAssignments(ctx context.Context, limit int) ([]*entities.VolunteerAssignment, error) {
	var assignments []*entities.VolunteerAssignment
	query := r.db.WithContext(ctx).
		Preload("Volunteer").
		Preload("Disaster").
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *volunteerRepository) GetVolunteerAssignments(ctx context.Context, volunteerID string) ([]*entities.VolunteerAssignment, error) {
	var assignments []*entities.VolunteerAssignment
	if err := r.db.WithContext(ctx).
		Preload("Disaster").
		Where("volunteer_id = ?", volunteerID).
		Order("created_at DESC").
		Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *volunteerRepository) UpdateAssignmentStatus(ctx context.Context, id string, status string) (*entities.VolunteerAssignment, error) {
	var assignment entities.VolunteerAssignment
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&assignment).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).
		Model(&assignment).
		Update("status", status).Error; err != nil {
		return nil, err
	}
	assignment.Status = status
	return &assignment, nil
}
