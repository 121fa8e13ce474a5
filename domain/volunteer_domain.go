package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetVolunteers           = "volunteers retrieved successfully"
	MessageSuccessCreateVolunteer         = "volunteer registered successfully"
	MessageSuccessAssignVolunteer         = "volunteer assignment created successfully"
	MessageSuccessGetAssignments          = "volunteer assignments retrieved successfully"
	MessageSuccessUpdateAssignmentStatus  = "volunteer assignment status updated successfully"
	MessageFailedGetVolunteers            = "failed to retrieve volunteers"
	MessageFailedCreateVolunteer          = "failed to register volunteer"
	MessageFailedAssignVolunteer          = "failed to create volunteer assignment"
	MessageFailedGetAssignments           = "failed to retrieve volunteer assignments"
	MessageFailedUpdateAssignmentStatus   = "failed to update volunteer assignment status"

	ErrVolunteerNotFound  = errors.New("volunteer not found")
	ErrAssignmentNotFound = errors.New("volunteer assignment not found")
)

type (
	CreateVolunteerRequest struct {
		Name               string `json:"name" validate:"required,max=100"`
		SkillSet           string `json:"skill_set" validate:"omitempty,max=100"`
		AvailabilityStatus string `json:"availability_status" validate:"omitempty,oneof=Available Busy Unavailable"`
		ContactNumber      string `json:"contact_number" validate:"omitempty,max=20"`
		Location           string `json:"location" validate:"omitempty,max=100"`
	}

	AssignVolunteerRequest struct {
		DisasterID string `json:"disaster_id" validate:"required,uuid"`
		Task       string `json:"task" validate:"required,max=150"`
		SkillSet   string `json:"skill_set" validate:"omitempty,max=100"`
	}

	UpdateAssignmentStatusRequest struct {
		Status string `json:"status" validate:"required,oneof=Assigned 'In Progress' Completed Cancelled"`
	}

	VolunteerResponse struct {
		ID                 string    `json:"id"`
		Name               string    `json:"name"`
		SkillSet           string    `json:"skill_set,omitempty"`
		AvailabilityStatus string    `json:"availability_status"`
		ContactNumber      string    `json:"contact_number,omitempty"`
		Location           string    `json:"location,omitempty"`
		OpenAssignments    int64     `json:"open_assignments"`
		CreatedAt          time.Time `json:"created_at"`
	}

	// VolunteerAssignmentResponse reports VolunteerID and VolunteerName
	// empty when the assignment was created unstaffed.
	VolunteerAssignmentResponse struct {
		ID             string    `json:"id"`
		VolunteerID    string    `json:"volunteer_id,omitempty"`
		VolunteerName  string    `json:"volunteer_name,omitempty"`
		DisasterID     string    `json:"disaster_id"`
		DisasterType   string    `json:"disaster_type,omitempty"`
		Task           string    `json:"task"`
		RequestedSkill string    `json:"requested_skill,omitempty"`
		Status         string    `json:"status"`
		CreatedAt      time.Time `json:"created_at"`
	}

	VolunteerRosterResponse struct {
		Roster      []*VolunteerResponse           `json:"roster"`
		Assignments []*VolunteerAssignmentResponse `json:"assignments"`
	}
)
