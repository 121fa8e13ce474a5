package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessLogin         = "login successful"
	MessageSuccessMe            = "account retrieved successfully"
	MessageSuccessGetRoles      = "roles retrieved successfully"
	MessageSuccessCreateRole    = "role created successfully"
	MessageSuccessGetUsers      = "users retrieved successfully"
	MessageSuccessCreateUser    = "user created successfully"
	MessageSuccessReassignRole  = "user role updated successfully"
	MessageFailedLogin          = "failed to login"
	MessageFailedMe             = "failed to retrieve account"
	MessageFailedGetRoles       = "failed to retrieve roles"
	MessageFailedCreateRole     = "failed to create role"
	MessageFailedGetUsers       = "failed to retrieve users"
	MessageFailedCreateUser     = "failed to create user"
	MessageFailedReassignRole   = "failed to update user role"

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountNotFound    = errors.New("account not found")
	ErrRoleNotFound       = errors.New("role not found")
	ErrUsernameTaken      = errors.New("username already taken")
)

type (
	LoginRequest struct {
		Username string `json:"username" validate:"required,max=50"`
		Password string `json:"password" validate:"required,max=200"`
	}

	LoginResponse struct {
		Token string       `json:"token"`
		User  *UserPayload `json:"user"`
	}

	UserPayload struct {
		ID           string `json:"id"`
		Username     string `json:"username"`
		DisplayName  string `json:"display_name"`
		Role         string `json:"role"`
		ContactEmail string `json:"contact_email,omitempty"`
	}

	CreateRoleRequest struct {
		RoleName    string `json:"role_name" validate:"required,max=50"`
		Description string `json:"description" validate:"omitempty"`
	}

	RoleResponse struct {
		ID          string    `json:"id"`
		RoleName    string    `json:"role_name"`
		Description string    `json:"description,omitempty"`
		UserCount   int64     `json:"user_count"`
		CreatedAt   time.Time `json:"created_at"`
	}

	CreateUserRequest struct {
		Username     string `json:"username" validate:"required,max=50"`
		DisplayName  string `json:"display_name" validate:"required,max=100"`
		Password     string `json:"password" validate:"required,min=8,max=200"`
		RoleID       string `json:"role_id" validate:"required,uuid"`
		ContactEmail string `json:"contact_email" validate:"omitempty,email"`
	}

	ReassignRoleRequest struct {
		RoleID string `json:"role_id" validate:"required,uuid"`
	}

	UserResponse struct {
		ID           string    `json:"id"`
		Username     string    `json:"username"`
		DisplayName  string    `json:"display_name"`
		ContactEmail string    `json:"contact_email,omitempty"`
		RoleName     string    `json:"role_name"`
		CreatedAt    time.Time `json:"created_at"`
	}
)
