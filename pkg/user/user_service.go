package user

import (
	"Relief-Ops-Console/domain"
	"Relief-Ops-Console/entities"
	"Relief-Ops-Console/pkg/jwt"
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (*domain.UserPayload, error)

		GetRoles(ctx context.Context) ([]*domain.RoleResponse, error)
		CreateRole(ctx context.Context, req domain.CreateRoleRequest) (*domain.RoleResponse, error)
		GetUsers(ctx context.Context) ([]*domain.UserResponse, error)
		CreateUser(ctx context.Context, req domain.CreateUserRequest) (*domain.UserResponse, error)
		ReassignRole(ctx context.Context, id string, req domain.ReassignRoleRequest) (*domain.UserResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordDigest), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	roleName := ""
	if user.Role != nil {
		roleName = user.Role.RoleName
	}
	token := s.jwtService.GenerateTokenUser(user.ID.String(), roleName)

	return &domain.LoginResponse{
		Token: token,
		User:  toUserPayload(user),
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (*domain.UserPayload, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return toUserPayload(user), nil
}

func (s *userService) GetRoles(ctx context.Context) ([]*domain.RoleResponse, error) {
	roles, err := s.userRepository.GetRoles(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.RoleResponse, 0, len(roles))
	for _, role := range roles {
		count, err := s.userRepository.CountUsersByRole(ctx, role.ID.String())
		if err != nil {
			return nil, err
		}
		result = append(result, &domain.RoleResponse{
			ID:          role.ID.String(),
			RoleName:    role.RoleName,
			Description: role.Description,
			UserCount:   count,
			CreatedAt:   role.CreatedAt,
		})
	}
	return result, nil
}

func (s *userService) CreateRole(ctx context.Context, req domain.CreateRoleRequest) (*domain.RoleResponse, error) {
	role := &entities.AppRole{
		ID:          uuid.New(),
		RoleName:    req.RoleName,
		Description: req.Description,
	}
	if err := s.userRepository.CreateRole(ctx, role); err != nil {
		return nil, err
	}
	return &domain.RoleResponse{
		ID:          role.ID.String(),
		RoleName:    role.RoleName,
		Description: role.Description,
		CreatedAt:   role.CreatedAt,
	}, nil
}

func (s *userService) GetUsers(ctx context.Context) ([]*domain.UserResponse, error) {
	users, err := s.userRepository.GetUsers(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.UserResponse, 0, len(users))
	for _, user := range users {
		result = append(result, toUserResponse(user))
	}
	return result, nil
}

func (s *userService) CreateUser(ctx context.Context, req domain.CreateUserRequest) (*domain.UserResponse, error) {
	roleID, err := uuid.Parse(req.RoleID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	role, err := s.userRepository.GetRoleByID(ctx, req.RoleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, err
	}

	if _, err := s.userRepository.GetUserByUsername(ctx, req.Username); err == nil {
		return nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entities.AppUser{
		ID:             uuid.New(),
		Username:       req.Username,
		DisplayName:    req.DisplayName,
		PasswordDigest: string(digest),
		ContactEmail:   req.ContactEmail,
		RoleID:         roleID,
		Role:           role,
	}
	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func (s *userService) ReassignRole(ctx context.Context, id string, req domain.ReassignRoleRequest) (*domain.UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrParseUUID
	}
	if _, err := s.userRepository.GetRoleByID(ctx, req.RoleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, err
	}

	user, err := s.userRepository.UpdateUserRole(ctx, id, req.RoleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return toUserResponse(user), nil
}

func toUserPayload(user *entities.AppUser) *domain.UserPayload {
	payload := &domain.UserPayload{
		ID:           user.ID.String(),
		Username:     user.Username,
		DisplayName:  user.DisplayName,
		ContactEmail: user.ContactEmail,
	}
	if user.Role != nil {
		payload.Role = user.Role.RoleName
	}
	return payload
}

func toUserResponse(user *entities.AppUser) *domain.UserResponse {
	resp := &domain.UserResponse{
		ID:           user.ID.String(),
		Username:     user.Username,
		DisplayName:  user.DisplayName,
		ContactEmail: user.ContactEmail,
		CreatedAt:    user.CreatedAt,
	}
	if user.Role != nil {
		resp.RoleName = user.Role.RoleName
	}
	return resp
}
