package user

import (
	"Relief-Ops-Console/entities"
	"context"

	"gorm.io/gorm"
)

type (
	UserRepository interface {
		GetUserByUsername(ctx context.Context, username string) (*entities.AppUser, error)
		GetUserByID(ctx context.Context, id string) (*entities.AppUser, error)
		GetUsers(ctx context.Context) ([]*entities.AppUser, error)
		CreateUser(ctx context.Context, user *entities.AppUser) error
		UpdateUserRole(ctx context.Context, id string, roleID string) (*entities.AppUser, error)

		GetRoles(ctx context.Context) ([]*entities.AppRole, error)
		GetRoleByID(ctx context.Context, id string) (*entities.AppRole, error)
		CreateRole(ctx context.Context, role *entities.AppRole) error
		CountUsersByRole(ctx context.Context, roleID string) (int64, error)
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*entities.AppUser, error) {
	var user entities.AppUser
	if err := r.db.WithContext(ctx).
		Preload("Role").
		Where("username = ?", username).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.AppUser, error) {
	var user entities.AppUser
	if err := r.db.WithContext(ctx).
		Preload("Role").
		Where("id = ?", id).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUsers(ctx context.Context) ([]*entities.AppUser, error) {
	var users []*entities.AppUser
	if err := r.db.WithContext(ctx).
		Preload("Role").
		Order("created_at DESC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.AppUser) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) UpdateUserRole(ctx context.Context, id string, roleID string) (*entities.AppUser, error) {
	user, err := r.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).
		Model(user).
		Update("role_id", roleID).Error; err != nil {
		return nil, err
	}
	return r.GetUserByID(ctx, id)
}

func (r *userRepository) GetRoles(ctx context.Context) ([]*entities.AppRole, error) {
	var roles []*entities.AppRole
	if err := r.db.WithContext(ctx).
		Order("role_name").
		Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *userRepository) GetRoleByID(ctx context.Context, id string) (*entities.AppRole, error) {
	var role entities.AppRole
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *userRepository) CreateRole(ctx context.Context, role *entities.AppRole) error {
	return r.db.WithContext(ctx).Create(role).Error
}

func (r *userRepository) CountUsersByRole(ctx context.Context, roleID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.AppUser{}).
		Where("role_id = ?", roleID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
