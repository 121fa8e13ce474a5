package user

import (
	"Relief-Ops-Console/domain"
	"Relief-Ops-Console/entities"
	"context"
	"sync"
	"testing"

	jwtlib "github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	mu    sync.Mutex
	users map[string]*entities.AppUser
	roles map[string]*entities.AppRole
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		users: make(map[string]*entities.AppUser),
		roles: make(map[string]*entities.AppRole),
	}
}

func (f *fakeUserRepository) GetUserByUsername(_ context.Context, username string) (*entities.AppUser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetUserByID(_ context.Context, id string) (*entities.AppUser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (f *fakeUserRepository) GetUsers(_ context.Context) ([]*entities.AppUser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]*entities.AppUser, 0, len(f.users))
	for _, u := range f.users {
		result = append(result, u)
	}
	return result, nil
}

func (f *fakeUserRepository) CreateUser(_ context.Context, user *entities.AppUser) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.ID.String()] = user
	return nil
}

func (f *fakeUserRepository) UpdateUserRole(_ context.Context, id string, roleID string) (*entities.AppUser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	u.RoleID = uuid.MustParse(roleID)
	u.Role = f.roles[roleID]
	return u, nil
}

func (f *fakeUserRepository) GetRoles(_ context.Context) ([]*entities.AppRole, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]*entities.AppRole, 0, len(f.roles))
	for _, r := range f.roles {
		result = append(result, r)
	}
	return result, nil
}

func (f *fakeUserRepository) GetRoleByID(_ context.Context, id string) (*entities.AppRole, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.roles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r, nil
}

func (f *fakeUserRepository) CreateRole(_ context.Context, role *entities.AppRole) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.roles[role.ID.String()] = role
	return nil
}

func (f *fakeUserRepository) CountUsersByRole(_ context.Context, roleID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, u := range f.users {
		if u.RoleID.String() == roleID {
			count++
		}
	}
	return count, nil
}

type fakeJWTService struct{}

func (f *fakeJWTService) GenerateTokenUser(userId string, role string) string {
	return "token-" + userId + "-" + role
}

func (f *fakeJWTService) ValidateTokenUser(string) (*jwtlib.Token, error) {
	return nil, nil
}

func (f *fakeJWTService) GetUserIDByToken(string) (string, string, error) {
	return "", "", nil
}

func seedUser(t *testing.T, repo *fakeUserRepository, username, password, roleName string) *entities.AppUser {
	t.Helper()

	role := &entities.AppRole{ID: uuid.New(), RoleName: roleName}
	require.NoError(t, repo.CreateRole(context.Background(), role))

	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	u := &entities.AppUser{
		ID:             uuid.New(),
		Username:       username,
		DisplayName:    username,
		PasswordDigest: string(digest),
		RoleID:         role.ID,
		Role:           role,
	}
	require.NoError(t, repo.CreateUser(context.Background(), u))
	return u
}

func TestLoginSuccess(t *testing.T) {
	repo := newFakeUserRepository()
	seedUser(t, repo, "ops-admin", "hunter2secret", domain.RoleAdministrator)
	svc := NewUserService(repo, &fakeJWTService{})

	res, err := svc.Login(context.Background(), domain.LoginRequest{
		Username: "ops-admin",
		Password: "hunter2secret",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "ops-admin", res.User.Username)
	assert.Equal(t, domain.RoleAdministrator, res.User.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepository()
	seedUser(t, repo, "ops-admin", "hunter2secret", domain.RoleAdministrator)
	svc := NewUserService(repo, &fakeJWTService{})

	_, err := svc.Login(context.Background(), domain.LoginRequest{
		Username: "ops-admin",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginUnknownUsername(t *testing.T) {
	repo := newFakeUserRepository()
	svc := NewUserService(repo, &fakeJWTService{})

	_, err := svc.Login(context.Background(), domain.LoginRequest{
		Username: "nobody",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestCreateUserHashesPassword(t *testing.T) {
	repo := newFakeUserRepository()
	role := &entities.AppRole{ID: uuid.New(), RoleName: domain.RoleLogisticsOfficer}
	require.NoError(t, repo.CreateRole(context.Background(), role))
	svc := NewUserService(repo, &fakeJWTService{})

	res, err := svc.CreateUser(context.Background(), domain.CreateUserRequest{
		Username:    "warehouse1",
		DisplayName: "Warehouse One",
		Password:    "longenoughpw",
		RoleID:      role.ID.String(),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleLogisticsOfficer, res.RoleName)

	stored, err := repo.GetUserByUsername(context.Background(), "warehouse1")
	require.NoError(t, err)
	assert.NotEqual(t, "longenoughpw", stored.PasswordDigest)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordDigest), []byte("longenoughpw")))
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	repo := newFakeUserRepository()
	existing := seedUser(t, repo, "warehouse1", "longenoughpw", domain.RoleLogisticsOfficer)
	svc := NewUserService(repo, &fakeJWTService{})

	_, err := svc.CreateUser(context.Background(), domain.CreateUserRequest{
		Username:    "warehouse1",
		DisplayName: "Duplicate",
		Password:    "anotherpassw",
		RoleID:      existing.RoleID.String(),
	})

	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestCreateUserUnknownRole(t *testing.T) {
	repo := newFakeUserRepository()
	svc := NewUserService(repo, &fakeJWTService{})

	_, err := svc.CreateUser(context.Background(), domain.CreateUserRequest{
		Username:    "warehouse1",
		DisplayName: "Warehouse One",
		Password:    "longenoughpw",
		RoleID:      uuid.NewString(),
	})

	assert.ErrorIs(t, err, domain.ErrRoleNotFound)
}

func TestReassignRole(t *testing.T) {
	repo := newFakeUserRepository()
	existing := seedUser(t, repo, "field1", "longenoughpw", domain.RoleFieldCoordinator)
	adminRole := &entities.AppRole{ID: uuid.New(), RoleName: domain.RoleAdministrator}
	require.NoError(t, repo.CreateRole(context.Background(), adminRole))
	svc := NewUserService(repo, &fakeJWTService{})

	res, err := svc.ReassignRole(context.Background(), existing.ID.String(), domain.ReassignRoleRequest{
		RoleID: adminRole.ID.String(),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdministrator, res.RoleName)
}
