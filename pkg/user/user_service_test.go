package user

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"Local-Flavor-Backend/domain"
	"Local-Flavor-Backend/entities"
	"Local-Flavor-Backend/pkg/jwt"
)

type fakeUserRepository struct {
	users []*entities.User
}

func (f *fakeUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	for _, u := range f.users {
		if u.ID.String() == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetUserByUsername(_ context.Context, username string) (*entities.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) UpsertUser(_ context.Context, u *entities.User) error {
	f.users = append(f.users, u)
	return nil
}

func newUserFixture(t *testing.T) (*fakeUserRepository, UserService, jwt.JWTService, *entities.User) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)

	admin := &entities.User{ID: uuid.New(), Username: "admin", Email: "admin@localflavor.test", PasswordHash: string(hash), Role: domain.RoleAdmin}
	repo := &fakeUserRepository{users: []*entities.User{admin}}
	jwtService := jwt.NewJWTService("secret", time.Hour)

	return repo, NewUserService(repo, jwtService), jwtService, admin
}

func TestUserService_LoginIssuesToken(t *testing.T) {
	_, svc, jwtService, admin := newUserFixture(t)

	res, err := svc.Login(context.Background(), domain.LoginRequest{Username: "admin", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, res.Role)

	id, role, err := jwtService.GetUserIDByToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID.String(), id)
	assert.Equal(t, domain.RoleAdmin, role)
}

func TestUserService_LoginRejectsBadCredentials(t *testing.T) {
	_, svc, _, _ := newUserFixture(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, domain.LoginRequest{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(ctx, domain.LoginRequest{Username: "nobody", Password: "hunter22"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestUserService_GetMe(t *testing.T) {
	_, svc, _, admin := newUserFixture(t)
	ctx := context.Background()

	me, err := svc.GetMe(ctx, admin.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "admin", me.Username)

	_, err = svc.GetMe(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = svc.GetMe(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("pa55word")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("pa55word")))
}
