package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	errorvalues "github.com/ashfall/questlog/internal/error_values"
	"github.com/ashfall/questlog/internal/service"
	"github.com/ashfall/questlog/pkg/entity"
)

type profilesRepoMock struct {
	profiles map[uuid.UUID]*entity.Profile
	dbError  bool
}

func newProfilesRepoMock() *profilesRepoMock {
	return &profilesRepoMock{profiles: make(map[uuid.UUID]*entity.Profile)}
}

func (prm *profilesRepoMock) Create(ctx context.Context, profile *entity.Profile) error {
	if prm.dbError {
		return errors.New("db error")
	}
	for _, p := range prm.profiles {
		if p.Username == profile.Username {
			return errorvalues.ErrUserExists
		}
	}
	stored := *profile
	stored.ID = uuid.New()
	prm.profiles[stored.ID] = &stored
	return nil
}

func (prm *profilesRepoMock) FindByUsername(ctx context.Context, username string) (*entity.Profile, error) {
	if prm.dbError {
		return nil, errors.New("db error")
	}
	for _, p := range prm.profiles {
		if p.Username == username {
			result := *p
			return &result, nil
		}
	}
	return nil, errorvalues.ErrUserNotFound
}

func (prm *profilesRepoMock) FindByID(ctx context.Context, uid uuid.UUID) (*entity.Profile, error) {
	if prm.dbError {
		return nil, errors.New("db error")
	}
	p, ok := prm.profiles[uid]
	if !ok {
		return nil, errorvalues.ErrUserNotFound
	}
	result := *p
	return &result, nil
}

func (prm *profilesRepoMock) ListUsernames(ctx context.Context, uids []uuid.UUID) (map[uuid.UUID]string, error) {
	if prm.dbError {
		return nil, errors.New("db error")
	}
	result := make(map[uuid.UUID]string)
	for _, uid := range uids {
		if p, ok := prm.profiles[uid]; ok {
			result[uid] = p.Username
		}
	}
	return result, nil
}

func (prm *profilesRepoMock) UpdateRole(ctx context.Context, uid uuid.UUID, role entity.Role) error {
	p, ok := prm.profiles[uid]
	if !ok {
		return errorvalues.ErrUserNotFound
	}
	p.Role = role
	return nil
}

func (prm *profilesRepoMock) Delete(ctx context.Context, uid uuid.UUID) error {
	if _, ok := prm.profiles[uid]; !ok {
		return errorvalues.ErrUserNotFound
	}
	delete(prm.profiles, uid)
	return nil
}

func TestRegister(t *testing.T) {
	repo := newProfilesRepoMock()
	us := service.NewUserService(repo)

	profile, err := us.Register(context.Background(), &service.RegisterRequest{
		Username: "alice_01",
		Password: "strongpass",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, profile.ID)
	assert.Equal(t, entity.RoleUser, profile.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte("strongpass")))

	_, err = us.Register(context.Background(), &service.RegisterRequest{
		Username: "alice_01",
		Password: "otherpass",
	})
	assert.ErrorIs(t, err, errorvalues.ErrUserExists)
}

func TestRegisterValidation(t *testing.T) {
	us := service.NewUserService(newProfilesRepoMock())
	testCases := []struct {
		Name     string
		Username string
		Password string
	}{
		{"leading digit", "1alice", "strongpass"},
		{"leading underscore", "_alice", "strongpass"},
		{"forbidden characters", "al ice!", "strongpass"},
		{"username too short", "al", "strongpass"},
		{"password too short", "alice", "short"},
		{"empty username", "", "strongpass"},
	}
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			_, err := us.Register(context.Background(), &service.RegisterRequest{
				Username: tc.Username,
				Password: tc.Password,
			})
			assert.ErrorIs(t, err, errorvalues.ErrInvalidData)
		})
	}
}

func TestLogin(t *testing.T) {
	repo := newProfilesRepoMock()
	us := service.NewUserService(repo)
	registered, err := us.Register(context.Background(), &service.RegisterRequest{
		Username: "bob",
		Password: "strongpass",
	})
	require.NoError(t, err)

	profile, err := us.Login(context.Background(), "bob", "strongpass")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, profile.ID)

	_, err = us.Login(context.Background(), "bob", "wrongpass")
	assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)

	_, err = us.Login(context.Background(), "nobody", "strongpass")
	assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
}

func TestDeleteAccount(t *testing.T) {
	repo := newProfilesRepoMock()
	us := service.NewUserService(repo)
	registered, err := us.Register(context.Background(), &service.RegisterRequest{
		Username: "dave",
		Password: "strongpass",
	})
	require.NoError(t, err)

	t.Run("wrong password", func(t *testing.T) {
		err := us.DeleteAccount(context.Background(), registered.ID, "wrongpass")
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
		assert.Len(t, repo.profiles, 1)
	})
	t.Run("unexist user", func(t *testing.T) {
		err := us.DeleteAccount(context.Background(), uuid.New(), "strongpass")
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("success", func(t *testing.T) {
		err := us.DeleteAccount(context.Background(), registered.ID, "strongpass")
		require.NoError(t, err)
		assert.Empty(t, repo.profiles)
	})
}

func TestChangeRole(t *testing.T) {
	repo := newProfilesRepoMock()
	us := service.NewUserService(repo)
	admin, err := us.Register(context.Background(), &service.RegisterRequest{
		Username: "root_user",
		Password: "strongpass",
	})
	require.NoError(t, err)
	repo.profiles[admin.ID].Role = entity.RoleAdmin
	member, err := us.Register(context.Background(), &service.RegisterRequest{
		Username: "member",
		Password: "strongpass",
	})
	require.NoError(t, err)

	t.Run("non-admin caller", func(t *testing.T) {
		err := us.ChangeRole(context.Background(), member.ID, admin.ID, entity.RoleUser)
		assert.ErrorIs(t, err, errorvalues.ErrNotAdmin)
		assert.Equal(t, entity.RoleAdmin, repo.profiles[admin.ID].Role)
	})
	t.Run("unknown role", func(t *testing.T) {
		err := us.ChangeRole(context.Background(), admin.ID, member.ID, entity.Role("owner"))
		assert.ErrorIs(t, err, errorvalues.ErrInvalidData)
	})
	t.Run("unexist target", func(t *testing.T) {
		err := us.ChangeRole(context.Background(), admin.ID, uuid.New(), entity.RoleAdmin)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("success", func(t *testing.T) {
		err := us.ChangeRole(context.Background(), admin.ID, member.ID, entity.RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, entity.RoleAdmin, repo.profiles[member.ID].Role)
	})
}

func TestUserGetByID(t *testing.T) {
	repo := newProfilesRepoMock()
	us := service.NewUserService(repo)
	registered, err := us.Register(context.Background(), &service.RegisterRequest{
		Username: "carol",
		Password: "strongpass",
	})
	require.NoError(t, err)

	profile, err := us.GetByID(context.Background(), registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "carol", profile.Username)

	_, err = us.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
}
