package usecase

import (
	"context"
	"testing"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_RegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	srv, repo := newTestService(t)
	meta := request.SessionMeta{UserAgent: "test", IPAddress: "127.0.0.1"}

	registered, err := srv.Auth.Register(ctx, &request.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	}, meta)
	require.NoError(t, err)
	assert.Equal(t, "alice", registered.Username)
	assert.Equal(t, entity.RoleMember, registered.Role)
	assert.NotEmpty(t, registered.Token)

	stored, err := repo.User.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret123", stored.PasswordHash)

	byName, err := srv.Auth.Login(ctx, &request.LoginRequest{Username: "alice", Password: "secret123"}, meta)
	require.NoError(t, err)
	assert.NotEqual(t, registered.Token, byName.Token)

	byEmail, err := srv.Auth.Login(ctx, &request.LoginRequest{Username: "alice@example.com", Password: "secret123"}, meta)
	require.NoError(t, err)
	assert.Equal(t, registered.UserID, byEmail.UserID)
}

func TestAuthService_RegisterRejected(t *testing.T) {
	ctx := context.Background()
	srv, _ := newTestService(t)
	valid := request.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "secret123"}

	_, err := srv.Auth.Register(ctx, &valid, request.SessionMeta{})
	require.NoError(t, err)

	dupName := valid
	dupName.Email = "other@example.com"
	_, err = srv.Auth.Register(ctx, &dupName, request.SessionMeta{})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	dupEmail := valid
	dupEmail.Username = "alice2"
	_, err = srv.Auth.Register(ctx, &dupEmail, request.SessionMeta{})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	_, err = srv.Auth.Register(ctx, &request.RegisterRequest{Username: "x", Email: "nope", Password: "1"}, request.SessionMeta{})
	require.ErrorIs(t, err, ErrValidation)
	fields := FieldErrors(err)
	assert.Contains(t, fields, "username")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
}

func TestAuthService_LoginRejected(t *testing.T) {
	ctx := context.Background()
	srv, _ := newTestService(t)

	_, err := srv.Auth.Register(ctx, &request.RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "secret123",
	}, request.SessionMeta{})
	require.NoError(t, err)

	_, err = srv.Auth.Login(ctx, &request.LoginRequest{Username: "alice", Password: "wrong"}, request.SessionMeta{})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = srv.Auth.Login(ctx, &request.LoginRequest{Username: "nobody", Password: "secret123"}, request.SessionMeta{})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = srv.Auth.Login(ctx, &request.LoginRequest{}, request.SessionMeta{})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	srv, repo := newTestService(t)

	auth, err := srv.Auth.Register(ctx, &request.RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "secret123",
	}, request.SessionMeta{})
	require.NoError(t, err)

	require.NoError(t, srv.Auth.Logout(ctx, auth.Token))
	assert.ErrorIs(t, srv.Auth.Logout(ctx, auth.Token), ErrNotFound)
	assert.ErrorIs(t, srv.Auth.Logout(ctx, "garbage"), ErrNotFound)

	user, err := repo.User.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.NotNil(t, user)
}

func TestAuthService_EnsureAdmin(t *testing.T) {
	ctx := context.Background()
	srv, repo := newTestService(t)

	require.NoError(t, srv.Auth.EnsureAdmin(ctx, "root", "root@example.com", "changeme"))
	require.NoError(t, srv.Auth.EnsureAdmin(ctx, "root", "root@example.com", "changeme"))

	admin, err := repo.User.FindByUsername(ctx, "root")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.True(t, admin.IsAdmin())

	resp, err := srv.Auth.Login(ctx, &request.LoginRequest{Username: "root", Password: "changeme"}, request.SessionMeta{})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, resp.Role)
}
