package service

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harsh12garg/Kirana-billing-software/internal/dto"
	"github.com/harsh12garg/Kirana-billing-software/internal/middleware"
)

const testSecret = "test-secret"

func TestRegisterAndLogin(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testSecret, 24)

	reg, err := svc.Register(context.Background(), dto.RegisterRequest{
		Name:     "Owner",
		Email:    "owner@shop.in",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, reg.Token)
	assert.Equal(t, "owner@shop.in", reg.User.Email)

	// Token carries the custom claims and verifies with the secret
	claims := &middleware.JWTClaims{}
	token, err := jwt.ParseWithClaims(reg.Token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, reg.User.ID, claims.UserID)
	assert.Equal(t, "owner@shop.in", claims.Email)

	login, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "owner@shop.in",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, login.User.ID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testSecret, 24)

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Name: "A", Email: "dup@shop.in", Password: "pass1234",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), dto.RegisterRequest{
		Name: "B", Email: "dup@shop.in", Password: "pass5678",
	})
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testSecret, 24)

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Name: "Owner", Email: "owner@shop.in", Password: "correct",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), dto.LoginRequest{
		Email: "owner@shop.in", Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), dto.LoginRequest{
		Email: "nobody@shop.in", Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
