package handler_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vaultpass/passvault/internal/model"
)

// MockAuthService implements handler.AuthService for testing
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req model.RegisterRequest) (model.UserResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(model.UserResponse), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(model.LoginResponse), args.Error(1)
}

func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (model.RefreshResponse, error) {
	args := m.Called(ctx, refreshToken)
	return args.Get(0).(model.RefreshResponse), args.Error(1)
}

func (m *MockAuthService) GetUser(ctx context.Context, userID int64) (model.UserResponse, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.UserResponse), args.Error(1)
}

// MockCredentialService implements handler.CredentialService for testing
type MockCredentialService struct {
	mock.Mock
}

func (m *MockCredentialService) List(ctx context.Context, userID int64) ([]model.CredentialResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CredentialResponse), args.Error(1)
}

func (m *MockCredentialService) Create(ctx context.Context, userID int64, req model.CredentialRequest) (model.CreatedResponse, error) {
	args := m.Called(ctx, userID, req)
	return args.Get(0).(model.CreatedResponse), args.Error(1)
}

func (m *MockCredentialService) Reveal(ctx context.Context, userID, id int64) (model.RevealResponse, error) {
	args := m.Called(ctx, userID, id)
	return args.Get(0).(model.RevealResponse), args.Error(1)
}

func (m *MockCredentialService) Update(ctx context.Context, userID, id int64, req model.CredentialUpdate) error {
	args := m.Called(ctx, userID, id, req)
	return args.Error(0)
}

func (m *MockCredentialService) Delete(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

// MockGeneratorService implements handler.GeneratorService for testing
type MockGeneratorService struct {
	mock.Mock
}

func (m *MockGeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	args := m.Called(req)
	return args.Get(0).(model.GenerateResponse), args.Error(1)
}

func (m *MockGeneratorService) Strength(req model.StrengthRequest) model.StrengthResponse {
	args := m.Called(req)
	return args.Get(0).(model.StrengthResponse)
}
