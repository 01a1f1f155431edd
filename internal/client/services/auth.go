package services

import (
	"context"

	"github.com/dvalero/finwallet/internal/client/models"
)

// AuthAPI binds the authentication endpoints. Persisting the returned
// credentials and tracking session state is the session manager's job, not
// this binding's.
type AuthAPI interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error)
}

type authAPI struct {
	api Caller
}

func NewAuthAPI(api Caller) AuthAPI {
	return &authAPI{api: api}
}

func (a *authAPI) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := a.api.Post(ctx, "/api/Auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *authAPI) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := a.api.Post(ctx, "/api/Auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *authAPI) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error) {
	var user models.User
	if err := a.api.Put(ctx, "/api/Auth/profile", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
