package domain

import (
	"errors"
)

var (
	MessageSuccessRegister = "user registered successfully"
	MessageSuccessLogin    = "login successful"

	MessageFailedRegister = "failed to register user"
	MessageFailedLogin    = "failed to login"

	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRole        = errors.New("invalid user role")
)

type (
	RegisterRequest struct {
		Name      string `json:"name" validate:"required"`
		Email     string `json:"email" validate:"required,email"`
		Password  string `json:"password" validate:"required,min=8"`
		Role      string `json:"type" validate:"required,oneof=donor recipient"`
		Location  string `json:"location" validate:"omitempty"`
		Allergies string `json:"allergies" validate:"omitempty"`
	}

	RegisterResponse struct {
		UserID string `json:"user_id"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string      `json:"token"`
		User  UserSummary `json:"user"`
	}

	UserSummary struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Role string `json:"type"`
	}
)
