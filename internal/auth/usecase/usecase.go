package usecase

import (
	authdto "tasktrack/internal/auth/dto"
)

// AuthUsecase defines registration, credential verification and profile lookup.
type AuthUsecase interface {
	// Register creates a user with a hashed credential. Returns
	// errs.ErrAlreadyExists when the email is taken. No token is issued;
	// the caller must log in separately.
	Register(req *authdto.RegisterRequest) error

	// Login verifies the presented credentials and mints a signed token.
	// Unknown email and wrong password both return errs.ErrInvalidCredentials.
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)

	// Profile returns the stored identity for a previously authenticated
	// user id. Returns errs.ErrNotFound if the user row is gone.
	Profile(userID uint) (*authdto.ProfileResponse, error)
}
