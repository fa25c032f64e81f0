package usecase

import (
	authdomain "tasktrack/internal/auth/domain"
	authdto "tasktrack/internal/auth/dto"
	"tasktrack/internal/auth/repository"
	"tasktrack/internal/auth/token"
	"tasktrack/internal/errs"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	tokens   *token.Manager
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, tokens *token.Manager) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (u *authUsecase) Register(req *authdto.RegisterRequest) error {
	existing, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return errs.ErrAlreadyExists
	}

	hash, err := repository.HashPassword(req.Password)
	if err != nil {
		return err
	}

	user := &authdomain.User{
		Email:        req.Email,
		PasswordHash: hash,
	}

	// The unique index makes the duplicate check atomic; a concurrent
	// registration that slips past the lookup above still fails here.
	return u.userRepo.Create(user)
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}

	// Same failure for unknown email and wrong password.
	if user == nil || !repository.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, errs.ErrInvalidCredentials
	}

	signed, err := u.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &authdto.TokenResponse{Token: signed}, nil
}

func (u *authUsecase) Profile(userID uint) (*authdto.ProfileResponse, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.ErrNotFound
	}
	return &authdto.ProfileResponse{ID: user.ID, Email: user.Email}, nil
}
