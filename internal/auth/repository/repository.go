package repository

import authdomain "tasktrack/internal/auth/domain"

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create persists a new user. Returns errs.ErrAlreadyExists when the
	// email is already taken (enforced atomically by the unique index).
	Create(user *authdomain.User) error

	// FindByEmail finds a user by exact email match, (nil, nil) if absent.
	FindByEmail(email string) (*authdomain.User, error)

	// FindByID finds a user by id, (nil, nil) if absent.
	FindByID(id uint) (*authdomain.User, error)
}
