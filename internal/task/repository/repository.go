package repository

import "tasktrack/internal/task/domain"

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *domain.Task) error

	// FindByID finds a task by its ID, (nil, nil) if absent
	FindByID(id uint) (*domain.Task, error)

	// FindByUserID returns all tasks owned by the given user
	FindByUserID(userID uint) ([]*domain.Task, error)

	// Update updates an existing task
	Update(task *domain.Task) error

	// Delete deletes a task by ID
	Delete(id uint) error
}
