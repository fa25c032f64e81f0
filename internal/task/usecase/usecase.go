package usecase

import (
	"tasktrack/internal/task/domain"
	"tasktrack/internal/task/dto"
)

// TaskUsecase defines owner-scoped task operations. Every method takes the
// caller's user id as established by the auth middleware; ownership is
// enforced here, not in handlers.
type TaskUsecase interface {
	// GetUserTasks returns all tasks owned by the caller.
	GetUserTasks(userID uint) ([]*domain.Task, error)

	// CreateTask inserts a task owned by the caller. Completion starts false.
	CreateTask(userID uint, req *dto.CreateTaskRequest) (*domain.Task, error)

	// UpdateTask replaces title and completion of the caller's task.
	// Returns errs.ErrNotFound if absent, errs.ErrForbidden if owned by
	// someone else.
	UpdateTask(userID, taskID uint, req *dto.UpdateTaskRequest) (*domain.Task, error)

	// DeleteTask removes the caller's task, with the same error contract
	// as UpdateTask.
	DeleteTask(userID, taskID uint) error
}
