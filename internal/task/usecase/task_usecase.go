package usecase

import (
	"tasktrack/internal/errs"
	"tasktrack/internal/task/domain"
	"tasktrack/internal/task/dto"
	"tasktrack/internal/task/repository"
)

// taskUsecase implements TaskUsecase interface
type taskUsecase struct {
	taskRepo repository.TaskRepository
}

// NewTaskUsecase creates a new instance of taskUsecase
func NewTaskUsecase(taskRepo repository.TaskRepository) TaskUsecase {
	return &taskUsecase{taskRepo: taskRepo}
}

func (u *taskUsecase) GetUserTasks(userID uint) ([]*domain.Task, error) {
	return u.taskRepo.FindByUserID(userID)
}

func (u *taskUsecase) CreateTask(userID uint, req *dto.CreateTaskRequest) (*domain.Task, error) {
	task := &domain.Task{
		Title:       req.Title,
		IsCompleted: false,
		UserID:      userID,
	}
	if err := u.taskRepo.Create(task); err != nil {
		return nil, err
	}
	return task, nil
}

// ownedTask fetches a task and enforces that the caller owns it.
func (u *taskUsecase) ownedTask(userID, taskID uint) (*domain.Task, error) {
	task, err := u.taskRepo.FindByID(taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, errs.ErrNotFound
	}
	if task.UserID != userID {
		return nil, errs.ErrForbidden
	}
	return task, nil
}

func (u *taskUsecase) UpdateTask(userID, taskID uint, req *dto.UpdateTaskRequest) (*domain.Task, error) {
	task, err := u.ownedTask(userID, taskID)
	if err != nil {
		return nil, err
	}

	task.Title = req.Title
	task.IsCompleted = req.IsCompleted

	if err := u.taskRepo.Update(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *taskUsecase) DeleteTask(userID, taskID uint) error {
	if _, err := u.ownedTask(userID, taskID); err != nil {
		return err
	}
	return u.taskRepo.Delete(taskID)
}
