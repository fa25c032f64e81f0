package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasktrack/internal/errs"
	"tasktrack/internal/task/domain"
	"tasktrack/internal/task/dto"
	"tasktrack/internal/task/repository"
)

type fakeTasks struct {
	byID   map[uint]*domain.Task
	nextID uint
}

var _ repository.TaskRepository = (*fakeTasks)(nil)

func newFakeTasks() *fakeTasks {
	return &fakeTasks{byID: map[uint]*domain.Task{}, nextID: 1}
}

func (f *fakeTasks) Create(t *domain.Task) error {
	t.ID = f.nextID
	f.nextID++
	cpy := *t
	f.byID[t.ID] = &cpy
	return nil
}

func (f *fakeTasks) FindByID(id uint) (*domain.Task, error) {
	t, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cpy := *t
	return &cpy, nil
}

func (f *fakeTasks) FindByUserID(userID uint) ([]*domain.Task, error) {
	var out []*domain.Task
	for _, t := range f.byID {
		if t.UserID == userID {
			cpy := *t
			out = append(out, &cpy)
		}
	}
	return out, nil
}

func (f *fakeTasks) Update(t *domain.Task) error {
	cpy := *t
	f.byID[t.ID] = &cpy
	return nil
}

func (f *fakeTasks) Delete(id uint) error {
	delete(f.byID, id)
	return nil
}

const (
	userA uint = 1
	userB uint = 2
)

func TestCreateTask_RoundTrip(t *testing.T) {
	t.Parallel()
	uc := NewTaskUsecase(newFakeTasks())

	created, err := uc.CreateTask(userA, &dto.CreateTaskRequest{Title: "buy milk"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.IsCompleted)
	assert.Equal(t, userA, created.UserID)

	tasks, err := uc.GetUserTasks(userA)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "buy milk", tasks[0].Title)
}

func TestGetUserTasks_OwnerIsolation(t *testing.T) {
	t.Parallel()
	uc := NewTaskUsecase(newFakeTasks())

	_, err := uc.CreateTask(userA, &dto.CreateTaskRequest{Title: "a's task"})
	require.NoError(t, err)

	tasks, err := uc.GetUserTasks(userB)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestUpdateTask(t *testing.T) {
	t.Parallel()
	uc := NewTaskUsecase(newFakeTasks())

	created, err := uc.CreateTask(userA, &dto.CreateTaskRequest{Title: "draft"})
	require.NoError(t, err)

	updated, err := uc.UpdateTask(userA, created.ID, &dto.UpdateTaskRequest{
		Title: "final", IsCompleted: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "final", updated.Title)
	assert.True(t, updated.IsCompleted)

	_, err = uc.UpdateTask(userA, created.ID+100, &dto.UpdateTaskRequest{Title: "x"})
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestUpdateTask_ForbiddenForNonOwner(t *testing.T) {
	t.Parallel()
	uc := NewTaskUsecase(newFakeTasks())

	created, err := uc.CreateTask(userA, &dto.CreateTaskRequest{Title: "a's task"})
	require.NoError(t, err)

	_, err = uc.UpdateTask(userB, created.ID, &dto.UpdateTaskRequest{Title: "hijack"})
	assert.ErrorIs(t, err, errs.ErrForbidden)

	// The task is untouched.
	tasks, err := uc.GetUserTasks(userA)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "a's task", tasks[0].Title)
}

func TestDeleteTask(t *testing.T) {
	t.Parallel()
	uc := NewTaskUsecase(newFakeTasks())

	created, err := uc.CreateTask(userA, &dto.CreateTaskRequest{Title: "a's task"})
	require.NoError(t, err)

	assert.ErrorIs(t, uc.DeleteTask(userB, created.ID), errs.ErrForbidden)
	assert.ErrorIs(t, uc.DeleteTask(userA, created.ID+100), errs.ErrNotFound)

	require.NoError(t, uc.DeleteTask(userA, created.ID))
	tasks, err := uc.GetUserTasks(userA)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}
