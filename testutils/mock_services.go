package testutils

import (
	"context"

	"github.com/Polceze/taskman/database"
	"github.com/Polceze/taskman/models"
	"github.com/stretchr/testify/mock"
)

// MockTaskService mocks the TaskServiceInterface for testing
type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) CreateTask(ctx context.Context, db *database.Database, input models.TaskCreate) (models.Task, error) {
	args := m.Called(ctx, db, input)
	return args.Get(0).(models.Task), args.Error(1)
}

func (m *MockTaskService) GetTaskById(ctx context.Context, db *database.Database, id int64) (models.Task, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(models.Task), args.Error(1)
}

func (m *MockTaskService) UpdateTask(ctx context.Context, db *database.Database, id int64, input models.TaskUpdate) (models.Task, error) {
	args := m.Called(ctx, db, id, input)
	return args.Get(0).(models.Task), args.Error(1)
}

func (m *MockTaskService) DeleteTask(ctx context.Context, db *database.Database, id int64) (bool, error) {
	args := m.Called(ctx, db, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockTaskService) GetTasks(ctx context.Context, db *database.Database, params models.TaskListParams) ([]models.Task, int64, error) {
	args := m.Called(ctx, db, params)
	return args.Get(0).([]models.Task), args.Get(1).(int64), args.Error(2)
}
