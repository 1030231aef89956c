package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Polceze/taskman/broker"
	"github.com/Polceze/taskman/database"
	"github.com/Polceze/taskman/models"

	"gorm.io/gorm"
)

type TaskServiceInterface interface {
	CreateTask(ctx context.Context, db *database.Database, input models.TaskCreate) (models.Task, error)
	GetTaskById(ctx context.Context, db *database.Database, id int64) (models.Task, error)
	UpdateTask(ctx context.Context, db *database.Database, id int64, input models.TaskUpdate) (models.Task, error)
	DeleteTask(ctx context.Context, db *database.Database, id int64) (bool, error)
	GetTasks(ctx context.Context, db *database.Database, params models.TaskListParams) ([]models.Task, int64, error)
}

// TaskService owns every read and write of the tasks table.
type TaskService struct {
	events *broker.EventPublisher
}

// NewTaskService returns a service that reports changes through events.
// A nil publisher disables change events.
func NewTaskService(events *broker.EventPublisher) *TaskService {
	return &TaskService{events: events}
}

func (s *TaskService) CreateTask(ctx context.Context, db *database.Database, input models.TaskCreate) (models.Task, error) {
	task := models.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		DueDate:     input.DueDate,
	}
	if task.Status == "" {
		task.Status = models.StatusPending
	}

	if err := db.DB.WithContext(ctx).Create(&task).Error; err != nil {
		return models.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	created, err := s.GetTaskById(ctx, db, task.ID)
	if err != nil {
		return models.Task{}, err
	}

	s.events.Publish(broker.TaskCreated, broker.TaskEntity, created)
	return created, nil
}

func (s *TaskService) GetTaskById(ctx context.Context, db *database.Database, id int64) (models.Task, error) {
	var task models.Task
	if err := db.DB.WithContext(ctx).First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Task{}, ErrTaskNotFound
		}
		return models.Task{}, fmt.Errorf("failed to get task %d: %w", id, err)
	}
	return task, nil
}

// UpdateTask writes only the supplied fields of input. A missing id returns
// ErrTaskNotFound without touching the table.
func (s *TaskService) UpdateTask(ctx context.Context, db *database.Database, id int64, input models.TaskUpdate) (models.Task, error) {
	task, err := s.GetTaskById(ctx, db, id)
	if err != nil {
		return models.Task{}, err
	}

	if input.IsEmpty() {
		return task, nil
	}

	if err := db.DB.WithContext(ctx).Model(&task).Updates(input.Changes()).Error; err != nil {
		return models.Task{}, fmt.Errorf("failed to update task %d: %w", id, err)
	}

	updated, err := s.GetTaskById(ctx, db, id)
	if err != nil {
		return models.Task{}, err
	}

	s.events.Publish(broker.TaskUpdated, broker.TaskEntity, updated)
	return updated, nil
}

// DeleteTask removes the row and reports whether one existed.
func (s *TaskService) DeleteTask(ctx context.Context, db *database.Database, id int64) (bool, error) {
	result := db.DB.WithContext(ctx).Delete(&models.Task{}, id)
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete task %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	s.events.Publish(broker.TaskDeleted, broker.TaskEntity, map[string]interface{}{"id": id})
	return true, nil
}

// GetTasks returns one page ordered newest first, plus the size of the whole
// table.
func (s *TaskService) GetTasks(ctx context.Context, db *database.Database, params models.TaskListParams) ([]models.Task, int64, error) {
	var total int64
	if err := db.DB.WithContext(ctx).Model(&models.Task{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tasks: %w", err)
	}

	tasks := make([]models.Task, 0)
	err := db.DB.WithContext(ctx).
		Order("create_date DESC").
		Order("id DESC").
		Offset(params.Skip).
		Limit(params.Limit).
		Find(&tasks).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, total, nil
}
