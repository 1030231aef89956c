package models

import (
	"time"
)

// TaskStatus is persisted and serialized as its string literal.
type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
)

// TaskStatuses lists every accepted status in display order.
var TaskStatuses = []TaskStatus{StatusPending, StatusInProgress, StatusCompleted}

func (s TaskStatus) IsValid() bool {
	for _, status := range TaskStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type Task struct {
	ID          int64      `gorm:"primaryKey;autoIncrement;index:ix_tasks_id" json:"id"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description *string    `gorm:"type:text" json:"description"`
	Status      TaskStatus `gorm:"size:50;not null;default:pending;index:ix_tasks_status" json:"status"`
	CreateDate  time.Time  `gorm:"column:create_date;not null;autoCreateTime" json:"create_date"`
	DueDate     *time.Time `gorm:"column:due_date;index:ix_tasks_due_date" json:"due_date"`
}

func (Task) TableName() string {
	return "tasks"
}

// TaskList is the paginated listing returned by GET /api/tasks.
type TaskList struct {
	Tasks []Task `json:"tasks"`
	Total int64  `json:"total"`
}
