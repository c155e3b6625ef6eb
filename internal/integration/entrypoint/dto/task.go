// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/lifetrack/backend/internal/domain/entity"
)

// CreateTaskRequest represents the request body for task creation.
type CreateTaskRequest struct {
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time,omitempty"`
	Title       string `json:"title" binding:"required,min=1,max=200"`
	Description string `json:"description,omitempty"`
}

// UpdateTaskRequest represents the request body for task update.
type UpdateTaskRequest struct {
	Date        *string `json:"date,omitempty"`
	Time        *string `json:"time,omitempty"`
	Title       *string `json:"title,omitempty" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

// TaskResponse represents a single task in API responses.
type TaskResponse struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Time        string    `json:"time,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TaskListResponse represents the response for listing tasks.
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}

// ToTaskResponse converts a domain Task entity to a TaskResponse DTO.
func ToTaskResponse(task *entity.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID.String(),
		Date:        task.Date.String(),
		Time:        task.Time,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// ToTaskListResponse converts a list of Task entities to a TaskListResponse.
func ToTaskListResponse(tasks []*entity.Task) TaskListResponse {
	items := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskResponse(task)
	}
	return TaskListResponse{
		Tasks: items,
	}
}
