// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/usecase/task"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
	"github.com/lifetrack/backend/internal/integration/entrypoint/dto"
	"github.com/lifetrack/backend/internal/integration/entrypoint/middleware"
)

// TaskController handles one-off scheduled task endpoints.
type TaskController struct {
	listUseCase   *task.ListTasksUseCase
	createUseCase *task.CreateTaskUseCase
	updateUseCase *task.UpdateTaskUseCase
	toggleUseCase *task.ToggleTaskUseCase
	deleteUseCase *task.DeleteTaskUseCase
}

// NewTaskController creates a new task controller instance.
func NewTaskController(
	listUseCase *task.ListTasksUseCase,
	createUseCase *task.CreateTaskUseCase,
	updateUseCase *task.UpdateTaskUseCase,
	toggleUseCase *task.ToggleTaskUseCase,
	deleteUseCase *task.DeleteTaskUseCase,
) *TaskController {
	return &TaskController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		toggleUseCase: toggleUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /tasks requests. Start and end dates come from query
// parameters.
func (c *TaskController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := task.ListTasksInput{
		UserID:    userID,
		StartDate: ctx.Query("start"),
		EndDate:   ctx.Query("end"),
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTaskError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTaskListResponse(output.Tasks))
}

// Create handles POST /tasks requests.
func (c *TaskController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeEmptyTaskTitle),
		})
		return
	}

	input := task.CreateTaskInput{
		UserID:      userID,
		Date:        req.Date,
		Time:        req.Time,
		Title:       req.Title,
		Description: req.Description,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTaskError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTaskResponse(output.Task))
}

// Update handles PATCH /tasks/:id requests.
func (c *TaskController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	taskID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid task ID format",
		})
		return
	}

	var req dto.UpdateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := task.UpdateTaskInput{
		UserID:      userID,
		TaskID:      taskID,
		Date:        req.Date,
		Time:        req.Time,
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTaskError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTaskResponse(output.Task))
}

// Toggle handles POST /tasks/:id/toggle requests.
func (c *TaskController) Toggle(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	taskID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid task ID format",
		})
		return
	}

	input := task.ToggleTaskInput{
		UserID: userID,
		TaskID: taskID,
	}

	output, err := c.toggleUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTaskError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTaskResponse(output.Task))
}

// Delete handles DELETE /tasks/:id requests.
func (c *TaskController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	taskID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid task ID format",
		})
		return
	}

	input := task.DeleteTaskInput{
		UserID: userID,
		TaskID: taskID,
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleTaskError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleTaskError handles task errors and returns appropriate HTTP responses.
func (c *TaskController) handleTaskError(ctx *gin.Context, err error) {
	var taskErr *domainerror.TaskError
	if errors.As(err, &taskErr) {
		statusCode := c.getStatusCodeForTaskError(taskErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: taskErr.Message,
			Code:  string(taskErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForTaskError maps task error codes to HTTP status codes.
func (c *TaskController) getStatusCodeForTaskError(code domainerror.TaskErrorCode) int {
	switch code {
	case domainerror.ErrCodeTaskNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeEmptyTaskTitle,
		domainerror.ErrCodeInvalidTaskDate,
		domainerror.ErrCodeInvalidTaskTime:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
