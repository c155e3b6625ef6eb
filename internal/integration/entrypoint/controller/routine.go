// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/usecase/routine"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
	"github.com/lifetrack/backend/internal/integration/entrypoint/dto"
	"github.com/lifetrack/backend/internal/integration/entrypoint/middleware"
)

// RoutineController handles recurring-activity endpoints.
type RoutineController struct {
	listUseCase        *routine.ListRoutinesUseCase
	createUseCase      *routine.CreateRoutineUseCase
	updateUseCase      *routine.UpdateRoutineUseCase
	deleteUseCase      *routine.DeleteRoutineUseCase
	toggleUseCase      *routine.ToggleCompletionUseCase
	completionsUseCase *routine.ListCompletionsUseCase
}

// NewRoutineController creates a new routine controller instance.
func NewRoutineController(
	listUseCase *routine.ListRoutinesUseCase,
	createUseCase *routine.CreateRoutineUseCase,
	updateUseCase *routine.UpdateRoutineUseCase,
	deleteUseCase *routine.DeleteRoutineUseCase,
	toggleUseCase *routine.ToggleCompletionUseCase,
	completionsUseCase *routine.ListCompletionsUseCase,
) *RoutineController {
	return &RoutineController{
		listUseCase:        listUseCase,
		createUseCase:      createUseCase,
		updateUseCase:      updateUseCase,
		deleteUseCase:      deleteUseCase,
		toggleUseCase:      toggleUseCase,
		completionsUseCase: completionsUseCase,
	}
}

// List handles GET /routines requests.
func (c *RoutineController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), routine.ListRoutinesInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve routines",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRoutineListResponse(output.Routines))
}

// Create handles POST /routines requests.
func (c *RoutineController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateRoutineRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeEmptyRoutineActivity),
		})
		return
	}

	input := routine.CreateRoutineInput{
		UserID:   userID,
		Time:     req.Time,
		Activity: req.Activity,
		Weekdays: req.Weekdays,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRoutineError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRoutineResponse(output.Routine))
}

// Update handles PATCH /routines/:id requests.
func (c *RoutineController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	routineID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid routine ID format",
		})
		return
	}

	var req dto.UpdateRoutineRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := routine.UpdateRoutineInput{
		UserID:    userID,
		RoutineID: routineID,
		Time:      req.Time,
		Activity:  req.Activity,
		Weekdays:  req.Weekdays,
		IsActive:  req.IsActive,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRoutineError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRoutineResponse(output.Routine))
}

// Delete handles DELETE /routines/:id requests. Completions for the routine
// are removed with it.
func (c *RoutineController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	routineID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid routine ID format",
		})
		return
	}

	input := routine.DeleteRoutineInput{
		UserID:    userID,
		RoutineID: routineID,
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleRoutineError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ToggleCompletion handles POST /routines/:id/toggle requests.
func (c *RoutineController) ToggleCompletion(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	routineID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid routine ID format",
		})
		return
	}

	var req dto.ToggleCompletionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidCompletionDate),
		})
		return
	}

	input := routine.ToggleCompletionInput{
		UserID:    userID,
		RoutineID: routineID,
		Date:      req.Date,
	}

	output, err := c.toggleUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRoutineError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToggleCompletionResponse{
		Completed: output.Completed,
	})
}

// ListCompletions handles GET /routines/completions requests. Start and end
// dates come from query parameters.
func (c *RoutineController) ListCompletions(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := routine.ListCompletionsInput{
		UserID:    userID,
		StartDate: ctx.Query("start"),
		EndDate:   ctx.Query("end"),
	}

	output, err := c.completionsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRoutineError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCompletionListResponse(output.Completions))
}

// handleRoutineError handles routine errors and returns appropriate HTTP responses.
func (c *RoutineController) handleRoutineError(ctx *gin.Context, err error) {
	var routineErr *domainerror.RoutineError
	if errors.As(err, &routineErr) {
		statusCode := c.getStatusCodeForRoutineError(routineErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: routineErr.Message,
			Code:  string(routineErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForRoutineError maps routine error codes to HTTP status codes.
func (c *RoutineController) getStatusCodeForRoutineError(code domainerror.RoutineErrorCode) int {
	switch code {
	case domainerror.ErrCodeRoutineNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidRoutineTime,
		domainerror.ErrCodeEmptyRoutineActivity,
		domainerror.ErrCodeInvalidWeekday,
		domainerror.ErrCodeInvalidCompletionDate:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
