// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lifetrack/backend/internal/application/usecase/exercise"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
	"github.com/lifetrack/backend/internal/integration/entrypoint/dto"
	"github.com/lifetrack/backend/internal/integration/entrypoint/middleware"
)

// ExerciseController handles exercise calendar endpoints.
type ExerciseController struct {
	listUseCase     *exercise.ListDaysUseCase
	logUseCase      *exercise.LogDayUseCase
	removeUseCase   *exercise.RemoveDayUseCase
	noteUseCase     *exercise.SaveNoteUseCase
	progressUseCase *exercise.MonthProgressUseCase
}

// NewExerciseController creates a new exercise controller instance.
func NewExerciseController(
	listUseCase *exercise.ListDaysUseCase,
	logUseCase *exercise.LogDayUseCase,
	removeUseCase *exercise.RemoveDayUseCase,
	noteUseCase *exercise.SaveNoteUseCase,
	progressUseCase *exercise.MonthProgressUseCase,
) *ExerciseController {
	return &ExerciseController{
		listUseCase:     listUseCase,
		logUseCase:      logUseCase,
		removeUseCase:   removeUseCase,
		noteUseCase:     noteUseCase,
		progressUseCase: progressUseCase,
	}
}

// List handles GET /exercise requests. Days and notes come back together.
func (c *ExerciseController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), exercise.ListDaysInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve exercise days",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExerciseListResponse(output.Days, output.Notes))
}

// LogDay handles PUT /exercise/days requests. Logging the same day twice
// replaces the earlier row.
func (c *ExerciseController) LogDay(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.LogExerciseDayRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidExerciseDate),
		})
		return
	}

	input := exercise.LogDayInput{
		UserID:    userID,
		Date:      req.Date,
		Completed: req.Completed,
	}

	output, err := c.logUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExerciseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ExerciseDayResponse{
		Date:      output.Day.Date.String(),
		Completed: output.Day.Completed,
	})
}

// RemoveDay handles DELETE /exercise/days/:date requests.
func (c *ExerciseController) RemoveDay(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := exercise.RemoveDayInput{
		UserID: userID,
		Date:   ctx.Param("date"),
	}

	if err := c.removeUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleExerciseError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// SaveNote handles PUT /exercise/notes requests. A blank note removes the
// existing one.
func (c *ExerciseController) SaveNote(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.SaveExerciseNoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidExerciseDate),
		})
		return
	}

	input := exercise.SaveNoteInput{
		UserID: userID,
		Date:   req.Date,
		Note:   req.Note,
	}

	output, err := c.noteUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExerciseError(ctx, err)
		return
	}

	if output.Note == nil {
		ctx.Status(http.StatusNoContent)
		return
	}

	ctx.JSON(http.StatusOK, dto.ExerciseNoteResponse{
		Date: output.Note.Date.String(),
		Note: output.Note.Note,
	})
}

// MonthProgress handles GET /exercise/progress requests. Year and month
// default to the current calendar month.
func (c *ExerciseController) MonthProgress(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	now := time.Now().UTC()
	year := now.Year()
	month := int(now.Month())
	if yearStr := ctx.Query("year"); yearStr != "" {
		if parsed, err := strconv.Atoi(yearStr); err == nil {
			year = parsed
		}
	}
	if monthStr := ctx.Query("month"); monthStr != "" {
		if parsed, err := strconv.Atoi(monthStr); err == nil {
			month = parsed
		}
	}

	input := exercise.MonthProgressInput{
		UserID: userID,
		Year:   year,
		Month:  month,
	}

	output, err := c.progressUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExerciseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MonthProgressResponse{
		DaysCompleted: output.DaysCompleted,
		Goal:          output.Goal,
		GoalMet:       output.GoalMet,
	})
}

// handleExerciseError handles exercise errors and returns appropriate HTTP responses.
func (c *ExerciseController) handleExerciseError(ctx *gin.Context, err error) {
	var exErr *domainerror.ExerciseError
	if errors.As(err, &exErr) {
		statusCode := http.StatusBadRequest
		if exErr.Code == domainerror.ErrCodeExerciseDayNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: exErr.Message,
			Code:  string(exErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
