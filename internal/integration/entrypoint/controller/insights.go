// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/usecase/insights"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
	"github.com/lifetrack/backend/internal/domain/valueobject"
	"github.com/lifetrack/backend/internal/integration/entrypoint/dto"
	"github.com/lifetrack/backend/internal/integration/entrypoint/middleware"
)

// InsightsController handles derived-statistics endpoints.
type InsightsController struct {
	snapshotUseCase *insights.GetSnapshotUseCase
	heatmapUseCase  *insights.GetHeatmapUseCase
}

// NewInsightsController creates a new insights controller instance.
func NewInsightsController(
	snapshotUseCase *insights.GetSnapshotUseCase,
	heatmapUseCase *insights.GetHeatmapUseCase,
) *InsightsController {
	return &InsightsController{
		snapshotUseCase: snapshotUseCase,
		heatmapUseCase:  heatmapUseCase,
	}
}

// Snapshot handles GET /categories/:id/insights requests. The optional
// "today" query parameter overrides the reference date, mainly for clients
// in other time zones.
func (c *InsightsController) Snapshot(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	categoryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}

	today := valueobject.LocalDateOf(time.Now())
	if todayStr := ctx.Query("today"); todayStr != "" {
		parsed, err := valueobject.ParseLocalDate(todayStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid reference date",
				Code:  string(domainerror.ErrCodeInvalidReferenceDate),
			})
			return
		}
		today = parsed
	}

	input := insights.GetSnapshotInput{
		UserID:     userID,
		CategoryID: categoryID,
		Today:      today,
	}

	output, err := c.snapshotUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleInsightsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSnapshotResponse(output))
}

// Heatmap handles GET /categories/:id/heatmap requests. Year and month
// default to the current calendar month.
func (c *InsightsController) Heatmap(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	categoryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}

	now := valueobject.LocalDateOf(time.Now())
	year := now.Year
	month := int(now.Month)
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

	input := insights.GetHeatmapInput{
		UserID:     userID,
		CategoryID: categoryID,
		Year:       year,
		Month:      month,
	}

	output, err := c.heatmapUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleInsightsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHeatmapResponse(output))
}

// handleInsightsError handles insights errors and returns appropriate HTTP responses.
func (c *InsightsController) handleInsightsError(ctx *gin.Context, err error) {
	var insErr *domainerror.InsightsError
	if errors.As(err, &insErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: insErr.Message,
			Code:  string(insErr.Code),
		})
		return
	}

	var catErr *domainerror.CategoryError
	if errors.As(err, &catErr) {
		statusCode := http.StatusInternalServerError
		if catErr.Code == domainerror.ErrCodeCategoryNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: catErr.Message,
			Code:  string(catErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
