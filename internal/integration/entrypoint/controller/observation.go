// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/usecase/observation"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
	"github.com/lifetrack/backend/internal/integration/entrypoint/dto"
	"github.com/lifetrack/backend/internal/integration/entrypoint/middleware"
)

// ObservationController handles per-day value recording endpoints.
type ObservationController struct {
	listUseCase   *observation.ListObservationsUseCase
	upsertUseCase *observation.UpsertObservationUseCase
	deleteUseCase *observation.DeleteObservationUseCase
}

// NewObservationController creates a new observation controller instance.
func NewObservationController(
	listUseCase *observation.ListObservationsUseCase,
	upsertUseCase *observation.UpsertObservationUseCase,
	deleteUseCase *observation.DeleteObservationUseCase,
) *ObservationController {
	return &ObservationController{
		listUseCase:   listUseCase,
		upsertUseCase: upsertUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /categories/:id/observations requests.
func (c *ObservationController) List(ctx *gin.Context) {
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

	input := observation.ListObservationsInput{
		UserID:     userID,
		CategoryID: categoryID,
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleObservationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToObservationListResponse(output.Observations))
}

// Upsert handles PUT /categories/:id/observations requests. Recording the
// same day twice replaces the value.
func (c *ObservationController) Upsert(ctx *gin.Context) {
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

	var req dto.UpsertObservationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidObservationDate),
		})
		return
	}

	input := observation.UpsertObservationInput{
		UserID:     userID,
		CategoryID: categoryID,
		Date:       req.Date,
		Value:      req.Value,
	}

	output, err := c.upsertUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleObservationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToObservationResponse(output.Observation))
}

// Delete handles DELETE /categories/:id/observations/:date requests.
func (c *ObservationController) Delete(ctx *gin.Context) {
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

	input := observation.DeleteObservationInput{
		UserID:     userID,
		CategoryID: categoryID,
		Date:       ctx.Param("date"),
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleObservationError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleObservationError handles observation errors and returns appropriate HTTP responses.
func (c *ObservationController) handleObservationError(ctx *gin.Context, err error) {
	var obsErr *domainerror.ObservationError
	if errors.As(err, &obsErr) {
		statusCode := c.getStatusCodeForObservationError(obsErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: obsErr.Message,
			Code:  string(obsErr.Code),
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

// getStatusCodeForObservationError maps observation error codes to HTTP status codes.
func (c *ObservationController) getStatusCodeForObservationError(code domainerror.ObservationErrorCode) int {
	switch code {
	case domainerror.ErrCodeObservationNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidObservationDate,
		domainerror.ErrCodeNegativeObservationValue:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
