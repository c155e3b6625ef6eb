// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifetrack/backend/internal/application/usecase/transaction"
	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
	"github.com/lifetrack/backend/internal/integration/entrypoint/dto"
	"github.com/lifetrack/backend/internal/integration/entrypoint/middleware"
)

// TransactionController handles finance tracking endpoints.
type TransactionController struct {
	listUseCase            *transaction.ListTransactionsUseCase
	createUseCase          *transaction.CreateTransactionUseCase
	updateUseCase          *transaction.UpdateTransactionUseCase
	deleteUseCase          *transaction.DeleteTransactionUseCase
	listRecurringUseCase   *transaction.ListRecurringUseCase
	createRecurringUseCase *transaction.CreateRecurringUseCase
	deleteRecurringUseCase *transaction.DeleteRecurringUseCase
	applyRecurringUseCase  *transaction.ApplyRecurringUseCase
	suggestUseCase         *transaction.SuggestCategoryUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	listRecurringUseCase *transaction.ListRecurringUseCase,
	createRecurringUseCase *transaction.CreateRecurringUseCase,
	deleteRecurringUseCase *transaction.DeleteRecurringUseCase,
	applyRecurringUseCase *transaction.ApplyRecurringUseCase,
	suggestUseCase *transaction.SuggestCategoryUseCase,
) *TransactionController {
	return &TransactionController{
		listUseCase:            listUseCase,
		createUseCase:          createUseCase,
		updateUseCase:          updateUseCase,
		deleteUseCase:          deleteUseCase,
		listRecurringUseCase:   listRecurringUseCase,
		createRecurringUseCase: createRecurringUseCase,
		deleteRecurringUseCase: deleteRecurringUseCase,
		applyRecurringUseCase:  applyRecurringUseCase,
		suggestUseCase:         suggestUseCase,
	}
}

// List handles GET /transactions requests. Year and month default to the
// current calendar month.
func (c *TransactionController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	year, month := c.parseYearMonth(ctx)
	input := transaction.ListTransactionsInput{
		UserID: userID,
		Year:   year,
		Month:  month,
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Transactions, output.Summary))
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidAmount),
		})
		return
	}

	input := transaction.CreateTransactionInput{
		UserID:   userID,
		Type:     entity.TransactionType(req.Type),
		Category: req.Category,
		Amount:   decimal.NewFromFloat(req.Amount),
		Currency: req.Currency,
		Note:     req.Note,
		Date:     req.Date,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// Update handles PATCH /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID format",
		})
		return
	}

	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := transaction.UpdateTransactionInput{
		UserID:        userID,
		TransactionID: transactionID,
		Category:      req.Category,
		Currency:      req.Currency,
		Note:          req.Note,
		Date:          req.Date,
	}
	if req.Type != nil {
		txnType := entity.TransactionType(*req.Type)
		input.Type = &txnType
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID format",
		})
		return
	}

	input := transaction.DeleteTransactionInput{
		UserID:        userID,
		TransactionID: transactionID,
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ListRecurring handles GET /transactions/recurring requests.
func (c *TransactionController) ListRecurring(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listRecurringUseCase.Execute(ctx.Request.Context(), transaction.ListRecurringInput{
		UserID: userID,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecurringListResponse(output.Recurring))
}

// CreateRecurring handles POST /transactions/recurring requests.
func (c *TransactionController) CreateRecurring(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateRecurringRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidRecurringDay),
		})
		return
	}

	input := transaction.CreateRecurringInput{
		UserID:       userID,
		Type:         entity.TransactionType(req.Type),
		Category:     req.Category,
		Amount:       decimal.NewFromFloat(req.Amount),
		Currency:     req.Currency,
		Note:         req.Note,
		RecurringDay: req.RecurringDay,
	}

	output, err := c.createRecurringUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRecurringResponse(output.Recurring))
}

// DeleteRecurring handles DELETE /transactions/recurring/:id requests.
// Already materialized transactions are left untouched.
func (c *TransactionController) DeleteRecurring(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	recurringID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid recurring template ID format",
		})
		return
	}

	input := transaction.DeleteRecurringInput{
		UserID:      userID,
		RecurringID: recurringID,
	}

	if err := c.deleteRecurringUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ApplyRecurring handles POST /transactions/recurring/apply requests. The
// run is idempotent per month.
func (c *TransactionController) ApplyRecurring(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	year, month := c.parseYearMonth(ctx)
	input := transaction.ApplyRecurringInput{
		UserID: userID,
		Year:   year,
		Month:  month,
	}

	output, err := c.applyRecurringUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToApplyRecurringResponse(output.Created))
}

// SuggestCategory handles POST /transactions/suggest-category requests.
func (c *TransactionController) SuggestCategory(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.SuggestCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := transaction.SuggestCategoryInput{
		UserID: userID,
		Note:   req.Note,
	}

	output, err := c.suggestUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuggestCategoryResponse{
		Category:   output.Suggestion.Category,
		Confidence: output.Suggestion.Confidence,
		Reasoning:  output.Suggestion.Reasoning,
	})
}

// parseYearMonth reads year/month query parameters, defaulting to the
// current calendar month.
func (c *TransactionController) parseYearMonth(ctx *gin.Context) (int, int) {
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
	return year, month
}

// handleTransactionError handles transaction errors and returns appropriate HTTP responses.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error) {
	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		statusCode := c.getStatusCodeForTransactionError(txnErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForTransactionError maps transaction error codes to HTTP status codes.
func (c *TransactionController) getStatusCodeForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeSuggestionUnavailable:
		return http.StatusServiceUnavailable
	case domainerror.ErrCodeInvalidTransactionType,
		domainerror.ErrCodeInvalidAmount,
		domainerror.ErrCodeInvalidRecurringDay,
		domainerror.ErrCodeInvalidTransactionDate:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
