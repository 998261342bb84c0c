package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/budget-bot/backend/internal/application/usecase/expense"
	domainerror "github.com/budget-bot/backend/internal/domain/error"
	"github.com/budget-bot/backend/internal/integration/entrypoint/dto"
	"github.com/budget-bot/backend/internal/integration/entrypoint/middleware"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	addUseCase    *expense.AddExpenseUseCase
	listUseCase   *expense.ListExpensesUseCase
	deleteUseCase *expense.DeleteExpenseUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	addUseCase *expense.AddExpenseUseCase,
	listUseCase *expense.ListExpensesUseCase,
	deleteUseCase *expense.DeleteExpenseUseCase,
) *ExpenseController {
	return &ExpenseController{
		addUseCase:    addUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Add handles POST /users/:userID/expenses requests.
func (c *ExpenseController) Add(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondMissingUserID(ctx)
		return
	}

	var req dto.AddExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidAmount),
		})
		return
	}

	record, err := c.addUseCase.Execute(ctx.Request.Context(), expense.AddExpenseInput{
		UserID:   userID,
		Category: req.Category,
		Amount:   req.Amount,
	})
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(record))
}

// List handles GET /users/:userID/expenses requests.
func (c *ExpenseController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondMissingUserID(ctx)
		return
	}

	input := expense.ListExpensesInput{
		UserID:   userID,
		Category: ctx.Query("category"),
	}
	if limitStr := ctx.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err == nil && limit > 0 {
			input.Limit = limit
		}
	}

	records, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(records))
}

// Delete handles DELETE /users/:userID/expenses/:id requests.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondMissingUserID(ctx)
		return
	}

	recordID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense ID format",
			Code:  string(domainerror.ErrCodeExpenseNotFound),
		})
		return
	}

	err = c.deleteUseCase.Execute(ctx.Request.Context(), expense.DeleteExpenseInput{
		UserID: userID,
		ID:     recordID,
	})
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleExpenseError handles expense errors and returns appropriate HTTP responses.
func (c *ExpenseController) handleExpenseError(ctx *gin.Context, err error) {
	var expErr *domainerror.ExpenseError
	if errors.As(err, &expErr) {
		statusCode := c.getStatusCodeForExpenseError(expErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: expErr.Message,
			Code:  string(expErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForExpenseError maps expense error codes to HTTP status codes.
func (c *ExpenseController) getStatusCodeForExpenseError(code domainerror.ExpenseErrorCode) int {
	switch code {
	case domainerror.ErrCodeExpenseNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnknownCategory,
		domainerror.ErrCodeInvalidAmount,
		domainerror.ErrCodeNonPositiveAmount:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
