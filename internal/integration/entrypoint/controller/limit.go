package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budget-bot/backend/internal/application/usecase/limits"
	domainerror "github.com/budget-bot/backend/internal/domain/error"
	"github.com/budget-bot/backend/internal/integration/entrypoint/dto"
	"github.com/budget-bot/backend/internal/integration/entrypoint/middleware"
)

// LimitController handles monthly limit endpoints.
type LimitController struct {
	setUseCase *limits.SetLimitUseCase
	getUseCase *limits.GetLimitsUseCase
}

// NewLimitController creates a new limit controller instance.
func NewLimitController(
	setUseCase *limits.SetLimitUseCase,
	getUseCase *limits.GetLimitsUseCase,
) *LimitController {
	return &LimitController{
		setUseCase: setUseCase,
		getUseCase: getUseCase,
	}
}

// Set handles PUT /users/:userID/limits requests.
func (c *LimitController) Set(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondMissingUserID(ctx)
		return
	}

	var req dto.SetLimitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidAmount),
		})
		return
	}

	err := c.setUseCase.Execute(ctx.Request.Context(), limits.SetLimitInput{
		UserID:   userID,
		Category: req.Category,
		Amount:   req.Amount,
	})
	if err != nil {
		c.handleLimitError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// List handles GET /users/:userID/limits requests.
func (c *LimitController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondMissingUserID(ctx)
		return
	}

	set, err := c.getUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		c.handleLimitError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLimitListResponse(set))
}

// handleLimitError handles limit errors and returns appropriate HTTP responses.
func (c *LimitController) handleLimitError(ctx *gin.Context, err error) {
	var expErr *domainerror.ExpenseError
	if errors.As(err, &expErr) {
		statusCode := http.StatusBadRequest
		if expErr.Code == domainerror.ErrCodeExpenseInternalError {
			statusCode = http.StatusInternalServerError
		}
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
