package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budget-bot/backend/internal/application/usecase/user"
	domainerror "github.com/budget-bot/backend/internal/domain/error"
	"github.com/budget-bot/backend/internal/integration/entrypoint/dto"
	"github.com/budget-bot/backend/internal/integration/entrypoint/middleware"
)

// UserController handles user registration and timezone endpoints.
type UserController struct {
	registerUseCase    *user.RegisterUserUseCase
	setTimezoneUseCase *user.SetTimezoneUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(
	registerUseCase *user.RegisterUserUseCase,
	setTimezoneUseCase *user.SetTimezoneUseCase,
) *UserController {
	return &UserController{
		registerUseCase:    registerUseCase,
		setTimezoneUseCase: setTimezoneUseCase,
	}
}

// Register handles POST /users requests.
// Registration is idempotent; repeating it returns the existing user.
func (c *UserController) Register(ctx *gin.Context) {
	var req dto.RegisterUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeUserNotFound),
		})
		return
	}

	registered, err := c.registerUseCase.Execute(ctx.Request.Context(), req.ID)
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToUserResponse(registered))
}

// SetTimezone handles PUT /users/:userID/timezone requests.
func (c *UserController) SetTimezone(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondMissingUserID(ctx)
		return
	}

	var req dto.SetTimezoneRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidTimezone),
		})
		return
	}

	offset, err := c.setTimezoneUseCase.Execute(ctx.Request.Context(), user.SetTimezoneInput{
		UserID:  userID,
		Message: req.Timezone,
	})
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"timezone": offset})
}

// handleUserError handles user errors and returns appropriate HTTP responses.
func (c *UserController) handleUserError(ctx *gin.Context, err error) {
	var userErr *domainerror.UserError
	if errors.As(err, &userErr) {
		statusCode := c.getStatusCodeForUserError(userErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: userErr.Message,
			Code:  string(userErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForUserError maps user error codes to HTTP status codes.
func (c *UserController) getStatusCodeForUserError(code domainerror.UserErrorCode) int {
	switch code {
	case domainerror.ErrCodeUserNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidTimezone:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
