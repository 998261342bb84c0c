// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budget-bot/backend/internal/application/usecase/report"
	domainerror "github.com/budget-bot/backend/internal/domain/error"
	"github.com/budget-bot/backend/internal/integration/entrypoint/dto"
	"github.com/budget-bot/backend/internal/integration/entrypoint/middleware"
)

// ReportController handles the report dialogue and fast report endpoints.
type ReportController struct {
	dialogUseCase     *report.DialogUseCase
	fastReportUseCase *report.FastReportUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	dialogUseCase *report.DialogUseCase,
	fastReportUseCase *report.FastReportUseCase,
) *ReportController {
	return &ReportController{
		dialogUseCase:     dialogUseCase,
		fastReportUseCase: fastReportUseCase,
	}
}

// StartDialog handles POST /users/:userID/report/dialog requests.
// It opens a fresh report dialogue, discarding any previous one.
func (c *ReportController) StartDialog(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondMissingUserID(ctx)
		return
	}

	result, err := c.dialogUseCase.Start(ctx.Request.Context(), userID)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDialogStateResponse(result))
}

// StepDialog handles POST /users/:userID/report/dialog/step requests.
// It feeds one answer into the dialogue. When the dialogue completes, the
// response body is the rendered report file instead of a dialogue state.
func (c *ReportController) StepDialog(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondMissingUserID(ctx)
		return
	}

	var req dto.DialogStepRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidChoice),
		})
		return
	}

	result, err := c.dialogUseCase.Step(ctx.Request.Context(), userID, req.Input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	if result.Done && result.Report != nil {
		artifact := result.Report
		ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.FileName))
		ctx.Data(http.StatusOK, artifact.ContentType, artifact.Content)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDialogStateResponse(result))
}

// CancelDialog handles DELETE /users/:userID/report/dialog requests.
func (c *ReportController) CancelDialog(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondMissingUserID(ctx)
		return
	}

	if err := c.dialogUseCase.Cancel(ctx.Request.Context(), userID); err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// FastReport handles GET /users/:userID/report/fast requests.
// It returns a plain text table for the current month.
func (c *ReportController) FastReport(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondMissingUserID(ctx)
		return
	}

	text, err := c.fastReportUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(text))
}

// handleReportError handles report errors and returns appropriate HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		statusCode := c.getStatusCodeForReportError(reportErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: reportErr.Message,
			Code:  string(reportErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForReportError maps report error codes to HTTP status codes.
func (c *ReportController) getStatusCodeForReportError(code domainerror.ReportErrorCode) int {
	switch code {
	case domainerror.ErrCodeSessionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeStateViolation:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidYear,
		domainerror.ErrCodeInvalidMonth,
		domainerror.ErrCodeInvalidDay,
		domainerror.ErrCodeInvalidChoice,
		domainerror.ErrCodeUnknownFormat:
		return http.StatusBadRequest
	case domainerror.ErrCodeDataUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondMissingUserID reports a request that bypassed the user ID middleware.
func respondMissingUserID(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Missing user ID",
		Code:  string(domainerror.ErrCodeUserNotFound),
	})
}
