package dto

import (
	"github.com/budget-bot/backend/internal/application/usecase/report"
)

// DialogStepRequest carries one user answer for the report dialogue.
type DialogStepRequest struct {
	Input string `json:"input" binding:"required"`
}

// DialogStateResponse describes the dialogue position after a turn.
type DialogStateResponse struct {
	State  string `json:"state"`
	Prompt string `json:"prompt,omitempty"`
	Error  string `json:"error,omitempty"`
	Done   bool   `json:"done"`
}

// ToDialogStateResponse converts a dialogue step result to its response payload.
func ToDialogStateResponse(result *report.StepResult) DialogStateResponse {
	return DialogStateResponse{
		State:  string(result.State),
		Prompt: result.Prompt,
		Error:  result.ErrorText,
		Done:   result.Done,
	}
}
