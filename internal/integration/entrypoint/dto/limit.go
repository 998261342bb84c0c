package dto

import (
	"github.com/budget-bot/backend/internal/domain/entity"
)

// SetLimitRequest carries a monthly spending limit for one category.
type SetLimitRequest struct {
	Category string `json:"category" binding:"required"`
	Amount   string `json:"amount" binding:"required"`
}

// LimitEntryResponse represents a single category limit.
type LimitEntryResponse struct {
	Category    string `json:"category"`
	DisplayName string `json:"displayName"`
	Amount      string `json:"amount"`
}

// LimitListResponse wraps all configured limits of a user.
type LimitListResponse struct {
	Limits []LimitEntryResponse `json:"limits"`
}

// ToLimitListResponse converts a limit set to its response payload.
// Entries follow the fixed category order, skipping unset categories.
func ToLimitListResponse(set *entity.LimitSet) LimitListResponse {
	entries := make([]LimitEntryResponse, 0, len(set.Limits))
	for _, category := range entity.Categories() {
		amount, ok := set.Get(category)
		if !ok {
			continue
		}
		entries = append(entries, LimitEntryResponse{
			Category:    string(category),
			DisplayName: category.DisplayName(),
			Amount:      amount.StringFixed(2),
		})
	}
	return LimitListResponse{Limits: entries}
}
