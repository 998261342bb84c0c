package dto

import (
	"github.com/budget-bot/backend/internal/domain/entity"
)

// AddExpenseRequest carries a new expense record.
type AddExpenseRequest struct {
	Category string `json:"category" binding:"required"`
	Amount   string `json:"amount" binding:"required"`
}

// ExpenseResponse represents a stored expense record.
type ExpenseResponse struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Amount   string `json:"amount"`
	SpentAt  string `json:"spentAt"`
}

// ExpenseListResponse wraps a page of expense records.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Total    int               `json:"total"`
}

// ToExpenseResponse converts an expense record to its response payload.
func ToExpenseResponse(record *entity.ExpenseRecord) ExpenseResponse {
	return ExpenseResponse{
		ID:       record.ID.String(),
		Category: string(record.Category),
		Amount:   record.Amount.StringFixed(2),
		SpentAt:  record.SpentAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

// ToExpenseListResponse converts a slice of expense records to a list response.
func ToExpenseListResponse(records []*entity.ExpenseRecord) ExpenseListResponse {
	expenses := make([]ExpenseResponse, 0, len(records))
	for _, record := range records {
		expenses = append(expenses, ToExpenseResponse(record))
	}
	return ExpenseListResponse{Expenses: expenses, Total: len(expenses)}
}
