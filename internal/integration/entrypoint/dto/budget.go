// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	Category    string  `json:"category" binding:"required,min=1,max=100"`
	LimitAmount float64 `json:"limit_amount" binding:"required,gt=0"`
	Period      string  `json:"period" binding:"required,oneof=weekly monthly yearly"`
}

// UpdateBudgetRequest represents the request body for budget update.
type UpdateBudgetRequest struct {
	Category    *string  `json:"category,omitempty" binding:"omitempty,min=1,max=100"`
	LimitAmount *float64 `json:"limit_amount,omitempty" binding:"omitempty,gt=0"`
	Period      *string  `json:"period,omitempty" binding:"omitempty,oneof=weekly monthly yearly"`
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Category    string    `json:"category"`
	LimitAmount string    `json:"limit_amount"`
	Period      string    `json:"period"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BudgetStatusResponse represents a budget with its current-period spend.
type BudgetStatusResponse struct {
	Budget      BudgetResponse `json:"budget"`
	PeriodStart string         `json:"period_start"`
	Spent       string         `json:"spent"`
	Remaining   string         `json:"remaining"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetStatusResponse `json:"budgets"`
}

// ToBudgetResponse converts a Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(b *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:          b.ID.String(),
		UserID:      b.UserID.String(),
		Category:    b.Category,
		LimitAmount: b.LimitAmount.String(),
		Period:      string(b.Period),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// ToBudgetStatusResponse converts a BudgetStatus to a BudgetStatusResponse DTO.
func ToBudgetStatusResponse(s *entity.BudgetStatus) BudgetStatusResponse {
	return BudgetStatusResponse{
		Budget:      ToBudgetResponse(s.Budget),
		PeriodStart: s.PeriodStart.Format("2006-01-02"),
		Spent:       s.Spent.String(),
		Remaining:   s.Remaining.String(),
	}
}

// ToBudgetListResponse converts budget statuses to a BudgetListResponse.
func ToBudgetListResponse(statuses []*entity.BudgetStatus) BudgetListResponse {
	budgets := make([]BudgetStatusResponse, len(statuses))
	for i, s := range statuses {
		budgets[i] = ToBudgetStatusResponse(s)
	}
	return BudgetListResponse{Budgets: budgets}
}
