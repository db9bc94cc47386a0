package budget

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
)

// UpdateBudgetInput represents the input for budget update.
// Nil fields are left unchanged.
type UpdateBudgetInput struct {
	BudgetID    uuid.UUID
	UserID      uuid.UUID
	Category    *string
	LimitAmount *decimal.Decimal
	Period      *entity.BudgetPeriod
}

// UpdateBudgetOutput represents the output of budget update.
type UpdateBudgetOutput struct {
	Budget *entity.Budget
}

// UpdateBudgetUseCase handles budget update logic.
type UpdateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(budgetRepo adapter.BudgetRepository) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute performs the budget update.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	budget, err := uc.budgetRepo.FindByID(ctx, input.BudgetID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeBudgetNotFound,
				"budget not found",
				domainerror.ErrBudgetNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}

	if budget.UserID != input.UserID {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeNotAuthorizedBudget,
			"not authorized to modify this budget",
			domainerror.ErrNotAuthorizedToModifyBudget,
		)
	}

	if input.Category != nil {
		category := strings.TrimSpace(*input.Category)
		if category == "" {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeEmptyBudgetCategory,
				"category is required",
				domainerror.ErrEmptyBudgetCategory,
			)
		}
		budget.Category = category
	}

	if input.LimitAmount != nil {
		if !input.LimitAmount.IsPositive() {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidBudgetLimit,
				"limit amount must be greater than zero",
				domainerror.ErrInvalidBudgetLimit,
			)
		}
		budget.LimitAmount = *input.LimitAmount
	}

	if input.Period != nil {
		if !input.Period.Valid() {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidBudgetPeriod,
				"period must be 'weekly', 'monthly', or 'yearly'",
				domainerror.ErrInvalidBudgetPeriod,
			)
		}
		budget.Period = *input.Period
	}

	budget.UpdatedAt = time.Now().UTC()

	if err := uc.budgetRepo.Update(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	return &UpdateBudgetOutput{
		Budget: budget,
	}, nil
}
