package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
)

// ListBudgetsInput represents the input for listing budgets.
type ListBudgetsInput struct {
	UserID uuid.UUID
}

// ListBudgetsOutput represents the output of listing budgets.
type ListBudgetsOutput struct {
	Statuses []*entity.BudgetStatus
}

// ListBudgetsUseCase lists a user's budgets with their current-period spend.
type ListBudgetsUseCase struct {
	budgetRepo      adapter.BudgetRepository
	transactionRepo adapter.TransactionRepository
	clock           adapter.Clock
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(
	budgetRepo adapter.BudgetRepository,
	transactionRepo adapter.TransactionRepository,
	clock adapter.Clock,
) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
		clock:           clock,
	}
}

// Execute retrieves the user's budgets and evaluates each against the
// user's expense transactions.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	budgets, err := uc.budgetRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	expenses, err := uc.transactionRepo.FindByUserAndKind(ctx, input.UserID, entity.TransactionKindExpense)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	return &ListBudgetsOutput{
		Statuses: Evaluate(budgets, expenses, uc.clock.Now()),
	}, nil
}
