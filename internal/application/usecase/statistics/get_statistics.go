package statistics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/application/adapter"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
)

// GetStatisticsInput represents the input for retrieving statistics.
// StartDate and EndDate are optional; nil means unbounded.
type GetStatisticsInput struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// GetStatisticsOutput represents the output of retrieving statistics.
type GetStatisticsOutput struct {
	Summary Summary
	Daily   []DailyPoint
}

// GetStatisticsUseCase computes income/expense statistics for a user.
type GetStatisticsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetStatisticsUseCase creates a new GetStatisticsUseCase instance.
func NewGetStatisticsUseCase(transactionRepo adapter.TransactionRepository) *GetStatisticsUseCase {
	return &GetStatisticsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute loads the user's transactions and aggregates them.
func (uc *GetStatisticsUseCase) Execute(ctx context.Context, input GetStatisticsInput) (*GetStatisticsOutput, error) {
	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		return nil, domainerror.NewStatisticsError(
			domainerror.ErrCodeInvalidDateRange,
			"end date must not be before start date",
			domainerror.ErrInvalidDateRange,
		)
	}

	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	if input.StartDate != nil || input.EndDate != nil {
		filtered := transactions[:0]
		for _, t := range transactions {
			if input.StartDate != nil && t.OccurredOn.Before(*input.StartDate) {
				continue
			}
			if input.EndDate != nil && t.OccurredOn.After(*input.EndDate) {
				continue
			}
			filtered = append(filtered, t)
		}
		transactions = filtered
	}

	summary, daily := Aggregate(transactions)

	return &GetStatisticsOutput{
		Summary: summary,
		Daily:   daily,
	}, nil
}
