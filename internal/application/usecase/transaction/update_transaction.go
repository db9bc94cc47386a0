// Package transaction contains transaction-related use cases.
package transaction

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

// UpdateTransactionInput represents the input for transaction update.
// Nil fields are left unchanged.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID
	UserID        uuid.UUID
	Kind          *entity.TransactionKind
	Category      *string
	Amount        *decimal.Decimal
	OccurredOn    *time.Time
	Note          *string
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(transactionRepo adapter.TransactionRepository) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	tx, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	if tx.UserID != input.UserID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNotAuthorizedTransaction,
			"not authorized to update this transaction",
			domainerror.ErrNotAuthorizedToModifyTransaction,
		)
	}

	if input.Kind != nil {
		if !input.Kind.Valid() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionKind,
				"transaction kind must be 'expense' or 'income'",
				domainerror.ErrInvalidTransactionKind,
			)
		}
		tx.Kind = *input.Kind
	}

	if input.Category != nil {
		category := strings.TrimSpace(*input.Category)
		if category == "" {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeEmptyTransactionCategory,
				"category is required",
				domainerror.ErrEmptyTransactionCategory,
			)
		}
		tx.Category = category
	}

	if input.Amount != nil {
		if input.Amount.IsNegative() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionAmount,
				"amount cannot be negative",
				domainerror.ErrInvalidTransactionAmount,
			)
		}
		tx.Amount = *input.Amount
	}

	if input.OccurredOn != nil {
		if input.OccurredOn.IsZero() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionDate,
				"date is required",
				domainerror.ErrInvalidTransactionDate,
			)
		}
		tx.OccurredOn = *input.OccurredOn
	}

	if input.Note != nil {
		if len(*input.Note) > MaxNoteLength {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeNoteTooLong,
				fmt.Sprintf("note must not exceed %d characters", MaxNoteLength),
				domainerror.ErrNoteTooLong,
			)
		}
		tx.Note = *input.Note
	}

	tx.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{
		Transaction: tx,
	}, nil
}
