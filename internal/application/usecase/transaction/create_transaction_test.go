package transaction

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
)

type stubTransactionRepo struct {
	created []*entity.Transaction
	byID    map[uuid.UUID]*entity.Transaction
}

func newStubTransactionRepo() *stubTransactionRepo {
	return &stubTransactionRepo{byID: make(map[uuid.UUID]*entity.Transaction)}
}

func (s *stubTransactionRepo) Create(ctx context.Context, tx *entity.Transaction) error {
	s.created = append(s.created, tx)
	s.byID[tx.ID] = tx
	return nil
}

func (s *stubTransactionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	tx, ok := s.byID[id]
	if !ok {
		return nil, domainerror.ErrTransactionNotFound
	}
	return tx, nil
}

func (s *stubTransactionRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	return nil, nil
}

func (s *stubTransactionRepo) FindByUserAndKind(ctx context.Context, userID uuid.UUID, kind entity.TransactionKind) ([]*entity.Transaction, error) {
	return nil, nil
}

func (s *stubTransactionRepo) FindByFilter(ctx context.Context, filter adapter.TransactionFilter, pagination adapter.TransactionPagination) (*entity.TransactionListResult, error) {
	return &entity.TransactionListResult{}, nil
}

func (s *stubTransactionRepo) Update(ctx context.Context, tx *entity.Transaction) error {
	s.byID[tx.ID] = tx
	return nil
}

func (s *stubTransactionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(s.byID, id)
	return nil
}

func TestCreateTransaction(t *testing.T) {
	userID := uuid.New()
	occurredOn := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	t.Run("creates a valid expense", func(t *testing.T) {
		repo := newStubTransactionRepo()
		uc := NewCreateTransactionUseCase(repo)

		out, err := uc.Execute(context.Background(), CreateTransactionInput{
			UserID:     userID,
			Kind:       entity.TransactionKindExpense,
			Category:   "groceries",
			Amount:     decimal.NewFromInt(4200),
			OccurredOn: occurredOn,
			Note:       "weekly shop",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.created) != 1 {
			t.Fatalf("expected 1 created transaction, got %d", len(repo.created))
		}
		if out.Transaction.Category != "groceries" {
			t.Errorf("unexpected category %q", out.Transaction.Category)
		}
	})

	t.Run("allows zero amount", func(t *testing.T) {
		uc := NewCreateTransactionUseCase(newStubTransactionRepo())

		_, err := uc.Execute(context.Background(), CreateTransactionInput{
			UserID:     userID,
			Kind:       entity.TransactionKindIncome,
			Category:   "misc",
			Amount:     decimal.Zero,
			OccurredOn: occurredOn,
		})
		if err != nil {
			t.Errorf("expected zero amount to be accepted, got: %v", err)
		}
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		uc := NewCreateTransactionUseCase(newStubTransactionRepo())

		_, err := uc.Execute(context.Background(), CreateTransactionInput{
			UserID:     userID,
			Kind:       entity.TransactionKindExpense,
			Category:   "groceries",
			Amount:     decimal.NewFromInt(-100),
			OccurredOn: occurredOn,
		})
		if !errors.Is(err, domainerror.ErrInvalidTransactionAmount) {
			t.Errorf("expected ErrInvalidTransactionAmount, got: %v", err)
		}
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		uc := NewCreateTransactionUseCase(newStubTransactionRepo())

		_, err := uc.Execute(context.Background(), CreateTransactionInput{
			UserID:     userID,
			Kind:       entity.TransactionKind("transfer"),
			Category:   "misc",
			Amount:     decimal.NewFromInt(100),
			OccurredOn: occurredOn,
		})
		if !errors.Is(err, domainerror.ErrInvalidTransactionKind) {
			t.Errorf("expected ErrInvalidTransactionKind, got: %v", err)
		}
	})

	t.Run("rejects blank category", func(t *testing.T) {
		uc := NewCreateTransactionUseCase(newStubTransactionRepo())

		_, err := uc.Execute(context.Background(), CreateTransactionInput{
			UserID:     userID,
			Kind:       entity.TransactionKindExpense,
			Category:   "   ",
			Amount:     decimal.NewFromInt(100),
			OccurredOn: occurredOn,
		})
		if !errors.Is(err, domainerror.ErrEmptyTransactionCategory) {
			t.Errorf("expected ErrEmptyTransactionCategory, got: %v", err)
		}
	})

	t.Run("rejects oversized note", func(t *testing.T) {
		uc := NewCreateTransactionUseCase(newStubTransactionRepo())

		_, err := uc.Execute(context.Background(), CreateTransactionInput{
			UserID:     userID,
			Kind:       entity.TransactionKindExpense,
			Category:   "groceries",
			Amount:     decimal.NewFromInt(100),
			OccurredOn: occurredOn,
			Note:       strings.Repeat("x", MaxNoteLength+1),
		})
		if !errors.Is(err, domainerror.ErrNoteTooLong) {
			t.Errorf("expected ErrNoteTooLong, got: %v", err)
		}
	})
}

func TestUpdateTransaction_OwnershipCheck(t *testing.T) {
	repo := newStubTransactionRepo()
	owner := uuid.New()
	tx := entity.NewTransaction(owner, entity.TransactionKindExpense, "groceries",
		decimal.NewFromInt(100), time.Now(), "")
	repo.byID[tx.ID] = tx

	uc := NewUpdateTransactionUseCase(repo)
	newNote := "edited"

	_, err := uc.Execute(context.Background(), UpdateTransactionInput{
		TransactionID: tx.ID,
		UserID:        uuid.New(), // different user
		Note:          &newNote,
	})
	if !errors.Is(err, domainerror.ErrNotAuthorizedToModifyTransaction) {
		t.Errorf("expected ErrNotAuthorizedToModifyTransaction, got: %v", err)
	}
}

func TestDeleteTransaction(t *testing.T) {
	t.Run("removes owned transaction", func(t *testing.T) {
		repo := newStubTransactionRepo()
		owner := uuid.New()
		tx := entity.NewTransaction(owner, entity.TransactionKindExpense, "groceries",
			decimal.NewFromInt(100), time.Now(), "")
		repo.byID[tx.ID] = tx

		uc := NewDeleteTransactionUseCase(repo)
		if err := uc.Execute(context.Background(), DeleteTransactionInput{TransactionID: tx.ID, UserID: owner}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := repo.byID[tx.ID]; ok {
			t.Error("expected transaction to be removed")
		}
	})

	t.Run("unknown id yields not found", func(t *testing.T) {
		uc := NewDeleteTransactionUseCase(newStubTransactionRepo())
		err := uc.Execute(context.Background(), DeleteTransactionInput{TransactionID: uuid.New(), UserID: uuid.New()})
		if !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("expected ErrTransactionNotFound, got: %v", err)
		}
	})
}
