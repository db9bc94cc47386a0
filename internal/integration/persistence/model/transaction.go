// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Kind       string          `gorm:"type:varchar(10);not null;index"`
	Category   string          `gorm:"type:varchar(100);not null;index"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	OccurredOn time.Time       `gorm:"type:date;not null;index"`
	Note       string          `gorm:"type:text"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:         m.ID,
		UserID:     m.UserID,
		Kind:       entity.TransactionKind(m.Kind),
		Category:   m.Category,
		Amount:     m.Amount,
		OccurredOn: m.OccurredOn,
		Note:       m.Note,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:         transaction.ID,
		UserID:     transaction.UserID,
		Kind:       string(transaction.Kind),
		Category:   transaction.Category,
		Amount:     transaction.Amount,
		OccurredOn: transaction.OccurredOn,
		Note:       transaction.Note,
		CreatedAt:  transaction.CreatedAt,
		UpdatedAt:  transaction.UpdatedAt,
	}
}
