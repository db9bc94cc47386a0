package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetPeriod represents the recurrence window of a budget.
type BudgetPeriod string

const (
	BudgetPeriodWeekly  BudgetPeriod = "weekly"
	BudgetPeriodMonthly BudgetPeriod = "monthly"
	BudgetPeriodYearly  BudgetPeriod = "yearly"
)

// Valid reports whether the period is one of the known values.
func (p BudgetPeriod) Valid() bool {
	return p == BudgetPeriodWeekly || p == BudgetPeriodMonthly || p == BudgetPeriodYearly
}

// Budget represents a recurring spending limit for a category.
type Budget struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Category    string
	LimitAmount decimal.Decimal
	Period      BudgetPeriod
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewBudget creates a new Budget entity.
func NewBudget(userID uuid.UUID, category string, limitAmount decimal.Decimal, period BudgetPeriod) *Budget {
	now := time.Now().UTC()
	return &Budget{
		ID:          uuid.New(),
		UserID:      userID,
		Category:    category,
		LimitAmount: limitAmount,
		Period:      period,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// BudgetStatus represents a budget together with its spend for the
// current period window.
type BudgetStatus struct {
	Budget      *Budget
	PeriodStart time.Time
	Spent       decimal.Decimal
	Remaining   decimal.Decimal
}
