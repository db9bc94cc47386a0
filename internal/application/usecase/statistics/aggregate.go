// Package statistics contains statistics-related use cases.
package statistics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// Summary represents aggregated totals for a set of transactions.
type Summary struct {
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
	Net          decimal.Decimal
}

// DailyPoint represents aggregated amounts for a single calendar day.
type DailyPoint struct {
	Date    time.Time
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// Aggregate computes income/expense totals and a per-day series from the
// given transactions. The series contains one point per day that has at
// least one transaction, sorted chronologically by date value.
func Aggregate(transactions []*entity.Transaction) (Summary, []DailyPoint) {
	summary := Summary{
		IncomeTotal:  decimal.Zero,
		ExpenseTotal: decimal.Zero,
	}

	byDay := make(map[time.Time]*DailyPoint)
	for _, t := range transactions {
		day := startOfDay(t.OccurredOn)
		point, ok := byDay[day]
		if !ok {
			point = &DailyPoint{Date: day, Income: decimal.Zero, Expense: decimal.Zero}
			byDay[day] = point
		}

		switch t.Kind {
		case entity.TransactionKindIncome:
			summary.IncomeTotal = summary.IncomeTotal.Add(t.Amount)
			point.Income = point.Income.Add(t.Amount)
		case entity.TransactionKindExpense:
			summary.ExpenseTotal = summary.ExpenseTotal.Add(t.Amount)
			point.Expense = point.Expense.Add(t.Amount)
		}
	}

	summary.Net = summary.IncomeTotal.Sub(summary.ExpenseTotal)

	series := make([]DailyPoint, 0, len(byDay))
	for _, point := range byDay {
		series = append(series, *point)
	}
	// Sort on the time value itself, not its formatted representation.
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})

	return summary, series
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
