package budget

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// Evaluate computes the current-period status of each budget against the
// given transactions. It is a pure function of its arguments: the same
// budgets, transactions, and instant always produce the same statuses.
//
// Spent sums the amounts of expense transactions whose category matches the
// budget and whose date falls on or after the period start. Income
// transactions never count against a budget. Remaining is the limit minus
// spent and goes negative when the budget is exceeded.
func Evaluate(budgets []*entity.Budget, transactions []*entity.Transaction, now time.Time) []*entity.BudgetStatus {
	statuses := make([]*entity.BudgetStatus, 0, len(budgets))

	for _, b := range budgets {
		periodStart := PeriodStart(b.Period, now)

		spent := decimal.Zero
		for _, t := range transactions {
			if t.Kind != entity.TransactionKindExpense {
				continue
			}
			if t.Category != b.Category {
				continue
			}
			if !onOrAfterDay(t.OccurredOn, periodStart) {
				continue
			}
			spent = spent.Add(t.Amount)
		}

		statuses = append(statuses, &entity.BudgetStatus{
			Budget:      b,
			PeriodStart: periodStart,
			Spent:       spent,
			Remaining:   b.LimitAmount.Sub(spent),
		})
	}

	return statuses
}

// onOrAfterDay compares two instants as calendar dates, ignoring their
// locations. Transaction dates are stored at midnight UTC while the period
// start carries the clock's zone; comparing raw instants would push a
// transaction dated on the boundary day out of the window whenever the
// server runs west of UTC.
func onOrAfterDay(t, start time.Time) bool {
	ty, tm, td := t.Date()
	sy, sm, sd := start.Date()
	if ty != sy {
		return ty > sy
	}
	if tm != sm {
		return tm > sm
	}
	return td >= sd
}
