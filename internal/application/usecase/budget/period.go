// Package budget contains budget-related use cases, including the period
// window resolver and the spend aggregator.
package budget

import (
	"fmt"
	"time"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// PeriodStart returns the start of the current period window containing now,
// truncated to midnight in now's location.
//
// Weekly windows start on the most recent Monday, monthly windows on the
// first day of the month, and yearly windows on January 1st.
func PeriodStart(period entity.BudgetPeriod, now time.Time) time.Time {
	switch period {
	case entity.BudgetPeriodWeekly:
		weekday := int(now.Weekday())
		if weekday == 0 {
			weekday = 7 // Sunday counts as the end of the week
		}
		start := now.AddDate(0, 0, -(weekday - 1))
		return startOfDay(start)
	case entity.BudgetPeriodMonthly:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case entity.BudgetPeriodYearly:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	default:
		panic(fmt.Sprintf("unknown budget period: %q", period))
	}
}

// startOfDay truncates a time to midnight in its location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
