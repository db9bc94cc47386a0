package budget

import (
	"testing"
	"time"

	"github.com/pocketledger/backend/internal/domain/entity"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestPeriodStart_Monthly(t *testing.T) {
	t.Run("returns first of month at midnight", func(t *testing.T) {
		now := time.Date(2025, time.March, 18, 14, 32, 9, 0, time.UTC)
		got := PeriodStart(entity.BudgetPeriodMonthly, now)
		want := date(2025, time.March, 1)
		if !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("first day of month maps to itself", func(t *testing.T) {
		now := time.Date(2025, time.March, 1, 23, 59, 59, 0, time.UTC)
		got := PeriodStart(entity.BudgetPeriodMonthly, now)
		if !got.Equal(date(2025, time.March, 1)) {
			t.Errorf("expected 2025-03-01, got %v", got)
		}
	})
}

func TestPeriodStart_Weekly(t *testing.T) {
	// 2025-03-17 is a Monday.
	cases := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{"Monday maps to itself", time.Date(2025, time.March, 17, 10, 0, 0, 0, time.UTC), date(2025, time.March, 17)},
		{"Tuesday maps to previous Monday", date(2025, time.March, 18), date(2025, time.March, 17)},
		{"Saturday maps to previous Monday", date(2025, time.March, 22), date(2025, time.March, 17)},
		{"Sunday maps to previous Monday not next", date(2025, time.March, 23), date(2025, time.March, 17)},
		{"week crossing month boundary", date(2025, time.April, 2), date(2025, time.March, 31)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := PeriodStart(entity.BudgetPeriodWeekly, tc.now)
			if !got.Equal(tc.want) {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestPeriodStart_Yearly(t *testing.T) {
	now := time.Date(2025, time.November, 30, 8, 15, 0, 0, time.UTC)
	got := PeriodStart(entity.BudgetPeriodYearly, now)
	if !got.Equal(date(2025, time.January, 1)) {
		t.Errorf("expected 2025-01-01, got %v", got)
	}
}

func TestPeriodStart_TruncatesToMidnight(t *testing.T) {
	for _, period := range []entity.BudgetPeriod{
		entity.BudgetPeriodWeekly,
		entity.BudgetPeriodMonthly,
		entity.BudgetPeriodYearly,
	} {
		t.Run(string(period), func(t *testing.T) {
			now := time.Date(2025, time.June, 11, 17, 45, 30, 123, time.UTC)
			got := PeriodStart(period, now)
			if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 || got.Nanosecond() != 0 {
				t.Errorf("expected midnight, got %v", got)
			}
			if !got.After(now.AddDate(-1, -1, -1)) || got.After(now) {
				t.Errorf("period start %v not within window ending at %v", got, now)
			}
		})
	}
}

func TestPeriodStart_PreservesLocation(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	now := time.Date(2025, time.March, 18, 1, 0, 0, 0, loc)
	got := PeriodStart(entity.BudgetPeriodMonthly, now)
	if got.Location() != loc {
		t.Errorf("expected location %v, got %v", loc, got.Location())
	}
}

func TestPeriodStart_UnknownPeriodPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown period")
		}
	}()
	PeriodStart(entity.BudgetPeriod("fortnightly"), time.Now())
}
