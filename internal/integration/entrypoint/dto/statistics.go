// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/pocketledger/backend/internal/application/usecase/statistics"
)

// StatisticsSummaryResponse represents aggregated totals in API responses.
type StatisticsSummaryResponse struct {
	IncomeTotal  string `json:"income_total"`
	ExpenseTotal string `json:"expense_total"`
	Net          string `json:"net"`
}

// DailyPointResponse represents per-day aggregated amounts in API responses.
type DailyPointResponse struct {
	Date    string `json:"date"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
}

// StatisticsResponse represents the response for the statistics endpoint.
type StatisticsResponse struct {
	Summary StatisticsSummaryResponse `json:"summary"`
	Daily   []DailyPointResponse      `json:"daily"`
}

// ToStatisticsResponse converts a GetStatisticsOutput to a StatisticsResponse DTO.
func ToStatisticsResponse(output *statistics.GetStatisticsOutput) StatisticsResponse {
	daily := make([]DailyPointResponse, len(output.Daily))
	for i, point := range output.Daily {
		daily[i] = DailyPointResponse{
			Date:    point.Date.Format("2006-01-02"),
			Income:  point.Income.String(),
			Expense: point.Expense.String(),
		}
	}

	return StatisticsResponse{
		Summary: StatisticsSummaryResponse{
			IncomeTotal:  output.Summary.IncomeTotal.String(),
			ExpenseTotal: output.Summary.ExpenseTotal.String(),
			Net:          output.Summary.Net.String(),
		},
		Daily: daily,
	}
}
