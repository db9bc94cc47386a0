// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pocketledger/backend/internal/application/usecase/statistics"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
	"github.com/pocketledger/backend/internal/integration/entrypoint/dto"
	"github.com/pocketledger/backend/internal/integration/entrypoint/middleware"
)

// StatisticsController handles statistics endpoints.
type StatisticsController struct {
	getUseCase *statistics.GetStatisticsUseCase
}

// NewStatisticsController creates a new statistics controller instance.
func NewStatisticsController(getUseCase *statistics.GetStatisticsUseCase) *StatisticsController {
	return &StatisticsController{
		getUseCase: getUseCase,
	}
}

// Get handles GET /statistics requests.
func (c *StatisticsController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := statistics.GetStatisticsInput{
		UserID: userID,
	}

	if v := ctx.Query("start_date"); v != "" {
		startDate, err := time.Parse(dateLayout, v)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start_date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidDateFormat),
			})
			return
		}
		input.StartDate = &startDate
	}

	if v := ctx.Query("end_date"); v != "" {
		endDate, err := time.Parse(dateLayout, v)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid end_date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidDateFormat),
			})
			return
		}
		input.EndDate = &endDate
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleStatisticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStatisticsResponse(output))
}

// handleStatisticsError maps statistics errors to HTTP responses.
func (c *StatisticsController) handleStatisticsError(ctx *gin.Context, err error) {
	var statsErr *domainerror.StatisticsError
	if errors.As(err, &statsErr) {
		statusCode := http.StatusInternalServerError
		switch statsErr.Code {
		case domainerror.ErrCodeInvalidDateRange, domainerror.ErrCodeInvalidDateFormat:
			statusCode = http.StatusBadRequest
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: statsErr.Message,
			Code:  string(statsErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
