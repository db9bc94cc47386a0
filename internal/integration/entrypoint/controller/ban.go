// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/application/usecase/ban"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
	"github.com/pocketledger/backend/internal/integration/entrypoint/dto"
)

// BanController handles ban lookup and admin ban management endpoints.
type BanController struct {
	checkUseCase  *ban.CheckBanUseCase
	createUseCase *ban.CreateBanUseCase
	listUseCase   *ban.ListBansUseCase
	deleteUseCase *ban.DeleteBanUseCase
}

// NewBanController creates a new ban controller instance.
func NewBanController(
	checkUseCase *ban.CheckBanUseCase,
	createUseCase *ban.CreateBanUseCase,
	listUseCase *ban.ListBansUseCase,
	deleteUseCase *ban.DeleteBanUseCase,
) *BanController {
	return &BanController{
		checkUseCase:  checkUseCase,
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Check handles POST /ban-check requests. The endpoint is public: clients
// call it before login to learn whether the device or account is banned.
func (c *BanController) Check(ctx *gin.Context) {
	var req dto.CheckBanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	output, err := c.checkUseCase.Execute(ctx.Request.Context(), ban.CheckBanInput{
		Signals: req.Signals,
		Email:   req.Email,
	})
	if err != nil {
		c.handleBanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCheckBanResponse(output.Decision))
}

// Create handles POST /admin/bans requests.
func (c *BanController) Create(ctx *gin.Context) {
	var req dto.CreateBanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), ban.CreateBanInput{
		Fingerprint: req.Fingerprint,
		IPAddress:   req.IPAddress,
		Email:       req.Email,
		Reason:      req.Reason,
		IsPermanent: req.IsPermanent,
		BannedUntil: req.BannedUntil,
	})
	if err != nil {
		c.handleBanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBanResponse(output.Ban))
}

// List handles GET /admin/bans requests.
func (c *BanController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleBanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBanListResponse(output.Bans))
}

// Delete handles DELETE /admin/bans/:id requests.
func (c *BanController) Delete(ctx *gin.Context) {
	banID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid ban ID",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), ban.DeleteBanInput{
		BanID: banID,
	}); err != nil {
		c.handleBanError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleBanError maps ban errors to HTTP responses.
func (c *BanController) handleBanError(ctx *gin.Context, err error) {
	var banErr *domainerror.BanError
	if errors.As(err, &banErr) {
		statusCode := c.getStatusCodeForBanError(banErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: banErr.Message,
			Code:  string(banErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForBanError maps ban error codes to HTTP status codes.
func (c *BanController) getStatusCodeForBanError(code domainerror.BanErrorCode) int {
	switch code {
	case domainerror.ErrCodeBanNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeEmptyBanTarget,
		domainerror.ErrCodeInvalidBanExpiry,
		domainerror.ErrCodeEmptyFingerprintSignals:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
