package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pocketledger/backend/internal/application/usecase/auth"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
	"github.com/pocketledger/backend/internal/integration/entrypoint/dto"
	"github.com/pocketledger/backend/internal/integration/entrypoint/middleware"
)

// deleteAccountStatus maps delete-account error codes to HTTP status codes.
// DeleteAccount diverges from the auth endpoints on two codes: a wrong
// password is 401 and an unknown user 404.
var deleteAccountStatus = map[domainerror.AuthErrorCode]int{
	domainerror.ErrCodeInvalidCredentials:  http.StatusUnauthorized,
	domainerror.ErrCodeUserNotFound:        http.StatusNotFound,
	domainerror.ErrCodeInvalidConfirmation: http.StatusBadRequest,
	domainerror.ErrCodeMissingFields:       http.StatusBadRequest,
}

// UserController handles user management endpoints.
type UserController struct {
	deleteAccountUseCase *auth.DeleteAccountUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(deleteAccountUseCase *auth.DeleteAccountUseCase) *UserController {
	return &UserController{deleteAccountUseCase: deleteAccountUseCase}
}

// DeleteAccount handles DELETE /users/me requests.
func (c *UserController) DeleteAccount(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Unauthorized",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.DeleteAccountRequest
	if !bindAuthRequest(ctx, &req, domainerror.ErrCodeMissingFields) {
		return
	}

	_, err := c.deleteAccountUseCase.Execute(ctx.Request.Context(), auth.DeleteAccountInput{
		UserID:       userID,
		Password:     req.Password,
		Confirmation: req.Confirmation,
	})
	if err != nil {
		c.handleDeleteAccountError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *UserController) handleDeleteAccountError(ctx *gin.Context, err error) {
	var authErr *domainerror.AuthError
	if !errors.As(err, &authErr) {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	status, ok := deleteAccountStatus[authErr.Code]
	if !ok {
		status = http.StatusInternalServerError
	}
	ctx.JSON(status, dto.ErrorResponse{
		Error: authErr.Message,
		Code:  string(authErr.Code),
	})
}
