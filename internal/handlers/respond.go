package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/devhub-dev/devhub/internal/apperror"
	"github.com/devhub-dev/devhub/internal/models"
	"github.com/devhub-dev/devhub/internal/types"
	"github.com/gin-gonic/gin"
)

// respondError translates a core failure into an HTTP status and an
// {error: message} body. Unclassified errors become a generic 500 and are
// logged server-side only.
func respondError(ctx *gin.Context, err error) {
	var appErr *apperror.AppError

	if errors.As(err, &appErr) {
		ctx.JSON(statusFor(appErr), gin.H{"error": appErr.Message})
		return
	}

	log.Printf("Unexpected error: %v", err)
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

func statusFor(appErr *apperror.AppError) int {
	switch {
	case errors.Is(appErr, apperror.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(appErr, apperror.ErrConflict):
		return http.StatusConflict
	case errors.Is(appErr, apperror.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(appErr, apperror.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func userResponse(user models.UserRecord) types.UserResponse {
	return types.UserResponse{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Avatar:   user.Avatar,
		Role:     user.Role,
		Bio:      user.Bio,
		Skills:   user.Skills,
		IsOnline: user.IsOnline,
		JoinDate: user.JoinDate,
	}
}
