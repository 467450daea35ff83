package handlers

import (
	"net/http"

	"github.com/devhub-dev/devhub/internal/services"
	"github.com/devhub-dev/devhub/internal/types"
	"github.com/devhub-dev/devhub/internal/utils"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	Directory *services.Directory
}

// Search finds users to invite. Results never include the requester and are
// capped by the directory.
func (h *UserHandler) Search(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	query := ctx.Query("q")

	users, err := h.Directory.SearchForInvitation(query, currentUser.Email)

	if err != nil {
		respondError(ctx, err)
		return
	}

	results := []types.SearchResult{}

	for _, user := range users {
		results = append(results, types.SearchResult{
			Name:   user.Name,
			Email:  user.Email,
			Avatar: user.Avatar,
			Role:   user.Role,
			Skills: user.Skills,
		})
	}

	ctx.JSON(http.StatusOK, gin.H{"results": results})
}
