package handlers

import (
	"net/http"

	"github.com/devhub-dev/devhub/internal/services"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	Directory *services.Directory
	Workflow  *services.Workflow
}

func (h *AdminHandler) Stats(ctx *gin.Context) {
	stats, err := h.Directory.Stats()

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"stats": stats})
}

// ListInvitations dumps every invitation regardless of party. Debug surface,
// not linked from the UI.
func (h *AdminHandler) ListInvitations(ctx *gin.Context) {
	invitations, err := h.Workflow.ListAll()

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"invitations": invitations})
}
