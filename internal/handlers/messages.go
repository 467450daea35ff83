package handlers

import (
	"log"
	"net/http"

	"github.com/devhub-dev/devhub/internal/services"
	"github.com/devhub-dev/devhub/internal/utils"
	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	Chat *services.Chat
}

type PostMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

func (h *MessageHandler) List(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	teamID, err := utils.GetTeamID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	messages, err := h.Chat.List(teamID, currentUser.Email)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"messages": messages})
}

func (h *MessageHandler) Post(ctx *gin.Context) {
	var body PostMessageRequest

	if err := ctx.BindJSON(&body); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing text"})
		return
	}

	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	teamID, err := utils.GetTeamID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := h.Chat.Post(teamID, currentUser.Email, currentUser.Name, body.Text)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": message})
}
