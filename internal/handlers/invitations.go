package handlers

import (
	"log"
	"net/http"

	"github.com/devhub-dev/devhub/internal/models"
	"github.com/devhub-dev/devhub/internal/services"
	"github.com/devhub-dev/devhub/internal/utils"
	"github.com/gin-gonic/gin"
)

type InvitationHandler struct {
	Workflow *services.Workflow
}

type SendInvitationRequest struct {
	TeamID       string `json:"team_id" binding:"required"`
	InviteeEmail string `json:"invitee_email" binding:"required,email"`
	Message      string `json:"message"`
}

type RespondInvitationRequest struct {
	Action string `json:"action" binding:"required,oneof=accepted declined"`
}

func (h *InvitationHandler) Send(ctx *gin.Context) {
	var body SendInvitationRequest

	if err := ctx.BindJSON(&body); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	invitation, err := h.Workflow.Send(body.TeamID, currentUser.Email, currentUser.Name, body.InviteeEmail, body.Message)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"invitation": invitation})
}

func (h *InvitationHandler) ListMine(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	invitations, err := h.Workflow.ListForInvitee(currentUser.Email)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"invitations": invitations})
}

func (h *InvitationHandler) ListSent(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	invitations, err := h.Workflow.ListSentBy(currentUser.Email)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"invitations": invitations})
}

func (h *InvitationHandler) Respond(ctx *gin.Context) {
	var body RespondInvitationRequest

	if err := ctx.BindJSON(&body); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Action must be accepted or declined"})
		return
	}

	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	invitationID, err := utils.GetInvitationID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Workflow.Respond(invitationID, currentUser.Email, models.InvitationStatus(body.Action)); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
