package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/devhub-dev/devhub/internal/models"
	"github.com/devhub-dev/devhub/internal/services"
	"github.com/devhub-dev/devhub/internal/utils"
	"github.com/gin-gonic/gin"
)

type TeamHandler struct {
	Registry *services.Registry
}

type CreateTeamRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type TeamResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	OwnerEmail  string    `json:"owner_email"`
	Members     []string  `json:"members"`
	CreatedAt   time.Time `json:"created_at"`
}

func teamResponse(team models.TeamRecord) TeamResponse {
	return TeamResponse{
		ID:          team.ID,
		Name:        team.Name,
		Description: team.Description,
		OwnerEmail:  team.OwnerEmail,
		Members:     team.Members,
		CreatedAt:   team.CreatedAt,
	}
}

func (h *TeamHandler) Create(ctx *gin.Context) {
	var body CreateTeamRequest

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

	team, err := h.Registry.Create(body.Name, body.Description, currentUser.Email)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"team": teamResponse(team)})
}

func (h *TeamHandler) ListMine(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	teams, err := h.Registry.ListForUser(currentUser.Email)

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := []TeamResponse{}

	for _, team := range teams {
		response = append(response, teamResponse(team))
	}

	ctx.JSON(http.StatusOK, gin.H{"teams": response})
}

func (h *TeamHandler) RemoveMember(ctx *gin.Context) {
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

	targetEmail := ctx.Param("email")

	if targetEmail == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Member email is required"})
		return
	}

	if err := h.Registry.RemoveMember(teamID, targetEmail, currentUser.Email); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Member removed successfully"})
}

func (h *TeamHandler) Delete(ctx *gin.Context) {
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

	if err := h.Registry.Delete(teamID, currentUser.Email); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
