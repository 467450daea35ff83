package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
)

func GetTeamID(ctx *gin.Context) (string, error) {
	teamID := ctx.Param("team_id")

	if teamID == "" {
		return "", errors.New("Team ID not found")
	}

	return teamID, nil
}

func GetInvitationID(ctx *gin.Context) (string, error) {
	invitationID := ctx.Param("invitation_id")

	if invitationID == "" {
		return "", errors.New("Invitation ID not found")
	}

	return invitationID, nil
}
