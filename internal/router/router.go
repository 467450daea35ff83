package router

import (
	"time"

	"github.com/devhub-dev/devhub/internal/handlers"
	"github.com/devhub-dev/devhub/internal/middleware"
	"github.com/devhub-dev/devhub/internal/services"
	"github.com/devhub-dev/devhub/internal/types"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Deps is everything the routes need, constructed once at startup and passed
// down explicitly.
type Deps struct {
	Directory *services.Directory
	Registry  *services.Registry
	Workflow  *services.Workflow
	Chat      *services.Chat
	Hub       *handlers.Hub
}

func NewRouter(deps Deps) *gin.Engine {
	r := gin.Default()

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	authHandler := &handlers.AuthHandler{Directory: deps.Directory}
	userHandler := &handlers.UserHandler{Directory: deps.Directory}
	teamHandler := &handlers.TeamHandler{Registry: deps.Registry}
	invitationHandler := &handlers.InvitationHandler{Workflow: deps.Workflow}
	messageHandler := &handlers.MessageHandler{Chat: deps.Chat}
	adminHandler := &handlers.AdminHandler{Directory: deps.Directory, Workflow: deps.Workflow}

	requireAuth := middleware.AuthMiddleware(deps.Directory)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)
		api.GET("/ws", requireAuth, deps.Hub.WebSocket)

		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", requireAuth, authHandler.Me)
			auth.POST("/logout", requireAuth, authHandler.Logout)
			auth.PATCH("/profile", requireAuth, authHandler.UpdateProfile)
		}

		users := api.Group("/users", requireAuth)
		{
			users.GET("/search", userHandler.Search)
		}

		teams := api.Group("/teams", requireAuth)
		{
			teams.POST("", teamHandler.Create)
			teams.GET("/me", teamHandler.ListMine)
			teams.DELETE("/:team_id", teamHandler.Delete)
			teams.DELETE("/:team_id/members/:email", teamHandler.RemoveMember)
		}

		invitations := api.Group("/invitations", requireAuth)
		{
			invitations.POST("", invitationHandler.Send)
			invitations.GET("/me", invitationHandler.ListMine)
			invitations.GET("/sent", invitationHandler.ListSent)
			invitations.POST("/:invitation_id/respond", invitationHandler.Respond)
		}

		messages := api.Group("/messages", requireAuth)
		{
			messages.GET("/:team_id", messageHandler.List)
			messages.POST("/:team_id", messageHandler.Post)
		}

		admin := api.Group("/admin", requireAuth)
		{
			admin.GET("/stats", adminHandler.Stats)
			admin.GET("/invitations", adminHandler.ListInvitations)
		}
	}

	return r
}
