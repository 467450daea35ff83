package main

import (
	"log"
	"os"
	"time"

	"github.com/devhub-dev/devhub/db"
	"github.com/devhub-dev/devhub/internal/auth"
	"github.com/devhub-dev/devhub/internal/handlers"
	"github.com/devhub-dev/devhub/internal/presence"
	"github.com/devhub-dev/devhub/internal/router"
	"github.com/devhub-dev/devhub/internal/services"
	"github.com/devhub-dev/devhub/internal/store"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	if err := auth.InitJWTSecret(); err != nil {
		log.Fatalf("Failed to initialize JWT secret: %v", err)
	}

	dsn := os.Getenv("DATABASE_URL")

	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	if err := db.ConnectDatabase(dsn); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	sharedStore := store.NewGormStore(db.DB)

	directory := services.NewDirectory(sharedStore)
	registry := services.NewRegistry(sharedStore)
	workflow := services.NewWorkflow(sharedStore)
	chat := services.NewChat(sharedStore)

	hub := handlers.NewHub(sharedStore.Events())

	sweeper := presence.NewSweeper(sharedStore, time.Minute, 10*time.Minute)
	sweeper.Start()
	defer sweeper.Stop()

	r := router.NewRouter(router.Deps{
		Directory: directory,
		Registry:  registry,
		Workflow:  workflow,
		Chat:      chat,
		Hub:       hub,
	})

	var port string

	if port = os.Getenv("PORT"); port == "" {
		port = "4000"
		log.Println("PORT not set, defaulting to 4000")
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
