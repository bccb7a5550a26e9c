package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"garbage-watch/cronjobs"
	"garbage-watch/db"
	"garbage-watch/routes"
	"garbage-watch/store"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Fatalf("Error loading .env file: %v", err)
	}

	// Print and check env
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey != "" {
		fmt.Println("OPENAI_API_KEY loaded")
	}

	clientURL := os.Getenv("CLIENT_URL")
	fmt.Println("CLIENT_URL: ", clientURL)

	// Init Firestore, Storage and Auth
	dbClient, err := db.InitClient()
	if err != nil {
		log.Fatalf("Failed to initialize backend client: %v", err)
	}
	defer db.CloseClient() // Firestore client is closed on exit

	reportStore := store.New(dbClient)

	// Initialize cron jobs
	cronjobs.InitCronJobs(dbClient.Firestore())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter(dbClient, reportStore)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
