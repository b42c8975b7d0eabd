package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go-lifeline/cronjobs"
	"go-lifeline/db"
	"go-lifeline/llm"
	"go-lifeline/routes"
	"go-lifeline/workflow"
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

	// Init firestore
	firestoreClient, err := db.InitFirestore()
	if err != nil {
		log.Fatalf("Failed to initialize Firestore: %v", err)
	}
	defer db.CloseFirestore() // Firestore client is closed on exit

	// Init the language model client used by the task synthesizer
	llmClient, err := llm.NewClient()
	if err != nil {
		log.Fatalf("Failed to initialize OpenAI client: %v", err)
	}

	// Initialize cron jobs
	cronjobs.InitCronJobs(firestoreClient)

	pipeline := workflow.NewPipeline(db.NewStore(firestoreClient), llmClient)

	r := routes.SetupRouter(firestoreClient, pipeline)
	if err := r.Run(":8080"); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
