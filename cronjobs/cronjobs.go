package cronjobs

import (
	"context"
	"log"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/robfig/cron/v3"
	"github.com/sashabaranov/go-openai"

	"garbage-watch/summarization"
)

const summaryTimeout = 2 * time.Minute

// InitCronJobs schedules the background jobs. Currently one: a daily
// summary of unresolved reports for the admin dashboard.
func InitCronJobs(firestoreClient *firestore.Client) {
	log.Println("\nStarting Cron Jobs -------------------------------------------------------")
	c := cron.New()

	// Open-report summary: every day at 06:00
	_, err := c.AddFunc("0 6 * * *", func() {
		log.Println("\nCronJob: Open Report Summary Running")

		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			log.Println("OPENAI_API_KEY not set, skipping summary job")
			return
		}
		openaiClient := openai.NewClient(apiKey)

		ctx, cancel := context.WithTimeout(context.Background(), summaryTimeout)
		defer cancel()

		if err := summarization.SummarizeOpenReports(ctx, firestoreClient, openaiClient); err != nil {
			log.Printf("Open report summary failed: %v", err)
		}
	})
	if err != nil {
		log.Println("Error scheduling Open Report Summary:", err)
	}

	c.Start()
}
