package handlers

import (
	"log"
	"net/http"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/sashabaranov/go-openai"

	"garbage-watch/summarization"
)

// RunSummary triggers the open-report summary on demand instead of waiting
// for the daily cron run.
func RunSummary(c *gin.Context, firestoreClient *firestore.Client) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Summaries are not configured"})
		return
	}

	client := openai.NewClient(apiKey)
	if err := summarization.SummarizeOpenReports(c.Request.Context(), firestoreClient, client); err != nil {
		log.Printf("ERROR generating summary: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate summary"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Summary generated"})
}
