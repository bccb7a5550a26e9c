package summarization

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/sashabaranov/go-openai"

	"garbage-watch/types"
)

const maxReportsForSummary = 100
const maxPromptLength = 15000 // Rough character limit for prompt

// SummarizeOpenReports fetches every report that is still pending or in
// progress, asks OpenAI for a short situation summary, and stores it in the
// summaries collection keyed by date. Used by the daily cron job.
func SummarizeOpenReports(
	ctx context.Context,
	firestoreClient *firestore.Client,
	openaiClient *openai.Client,
) error {
	log.Println("Starting open-report summary generation...")

	combinedText, total, err := fetchOpenReportText(ctx, firestoreClient)
	if err != nil {
		return fmt.Errorf("fetching open reports: %w", err)
	}

	if combinedText == "" {
		log.Println("No open reports to summarize. Skipping.")
		return nil
	}

	summary, err := callOpenAISummary(ctx, combinedText, openaiClient)
	if err != nil {
		return fmt.Errorf("requesting summary: %w", err)
	}

	dateKey := time.Now().Format("2006-01-02")
	_, err = firestoreClient.Collection("summaries").Doc(dateKey).Set(ctx, map[string]interface{}{
		"summary":     summary,
		"reportCount": total,
		"generatedAt": time.Now(),
	}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("saving summary for %s: %w", dateKey, err)
	}

	log.Printf("Saved open-report summary for %s (%d reports).", dateKey, total)
	return nil
}

// fetchOpenReportText collects descriptions of unresolved reports into one
// prompt-sized blob.
func fetchOpenReportText(ctx context.Context, firestoreClient *firestore.Client) (string, int, error) {
	docs, err := firestoreClient.Collection("reports").
		Where("status", "in", []string{string(types.StatusPending), string(types.StatusInProgress)}).
		Limit(maxReportsForSummary).
		Documents(ctx).
		GetAll()
	if err != nil {
		return "", 0, err
	}

	var lines []string
	for _, doc := range docs {
		var r types.Report
		if err := doc.DataTo(&r); err != nil {
			log.Printf("Warning: Failed to convert report %s for summary: %v", doc.Ref.ID, err)
			continue
		}
		if r.Description == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("[%s] %s (%s)", r.Address, r.Description, r.Status))
	}

	if len(lines) == 0 {
		return "", 0, nil
	}

	combined := strings.Join(lines, "\n---\n")
	if len(combined) > maxPromptLength {
		log.Printf("Warning: Combined report text exceeds max length (%d), truncating.", maxPromptLength)
		combined = combined[:maxPromptLength]
	}

	return combined, len(lines), nil
}

// callOpenAISummary sends the report text to OpenAI and requests a summary.
func callOpenAISummary(ctx context.Context, reportText string, client *openai.Client) (string, error) {
	prompt := fmt.Sprintf("Summarize the following collection of unresolved garbage reports submitted by residents. Focus on the most affected areas, recurring waste types, and anything needing urgent attention. Provide a concise summary (2-3 sentences maximum):\n\n---\n%s\n---\n\nSummary:", reportText)

	resp, err := client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4oMini,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You are an assistant that summarizes civic garbage reports for municipal staff concisely.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   150,
			N:           1,
			Temperature: 0.5, // Lower temperature for more focused summary
		},
	)

	if err != nil {
		return "", fmt.Errorf("openai chat completion error: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai returned empty response or choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
