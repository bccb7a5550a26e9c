package handlers

import (
	"context"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"garbage-watch/demo"
	"garbage-watch/store"
)

const defaultDemoCount = 500

// demoRun tracks one generation job so the admin UI can poll its progress.
type demoRun struct {
	job *demo.Job

	mu      sync.Mutex
	percent int
	message string
	running bool
}

var (
	demoRunsMu sync.Mutex
	demoRuns   = map[string]*demoRun{}
)

// StartDemoGeneration kicks off a background generation job and returns its
// ID for progress polling.
func StartDemoGeneration(c *gin.Context, gw store.Gateway) {
	var request struct {
		Count int `json:"count"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if request.Count <= 0 {
		request.Count = defaultDemoCount
	}

	run := &demoRun{running: true, message: "Starting..."}
	onProgress := func(percent int, message string) {
		run.mu.Lock()
		run.percent = percent
		run.message = message
		run.mu.Unlock()
	}

	// The job outlives this request; detach it from the request context.
	generator := demo.NewGenerator(gw)
	run.job = generator.Generate(context.Background(), request.Count, onProgress)

	jobID := uuid.NewString()
	demoRunsMu.Lock()
	demoRuns[jobID] = run
	demoRunsMu.Unlock()

	go func() {
		<-run.job.Done()
		run.mu.Lock()
		run.running = false
		run.mu.Unlock()
	}()

	log.Printf("Started demo generation job %s for %d reports", jobID, request.Count)
	c.JSON(http.StatusAccepted, gin.H{"jobId": jobID, "count": request.Count})
}

// DemoGenerationProgress reports the current percentage and message of a job.
func DemoGenerationProgress(c *gin.Context) {
	jobID := c.Query("jobId")

	demoRunsMu.Lock()
	run, ok := demoRuns[jobID]
	demoRunsMu.Unlock()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown job"})
		return
	}

	run.mu.Lock()
	defer run.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{
		"jobId":    jobID,
		"progress": run.percent,
		"message":  run.message,
		"running":  run.running,
	})
}

// CancelDemoGeneration flips the job's cancel flag. The batch currently in
// flight still completes; later batches are skipped.
func CancelDemoGeneration(c *gin.Context) {
	jobID := c.Query("jobId")

	demoRunsMu.Lock()
	run, ok := demoRuns[jobID]
	demoRunsMu.Unlock()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown job"})
		return
	}

	run.job.Cancel()
	c.JSON(http.StatusOK, gin.H{"jobId": jobID, "cancelled": true})
}

// DeleteDemoData removes every demo-flagged report and reports the count.
func DeleteDemoData(c *gin.Context, gw store.Gateway) {
	deleted, err := demo.DeleteAll(c.Request.Context(), gw, func(percent int, message string) {
		log.Printf("Demo deletion: %d%% - %s", percent, message)
	})
	if err != nil {
		log.Printf("ERROR deleting demo data: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to delete all demo data",
			"deleted": deleted,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
