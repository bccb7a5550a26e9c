package demo

import (
	"context"
	"fmt"
	"log"
	"math"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"garbage-watch/store"
	"garbage-watch/types"
	"garbage-watch/util"
)

// ProgressFunc receives an integer percentage and a human-readable message
// after every generation batch or deletion page.
type ProgressFunc func(percent int, message string)

const (
	batchSize       = 10
	demoDeviceCount = 25
	maxAgeDays      = 90
)

// Pune area boundaries (approximately).
var puneBounds = struct {
	north, south, east, west float64
}{
	north: 18.6207,
	south: 18.4404,
	east:  73.9352,
	west:  73.7468,
}

// Generator bulk-creates synthetic reports against the gateway for demos
// and load testing.
type Generator struct {
	gw         store.Gateway
	rng        *rand.Rand
	fetchImage func(ctx context.Context) ([]byte, error)
}

func NewGenerator(gw store.Gateway) *Generator {
	return &Generator{
		gw:         gw,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		fetchImage: fetchGarbageImage,
	}
}

// Job tracks one running generation and carries its cancellation flag.
// Cancellation is cooperative: it is checked before each batch starts, so
// creates already in flight still complete.
type Job struct {
	cancelled atomic.Bool
	done      chan struct{}
}

// Cancel requests that no further batches be started.
func (j *Job) Cancel() {
	j.cancelled.Store(true)
	log.Println("Demo data generation cancelled")
}

// Done is closed once the run finishes or gives up after a cancel.
func (j *Job) Done() <-chan struct{} {
	return j.done
}

// Generate starts producing count synthetic reports in batches of 10
// concurrent creates. Batches run strictly sequentially; per-report
// failures are logged and skipped. The returned Job cancels future
// batches only.
func (g *Generator) Generate(ctx context.Context, count int, onProgress ProgressFunc) *Job {
	job := &Job{done: make(chan struct{})}
	go g.run(ctx, count, onProgress, job)
	return job
}

func (g *Generator) run(ctx context.Context, count int, onProgress ProgressFunc, job *Job) {
	defer close(job.done)

	report := func(p int, msg string) {
		if onProgress != nil {
			onProgress(p, msg)
		}
	}

	// Pool of synthetic device IDs so demo reports look like they came
	// from multiple browsers.
	deviceIDs := make([]string, demoDeviceCount)
	for i := range deviceIDs {
		deviceIDs[i] = util.NewUniqueID()
	}

	log.Printf("Starting to generate %d demo reports...", count)
	report(0, fmt.Sprintf("Starting to generate %d demo reports...", count))

	for start := 0; start < count; start += batchSize {
		if job.cancelled.Load() {
			return
		}

		end := start + batchSize
		if end > count {
			end = count
		}

		// Synthetic fields are drawn sequentially so the rng is never
		// shared across goroutines; only the network calls fan out.
		batch := make([]types.Report, 0, end-start)
		for i := start; i < end; i++ {
			batch = append(batch, g.syntheticReport(deviceIDs))
		}

		var wg sync.WaitGroup
		for i, r := range batch {
			wg.Add(1)
			go func(index int, r types.Report) {
				defer wg.Done()
				if err := g.createReport(ctx, r); err != nil {
					log.Printf("Error generating report %d: %v", start+index+1, err)
				}
			}(i, r)
		}
		wg.Wait()

		progress := int(math.Round(float64(end) / float64(count) * 100))
		report(progress, fmt.Sprintf("Generated %d of %d reports...", end, count))
	}

	if !job.cancelled.Load() {
		log.Printf("Successfully generated %d demo reports.", count)
		report(100, fmt.Sprintf("Successfully generated %d demo reports.", count))
	}
}

// syntheticReport draws one randomized report without its image URL.
func (g *Generator) syntheticReport(deviceIDs []string) types.Report {
	lat := puneBounds.south + g.rng.Float64()*(puneBounds.north-puneBounds.south)
	lng := puneBounds.west + g.rng.Float64()*(puneBounds.east-puneBounds.west)

	submittedAt := time.Now().AddDate(0, 0, -g.rng.Intn(maxAgeDays))

	return types.Report{
		Lat:         lat,
		Lng:         lng,
		Address:     fmt.Sprintf("Near %s, Pune", puneAreas[g.rng.Intn(len(puneAreas))]),
		Description: g.randomDescription(),
		SubmittedAt: submittedAt,
		Status:      g.statusForAge(submittedAt),
		SubmittedBy: "Demo Generator",
		DeviceID:    deviceIDs[g.rng.Intn(len(deviceIDs))],
		IsDemo:      true,
	}
}

// statusForAge biases the status by the synthetic submission age: fresh
// reports are mostly pending, old ones mostly resolved.
func (g *Generator) statusForAge(submittedAt time.Time) types.Status {
	days := int(time.Since(submittedAt).Hours() / 24)

	if days < 10 {
		if g.rng.Float64() < 0.7 {
			return types.StatusPending
		}
		return types.StatusInProgress
	}
	if days < 30 {
		r := g.rng.Float64()
		if r < 0.3 {
			return types.StatusPending
		}
		if r < 0.7 {
			return types.StatusInProgress
		}
		return types.StatusResolved
	}
	if g.rng.Float64() < 0.7 {
		return types.StatusResolved
	}
	return types.StatusInProgress
}

func (g *Generator) createReport(ctx context.Context, r types.Report) error {
	imageBytes, err := g.fetchImage(ctx)
	if err != nil {
		return fmt.Errorf("fetching image: %w", err)
	}

	filename := fmt.Sprintf("demo-%d-%d", time.Now().UnixMilli(), rand.Intn(10000))
	imageURL, err := g.gw.UploadImage(ctx, imageBytes, filename)
	if err != nil {
		return fmt.Errorf("uploading image: %w", err)
	}
	r.ImageURL = imageURL

	if _, err := g.gw.AddReport(ctx, r); err != nil {
		return fmt.Errorf("adding report: %w", err)
	}
	return nil
}
