package demo

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"garbage-watch/types"
)

// countingGateway records writes; safe for the concurrent creates inside a
// generation batch.
type countingGateway struct {
	mu      sync.Mutex
	added   []types.Report
	uploads int

	addReportFunc func(r types.Report) (string, error)

	demoIDs      [][]string // pages returned by successive demo queries
	queryErr     error
	deleteErr    error
	deletedPages [][]string
}

func (f *countingGateway) FetchReports(ctx context.Context) ([]types.Report, error) {
	return nil, nil
}

func (f *countingGateway) GetReport(ctx context.Context, id string) (types.Report, error) {
	return types.Report{}, errors.New("not implemented")
}

func (f *countingGateway) UploadImage(ctx context.Context, data []byte, objectName string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads++
	return "https://example.test/reports/" + objectName, nil
}

func (f *countingGateway) AddReport(ctx context.Context, r types.Report) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.addReportFunc != nil {
		if id, err := f.addReportFunc(r); err != nil {
			return id, err
		}
	}
	f.added = append(f.added, r)
	return fmt.Sprintf("report-%d", len(f.added)), nil
}

func (f *countingGateway) UpdateReportStatus(ctx context.Context, id string, status types.Status) error {
	return errors.New("not implemented")
}

func (f *countingGateway) QueryDemoReportIDs(ctx context.Context, limit int) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	if len(f.demoIDs) == 0 {
		return nil, nil
	}
	page := f.demoIDs[0]
	if len(page) > limit {
		page = page[:limit]
	}
	return page, nil
}

func (f *countingGateway) DeleteReports(ctx context.Context, ids []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedPages = append(f.deletedPages, ids)
	f.demoIDs = f.demoIDs[1:]
	return nil
}

func newTestGenerator(gw *countingGateway, seed int64) *Generator {
	return &Generator{
		gw:  gw,
		rng: rand.New(rand.NewSource(seed)),
		fetchImage: func(ctx context.Context) ([]byte, error) {
			return []byte{0x1}, nil
		},
	}
}

type progressEvent struct {
	percent int
	message string
}

func TestGenerateBatchesAndFinalProgress(t *testing.T) {
	gw := &countingGateway{}
	g := newTestGenerator(gw, 1)

	var mu sync.Mutex
	var events []progressEvent
	job := g.Generate(context.Background(), 25, func(p int, m string) {
		mu.Lock()
		events = append(events, progressEvent{p, m})
		mu.Unlock()
	})
	<-job.Done()

	assert.Len(t, gw.added, 25)

	// Start message, one per batch (ceil(25/10) = 3), final summary.
	require.Len(t, events, 5)
	assert.Equal(t, 0, events[0].percent)
	assert.Equal(t, progressEvent{40, "Generated 10 of 25 reports..."}, events[1])
	assert.Equal(t, progressEvent{80, "Generated 20 of 25 reports..."}, events[2])
	assert.Equal(t, progressEvent{100, "Generated 25 of 25 reports..."}, events[3])
	assert.Equal(t, progressEvent{100, "Successfully generated 25 demo reports."}, events[4])
}

func TestGenerateCancelSkipsLaterBatches(t *testing.T) {
	gw := &countingGateway{}
	g := newTestGenerator(gw, 1)

	firstBatch := make(chan struct{})
	proceed := make(chan struct{})
	var once sync.Once

	// The callback runs synchronously between batches, so blocking it here
	// holds the run at the batch boundary while the test cancels.
	job := g.Generate(context.Background(), 30, func(p int, m string) {
		if strings.HasPrefix(m, "Generated 10 of") {
			once.Do(func() {
				close(firstBatch)
				<-proceed
			})
		}
	})

	<-firstBatch
	job.Cancel()
	close(proceed)
	<-job.Done()

	assert.Len(t, gw.added, 10, "only the first batch should have been written")
}

func TestGenerateToleratesPerReportFailures(t *testing.T) {
	gw := &countingGateway{}
	calls := 0
	gw.addReportFunc = func(r types.Report) (string, error) {
		calls++
		if calls%3 == 0 {
			return "", errors.New("simulated write failure")
		}
		return "", nil
	}
	g := newTestGenerator(gw, 7)

	var final progressEvent
	job := g.Generate(context.Background(), 12, func(p int, m string) {
		final = progressEvent{p, m}
	})
	<-job.Done()

	assert.Equal(t, 100, final.percent)
	assert.Equal(t, "Successfully generated 12 demo reports.", final.message)
	assert.Less(t, len(gw.added), 12)
	assert.NotEmpty(t, gw.added)
}

func TestSyntheticReportFields(t *testing.T) {
	g := newTestGenerator(&countingGateway{}, 42)
	deviceIDs := []string{"dev-a", "dev-b", "dev-c"}

	for i := 0; i < 200; i++ {
		r := g.syntheticReport(deviceIDs)

		assert.True(t, r.Lat >= puneBounds.south && r.Lat <= puneBounds.north, "lat %v outside Pune bounds", r.Lat)
		assert.True(t, r.Lng >= puneBounds.west && r.Lng <= puneBounds.east, "lng %v outside Pune bounds", r.Lng)
		assert.True(t, r.IsDemo)
		assert.Equal(t, "Demo Generator", r.SubmittedBy)
		assert.Contains(t, deviceIDs, r.DeviceID)
		assert.True(t, strings.HasPrefix(r.Address, "Near "))
		assert.True(t, strings.HasSuffix(r.Address, ", Pune"))
		assert.False(t, r.SubmittedAt.After(time.Now()))
		assert.False(t, r.SubmittedAt.Before(time.Now().AddDate(0, 0, -maxAgeDays)))
	}
}

func TestStatusForAgeBands(t *testing.T) {
	g := newTestGenerator(&countingGateway{}, 99)

	for i := 0; i < 500; i++ {
		fresh := g.statusForAge(time.Now().AddDate(0, 0, -3))
		assert.NotEqual(t, types.StatusResolved, fresh, "reports under 10 days old are never resolved")

		old := g.statusForAge(time.Now().AddDate(0, 0, -45))
		assert.NotEqual(t, types.StatusPending, old, "reports over 30 days old are never pending")
	}
}

func TestBuildDescription(t *testing.T) {
	got := buildDescription("large pile of", "plastic waste", "near the market", "Kothrud", "It's a health hazard")
	assert.Equal(t, "large pile of plastic waste found near the market in Kothrud. It's a health hazard.", got)
}

func TestRandomDescriptionUsesVocabularies(t *testing.T) {
	g := newTestGenerator(&countingGateway{}, 5)

	for i := 0; i < 50; i++ {
		desc := g.randomDescription()
		assert.Contains(t, desc, " found ")
		assert.True(t, strings.HasSuffix(desc, "."))
	}
}
