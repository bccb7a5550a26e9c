package store

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"garbage-watch/types"
	"garbage-watch/util"
)

// Store caches report records fetched through the Gateway and mediates all
// create/read/update traffic from the HTTP layer. A failed refresh leaves
// the previously cached reports in place.
type Store struct {
	gw Gateway

	mu      sync.RWMutex
	reports []types.Report
}

func New(gw Gateway) *Store {
	return &Store{gw: gw}
}

// FetchAll refreshes the cache from the backend and returns the reports,
// newest first. On error the prior cache is kept and returned alongside
// the error.
func (s *Store) FetchAll(ctx context.Context) ([]types.Report, error) {
	reports, err := s.gw.FetchReports(ctx)
	if err != nil {
		s.mu.RLock()
		prior := append([]types.Report(nil), s.reports...)
		s.mu.RUnlock()
		return prior, fmt.Errorf("fetching reports: %w", err)
	}

	s.mu.Lock()
	s.reports = reports
	s.mu.Unlock()
	return append([]types.Report(nil), reports...), nil
}

// Create uploads the image, then writes the report record with status
// Pending and submittedAt set to now. If the upload fails no record is
// written. If the record write fails after upload the orphaned blob is
// left behind; there is no compensating delete.
func (s *Store) Create(ctx context.Context, input types.ReportInput) (string, error) {
	if err := types.ValidateCoordinates(input.Lat, input.Lng); err != nil {
		return "", err
	}
	if len(input.Image) == 0 {
		return "", fmt.Errorf("report image is required")
	}

	objectName := util.NewUniqueID()
	imageURL, err := s.gw.UploadImage(ctx, input.Image, objectName)
	if err != nil {
		return "", fmt.Errorf("uploading report image: %w", err)
	}

	submittedBy := input.SubmittedBy
	if submittedBy == "" {
		submittedBy = "Anonymous"
	}

	report := types.Report{
		ImageURL:    imageURL,
		Lat:         input.Lat,
		Lng:         input.Lng,
		Address:     input.Address,
		Description: input.Description,
		SubmittedAt: time.Now(),
		Status:      types.StatusPending,
		SubmittedBy: submittedBy,
		DeviceID:    input.DeviceID,
	}

	id, err := s.gw.AddReport(ctx, report)
	if err != nil {
		log.Printf("Report write failed after image upload, blob %s is orphaned: %v", objectName, err)
		return "", fmt.Errorf("saving report: %w", err)
	}
	report.ID = id

	s.mu.Lock()
	s.reports = append([]types.Report{report}, s.reports...)
	s.mu.Unlock()

	return id, nil
}

// UpdateStatus writes the new status to the backend, then patches the
// cached copy. Any status may follow any other.
func (s *Store) UpdateStatus(ctx context.Context, id string, status types.Status) error {
	if _, err := types.ParseStatus(string(status)); err != nil {
		return err
	}

	if err := s.gw.UpdateReportStatus(ctx, id, status); err != nil {
		return fmt.Errorf("updating status for report %s: %w", id, err)
	}

	s.mu.Lock()
	for i := range s.reports {
		if s.reports[i].ID == id {
			s.reports[i].Status = status
			break
		}
	}
	s.mu.Unlock()
	return nil
}

// Get returns a single report, preferring the cache and falling back to the
// backend for IDs not yet cached.
func (s *Store) Get(ctx context.Context, id string) (types.Report, error) {
	s.mu.RLock()
	for _, r := range s.reports {
		if r.ID == id {
			s.mu.RUnlock()
			return r, nil
		}
	}
	s.mu.RUnlock()
	return s.gw.GetReport(ctx, id)
}

// ByDevice filters the cached reports down to one device's submissions,
// preserving store order.
func (s *Store) ByDevice(deviceID string) []types.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []types.Report
	for _, r := range s.reports {
		if r.DeviceID == deviceID {
			matched = append(matched, r)
		}
	}
	return matched
}

// Cached returns a copy of the current cache without a backend round trip.
func (s *Store) Cached() []types.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]types.Report(nil), s.reports...)
}
