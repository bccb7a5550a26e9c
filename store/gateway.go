package store

import (
	"context"

	"garbage-watch/types"
)

// Gateway is the narrow seam over the document and blob stores. The
// production implementation lives in the db package; tests substitute an
// in-memory fake.
type Gateway interface {
	// FetchReports returns all reports ordered by submittedAt descending.
	FetchReports(ctx context.Context) ([]types.Report, error)

	// GetReport returns a single report by document ID.
	GetReport(ctx context.Context, id string) (types.Report, error)

	// UploadImage stores the image bytes under the given object name and
	// returns a publicly resolvable URL.
	UploadImage(ctx context.Context, data []byte, objectName string) (string, error)

	// AddReport writes a new report document and returns its assigned ID.
	AddReport(ctx context.Context, r types.Report) (string, error)

	// UpdateReportStatus writes only the status field of an existing report.
	UpdateReportStatus(ctx context.Context, id string, status types.Status) error

	// QueryDemoReportIDs returns up to limit document IDs flagged isDemo.
	QueryDemoReportIDs(ctx context.Context, limit int) ([]string, error)

	// DeleteReports removes the given documents in one atomic batch.
	DeleteReports(ctx context.Context, ids []string) error
}
