package demo

import (
	"context"
	"fmt"
	"log"

	"garbage-watch/store"
)

// deletePageSize is the Firestore ceiling on operations per write batch.
const deletePageSize = 500

// DeleteAll removes every report flagged isDemo, one atomic page of up to
// 500 deletes at a time, until a query comes back empty. It returns the
// number of deleted records; on failure it reports a final progress
// message and propagates the error.
func DeleteAll(ctx context.Context, gw store.Gateway, onProgress ProgressFunc) (int, error) {
	report := func(p int, msg string) {
		if onProgress != nil {
			onProgress(p, msg)
		}
	}

	deleted := 0
	report(0, "Fetching demo reports...")

	for {
		ids, err := gw.QueryDemoReportIDs(ctx, deletePageSize)
		if err != nil {
			log.Printf("Error deleting demo data: %v", err)
			report(100, fmt.Sprintf("Error: Could not delete all demo data. %v", err))
			return deleted, fmt.Errorf("querying demo reports: %w", err)
		}
		if len(ids) == 0 {
			break
		}

		if err := gw.DeleteReports(ctx, ids); err != nil {
			log.Printf("Error deleting demo data: %v", err)
			report(100, fmt.Sprintf("Error: Could not delete all demo data. %v", err))
			return deleted, fmt.Errorf("deleting demo page: %w", err)
		}

		deleted += len(ids)
		pct := deleted * 100 / (deleted + 1)
		if pct > 99 {
			pct = 99
		}
		report(pct, fmt.Sprintf("Deleted %d demo reports...", deleted))
	}

	report(100, fmt.Sprintf("Successfully deleted %d demo reports.", deleted))
	return deleted, nil
}
