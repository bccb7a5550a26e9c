package db

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"garbage-watch/types"
)

const reportsCollection = "reports"

// FetchReports retrieves all reports ordered by submission time, newest first.
func (c *Client) FetchReports(ctx context.Context) ([]types.Report, error) {
	docs, err := c.firestore.Collection(reportsCollection).
		OrderBy("submittedAt", firestore.Desc).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, fmt.Errorf("error querying reports: %w", err)
	}

	var reports []types.Report
	for _, doc := range docs {
		var r types.Report
		if err := doc.DataTo(&r); err != nil {
			log.Printf("Warning: Error converting document %s to Report: %v. Skipping.", doc.Ref.ID, err)
			continue
		}
		r.ID = doc.Ref.ID
		reports = append(reports, r)
	}

	return reports, nil
}

// GetReport retrieves a single report document by its ID.
func (c *Client) GetReport(ctx context.Context, id string) (types.Report, error) {
	var r types.Report

	docSnap, err := c.firestore.Collection(reportsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return r, fmt.Errorf("report %s not found", id)
		}
		return r, fmt.Errorf("error getting report %s: %w", id, err)
	}

	if err := docSnap.DataTo(&r); err != nil {
		return r, fmt.Errorf("error converting document %s to Report: %w", id, err)
	}
	r.ID = docSnap.Ref.ID
	return r, nil
}

// UploadImage writes the image bytes to the reports/ prefix of the default
// bucket and returns the public download URL.
func (c *Client) UploadImage(ctx context.Context, data []byte, objectName string) (string, error) {
	objectPath := "reports/" + objectName

	w := c.bucket.Object(objectPath).NewWriter(ctx)
	w.ContentType = "image/jpeg"
	if _, err := w.Write(data); err != nil {
		w.Close()
		return "", fmt.Errorf("error writing image %s: %w", objectPath, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("error finalizing image upload %s: %w", objectPath, err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucketName, objectPath), nil
}

// AddReport writes a new report document and returns the generated ID.
func (c *Client) AddReport(ctx context.Context, r types.Report) (string, error) {
	docRef, _, err := c.firestore.Collection(reportsCollection).Add(ctx, r)
	if err != nil {
		return "", fmt.Errorf("error adding report document: %w", err)
	}
	return docRef.ID, nil
}

// UpdateReportStatus writes only the status field of an existing report.
func (c *Client) UpdateReportStatus(ctx context.Context, id string, newStatus types.Status) error {
	docRef := c.firestore.Collection(reportsCollection).Doc(id)
	updates := []firestore.Update{
		{Path: "status", Value: newStatus},
	}

	_, err := docRef.Update(ctx, updates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("report %s not found", id)
		}
		return fmt.Errorf("error updating report %s: %w", id, err)
	}
	return nil
}

// QueryDemoReportIDs returns up to limit document IDs flagged as demo data.
func (c *Client) QueryDemoReportIDs(ctx context.Context, limit int) ([]string, error) {
	docs, err := c.firestore.Collection(reportsCollection).
		Where("isDemo", "==", true).
		Limit(limit).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, fmt.Errorf("error querying demo reports: %w", err)
	}

	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, doc.Ref.ID)
	}
	return ids, nil
}

// DeleteReports removes the given documents in a single atomic write batch.
// Firestore caps a batch at 500 operations; callers page accordingly.
func (c *Client) DeleteReports(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	batch := c.firestore.Batch()
	for _, id := range ids {
		batch.Delete(c.firestore.Collection(reportsCollection).Doc(id))
	}

	if _, err := batch.Commit(ctx); err != nil {
		return fmt.Errorf("error committing delete batch of %d reports: %w", len(ids), err)
	}
	return nil
}
