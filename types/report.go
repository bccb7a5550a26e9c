package types

import (
	"fmt"
	"time"
)

// Status is the triage state of a report. There is no transition graph:
// admins may move a report to any status at any time, including reopening
// resolved reports.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusResolved   Status = "Resolved"
)

// ParseStatus validates a raw status string from a client.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusInProgress, StatusResolved:
		return Status(s), nil
	}
	return "", fmt.Errorf("invalid status %q", s)
}

// Report is a single garbage sighting stored in the "reports" collection.
type Report struct {
	ID          string    `firestore:"-" json:"id"`
	ImageURL    string    `firestore:"imageURL" json:"imageURL"`
	Lat         float64   `firestore:"lat" json:"lat"`
	Lng         float64   `firestore:"lng" json:"lng"`
	Address     string    `firestore:"address,omitempty" json:"address,omitempty"`
	Description string    `firestore:"description,omitempty" json:"description,omitempty"`
	SubmittedAt time.Time `firestore:"submittedAt" json:"submittedAt"`
	Status      Status    `firestore:"status" json:"status"`
	SubmittedBy string    `firestore:"submittedBy" json:"submittedBy"`
	DeviceID    string    `firestore:"deviceId" json:"deviceId"`
	IsDemo      bool      `firestore:"isDemo,omitempty" json:"isDemo,omitempty"`
}

// ReportInput is what a submission needs before the gateway assigns an ID
// and the image upload resolves an URL.
type ReportInput struct {
	Lat         float64
	Lng         float64
	Address     string
	Description string
	SubmittedBy string
	DeviceID    string
	Image       []byte
}

// ValidateCoordinates rejects coordinates outside the WGS84 range.
func ValidateCoordinates(lat, lng float64) error {
	if lat < -90 || lat > 90 {
		return fmt.Errorf("latitude %v out of range [-90, 90]", lat)
	}
	if lng < -180 || lng > 180 {
		return fmt.Errorf("longitude %v out of range [-180, 180]", lng)
	}
	return nil
}
