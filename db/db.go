package db

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"sync"

	"cloud.google.com/go/firestore"
	cloudstorage "cloud.google.com/go/storage"
	firebase "firebase.google.com/go"
	"firebase.google.com/go/auth"
	"google.golang.org/api/option"
)

// Client bundles the Firestore, Cloud Storage and Auth handles behind the
// store.Gateway seam.
type Client struct {
	firestore  *firestore.Client
	bucket     *cloudstorage.BucketHandle
	bucketName string
	auth       *auth.Client
}

var (
	client     *Client
	clientOnce sync.Once
)

// InitClient initializes and returns the singleton backend client.
// Credentials come base64-encoded from FIREBASE_CREDENTIALS; the default
// bucket name from STORAGE_BUCKET.
func InitClient() (*Client, error) {
	var initErr error

	clientOnce.Do(func() {
		encodedCreds := os.Getenv("FIREBASE_CREDENTIALS")
		creds, err := base64.StdEncoding.DecodeString(encodedCreds)
		if err != nil {
			initErr = fmt.Errorf("failed to decode Firebase credentials: %w", err)
			return
		}

		bucketName := os.Getenv("STORAGE_BUCKET")
		if bucketName == "" {
			initErr = fmt.Errorf("STORAGE_BUCKET environment variable not set")
			return
		}

		opt := option.WithCredentialsJSON(creds)
		app, err := firebase.NewApp(context.Background(), &firebase.Config{
			StorageBucket: bucketName,
		}, opt)
		if err != nil {
			initErr = fmt.Errorf("error initializing Firebase app: %w", err)
			return
		}

		fsClient, err := app.Firestore(context.Background())
		if err != nil {
			initErr = fmt.Errorf("error getting Firestore client: %w", err)
			return
		}

		storageClient, err := app.Storage(context.Background())
		if err != nil {
			initErr = fmt.Errorf("error getting Storage client: %w", err)
			return
		}
		bucket, err := storageClient.DefaultBucket()
		if err != nil {
			initErr = fmt.Errorf("error getting default bucket: %w", err)
			return
		}

		authClient, err := app.Auth(context.Background())
		if err != nil {
			initErr = fmt.Errorf("error getting Auth client: %w", err)
			return
		}

		client = &Client{
			firestore:  fsClient,
			bucket:     bucket,
			bucketName: bucketName,
			auth:       authClient,
		}
	})

	return client, initErr
}

// CloseClient closes the underlying Firestore client.
func CloseClient() {
	if client != nil && client.firestore != nil {
		if err := client.firestore.Close(); err != nil {
			log.Printf("Error closing Firestore client: %v", err)
		}
	}
}

// Firestore exposes the raw Firestore handle for callers outside the
// gateway seam, such as the summary cron job.
func (c *Client) Firestore() *firestore.Client {
	return c.firestore
}

// VerifyAdminToken validates a Firebase ID token and checks its admin claim.
func (c *Client) VerifyAdminToken(ctx context.Context, idToken string) (*auth.Token, error) {
	token, err := c.auth.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("verifying ID token: %w", err)
	}
	if isAdmin, ok := token.Claims["admin"].(bool); !ok || !isAdmin {
		return nil, fmt.Errorf("user %s is not an admin", token.UID)
	}
	return token, nil
}
