// Package repository provides the persistence layer over MongoDB.
// It owns the "review" and "user" collections and assigns document IDs.
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	reviewCollection = "review"
	userCollection   = "user"

	// opTimeout bounds every database call so a stalled server surfaces
	// as an error response instead of a hung request.
	opTimeout = 5 * time.Second
)

// connectDelays are the backoff delays between connection attempts at startup.
var connectDelays = []time.Duration{
	500 * time.Millisecond,
	1 * time.Second,
	2 * time.Second,
	5 * time.Second,
}

// Repository provides document store access methods.
type Repository struct {
	client *mongo.Client
	db     *mongo.Database
}

// New connects to MongoDB and prepares the collections.
// The initial connection is retried with backoff before giving up.
func New(ctx context.Context, uri, dbName string) (*Repository, error) {
	client, err := connectWithRetry(ctx, uri)
	if err != nil {
		return nil, err
	}

	repo := &Repository{
		client: client,
		db:     client.Database(dbName),
	}

	if err := repo.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}

	return repo, nil
}

// connectWithRetry attempts the initial connection, backing off between
// failed attempts.
func connectWithRetry(ctx context.Context, uri string) (*mongo.Client, error) {
	var lastErr error

	for attempt := 0; attempt <= len(connectDelays); attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(connectDelays[attempt-1]):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if err != nil {
			lastErr = err
			continue
		}

		pingCtx, cancel := context.WithTimeout(ctx, opTimeout)
		err = client.Ping(pingCtx, nil)
		cancel()
		if err != nil {
			lastErr = err
			_ = client.Disconnect(ctx)
			continue
		}

		return client, nil
	}

	return nil, fmt.Errorf("connect to MongoDB after %d attempts: %w", len(connectDelays)+1, lastErr)
}

// Ping checks database connectivity.
func (r *Repository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, nil)
}

// Close disconnects the underlying client.
func (r *Repository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

// newID assigns an opaque unique identifier for a new document.
func newID() string {
	return ulid.Make().String()
}

// withOpTimeout derives a bounded context for a single database call.
func withOpTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, opTimeout)
}
