package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pulsecheck/pulsecheck/internal/model"
)

// InsertReview persists a new review document.
// The repository assigns the document ID.
func (r *Repository) InsertReview(ctx context.Context, review *model.Review) error {
	if review.ID == "" {
		review.ID = newID()
	}

	ctx, cancel := withOpTimeout(ctx)
	defer cancel()

	if _, err := r.db.Collection(reviewCollection).InsertOne(ctx, review); err != nil {
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

// ListReviews returns all reviews, optionally filtered by location.
// A nil locationID means all locations.
func (r *Repository) ListReviews(ctx context.Context, locationID *int64) ([]model.Review, error) {
	filter := bson.M{}
	if locationID != nil {
		filter["locationId"] = *locationID
	}

	ctx, cancel := withOpTimeout(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "datetime", Value: 1}})
	cursor, err := r.db.Collection(reviewCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var reviews []model.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}
	return reviews, nil
}
