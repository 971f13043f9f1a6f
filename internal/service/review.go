// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pulsecheck/pulsecheck/internal/metrics"
	"github.com/pulsecheck/pulsecheck/internal/model"
)

// Validation errors for review submission.
var (
	ErrLocationRequired = errors.New("locationId is required")
	ErrLocationNegative = errors.New("locationId must not be negative")
	ErrScoreRequired    = errors.New("score is required")
	ErrScoreOutOfRange  = errors.New("score must be between 1 and 5")
)

// ReviewService handles review submission and report aggregation.
type ReviewService struct {
	store   ReviewStore
	metrics metrics.Recorder
}

// NewReviewService creates a new ReviewService.
func NewReviewService(store ReviewStore, recorder metrics.Recorder) *ReviewService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &ReviewService{
		store:   store,
		metrics: recorder,
	}
}

// SubmitReviewInput defines input for submitting a review.
// Pointer fields distinguish absent values from zero values.
type SubmitReviewInput struct {
	LocationID *int64
	Score      *int
	Datetime   *time.Time
}

// validate checks the input against the review schema.
// Nothing is persisted when validation fails.
func (in SubmitReviewInput) validate() error {
	if in.LocationID == nil {
		return ErrLocationRequired
	}
	if *in.LocationID < 0 {
		return ErrLocationNegative
	}
	if in.Score == nil {
		return ErrScoreRequired
	}
	if *in.Score < model.MinScore || *in.Score > model.MaxScore {
		return ErrScoreOutOfRange
	}
	return nil
}

// SubmitReview validates and persists a new review, returning the stored
// document with its assigned ID and resolved datetime.
func (s *ReviewService) SubmitReview(ctx context.Context, input SubmitReviewInput) (*model.Review, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	datetime := time.Now().UTC()
	if input.Datetime != nil {
		datetime = input.Datetime.UTC()
	}

	review := &model.Review{
		LocationID: *input.LocationID,
		Score:      *input.Score,
		Datetime:   datetime,
	}

	if err := s.store.InsertReview(ctx, review); err != nil {
		return nil, fmt.Errorf("submit review: %w", err)
	}

	s.metrics.IncReviewCreated()

	return review, nil
}

// Report aggregates matching reviews into a client count and mean score.
// A nil locationID covers all reviews. An empty result set yields a zero
// average, never NaN.
func (s *ReviewService) Report(ctx context.Context, locationID *int64) (*model.Report, error) {
	reviews, err := s.store.ListReviews(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}

	clients := len(reviews)
	report := &model.Report{Clients: clients}

	if clients > 0 {
		var sum int
		for _, review := range reviews {
			sum += review.Score
		}
		report.ScoreAverage = float64(sum) / float64(clients)
	}

	s.metrics.IncReportServed()

	return report, nil
}
