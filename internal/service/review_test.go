package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pulsecheck/pulsecheck/internal/model"
)

// fakeReviewStore is an in-memory ReviewStore for unit tests.
type fakeReviewStore struct {
	reviews []model.Review
	listErr error
}

func (f *fakeReviewStore) InsertReview(_ context.Context, review *model.Review) error {
	if review.ID == "" {
		review.ID = "01HYW1REVIEW00000000000000"
	}
	f.reviews = append(f.reviews, *review)
	return nil
}

func (f *fakeReviewStore) ListReviews(_ context.Context, locationID *int64) ([]model.Review, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if locationID == nil {
		return f.reviews, nil
	}
	var matched []model.Review
	for _, review := range f.reviews {
		if review.LocationID == *locationID {
			matched = append(matched, review)
		}
	}
	return matched, nil
}

func int64Ptr(v int64) *int64 { return &v }
func intPtr(v int) *int       { return &v }

func TestSubmitReview_Valid(t *testing.T) {
	store := &fakeReviewStore{}
	svc := NewReviewService(store, nil)

	datetime := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	review, err := svc.SubmitReview(context.Background(), SubmitReviewInput{
		LocationID: int64Ptr(3),
		Score:      intPtr(5),
		Datetime:   &datetime,
	})
	if err != nil {
		t.Fatalf("SubmitReview failed: %v", err)
	}

	if review.ID == "" {
		t.Error("expected assigned ID")
	}
	if review.LocationID != 3 {
		t.Errorf("expected locationId 3, got %d", review.LocationID)
	}
	if review.Score != 5 {
		t.Errorf("expected score 5, got %d", review.Score)
	}
	if !review.Datetime.Equal(datetime) {
		t.Errorf("expected datetime %v, got %v", datetime, review.Datetime)
	}
	if len(store.reviews) != 1 {
		t.Fatalf("expected 1 stored review, got %d", len(store.reviews))
	}
}

func TestSubmitReview_DatetimeDefaultsToNow(t *testing.T) {
	store := &fakeReviewStore{}
	svc := NewReviewService(store, nil)

	before := time.Now().UTC()
	review, err := svc.SubmitReview(context.Background(), SubmitReviewInput{
		LocationID: int64Ptr(0),
		Score:      intPtr(1),
	})
	after := time.Now().UTC()

	if err != nil {
		t.Fatalf("SubmitReview failed: %v", err)
	}
	if review.Datetime.Before(before) || review.Datetime.After(after) {
		t.Errorf("expected datetime defaulted to now, got %v", review.Datetime)
	}
}

func TestSubmitReview_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   SubmitReviewInput
		wantErr error
	}{
		{
			name:    "missing_location",
			input:   SubmitReviewInput{Score: intPtr(3)},
			wantErr: ErrLocationRequired,
		},
		{
			name:    "negative_location",
			input:   SubmitReviewInput{LocationID: int64Ptr(-1), Score: intPtr(3)},
			wantErr: ErrLocationNegative,
		},
		{
			name:    "missing_score",
			input:   SubmitReviewInput{LocationID: int64Ptr(1)},
			wantErr: ErrScoreRequired,
		},
		{
			name:    "score_too_low",
			input:   SubmitReviewInput{LocationID: int64Ptr(1), Score: intPtr(0)},
			wantErr: ErrScoreOutOfRange,
		},
		{
			name:    "score_too_high",
			input:   SubmitReviewInput{LocationID: int64Ptr(1), Score: intPtr(6)},
			wantErr: ErrScoreOutOfRange,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			store := &fakeReviewStore{}
			svc := NewReviewService(store, nil)

			_, err := svc.SubmitReview(context.Background(), test.input)
			if !errors.Is(err, test.wantErr) {
				t.Fatalf("expected %v, got %v", test.wantErr, err)
			}
			if len(store.reviews) != 0 {
				t.Errorf("nothing should be persisted on validation failure, got %d documents", len(store.reviews))
			}
		})
	}
}

func TestReport_Empty(t *testing.T) {
	svc := NewReviewService(&fakeReviewStore{}, nil)

	report, err := svc.Report(context.Background(), nil)
	if err != nil {
		t.Fatalf("Report failed: %v", err)
	}

	if report.Clients != 0 {
		t.Errorf("expected 0 clients, got %d", report.Clients)
	}
	// Zero average, never NaN
	if report.ScoreAverage != 0 {
		t.Errorf("expected scoreAverage 0, got %v", report.ScoreAverage)
	}
}

func TestReport_Average(t *testing.T) {
	store := &fakeReviewStore{reviews: []model.Review{
		{ID: "a", LocationID: 1, Score: 4},
		{ID: "b", LocationID: 1, Score: 5},
		{ID: "c", LocationID: 2, Score: 3},
	}}
	svc := NewReviewService(store, nil)

	report, err := svc.Report(context.Background(), nil)
	if err != nil {
		t.Fatalf("Report failed: %v", err)
	}

	if report.Clients != 3 {
		t.Errorf("expected 3 clients, got %d", report.Clients)
	}
	if report.ScoreAverage != 4 {
		t.Errorf("expected scoreAverage 4, got %v", report.ScoreAverage)
	}
}

func TestReport_FilteredByLocation(t *testing.T) {
	store := &fakeReviewStore{reviews: []model.Review{
		{ID: "a", LocationID: 1, Score: 2},
		{ID: "b", LocationID: 1, Score: 4},
		{ID: "c", LocationID: 2, Score: 5},
	}}
	svc := NewReviewService(store, nil)

	report, err := svc.Report(context.Background(), int64Ptr(1))
	if err != nil {
		t.Fatalf("Report failed: %v", err)
	}

	if report.Clients != 2 {
		t.Errorf("expected 2 clients, got %d", report.Clients)
	}
	if report.ScoreAverage != 3 {
		t.Errorf("expected scoreAverage 3, got %v", report.ScoreAverage)
	}
}

func TestReport_FractionalAverage(t *testing.T) {
	store := &fakeReviewStore{reviews: []model.Review{
		{ID: "a", LocationID: 1, Score: 4},
		{ID: "b", LocationID: 1, Score: 5},
	}}
	svc := NewReviewService(store, nil)

	report, err := svc.Report(context.Background(), nil)
	if err != nil {
		t.Fatalf("Report failed: %v", err)
	}

	if report.ScoreAverage != 4.5 {
		t.Errorf("expected unrounded scoreAverage 4.5, got %v", report.ScoreAverage)
	}
}

func TestReport_StoreError(t *testing.T) {
	store := &fakeReviewStore{listErr: errors.New("connection lost")}
	svc := NewReviewService(store, nil)

	if _, err := svc.Report(context.Background(), nil); err == nil {
		t.Fatal("expected error when store fails")
	}
}
