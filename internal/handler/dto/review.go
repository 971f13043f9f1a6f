// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"time"

	"github.com/pulsecheck/pulsecheck/internal/model"
)

// CreateReviewRequest represents the request body for submitting a review.
// Pointer fields distinguish absent values from zero values.
type CreateReviewRequest struct {
	LocationID *int64     `json:"locationId"`
	Score      *int       `json:"score"`
	Datetime   *time.Time `json:"datetime,omitempty"`
}

// ReviewResponse represents a review in API responses.
type ReviewResponse struct {
	ID         string    `json:"id"`
	LocationID int64     `json:"locationId"`
	Score      int       `json:"score"`
	Datetime   time.Time `json:"datetime"`
}

// ToReviewResponse converts a review model to its API representation.
func ToReviewResponse(review *model.Review) ReviewResponse {
	return ReviewResponse{
		ID:         review.ID,
		LocationID: review.LocationID,
		Score:      review.Score,
		Datetime:   review.Datetime,
	}
}

// ReportResponse represents an aggregate report in API responses.
type ReportResponse struct {
	Clients      int     `json:"clients"`
	ScoreAverage float64 `json:"scoreAverage"`
}

// ToReportResponse converts a report model to its API representation.
func ToReportResponse(report *model.Report) ReportResponse {
	return ReportResponse{
		Clients:      report.Clients,
		ScoreAverage: report.ScoreAverage,
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
