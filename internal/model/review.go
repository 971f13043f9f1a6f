// Package model defines domain entities for the application.
package model

import "time"

// Score bounds for a review.
const (
	MinScore = 1
	MaxScore = 5
)

// Review represents a single customer satisfaction submission.
// Reviews are immutable after creation.
type Review struct {
	ID         string    `bson:"_id" json:"id"`
	LocationID int64     `bson:"locationId" json:"locationId"`
	Score      int       `bson:"score" json:"score"`
	Datetime   time.Time `bson:"datetime" json:"datetime"`
}

// Report is an aggregate over a set of reviews.
type Report struct {
	Clients      int     `json:"clients"`
	ScoreAverage float64 `json:"scoreAverage"`
}
