package service

import (
	"context"

	"github.com/pulsecheck/pulsecheck/internal/model"
)

// ReviewStore is the persistence port for review documents.
type ReviewStore interface {
	InsertReview(ctx context.Context, review *model.Review) error
	ListReviews(ctx context.Context, locationID *int64) ([]model.Review, error)
}

// UserStore is the persistence port for user documents.
type UserStore interface {
	InsertUser(ctx context.Context, user *model.User) error
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}
