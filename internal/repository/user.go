package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pulsecheck/pulsecheck/internal/model"
)

// Common errors for user repository operations.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailExists  = errors.New("email already exists")
)

// ensureIndexes creates the unique email index on the user collection.
// Email uniqueness is enforced here, not in application logic.
func (r *Repository) ensureIndexes(ctx context.Context) error {
	ctx, cancel := withOpTimeout(ctx)
	defer cancel()

	_, err := r.db.Collection(userCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// InsertUser persists a new user document.
// The repository assigns the document ID.
func (r *Repository) InsertUser(ctx context.Context, user *model.User) error {
	if user.ID == "" {
		user.ID = newID()
	}

	ctx, cancel := withOpTimeout(ctx)
	defer cancel()

	if _, err := r.db.Collection(userCollection).InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrEmailExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetUserByEmail retrieves a user by their email address.
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	ctx, cancel := withOpTimeout(ctx)
	defer cancel()

	var user model.User
	err := r.db.Collection(userCollection).FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &user, nil
}
