package model

import "time"

// User represents an account that can sign in and read reports.
// PasswordHash holds the bcrypt hash in the "password" document field;
// it never leaves the persistence layer in API responses.
type User struct {
	ID           string    `bson:"_id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"created_at"`
}
