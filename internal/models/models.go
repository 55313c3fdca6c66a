package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is created on first signup for an email and never updated or deleted
// afterwards. Email uniqueness is enforced by lookup before insert, not by an
// index, so concurrent signups can still race in a duplicate.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Provider  string             `bson:"provider"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

// Note belongs to a user by id reference; the reference is not checked
// against the user collection.
type Note struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	UserID   string             `bson:"user_id"`
	Title    string             `bson:"title"`
	Content  string             `bson:"content"`
	Language *string            `bson:"language"`
}

// ProgressEntry records one lesson completion. Entries are append-only:
// repeating the same (user, course, lesson) inserts another entry instead of
// mutating an existing one.
type ProgressEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	Course    string             `bson:"course"`
	Lesson    string             `bson:"lesson"`
	Completed bool               `bson:"completed"`
}
