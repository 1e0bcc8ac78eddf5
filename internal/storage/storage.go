// Package storage persists user-owned prompts, buckets, and saved answers.
// Every operation is scoped by the acting user's ID; the engines upstream
// never touch storage directly.
package storage

import (
	"context"
	"errors"

	"github.com/promptforge/promptforge/internal/models"
)

var (
	// ErrNotFound is returned when a record does not exist or is owned by a
	// different user. The two cases are deliberately indistinguishable.
	ErrNotFound = errors.New("record not found")
	// ErrLastBucket rejects deleting a user's only bucket.
	ErrLastBucket = errors.New("cannot delete your last bucket")
	// ErrDuplicateBucket rejects a second bucket with the same name.
	ErrDuplicateBucket = errors.New("a bucket with this name already exists")
	// ErrBadReassignTarget rejects bucket deletion without a valid
	// reassignment bucket for its prompts.
	ErrBadReassignTarget = errors.New("reassignment bucket does not exist")
)

// DefaultBucketName is the bucket provisioned for users who have none.
const DefaultBucketName = "My Prompts"

// Store is the persistence boundary consumed by the HTTP layer.
type Store interface {
	// EnsureDefaultBucket guarantees the user has at least one bucket and
	// returns it (or the oldest existing one).
	EnsureDefaultBucket(ctx context.Context, userID string) (models.Bucket, error)

	ListBuckets(ctx context.Context, userID string) ([]models.Bucket, error)
	CreateBucket(ctx context.Context, userID, name, color, icon string) (models.Bucket, error)
	UpdateBucket(ctx context.Context, userID, bucketID string, name, color, icon *string) (models.Bucket, error)
	// DeleteBucket removes a bucket after moving its prompts to reassignTo.
	// Deleting the last bucket is rejected.
	DeleteBucket(ctx context.Context, userID, bucketID, reassignTo string) error

	ListPrompts(ctx context.Context, userID string) ([]models.SavedPrompt, error)
	GetPrompt(ctx context.Context, userID, promptID string) (models.SavedPrompt, error)
	CreatePrompt(ctx context.Context, userID string, p models.SavedPrompt) (models.SavedPrompt, error)
	DeletePrompt(ctx context.Context, userID, promptID string) error

	ListAnswers(ctx context.Context, userID, promptID string) ([]models.SavedAnswer, error)
	CreateAnswer(ctx context.Context, userID string, a models.SavedAnswer) (models.SavedAnswer, error)
	DeleteAnswer(ctx context.Context, userID, answerID string) error
}
