package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptforge/promptforge/internal/models"
)

// newClockedStore returns a MemoryStore whose clock advances one second per
// call, so creation order is always reflected in timestamps.
func newClockedStore() *MemoryStore {
	s := NewMemoryStore()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time {
		base = base.Add(time.Second)
		return base
	}
	return s
}

func TestEnsureDefaultBucket(t *testing.T) {
	s := newClockedStore()
	ctx := context.Background()

	bucket, err := s.EnsureDefaultBucket(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, DefaultBucketName, bucket.Name)
	assert.Equal(t, "u1", bucket.UserID)
	assert.NotEmpty(t, bucket.ID)

	// Idempotent: a second call returns the same bucket, not a new one.
	again, err := s.EnsureDefaultBucket(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, bucket.ID, again.ID)

	buckets, err := s.ListBuckets(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, buckets, 1)
}

func TestEnsureDefaultBucketReturnsOldest(t *testing.T) {
	s := newClockedStore()
	ctx := context.Background()

	first, err := s.CreateBucket(ctx, "u1", "Work", "#111111", "briefcase")
	require.NoError(t, err)
	_, err = s.CreateBucket(ctx, "u1", "Personal", "#222222", "home")
	require.NoError(t, err)

	got, err := s.EnsureDefaultBucket(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
}

func TestCreateBucketRejectsDuplicateName(t *testing.T) {
	s := newClockedStore()
	ctx := context.Background()

	_, err := s.CreateBucket(ctx, "u1", "Work", "", "")
	require.NoError(t, err)
	_, err = s.CreateBucket(ctx, "u1", "work", "", "")
	assert.ErrorIs(t, err, ErrDuplicateBucket)

	// Same name for a different user is fine.
	_, err = s.CreateBucket(ctx, "u2", "Work", "", "")
	assert.NoError(t, err)
}

func TestUpdateBucket(t *testing.T) {
	s := newClockedStore()
	ctx := context.Background()

	bucket, err := s.CreateBucket(ctx, "u1", "Work", "#111111", "briefcase")
	require.NoError(t, err)

	name := "Projects"
	updated, err := s.UpdateBucket(ctx, "u1", bucket.ID, &name, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Projects", updated.Name)
	assert.Equal(t, "#111111", updated.Color, "unset fields keep their value")

	_, err = s.UpdateBucket(ctx, "u2", bucket.ID, &name, nil, nil)
	assert.ErrorIs(t, err, ErrNotFound, "other users must not see the bucket")
}

func TestUpdateBucketValidatesName(t *testing.T) {
	s := newClockedStore()
	ctx := context.Background()

	a, err := s.CreateBucket(ctx, "u1", "Work", "", "")
	require.NoError(t, err)
	_, err = s.CreateBucket(ctx, "u1", "Personal", "", "")
	require.NoError(t, err)

	blank := "   "
	_, err = s.UpdateBucket(ctx, "u1", a.ID, &blank, nil, nil)
	assert.Error(t, err)

	taken := "personal"
	_, err = s.UpdateBucket(ctx, "u1", a.ID, &taken, nil, nil)
	assert.ErrorIs(t, err, ErrDuplicateBucket)

	// Renaming a bucket to its own name is not a collision.
	same := "Work"
	updated, err := s.UpdateBucket(ctx, "u1", a.ID, &same, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Work", updated.Name)
}

func TestDeleteLastBucketRejected(t *testing.T) {
	s := newClockedStore()
	ctx := context.Background()

	bucket, err := s.EnsureDefaultBucket(ctx, "u1")
	require.NoError(t, err)

	err = s.DeleteBucket(ctx, "u1", bucket.ID, "")
	assert.ErrorIs(t, err, ErrLastBucket)

	buckets, err := s.ListBuckets(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, buckets, 1, "rejected deletion must not mutate state")
}

func TestDeleteBucketReassignsPrompts(t *testing.T) {
	s := newClockedStore()
	ctx := context.Background()

	keep, err := s.CreateBucket(ctx, "u1", "Keep", "", "")
	require.NoError(t, err)
	doomed, err := s.CreateBucket(ctx, "u1", "Doomed", "", "")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := s.CreatePrompt(ctx, "u1", models.SavedPrompt{
			Title:         "p",
			InitialPrompt: "idea",
			SuperPrompt:   "prompt",
			BucketID:      doomed.ID,
			AnalysisMode:  models.ModeNormal,
		})
		require.NoError(t, err)
	}

	require.NoError(t, s.DeleteBucket(ctx, "u1", doomed.ID, keep.ID))

	prompts, err := s.ListPrompts(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, prompts, 3)
	for _, p := range prompts {
		assert.Equal(t, keep.ID, p.BucketID)
	}

	buckets, err := s.ListBuckets(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, buckets, 1)
	assert.Equal(t, keep.ID, buckets[0].ID)
}

func TestDeleteBucketValidatesReassignTarget(t *testing.T) {
	s := newClockedStore()
	ctx := context.Background()

	a, err := s.CreateBucket(ctx, "u1", "A", "", "")
	require.NoError(t, err)
	_, err = s.CreateBucket(ctx, "u1", "B", "", "")
	require.NoError(t, err)

	assert.ErrorIs(t, s.DeleteBucket(ctx, "u1", a.ID, ""), ErrBadReassignTarget)
	assert.ErrorIs(t, s.DeleteBucket(ctx, "u1", a.ID, a.ID), ErrBadReassignTarget)
	assert.ErrorIs(t, s.DeleteBucket(ctx, "u1", a.ID, "missing"), ErrBadReassignTarget)

	buckets, err := s.ListBuckets(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, buckets, 2)
}

func TestCreatePromptRequiresOwnedBucket(t *testing.T) {
	s := newClockedStore()
	ctx := context.Background()

	bucket, err := s.CreateBucket(ctx, "u1", "Work", "", "")
	require.NoError(t, err)

	_, err = s.CreatePrompt(ctx, "u1", models.SavedPrompt{BucketID: "missing", SuperPrompt: "x"})
	assert.ErrorIs(t, err, ErrNotFound)

	// A bucket owned by someone else is indistinguishable from a missing one.
	_, err = s.CreatePrompt(ctx, "u2", models.SavedPrompt{BucketID: bucket.ID, SuperPrompt: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListPromptsNewestFirst(t *testing.T) {
	s := newClockedStore()
	ctx := context.Background()

	bucket, err := s.CreateBucket(ctx, "u1", "Work", "", "")
	require.NoError(t, err)

	for _, title := range []string{"first", "second", "third"} {
		_, err := s.CreatePrompt(ctx, "u1", models.SavedPrompt{Title: title, BucketID: bucket.ID})
		require.NoError(t, err)
	}

	prompts, err := s.ListPrompts(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, prompts, 3)
	assert.Equal(t, "third", prompts[0].Title)
	assert.Equal(t, "first", prompts[2].Title)
}

func TestGetPromptIsUserScoped(t *testing.T) {
	s := newClockedStore()
	ctx := context.Background()

	bucket, err := s.CreateBucket(ctx, "u1", "Work", "", "")
	require.NoError(t, err)
	p, err := s.CreatePrompt(ctx, "u1", models.SavedPrompt{Title: "mine", BucketID: bucket.ID})
	require.NoError(t, err)

	got, err := s.GetPrompt(ctx, "u1", p.ID)
	require.NoError(t, err)
	assert.Equal(t, "mine", got.Title)

	_, err = s.GetPrompt(ctx, "u2", p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeletePromptCascadesAnswers(t *testing.T) {
	s := newClockedStore()
	ctx := context.Background()

	bucket, err := s.CreateBucket(ctx, "u1", "Work", "", "")
	require.NoError(t, err)
	p, err := s.CreatePrompt(ctx, "u1", models.SavedPrompt{BucketID: bucket.ID})
	require.NoError(t, err)
	_, err = s.CreateAnswer(ctx, "u1", models.SavedAnswer{PromptID: p.ID, AnswerText: "answer"})
	require.NoError(t, err)

	require.NoError(t, s.DeletePrompt(ctx, "u1", p.ID))

	// The prompt is gone, so its answers are no longer addressable at all.
	_, err = s.ListAnswers(ctx, "u1", p.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.DeletePrompt(ctx, "u1", p.ID), ErrNotFound)
}

func TestListAnswersRequiresOwnedPrompt(t *testing.T) {
	s := newClockedStore()
	ctx := context.Background()

	bucket, err := s.CreateBucket(ctx, "u1", "Work", "", "")
	require.NoError(t, err)
	p, err := s.CreatePrompt(ctx, "u1", models.SavedPrompt{BucketID: bucket.ID})
	require.NoError(t, err)

	answers, err := s.ListAnswers(ctx, "u1", p.ID)
	require.NoError(t, err)
	assert.Empty(t, answers)

	_, err = s.ListAnswers(ctx, "u1", "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	// Another user's prompt is indistinguishable from a missing one.
	_, err = s.ListAnswers(ctx, "u2", p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateAnswerRequiresOwnedPrompt(t *testing.T) {
	s := newClockedStore()
	ctx := context.Background()

	bucket, err := s.CreateBucket(ctx, "u1", "Work", "", "")
	require.NoError(t, err)
	p, err := s.CreatePrompt(ctx, "u1", models.SavedPrompt{BucketID: bucket.ID})
	require.NoError(t, err)

	_, err = s.CreateAnswer(ctx, "u1", models.SavedAnswer{PromptID: "missing", AnswerText: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.CreateAnswer(ctx, "u2", models.SavedAnswer{PromptID: p.ID, AnswerText: "x"})
	assert.ErrorIs(t, err, ErrNotFound)

	a, err := s.CreateAnswer(ctx, "u1", models.SavedAnswer{PromptID: p.ID, AnswerText: "x"})
	require.NoError(t, err)
	require.NoError(t, s.DeleteAnswer(ctx, "u1", a.ID))
	assert.ErrorIs(t, s.DeleteAnswer(ctx, "u1", a.ID), ErrNotFound)
}
