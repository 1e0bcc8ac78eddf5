package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/promptforge/promptforge/internal/models"
)

// RedisStore keeps each user's records in per-user hashes with JSON values:
//
//	user:{id}:buckets   bucketID -> Bucket
//	user:{id}:prompts   promptID -> SavedPrompt
//	user:{id}:answers   answerID -> SavedAnswer
//
// Ownership checks are structural: a record only exists under its owner's
// keys. Conflicting writes are serialized by Redis itself.
type RedisStore struct {
	rdb    *redis.Client
	logger *zap.Logger
}

var _ Store = (*RedisStore)(nil)

func NewRedisStore(rdb *redis.Client, logger *zap.Logger) *RedisStore {
	return &RedisStore{rdb: rdb, logger: logger}
}

func bucketsKey(userID string) string { return fmt.Sprintf("user:%s:buckets", userID) }
func promptsKey(userID string) string { return fmt.Sprintf("user:%s:prompts", userID) }
func answersKey(userID string) string { return fmt.Sprintf("user:%s:answers", userID) }

func (s *RedisStore) EnsureDefaultBucket(ctx context.Context, userID string) (models.Bucket, error) {
	buckets, err := s.ListBuckets(ctx, userID)
	if err != nil {
		return models.Bucket{}, err
	}
	if len(buckets) > 0 {
		return buckets[0], nil
	}
	return s.CreateBucket(ctx, userID, DefaultBucketName, "#8B5CF6", "folder")
}

func (s *RedisStore) ListBuckets(ctx context.Context, userID string) ([]models.Bucket, error) {
	raw, err := s.rdb.HGetAll(ctx, bucketsKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list buckets: %w", err)
	}
	buckets := make([]models.Bucket, 0, len(raw))
	for _, v := range raw {
		var b models.Bucket
		if err := json.Unmarshal([]byte(v), &b); err != nil {
			s.logger.Warn("skipping undecodable bucket record", zap.Error(err))
			continue
		}
		buckets = append(buckets, b)
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].CreatedAt.Before(buckets[j].CreatedAt) })
	return buckets, nil
}

func (s *RedisStore) CreateBucket(ctx context.Context, userID, name, color, icon string) (models.Bucket, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Bucket{}, fmt.Errorf("bucket name is required")
	}
	existing, err := s.ListBuckets(ctx, userID)
	if err != nil {
		return models.Bucket{}, err
	}
	for _, b := range existing {
		if strings.EqualFold(b.Name, name) {
			return models.Bucket{}, ErrDuplicateBucket
		}
	}
	bucket := models.Bucket{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      name,
		Color:     color,
		Icon:      icon,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.writeBucket(ctx, bucket); err != nil {
		return models.Bucket{}, err
	}
	return bucket, nil
}

func (s *RedisStore) UpdateBucket(ctx context.Context, userID, bucketID string, name, color, icon *string) (models.Bucket, error) {
	bucket, err := s.getBucket(ctx, userID, bucketID)
	if err != nil {
		return models.Bucket{}, err
	}
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return models.Bucket{}, fmt.Errorf("bucket name is required")
		}
		existing, err := s.ListBuckets(ctx, userID)
		if err != nil {
			return models.Bucket{}, err
		}
		for _, b := range existing {
			if b.ID != bucketID && strings.EqualFold(b.Name, trimmed) {
				return models.Bucket{}, ErrDuplicateBucket
			}
		}
		bucket.Name = trimmed
	}
	if color != nil {
		bucket.Color = *color
	}
	if icon != nil {
		bucket.Icon = *icon
	}
	if err := s.writeBucket(ctx, bucket); err != nil {
		return models.Bucket{}, err
	}
	return bucket, nil
}

func (s *RedisStore) DeleteBucket(ctx context.Context, userID, bucketID, reassignTo string) error {
	buckets, err := s.ListBuckets(ctx, userID)
	if err != nil {
		return err
	}
	if len(buckets) <= 1 {
		return ErrLastBucket
	}
	if _, err := s.getBucket(ctx, userID, bucketID); err != nil {
		return err
	}
	if reassignTo == "" || reassignTo == bucketID {
		return ErrBadReassignTarget
	}
	if _, err := s.getBucket(ctx, userID, reassignTo); err != nil {
		return ErrBadReassignTarget
	}

	// Prompts must never point at a bucket that no longer exists, so they
	// move first.
	prompts, err := s.ListPrompts(ctx, userID)
	if err != nil {
		return err
	}
	for _, p := range prompts {
		if p.BucketID != bucketID {
			continue
		}
		p.BucketID = reassignTo
		if err := s.writePrompt(ctx, p); err != nil {
			return err
		}
	}

	if err := s.rdb.HDel(ctx, bucketsKey(userID), bucketID).Err(); err != nil {
		return fmt.Errorf("failed to delete bucket: %w", err)
	}
	return nil
}

func (s *RedisStore) ListPrompts(ctx context.Context, userID string) ([]models.SavedPrompt, error) {
	raw, err := s.rdb.HGetAll(ctx, promptsKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list prompts: %w", err)
	}
	prompts := make([]models.SavedPrompt, 0, len(raw))
	for _, v := range raw {
		var p models.SavedPrompt
		if err := json.Unmarshal([]byte(v), &p); err != nil {
			s.logger.Warn("skipping undecodable prompt record", zap.Error(err))
			continue
		}
		prompts = append(prompts, p)
	}
	// Newest first, matching the history view.
	sort.Slice(prompts, func(i, j int) bool { return prompts[i].CreatedAt.After(prompts[j].CreatedAt) })
	return prompts, nil
}

func (s *RedisStore) GetPrompt(ctx context.Context, userID, promptID string) (models.SavedPrompt, error) {
	v, err := s.rdb.HGet(ctx, promptsKey(userID), promptID).Result()
	if err == redis.Nil {
		return models.SavedPrompt{}, ErrNotFound
	}
	if err != nil {
		return models.SavedPrompt{}, fmt.Errorf("failed to get prompt: %w", err)
	}
	var p models.SavedPrompt
	if err := json.Unmarshal([]byte(v), &p); err != nil {
		return models.SavedPrompt{}, fmt.Errorf("failed to decode prompt: %w", err)
	}
	return p, nil
}

func (s *RedisStore) CreatePrompt(ctx context.Context, userID string, p models.SavedPrompt) (models.SavedPrompt, error) {
	if _, err := s.getBucket(ctx, userID, p.BucketID); err != nil {
		return models.SavedPrompt{}, err
	}
	p.ID = uuid.NewString()
	p.UserID = userID
	p.CreatedAt = time.Now().UTC()
	if err := s.writePrompt(ctx, p); err != nil {
		return models.SavedPrompt{}, err
	}
	return p, nil
}

func (s *RedisStore) DeletePrompt(ctx context.Context, userID, promptID string) error {
	n, err := s.rdb.HDel(ctx, promptsKey(userID), promptID).Result()
	if err != nil {
		return fmt.Errorf("failed to delete prompt: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	// Saved answers belong to the prompt; orphans are removed with it.
	answers, err := s.listAllAnswers(ctx, userID)
	if err != nil {
		return err
	}
	for _, a := range answers {
		if a.PromptID == promptID {
			if err := s.rdb.HDel(ctx, answersKey(userID), a.ID).Err(); err != nil {
				return fmt.Errorf("failed to delete prompt answer: %w", err)
			}
		}
	}
	return nil
}

func (s *RedisStore) ListAnswers(ctx context.Context, userID, promptID string) ([]models.SavedAnswer, error) {
	if _, err := s.GetPrompt(ctx, userID, promptID); err != nil {
		return nil, err
	}
	all, err := s.listAllAnswers(ctx, userID)
	if err != nil {
		return nil, err
	}
	answers := make([]models.SavedAnswer, 0, len(all))
	for _, a := range all {
		if a.PromptID == promptID {
			answers = append(answers, a)
		}
	}
	sort.Slice(answers, func(i, j int) bool { return answers[i].CreatedAt.After(answers[j].CreatedAt) })
	return answers, nil
}

func (s *RedisStore) CreateAnswer(ctx context.Context, userID string, a models.SavedAnswer) (models.SavedAnswer, error) {
	if _, err := s.GetPrompt(ctx, userID, a.PromptID); err != nil {
		return models.SavedAnswer{}, err
	}
	a.ID = uuid.NewString()
	a.UserID = userID
	a.CreatedAt = time.Now().UTC()
	data, err := json.Marshal(a)
	if err != nil {
		return models.SavedAnswer{}, fmt.Errorf("failed to encode answer: %w", err)
	}
	if err := s.rdb.HSet(ctx, answersKey(userID), a.ID, data).Err(); err != nil {
		return models.SavedAnswer{}, fmt.Errorf("failed to store answer: %w", err)
	}
	return a, nil
}

func (s *RedisStore) DeleteAnswer(ctx context.Context, userID, answerID string) error {
	n, err := s.rdb.HDel(ctx, answersKey(userID), answerID).Result()
	if err != nil {
		return fmt.Errorf("failed to delete answer: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *RedisStore) getBucket(ctx context.Context, userID, bucketID string) (models.Bucket, error) {
	v, err := s.rdb.HGet(ctx, bucketsKey(userID), bucketID).Result()
	if err == redis.Nil {
		return models.Bucket{}, ErrNotFound
	}
	if err != nil {
		return models.Bucket{}, fmt.Errorf("failed to get bucket: %w", err)
	}
	var b models.Bucket
	if err := json.Unmarshal([]byte(v), &b); err != nil {
		return models.Bucket{}, fmt.Errorf("failed to decode bucket: %w", err)
	}
	return b, nil
}

func (s *RedisStore) writeBucket(ctx context.Context, b models.Bucket) error {
	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("failed to encode bucket: %w", err)
	}
	if err := s.rdb.HSet(ctx, bucketsKey(b.UserID), b.ID, data).Err(); err != nil {
		return fmt.Errorf("failed to store bucket: %w", err)
	}
	return nil
}

func (s *RedisStore) writePrompt(ctx context.Context, p models.SavedPrompt) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode prompt: %w", err)
	}
	if err := s.rdb.HSet(ctx, promptsKey(p.UserID), p.ID, data).Err(); err != nil {
		return fmt.Errorf("failed to store prompt: %w", err)
	}
	return nil
}

func (s *RedisStore) listAllAnswers(ctx context.Context, userID string) ([]models.SavedAnswer, error) {
	raw, err := s.rdb.HGetAll(ctx, answersKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list answers: %w", err)
	}
	answers := make([]models.SavedAnswer, 0, len(raw))
	for _, v := range raw {
		var a models.SavedAnswer
		if err := json.Unmarshal([]byte(v), &a); err != nil {
			s.logger.Warn("skipping undecodable answer record", zap.Error(err))
			continue
		}
		answers = append(answers, a)
	}
	return answers, nil
}
