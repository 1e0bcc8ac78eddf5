package storage

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/promptforge/promptforge/internal/models"
)

// MemoryStore is a map-backed Store used in tests and local development.
// It enforces the same domain rules as RedisStore.
type MemoryStore struct {
	mu      sync.RWMutex
	buckets map[string]map[string]models.Bucket      // userID -> bucketID -> bucket
	prompts map[string]map[string]models.SavedPrompt // userID -> promptID -> prompt
	answers map[string]map[string]models.SavedAnswer // userID -> answerID -> answer
	now     func() time.Time
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		buckets: make(map[string]map[string]models.Bucket),
		prompts: make(map[string]map[string]models.SavedPrompt),
		answers: make(map[string]map[string]models.SavedAnswer),
		now:     time.Now,
	}
}

func (s *MemoryStore) EnsureDefaultBucket(_ context.Context, userID string) (models.Bucket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing := s.sortedBuckets(userID); len(existing) > 0 {
		return existing[0], nil
	}
	return s.createBucketLocked(userID, DefaultBucketName, "#8B5CF6", "folder")
}

func (s *MemoryStore) ListBuckets(_ context.Context, userID string) ([]models.Bucket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedBuckets(userID), nil
}

func (s *MemoryStore) CreateBucket(_ context.Context, userID, name, color, icon string) (models.Bucket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createBucketLocked(userID, name, color, icon)
}

func (s *MemoryStore) createBucketLocked(userID, name, color, icon string) (models.Bucket, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Bucket{}, fmt.Errorf("bucket name is required")
	}
	for _, b := range s.buckets[userID] {
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
		CreatedAt: s.now().UTC(),
	}
	if s.buckets[userID] == nil {
		s.buckets[userID] = make(map[string]models.Bucket)
	}
	s.buckets[userID][bucket.ID] = bucket
	return bucket, nil
}

func (s *MemoryStore) UpdateBucket(_ context.Context, userID, bucketID string, name, color, icon *string) (models.Bucket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	bucket, ok := s.buckets[userID][bucketID]
	if !ok {
		return models.Bucket{}, ErrNotFound
	}
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return models.Bucket{}, fmt.Errorf("bucket name is required")
		}
		for _, b := range s.buckets[userID] {
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
	s.buckets[userID][bucketID] = bucket
	return bucket, nil
}

func (s *MemoryStore) DeleteBucket(_ context.Context, userID, bucketID, reassignTo string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.buckets[userID]) <= 1 {
		return ErrLastBucket
	}
	if _, ok := s.buckets[userID][bucketID]; !ok {
		return ErrNotFound
	}
	if reassignTo == "" || reassignTo == bucketID {
		return ErrBadReassignTarget
	}
	if _, ok := s.buckets[userID][reassignTo]; !ok {
		return ErrBadReassignTarget
	}
	for id, p := range s.prompts[userID] {
		if p.BucketID == bucketID {
			p.BucketID = reassignTo
			s.prompts[userID][id] = p
		}
	}
	delete(s.buckets[userID], bucketID)
	return nil
}

func (s *MemoryStore) ListPrompts(_ context.Context, userID string) ([]models.SavedPrompt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	prompts := make([]models.SavedPrompt, 0, len(s.prompts[userID]))
	for _, p := range s.prompts[userID] {
		prompts = append(prompts, p)
	}
	sort.Slice(prompts, func(i, j int) bool { return prompts[i].CreatedAt.After(prompts[j].CreatedAt) })
	return prompts, nil
}

func (s *MemoryStore) GetPrompt(_ context.Context, userID, promptID string) (models.SavedPrompt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.prompts[userID][promptID]
	if !ok {
		return models.SavedPrompt{}, ErrNotFound
	}
	return p, nil
}

func (s *MemoryStore) CreatePrompt(_ context.Context, userID string, p models.SavedPrompt) (models.SavedPrompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.buckets[userID][p.BucketID]; !ok {
		return models.SavedPrompt{}, ErrNotFound
	}
	p.ID = uuid.NewString()
	p.UserID = userID
	p.CreatedAt = s.now().UTC()
	if s.prompts[userID] == nil {
		s.prompts[userID] = make(map[string]models.SavedPrompt)
	}
	s.prompts[userID][p.ID] = p
	return p, nil
}

func (s *MemoryStore) DeletePrompt(_ context.Context, userID, promptID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.prompts[userID][promptID]; !ok {
		return ErrNotFound
	}
	delete(s.prompts[userID], promptID)
	for id, a := range s.answers[userID] {
		if a.PromptID == promptID {
			delete(s.answers[userID], id)
		}
	}
	return nil
}

func (s *MemoryStore) ListAnswers(_ context.Context, userID, promptID string) ([]models.SavedAnswer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.prompts[userID][promptID]; !ok {
		return nil, ErrNotFound
	}
	answers := make([]models.SavedAnswer, 0)
	for _, a := range s.answers[userID] {
		if a.PromptID == promptID {
			answers = append(answers, a)
		}
	}
	sort.Slice(answers, func(i, j int) bool { return answers[i].CreatedAt.After(answers[j].CreatedAt) })
	return answers, nil
}

func (s *MemoryStore) CreateAnswer(_ context.Context, userID string, a models.SavedAnswer) (models.SavedAnswer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.prompts[userID][a.PromptID]; !ok {
		return models.SavedAnswer{}, ErrNotFound
	}
	a.ID = uuid.NewString()
	a.UserID = userID
	a.CreatedAt = s.now().UTC()
	if s.answers[userID] == nil {
		s.answers[userID] = make(map[string]models.SavedAnswer)
	}
	s.answers[userID][a.ID] = a
	return a, nil
}

func (s *MemoryStore) DeleteAnswer(_ context.Context, userID, answerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.answers[userID][answerID]; !ok {
		return ErrNotFound
	}
	delete(s.answers[userID], answerID)
	return nil
}

func (s *MemoryStore) sortedBuckets(userID string) []models.Bucket {
	buckets := make([]models.Bucket, 0, len(s.buckets[userID]))
	for _, b := range s.buckets[userID] {
		buckets = append(buckets, b)
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].CreatedAt.Before(buckets[j].CreatedAt) })
	return buckets
}
