// Package models holds the entity and transport types shared between the
// engines, the storage layer, and the HTTP handlers.
package models

import (
	"time"

	"github.com/promptforge/promptforge/internal/taxonomy"
)

// AnalysisMode selects how clarifying questions are produced and answered.
type AnalysisMode string

const (
	// ModeAI generates questions and answers them automatically in one call.
	ModeAI AnalysisMode = "ai"
	// ModeNormal generates 4-6 questions for the user to answer.
	ModeNormal AnalysisMode = "normal"
	// ModeExtensive generates 8-12 questions across all prompt dimensions.
	ModeExtensive AnalysisMode = "extensive"
	// ModeManual bypasses analysis entirely; the user supplies the final text.
	ModeManual AnalysisMode = "manual"
)

// ValidMode reports whether m names a declared analysis mode.
func ValidMode(m AnalysisMode) bool {
	switch m {
	case ModeAI, ModeNormal, ModeExtensive, ModeManual:
		return true
	}
	return false
}

// Question is a single clarifying question with an example answer. It has no
// identity beyond its position in the sequence it belongs to.
type Question struct {
	Question   string `json:"question"`
	Suggestion string `json:"suggestion"`
}

// Classification is the result of categorizing an idea against the taxonomy.
// Confidence is diagnostic only; nothing branches on it.
type Classification struct {
	Category    taxonomy.CategoryID    `json:"category"`
	Subcategory taxonomy.SubcategoryID `json:"subcategory,omitempty"`
	Confidence  float64                `json:"confidence"`
	Reasoning   string                 `json:"reasoning,omitempty"`
}

// SavedPrompt is a persisted optimized prompt owned by a user.
type SavedPrompt struct {
	ID            string                 `json:"id"`
	UserID        string                 `json:"user_id"`
	Title         string                 `json:"title"`
	InitialPrompt string                 `json:"initial_prompt"`
	Questions     []Question             `json:"questions,omitempty"`
	Answers       map[int]string         `json:"answers,omitempty"`
	SuperPrompt   string                 `json:"super_prompt"`
	BucketID      string                 `json:"bucket_id"`
	Category      taxonomy.CategoryID    `json:"category"`
	Subcategory   taxonomy.SubcategoryID `json:"subcategory,omitempty"`
	Confidence    float64                `json:"confidence,omitempty"`
	AnalysisMode  AnalysisMode           `json:"analysis_mode"`
	CreatedAt     time.Time              `json:"created_at"`
}

// Bucket is a user-owned container for saved prompts. Every user always has
// at least one.
type Bucket struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	Icon      string    `json:"icon"`
	CreatedAt time.Time `json:"created_at"`
}

// BucketStats is a bucket joined with usage statistics for listings.
type BucketStats struct {
	Bucket
	PromptCount  int        `json:"promptCount"`
	LastUsedDate *time.Time `json:"lastUsedDate,omitempty"`
}

// SavedAnswer is a playground result saved against a prompt.
type SavedAnswer struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	PromptID         string    `json:"prompt_id"`
	AnswerText       string    `json:"answer_text"`
	Notes            string    `json:"notes,omitempty"`
	GenerationTimeMS int64     `json:"generation_time_ms,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// QA pairs a clarifying question with the user's (or the model's) answer for
// super prompt generation.
type QA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
