// Package classifier assigns a (category, subcategory) pair from the fixed
// taxonomy to free-text ideas. It runs a two-tier pipeline: an AI
// classification call validated against the taxonomy, with a deterministic
// keyword-scoring fallback. Classify never fails outward; it degrades
// confidence instead.
package classifier

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/promptforge/promptforge/internal/contract"
	"github.com/promptforge/promptforge/internal/llm"
	"github.com/promptforge/promptforge/internal/models"
	"github.com/promptforge/promptforge/internal/prompts"
	"github.com/promptforge/promptforge/internal/taxonomy"
)

// Confidence ladder. Values are diagnostic; no decision logic branches on
// them.
const (
	confidenceEmpty    = 1.0  // nothing to classify, the answer is certain
	confidenceTooShort = 0.5  // under 10 chars there is too little signal
	confidenceAI       = 0.85 // AI returned a fully valid pair
	confidenceRepaired = 0.6  // valid category, subcategory substituted
	confidenceKeyword  = 0.6  // keyword scoring found at least one match
	confidenceMiss     = 0.3  // total miss, defaulted to General
)

const minIdeaLength = 10

// Reasoning tags recorded on results.
const (
	reasonAI         = "ai"
	reasonAICategory = "ai-category"
	reasonKeyword    = "keyword"
	reasonDefault    = "default"
)

// Classifier is the two-tier classification engine.
type Classifier struct {
	gen      llm.TextGenerator
	sampling llm.Sampling
	logger   *zap.Logger
}

func New(gen llm.TextGenerator, sampling llm.Sampling, logger *zap.Logger) *Classifier {
	return &Classifier{gen: gen, sampling: sampling, logger: logger}
}

// aiResponse is the JSON contract expected from the classification call.
type aiResponse struct {
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
}

// Classify returns a best-effort classification for idea. Errors on the AI
// path are absorbed and redirected to the keyword fallback.
func (c *Classifier) Classify(ctx context.Context, idea string) models.Classification {
	trimmed := strings.TrimSpace(idea)
	if trimmed == "" {
		return models.Classification{
			Category:    taxonomy.General,
			Subcategory: taxonomy.Uncategorized,
			Confidence:  confidenceEmpty,
			Reasoning:   reasonDefault,
		}
	}
	if len(trimmed) < minIdeaLength {
		return models.Classification{
			Category:    taxonomy.General,
			Subcategory: taxonomy.Uncategorized,
			Confidence:  confidenceTooShort,
			Reasoning:   reasonDefault,
		}
	}

	if result, ok := c.classifyWithAI(ctx, trimmed); ok {
		return result
	}
	return c.classifyWithKeywords(trimmed)
}

// classifyWithAI runs the primary path: one model call embedding the full
// taxonomy, validated against it. Returns ok=false when the response cannot
// be salvaged and the caller should fall back.
func (c *Classifier) classifyWithAI(ctx context.Context, idea string) (models.Classification, bool) {
	raw, err := c.gen.GenerateText(ctx, prompts.Classification(idea), c.sampling.Analytical(llm.ClassifyTokens))
	if err != nil {
		c.logger.Warn("AI classification call failed, using keyword fallback", zap.Error(err))
		return models.Classification{}, false
	}

	var resp aiResponse
	if err := contract.DecodeObject(raw, &resp); err != nil {
		c.logger.Warn("AI classification response unparseable, using keyword fallback",
			zap.Error(err),
			zap.String("response", raw))
		return models.Classification{}, false
	}

	category := taxonomy.CategoryID(strings.ToLower(strings.TrimSpace(resp.Category)))
	subcategory := taxonomy.SubcategoryID(strings.ToLower(strings.TrimSpace(resp.Subcategory)))

	if !taxonomy.ValidCategory(category) {
		c.logger.Warn("AI returned unknown category, using keyword fallback",
			zap.String("category", string(category)))
		return models.Classification{}, false
	}

	if sub, ok := taxonomy.SubcategoryByID(subcategory); ok && sub.Parent == category {
		return models.Classification{
			Category:    category,
			Subcategory: subcategory,
			Confidence:  confidenceAI,
			Reasoning:   reasonAI,
		}, true
	}

	// Category is trustworthy but the subcategory is unknown or belongs to a
	// different parent. Substitute the category's own default rather than
	// persisting an invalid pair.
	return models.Classification{
		Category:    category,
		Subcategory: taxonomy.FirstSubcategoryOf(category),
		Confidence:  confidenceRepaired,
		Reasoning:   reasonAICategory,
	}, true
}

// classifyWithKeywords scores every category's keyword list against the idea
// and repeats the scoring over the winner's subcategories. It is fully
// deterministic: ties go to the first-declared entry.
func (c *Classifier) classifyWithKeywords(idea string) models.Classification {
	lowered := strings.ToLower(idea)

	var (
		bestCategory taxonomy.CategoryID
		bestScore    int
	)
	for _, cat := range taxonomy.Categories() {
		score := keywordScore(lowered, cat.Keywords)
		if score > bestScore {
			bestScore = score
			bestCategory = cat.ID
		}
	}

	if bestScore == 0 {
		return models.Classification{
			Category:    taxonomy.General,
			Subcategory: taxonomy.Uncategorized,
			Confidence:  confidenceMiss,
			Reasoning:   reasonDefault,
		}
	}

	var (
		bestSub      taxonomy.SubcategoryID
		bestSubScore int
	)
	for _, sub := range taxonomy.SubcategoriesOf(bestCategory) {
		score := keywordScore(lowered, sub.Keywords)
		if score > bestSubScore {
			bestSubScore = score
			bestSub = sub.ID
		}
	}
	if bestSubScore == 0 {
		bestSub = taxonomy.FirstSubcategoryOf(bestCategory)
	}

	return models.Classification{
		Category:    bestCategory,
		Subcategory: bestSub,
		Confidence:  confidenceKeyword,
		Reasoning:   reasonKeyword,
	}
}

// keywordScore counts case-insensitive substring occurrences of each keyword.
// The text must already be lowercased.
func keywordScore(loweredText string, keywords []string) int {
	score := 0
	for _, kw := range keywords {
		if strings.Contains(loweredText, strings.ToLower(kw)) {
			score++
		}
	}
	return score
}
