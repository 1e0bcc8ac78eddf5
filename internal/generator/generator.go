// Package generator assembles the final super-prompt synthesis call. Unlike
// classification and analysis there is no fallback here: a synthetic
// substitute for the user's optimized prompt would be worse than an honest
// error, so failures surface to the caller.
package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/promptforge/promptforge/internal/llm"
	"github.com/promptforge/promptforge/internal/models"
	"github.com/promptforge/promptforge/internal/prompts"
)

// ErrEmptyResponse is returned when the model produced no usable text.
var ErrEmptyResponse = errors.New("No response from AI model")

// Generator runs the synthesis stage.
type Generator struct {
	gen      llm.TextGenerator
	sampling llm.Sampling
	logger   *zap.Logger
}

func New(gen llm.TextGenerator, sampling llm.Sampling, logger *zap.Logger) *Generator {
	return &Generator{gen: gen, sampling: sampling, logger: logger}
}

// Generate produces the optimized super prompt from the original idea and
// the answered clarifying questions. Entries with a blank answer are
// skipped; an empty qa list is valid and exercises the idea alone.
func (g *Generator) Generate(ctx context.Context, idea string, qa []models.QA) (string, error) {
	prompt := BuildPrompt(idea, qa)

	text, err := g.gen.GenerateText(ctx, prompt, g.sampling.Creative(llm.GenerationTokens))
	if err != nil {
		return "", fmt.Errorf("super prompt generation failed: %w", err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyResponse
	}

	g.logger.Info("super prompt generated", zap.Int("chars", len(text)))
	return text, nil
}

// BuildPrompt concatenates the generation persona, the original idea, and
// the numbered question/answer context block.
func BuildPrompt(idea string, qa []models.QA) string {
	var b strings.Builder
	b.WriteString(prompts.Generation)
	b.WriteString(idea)
	b.WriteString("\n\n")
	b.WriteString("Additional context from clarifying questions:\n")
	for i, pair := range qa {
		if strings.TrimSpace(pair.Answer) == "" {
			continue
		}
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, pair.Question)
		fmt.Fprintf(&b, "Answer: %s\n", pair.Answer)
	}
	b.WriteString("\n\nNow generate the comprehensive super prompt:")
	return b.String()
}
