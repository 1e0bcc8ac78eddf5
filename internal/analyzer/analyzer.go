// Package analyzer drives the clarifying-question stage. Each analysis mode
// binds its own prompt template, output contract, validation thresholds, and
// fallback set; Analyze never fails outward — when the model call or its
// output cannot be used, a static fallback set keeps the workflow moving.
package analyzer

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/promptforge/promptforge/internal/contract"
	"github.com/promptforge/promptforge/internal/llm"
	"github.com/promptforge/promptforge/internal/models"
	"github.com/promptforge/promptforge/internal/prompts"
)

// ModeConfig fixes the contract for one analysis mode.
type ModeConfig struct {
	MinQuestions    int
	MaxQuestions    int
	Template        string
	MaxOutputTokens int32
	Creative        bool
	AutoAnswer      bool
}

// modeConfigs is the central dispatch table. Manual is present for
// completeness; Analyze short-circuits it without a model call.
var modeConfigs = map[models.AnalysisMode]ModeConfig{
	models.ModeAI: {
		MinQuestions:    4,
		MaxQuestions:    6,
		Template:        prompts.AIModeAnalysis,
		MaxOutputTokens: llm.AnalysisTokens,
		AutoAnswer:      true,
	},
	models.ModeNormal: {
		MinQuestions:    4,
		MaxQuestions:    6,
		Template:        prompts.NormalAnalysis,
		MaxOutputTokens: llm.AnalysisTokens,
	},
	models.ModeExtensive: {
		MinQuestions:    8,
		MaxQuestions:    12,
		Template:        prompts.ExtensiveAnalysis,
		MaxOutputTokens: llm.ExtensiveTokens,
		Creative:        true,
	},
	models.ModeManual: {},
}

// ConfigFor returns the configuration of a mode.
func ConfigFor(mode models.AnalysisMode) ModeConfig {
	return modeConfigs[mode]
}

// Output is the result of one analysis pass.
type Output struct {
	Questions   []models.Question   `json:"questions"`
	AutoAnswers map[int]string      `json:"autoAnswers,omitempty"`
	Mode        models.AnalysisMode `json:"mode"`
}

// Analyzer is the per-mode question orchestrator.
type Analyzer struct {
	gen      llm.TextGenerator
	sampling llm.Sampling
	logger   *zap.Logger
}

func New(gen llm.TextGenerator, sampling llm.Sampling, logger *zap.Logger) *Analyzer {
	return &Analyzer{gen: gen, sampling: sampling, logger: logger}
}

// aiModeResponse is the combined contract for AI mode: the model generates
// questions and answers them itself, keyed by stringified index.
type aiModeResponse struct {
	Questions   []models.Question `json:"questions"`
	AutoAnswers map[string]string `json:"autoAnswers"`
}

// Analyze produces clarifying questions for idea under the given mode. It
// always resolves: model and contract failures degrade to the mode's static
// fallback set.
func (a *Analyzer) Analyze(ctx context.Context, idea string, mode models.AnalysisMode) Output {
	cfg, ok := modeConfigs[mode]
	if !ok || mode == models.ModeManual {
		return Output{Mode: mode}
	}

	sampling := a.sampling.Balanced(cfg.MaxOutputTokens)
	if cfg.Creative {
		sampling = a.sampling.Creative(cfg.MaxOutputTokens)
	}

	raw, err := a.gen.GenerateText(ctx, cfg.Template+idea, sampling)
	if err != nil {
		a.logger.Warn("analysis call failed, using fallback questions",
			zap.String("mode", string(mode)),
			zap.Error(err))
		return a.fallback(mode, cfg)
	}

	var questions []models.Question
	var autoAnswers map[int]string

	if cfg.AutoAnswer {
		var resp aiModeResponse
		if err := contract.DecodeObject(raw, &resp); err != nil {
			a.logger.Warn("AI-mode analysis response unparseable, using fallback",
				zap.Error(err))
			return a.fallback(mode, cfg)
		}
		questions = resp.Questions
		autoAnswers = indexAnswers(resp.AutoAnswers)
	} else {
		questions, err = contract.DecodeArray[models.Question](raw)
		if err != nil {
			a.logger.Warn("analysis response unparseable, using fallback",
				zap.String("mode", string(mode)),
				zap.Error(err))
			return a.fallback(mode, cfg)
		}
	}

	if len(questions) < cfg.MinQuestions {
		a.logger.Warn("analysis returned too few questions, using fallback",
			zap.String("mode", string(mode)),
			zap.Int("got", len(questions)),
			zap.Int("min", cfg.MinQuestions))
		return a.fallback(mode, cfg)
	}
	// Over the maximum the first questions win: the template instructs the
	// model to order by importance.
	if len(questions) > cfg.MaxQuestions {
		questions = questions[:cfg.MaxQuestions]
	}
	questions = normalize(questions)

	out := Output{Questions: questions, Mode: mode}
	if cfg.AutoAnswer {
		// Truncation may have dropped questions; answers must never point
		// past the surviving set.
		for idx := range autoAnswers {
			if idx >= len(questions) {
				delete(autoAnswers, idx)
			}
		}
		out.AutoAnswers = autoAnswers
		if out.AutoAnswers == nil {
			out.AutoAnswers = map[int]string{}
		}
	}
	return out
}

func (a *Analyzer) fallback(mode models.AnalysisMode, cfg ModeConfig) Output {
	out := Output{Questions: FallbackQuestions(mode), Mode: mode}
	if cfg.AutoAnswer {
		out.AutoAnswers = FallbackAutoAnswers()
	}
	return out
}

// indexAnswers converts the wire map (stringified indices) to int keys,
// dropping entries that do not parse.
func indexAnswers(wire map[string]string) map[int]string {
	answers := make(map[int]string, len(wire))
	for k, v := range wire {
		idx, err := strconv.Atoi(k)
		if err != nil || idx < 0 {
			continue
		}
		answers[idx] = v
	}
	return answers
}

// normalize guarantees both fields of every question are present so
// downstream code never sees partial objects.
func normalize(questions []models.Question) []models.Question {
	normalized := make([]models.Question, len(questions))
	for i, q := range questions {
		normalized[i] = models.Question{Question: q.Question, Suggestion: q.Suggestion}
	}
	return normalized
}

// FallbackQuestions is the static question set used whenever the AI-derived
// set is unavailable or invalid. Extensive mode extends the base set with
// four deeper questions.
func FallbackQuestions(mode models.AnalysisMode) []models.Question {
	base := []models.Question{
		{
			Question:   "Who is the target audience for this content?",
			Suggestion: "e.g., beginners, professionals, students, general public",
		},
		{
			Question:   "What tone and style should be used?",
			Suggestion: "e.g., formal, casual, technical, conversational",
		},
		{
			Question:   "What format should the output be in?",
			Suggestion: "e.g., essay, bullet points, step-by-step guide",
		},
		{
			Question:   "Are there any specific constraints or requirements?",
			Suggestion: "e.g., word count, specific topics to include/avoid",
		},
	}

	if mode == models.ModeExtensive {
		return append(base, []models.Question{
			{
				Question:   "What is the primary goal or objective?",
				Suggestion: "e.g., educate, persuade, inform, entertain",
			},
			{
				Question:   "What is the context or background for this request?",
				Suggestion: "e.g., project type, industry, use case",
			},
			{
				Question:   "Are there any examples or references to follow?",
				Suggestion: "e.g., similar content, style guides, templates",
			},
			{
				Question:   "What are the success criteria?",
				Suggestion: "e.g., engagement metrics, clarity, completeness",
			},
		}...)
	}

	return base
}

// FallbackAutoAnswers pairs one plausible answer with each base fallback
// question for AI mode.
func FallbackAutoAnswers() map[int]string {
	return map[int]string{
		0: "General audience with moderate familiarity with the topic",
		1: "Professional yet accessible tone, balancing expertise with clarity",
		2: "Well-structured format with clear sections and actionable points",
		3: "Comprehensive coverage while maintaining readability and engagement",
	}
}

// ValidateMode returns an error for unknown modes so handlers can reject
// them before invoking the orchestrator.
func ValidateMode(mode models.AnalysisMode) error {
	if !models.ValidMode(mode) {
		return fmt.Errorf("invalid analysis mode %q", mode)
	}
	return nil
}
