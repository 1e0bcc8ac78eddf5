package generator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/promptforge/promptforge/internal/llm"
	"github.com/promptforge/promptforge/internal/models"
)

type fakeGenerator struct {
	reply  string
	err    error
	prompt string
	cfg    llm.Config
}

func (f *fakeGenerator) GenerateText(_ context.Context, prompt string, cfg llm.Config) (string, error) {
	f.prompt = prompt
	f.cfg = cfg
	return f.reply, f.err
}

func TestGenerate(t *testing.T) {
	gen := &fakeGenerator{reply: "  # Optimized Prompt\n\nYou are an expert...  "}
	g := New(gen, llm.DefaultSampling(), zap.NewNop())

	got, err := g.Generate(context.Background(), "write a blog post", []models.QA{
		{Question: "Who is the audience?", Answer: "policy makers"},
	})
	require.NoError(t, err)
	assert.Equal(t, "# Optimized Prompt\n\nYou are an expert...", got)
	assert.Equal(t, llm.DefaultSampling().Creative(llm.GenerationTokens), gen.cfg)
}

func TestGenerateEmptyQAIsValid(t *testing.T) {
	gen := &fakeGenerator{reply: "result"}
	g := New(gen, llm.DefaultSampling(), zap.NewNop())

	got, err := g.Generate(context.Background(), "write a blog post", nil)
	require.NoError(t, err)
	assert.Equal(t, "result", got)
}

func TestGenerateModelError(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("quota exceeded")}
	g := New(gen, llm.DefaultSampling(), zap.NewNop())

	_, err := g.Generate(context.Background(), "write a blog post", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestGenerateEmptyModelOutput(t *testing.T) {
	gen := &fakeGenerator{reply: "   \n  "}
	g := New(gen, llm.DefaultSampling(), zap.NewNop())

	_, err := g.Generate(context.Background(), "write a blog post", nil)
	require.ErrorIs(t, err, ErrEmptyResponse)
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt("write a blog post", []models.QA{
		{Question: "Who is the audience?", Answer: "policy makers"},
		{Question: "What tone?", Answer: "formal"},
	})

	assert.Contains(t, prompt, "write a blog post")
	assert.Contains(t, prompt, "Additional context from clarifying questions:")
	assert.Contains(t, prompt, "\n1. Who is the audience?\nAnswer: policy makers\n")
	assert.Contains(t, prompt, "\n2. What tone?\nAnswer: formal\n")
	assert.Contains(t, prompt, "Now generate the comprehensive super prompt:")
}

func TestBuildPromptSkipsBlankAnswers(t *testing.T) {
	prompt := BuildPrompt("write a blog post", []models.QA{
		{Question: "Who is the audience?", Answer: "   "},
		{Question: "What tone?", Answer: "formal"},
	})

	assert.NotContains(t, prompt, "Who is the audience?")
	// Numbering follows the original position, not the surviving count.
	assert.Contains(t, prompt, "\n2. What tone?\nAnswer: formal\n")
}
