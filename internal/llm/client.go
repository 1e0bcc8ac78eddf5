// Package llm wraps the external text-generation service behind a uniform,
// single-call interface. The rest of the system treats the model as a black
// box: text in, text out, fallible, slow.
package llm

import "context"

// Config holds the sampling parameters for one generation call.
type Config struct {
	Temperature     float32
	TopP            float32
	TopK            int32
	MaxOutputTokens int32
}

// TextGenerator is the universal interface every provider client implements.
// Implementations must return an error for transport failures, service-side
// errors, and empty responses alike; callers never inspect the failure
// category.
type TextGenerator interface {
	// GenerateText performs one blocking request to the model. Calls take
	// multiple seconds; callers are expected to surface a pending state for
	// the whole duration.
	GenerateText(ctx context.Context, prompt string, cfg Config) (string, error)
}

// Sampling is the tunable parameter table behind the named presets. It is
// populated once at startup (optionally from config.yaml) and read-only
// afterwards.
type Sampling struct {
	TopP                  float32 `yaml:"top_p"`
	TopK                  int32   `yaml:"top_k"`
	CreativeTemperature   float32 `yaml:"creative_temperature"`
	BalancedTemperature   float32 `yaml:"balanced_temperature"`
	AnalyticalTemperature float32 `yaml:"analytical_temperature"`
}

// DefaultSampling mirrors the values the product has always shipped with.
func DefaultSampling() Sampling {
	return Sampling{
		TopP:                  0.95,
		TopK:                  40,
		CreativeTemperature:   1.0,
		BalancedTemperature:   0.9,
		AnalyticalTemperature: 0.7,
	}
}

// Token caps by operation type.
const (
	AnalysisTokens   int32 = 4096
	ExtensiveTokens  int32 = 6144
	GenerationTokens int32 = 8192
	PlaygroundTokens int32 = 8192
	ClassifyTokens   int32 = 256
)

// Creative returns the preset for diverse, open-ended output (generation,
// playground).
func (s Sampling) Creative(maxTokens int32) Config {
	return Config{Temperature: s.CreativeTemperature, TopP: s.TopP, TopK: s.TopK, MaxOutputTokens: maxTokens}
}

// Balanced returns the preset for question generation.
func (s Sampling) Balanced(maxTokens int32) Config {
	return Config{Temperature: s.BalancedTemperature, TopP: s.TopP, TopK: s.TopK, MaxOutputTokens: maxTokens}
}

// Analytical returns the preset for terse, deterministic output
// (classification).
func (s Sampling) Analytical(maxTokens int32) Config {
	return Config{Temperature: s.AnalyticalTemperature, TopP: s.TopP, TopK: s.TopK, MaxOutputTokens: maxTokens}
}
