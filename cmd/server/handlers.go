package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/promptforge/promptforge/internal/analyzer"
	"github.com/promptforge/promptforge/internal/classifier"
	"github.com/promptforge/promptforge/internal/generator"
	"github.com/promptforge/promptforge/internal/llm"
	"github.com/promptforge/promptforge/internal/models"
	"github.com/promptforge/promptforge/internal/storage"
)

const maxPlaygroundPromptLength = 10000

// Handler carries the engines and the store into the HTTP layer. The
// engines are stateless; all per-user state lives behind storage.Store.
type Handler struct {
	analyzer   *analyzer.Analyzer
	classifier *classifier.Classifier
	generator  *generator.Generator
	gen        llm.TextGenerator
	sampling   llm.Sampling
	store      storage.Store
	logger     *zap.Logger
}

func NewHandler(
	an *analyzer.Analyzer,
	cl *classifier.Classifier,
	ge *generator.Generator,
	gen llm.TextGenerator,
	sampling llm.Sampling,
	store storage.Store,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		analyzer:   an,
		classifier: cl,
		generator:  ge,
		gen:        gen,
		sampling:   sampling,
		store:      store,
		logger:     logger,
	}
}

type analyzeRequest struct {
	Prompt string              `json:"prompt"`
	Mode   models.AnalysisMode `json:"mode"`
}

// HandleAnalyze produces clarifying questions for an idea. Analysis never
// fails toward the user: engine-level problems degrade to fallback
// questions inside the orchestrator.
func (h *Handler) HandleAnalyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if req.Prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid prompt provided"})
		return
	}
	if req.Mode == "" {
		req.Mode = models.ModeNormal
	}
	if err := analyzer.ValidateMode(req.Mode); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid analysis mode"})
		return
	}

	out := h.analyzer.Analyze(c.Request.Context(), req.Prompt, req.Mode)
	h.logger.Info("prompt analyzed",
		zap.String("user", mustUserID(c)),
		zap.String("mode", string(req.Mode)),
		zap.Int("questions", len(out.Questions)))
	c.JSON(http.StatusOK, out)
}

type generateRequest struct {
	InitialPrompt       string      `json:"initialPrompt"`
	QuestionsAndAnswers []models.QA `json:"questionsAndAnswers"`
}

// HandleGenerate synthesizes the final super prompt. There is no fallback
// for this stage; failures surface with a descriptive message and the
// client may retry.
func (h *Handler) HandleGenerate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if req.InitialPrompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid initial prompt provided"})
		return
	}

	superPrompt, err := h.generator.Generate(c.Request.Context(), req.InitialPrompt, req.QuestionsAndAnswers)
	if err != nil {
		h.logger.Error("generation failed", zap.String("user", mustUserID(c)), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate super prompt: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"superPrompt": superPrompt})
}

// HandleAIAnalyzeGenerate is the fully automated flow: one analysis call in
// AI mode (questions + auto-answers), then one generation call using those
// answers. The analysis half degrades to fallbacks as usual; a generation
// failure is surfaced.
func (h *Handler) HandleAIAnalyzeGenerate(c *gin.Context) {
	var req struct {
		Prompt string `json:"prompt"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if req.Prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid prompt provided"})
		return
	}

	out := h.analyzer.Analyze(c.Request.Context(), req.Prompt, models.ModeAI)

	qa := make([]models.QA, len(out.Questions))
	for i, q := range out.Questions {
		qa[i] = models.QA{Question: q.Question, Answer: out.AutoAnswers[i]}
	}

	superPrompt, err := h.generator.Generate(c.Request.Context(), req.Prompt, qa)
	if err != nil {
		h.logger.Error("AI mode generation failed", zap.String("user", mustUserID(c)), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "AI mode failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"questions":   out.Questions,
		"autoAnswers": out.AutoAnswers,
		"superPrompt": superPrompt,
		"mode":        models.ModeAI,
	})
}

// HandleClassify categorizes an idea against the taxonomy. Classification
// never fails; a degraded result carries a lower confidence.
func (h *Handler) HandleClassify(c *gin.Context) {
	var req struct {
		Prompt string `json:"prompt"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.classifier.Classify(c.Request.Context(), req.Prompt))
}

type playgroundRequest struct {
	PromptID   string `json:"promptId"`
	PromptText string `json:"promptText"`
}

// HandlePlaygroundTest executes a saved prompt's text against the model and
// returns the raw answer. The prompt must belong to the acting user.
func (h *Handler) HandlePlaygroundTest(c *gin.Context) {
	startTime := time.Now()
	var req playgroundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if req.PromptText == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prompt text is required"})
		return
	}
	if len(req.PromptText) > maxPlaygroundPromptLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prompt text exceeds maximum length of 10,000 characters"})
		return
	}

	userID := mustUserID(c)
	if _, err := h.store.GetPrompt(c.Request.Context(), userID, req.PromptID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Prompt not found or access denied"})
			return
		}
		h.logger.Error("prompt lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate response. Please try again."})
		return
	}

	answer, err := h.gen.GenerateText(c.Request.Context(), req.PromptText, h.sampling.Creative(llm.PlaygroundTokens))
	if err != nil {
		h.logger.Error("playground generation failed", zap.String("user", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":          "Failed to generate response. Please try again.",
			"generationTime": time.Since(startTime).Milliseconds(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"answer":         answer,
		"generationTime": time.Since(startTime).Milliseconds(),
	})
}
