package main

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/promptforge/promptforge/internal/export"
	"github.com/promptforge/promptforge/internal/models"
	"github.com/promptforge/promptforge/internal/storage"
	"github.com/promptforge/promptforge/internal/taxonomy"
)

const maxDerivedTitleLength = 60

type savePromptRequest struct {
	Title         string                 `json:"title"`
	InitialPrompt string                 `json:"initialPrompt"`
	Questions     []models.Question      `json:"questions"`
	Answers       map[int]string         `json:"answers"`
	SuperPrompt   string                 `json:"superPrompt"`
	BucketID      string                 `json:"bucketId"`
	Category      taxonomy.CategoryID    `json:"category"`
	Subcategory   taxonomy.SubcategoryID `json:"subcategory"`
	Confidence    float64                `json:"confidence"`
	AnalysisMode  models.AnalysisMode    `json:"analysisMode"`
}

// HandleSavePrompt persists a finished prompt. A missing bucket falls back
// to the user's default bucket, and a missing category is filled in by the
// classifier so every saved prompt is organized.
func (h *Handler) HandleSavePrompt(c *gin.Context) {
	var req savePromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if req.InitialPrompt == "" || req.SuperPrompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "initialPrompt and superPrompt are required"})
		return
	}
	if req.AnalysisMode == "" {
		req.AnalysisMode = models.ModeNormal
	}
	if !models.ValidMode(req.AnalysisMode) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid analysis mode"})
		return
	}

	userID := mustUserID(c)
	ctx := c.Request.Context()

	if req.BucketID == "" {
		bucket, err := h.store.EnsureDefaultBucket(ctx, userID)
		if err != nil {
			h.logger.Error("default bucket provisioning failed", zap.String("user", userID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save prompt"})
			return
		}
		req.BucketID = bucket.ID
	}

	if req.Category == "" {
		cls := h.classifier.Classify(ctx, req.InitialPrompt)
		req.Category = cls.Category
		req.Subcategory = cls.Subcategory
		req.Confidence = cls.Confidence
	}

	saved, err := h.store.CreatePrompt(ctx, userID, models.SavedPrompt{
		Title:         titleOrDerived(req.Title, req.InitialPrompt),
		InitialPrompt: req.InitialPrompt,
		Questions:     req.Questions,
		Answers:       req.Answers,
		SuperPrompt:   req.SuperPrompt,
		BucketID:      req.BucketID,
		Category:      req.Category,
		Subcategory:   req.Subcategory,
		Confidence:    req.Confidence,
		AnalysisMode:  req.AnalysisMode,
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Bucket not found"})
			return
		}
		h.logger.Error("prompt save failed", zap.String("user", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save prompt"})
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// HandleQuickSave stores prompt text as-is, with no analysis and no
// generation. The text serves as both the initial and the final prompt.
func (h *Handler) HandleQuickSave(c *gin.Context) {
	var req struct {
		Title    string `json:"title"`
		Prompt   string `json:"prompt"`
		BucketID string `json:"bucketId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if req.Prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prompt text is required"})
		return
	}

	userID := mustUserID(c)
	ctx := c.Request.Context()

	if req.BucketID == "" {
		bucket, err := h.store.EnsureDefaultBucket(ctx, userID)
		if err != nil {
			h.logger.Error("default bucket provisioning failed", zap.String("user", userID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save prompt"})
			return
		}
		req.BucketID = bucket.ID
	}

	cls := h.classifier.Classify(ctx, req.Prompt)
	saved, err := h.store.CreatePrompt(ctx, userID, models.SavedPrompt{
		Title:         titleOrDerived(req.Title, req.Prompt),
		InitialPrompt: req.Prompt,
		SuperPrompt:   req.Prompt,
		BucketID:      req.BucketID,
		Category:      cls.Category,
		Subcategory:   cls.Subcategory,
		Confidence:    cls.Confidence,
		AnalysisMode:  models.ModeManual,
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Bucket not found"})
			return
		}
		h.logger.Error("quick save failed", zap.String("user", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save prompt"})
		return
	}
	c.JSON(http.StatusCreated, saved)
}

func (h *Handler) HandleListPrompts(c *gin.Context) {
	userID := mustUserID(c)
	prompts, err := h.store.ListPrompts(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("prompt listing failed", zap.String("user", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch prompts"})
		return
	}
	if bucketID := c.Query("bucketId"); bucketID != "" {
		prompts = export.FilterByBucket(prompts, bucketID)
	}
	c.JSON(http.StatusOK, gin.H{"prompts": prompts})
}

func (h *Handler) HandleDeletePrompt(c *gin.Context) {
	promptID := c.Query("id")
	if promptID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prompt id is required"})
		return
	}
	userID := mustUserID(c)
	if err := h.store.DeletePrompt(c.Request.Context(), userID, promptID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Prompt not found"})
			return
		}
		h.logger.Error("prompt deletion failed", zap.String("user", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete prompt"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// HandleListBuckets lists the user's buckets with usage statistics,
// provisioning the default bucket for first-time users.
func (h *Handler) HandleListBuckets(c *gin.Context) {
	userID := mustUserID(c)
	ctx := c.Request.Context()

	if _, err := h.store.EnsureDefaultBucket(ctx, userID); err != nil {
		h.logger.Error("default bucket provisioning failed", zap.String("user", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch buckets"})
		return
	}
	buckets, err := h.store.ListBuckets(ctx, userID)
	if err != nil {
		h.logger.Error("bucket listing failed", zap.String("user", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch buckets"})
		return
	}
	prompts, err := h.store.ListPrompts(ctx, userID)
	if err != nil {
		h.logger.Error("prompt listing failed", zap.String("user", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch buckets"})
		return
	}

	stats := make([]models.BucketStats, len(buckets))
	for i, b := range buckets {
		stats[i] = models.BucketStats{Bucket: b}
		for _, p := range prompts {
			if p.BucketID != b.ID {
				continue
			}
			stats[i].PromptCount++
			if stats[i].LastUsedDate == nil || p.CreatedAt.After(*stats[i].LastUsedDate) {
				t := p.CreatedAt
				stats[i].LastUsedDate = &t
			}
		}
	}
	c.JSON(http.StatusOK, gin.H{"buckets": stats})
}

func (h *Handler) HandleCreateBucket(c *gin.Context) {
	var req struct {
		Name  string `json:"name"`
		Color string `json:"color"`
		Icon  string `json:"icon"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bucket name is required"})
		return
	}

	userID := mustUserID(c)
	bucket, err := h.store.CreateBucket(c.Request.Context(), userID, strings.TrimSpace(req.Name), req.Color, req.Icon)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateBucket) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("bucket creation failed", zap.String("user", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create bucket"})
		return
	}
	c.JSON(http.StatusCreated, bucket)
}

func (h *Handler) HandleUpdateBucket(c *gin.Context) {
	var req struct {
		ID    string  `json:"id"`
		Name  *string `json:"name"`
		Color *string `json:"color"`
		Icon  *string `json:"icon"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if req.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bucket id is required"})
		return
	}

	userID := mustUserID(c)
	bucket, err := h.store.UpdateBucket(c.Request.Context(), userID, req.ID, req.Name, req.Color, req.Icon)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Bucket not found"})
		case errors.Is(err, storage.ErrDuplicateBucket):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			h.logger.Error("bucket update failed", zap.String("user", userID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update bucket"})
		}
		return
	}
	c.JSON(http.StatusOK, bucket)
}

// HandleDeleteBucket deletes a bucket after moving its prompts into the
// bucket named by the reassignTo query parameter. Users must always keep at
// least one bucket.
func (h *Handler) HandleDeleteBucket(c *gin.Context) {
	bucketID := c.Query("id")
	if bucketID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bucket id is required"})
		return
	}

	userID := mustUserID(c)
	err := h.store.DeleteBucket(c.Request.Context(), userID, bucketID, c.Query("reassignTo"))
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrLastBucket), errors.Is(err, storage.ErrBadReassignTarget):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, storage.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Bucket not found"})
		default:
			h.logger.Error("bucket deletion failed", zap.String("user", userID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete bucket"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// HandleExport streams the user's prompts as a CSV download. scope selects
// a single prompt, one bucket, or everything (the default).
func (h *Handler) HandleExport(c *gin.Context) {
	userID := mustUserID(c)
	ctx := c.Request.Context()

	var prompts []models.SavedPrompt
	scope := c.DefaultQuery("scope", "all")
	switch scope {
	case "prompt":
		p, err := h.store.GetPrompt(ctx, userID, c.Query("id"))
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Prompt not found"})
				return
			}
			h.logger.Error("export lookup failed", zap.String("user", userID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export prompts"})
			return
		}
		prompts = []models.SavedPrompt{p}
	case "bucket", "all":
		all, err := h.store.ListPrompts(ctx, userID)
		if err != nil {
			h.logger.Error("export listing failed", zap.String("user", userID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export prompts"})
			return
		}
		prompts = all
		if scope == "bucket" {
			prompts = export.FilterByBucket(all, c.Query("id"))
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid export scope"})
		return
	}

	buckets, err := h.store.ListBuckets(ctx, userID)
	if err != nil {
		h.logger.Error("export bucket listing failed", zap.String("user", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export prompts"})
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, prompts, buckets); err != nil {
		h.logger.Error("CSV rendering failed", zap.String("user", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export prompts"})
		return
	}

	filename := fmt.Sprintf("prompts-%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

func (h *Handler) HandleListAnswers(c *gin.Context) {
	promptID := c.Query("promptId")
	if promptID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "promptId is required"})
		return
	}
	userID := mustUserID(c)
	answers, err := h.store.ListAnswers(c.Request.Context(), userID, promptID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Prompt not found"})
			return
		}
		h.logger.Error("answer listing failed", zap.String("user", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch answers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"answers": answers})
}

func (h *Handler) HandleSaveAnswer(c *gin.Context) {
	var req struct {
		PromptID         string `json:"promptId"`
		AnswerText       string `json:"answerText"`
		Notes            string `json:"notes"`
		GenerationTimeMS int64  `json:"generationTime"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if req.PromptID == "" || req.AnswerText == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "promptId and answerText are required"})
		return
	}

	userID := mustUserID(c)
	saved, err := h.store.CreateAnswer(c.Request.Context(), userID, models.SavedAnswer{
		PromptID:         req.PromptID,
		AnswerText:       req.AnswerText,
		Notes:            req.Notes,
		GenerationTimeMS: req.GenerationTimeMS,
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Prompt not found"})
			return
		}
		h.logger.Error("answer save failed", zap.String("user", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save answer"})
		return
	}
	c.JSON(http.StatusCreated, saved)
}

func (h *Handler) HandleDeleteAnswer(c *gin.Context) {
	answerID := c.Query("id")
	if answerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Answer id is required"})
		return
	}
	userID := mustUserID(c)
	if err := h.store.DeleteAnswer(c.Request.Context(), userID, answerID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Answer not found"})
			return
		}
		h.logger.Error("answer deletion failed", zap.String("user", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete answer"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// titleOrDerived trims an explicit title, or derives one from the opening
// of the prompt text when none was given.
func titleOrDerived(title, prompt string) string {
	if t := strings.TrimSpace(title); t != "" {
		return t
	}
	runes := []rune(strings.TrimSpace(prompt))
	if len(runes) > maxDerivedTitleLength {
		return strings.TrimSpace(string(runes[:maxDerivedTitleLength])) + "..."
	}
	return string(runes)
}
