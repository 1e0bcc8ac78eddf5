// Package export renders saved prompts as CSV for download.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/promptforge/promptforge/internal/models"
)

var header = []string{
	"created_at",
	"title",
	"category",
	"subcategory",
	"bucket",
	"analysis_mode",
	"initial_prompt",
	"super_prompt",
}

// WriteCSV writes prompts to w, one row per prompt, with a header row.
// Bucket IDs are resolved to names through buckets; an unresolvable ID is
// written as-is rather than dropped.
func WriteCSV(w io.Writer, prompts []models.SavedPrompt, buckets []models.Bucket) error {
	names := make(map[string]string, len(buckets))
	for _, b := range buckets {
		names[b.ID] = b.Name
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, p := range prompts {
		bucketName := p.BucketID
		if name, ok := names[p.BucketID]; ok {
			bucketName = name
		}
		row := []string{
			p.CreatedAt.Format(time.RFC3339),
			p.Title,
			string(p.Category),
			string(p.Subcategory),
			bucketName,
			string(p.AnalysisMode),
			p.InitialPrompt,
			p.SuperPrompt,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// FilterByBucket returns the prompts belonging to bucketID.
func FilterByBucket(prompts []models.SavedPrompt, bucketID string) []models.SavedPrompt {
	filtered := make([]models.SavedPrompt, 0, len(prompts))
	for _, p := range prompts {
		if p.BucketID == bucketID {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
