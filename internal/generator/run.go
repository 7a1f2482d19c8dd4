// Package generator drives document generation: for each requested
// document it draws a language, renders a random selection, writes the
// PDF and records a manifest row.
package generator

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/Olga-Zydziak/pdf-generator/internal/domain"
	"github.com/Olga-Zydziak/pdf-generator/internal/pdf"
	"github.com/Olga-Zydziak/pdf-generator/internal/storage"
	"github.com/Olga-Zydziak/pdf-generator/internal/template"
)

// MaxDocuments caps a single run to keep batches bounded.
const MaxDocuments = 10000

// Runner generates a batch of documents for one domain.
type Runner struct {
	Config    *domain.Config
	Engine    *template.Engine
	Languages *template.LanguageSelector
	Renderer  *pdf.Renderer
	Manifest  *storage.Manifest // optional; nil disables manifest rows
	OutputDir string
}

// Summary reports the outcome of a generation run.
type Summary struct {
	Generated  int
	Failed     int
	TotalBytes int64
}

// Run generates count documents. Individual document failures are logged
// and counted but do not abort the batch.
func (r *Runner) Run(ctx context.Context, count int) (*Summary, error) {
	if count < 1 || count > MaxDocuments {
		return nil, fmt.Errorf("document count must be in [1, %d], got %d", MaxDocuments, count)
	}

	summary := &Summary{}
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		size, err := r.generateOne(ctx)
		if err != nil {
			summary.Failed++
			slog.Error("document generation failed", "index", i, "error", err)
			continue
		}
		summary.Generated++
		summary.TotalBytes += size
	}
	return summary, nil
}

func (r *Runner) generateOne(ctx context.Context) (int64, error) {
	language := r.Languages.Pick()

	sel, err := r.Engine.Render(language)
	if err != nil {
		return 0, err
	}

	doc := &pdf.Document{
		ID:        uuid.New().String(),
		Domain:    sel.Domain,
		Category:  sel.Category,
		Language:  sel.Language,
		Content:   sel.Text,
		CreatedAt: time.Now(),
	}

	filename := fmt.Sprintf("%s_%s_%s_%s.pdf", doc.Domain, doc.Category, doc.Language, doc.ID[:8])
	path := filepath.Join(r.OutputDir, filename)

	size, err := r.Renderer.RenderFile(doc, path)
	if err != nil {
		return 0, err
	}

	if r.Manifest != nil {
		rec := storage.Record{
			ID:        doc.ID,
			Domain:    doc.Domain,
			Category:  doc.Category,
			Language:  doc.Language,
			Path:      path,
			SizeBytes: size,
			CreatedAt: doc.CreatedAt,
		}
		if err := r.Manifest.Append(ctx, rec); err != nil {
			return 0, err
		}
	}

	slog.Debug("document generated", "id", doc.ID, "category", doc.Category, "language", doc.Language)
	return size, nil
}

// HumanSize formats a byte count for CLI summaries.
func HumanSize(n int64) string {
	size := float64(n)
	for _, unit := range []string{"B", "KB", "MB", "GB"} {
		if size < 1024.0 {
			return fmt.Sprintf("%.1f %s", size, unit)
		}
		size /= 1024.0
	}
	return fmt.Sprintf("%.1f TB", size)
}
