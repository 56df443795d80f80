package tasks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/onewave/wavecli/internal/formatter"
	"github.com/onewave/wavecli/internal/models"
	"github.com/onewave/wavecli/internal/shared"
	"golang.org/x/time/rate"
)

// BulkExportOpts contains configuration for bulk vocabulary list exports.
type BulkExportOpts struct {
	Format     string  // Export format: csv, markdown, txt
	OutputDir  string  // Base output directory (default: vocabulary_export_{epoch})
	NumWorkers int     // Concurrent workers (default: 4)
	RateLimit  float64 // Files written per second (default: 10)
}

// ListExportResult records the outcome of exporting one vocabulary list.
type ListExportResult struct {
	ListID string
	Title  string
	Path   string
	Err    error
}

// BulkExportResult summarizes a bulk export run.
type BulkExportResult struct {
	TotalLists      int
	Succeeded       int
	Failed          int
	OutputDirectory string
	Results         []ListExportResult
}

// BulkExport writes every vocabulary list to disk concurrently.
//
// A bounded worker pool drains the list queue under a rate limiter; partial
// failures are collected per list and never abort the run.
func BulkExport(ctx context.Context, prog chan<- ProgressUpdate, lists []models.VocabularyList, opts BulkExportOpts) (*BulkExportResult, error) {
	if opts.OutputDir == "" {
		opts.OutputDir = fmt.Sprintf("vocabulary_export_%d", time.Now().Unix())
	}
	if opts.NumWorkers <= 0 {
		opts.NumWorkers = 4
	}
	if opts.NumWorkers > 8 {
		opts.NumWorkers = 8
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 10.0
	}
	if opts.Format == "" {
		opts.Format = "csv"
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	result := &BulkExportResult{
		TotalLists:      len(lists),
		OutputDirectory: opts.OutputDir,
		Results:         make([]ListExportResult, 0, len(lists)),
	}

	limiter := rate.NewLimiter(rate.Limit(opts.RateLimit), 1)

	jobs := make(chan models.VocabularyList, len(lists))
	results := make(chan ListExportResult, len(lists))

	var wg sync.WaitGroup
	for i := 0; i < opts.NumWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for list := range jobs {
				if err := limiter.Wait(ctx); err != nil {
					results <- ListExportResult{ListID: list.ID, Title: list.Title, Err: err}
					continue
				}
				results <- exportList(list, opts)
			}
		}()
	}

	for _, list := range lists {
		jobs <- list
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	step := 0
	for res := range results {
		step++
		result.Results = append(result.Results, res)
		if res.Err != nil {
			result.Failed++
			sendProgress(prog, ProgressUpdate{
				Phase: ExportList, Step: step, Total: len(lists),
				Message: fmt.Sprintf("[%d/%d] ✗ %s: %v", step, len(lists), res.Title, res.Err),
			})
		} else {
			result.Succeeded++
			sendProgress(prog, ProgressUpdate{
				Phase: ExportList, Step: step, Total: len(lists),
				Message: fmt.Sprintf("[%d/%d] ✓ %s", step, len(lists), res.Title),
			})
		}
	}

	return result, nil
}

// exportList renders one list in the requested format and writes it.
func exportList(list models.VocabularyList, opts BulkExportOpts) ListExportResult {
	res := ListExportResult{ListID: list.ID, Title: list.Title}

	var (
		data []byte
		ext  string
		err  error
	)
	switch strings.ToLower(opts.Format) {
	case "csv":
		data, err = formatter.ListToCSV(list)
		ext = "csv"
	case "markdown", "md":
		data, err = formatter.ListToMarkdown(list)
		ext = "md"
	case "txt", "text":
		data, err = formatter.ListToText(list)
		ext = "txt"
	default:
		res.Err = fmt.Errorf("unsupported format: %s", opts.Format)
		return res
	}
	if err != nil {
		res.Err = err
		return res
	}

	name := sanitizeFilename(list.Title)
	if name == "" {
		name = list.ID
	}
	if name == "" {
		name = shared.GenerateID()
	}
	res.Path = filepath.Join(opts.OutputDir, fmt.Sprintf("%s.%s", name, ext))

	if err := os.WriteFile(res.Path, data, 0644); err != nil {
		res.Err = fmt.Errorf("failed to write file: %w", err)
	}
	return res
}

// sanitizeFilename keeps letters, digits, spaces, hyphens and Hangul,
// collapsing everything else to underscores.
func sanitizeFilename(name string) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '-', r == '_':
			return r
		case r >= 0xAC00 && r <= 0xD7A3: // Hangul syllables
			return r
		default:
			return '_'
		}
	}, strings.TrimSpace(name))
	return strings.Trim(mapped, "_ ")
}
