package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/onewave/wavecli/internal/api"
	"github.com/onewave/wavecli/internal/shared"
	"github.com/onewave/wavecli/internal/tasks"
)

// VocabList prints the generated vocabulary lists.
func (r *Runner) VocabList(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireSession(); err != nil {
		return err
	}

	lists, err := r.client.VocabularyLists(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(lists, true)
	}

	r.writePlainHeader(fmt.Sprintf("Vocabulary lists (%d)", len(lists)))
	for _, list := range lists {
		r.writePlainln("%s — %d entries  %s", list.Title, len(list.Entries), list.CreatedAt)
	}
	return nil
}

// VocabGenerate triggers word extraction for a song.
func (r *Runner) VocabGenerate(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireSession(); err != nil {
		return err
	}

	song := cmd.StringArg("song")
	if song == "" {
		return fmt.Errorf("%w: song title", shared.ErrMissingArgument)
	}

	result, err := r.client.GenerateVocabulary(ctx, api.GenerateRequest{
		SongTitle: song,
		Title:     cmd.String("title"),
		Save:      cmd.Bool("save"),
	})
	if err != nil {
		return err
	}

	r.writePlainln("✓ Generated %d entries for %s", len(result.Entries), song)
	for _, entry := range result.Entries {
		r.writePlainln("  %s — %s", entry.Word, entry.Meaning)
	}
	if result.Saved {
		r.writePlainln("List saved on the backend")
	}
	return nil
}

// VocabExport writes every vocabulary list to disk concurrently.
func (r *Runner) VocabExport(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireSession(); err != nil {
		return err
	}

	lists, err := r.client.VocabularyLists(ctx)
	if err != nil {
		return err
	}
	if len(lists) == 0 {
		return r.writePlainln("no vocabulary lists to export")
	}

	progress := make(chan tasks.ProgressUpdate, 50)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progress {
			r.logger.Info(update.Message, "step", update.Step, "total", update.Total)
		}
	}()

	result, err := tasks.BulkExport(ctx, progress, lists, tasks.BulkExportOpts{
		Format:     cmd.String("format"),
		OutputDir:  cmd.String("output-dir"),
		NumWorkers: int(cmd.Int("workers")),
	})
	close(progress)
	<-done
	if err != nil {
		return err
	}

	r.writePlainln("✓ Exported %d/%d lists to %s", result.Succeeded, result.TotalLists, result.OutputDirectory)
	for _, item := range result.Results {
		if item.Err != nil {
			r.writePlainln("  ✗ %s: %v", item.Title, item.Err)
		}
	}
	return nil
}
