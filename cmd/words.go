package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/onewave/wavecli/internal/formatter"
	"github.com/onewave/wavecli/internal/models"
	"github.com/onewave/wavecli/internal/shared"
	"github.com/onewave/wavecli/internal/store"
)

// WordsList prints one page of the filtered word list.
func (r *Runner) WordsList(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireSession(); err != nil {
		return err
	}

	r.store.LoadAppData(ctx)

	if err := applyWordSelection(r.store, cmd); err != nil {
		return err
	}

	words := r.store.WordView()

	if cmd.Bool("json") {
		return r.writeJSON(words, cmd.Bool("pretty"))
	}

	pager := store.NewPager(r.config.Lists.WordPageSize)
	pager.SetPage(int(cmd.Int("page")))
	start, end := pager.Bounds(len(words))

	if len(words) == 0 {
		r.writePlainHeader("Words 0 of 0")
		return r.writePlainln("no words match")
	}
	r.writePlainHeader(fmt.Sprintf("Words %d-%d of %d (page %d/%d)",
		start+1, end, len(words), pager.Page(len(words)), pager.TotalPages(len(words))))
	for _, w := range words[start:end] {
		r.writePlainln("%-16s %-14s %s", w.Word, w.Meaning, w.PartOfSpeech)
		r.writePlainln("    %s — %s  ×%d  %s", w.Artist, w.Song, w.Frequency, w.AddedAt)
	}
	return nil
}

// WordsExport writes the full filtered word list to a file.
func (r *Runner) WordsExport(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireSession(); err != nil {
		return err
	}

	r.store.LoadAppData(ctx)
	words := r.store.WordView()
	if len(words) == 0 {
		return fmt.Errorf("%w: no words to export", shared.ErrInvalidInput)
	}

	format := strings.ToLower(cmd.String("format"))
	var data []byte
	var err error
	switch format {
	case "csv":
		data, err = formatter.WordsToCSV(words)
	case "markdown", "md":
		data = formatter.WordsToMarkdown("Captured words", words)
	case "txt", "text":
		data = formatter.WordsToText(words)
	default:
		return fmt.Errorf("%w: unsupported format %q", shared.ErrInvalidFlag, format)
	}
	if err != nil {
		return fmt.Errorf("failed to render export: %w", err)
	}

	output := cmd.String("output")
	if output == "" {
		output = "words." + extensionFor(format)
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}

	r.logger.Info("exported words", "count", len(words), "path", output)
	return r.writePlainln("✓ Exported %d words to %s", len(words), output)
}

func extensionFor(format string) string {
	switch format {
	case "markdown", "md":
		return "md"
	case "txt", "text":
		return "txt"
	default:
		return "csv"
	}
}

// applyWordSelection translates list flags into store selection state.
func applyWordSelection(st *store.Store, cmd *cli.Command) error {
	if id := int(cmd.Int("track")); id > 0 {
		st.SelectTrack(id)
	} else {
		st.ResetSelections()
	}

	st.SetQuery(cmd.String("search"))

	switch sort := models.WordSort(cmd.String("sort")); sort {
	case models.WordSortLatest, models.WordSortFrequency, models.WordSortAlphabet:
		st.SetWordSort(sort)
	default:
		return fmt.Errorf("%w: unknown sort %q", shared.ErrInvalidFlag, sort)
	}

	switch lang := models.Language(strings.ToUpper(cmd.String("language"))); lang {
	case models.LanguageAll, models.LanguageEnglish, models.LanguageJapanese, models.LanguageKorean:
		st.SetLanguage(lang)
	default:
		return fmt.Errorf("%w: unknown language %q", shared.ErrInvalidFlag, lang)
	}

	return nil
}
