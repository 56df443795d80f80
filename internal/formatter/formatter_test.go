package formatter

import (
	"strings"
	"testing"

	"github.com/onewave/wavecli/internal/models"
)

func sampleWords() []models.WordRecord {
	return []models.WordRecord{
		{
			ID:           1,
			Word:         "run",
			Meaning:      "달리다",
			PartOfSpeech: "동사",
			Artist:       "Queen",
			Song:         "Don't Stop Me Now",
			Frequency:    3,
			AddedAt:      "2024.03",
			Language:     models.LanguageEnglish,
			Synonyms:     []string{"sprint", "dash"},
		},
		{
			ID:           2,
			Word:         "shine",
			Meaning:      "빛나다",
			PartOfSpeech: "동사",
			Song:         "Shine",
			Frequency:    1,
			AddedAt:      "2024.02",
			Language:     models.LanguageEnglish,
		},
	}
}

func sampleList() models.VocabularyList {
	return models.VocabularyList{
		ID:        "list-1",
		Title:     "Don't Stop Me Now",
		CreatedAt: "2024.03.01 10:00",
		Entries: []models.VocabularyEntry{
			{Word: "run", Meaning: "달리다", Example: "Running out of time.", Score: 0.9, Occurrences: 3},
			{Word: "shine", Meaning: "빛나다"},
		},
	}
}

func TestWordsToCSV(t *testing.T) {
	data, err := WordsToCSV(sampleWords())
	if err != nil {
		t.Fatalf("WordsToCSV failed: %v", err)
	}

	out := string(data)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Errorf("expected 3 lines (header + 2 records), got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "ID,Word,Meaning") {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if !strings.Contains(out, "run,달리다,동사,Queen") {
		t.Errorf("missing word record in output: %s", out)
	}
}

func TestWordsToMarkdown(t *testing.T) {
	data := WordsToMarkdown("My Words", sampleWords())
	out := string(data)

	tc := []string{
		"# My Words",
		"**Words**: 2",
		"| run | 달리다 | 동사 | Queen — Don't Stop Me Now | 3 | 2024.03 |",
		"| shine | 빛나다 | 동사 | Shine | 1 | 2024.02 |",
	}
	for _, want := range tc {
		if !strings.Contains(out, want) {
			t.Errorf("markdown output missing %q:\n%s", want, out)
		}
	}
}

func TestWordsToText(t *testing.T) {
	data := WordsToText(sampleWords())
	out := string(data)

	if !strings.Contains(out, "1. run — 달리다 (동사) [sprint, dash]") {
		t.Errorf("text output missing synonym line:\n%s", out)
	}
	if !strings.Contains(out, "2. shine — 빛나다 (동사)\n") {
		t.Errorf("text output missing plain line:\n%s", out)
	}
}

func TestListToCSV(t *testing.T) {
	data, err := ListToCSV(sampleList())
	if err != nil {
		t.Fatalf("ListToCSV failed: %v", err)
	}

	out := string(data)
	if !strings.HasPrefix(out, "Word,Meaning,Example,Score,Occurrences") {
		t.Errorf("unexpected header: %s", out)
	}
	if !strings.Contains(out, "run,달리다,Running out of time.,0.9,3") {
		t.Errorf("missing entry in output: %s", out)
	}
}

func TestListToMarkdown(t *testing.T) {
	data, err := ListToMarkdown(sampleList())
	if err != nil {
		t.Fatalf("ListToMarkdown failed: %v", err)
	}

	out := string(data)
	tc := []string{
		"# Don't Stop Me Now",
		"**Created**: 2024.03.01 10:00",
		"**Entries**: 2",
		"1. **run** — 달리다",
		"   > Running out of time.",
		"2. **shine** — 빛나다",
	}
	for _, want := range tc {
		if !strings.Contains(out, want) {
			t.Errorf("markdown output missing %q:\n%s", want, out)
		}
	}
}

func TestListToText(t *testing.T) {
	data, err := ListToText(sampleList())
	if err != nil {
		t.Fatalf("ListToText failed: %v", err)
	}

	out := string(data)
	if !strings.Contains(out, "List: Don't Stop Me Now") {
		t.Errorf("text output missing title:\n%s", out)
	}
	if !strings.Contains(out, "1. run — 달리다") {
		t.Errorf("text output missing entry:\n%s", out)
	}
}

func TestEmptyInputs(t *testing.T) {
	if data, err := WordsToCSV(nil); err != nil {
		t.Errorf("WordsToCSV(nil) failed: %v", err)
	} else if lines := strings.Split(strings.TrimSpace(string(data)), "\n"); len(lines) != 1 {
		t.Errorf("expected header only, got %d lines", len(lines))
	}

	if data, err := ListToText(models.VocabularyList{Title: "empty"}); err != nil {
		t.Errorf("ListToText failed: %v", err)
	} else if !strings.Contains(string(data), "Entries: 0") {
		t.Errorf("expected zero entries line, got %s", data)
	}
}
