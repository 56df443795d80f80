// package formatter renders word lists and vocabulary lists to exportable formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/onewave/wavecli/internal/models"
)

// WordsToCSV converts word records to CSV with columns:
// ID, Word, Meaning, PartOfSpeech, Artist, Song, Frequency, AddedAt, Language
func WordsToCSV(words []models.WordRecord) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Word", "Meaning", "PartOfSpeech", "Artist", "Song", "Frequency", "AddedAt", "Language"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, word := range words {
		record := []string{
			strconv.Itoa(word.ID),
			word.Word,
			word.Meaning,
			word.PartOfSpeech,
			word.Artist,
			word.Song,
			strconv.Itoa(word.Frequency),
			word.AddedAt,
			string(word.Language),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// WordsToMarkdown converts word records to a Markdown table.
func WordsToMarkdown(title string, words []models.WordRecord) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", title))
	buf.WriteString(fmt.Sprintf("**Words**: %d\n\n", len(words)))
	buf.WriteString("| Word | Meaning | Part of speech | Source | Frequency | Added |\n")
	buf.WriteString("|---|---|---|---|---|---|\n")

	for _, word := range words {
		source := word.Song
		if word.Artist != "" {
			source = fmt.Sprintf("%s — %s", word.Artist, word.Song)
		}
		buf.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %d | %s |\n",
			word.Word, word.Meaning, word.PartOfSpeech, source, word.Frequency, word.AddedAt))
	}

	return buf.Bytes()
}

// WordsToText converts word records to plain text.
func WordsToText(words []models.WordRecord) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Words: %d\n\n", len(words)))
	for i, word := range words {
		buf.WriteString(fmt.Sprintf("%d. %s — %s (%s)", i+1, word.Word, word.Meaning, word.PartOfSpeech))
		if len(word.Synonyms) > 0 {
			buf.WriteString(fmt.Sprintf(" [%s]", strings.Join(word.Synonyms, ", ")))
		}
		buf.WriteString("\n")
	}

	return buf.Bytes()
}

// ListToCSV converts a vocabulary list to CSV with columns:
// Word, Meaning, Example, Score, Occurrences
func ListToCSV(list models.VocabularyList) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Word", "Meaning", "Example", "Score", "Occurrences"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, entry := range list.Entries {
		record := []string{
			entry.Word,
			entry.Meaning,
			entry.Example,
			strconv.FormatFloat(entry.Score, 'f', -1, 64),
			strconv.Itoa(entry.Occurrences),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ListToMarkdown converts a vocabulary list to Markdown.
func ListToMarkdown(list models.VocabularyList) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", list.Title))
	if list.CreatedAt != "" {
		buf.WriteString(fmt.Sprintf("**Created**: %s\n", list.CreatedAt))
	}
	buf.WriteString(fmt.Sprintf("**Entries**: %d\n\n", len(list.Entries)))

	for i, entry := range list.Entries {
		buf.WriteString(fmt.Sprintf("%d. **%s**", i+1, entry.Word))
		if entry.Meaning != "" {
			buf.WriteString(fmt.Sprintf(" — %s", entry.Meaning))
		}
		buf.WriteString("\n")
		if entry.Example != "" {
			buf.WriteString(fmt.Sprintf("   > %s\n", entry.Example))
		}
	}

	return buf.Bytes(), nil
}

// ListToText converts a vocabulary list to plain text.
func ListToText(list models.VocabularyList) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("List: %s\n", list.Title))
	buf.WriteString(fmt.Sprintf("Entries: %d\n\n", len(list.Entries)))

	for i, entry := range list.Entries {
		line := entry.Word
		if entry.Meaning != "" {
			line = fmt.Sprintf("%s — %s", entry.Word, entry.Meaning)
		}
		buf.WriteString(fmt.Sprintf("%d. %s\n", i+1, line))
	}

	return buf.Bytes(), nil
}
