// package normalize converts raw backend payloads into canonical records
//
// The OneWave backend does not guarantee field names or types: the same
// concept may arrive as "word", "term" or "text", numbers may be encoded as
// strings, and rows may be nested under an envelope key. Every function here
// is total: malformed input degrades to a documented default, never an error.
package normalize

import (
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/onewave/wavecli/internal/models"
)

// Defaults applied when an upstream field is missing or unusable.
const (
	DefaultMeaning      = "-"
	DefaultPartOfSpeech = "기타"
	DefaultSource       = "#"
)

// Candidate keys tried in order for each logical field.
var (
	wordKeys      = []string{"word", "term", "text"}
	meaningKeys   = []string{"meaning", "definition", "translation"}
	posKeys       = []string{"part_of_speech", "partOfSpeech", "pos", "tag"}
	artistKeys    = []string{"artist", "singer", "artist_name"}
	songKeys      = []string{"song", "song_title", "track"}
	frequencyKeys = []string{"count", "frequency", "occurrences"}
	addedKeys     = []string{"created_at", "captured_at", "added_at", "date"}
	languageKeys  = []string{"language", "lang", "locale"}

	titleKeys     = []string{"title", "song_title", "name"}
	sourceKeys    = []string{"origin", "source", "url"}
	extractedKeys = []string{"extracted_words", "word_count", "words"}
	platformKeys  = []string{"platform", "origin", "source"}
)

// coverPalettes holds the per-platform gradient color pairs. A track's pair
// is chosen by its position in the source list modulo the palette size, so
// the same list always renders the same covers.
var coverPalettes = map[models.Platform][][2]string{
	models.PlatformYouTube: {
		{"#FF8A80", "#FF5252"},
		{"#FFAB91", "#FF7043"},
		{"#F48FB1", "#F06292"},
	},
	models.PlatformSpotify: {
		{"#A5D6A7", "#66BB6A"},
		{"#80CBC4", "#26A69A"},
		{"#C5E1A5", "#9CCC65"},
	},
	models.PlatformApple: {
		{"#F8BBD0", "#EC407A"},
		{"#E1BEE7", "#AB47BC"},
		{"#B39DDB", "#7E57C2"},
	},
}

// Words converts an arbitrary payload into word records.
//
// synonymRows maps a word's upstream id (as a string) to synonym lists
// collected from a separate endpoint; an inline "synonyms" array on the row
// wins over the lookup. Rows may arrive bare or nested under "user_words" or
// "data".
func Words(raw any, synonymRows map[string][]string) []models.WordRecord {
	rows := rows(raw, "user_words", "data", "words")
	records := make([]models.WordRecord, 0, len(rows))

	for i, row := range rows {
		word := firstString(row, wordKeys...)
		if word == "" {
			word = "word-" + strconv.Itoa(i+1)
		}

		meaning := firstString(row, meaningKeys...)
		if meaning == "" {
			meaning = DefaultMeaning
		}

		pos := firstString(row, posKeys...)
		if pos == "" {
			pos = DefaultPartOfSpeech
		}

		synonyms := stringSlice(row["synonyms"])
		if synonyms == nil && synonymRows != nil {
			if key := rawID(row); key != "" {
				synonyms = synonymRows[key]
			}
		}

		records = append(records, models.WordRecord{
			ID:           firstInt(row, i+1, "id", "word_id"),
			Word:         word,
			Meaning:      meaning,
			PartOfSpeech: pos,
			Artist:       firstString(row, artistKeys...),
			Song:         firstString(row, songKeys...),
			Frequency:    firstInt(row, 1, frequencyKeys...),
			AddedAt:      MonthLabel(firstString(row, addedKeys...)),
			Language:     ParseLanguage(firstString(row, languageKeys...)),
			Synonyms:     synonyms,
		})
	}

	return records
}

// Tracks converts an arbitrary payload into track records.
//
// Rows may arrive bare or nested under "user_music_history" or "data".
func Tracks(raw any) []models.TrackRecord {
	rows := rows(raw, "user_music_history", "data", "history")
	records := make([]models.TrackRecord, 0, len(rows))

	for i, row := range rows {
		title := firstString(row, titleKeys...)
		if title == "" {
			title = "track-" + strconv.Itoa(i+1)
		}

		source := firstString(row, sourceKeys...)
		if source == "" {
			source = DefaultSource
		}

		platform := ParsePlatform(firstString(row, platformKeys...))
		palette := coverPalettes[platform]
		pair := palette[i%len(palette)]

		records = append(records, models.TrackRecord{
			ID:             firstInt(row, i+1, "id", "track_id"),
			Title:          title,
			Artist:         firstString(row, artistKeys...),
			CapturedAt:     TimestampLabel(firstString(row, addedKeys...)),
			ExtractedWords: firstInt(row, 0, extractedKeys...),
			Source:         source,
			Platform:       platform,
			CoverStart:     pair[0],
			CoverEnd:       pair[1],
		})
	}

	return records
}

// SynonymRows folds a synonym-rows payload into a word-id keyed map.
// Multiple rows for the same id accumulate by concatenation.
func SynonymRows(raw any) map[string][]string {
	rows := rows(raw, "synonyms", "data")
	if len(rows) == 0 {
		return nil
	}

	out := make(map[string][]string, len(rows))
	for _, row := range rows {
		key := firstString(row, "word_id", "id")
		if key == "" {
			continue
		}
		if list := stringSlice(row["synonyms"]); list != nil {
			out[key] = append(out[key], list...)
		} else if s := firstString(row, "synonym", "text"); s != "" {
			out[key] = append(out[key], s)
		}
	}
	return out
}

// ParseLanguage maps free-text language hints onto the closed enum.
// "KOREAN", "ko" and "KO_KR" all resolve to KOREAN; anything that does not
// start with KO or JA is treated as English.
func ParseLanguage(s string) models.Language {
	upper := strings.ToUpper(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(upper, "KO"):
		return models.LanguageKorean
	case strings.HasPrefix(upper, "JA"):
		return models.LanguageJapanese
	default:
		return models.LanguageEnglish
	}
}

// ParsePlatform maps free-text origin hints onto the closed enum.
// Unmatched text defaults to YouTube.
func ParsePlatform(s string) models.Platform {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "spotify"):
		return models.PlatformSpotify
	case strings.Contains(lower, "apple"):
		return models.PlatformApple
	default:
		return models.PlatformYouTube
	}
}

// MonthLabel derives the coarse "YYYY.MM" label from any timestamp string
// the backend might send. An unparseable value is returned unchanged; an
// empty value yields the current month.
func MonthLabel(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Now().Format("2006.01")
	}
	t, err := dateparse.ParseAny(raw)
	if err != nil {
		return raw
	}
	return t.Format("2006.01")
}

// TimestampLabel derives the full "YYYY.MM.DD HH:MM" label, or "-" when the
// value is absent or unparseable.
func TimestampLabel(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "-"
	}
	t, err := dateparse.ParseAny(raw)
	if err != nil {
		return "-"
	}
	return t.Format("2006.01.02 15:04")
}

// rows unwraps a payload into a list of objects. The payload may be a bare
// array or an object nesting the array under one of the given keys.
// Non-object entries are skipped.
func rows(raw any, nestKeys ...string) []map[string]any {
	list, ok := raw.([]any)
	if !ok {
		obj, isObj := raw.(map[string]any)
		if !isObj {
			return nil
		}
		for _, key := range nestKeys {
			if nested, found := obj[key].([]any); found {
				list = nested
				break
			}
		}
	}

	out := make([]map[string]any, 0, len(list))
	for _, entry := range list {
		if row, ok := entry.(map[string]any); ok {
			out = append(out, row)
		}
	}
	return out
}

// firstString returns the first candidate key holding a non-empty string.
// Numeric values are rendered as strings.
func firstString(row map[string]any, keys ...string) string {
	for _, key := range keys {
		switch v := row[key].(type) {
		case string:
			if trimmed := strings.TrimSpace(v); trimmed != "" {
				return trimmed
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		case int:
			return strconv.Itoa(v)
		}
	}
	return ""
}

// firstInt returns the first candidate key holding a usable integer,
// accepting JSON numbers and numeric strings, else the default.
func firstInt(row map[string]any, def int, keys ...string) int {
	for _, key := range keys {
		switch v := row[key].(type) {
		case float64:
			return int(v)
		case int:
			return v
		case string:
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				return n
			}
		}
	}
	return def
}

// rawID renders the row's upstream id, if any, for synonym lookups.
func rawID(row map[string]any) string {
	return firstString(row, "id", "word_id")
}

func stringSlice(v any) []string {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, entry := range list {
		if s, ok := entry.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
