package normalize

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/onewave/wavecli/internal/models"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatalf("failed to decode payload: %v", err)
	}
	return v
}

func TestWordsDefaults(t *testing.T) {
	payload := decode(t, `[{"id": 7}]`)

	words := Words(payload, nil)
	if len(words) != 1 {
		t.Fatalf("expected 1 word, got %d", len(words))
	}

	w := words[0]
	if w.ID != 7 {
		t.Errorf("expected id 7, got %d", w.ID)
	}
	if w.Word != "word-1" {
		t.Errorf("expected fallback word label, got %q", w.Word)
	}
	if w.Meaning != "-" {
		t.Errorf("expected default meaning, got %q", w.Meaning)
	}
	if w.PartOfSpeech != "기타" {
		t.Errorf("expected default part of speech, got %q", w.PartOfSpeech)
	}
	if w.Frequency != 1 {
		t.Errorf("expected default frequency 1, got %d", w.Frequency)
	}
	if w.Language != models.LanguageEnglish {
		t.Errorf("expected default language ENGLISH, got %v", w.Language)
	}
	if w.AddedAt != time.Now().Format("2006.01") {
		t.Errorf("expected current month label, got %q", w.AddedAt)
	}
}

func TestWordsCandidateKeys(t *testing.T) {
	payload := decode(t, `{"user_words": [
		{"term": "run", "definition": "달리다", "singer": "Miley Cyrus", "song_title": "Flowers", "count": "3", "lang": "KO_KR", "created_at": "2024-03-15T10:00:00Z"}
	]}`)

	words := Words(payload, nil)
	if len(words) != 1 {
		t.Fatalf("expected 1 word, got %d", len(words))
	}

	w := words[0]
	if w.Word != "run" {
		t.Errorf("expected word from term key, got %q", w.Word)
	}
	if w.Meaning != "달리다" {
		t.Errorf("expected meaning from definition key, got %q", w.Meaning)
	}
	if w.Artist != "Miley Cyrus" {
		t.Errorf("expected artist from singer key, got %q", w.Artist)
	}
	if w.Song != "Flowers" {
		t.Errorf("expected song from song_title key, got %q", w.Song)
	}
	if w.Frequency != 3 {
		t.Errorf("expected numeric string frequency 3, got %d", w.Frequency)
	}
	if w.Language != models.LanguageKorean {
		t.Errorf("expected KOREAN, got %v", w.Language)
	}
	if w.AddedAt != "2024.03" {
		t.Errorf("expected month label 2024.03, got %q", w.AddedAt)
	}
}

func TestWordsNeverOutOfEnum(t *testing.T) {
	tc := []struct {
		raw  string
		want models.Language
	}{
		{"KOREAN", models.LanguageKorean},
		{"ko", models.LanguageKorean},
		{"KO_KR", models.LanguageKorean},
		{"ja-JP", models.LanguageJapanese},
		{"Japanese", models.LanguageJapanese},
		{"en", models.LanguageEnglish},
		{"", models.LanguageEnglish},
		{"gibberish", models.LanguageEnglish},
	}

	for _, tt := range tc {
		if got := ParseLanguage(tt.raw); got != tt.want {
			t.Errorf("ParseLanguage(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestWordsSynonyms(t *testing.T) {
	payload := decode(t, `[
		{"id": "w1", "word": "run", "synonyms": ["jog", "sprint"]},
		{"id": "w2", "word": "walk"}
	]`)

	rows := map[string][]string{
		"w1": {"should-not-win"},
		"w2": {"stroll", "march"},
	}

	words := Words(payload, rows)
	if got := words[0].Synonyms; len(got) != 2 || got[0] != "jog" {
		t.Errorf("inline synonyms should win, got %v", got)
	}
	if got := words[1].Synonyms; len(got) != 2 || got[0] != "stroll" {
		t.Errorf("expected looked-up synonyms, got %v", got)
	}
}

func TestSynonymRowsAccumulate(t *testing.T) {
	payload := decode(t, `[
		{"word_id": "w1", "synonym": "jog"},
		{"word_id": "w1", "synonyms": ["sprint", "dash"]}
	]`)

	rows := SynonymRows(payload)
	if got := rows["w1"]; len(got) != 3 {
		t.Errorf("expected 3 accumulated synonyms, got %v", got)
	}
}

func TestMonthLabelUnparseable(t *testing.T) {
	if got := MonthLabel("not-a-date-at-all ???"); got != "not-a-date-at-all ???" {
		t.Errorf("unparseable input should pass through unchanged, got %q", got)
	}
}

func TestTracks(t *testing.T) {
	payload := decode(t, `{"user_music_history": [
		{"id": 1, "title": "Flowers", "artist": "Miley Cyrus", "origin": "https://open.SPOTIFY.com/track/x", "extracted_words": 12, "created_at": "2024-03-15T10:30:00Z"},
		{"id": 2, "title": "Idol", "artist": "YOASOBI"},
		{"id": 3}
	]}`)

	tracks := Tracks(payload)
	if len(tracks) != 3 {
		t.Fatalf("expected 3 tracks, got %d", len(tracks))
	}

	first := tracks[0]
	if first.Platform != models.PlatformSpotify {
		t.Errorf("expected spotify platform, got %v", first.Platform)
	}
	if first.CapturedAt != "2024.03.15 10:30" {
		t.Errorf("unexpected captured label %q", first.CapturedAt)
	}
	if first.ExtractedWords != 12 {
		t.Errorf("expected 12 extracted words, got %d", first.ExtractedWords)
	}

	second := tracks[1]
	if second.Platform != models.PlatformYouTube {
		t.Errorf("missing origin should default to youtube, got %v", second.Platform)
	}
	if second.CapturedAt != "-" {
		t.Errorf("missing timestamp should yield '-', got %q", second.CapturedAt)
	}
	if second.Source != "#" {
		t.Errorf("missing source should yield '#', got %q", second.Source)
	}

	third := tracks[2]
	if third.Title != "track-3" {
		t.Errorf("expected fallback title, got %q", third.Title)
	}
	if third.CoverStart == "" || third.CoverEnd == "" {
		t.Error("cover gradient should always be populated")
	}
}

func TestTracksCoverDeterministic(t *testing.T) {
	payload := decode(t, `[{"id": 1, "title": "a"}, {"id": 2, "title": "b"}, {"id": 3, "title": "c"}, {"id": 4, "title": "d"}]`)

	first := Tracks(payload)
	second := Tracks(payload)
	for i := range first {
		if first[i].CoverStart != second[i].CoverStart || first[i].CoverEnd != second[i].CoverEnd {
			t.Errorf("cover for index %d not deterministic", i)
		}
	}

	// palette wraps at its size, so entry 0 and 3 share a pair
	if first[0].CoverStart != first[3].CoverStart {
		t.Errorf("expected palette to wrap by index, got %q and %q", first[0].CoverStart, first[3].CoverStart)
	}
}

func TestParsePlatform(t *testing.T) {
	tc := []struct {
		raw  string
		want models.Platform
	}{
		{"https://open.spotify.com/track/abc", models.PlatformSpotify},
		{"Spotify", models.PlatformSpotify},
		{"music.apple.com/us/album", models.PlatformApple},
		{"https://youtube.com/watch?v=x", models.PlatformYouTube},
		{"", models.PlatformYouTube},
		{"soundcloud", models.PlatformYouTube},
	}

	for _, tt := range tc {
		if got := ParsePlatform(tt.raw); got != tt.want {
			t.Errorf("ParsePlatform(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestRowsMalformedInput(t *testing.T) {
	// none of these should panic or produce records
	for _, raw := range []string{`"just a string"`, `42`, `{"unrelated": true}`, `null`, `[1, 2, "three"]`} {
		payload := decode(t, raw)
		if got := Words(payload, nil); len(got) != 0 {
			t.Errorf("Words(%s) = %v, want empty", raw, got)
		}
		if got := Tracks(payload); len(got) != 0 {
			t.Errorf("Tracks(%s) = %v, want empty", raw, got)
		}
	}
}
