// package models defines the canonical data model for the wavecli client
package models

// Language enumerates the languages a captured word can belong to.
//
// Records always carry one of the three concrete values; LanguageAll
// exists only as a filter selection and is never stored on a record.
type Language string

const (
	LanguageAll      Language = "ALL"
	LanguageEnglish  Language = "ENGLISH"
	LanguageJapanese Language = "JAPANESE"
	LanguageKorean   Language = "KOREAN"
)

// Platform enumerates the services a track capture can originate from.
//
// PlatformAll is a filter-only value, never stored on a record.
type Platform string

const (
	PlatformAll     Platform = "ALL"
	PlatformYouTube Platform = "youtube"
	PlatformSpotify Platform = "spotify"
	PlatformApple   Platform = "apple"
)

// WordSort enumerates the orderings of the word list.
type WordSort string

const (
	WordSortLatest    WordSort = "latest"
	WordSortFrequency WordSort = "frequency"
	WordSortAlphabet  WordSort = "alphabet"
)

// TrackSort enumerates the orderings of the track list.
type TrackSort string

const (
	TrackSortLatest TrackSort = "latest"
	TrackSortTitle  TrackSort = "title"
	TrackSortWords  TrackSort = "words"
)

// WordRecord is a fully-populated word captured from song lyrics.
//
// Missing upstream fields are filled with documented defaults by the
// normalize package, so every field here is always usable for display.
type WordRecord struct {
	ID           int      `json:"id"`
	Word         string   `json:"word"`
	Meaning      string   `json:"meaning"`      // "-" when absent
	PartOfSpeech string   `json:"partOfSpeech"` // "기타" when absent
	Artist       string   `json:"artist"`
	Song         string   `json:"song"`
	Frequency    int      `json:"frequency"` // occurrence count, >= 0
	AddedAt      string   `json:"addedAt"`   // coarse "YYYY.MM" label
	Language     Language `json:"language"`
	Synonyms     []string `json:"synonyms,omitempty"`
}

// TrackRecord is a track a user captured words from.
type TrackRecord struct {
	ID             int      `json:"id"`
	Title          string   `json:"title"`
	Artist         string   `json:"artist"`
	CapturedAt     string   `json:"capturedAt"` // "YYYY.MM.DD HH:MM" or "-"
	ExtractedWords int      `json:"extractedWords"`
	Source         string   `json:"source"` // origin URL or "#"
	Platform       Platform `json:"platform"`
	CoverStart     string   `json:"coverStart"` // gradient colors, chosen per
	CoverEnd       string   `json:"coverEnd"`   // platform by list position
}

// UserIdentity is the resolved display identity shown in headers and
// the dashboard greeting. Derived, never persisted on its own.
type UserIdentity struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	AvatarText string `json:"avatarText"` // single uppercase character
}

// Dashboard aggregates the counters the dashboard view renders.
type Dashboard struct {
	GreetingName string `json:"greetingName"`
	TotalWords   int    `json:"totalWords"`
	TotalTracks  int    `json:"totalTracks"`
}

// Settings mirrors the learning preferences stored on the backend.
type Settings struct {
	Language  string `json:"language"`
	Level     string `json:"level"`
	MaxWords  int    `json:"max_words"`
	MinLength int    `json:"min_length"`
}

// Profile is the backend's view of the signed-in user.
type Profile struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email"`
	Settings    *Settings `json:"settings"`
}

// VocabularyEntry is a single entry of a generated vocabulary list.
type VocabularyEntry struct {
	Word        string   `json:"word"`
	Score       float64  `json:"score,omitempty"`
	Meaning     string   `json:"meaning,omitempty"`
	Example     string   `json:"example,omitempty"`
	Synonyms    []string `json:"synonyms,omitempty"`
	Occurrences int      `json:"occurrences,omitempty"`
}

// VocabularyList groups the entries generated for one song.
type VocabularyList struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Entries   []VocabularyEntry `json:"entries"`
	CreatedAt string            `json:"created_at"`
}
