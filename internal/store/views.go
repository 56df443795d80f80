package store

import (
	"sort"
	"strings"

	"github.com/onewave/wavecli/internal/models"
	"github.com/onewave/wavecli/internal/shared"
)

// WordView applies the word list pipeline: scope, search, language
// filter, sort. scope is the selected track when the view is restricted
// to one track's words, nil otherwise. Pure: the input slice is never
// mutated and the result is freshly built.
func WordView(words []models.WordRecord, scope *models.TrackRecord, sel Selection) []models.WordRecord {
	out := make([]models.WordRecord, 0, len(words))

	var scopeKey string
	if scope != nil {
		scopeKey = shared.NormalizeTrackKey(scope.Title, scope.Artist)
	}

	query := strings.ToLower(strings.TrimSpace(sel.Query))
	for _, word := range words {
		if scope != nil && shared.NormalizeTrackKey(word.Song, word.Artist) != scopeKey {
			continue
		}
		if query != "" && !wordMatches(word, query) {
			continue
		}
		// a selected track already implies scope, so the language
		// filter only applies to the unscoped list
		if scope == nil && sel.Language != models.LanguageAll && word.Language != sel.Language {
			continue
		}
		out = append(out, word)
	}

	sortWords(out, sel.WordSort)
	return out
}

// TrackView applies the track list pipeline: search, platform filter,
// sort.
func TrackView(tracks []models.TrackRecord, sel Selection) []models.TrackRecord {
	out := make([]models.TrackRecord, 0, len(tracks))

	query := strings.ToLower(strings.TrimSpace(sel.Query))
	for _, track := range tracks {
		if query != "" && !trackMatches(track, query) {
			continue
		}
		if sel.Platform != models.PlatformAll && track.Platform != sel.Platform {
			continue
		}
		out = append(out, track)
	}

	sortTracks(out, sel.TrackSort)
	return out
}

// RecentWords returns the n most recently added words.
func RecentWords(words []models.WordRecord, n int) []models.WordRecord {
	out := append([]models.WordRecord(nil), words...)
	sortWords(out, models.WordSortLatest)
	if n < len(out) {
		out = out[:n]
	}
	return out
}

// RecentTracks returns the n most recently captured tracks.
func RecentTracks(tracks []models.TrackRecord, n int) []models.TrackRecord {
	out := append([]models.TrackRecord(nil), tracks...)
	sortTracks(out, models.TrackSortLatest)
	if n < len(out) {
		out = out[:n]
	}
	return out
}

// WordView computes the current word projection from store state.
func (s *Store) WordView() []models.WordRecord {
	s.mu.Lock()
	words := s.words
	sel := s.sel
	var scope *models.TrackRecord
	if sel.TrackSelected {
		for i := range s.tracks {
			if s.tracks[i].ID == sel.TrackID {
				t := s.tracks[i]
				scope = &t
				break
			}
		}
	}
	s.mu.Unlock()

	return WordView(words, scope, sel)
}

// TrackView computes the current track projection from store state.
func (s *Store) TrackView() []models.TrackRecord {
	s.mu.Lock()
	tracks := s.tracks
	sel := s.sel
	s.mu.Unlock()

	return TrackView(tracks, sel)
}

// RecentWords returns the n most recently added words from store state.
func (s *Store) RecentWords(n int) []models.WordRecord {
	return RecentWords(s.Words(), n)
}

// RecentTracks returns the n most recently captured tracks from store
// state.
func (s *Store) RecentTracks(n int) []models.TrackRecord {
	return RecentTracks(s.Tracks(), n)
}

func wordMatches(word models.WordRecord, query string) bool {
	return strings.Contains(strings.ToLower(word.Word), query) ||
		strings.Contains(strings.ToLower(word.Meaning), query) ||
		strings.Contains(strings.ToLower(word.Artist), query)
}

func trackMatches(track models.TrackRecord, query string) bool {
	return strings.Contains(strings.ToLower(track.Title), query) ||
		strings.Contains(strings.ToLower(track.Artist), query)
}

// sortWords orders in place. The latest ordering is a descending string
// compare on the "YYYY.MM" labels, correct only to month granularity.
func sortWords(words []models.WordRecord, by models.WordSort) {
	switch by {
	case models.WordSortAlphabet:
		sort.SliceStable(words, func(i, j int) bool {
			return words[i].Word < words[j].Word
		})
	case models.WordSortFrequency:
		sort.SliceStable(words, func(i, j int) bool {
			return words[i].Frequency > words[j].Frequency
		})
	default:
		sort.SliceStable(words, func(i, j int) bool {
			return words[i].AddedAt > words[j].AddedAt
		})
	}
}

func sortTracks(tracks []models.TrackRecord, by models.TrackSort) {
	switch by {
	case models.TrackSortTitle:
		sort.SliceStable(tracks, func(i, j int) bool {
			return tracks[i].Title < tracks[j].Title
		})
	case models.TrackSortWords:
		sort.SliceStable(tracks, func(i, j int) bool {
			return tracks[i].ExtractedWords > tracks[j].ExtractedWords
		})
	default:
		sort.SliceStable(tracks, func(i, j int) bool {
			return tracks[i].CapturedAt > tracks[j].CapturedAt
		})
	}
}
