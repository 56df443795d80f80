package store

import (
	"context"
	_ "embed"
	"encoding/json"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/onewave/wavecli/internal/identity"
	"github.com/onewave/wavecli/internal/models"
	"github.com/onewave/wavecli/internal/normalize"
	"github.com/onewave/wavecli/internal/repositories"
	"github.com/onewave/wavecli/internal/tasks"
)

//go:embed fixtures/words.json
var fixtureWords []byte

//go:embed fixtures/tracks.json
var fixtureTracks []byte

// Selection is the current filter/sort state of the list views.
type Selection struct {
	Query         string
	WordSort      models.WordSort
	TrackSort     models.TrackSort
	Language      models.Language
	Platform      models.Platform
	TrackID       int
	TrackSelected bool
}

// DefaultSelection returns the selection state every view starts from.
func DefaultSelection() Selection {
	return Selection{
		WordSort:  models.WordSortLatest,
		TrackSort: models.TrackSortLatest,
		Language:  models.LanguageAll,
		Platform:  models.PlatformAll,
	}
}

// TokenSource supplies the cached bearer token, empty when signed out.
type TokenSource func() string

// Store is the application state container.
//
// All lists and selection state live here; consumers read snapshots and
// derived views and mutate only through the setter methods.
type Store struct {
	mu        sync.Mutex
	logger    *log.Logger
	loader    *tasks.Loader
	snapshots *repositories.SnapshotRepository
	token     TokenSource

	pending chan struct{}

	words   []models.WordRecord
	tracks  []models.TrackRecord
	lists   []models.VocabularyList
	profile *models.Profile
	user    models.UserIdentity

	sel Selection
}

// Option configures a Store.
type Option func(*Store)

// WithSnapshots enables best-effort caching of loaded lists.
func WithSnapshots(repo *repositories.SnapshotRepository) Option {
	return func(s *Store) { s.snapshots = repo }
}

// WithTokenSource wires the cached bearer token into identity
// resolution during loads.
func WithTokenSource(source TokenSource) Option {
	return func(s *Store) { s.token = source }
}

// New creates a Store over the given backend.
func New(backend tasks.Backend, logger *log.Logger, opts ...Option) *Store {
	s := &Store{
		loader: tasks.NewLoader(backend),
		logger: logger,
		token:  func() string { return "" },
		sel:    DefaultSelection(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetQuery replaces the current search query.
func (s *Store) SetQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel.Query = query
}

// SetWordSort replaces the word list ordering.
func (s *Store) SetWordSort(sort models.WordSort) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel.WordSort = sort
}

// SetLanguage replaces the language filter.
func (s *Store) SetLanguage(lang models.Language) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel.Language = lang
}

// SetPlatformFilter replaces the track platform filter.
func (s *Store) SetPlatformFilter(platform models.Platform) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel.Platform = platform
}

// SetTrackSort replaces the track list ordering.
func (s *Store) SetTrackSort(sort models.TrackSort) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel.TrackSort = sort
}

// UpdateTrackSort replaces the track ordering as a function of the
// previous value, which lets callers cycle through the sort modes.
func (s *Store) UpdateTrackSort(next func(prev models.TrackSort) models.TrackSort) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel.TrackSort = next(s.sel.TrackSort)
}

// SelectTrack scopes the word list to the words captured from one track.
func (s *Store) SelectTrack(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel = DefaultSelection()
	s.sel.TrackID = id
	s.sel.TrackSelected = true
}

// ResetSelections restores every selection to its default. Used when
// navigating between the scoped and unscoped word views.
func (s *Store) ResetSelections() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel = DefaultSelection()
}

// Selection returns a copy of the current selection state.
func (s *Store) Selection() Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sel
}

// User returns the resolved display identity.
func (s *Store) User() models.UserIdentity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Profile returns the backend profile from the last load, nil when the
// profile source produced nothing.
func (s *Store) Profile() *models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return nil
	}
	p := *s.profile
	return &p
}

// Words returns a copy of the full normalized word list.
func (s *Store) Words() []models.WordRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.WordRecord(nil), s.words...)
}

// Tracks returns a copy of the full normalized track list.
func (s *Store) Tracks() []models.TrackRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.TrackRecord(nil), s.tracks...)
}

// Lists returns a copy of the loaded vocabulary lists.
func (s *Store) Lists() []models.VocabularyList {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.VocabularyList(nil), s.lists...)
}

// Dashboard aggregates the counters the dashboard view renders.
//
// When no word rows loaded, the total word count falls back to the sum
// of vocabulary list entries.
func (s *Store) Dashboard() models.Dashboard {
	s.mu.Lock()
	defer s.mu.Unlock()

	totalWords := len(s.words)
	if totalWords == 0 {
		for _, list := range s.lists {
			totalWords += len(list.Entries)
		}
	}
	return models.Dashboard{
		GreetingName: s.user.Name,
		TotalWords:   totalWords,
		TotalTracks:  len(s.tracks),
	}
}

// LoadAppData populates the lists and identity from the backend.
//
// At most one load is in flight at a time: the first caller launches the
// fetches, concurrent callers block on the same completion channel and
// return when it finishes. The in-flight handle is cleared
// unconditionally, success or not. LoadAppData never fails — each source
// error is logged and absorbed, and when all four sources fail the
// embedded fixture data is loaded instead so callers always have
// something to render.
func (s *Store) LoadAppData(ctx context.Context) {
	s.mu.Lock()
	if s.pending != nil {
		done := s.pending
		s.mu.Unlock()
		<-done
		return
	}
	done := make(chan struct{})
	s.pending = done
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.pending = nil
		s.mu.Unlock()
		close(done)
	}()

	result := s.loader.Load(ctx, nil)
	for _, srcErr := range result.Errors {
		s.logger.Warn("source unavailable", "source", srcErr.Source, "error", srcErr.Err)
	}

	tok := identity.ProfileFromToken(s.token())
	if !result.Usable() {
		s.logger.Warn("all sources failed, loading bundled fixtures")
		s.applyFixtures(tok)
		return
	}
	s.apply(result, tok)
}

func (s *Store) apply(result *tasks.LoadResult, tok *identity.TokenProfile) {
	words := normalize.Words(result.Words, nil)
	tracks := normalize.Tracks(result.History)

	var backendName, backendEmail string
	if result.Profile != nil {
		backendName = result.Profile.DisplayName
		backendEmail = result.Profile.Email
	}
	name, email, avatar := identity.Resolve(backendName, backendEmail, tok)

	s.mu.Lock()
	if result.Words != nil {
		s.words = words
	}
	if result.History != nil {
		s.tracks = tracks
	}
	if result.Lists != nil {
		s.lists = result.Lists
	}
	if result.Profile != nil {
		s.profile = result.Profile
	}
	s.user = models.UserIdentity{Name: name, Email: email, AvatarText: avatar}
	s.mu.Unlock()

	s.saveSnapshots(words, tracks)
}

func (s *Store) applyFixtures(tok *identity.TokenProfile) {
	var rawWords, rawTracks any
	if err := json.Unmarshal(fixtureWords, &rawWords); err != nil {
		s.logger.Error("failed to decode word fixtures", "error", err)
	}
	if err := json.Unmarshal(fixtureTracks, &rawTracks); err != nil {
		s.logger.Error("failed to decode track fixtures", "error", err)
	}

	name, email, avatar := identity.Resolve("", "", tok)

	s.mu.Lock()
	s.words = normalize.Words(rawWords, nil)
	s.tracks = normalize.Tracks(rawTracks)
	s.user = models.UserIdentity{Name: name, Email: email, AvatarText: avatar}
	s.mu.Unlock()
}

// saveSnapshots caches the loaded lists for offline rendering.
// Best-effort: failures are logged, never surfaced.
func (s *Store) saveSnapshots(words []models.WordRecord, tracks []models.TrackRecord) {
	if s.snapshots == nil {
		return
	}
	if len(words) > 0 {
		if err := s.snapshots.SaveWords(words); err != nil {
			s.logger.Warn("failed to cache word snapshot", "error", err)
		}
	}
	if len(tracks) > 0 {
		if err := s.snapshots.SaveTracks(tracks); err != nil {
			s.logger.Warn("failed to cache track snapshot", "error", err)
		}
	}
}

// RestoreSnapshots loads the previously cached lists into the store.
// Used for offline rendering before the first network load completes.
func (s *Store) RestoreSnapshots() {
	if s.snapshots == nil {
		return
	}
	words, err := s.snapshots.Words()
	if err != nil {
		s.logger.Warn("failed to restore word snapshot", "error", err)
	}
	tracks, err := s.snapshots.Tracks()
	if err != nil {
		s.logger.Warn("failed to restore track snapshot", "error", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.words) == 0 && len(words) > 0 {
		s.words = words
	}
	if len(s.tracks) == 0 && len(tracks) > 0 {
		s.tracks = tracks
	}
}
