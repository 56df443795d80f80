// package tasks implements the data-loading and export operations of the client.
//
// The core abstraction is [Loader], which fans out the four backend fetches
// feeding the application store. Operations emit progress updates via
// channels for non-blocking status reporting to CLI/UI layers.
package tasks

import (
	"context"
	"sync"

	"github.com/onewave/wavecli/internal/models"
)

// Backend is the slice of the API client the loader needs.
// The abstraction keeps the loader testable with mock transports.
type Backend interface {
	Profile(ctx context.Context) (*models.Profile, error)
	Words(ctx context.Context) (any, error)
	MusicHistory(ctx context.Context) (any, error)
	VocabularyLists(ctx context.Context) ([]models.VocabularyList, error)
}

// SourceError records one source's failure during a load.
type SourceError struct {
	Source string
	Err    error
}

// LoadResult carries whatever each of the four sources produced.
//
// A nil Profile, nil Words payload, nil History payload, and empty Lists
// with four recorded errors means the load produced nothing usable.
type LoadResult struct {
	Profile *models.Profile
	Words   any // raw rows for the normalizer
	History any //
	Lists   []models.VocabularyList
	Errors  []SourceError
}

// Usable reports whether at least one source returned data.
func (r *LoadResult) Usable() bool {
	return r.Profile != nil || r.Words != nil || r.History != nil || len(r.Lists) > 0
}

// Loader orchestrates the coalesced bulk fetch of all app data.
type Loader struct {
	backend Backend
}

// NewLoader creates a Loader over the given backend.
func NewLoader(backend Backend) *Loader {
	return &Loader{backend: backend}
}

// Load issues the four fetches concurrently and joins them.
//
// Each source is isolated: a failure or slow response on one never blocks
// or fails the others. Errors are collected, never returned — the caller
// decides whether a fully-failed load warrants fixture fallback.
func (l *Loader) Load(ctx context.Context, progress chan<- ProgressUpdate) *LoadResult {
	result := &LoadResult{}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)

	fail := func(source string, err error) {
		mu.Lock()
		result.Errors = append(result.Errors, SourceError{Source: source, Err: err})
		mu.Unlock()
	}

	total := 4
	step := 0
	advance := func(phase Phase, message string) {
		mu.Lock()
		step++
		current := step
		mu.Unlock()
		sendProgress(progress, ProgressUpdate{Phase: phase, Step: current, Total: total, Message: message})
	}

	wg.Add(4)

	go func() {
		defer wg.Done()
		profile, err := l.backend.Profile(ctx)
		if err != nil {
			fail("profile", err)
		} else {
			mu.Lock()
			result.Profile = profile
			mu.Unlock()
		}
		advance(FetchProfile, "Fetched profile")
	}()

	go func() {
		defer wg.Done()
		words, err := l.backend.Words(ctx)
		if err != nil {
			fail("words", err)
		} else {
			mu.Lock()
			result.Words = words
			mu.Unlock()
		}
		advance(FetchWords, "Fetched captured words")
	}()

	go func() {
		defer wg.Done()
		history, err := l.backend.MusicHistory(ctx)
		if err != nil {
			fail("history", err)
		} else {
			mu.Lock()
			result.History = history
			mu.Unlock()
		}
		advance(FetchHistory, "Fetched music history")
	}()

	go func() {
		defer wg.Done()
		lists, err := l.backend.VocabularyLists(ctx)
		if err != nil {
			fail("lists", err)
		} else {
			mu.Lock()
			result.Lists = lists
			mu.Unlock()
		}
		advance(FetchLists, "Fetched vocabulary lists")
	}()

	wg.Wait()
	return result
}

// sendProgress sends a progress update through the channel without blocking.
// Uses select with default so progress reporting never stalls execution.
func sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}
