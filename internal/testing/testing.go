// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/onewave/wavecli/internal/models"
)

// MockBackend is a test double for [tasks.Backend] with overridable
// endpoint functions. Nil functions return empty data.
type MockBackend struct {
	ProfileFunc         func(ctx context.Context) (*models.Profile, error)
	WordsFunc           func(ctx context.Context) (any, error)
	MusicHistoryFunc    func(ctx context.Context) (any, error)
	VocabularyListsFunc func(ctx context.Context) ([]models.VocabularyList, error)
}

func (m *MockBackend) Profile(ctx context.Context) (*models.Profile, error) {
	if m.ProfileFunc != nil {
		return m.ProfileFunc(ctx)
	}
	return nil, nil
}

func (m *MockBackend) Words(ctx context.Context) (any, error) {
	if m.WordsFunc != nil {
		return m.WordsFunc(ctx)
	}
	return nil, nil
}

func (m *MockBackend) MusicHistory(ctx context.Context) (any, error) {
	if m.MusicHistoryFunc != nil {
		return m.MusicHistoryFunc(ctx)
	}
	return nil, nil
}

func (m *MockBackend) VocabularyLists(ctx context.Context) ([]models.VocabularyList, error) {
	if m.VocabularyListsFunc != nil {
		return m.VocabularyListsFunc(ctx)
	}
	return []models.VocabularyList{}, nil
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func MustChdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
