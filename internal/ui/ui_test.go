package ui

import (
	"context"
	"database/sql"
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	_ "github.com/mattn/go-sqlite3"

	"github.com/onewave/wavecli/internal/repositories"
	"github.com/onewave/wavecli/internal/session"
	"github.com/onewave/wavecli/internal/shared"
	"github.com/onewave/wavecli/internal/store"
	wavetest "github.com/onewave/wavecli/internal/testing"
)

func newTestGate(t *testing.T) *session.Gate {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := repositories.Setup(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	return session.NewGate(repositories.NewKVRepository(db), shared.NewLogger(io.Discard))
}

func wordRows(n int) []any {
	rows := make([]any, n)
	for i := range rows {
		rows[i] = map[string]any{"id": i + 1, "word": string(rune('a' + i))}
	}
	return rows
}

func newTestModel(t *testing.T, gate *session.Gate, words int) *Model {
	t.Helper()
	backend := &wavetest.MockBackend{
		WordsFunc: func(context.Context) (any, error) { return wordRows(words), nil },
	}
	st := store.New(backend, shared.NewLogger(io.Discard))
	st.LoadAppData(context.Background())

	lists := shared.ListsConfig{WordPageSize: 6, TrackPageSize: 6, WordInitialCount: 3, TrackInitialCount: 4}
	return NewModel(context.Background(), st, gate, lists)
}

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestAnonymousStartsAtLogin(t *testing.T) {
	m := newTestModel(t, newTestGate(t), 0)
	if m.view != LoginView {
		t.Errorf("expected login view for anonymous session, got %v", m.view)
	}
	if m.Init() != nil {
		t.Error("login view should not trigger a load")
	}
}

func TestAuthenticatedStartsAtDashboard(t *testing.T) {
	gate := newTestGate(t)
	if err := gate.SignIn("tok"); err != nil {
		t.Fatalf("sign-in failed: %v", err)
	}

	m := newTestModel(t, gate, 0)
	if m.view != DashboardView {
		t.Errorf("expected dashboard for signed-in session, got %v", m.view)
	}
	if m.Init() == nil {
		t.Error("dashboard start should trigger a load")
	}
}

func TestBypassSignInReturnsToDashboard(t *testing.T) {
	m := newTestModel(t, newTestGate(t), 0)

	next, _ := m.Update(keyPress("b"))
	m = next.(*Model)
	if m.view != DashboardView {
		t.Errorf("expected dashboard after bypass sign-in, got %v", m.view)
	}
	if !m.gate.IsAuthenticated() {
		t.Error("bypass should authenticate the session")
	}
}

func TestPendingDestinationHonoredAfterLogin(t *testing.T) {
	gate := newTestGate(t)
	m := newTestModel(t, gate, 0)

	// anonymous navigation to a protected view detours through login
	m.navigate(WordListView, destWords)
	if m.view != LoginView {
		t.Fatalf("expected login detour, got %v", m.view)
	}

	next, _ := m.Update(keyPress("b"))
	m = next.(*Model)
	if m.view != WordListView {
		t.Errorf("expected return to recorded destination, got %v", m.view)
	}
}

func TestLoadMoreDebounce(t *testing.T) {
	gate := newTestGate(t)
	if err := gate.SignInBypass(); err != nil {
		t.Fatalf("bypass failed: %v", err)
	}

	m := newTestModel(t, gate, 13)
	m.view = WordListView

	total := len(m.store.WordView())
	if total != 13 {
		t.Fatalf("expected 13 words loaded, got %d", total)
	}
	if got := m.wordFeed.Visible(total); got != 3 {
		t.Fatalf("initial visible = %d, want 3", got)
	}

	cmd := m.triggerLoadMore()
	if cmd == nil {
		t.Fatal("expected a debounce timer")
	}
	firstSeq := m.loadSeq

	// re-trigger replaces the timer: the first tick becomes stale
	m.triggerLoadMore()
	next, _ := m.Update(loadMoreTickMsg{seq: firstSeq})
	m = next.(*Model)
	if got := m.wordFeed.Visible(total); got != 3 {
		t.Errorf("stale tick should not grow the feed, visible = %d", got)
	}

	next, _ = m.Update(loadMoreTickMsg{seq: m.loadSeq})
	m = next.(*Model)
	if got := m.wordFeed.Visible(total); got != 9 {
		t.Errorf("visible after settle = %d, want 9", got)
	}
}

func TestLoadMoreIgnoredWhenExhausted(t *testing.T) {
	gate := newTestGate(t)
	if err := gate.SignInBypass(); err != nil {
		t.Fatalf("bypass failed: %v", err)
	}

	m := newTestModel(t, gate, 2)
	m.view = WordListView

	if cmd := m.triggerLoadMore(); cmd != nil {
		t.Error("exhausted feed should not schedule a timer")
	}
}

func TestSortCycleResetsFeed(t *testing.T) {
	gate := newTestGate(t)
	if err := gate.SignInBypass(); err != nil {
		t.Fatalf("bypass failed: %v", err)
	}

	m := newTestModel(t, gate, 13)
	m.view = WordListView

	m.triggerLoadMore()
	m.Update(loadMoreTickMsg{seq: m.loadSeq})

	next, _ := m.Update(keyPress("s"))
	m = next.(*Model)
	if got := m.wordFeed.Visible(13); got != 3 {
		t.Errorf("sort change should reset the feed, visible = %d", got)
	}
}
