package main

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/urfave/cli/v3"

	"github.com/onewave/wavecli/internal/api"
	"github.com/onewave/wavecli/internal/repositories"
	"github.com/onewave/wavecli/internal/session"
	"github.com/onewave/wavecli/internal/shared"
	"github.com/onewave/wavecli/internal/store"
)

// testBackend serves the OneWave envelope for the endpoints the store
// fetches, recording request paths.
func testBackend(t *testing.T) (*httptest.Server, *[]string) {
	t.Helper()

	var paths []string
	mux := http.NewServeMux()
	respond := func(w http.ResponseWriter, data any) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": data})
	}

	record := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			paths = append(paths, r.URL.Path)
			next(w, r)
		}
	}

	mux.HandleFunc("/user/profile", record(func(w http.ResponseWriter, r *http.Request) {
		respond(w, map[string]any{"id": "u1", "display_name": "Jamie Lee", "email": "jamie@example.com"})
	}))
	mux.HandleFunc("/user/words", record(func(w http.ResponseWriter, r *http.Request) {
		respond(w, map[string]any{"user_words": []any{
			map[string]any{"id": 1, "word": "run", "meaning": "달리다", "artist": "Queen", "count": 3, "created_at": "2024-03-01", "language": "ENGLISH"},
			map[string]any{"id": 2, "word": "jump", "meaning": "뛰다", "artist": "Van Halen", "count": 1, "created_at": "2024-02-01", "language": "ENGLISH"},
		}})
	}))
	mux.HandleFunc("/music/history", record(func(w http.ResponseWriter, r *http.Request) {
		respond(w, map[string]any{"user_music_history": []any{
			map[string]any{"id": 1, "title": "Don't Stop Me Now", "artist": "Queen", "captured_at": "2024-03-01T10:00:00Z", "extracted_words": 7},
		}})
	}))
	mux.HandleFunc("/vocabulary/lists", record(func(w http.ResponseWriter, r *http.Request) {
		respond(w, []any{})
	}))
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &paths
}

type testEnv struct {
	runner *Runner
	gate   *session.Gate
	output *bytes.Buffer
	app    *cli.Command
}

func newTestEnv(t *testing.T, baseURL string) *testEnv {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := repositories.Setup(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	logger := shared.NewLogger(io.Discard)
	gate := session.NewGate(repositories.NewKVRepository(db), logger)
	client := api.NewClient(baseURL,
		api.WithTokenSource(gate.Token),
		api.WithUnauthorizedHook(gate.HandleUnauthorized),
	)
	appStore := store.New(client, logger, store.WithTokenSource(gate.Token))

	output := &bytes.Buffer{}
	runner := NewRunner(RunnerOpts{
		Config: shared.DefaultConfig(),
		Client: client,
		Store:  appStore,
		Gate:   gate,
		DB:     db,
		Logger: logger,
		Output: output,
	})

	return &testEnv{
		runner: runner,
		gate:   gate,
		output: output,
		app:    &cli.Command{Name: "wavecli", Commands: runner.register()},
	}
}

func (e *testEnv) run(t *testing.T, args ...string) error {
	t.Helper()
	return e.app.Run(context.Background(), append([]string{"wavecli"}, args...))
}

func TestWordsListRequiresSession(t *testing.T) {
	srv, _ := testBackend(t)
	env := newTestEnv(t, srv.URL)

	err := env.run(t, "words", "list")
	if !errors.Is(err, shared.ErrNotAuthenticated) {
		t.Errorf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestWordsList(t *testing.T) {
	srv, _ := testBackend(t)
	env := newTestEnv(t, srv.URL)
	if err := env.gate.SignIn("tok"); err != nil {
		t.Fatalf("sign-in failed: %v", err)
	}

	if err := env.run(t, "words", "list"); err != nil {
		t.Fatalf("words list failed: %v", err)
	}

	out := env.output.String()
	if !strings.Contains(out, "run") || !strings.Contains(out, "달리다") {
		t.Errorf("expected word rows in output:\n%s", out)
	}
	if !strings.Contains(out, "page 1/1") {
		t.Errorf("expected page header in output:\n%s", out)
	}
}

func TestWordsListSearchFlag(t *testing.T) {
	srv, _ := testBackend(t)
	env := newTestEnv(t, srv.URL)
	if err := env.gate.SignIn("tok"); err != nil {
		t.Fatalf("sign-in failed: %v", err)
	}

	if err := env.run(t, "words", "list", "--search", "ru"); err != nil {
		t.Fatalf("words list failed: %v", err)
	}

	out := env.output.String()
	if !strings.Contains(out, "run") {
		t.Errorf("expected matching word in output:\n%s", out)
	}
	if strings.Contains(out, "jump") {
		t.Errorf("expected non-matching word filtered out:\n%s", out)
	}
}

func TestWordsListRejectsUnknownSort(t *testing.T) {
	srv, _ := testBackend(t)
	env := newTestEnv(t, srv.URL)
	if err := env.gate.SignInBypass(); err != nil {
		t.Fatalf("bypass failed: %v", err)
	}

	err := env.run(t, "words", "list", "--sort", "sideways")
	if !errors.Is(err, shared.ErrInvalidFlag) {
		t.Errorf("expected ErrInvalidFlag, got %v", err)
	}
}

func TestWordsListJSON(t *testing.T) {
	srv, _ := testBackend(t)
	env := newTestEnv(t, srv.URL)
	if err := env.gate.SignIn("tok"); err != nil {
		t.Fatalf("sign-in failed: %v", err)
	}

	if err := env.run(t, "words", "list", "--json"); err != nil {
		t.Fatalf("words list failed: %v", err)
	}

	var words []map[string]any
	if err := json.Unmarshal(env.output.Bytes(), &words); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, env.output.String())
	}
	if len(words) != 2 {
		t.Errorf("expected 2 words, got %d", len(words))
	}
}

func TestTracksList(t *testing.T) {
	srv, _ := testBackend(t)
	env := newTestEnv(t, srv.URL)
	if err := env.gate.SignIn("tok"); err != nil {
		t.Fatalf("sign-in failed: %v", err)
	}

	if err := env.run(t, "tracks", "list"); err != nil {
		t.Fatalf("tracks list failed: %v", err)
	}

	out := env.output.String()
	if !strings.Contains(out, "Don't Stop Me Now") {
		t.Errorf("expected track in output:\n%s", out)
	}
}

func TestDashboard(t *testing.T) {
	srv, _ := testBackend(t)
	env := newTestEnv(t, srv.URL)
	if err := env.gate.SignIn("tok"); err != nil {
		t.Fatalf("sign-in failed: %v", err)
	}

	if err := env.run(t, "dashboard"); err != nil {
		t.Fatalf("dashboard failed: %v", err)
	}

	out := env.output.String()
	if !strings.Contains(out, "Jamie Lee") {
		t.Errorf("expected backend display name in greeting:\n%s", out)
	}
	if !strings.Contains(out, "Words captured: 2") {
		t.Errorf("expected word total:\n%s", out)
	}
}

func TestAuthStatusAnonymous(t *testing.T) {
	srv, _ := testBackend(t)
	env := newTestEnv(t, srv.URL)

	if err := env.run(t, "auth", "status"); err != nil {
		t.Fatalf("auth status failed: %v", err)
	}
	if !strings.Contains(env.output.String(), "Not signed in") {
		t.Errorf("expected anonymous status:\n%s", env.output.String())
	}
}

func TestAuthLogoutClearsSession(t *testing.T) {
	srv, _ := testBackend(t)
	env := newTestEnv(t, srv.URL)
	if err := env.gate.SignIn("tok"); err != nil {
		t.Fatalf("sign-in failed: %v", err)
	}

	if err := env.run(t, "auth", "logout"); err != nil {
		t.Fatalf("auth logout failed: %v", err)
	}
	if env.gate.IsAuthenticated() {
		t.Error("expected session cleared after logout")
	}
}

func TestAuthBypass(t *testing.T) {
	srv, _ := testBackend(t)
	env := newTestEnv(t, srv.URL)

	if err := env.run(t, "auth", "bypass"); err != nil {
		t.Fatalf("auth bypass failed: %v", err)
	}
	if !env.gate.IsAuthenticated() {
		t.Error("expected bypass to authenticate the session")
	}
}

func TestProfileSettingsRequiresFlags(t *testing.T) {
	srv, _ := testBackend(t)
	env := newTestEnv(t, srv.URL)
	if err := env.gate.SignIn("tok"); err != nil {
		t.Fatalf("sign-in failed: %v", err)
	}

	err := env.run(t, "profile", "settings")
	if !errors.Is(err, shared.ErrMissingArgument) {
		t.Errorf("expected ErrMissingArgument, got %v", err)
	}
}

func TestCaptureRequiresVideoID(t *testing.T) {
	srv, _ := testBackend(t)
	env := newTestEnv(t, srv.URL)
	if err := env.gate.SignIn("tok"); err != nil {
		t.Fatalf("sign-in failed: %v", err)
	}

	err := env.run(t, "capture")
	if !errors.Is(err, shared.ErrMissingArgument) {
		t.Errorf("expected ErrMissingArgument, got %v", err)
	}
}
