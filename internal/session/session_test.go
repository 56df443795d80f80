package session

import (
	"io"
	"testing"

	"github.com/onewave/wavecli/internal/repositories"
	"github.com/onewave/wavecli/internal/shared"
)

func newGate(t *testing.T) *Gate {
	t.Helper()
	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := repositories.Setup(db); err != nil {
		t.Fatalf("failed to set up schema: %v", err)
	}
	return NewGate(repositories.NewKVRepository(db), shared.NewLogger(io.Discard))
}

func TestGateStartsAnonymous(t *testing.T) {
	gate := newGate(t)
	if gate.IsAuthenticated() {
		t.Error("fresh gate should be anonymous")
	}
	if gate.OAuthToken() != nil {
		t.Error("anonymous gate should have no oauth token")
	}
}

func TestSignInWithToken(t *testing.T) {
	gate := newGate(t)

	if err := gate.SignIn("tok-1"); err != nil {
		t.Fatalf("SignIn() error = %v", err)
	}
	if !gate.IsAuthenticated() {
		t.Error("expected authenticated state after sign-in")
	}
	if gate.Token() != "tok-1" {
		t.Errorf("Token() = %q, want tok-1", gate.Token())
	}
	if tok := gate.OAuthToken(); tok == nil || tok.AccessToken != "tok-1" {
		t.Errorf("unexpected oauth token %+v", tok)
	}

	if err := gate.SignIn(""); err == nil {
		t.Error("empty token should be rejected")
	}
}

func TestSignInBypass(t *testing.T) {
	gate := newGate(t)

	if err := gate.SignInBypass(); err != nil {
		t.Fatalf("SignInBypass() error = %v", err)
	}
	if !gate.IsAuthenticated() {
		t.Error("bypass flag should open the gate")
	}
	if gate.Token() != "" {
		t.Error("bypass sign-in should not fabricate a token")
	}
}

func TestSignOutClearsEverything(t *testing.T) {
	gate := newGate(t)

	gate.SignIn("tok-1")
	gate.RememberIdentity("Jamie", "jamie@example.com")

	if err := gate.SignOut(); err != nil {
		t.Fatalf("SignOut() error = %v", err)
	}
	if gate.IsAuthenticated() {
		t.Error("expected anonymous state after sign-out")
	}
	if gate.Token() != "" {
		t.Error("token should be cleared on sign-out")
	}
}

func TestUnauthorizedCollapsesSession(t *testing.T) {
	gate := newGate(t)

	gate.SignIn("tok-1")
	gate.HandleUnauthorized()

	if gate.IsAuthenticated() {
		t.Error("unauthorized signal should clear the session")
	}
}

func TestRequirePreservesDestination(t *testing.T) {
	gate := newGate(t)

	if gate.Require("words") {
		t.Error("anonymous gate should refuse")
	}
	if dest := gate.ConsumeDestination(); dest != "words" {
		t.Errorf("ConsumeDestination() = %q, want words", dest)
	}
	if dest := gate.ConsumeDestination(); dest != "" {
		t.Errorf("destination should be consumed once, got %q", dest)
	}

	gate.SignIn("tok-1")
	if !gate.Require("tracks") {
		t.Error("authenticated gate should allow")
	}
}
