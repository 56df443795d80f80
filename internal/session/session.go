// package session tracks the signed-in state of the client
//
// The gate is a two-state machine (anonymous / authenticated) backed by the
// persisted flag store. A session exists when either a bearer token is
// cached or the legacy bypass flag is set; an unauthorized signal from any
// request collapses it back to anonymous.
package session

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/onewave/wavecli/internal/repositories"
	"golang.org/x/oauth2"
)

// bypassOn is the stored value of the bypass flag, matching the web client.
const bypassOn = "1"

// Gate guards access to authenticated views and operations.
type Gate struct {
	kv     *repositories.KVRepository
	logger *log.Logger

	mu   sync.Mutex
	dest string // originally requested destination, for post-login return
}

// NewGate creates a Gate over the given flag store.
func NewGate(kv *repositories.KVRepository, logger *log.Logger) *Gate {
	return &Gate{kv: kv, logger: logger}
}

// IsAuthenticated reports whether a session exists: a cached token or the
// bypass flag. Storage errors read as anonymous.
func (g *Gate) IsAuthenticated() bool {
	if g.Token() != "" {
		return true
	}
	bypass, err := g.kv.Get(repositories.KeyAuthBypass)
	if err != nil {
		g.logger.Warn("failed to read bypass flag", "err", err)
		return false
	}
	return bypass == bypassOn
}

// Token returns the cached bearer token, or "" when anonymous.
func (g *Gate) Token() string {
	token, err := g.kv.Get(repositories.KeyAuthToken)
	if err != nil {
		g.logger.Warn("failed to read cached token", "err", err)
		return ""
	}
	return token
}

// OAuthToken exposes the cached credential as an [oauth2.Token] for
// collaborators that speak the oauth2 types.
func (g *Gate) OAuthToken() *oauth2.Token {
	token := g.Token()
	if token == "" {
		return nil
	}
	return &oauth2.Token{AccessToken: token, TokenType: "Bearer"}
}

// SignIn caches the bearer token, moving the gate to authenticated.
func (g *Gate) SignIn(token string) error {
	if token == "" {
		return fmt.Errorf("empty token")
	}
	if err := g.kv.Set(repositories.KeyAuthToken, token); err != nil {
		return fmt.Errorf("failed to cache token: %w", err)
	}
	g.logger.Info("signed in")
	return nil
}

// SignInBypass sets the legacy bypass flag for environments without a
// backend, moving the gate to authenticated.
func (g *Gate) SignInBypass() error {
	if err := g.kv.Set(repositories.KeyAuthBypass, bypassOn); err != nil {
		return fmt.Errorf("failed to set bypass flag: %w", err)
	}
	g.logger.Info("signed in (bypass)")
	return nil
}

// SignOut clears every cached credential and derived identity flag
// atomically, moving the gate to anonymous.
func (g *Gate) SignOut() error {
	if err := g.kv.ClearNamespace(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	g.logger.Info("signed out")
	return nil
}

// HandleUnauthorized is the hook wired to the API client's 401 signal.
// Clearing is best-effort; the gate reads as anonymous afterwards either way.
func (g *Gate) HandleUnauthorized() {
	g.logger.Warn("unauthorized response, clearing cached credentials")
	if err := g.kv.ClearNamespace(); err != nil {
		g.logger.Error("failed to clear credentials", "err", err)
	}
}

// Require records the destination a consumer wanted to reach while
// anonymous, so it can be returned to after sign-in. Reports whether the
// gate is currently open.
func (g *Gate) Require(dest string) bool {
	if g.IsAuthenticated() {
		return true
	}
	g.mu.Lock()
	g.dest = dest
	g.mu.Unlock()
	return false
}

// ConsumeDestination returns and clears the pending post-login destination.
func (g *Gate) ConsumeDestination() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	dest := g.dest
	g.dest = ""
	return dest
}

// RememberIdentity persists the derived identity fields alongside the
// credentials so they clear together on sign-out.
func (g *Gate) RememberIdentity(name, email string) {
	if err := g.kv.Set(repositories.KeyUserName, name); err != nil {
		g.logger.Warn("failed to persist user name", "err", err)
	}
	if err := g.kv.Set(repositories.KeyUserEmail, email); err != nil {
		g.logger.Warn("failed to persist user email", "err", err)
	}
}
