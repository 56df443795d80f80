package main

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/onewave/wavecli/internal/server"
	"github.com/onewave/wavecli/internal/shared"
)

// loginTimeout bounds how long the callback server waits for the
// browser redirect.
const loginTimeout = 3 * time.Minute

// AuthLogin runs the browser sign-in flow.
//
// The backend's Google OAuth flow redirects to a loopback callback
// carrying the issued token, which is then cached for every later
// command.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	addr := cmd.String("listen")
	redirect := "http://" + addr + server.CallbackPath
	authURL := r.client.GoogleAuthURL(redirect)

	if cmd.Bool("no-browser") {
		r.writePlainln("Open this URL to sign in:")
		r.writePlainln("  %s", authURL)
	} else {
		r.logger.Info("opening browser for sign-in", "url", authURL)
		if err := shared.OpenBrowser(authURL); err != nil {
			r.logger.Warn("failed to open browser, open the URL manually", "error", err)
			r.writePlainln("Open this URL to sign in:\n  %s", authURL)
		}
	}

	waitCtx, cancel := context.WithTimeout(ctx, loginTimeout)
	defer cancel()

	r.writePlainln("Waiting for sign-in on %s ...", addr)
	token, err := server.WaitForSignIn(waitCtx, addr, r.logger)
	if err != nil {
		return err
	}

	if err := r.gate.SignIn(token); err != nil {
		return err
	}

	// best-effort: cache the display identity for offline greetings
	if profile, err := r.client.Profile(ctx); err == nil && profile != nil {
		r.gate.RememberIdentity(profile.DisplayName, profile.Email)
	}

	return r.writePlainln("✓ Signed in")
}

// AuthLogout clears the cached token, bypass flag, and identity.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	if err := r.gate.SignOut(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return r.writePlainln("✓ Signed out")
}

// AuthStatus shows whether a session exists and whether the backend
// accepts it.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	if !r.gate.IsAuthenticated() {
		return r.writePlainln("✗ Not signed in")
	}

	r.writePlainln("✓ Session cached")
	if tok := r.gate.OAuthToken(); tok != nil {
		r.writePlainln("Token type: %s", tok.Type())
	}

	profile, err := r.client.Profile(ctx)
	if err != nil {
		r.writePlainln("Backend: ✗ session rejected (%v)", err)
		return nil
	}
	r.writePlainln("Backend: ✓ accepted")
	if profile != nil {
		r.writePlainln("Account: %s <%s>", profile.DisplayName, profile.Email)
	}
	return nil
}

// AuthBypass marks the session signed-in without a backend.
func (r *Runner) AuthBypass(ctx context.Context, cmd *cli.Command) error {
	if err := r.gate.SignInBypass(); err != nil {
		return err
	}
	return r.writePlainln("✓ Offline session enabled")
}
