package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/onewave/wavecli/internal/shared"
)

// DefaultCallbackAddr is the loopback address the backend redirect
// points at.
const DefaultCallbackAddr = "127.0.0.1:8400"

// CallbackPath is the route the backend redirect lands on.
const CallbackPath = "/callback"

// SignInResult is the outcome of one sign-in redirect.
type SignInResult struct {
	Token string
	err   error
}

func (r *SignInResult) Error() error {
	return r.err
}

// SignInHandler receives the backend's sign-in redirect.
//
// The redirect carries either ?token= with the bearer token or ?error=
// with a failure reason. Exactly one result is delivered on the result
// channel; repeated callbacks are rejected.
type SignInHandler struct {
	resultChan  chan SignInResult
	once        sync.Once
	callbackHit bool
	mu          sync.Mutex
}

// NewSignInHandler creates a handler ready to receive one callback.
func NewSignInHandler() *SignInHandler {
	return &SignInHandler{
		resultChan: make(chan SignInResult, 1),
	}
}

// Routes returns the HTTP routes this handler serves.
func (h *SignInHandler) Routes() []string {
	return []string{CallbackPath}
}

// ServeHTTP handles the sign-in redirect.
func (h *SignInHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Only handle the callback once
	h.mu.Lock()
	if h.callbackHit {
		h.mu.Unlock()
		http.Error(w, "Callback already processed", http.StatusBadRequest)
		return
	}
	h.callbackHit = true
	h.mu.Unlock()

	if errParam := r.URL.Query().Get("error"); errParam != "" {
		h.send(SignInResult{err: fmt.Errorf("%w: %s", shared.ErrAuthFailed, errParam)})
		http.Error(w, "Sign-in failed", http.StatusBadRequest)
		return
	}

	token := r.URL.Query().Get("token")
	if token == "" {
		h.send(SignInResult{err: fmt.Errorf("%w: redirect carried no token", shared.ErrAuthFailed)})
		http.Error(w, "Missing token", http.StatusBadRequest)
		return
	}

	h.send(SignInResult{Token: token})

	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, signInSuccessPage)
}

// send delivers the result through the channel (only once).
func (h *SignInHandler) send(result SignInResult) {
	h.once.Do(func() {
		h.resultChan <- result
		close(h.resultChan)
	})
}

// Result returns the channel carrying the flow's single outcome.
//
// The channel receives exactly one result and is then closed.
func (h *SignInHandler) Result() <-chan SignInResult {
	return h.resultChan
}

// WaitForSignIn serves the callback on addr until a redirect arrives or
// ctx is cancelled, then shuts the server down and returns the token.
func WaitForSignIn(ctx context.Context, addr string, logger *log.Logger) (string, error) {
	if addr == "" {
		addr = DefaultCallbackAddr
	}

	handler := NewSignInHandler()
	router := NewBasicRouter()
	router.Use(LogRequests(logger))
	router.Handler(handler)

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return "", fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	srv := &http.Server{Handler: router}
	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Serve(listener); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
	}()

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("callback server shutdown", "error", err)
		}
	}()

	select {
	case result := <-handler.Result():
		if err := result.Error(); err != nil {
			return "", err
		}
		return result.Token, nil
	case err := <-serveErr:
		return "", fmt.Errorf("callback server failed: %w", err)
	case <-ctx.Done():
		return "", fmt.Errorf("%w: %v", shared.ErrAuthFailed, ctx.Err())
	}
}

const signInSuccessPage = `
<!DOCTYPE html>
<html>
<head>
    <title>Sign-in Successful</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
               display: flex; align-items: center; justify-content: center; height: 100vh;
               margin: 0; background: #f5f5f5; }
        .container { text-align: center; background: white; padding: 2rem;
                     border-radius: 8px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
        h1 { color: #4A7CFF; margin: 0 0 1rem 0; }
        p { color: #666; margin: 0; }
    </style>
</head>
<body>
    <div class="container">
        <h1>✓ Signed in</h1>
        <p>You can close this window and return to the terminal.</p>
    </div>
</body>
</html>
`
