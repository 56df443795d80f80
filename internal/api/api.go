// OneWave backend HTTP client
//
// All endpoints sit under a configurable base URL, speak JSON, and wrap
// their payloads in a {success, data} / {success, error} envelope. Requests
// carry a bearer token when one is cached; a 401 from any endpoint fires
// the unauthorized hook so the session gate can clear credentials.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/onewave/wavecli/internal/models"
	"github.com/onewave/wavecli/internal/shared"
)

const defaultBaseURL = "http://localhost:8000"

var schemeRe = regexp.MustCompile(`(?i)^https?://`)

// TokenSource supplies the cached bearer token, or "" when anonymous.
type TokenSource func() string

// Client talks to the OneWave backend.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	token          TokenSource
	onUnauthorized func()
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying [http.Client].
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTokenSource installs the bearer token supplier.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.token = ts }
}

// WithUnauthorizedHook installs the hook invoked on any 401 response.
func WithUnauthorizedHook(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// NewClient creates a client for the given base URL.
//
// An empty base URL falls back to the local development default; a bare
// host is upgraded to https.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    NormalizeBaseURL(baseURL),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NormalizeBaseURL trims the input, upgrades scheme-less hosts to https,
// and strips a trailing slash.
func NormalizeBaseURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultBaseURL
	}
	if !schemeRe.MatchString(raw) {
		raw = "https://" + raw
	}
	return strings.TrimRight(raw, "/")
}

// GoogleAuthURL composes the sign-in redirect URL for the backend's Google
// OAuth flow. The redirect parameter tells the backend where to send the
// issued token afterwards.
func (c *Client) GoogleAuthURL(redirect string) string {
	authURL := c.baseURL + "/auth/google"
	if redirect == "" {
		return authURL
	}
	return authURL + "?redirect_uri=" + url.QueryEscape(redirect)
}

// envelope is the backend's uniform response wrapper.
type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *apiError       `json:"error"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// request performs one round trip and returns the raw data payload.
//
// Bodies that do not carry the envelope are returned whole, matching the
// backend's occasional habit of responding with a bare array.
func (c *Client) request(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != nil {
		if tok := c.token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", shared.ErrAPIRequest, err)
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode == http.StatusUnauthorized {
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return nil, fmt.Errorf("%w: %s", shared.ErrUnauthorized, serverMessage(&env, decodeErr, resp.StatusCode))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %s", shared.ErrAPIRequest, serverMessage(&env, decodeErr, resp.StatusCode))
	}

	if decodeErr != nil {
		return nil, fmt.Errorf("%w: non-JSON response", shared.ErrAPIRequest)
	}

	if env.Success == nil {
		// no envelope, the body is the payload
		return raw, nil
	}
	if !*env.Success {
		return nil, fmt.Errorf("%w: %s", shared.ErrAPIRequest, serverMessage(&env, nil, resp.StatusCode))
	}
	return env.Data, nil
}

// serverMessage picks the most specific failure description available.
func serverMessage(env *envelope, decodeErr error, status int) string {
	if decodeErr == nil && env.Error != nil {
		if env.Error.Message != "" {
			return env.Error.Message
		}
		if env.Error.Code != "" {
			return env.Error.Code
		}
	}
	return fmt.Sprintf("status %d", status)
}

// Profile retrieves the signed-in user's profile and settings.
//
// GET /user/profile
func (c *Client) Profile(ctx context.Context) (*models.Profile, error) {
	data, err := c.request(ctx, http.MethodGet, "/user/profile", nil)
	if err != nil {
		return nil, err
	}

	var profile models.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("%w: failed to decode profile: %v", shared.ErrAPIRequest, err)
	}
	return &profile, nil
}

// Words retrieves the captured word rows as an undecoded payload.
//
// GET /user/words. The shape is not guaranteed, so the raw value goes to
// the normalize package untouched.
func (c *Client) Words(ctx context.Context) (any, error) {
	return c.anyPayload(ctx, "/user/words")
}

// MusicHistory retrieves the captured track rows as an undecoded payload.
//
// GET /music/history
func (c *Client) MusicHistory(ctx context.Context) (any, error) {
	return c.anyPayload(ctx, "/music/history")
}

// VocabularyLists retrieves the grouped vocabulary lists.
//
// GET /vocabulary/lists
func (c *Client) VocabularyLists(ctx context.Context) ([]models.VocabularyList, error) {
	data, err := c.request(ctx, http.MethodGet, "/vocabulary/lists", nil)
	if err != nil {
		return nil, err
	}

	var lists []models.VocabularyList
	if err := json.Unmarshal(data, &lists); err != nil {
		return nil, fmt.Errorf("%w: failed to decode vocabulary lists: %v", shared.ErrAPIRequest, err)
	}
	return lists, nil
}

// CaptureRequest is the body of POST /music/history.
type CaptureRequest struct {
	VideoID     string  `json:"video_id"`
	Title       string  `json:"title"`
	CaptureTime float64 `json:"capture_time,omitempty"`
	Origin      string  `json:"origin,omitempty"`
}

// CaptureResult is the backend's acknowledgement of a capture.
type CaptureResult struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`
}

// PostMusicHistory records a track capture.
//
// POST /music/history
func (c *Client) PostMusicHistory(ctx context.Context, body CaptureRequest) (*CaptureResult, error) {
	data, err := c.request(ctx, http.MethodPost, "/music/history", body)
	if err != nil {
		return nil, err
	}

	var result CaptureResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode capture result: %v", shared.ErrAPIRequest, err)
	}
	return &result, nil
}

// GenerateRequest is the body of POST /vocabulary/generate.
type GenerateRequest struct {
	SongTitle string `json:"song_title"`
	Title     string `json:"title,omitempty"`
	Save      bool   `json:"save,omitempty"`
}

// GenerateResult holds the entries extracted for a song.
type GenerateResult struct {
	Entries []models.VocabularyEntry `json:"entries"`
	Saved   bool                     `json:"saved"`
	Song    struct {
		Title  string `json:"title"`
		Artist string `json:"artist"`
	} `json:"song"`
}

// GenerateVocabulary triggers word extraction for a song.
//
// POST /vocabulary/generate
func (c *Client) GenerateVocabulary(ctx context.Context, body GenerateRequest) (*GenerateResult, error) {
	data, err := c.request(ctx, http.MethodPost, "/vocabulary/generate", body)
	if err != nil {
		return nil, err
	}

	var result GenerateResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode generate result: %v", shared.ErrAPIRequest, err)
	}
	return &result, nil
}

// SettingsPatch is a partial update of learning preferences. Nil fields are
// left untouched by the backend.
type SettingsPatch struct {
	Language  *string `json:"language,omitempty"`
	Level     *string `json:"level,omitempty"`
	MaxWords  *int    `json:"max_words,omitempty"`
	MinLength *int    `json:"min_length,omitempty"`
}

// UpdateSettings patches the user's learning preferences.
//
// PATCH /user/settings
func (c *Client) UpdateSettings(ctx context.Context, patch SettingsPatch) (*models.Settings, error) {
	data, err := c.request(ctx, http.MethodPatch, "/user/settings", patch)
	if err != nil {
		return nil, err
	}

	var settings models.Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("%w: failed to decode settings: %v", shared.ErrAPIRequest, err)
	}
	return &settings, nil
}

// anyPayload fetches a path and decodes the data payload into a free-form
// value for the normalizer.
func (c *Client) anyPayload(ctx context.Context, path string) (any, error) {
	data, err := c.request(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode %s payload: %v", shared.ErrAPIRequest, path, err)
	}
	return payload, nil
}
