// Package api implements the HTTP client for the OneWave backend.
//
// Endpoints:
//   - GET /user/profile : identity + learning settings
//   - GET /user/words : captured word rows (shape not guaranteed)
//   - GET /vocabulary/lists : grouped vocabulary lists
//   - GET /music/history : captured track rows (shape not guaranteed)
//   - POST /music/history : record a capture
//   - POST /vocabulary/generate : trigger extraction for a song
//   - PATCH /user/settings : partial settings update
//   - GET /auth/google : sign-in redirect (URL composed by [Client.GoogleAuthURL])
//
// Responses use the {success, data} / {success, error: {code, message}}
// envelope; bare payloads are tolerated. A 401 from any endpoint invokes the
// unauthorized hook (wired to the session gate) before the error is returned.
// List-shaped payloads whose field names vary are returned undecoded and
// handed to the normalize package.
package api
