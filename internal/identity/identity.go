// package identity resolves the display identity shown across the client
//
// Two sources feed the identity: a best-effort decode of the cached bearer
// token's payload segment, and the backend's profile response. Backend
// systems sometimes return an opaque internal identifier in the name field;
// [LooksInternalID] is the heuristic that keeps those off the screen.
package identity

import (
	"encoding/base64"
	"encoding/json"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultDisplayName is the label shown when no usable name survives the
// fallback chain.
const DefaultDisplayName = "학습자"

// avatarFallback is the letter used when neither name nor email yields one.
const avatarFallback = "H"

// Candidate payload claims tried in order for each identity field.
var (
	nameClaims  = []string{"name", "nickname", "username", "preferred_username", "given_name", "user_name"}
	emailClaims = []string{"email", "upn"}
)

// TokenProfile is the identity decoded from a cached bearer token.
type TokenProfile struct {
	Name       string
	Email      string
	AvatarText string
}

// ProfileFromToken decodes the payload segment of a JWT-shaped token.
//
// The decode is deliberately permissive: url-safe base64 with tolerant
// padding, lossy UTF-8, and a JSON object check. Any failure at any step
// yields nil rather than an error, and a payload with neither name nor
// email is treated the same as no token.
func ProfileFromToken(token string) *TokenProfile {
	payload := decodePayload(strings.TrimSpace(token))
	if payload == nil {
		return nil
	}

	name := firstClaim(payload, nameClaims)
	email := firstClaim(payload, emailClaims)
	if name == "" && email == "" {
		return nil
	}

	return &TokenProfile{
		Name:       name,
		Email:      email,
		AvatarText: avatarText(name, email),
	}
}

// ResolveDisplayName merges the backend's name with the token profile.
//
// The backend name wins unless it looks like an internal identifier, in
// which case the chain falls back to the token name, then the token email's
// local part, then [DefaultDisplayName].
func ResolveDisplayName(backendName string, tok *TokenProfile) string {
	backendName = strings.TrimSpace(backendName)
	if backendName != "" && !LooksInternalID(backendName) {
		return backendName
	}

	if tok != nil {
		if tok.Name != "" {
			return tok.Name
		}
		if local := localPart(tok.Email); local != "" {
			return local
		}
	}

	return DefaultDisplayName
}

// Resolve builds the full display identity from both sources.
func Resolve(backendName, backendEmail string, tok *TokenProfile) (name, email, avatar string) {
	name = ResolveDisplayName(backendName, tok)

	email = strings.TrimSpace(backendEmail)
	if email == "" && tok != nil {
		email = tok.Email
	}

	return name, email, avatarText(name, email)
}

// LooksInternalID reports whether a backend-provided name looks like an
// opaque internal identifier rather than something a person chose.
//
// Best-effort heuristic, not a guarantee: no "@", and either a telltale
// substring (internal, uuid, user_) or, after stripping separators, a long
// mixed letter-digit string.
func LooksInternalID(name string) bool {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" || strings.Contains(lower, "@") {
		return false
	}

	for _, marker := range []string{"internal", "uuid", "user_"} {
		if strings.Contains(lower, marker) {
			return true
		}
	}

	stripped := strings.Map(func(r rune) rune {
		if r == '-' || r == '_' {
			return -1
		}
		return r
	}, lower)

	if len(stripped) < 16 {
		return false
	}

	var letters, digits bool
	for _, r := range stripped {
		switch {
		case unicode.IsLetter(r):
			letters = true
		case unicode.IsDigit(r):
			digits = true
		}
	}
	return letters && digits
}

// decodePayload extracts and decodes the middle segment of a dotted token.
func decodePayload(token string) map[string]any {
	if token == "" {
		return nil
	}

	parts := strings.Split(token, ".")
	if len(parts) < 2 {
		return nil
	}

	segment := strings.TrimRight(parts[1], "=")
	raw, err := base64.RawURLEncoding.DecodeString(segment)
	if err != nil {
		// some issuers emit the standard alphabet in the payload segment
		if raw, err = base64.RawStdEncoding.DecodeString(segment); err != nil {
			return nil
		}
	}
	if !utf8.Valid(raw) {
		raw = []byte(strings.ToValidUTF8(string(raw), "�"))
	}

	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil
	}
	return payload
}

// firstClaim returns the first candidate claim holding a usable string.
// Numeric claims (e.g. numeric user ids) are rendered as text to match
// permissive upstreams.
func firstClaim(payload map[string]any, claims []string) string {
	for _, claim := range claims {
		switch v := payload[claim].(type) {
		case string:
			if trimmed := strings.TrimSpace(v); trimmed != "" {
				return trimmed
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}

// avatarText returns the uppercase first character of name, else email,
// else the fixed fallback letter.
func avatarText(name, email string) string {
	for _, source := range []string{name, email} {
		for _, r := range source {
			return strings.ToUpper(string(r))
		}
	}
	return avatarFallback
}

// localPart returns the part of an email address before the "@".
func localPart(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
