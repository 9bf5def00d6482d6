// Package auth provides the credential source for outbound API calls.
//
// The stored session token lives in token.json inside the config directory,
// serialized as an oauth2.Token. FileSource re-reads that file on every
// Token call so a login or logout in another process takes effect on the
// next request.
package auth

import (
	"encoding/json"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"

	"taskcli/internal/service"
)

// FileSource is an oauth2.TokenSource backed by a token file.
// Any failure to produce a usable credential is reported uniformly as
// service.ErrAuthRequired.
type FileSource struct {
	path string
}

// NewFileSource creates a source reading the token file at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Token implements oauth2.TokenSource. It reads the token file, rejects
// absent, corrupt, or expired tokens, and never caches across calls.
func (s *FileSource) Token() (*oauth2.Token, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, service.ErrAuthRequired
	}

	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, service.ErrAuthRequired
	}
	if token.AccessToken == "" {
		return nil, service.ErrAuthRequired
	}
	if !token.Expiry.IsZero() && token.Expiry.Before(time.Now()) {
		return nil, service.ErrAuthRequired
	}
	if expired(token.AccessToken) {
		return nil, service.ErrAuthRequired
	}

	return &token, nil
}

// Save writes the token to the file with mode 0600.
func (s *FileSource) Save(token *oauth2.Token) error {
	data, err := json.MarshalIndent(token, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0600)
}

// Clear deletes the token file.
func (s *FileSource) Clear() error {
	return os.Remove(s.path)
}

// NewToken builds a stored token from a session credential. When the
// credential is a JWT carrying an exp claim, the expiry is recorded so
// stale tokens are rejected locally.
func NewToken(credential string) *oauth2.Token {
	token := &oauth2.Token{AccessToken: credential}
	if exp, ok := jwtExpiry(credential); ok {
		token.Expiry = exp
	}
	return token
}

// expired reports whether the credential is a JWT whose exp claim has
// passed. Signature verification is the server's job; only the expiry is
// inspected here, as a fail-fast check before issuing a doomed request.
func expired(credential string) bool {
	exp, ok := jwtExpiry(credential)
	return ok && exp.Before(time.Now())
}

func jwtExpiry(credential string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(credential, claims); err != nil {
		// Opaque (non-JWT) credentials carry no local expiry.
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
