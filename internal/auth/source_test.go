package auth_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"

	"taskcli/internal/auth"
	"taskcli/internal/service"
)

func tokenPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "token.json")
}

// mintJWT builds a signed token with the given expiry. The source never
// verifies signatures, so any key works.
func mintJWT(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestMissingFileIsAuthRequired(t *testing.T) {
	source := auth.NewFileSource(tokenPath(t))

	_, err := source.Token()
	if !errors.Is(err, service.ErrAuthRequired) {
		t.Errorf("expected ErrAuthRequired, got %v", err)
	}
}

func TestCorruptFileIsAuthRequired(t *testing.T) {
	path := tokenPath(t)
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	source := auth.NewFileSource(path)
	if _, err := source.Token(); !errors.Is(err, service.ErrAuthRequired) {
		t.Errorf("expected ErrAuthRequired, got %v", err)
	}
}

func TestEmptyAccessTokenIsAuthRequired(t *testing.T) {
	path := tokenPath(t)
	source := auth.NewFileSource(path)
	if err := source.Save(&oauth2.Token{}); err != nil {
		t.Fatal(err)
	}

	if _, err := source.Token(); !errors.Is(err, service.ErrAuthRequired) {
		t.Errorf("expected ErrAuthRequired, got %v", err)
	}
}

func TestExpiredJWTIsAuthRequired(t *testing.T) {
	path := tokenPath(t)
	source := auth.NewFileSource(path)

	credential := mintJWT(t, time.Now().Add(-time.Hour))
	if err := source.Save(auth.NewToken(credential)); err != nil {
		t.Fatal(err)
	}

	if _, err := source.Token(); !errors.Is(err, service.ErrAuthRequired) {
		t.Errorf("expected ErrAuthRequired for expired token, got %v", err)
	}
}

func TestValidJWTRoundTrips(t *testing.T) {
	path := tokenPath(t)
	source := auth.NewFileSource(path)

	credential := mintJWT(t, time.Now().Add(time.Hour))
	if err := source.Save(auth.NewToken(credential)); err != nil {
		t.Fatal(err)
	}

	token, err := source.Token()
	if err != nil {
		t.Fatalf("expected valid token, got %v", err)
	}
	if token.AccessToken != credential {
		t.Error("stored credential must round-trip unchanged")
	}
	if token.Expiry.IsZero() {
		t.Error("expiry must be recorded from the exp claim")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("token file must be 0600, got %v", info.Mode().Perm())
	}
}

func TestOpaqueCredentialHasNoLocalExpiry(t *testing.T) {
	path := tokenPath(t)
	source := auth.NewFileSource(path)

	if err := source.Save(auth.NewToken("not-a-jwt")); err != nil {
		t.Fatal(err)
	}

	token, err := source.Token()
	if err != nil {
		t.Fatalf("opaque credential must be accepted, got %v", err)
	}
	if !token.Expiry.IsZero() {
		t.Error("opaque credential must carry no expiry")
	}
}

func TestClearRemovesToken(t *testing.T) {
	path := tokenPath(t)
	source := auth.NewFileSource(path)

	if err := source.Save(auth.NewToken("some-token")); err != nil {
		t.Fatal(err)
	}
	if err := source.Clear(); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	if _, err := source.Token(); !errors.Is(err, service.ErrAuthRequired) {
		t.Errorf("expected ErrAuthRequired after clear, got %v", err)
	}
}

func TestFreshTokenIsReadPerCall(t *testing.T) {
	path := tokenPath(t)
	source := auth.NewFileSource(path)

	if err := source.Save(auth.NewToken("first")); err != nil {
		t.Fatal(err)
	}
	if tok, _ := source.Token(); tok.AccessToken != "first" {
		t.Fatalf("unexpected credential: %v", tok)
	}

	// A login in another process rewrites the file; the next call must
	// see the new credential.
	if err := source.Save(auth.NewToken("second")); err != nil {
		t.Fatal(err)
	}
	if tok, _ := source.Token(); tok.AccessToken != "second" {
		t.Error("source must re-read the file on every call")
	}
}
