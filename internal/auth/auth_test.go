// internal/auth/auth_test.go
//
// Token round-trip, password hashing, and middleware tests.

package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenRoundTrip(t *testing.T) {
	ts := NewTokenService(testSecret, time.Hour)

	token, err := ts.Issue(42)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	claims, err := ts.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("uid = %d, want 42", claims.UserID)
	}
}

func TestTokenExpired(t *testing.T) {
	ts := NewTokenService(testSecret, -time.Minute)
	token, err := ts.Issue(7)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := ts.Verify(token); err == nil {
		t.Fatal("expired token should not verify")
	}
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := NewTokenService(testSecret, time.Hour).Issue(7)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	other := NewTokenService(strings.Repeat("x", 32), time.Hour)
	if _, err := other.Verify(token); err == nil {
		t.Fatal("token signed with a different secret should not verify")
	}
}

func TestPasswordHashAndVerify(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Fatalf("hash is not PHC-formatted: %q", hash)
	}

	ok, err := VerifyPassword("correct horse battery staple", hash)
	if err != nil || !ok {
		t.Fatalf("verify correct password: ok=%v err=%v", ok, err)
	}
	ok, err = VerifyPassword("wrong password", hash)
	if err != nil {
		t.Fatalf("verify wrong password: %v", err)
	}
	if ok {
		t.Fatal("wrong password verified")
	}
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	if _, err := VerifyPassword("pw", "not-a-phc-string"); err == nil {
		t.Fatal("malformed hash should error")
	}
}

func TestRequireAuth(t *testing.T) {
	ts := NewTokenService(testSecret, time.Hour)
	token, _ := ts.Issue(42)

	var gotID int64
	handler := RequireAuth(ts)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := UserID(r.Context())
		if !ok {
			t.Error("user id missing from context")
		}
		gotID = id
	}))

	// Valid token passes through.
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if gotID != 42 {
		t.Fatalf("uid = %d, want 42", gotID)
	}

	// Missing header is rejected.
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/me", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}

	// Garbage token is rejected.
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer nonsense")
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}
