package store

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func setTestConfigDir(t *testing.T) {
	t.Helper()
	root := t.TempDir()
	t.Setenv("HOME", root)
	t.Setenv("XDG_CONFIG_HOME", root)
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin",
		"exp": exp.Unix(),
	}).SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestSession_RoundTrip(t *testing.T) {
	setTestConfigDir(t)

	if _, ok, err := LoadSession(); err != nil || ok {
		t.Fatalf("expected empty session, got ok=%v err=%v", ok, err)
	}

	token := signedToken(t, time.Now().Add(time.Hour))
	if err := SaveSession(token); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	loaded, ok, err := LoadSession()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !ok || loaded != token {
		t.Fatalf("expected stored token back, got ok=%v token=%q", ok, loaded)
	}

	if err := ClearSession(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if _, ok, _ := LoadSession(); ok {
		t.Fatal("expected session to be cleared")
	}
}

func TestSession_ExpiredTokenDiscarded(t *testing.T) {
	setTestConfigDir(t)

	if err := SaveSession(signedToken(t, time.Now().Add(-time.Minute))); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if _, ok, err := LoadSession(); err != nil || ok {
		t.Fatalf("expected expired token to be discarded, got ok=%v err=%v", ok, err)
	}
	// The dead token must also be gone from disk.
	if _, ok, _ := LoadSession(); ok {
		t.Fatal("expected no session on second load")
	}
}

func TestSession_OpaqueTokenKept(t *testing.T) {
	setTestConfigDir(t)

	if err := SaveSession("not-a-jwt"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	loaded, ok, err := LoadSession()
	if err != nil || !ok || loaded != "not-a-jwt" {
		t.Fatalf("expected opaque token kept, got ok=%v token=%q err=%v", ok, loaded, err)
	}
}

func TestSaveSession_EmptyToken(t *testing.T) {
	setTestConfigDir(t)

	if err := SaveSession(""); err == nil {
		t.Fatal("expected error for empty token")
	}
}

func TestContact_RoundTrip(t *testing.T) {
	setTestConfigDir(t)

	if _, ok, err := LoadContact(); err != nil || ok {
		t.Fatalf("expected no remembered contact, got ok=%v err=%v", ok, err)
	}

	contact := ContactDetails{
		FirstName: "Asha",
		LastName:  "Rao",
		Email:     "asha@example.com",
		Phone:     "9876543210",
		Address:   "12 MG Road",
		City:      "Bengaluru",
		State:     "Karnataka",
		Pincode:   "560001",
	}
	if err := RememberContact(contact); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	loaded, ok, err := LoadContact()
	if err != nil || !ok {
		t.Fatalf("expected remembered contact, got ok=%v err=%v", ok, err)
	}
	if loaded != contact {
		t.Fatalf("unexpected contact: %+v", loaded)
	}
}
