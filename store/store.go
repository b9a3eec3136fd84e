// Package store persists the small bits of local state the app keeps
// between runs: the admin session token and the last-used contact details
// offered as wizard prefill. Booking drafts themselves are never persisted.
package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const appDir = "shootic-cli"

type sessionFile struct {
	Token   string    `json:"token"`
	SavedAt time.Time `json:"saved_at"`
}

// ContactDetails is the wizard prefill remembered after a successful
// booking submission.
type ContactDetails struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Pincode   string `json:"pincode"`
}

type contactFile struct {
	Contact ContactDetails `json:"contact"`
	SavedAt time.Time      `json:"saved_at"`
}

// SaveSession stores the admin bearer token for reuse across runs.
func SaveSession(token string) error {
	if token == "" {
		return errors.New("token is required")
	}
	path, err := configPath("session.json")
	if err != nil {
		return err
	}
	return writeJSON(path, sessionFile{Token: token, SavedAt: time.Now()})
}

// LoadSession returns the stored token. A token whose exp claim has passed
// is discarded and reported as absent, forcing a fresh login.
func LoadSession() (string, bool, error) {
	path, err := configPath("session.json")
	if err != nil {
		return "", false, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, err
	}

	var file sessionFile
	if err := json.Unmarshal(data, &file); err != nil {
		return "", false, errors.New("invalid session format")
	}
	if file.Token == "" {
		return "", false, nil
	}
	if tokenExpired(file.Token) {
		_ = ClearSession()
		return "", false, nil
	}
	return file.Token, true, nil
}

// ClearSession removes the stored token. Called on logout and on any 401.
func ClearSession() error {
	path, err := configPath("session.json")
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// tokenExpired reads the unverified exp claim. Verification belongs to the
// server; the client only avoids presenting a token it knows is dead.
// Opaque tokens without a readable exp are kept.
func tokenExpired(token string) bool {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

// RememberContact stores the contact details of a successful booking.
func RememberContact(contact ContactDetails) error {
	path, err := configPath("contact.json")
	if err != nil {
		return err
	}
	return writeJSON(path, contactFile{Contact: contact, SavedAt: time.Now()})
}

// LoadContact returns the remembered contact details, if any.
func LoadContact() (ContactDetails, bool, error) {
	path, err := configPath("contact.json")
	if err != nil {
		return ContactDetails{}, false, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ContactDetails{}, false, nil
		}
		return ContactDetails{}, false, err
	}

	var file contactFile
	if err := json.Unmarshal(data, &file); err != nil {
		return ContactDetails{}, false, errors.New("invalid contact format")
	}
	if file.Contact.Email == "" {
		return ContactDetails{}, false, nil
	}
	return file.Contact, true, nil
}

func writeJSON(path string, value any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}

func configPath(name string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDir, name), nil
}
