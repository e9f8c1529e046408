package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestNewUser(t *testing.T) {
	user, err := NewUser("alice", "alice@example.com", "s3cret-password")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if user.Username != "alice" {
		t.Errorf("Expected username %q, got %q", "alice", user.Username)
	}

	if user.Roles != DefaultRole {
		t.Errorf("Expected role %q, got %q", DefaultRole, user.Roles)
	}

	if user.Password != "s3cret-password" {
		t.Error("Expected plaintext password to be carried for hashing")
	}

	if user.CreatedAt.IsZero() || user.UpdatedAt.IsZero() {
		t.Error("Expected non-zero timestamps")
	}

	// Invalid inputs
	if _, err := NewUser("", "alice@example.com", "pw"); !errors.Is(err, ErrEmptyUsername) {
		t.Errorf("Expected ErrEmptyUsername, got %v", err)
	}

	if _, err := NewUser("alice", "", "pw"); !errors.Is(err, ErrEmptyEmail) {
		t.Errorf("Expected ErrEmptyEmail, got %v", err)
	}

	if _, err := NewUser("alice", "not-an-email", "pw"); !errors.Is(err, ErrInvalidEmail) {
		t.Errorf("Expected ErrInvalidEmail, got %v", err)
	}

	if _, err := NewUser("alice", "alice@example.com", ""); !errors.Is(err, ErrEmptyPassword) {
		t.Errorf("Expected ErrEmptyPassword, got %v", err)
	}
}

func TestUserValidate(t *testing.T) {
	validUser := User{
		ID:             uuid.New(),
		Username:       "bob",
		Email:          "bob@example.com",
		HashedPassword: "$2a$10$somethinghashed",
	}

	if err := validUser.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	invalidUser := validUser
	invalidUser.ID = uuid.Nil
	if err := invalidUser.Validate(); !errors.Is(err, ErrEmptyUserID) {
		t.Errorf("Expected ErrEmptyUserID, got %v", err)
	}

	invalidUser = validUser
	invalidUser.HashedPassword = ""
	if err := invalidUser.Validate(); !errors.Is(err, ErrEmptyPassword) {
		t.Errorf("Expected ErrEmptyPassword, got %v", err)
	}

	// A plaintext password stands in for the hash during registration.
	invalidUser.Password = "raw-password"
	if err := invalidUser.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	tooLong := validUser
	tooLong.Password = string(make([]byte, 73))
	if err := tooLong.Validate(); !errors.Is(err, ErrPasswordTooLong) {
		t.Errorf("Expected ErrPasswordTooLong, got %v", err)
	}

	if !errors.Is(ErrInvalidEmail, ErrValidation) {
		t.Error("Expected user validation errors to wrap ErrValidation")
	}
}

func TestValidEmail(t *testing.T) {
	validEmails := []string{
		"user@example.com",
		"user.name@example.com",
		"user+tag@example.com",
		"user@sub.example.com",
	}

	invalidEmails := []string{
		"",
		"userexample.com",
		"user@",
		"@example.com",
		"user@.com",
		"user@example",
		"user@example.",
	}

	for _, email := range validEmails {
		if !ValidEmail(email) {
			t.Errorf("Expected email %s to be valid", email)
		}
	}

	for _, email := range invalidEmails {
		if ValidEmail(email) {
			t.Errorf("Expected email %s to be invalid", email)
		}
	}
}
