package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultRole is assigned to every newly registered user, overriding any
// caller-supplied role.
const DefaultRole = "USER"

// User validation errors. All wrap ErrValidation so callers can classify
// them with errors.Is.
var (
	ErrEmptyUserID         = fmt.Errorf("%w: user ID cannot be empty", ErrValidation)
	ErrEmptyUsername       = fmt.Errorf("%w: username cannot be blank", ErrValidation)
	ErrEmptyEmail          = fmt.Errorf("%w: email cannot be blank", ErrValidation)
	ErrInvalidEmail        = fmt.Errorf("%w: email should be valid", ErrValidation)
	ErrEmptyPassword       = fmt.Errorf("%w: password cannot be blank", ErrValidation)
	ErrPasswordTooLong     = fmt.Errorf("%w: password must be at most 72 characters long", ErrValidation)
	ErrEmptyHashedPassword = fmt.Errorf("%w: hashed password cannot be empty", ErrValidation)
)

// User represents a registered account. Username and email are each
// globally unique.
type User struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	Password       string    `json:"-"` // Plaintext password, held only between input and hashing
	HashedPassword string    `json:"-"` // Never expose the password hash in JSON
	Roles          string    `json:"roles"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a User with a generated ID and creation timestamps.
// The plaintext password is carried as-is; the caller is responsible for
// hashing it before the user is persisted. Returns an error if validation
// fails.
func NewUser(username, email, password string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:        uuid.New(),
		Username:  username,
		Email:     email,
		Password:  password,
		Roles:     DefaultRole,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if isBlank(u.Username) {
		return ErrEmptyUsername
	}

	if isBlank(u.Email) {
		return ErrEmptyEmail
	}

	if !ValidEmail(u.Email) {
		return ErrInvalidEmail
	}

	if u.Password != "" {
		// bcrypt truncates input beyond 72 bytes
		if len(u.Password) > 72 {
			return ErrPasswordTooLong
		}
	} else if u.HashedPassword == "" {
		// Existing users loaded from the store carry only the hash.
		return ErrEmptyPassword
	}

	return nil
}

// ValidEmail performs basic validation of email shape: a local part,
// an @, and a domain containing an interior dot.
func ValidEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
