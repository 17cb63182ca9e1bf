package domain

import (
	"net/mail"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// Account field limits.
const (
	MaxUsernameLength = 150
	MinPasswordLength = 8
)

var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

// User is an account that can sign in. Superusers may mutate quotes and authors.
type User struct {
	ID           uint64
	Username     string
	Email        string
	DateOfBirth  *time.Time
	PasswordHash string
	IsSuperuser  bool
	IsActive     bool
	DateJoined   time.Time
	LastLogin    *time.Time
}

// SignupFields is what a visitor submits to create an account.
type SignupFields struct {
	Username        string
	Email           string
	DateOfBirth     *time.Time
	Password        string
	PasswordConfirm string
}

// Normalize trims whitespace from identity fields. Passwords are left as typed.
func (f SignupFields) Normalize() SignupFields {
	f.Username = strings.TrimSpace(f.Username)
	f.Email = strings.TrimSpace(f.Email)

	return f
}

// Validate checks field-level constraints. Username uniqueness needs the store.
func (f SignupFields) Validate() error {
	fields := make(map[string]string)

	switch {
	case f.Username == "":
		fields["username"] = MsgRequired
	case utf8.RuneCountInString(f.Username) > MaxUsernameLength:
		fields["username"] = maxLengthMessage(MaxUsernameLength)
	case !usernamePattern.MatchString(f.Username):
		fields["username"] = "may contain only letters, digits and @/./+/-/_"
	}

	if f.Email != "" {
		if addr, err := mail.ParseAddress(f.Email); err != nil || addr.Address != f.Email {
			fields["email"] = "enter a valid email address"
		}
	}

	switch {
	case f.Password == "":
		fields["password"] = MsgRequired
	case utf8.RuneCountInString(f.Password) < MinPasswordLength:
		fields["password"] = "must be at least 8 characters"
	case f.Password != f.PasswordConfirm:
		fields["passwordConfirm"] = "the two password fields didn't match"
	}

	if f.DateOfBirth != nil && f.DateOfBirth.After(time.Now()) {
		fields["dateOfBirth"] = "must not be in the future"
	}

	return NewFieldErrors(fields)
}
