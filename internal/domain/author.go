package domain

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// MaxAuthorNameLength bounds both name and lastname.
const MaxAuthorNameLength = 50

// Field error messages shared by the validators in this package.
const (
	MsgRequired      = "this field is required"
	MsgInvalidAuthor = "select a valid author"
)

// Author is a person quotes can be attributed to. Authors do not own quotes.
type Author struct {
	ID          uint64
	Name        string
	Lastname    string
	DateCreated time.Time
}

// FullName joins name and lastname, omitting an empty lastname.
func (a *Author) FullName() string {
	if a.Lastname == "" {
		return a.Name
	}

	return a.Name + " " + a.Lastname
}

// AuthorFields is the closed set of fields a caller may submit for an author.
type AuthorFields struct {
	Name     string
	Lastname string
}

// Normalize trims surrounding whitespace from every field.
func (f AuthorFields) Normalize() AuthorFields {
	f.Name = strings.TrimSpace(f.Name)
	f.Lastname = strings.TrimSpace(f.Lastname)

	return f
}

// Validate checks field-level constraints.
func (f AuthorFields) Validate() error {
	fields := make(map[string]string)

	switch {
	case strings.TrimSpace(f.Name) == "":
		fields["name"] = MsgRequired
	case utf8.RuneCountInString(f.Name) > MaxAuthorNameLength:
		fields["name"] = maxLengthMessage(MaxAuthorNameLength)
	}

	if utf8.RuneCountInString(f.Lastname) > MaxAuthorNameLength {
		fields["lastname"] = maxLengthMessage(MaxAuthorNameLength)
	}

	return NewFieldErrors(fields)
}

// Apply copies submitted fields onto the author. ID and DateCreated are kept.
func (a *Author) Apply(f AuthorFields) {
	a.Name = f.Name
	a.Lastname = f.Lastname
}

// Fields returns the author's current values as submittable fields.
func (a *Author) Fields() AuthorFields {
	return AuthorFields{Name: a.Name, Lastname: a.Lastname}
}

func maxLengthMessage(n int) string {
	return "must be at most " + strconv.Itoa(n) + " characters"
}
