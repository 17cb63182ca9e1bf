package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"strconv"
	"strings"
	"time"

	"github.com/jsamuelsen/quotes-service/internal/domain"
)

// Messages for values that cannot be parsed at all.
const (
	MsgInvalidBoolean = "enter true or false"
	MsgInvalidDate    = "enter a valid date (YYYY-MM-DD)"
)

var errInvalidValue = errors.New("invalid value")

// FormValue is a submitted scalar kept in its textual form. It binds from
// urlencoded forms as-is and from JSON strings, numbers, booleans or null,
// so both encodings go through the same parsing.
type FormValue string

// UnmarshalJSON implements json.Unmarshaler.
func (v *FormValue) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	switch x := raw.(type) {
	case nil:
		*v = ""
	case string:
		*v = FormValue(x)
	case json.Number:
		*v = FormValue(x.String())
	case bool:
		*v = FormValue(strconv.FormatBool(x))
	default:
		return fmt.Errorf("%w: %s", errInvalidValue, data)
	}

	return nil
}

// Bool parses checkbox and JSON booleans. Blank is false.
func (v FormValue) Bool() (bool, error) {
	switch strings.ToLower(strings.TrimSpace(string(v))) {
	case "", "false", "0", "off", "no":
		return false, nil
	case "true", "1", "on", "yes":
		return true, nil
	default:
		return false, errInvalidValue
	}
}

// OptionalID parses a record id. Blank means no reference.
func (v FormValue) OptionalID() (*uint64, error) {
	s := strings.TrimSpace(string(v))
	if s == "" {
		return nil, nil //nolint:nilnil // blank is a valid "no author"
	}

	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return nil, errInvalidValue
	}

	return &id, nil
}

// OptionalDate parses a YYYY-MM-DD date. Blank means unset.
func (v FormValue) OptionalDate() (*time.Time, error) {
	s := strings.TrimSpace(string(v))
	if s == "" {
		return nil, nil //nolint:nilnil // blank is a valid "no date"
	}

	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil, errInvalidValue
	}

	return &t, nil
}

// QuoteForm is the quote create/update submission.
type QuoteForm struct {
	Text   string    `json:"text"   form:"text"`
	Author FormValue `json:"author" form:"author"`
	Active FormValue `json:"active" form:"active"`
}

// Fields converts the submission to domain fields. Unparseable values and
// field rule violations are reported together in one validation error.
func (f *QuoteForm) Fields() (domain.QuoteFields, error) {
	fields := domain.QuoteFields{Text: f.Text}.Normalize()
	errs := make(map[string]string)

	authorID, err := f.Author.OptionalID()
	if err != nil {
		errs["author"] = domain.MsgInvalidAuthor
	}
	fields.AuthorID = authorID

	active, err := f.Active.Bool()
	if err != nil {
		errs["active"] = MsgInvalidBoolean
	}
	fields.Active = active

	maps.Copy(errs, domain.FieldErrors(fields.Validate()))

	return fields, domain.NewFieldErrors(errs)
}

// NewQuoteForm pre-fills a form with the current values of q.
func NewQuoteForm(q *domain.Quote) QuoteForm {
	form := QuoteForm{
		Text:   q.Text,
		Active: FormValue(strconv.FormatBool(q.Active)),
	}
	if q.AuthorID != nil {
		form.Author = FormValue(strconv.FormatUint(*q.AuthorID, 10))
	}

	return form
}

// AuthorForm is the author create/update submission.
type AuthorForm struct {
	Name     string `json:"name"     form:"name"`
	Lastname string `json:"lastname" form:"lastname"`
}

// Fields converts the submission to normalized domain fields.
func (f *AuthorForm) Fields() domain.AuthorFields {
	return domain.AuthorFields{Name: f.Name, Lastname: f.Lastname}.Normalize()
}

// SignupForm is the account registration submission.
type SignupForm struct {
	Username        string    `json:"username"        form:"username"`
	Email           string    `json:"email"           form:"email"`
	DateOfBirth     FormValue `json:"dateOfBirth"     form:"dateOfBirth"`
	Password        string    `json:"password"        form:"password"`
	PasswordConfirm string    `json:"passwordConfirm" form:"passwordConfirm"`
}

// Fields converts the submission to domain fields.
func (f *SignupForm) Fields() (domain.SignupFields, error) {
	dob, err := f.DateOfBirth.OptionalDate()
	if err != nil {
		return domain.SignupFields{}, domain.NewValidationError("dateOfBirth", MsgInvalidDate)
	}

	return domain.SignupFields{
		Username:        f.Username,
		Email:           f.Email,
		DateOfBirth:     dob,
		Password:        f.Password,
		PasswordConfirm: f.PasswordConfirm,
	}, nil
}

// Echo returns the submitted values without the passwords.
func (f *SignupForm) Echo() map[string]string {
	return map[string]string{
		"username":    f.Username,
		"email":       f.Email,
		"dateOfBirth": string(f.DateOfBirth),
	}
}

// LoginForm is the password login submission. Next is where to go after
// a successful login.
type LoginForm struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
	Next     string `json:"next"     form:"next"`
}

// ActiveForm toggles a quote's active flag.
type ActiveForm struct {
	Active FormValue `json:"active" form:"active" validate:"required"`
}
