package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// MaxQuoteTextLength is the longest quote text accepted from a form.
const MaxQuoteTextLength = 200

// Quote is a quotation, optionally attributed to an Author.
// AuthorID is cleared when the referenced author is deleted; the quote survives.
type Quote struct {
	ID          uint64
	Text        string
	AuthorID    *uint64
	Active      bool
	DateCreated time.Time

	// Author is populated on reads when AuthorID is set.
	Author *Author
}

// QuoteFields is the closed set of fields a caller may submit for a quote.
type QuoteFields struct {
	Text     string
	AuthorID *uint64
	Active   bool
}

// Normalize trims surrounding whitespace from text fields.
func (f QuoteFields) Normalize() QuoteFields {
	f.Text = strings.TrimSpace(f.Text)
	return f
}

// Validate checks field-level constraints. It does not check that AuthorID
// refers to an existing author; that needs the store.
func (f QuoteFields) Validate() error {
	fields := make(map[string]string)

	switch {
	case strings.TrimSpace(f.Text) == "":
		fields["text"] = MsgRequired
	case utf8.RuneCountInString(f.Text) > MaxQuoteTextLength:
		fields["text"] = maxLengthMessage(MaxQuoteTextLength)
	}

	if f.AuthorID != nil && *f.AuthorID == 0 {
		fields["author"] = MsgInvalidAuthor
	}

	return NewFieldErrors(fields)
}

// Apply copies submitted fields onto the quote. ID and DateCreated are kept.
func (q *Quote) Apply(f QuoteFields) {
	q.Text = f.Text
	q.AuthorID = f.AuthorID
	q.Active = f.Active

	if q.Author != nil && (f.AuthorID == nil || q.Author.ID != *f.AuthorID) {
		q.Author = nil
	}
}

// Fields returns the quote's current values as submittable fields.
func (q *Quote) Fields() QuoteFields {
	return QuoteFields{
		Text:     q.Text,
		AuthorID: q.AuthorID,
		Active:   q.Active,
	}
}
