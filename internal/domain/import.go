package domain

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// ImportEntry is one quote read from an import source.
// Author is matched to an existing author by name, or created.
type ImportEntry struct {
	Text        string     `json:"text"                   yaml:"text"`
	Author      string     `json:"author,omitempty"       yaml:"author,omitempty"`
	DateCreated *time.Time `json:"date_created,omitempty" yaml:"date_created,omitempty"`
}

// ImportSummary reports what an import replaced the catalog with.
type ImportSummary struct {
	Quotes         int
	Authors        int
	RemovedQuotes  int64
	RemovedAuthors int64
}

// ValidateImport checks every entry and reports problems keyed by position,
// e.g. "entries[3].text". Imported text is not held to the form length limit.
func ValidateImport(entries []ImportEntry) error {
	fields := make(map[string]string)

	for i, e := range entries {
		prefix := "entries[" + strconv.Itoa(i) + "]."

		if strings.TrimSpace(e.Text) == "" {
			fields[prefix+"text"] = MsgRequired
		}

		if utf8.RuneCountInString(strings.TrimSpace(e.Author)) > MaxAuthorNameLength {
			fields[prefix+"author"] = maxLengthMessage(MaxAuthorNameLength)
		}
	}

	return NewFieldErrors(fields)
}
