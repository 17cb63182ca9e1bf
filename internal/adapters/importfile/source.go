// Package importfile reads import entries from JSON or YAML files shaped as
// a list of {text, author, date_created} objects.
package importfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen/quotes-service/internal/domain"
	"github.com/jsamuelsen/quotes-service/internal/ports"
)

// ErrUnsupportedFormat is returned for files that are not .json, .yaml or .yml.
var ErrUnsupportedFormat = errors.New("importfile: unsupported file format")

// dateLayouts are tried in order for date_created.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.DateOnly,
}

type record struct {
	Text        string `json:"text"         yaml:"text"`
	Author      string `json:"author"       yaml:"author"`
	DateCreated string `json:"date_created" yaml:"date_created"`
}

// Source is a ports.QuoteSource backed by a file on disk.
type Source struct {
	path string
}

var _ ports.QuoteSource = (*Source)(nil)

func New(path string) *Source {
	return &Source{path: path}
}

// Name returns the file name.
func (s *Source) Name() string {
	return "file:" + filepath.Base(s.path)
}

// Fetch reads and decodes the whole file.
func (s *Source) Fetch(ctx context.Context) ([]domain.ImportEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("importfile: read %s: %w", s.path, err)
	}

	return Decode(filepath.Ext(s.path), data)
}

// Decode parses data according to the file extension ext.
func Decode(ext string, data []byte) ([]domain.ImportEntry, error) {
	var (
		records []record
		err     error
	)

	switch strings.ToLower(ext) {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&records)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&records)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if err != nil {
		return nil, fmt.Errorf("importfile: decode: %w", err)
	}

	entries := make([]domain.ImportEntry, 0, len(records))
	problems := make(map[string]string)

	for i, r := range records {
		entry := domain.ImportEntry{Text: r.Text, Author: r.Author}

		if r.DateCreated != "" {
			created, err := parseDate(r.DateCreated)
			if err != nil {
				problems["entries["+strconv.Itoa(i)+"].date_created"] = "unrecognised date " + strconv.Quote(r.DateCreated)
				continue
			}
			entry.DateCreated = &created
		}

		entries = append(entries, entry)
	}

	if err := domain.NewFieldErrors(problems); err != nil {
		return nil, err
	}

	return entries, nil
}

func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognised date %q", value)
}
