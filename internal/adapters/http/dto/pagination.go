package dto

import (
	"encoding/base64"
	"encoding/json"
	"errors"
)

// DefaultLimit is the default number of items per page.
const DefaultLimit = 20

// MaxLimit is the maximum allowed items per page.
const MaxLimit = 100

// ErrInvalidCursor is returned when cursor decoding fails.
var ErrInvalidCursor = errors.New("invalid cursor")

// PaginationRequest represents pagination parameters from the request.
type PaginationRequest struct {
	// Cursor is an opaque string from a previous response's NextCursor.
	Cursor string `form:"cursor" json:"cursor"`

	// Limit is the maximum number of items to return (1-100, default 20).
	Limit int `form:"limit" json:"limit" validate:"omitempty,gte=1,lte=100"`
}

// GetLimit returns the limit with defaults applied.
func (p *PaginationRequest) GetLimit() int {
	if p.Limit <= 0 {
		return DefaultLimit
	}

	if p.Limit > MaxLimit {
		return MaxLimit
	}

	return p.Limit
}

// AfterID returns the id the next page starts after. An empty cursor is the
// first page and yields 0.
func (p *PaginationRequest) AfterID() (uint64, error) {
	if p.Cursor == "" {
		return 0, nil
	}

	return DecodeCursor(p.Cursor)
}

// PaginatedResponse is a generic paginated response structure.
type PaginatedResponse[T any] struct {
	Items []T `json:"items"`

	// NextCursor is empty on the last page.
	NextCursor string `json:"nextCursor,omitempty"`

	HasMore bool `json:"hasMore"`
}

// NewPaginatedResponse builds a page from items fetched with limit+1 so the
// extra row signals another page. idOf extracts the cursor position and conv
// maps each kept item to its response shape.
func NewPaginatedResponse[T, R any](items []T, limit int, idOf func(T) uint64, conv func(T) R) *PaginatedResponse[R] {
	hasMore := len(items) > limit
	if hasMore {
		items = items[:limit]
	}

	resp := &PaginatedResponse[R]{
		Items:   make([]R, 0, len(items)),
		HasMore: hasMore,
	}
	for _, item := range items {
		resp.Items = append(resp.Items, conv(item))
	}

	if hasMore && len(items) > 0 {
		resp.NextCursor = EncodeCursor(idOf(items[len(items)-1]))
	}

	return resp
}

// cursorData is the JSON document behind an opaque cursor.
type cursorData struct {
	ID uint64 `json:"id"`
}

// EncodeCursor encodes the last seen id to an opaque cursor.
func EncodeCursor(id uint64) string {
	jsonBytes, err := json.Marshal(cursorData{ID: id})
	if err != nil {
		return ""
	}

	return base64.URLEncoding.EncodeToString(jsonBytes)
}

// DecodeCursor decodes a cursor produced by EncodeCursor.
func DecodeCursor(encoded string) (uint64, error) {
	jsonBytes, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return 0, ErrInvalidCursor
	}

	var data cursorData
	if err := json.Unmarshal(jsonBytes, &data); err != nil || data.ID == 0 {
		return 0, ErrInvalidCursor
	}

	return data.ID, nil
}
