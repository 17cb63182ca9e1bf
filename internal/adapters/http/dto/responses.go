package dto

import (
	"time"

	"github.com/jsamuelsen/quotes-service/internal/domain"
)

// IndexResponse is the landing payload.
type IndexResponse struct {
	Message                  string `json:"message"`
	ShowRandomQuoteGenerator bool   `json:"showRandomQuoteGenerator"`
}

// RedirectResponse accompanies a 303 See Other.
type RedirectResponse struct {
	Redirect string `json:"redirect"`
	ID       uint64 `json:"id,omitempty"`
}

// AuthorResponse is an author as returned by the API.
type AuthorResponse struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Lastname    string    `json:"lastname"`
	FullName    string    `json:"fullName"`
	DateCreated time.Time `json:"dateCreated"`
}

// NewAuthorResponse converts a domain author.
func NewAuthorResponse(a *domain.Author) *AuthorResponse {
	if a == nil {
		return nil
	}

	return &AuthorResponse{
		ID:          a.ID,
		Name:        a.Name,
		Lastname:    a.Lastname,
		FullName:    a.FullName(),
		DateCreated: a.DateCreated,
	}
}

// QuoteResponse is a quote as returned by the API. Author is null when the
// quote has none or its author was deleted.
type QuoteResponse struct {
	ID          uint64          `json:"id"`
	Text        string          `json:"text"`
	Author      *AuthorResponse `json:"author"`
	Active      bool            `json:"active"`
	DateCreated time.Time       `json:"dateCreated"`
}

// NewQuoteResponse converts a domain quote.
func NewQuoteResponse(q *domain.Quote) *QuoteResponse {
	return &QuoteResponse{
		ID:          q.ID,
		Text:        q.Text,
		Author:      NewAuthorResponse(q.Author),
		Active:      q.Active,
		DateCreated: q.DateCreated,
	}
}

// NewQuoteResponses converts a slice of domain quotes.
func NewQuoteResponses(quotes []domain.Quote) []*QuoteResponse {
	out := make([]*QuoteResponse, 0, len(quotes))
	for i := range quotes {
		out = append(out, NewQuoteResponse(&quotes[i]))
	}

	return out
}

// QuoteListResponse is the search/list payload.
type QuoteListResponse struct {
	Query  string           `json:"q"`
	Quotes []*QuoteResponse `json:"quotes"`
}

// RandomQuoteResponse holds one quote, or NoQuotes when the store is empty.
type RandomQuoteResponse struct {
	Quote    *QuoteResponse `json:"quote"`
	NoQuotes bool           `json:"noQuotes,omitempty"`
}

// AuthorListResponse is the author list payload.
type AuthorListResponse struct {
	Authors []*AuthorResponse `json:"authors"`
}

// NewAuthorResponses converts a slice of domain authors.
func NewAuthorResponses(authors []domain.Author) []*AuthorResponse {
	out := make([]*AuthorResponse, 0, len(authors))
	for i := range authors {
		out = append(out, NewAuthorResponse(&authors[i]))
	}

	return out
}

// AuthorDetailResponse is an author with the quotes attributed to them.
type AuthorDetailResponse struct {
	*AuthorResponse
	Quotes []*QuoteResponse `json:"quotes"`
}

// AuthorChoice is one option of a quote form's author select.
type AuthorChoice struct {
	ID    uint64 `json:"id"`
	Label string `json:"label"`
}

// NewAuthorChoices lists authors as select options.
func NewAuthorChoices(authors []domain.Author) []AuthorChoice {
	out := make([]AuthorChoice, 0, len(authors))
	for i := range authors {
		out = append(out, AuthorChoice{ID: authors[i].ID, Label: authors[i].FullName()})
	}

	return out
}

// Form field lists, in display order.
var (
	QuoteFormFields  = []string{"text", "author", "active"}
	AuthorFormFields = []string{"name", "lastname"}
	SignupFormFields = []string{"username", "email", "dateOfBirth", "password", "passwordConfirm"}
	LoginFormFields  = []string{"username", "password"}
)

// FormResponse describes a form to render. Action is where to submit it.
type FormResponse struct {
	Action  string         `json:"action"`
	Fields  []string       `json:"fields"`
	Form    any            `json:"form"`
	Authors []AuthorChoice `json:"authors,omitempty"`
}

// DeleteConfirmResponse shows the record about to be deleted.
type DeleteConfirmResponse struct {
	Action string `json:"action"`
	Object any    `json:"object"`
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	Redirect  string    `json:"redirect"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// DashboardResponse is the signed-in user's profile.
type DashboardResponse struct {
	Username    string  `json:"username"`
	Email       string  `json:"email"`
	DateOfBirth *string `json:"dateOfBirth"`
	IsSuperuser bool    `json:"isSuperuser"`
}

// NewDashboardResponse converts a domain user.
func NewDashboardResponse(u *domain.User) *DashboardResponse {
	return &DashboardResponse{
		Username:    u.Username,
		Email:       u.Email,
		DateOfBirth: formatDate(u.DateOfBirth),
		IsSuperuser: u.IsSuperuser,
	}
}

// AdminQuoteRow is one line of the admin quote listing.
type AdminQuoteRow struct {
	ID          uint64    `json:"id"`
	DateCreated time.Time `json:"dateCreated"`
	Active      bool      `json:"active"`
}

// NewAdminQuoteRow converts a domain quote.
func NewAdminQuoteRow(q domain.Quote) AdminQuoteRow {
	return AdminQuoteRow{ID: q.ID, DateCreated: q.DateCreated, Active: q.Active}
}

// AdminAuthorRow is one line of the admin author listing.
type AdminAuthorRow struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
}

// NewAdminAuthorRow converts a domain author.
func NewAdminAuthorRow(a domain.Author) AdminAuthorRow {
	return AdminAuthorRow{ID: a.ID, Name: a.Name, Lastname: a.Lastname}
}

// AdminUserRow is one line of the admin user listing.
type AdminUserRow struct {
	ID          uint64  `json:"id"`
	Email       string  `json:"email"`
	Username    string  `json:"username"`
	DateOfBirth *string `json:"dateOfBirth"`
}

// NewAdminUserRow converts a domain user.
func NewAdminUserRow(u domain.User) AdminUserRow {
	return AdminUserRow{
		ID:          u.ID,
		Email:       u.Email,
		Username:    u.Username,
		DateOfBirth: formatDate(u.DateOfBirth),
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}

	s := t.Format(time.DateOnly)

	return &s
}
