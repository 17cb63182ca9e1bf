package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotes-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotes-service/internal/app"
	"github.com/jsamuelsen/quotes-service/internal/domain"
)

// AdminHandler serves the superuser listings.
type AdminHandler struct {
	quotes   *app.QuoteService
	authors  *app.AuthorService
	accounts *app.AccountService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(quotes *app.QuoteService, authors *app.AuthorService, accounts *app.AccountService) *AdminHandler {
	return &AdminHandler{
		quotes:   quotes,
		authors:  authors,
		accounts: accounts,
	}
}

// Quotes handles GET /admin/quotes?cursor=&limit=.
func (h *AdminHandler) Quotes(c *gin.Context) {
	afterID, limit, ok := pageParams(c)
	if !ok {
		return
	}

	quotes, err := h.quotes.Page(c.Request.Context(), afterID, limit+1)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPaginatedResponse(quotes, limit,
		func(q domain.Quote) uint64 { return q.ID }, dto.NewAdminQuoteRow))
}

// SetQuoteActive handles PATCH /admin/quotes/:id.
func (h *AdminHandler) SetQuoteActive(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var form dto.ActiveForm
	if !bind(c, &form) {
		return
	}

	active, err := form.Active.Bool()
	if err != nil {
		dto.HandleFormError(c, domain.NewValidationError("active", dto.MsgInvalidBoolean), form)
		return
	}

	quote, err := h.quotes.SetActive(c.Request.Context(), id, active)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAdminQuoteRow(*quote))
}

// Authors handles GET /admin/authors?cursor=&limit=.
func (h *AdminHandler) Authors(c *gin.Context) {
	afterID, limit, ok := pageParams(c)
	if !ok {
		return
	}

	authors, err := h.authors.Page(c.Request.Context(), afterID, limit+1)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPaginatedResponse(authors, limit,
		func(a domain.Author) uint64 { return a.ID }, dto.NewAdminAuthorRow))
}

// Users handles GET /admin/users?cursor=&limit=.
func (h *AdminHandler) Users(c *gin.Context) {
	afterID, limit, ok := pageParams(c)
	if !ok {
		return
	}

	users, err := h.accounts.Page(c.Request.Context(), afterID, limit+1)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPaginatedResponse(users, limit,
		func(u domain.User) uint64 { return u.ID }, dto.NewAdminUserRow))
}

// pageParams reads cursor and limit, answering 400 itself when invalid.
func pageParams(c *gin.Context) (afterID uint64, limit int, ok bool) {
	var p dto.PaginationRequest

	if err := dto.BindQueryAndValidate(c, &p); err != nil {
		if errors.Is(err, dto.ErrBinding) {
			dto.RespondWithErrorCode(c, dto.ErrorCodeBadRequest, "malformed query")
		} else {
			dto.HandleError(c, err)
		}

		return 0, 0, false
	}

	afterID, err := p.AfterID()
	if err != nil {
		dto.HandleError(c, domain.NewValidationError("cursor", err.Error()))
		return 0, 0, false
	}

	return afterID, p.GetLimit(), true
}

// RegisterAdminRoutes registers admin routes on rg behind guard.
func (h *AdminHandler) RegisterAdminRoutes(rg *gin.RouterGroup, guard ...gin.HandlerFunc) {
	admin := rg.Group("/admin", guard...)
	admin.GET("/quotes", h.Quotes)
	admin.PATCH("/quotes/:id", h.SetQuoteActive)
	admin.GET("/authors", h.Authors)
	admin.GET("/users", h.Users)
}
