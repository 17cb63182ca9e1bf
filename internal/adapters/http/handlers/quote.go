package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotes-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotes-service/internal/app"
)

// QuoteHandler serves the quote pages: search, random pick, detail and the
// create/update/delete forms.
type QuoteHandler struct {
	quotes  *app.QuoteService
	authors *app.AuthorService
}

// NewQuoteHandler creates a new quote handler. authors supplies the choices
// of the author select on quote forms.
func NewQuoteHandler(quotes *app.QuoteService, authors *app.AuthorService) *QuoteHandler {
	return &QuoteHandler{
		quotes:  quotes,
		authors: authors,
	}
}

// List handles GET /quotes?q=. A non-empty q filters by case-insensitive
// substring of the text.
func (h *QuoteHandler) List(c *gin.Context) {
	query := c.Query("q")

	quotes, err := h.quotes.List(c.Request.Context(), query)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.QuoteListResponse{
		Query:  query,
		Quotes: dto.NewQuoteResponses(quotes),
	})
}

// Random handles GET /quotes/random. An empty store is a normal 200 with
// noQuotes set.
func (h *QuoteHandler) Random(c *gin.Context) {
	quote, ok, err := h.quotes.Random(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	if !ok {
		c.JSON(http.StatusOK, dto.RandomQuoteResponse{NoQuotes: true})
		return
	}

	c.JSON(http.StatusOK, dto.RandomQuoteResponse{Quote: dto.NewQuoteResponse(quote)})
}

// Get handles GET /quotes/:id.
func (h *QuoteHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	quote, err := h.quotes.Get(c.Request.Context(), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}

// NewForm handles GET /quotes/new.
func (h *QuoteHandler) NewForm(c *gin.Context) {
	h.renderForm(c, QuotesPath, dto.QuoteForm{})
}

// Create handles POST /quotes.
func (h *QuoteHandler) Create(c *gin.Context) {
	var form dto.QuoteForm
	if !bind(c, &form) {
		return
	}

	fields, err := form.Fields()
	if err != nil {
		dto.HandleFormError(c, err, form)
		return
	}

	quote, err := h.quotes.Create(c.Request.Context(), fields)
	if err != nil {
		dto.HandleFormError(c, err, form)
		return
	}

	redirect(c, QuotesPath, quote.ID)
}

// EditForm handles GET /quotes/:id/edit.
func (h *QuoteHandler) EditForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	quote, err := h.quotes.Get(c.Request.Context(), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	h.renderForm(c, itemPath(QuotesPath, id), dto.NewQuoteForm(quote))
}

// Update handles POST and PUT /quotes/:id.
func (h *QuoteHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var form dto.QuoteForm
	if !bind(c, &form) {
		return
	}

	ctx := c.Request.Context()

	fields, err := form.Fields()
	if err == nil {
		_, err = h.quotes.Update(ctx, id, fields)
	} else if _, getErr := h.quotes.Get(ctx, id); getErr != nil {
		// A missing quote wins over a bad submission.
		err = getErr
	}

	if err != nil {
		dto.HandleFormError(c, err, form)
		return
	}

	redirect(c, QuotesPath, id)
}

// DeleteConfirm handles GET /quotes/:id/delete. Nothing is changed.
func (h *QuoteHandler) DeleteConfirm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	quote, err := h.quotes.Get(c.Request.Context(), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteConfirmResponse{
		Action: itemPath(QuotesPath, id) + "/delete",
		Object: dto.NewQuoteResponse(quote),
	})
}

// Delete handles POST /quotes/:id/delete and DELETE /quotes/:id.
func (h *QuoteHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.quotes.Delete(c.Request.Context(), id); err != nil {
		dto.HandleError(c, err)
		return
	}

	redirect(c, QuotesPath, 0)
}

func (h *QuoteHandler) renderForm(c *gin.Context, action string, form dto.QuoteForm) {
	authors, err := h.authors.List(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FormResponse{
		Action:  action,
		Fields:  dto.QuoteFormFields,
		Form:    form,
		Authors: dto.NewAuthorChoices(authors),
	})
}

// RegisterQuoteRoutes registers quote routes on rg. guard runs before every
// route that shows a form or changes data.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup, guard ...gin.HandlerFunc) {
	quotes := rg.Group("/quotes")
	quotes.GET("", h.List)
	quotes.GET("/random", h.Random)
	quotes.GET("/:id", h.Get)

	protected := quotes.Group("", guard...)
	protected.GET("/new", h.NewForm)
	protected.POST("", h.Create)
	protected.GET("/:id/edit", h.EditForm)
	protected.POST("/:id", h.Update)
	protected.PUT("/:id", h.Update)
	protected.GET("/:id/delete", h.DeleteConfirm)
	protected.POST("/:id/delete", h.Delete)
	protected.DELETE("/:id", h.Delete)
}
