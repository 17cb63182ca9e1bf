package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotes-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotes-service/internal/app"
)

// AuthorHandler serves the author pages.
type AuthorHandler struct {
	authors *app.AuthorService
}

// NewAuthorHandler creates a new author handler.
func NewAuthorHandler(authors *app.AuthorService) *AuthorHandler {
	return &AuthorHandler{authors: authors}
}

// List handles GET /authors.
func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.authors.List(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthorListResponse{Authors: dto.NewAuthorResponses(authors)})
}

// Get handles GET /authors/:id, including the author's quotes.
func (h *AuthorHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	detail, err := h.authors.Detail(c.Request.Context(), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthorDetailResponse{
		AuthorResponse: dto.NewAuthorResponse(detail.Author),
		Quotes:         dto.NewQuoteResponses(detail.Quotes),
	})
}

// NewForm handles GET /authors/new.
func (h *AuthorHandler) NewForm(c *gin.Context) {
	c.JSON(http.StatusOK, dto.FormResponse{
		Action: AuthorsPath,
		Fields: dto.AuthorFormFields,
		Form:   dto.AuthorForm{},
	})
}

// Create handles POST /authors.
func (h *AuthorHandler) Create(c *gin.Context) {
	var form dto.AuthorForm
	if !bind(c, &form) {
		return
	}

	author, err := h.authors.Create(c.Request.Context(), form.Fields())
	if err != nil {
		dto.HandleFormError(c, err, form)
		return
	}

	redirect(c, AuthorsPath, author.ID)
}

// EditForm handles GET /authors/:id/edit.
func (h *AuthorHandler) EditForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	author, err := h.authors.Get(c.Request.Context(), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FormResponse{
		Action: itemPath(AuthorsPath, id),
		Fields: dto.AuthorFormFields,
		Form:   dto.AuthorForm{Name: author.Name, Lastname: author.Lastname},
	})
}

// Update handles POST and PUT /authors/:id.
func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var form dto.AuthorForm
	if !bind(c, &form) {
		return
	}

	if _, err := h.authors.Update(c.Request.Context(), id, form.Fields()); err != nil {
		dto.HandleFormError(c, err, form)
		return
	}

	redirect(c, AuthorsPath, id)
}

// DeleteConfirm handles GET /authors/:id/delete.
func (h *AuthorHandler) DeleteConfirm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	author, err := h.authors.Get(c.Request.Context(), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteConfirmResponse{
		Action: itemPath(AuthorsPath, id) + "/delete",
		Object: dto.NewAuthorResponse(author),
	})
}

// Delete handles POST /authors/:id/delete and DELETE /authors/:id. The
// author's quotes are kept with their author cleared.
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.authors.Delete(c.Request.Context(), id); err != nil {
		dto.HandleError(c, err)
		return
	}

	redirect(c, AuthorsPath, 0)
}

// RegisterAuthorRoutes registers author routes on rg. guard runs before
// every route that shows a form or changes data.
func (h *AuthorHandler) RegisterAuthorRoutes(rg *gin.RouterGroup, guard ...gin.HandlerFunc) {
	authors := rg.Group("/authors")
	authors.GET("", h.List)
	authors.GET("/:id", h.Get)

	protected := authors.Group("", guard...)
	protected.GET("/new", h.NewForm)
	protected.POST("", h.Create)
	protected.GET("/:id/edit", h.EditForm)
	protected.POST("/:id", h.Update)
	protected.PUT("/:id", h.Update)
	protected.GET("/:id/delete", h.DeleteConfirm)
	protected.POST("/:id/delete", h.Delete)
	protected.DELETE("/:id", h.Delete)
}
