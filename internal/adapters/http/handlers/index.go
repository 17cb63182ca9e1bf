package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotes-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotes-service/internal/app"
)

const welcomeMessage = "Welcome to the quotes app"

// IndexHandler serves the landing payload.
type IndexHandler struct {
	quotes *app.QuoteService
}

// NewIndexHandler creates a new index handler.
func NewIndexHandler(quotes *app.QuoteService) *IndexHandler {
	return &IndexHandler{quotes: quotes}
}

// Index handles GET /. The random quote generator is offered only when
// there is something to draw from.
func (h *IndexHandler) Index(c *gin.Context) {
	hasQuotes, err := h.quotes.HasQuotes(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.IndexResponse{
		Message:                  welcomeMessage,
		ShowRandomQuoteGenerator: hasQuotes,
	})
}
