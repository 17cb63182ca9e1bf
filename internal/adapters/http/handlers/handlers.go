package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotes-service/internal/adapters/http/dto"
)

// Route prefixes. Redirects point at these paths.
const (
	APIPrefix    = "/api/v1"
	QuotesPath   = APIPrefix + "/quotes"
	AuthorsPath  = APIPrefix + "/authors"
	AccountsPath = APIPrefix + "/accounts"
	AdminPath    = APIPrefix + "/admin"

	DashboardPath = AccountsPath + "/dashboard"
)

// pathID parses the :id route parameter. An id that cannot name a record
// gets the same 404 as a missing one.
func pathID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		dto.RespondWithErrorCode(c, dto.ErrorCodeNotFound, "no record matches the given id")
		return 0, false
	}

	return id, true
}

// bind binds the request body into v, answering 400 itself on failure.
func bind(c *gin.Context, v any) bool {
	err := dto.BindAndValidate(c, v)
	switch {
	case err == nil:
		return true
	case errors.Is(err, dto.ErrBinding):
		dto.RespondWithErrorCode(c, dto.ErrorCodeBadRequest, "malformed request body")
	default:
		dto.HandleError(c, err)
	}

	return false
}

// redirect answers 303 See Other to location.
func redirect(c *gin.Context, location string, id uint64) {
	c.Header("Location", location)
	c.JSON(http.StatusSeeOther, dto.RedirectResponse{Redirect: location, ID: id})
}

func itemPath(base string, id uint64) string {
	return base + "/" + strconv.FormatUint(id, 10)
}
