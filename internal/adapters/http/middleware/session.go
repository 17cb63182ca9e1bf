package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotes-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotes-service/internal/domain"
	"github.com/jsamuelsen/quotes-service/internal/platform/logging"
)

// ContextKeyUser is the gin context key for the signed-in *domain.User.
const ContextKeyUser = "user"

// Authenticator resolves a session token to the active user it belongs to.
// It returns an Unauthorized error for bad, expired or revoked tokens.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

// Session returns middleware that identifies the caller from a bearer token
// or the session cookie. Anonymous requests and requests with an invalid
// token continue without a user; the Require* guards decide what that means.
func Session(auth Authenticator, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := SessionToken(c, cookieName)
		if token == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()

		user, err := auth.Authenticate(ctx, token)
		if err != nil {
			if !domain.IsUnauthorized(err) {
				dto.AbortWithError(c, err)
				return
			}

			logging.FromContext(ctx).Debug("ignoring session", slog.String("reason", err.Error()))
			c.Next()

			return
		}

		c.Set(ContextKeyUser, user)
		c.Request = c.Request.WithContext(logging.WithUser(ctx, user.ID, user.Username))

		c.Next()
	}
}

// SessionToken returns the bearer token, falling back to the session cookie.
func SessionToken(c *gin.Context, cookieName string) string {
	if token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); ok {
		return strings.TrimSpace(token)
	}

	if cookie, err := c.Cookie(cookieName); err == nil {
		return cookie
	}

	return ""
}

// CurrentUser returns the signed-in user, or nil for anonymous requests.
func CurrentUser(c *gin.Context) *domain.User {
	if v, ok := c.Get(ContextKeyUser); ok {
		if user, ok := v.(*domain.User); ok {
			return user
		}
	}

	return nil
}

// RequireLogin redirects anonymous callers to loginPath, carrying the
// original path and query in ?next=.
func RequireLogin(loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			redirectToLogin(c, loginPath)
			return
		}

		c.Next()
	}
}

// RequireSuperuser redirects anonymous callers like RequireLogin and
// rejects signed-in users without the superuser flag with 403.
func RequireSuperuser(loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)

		switch {
		case user == nil:
			redirectToLogin(c, loginPath)
		case !user.IsSuperuser:
			dto.AbortWithErrorCode(c, dto.ErrorCodeForbidden, "superuser privileges required")
		default:
			c.Next()
		}
	}
}

func redirectToLogin(c *gin.Context, loginPath string) {
	c.Redirect(http.StatusFound, loginPath+"?next="+url.QueryEscape(c.Request.URL.RequestURI()))
	c.Abort()
}
