package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotes-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotes-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotes-service/internal/app"
)

// CookieConfig controls the session cookie.
type CookieConfig struct {
	Name   string
	Secure bool
}

// AccountHandler serves signup, login, logout and the dashboard.
type AccountHandler struct {
	accounts  *app.AccountService
	cookie    CookieConfig
	loginPath string
}

// NewAccountHandler creates a new account handler. loginPath is where
// signup sends new users.
func NewAccountHandler(accounts *app.AccountService, cookie CookieConfig, loginPath string) *AccountHandler {
	return &AccountHandler{
		accounts:  accounts,
		cookie:    cookie,
		loginPath: loginPath,
	}
}

// SignupForm handles GET /accounts/signup.
func (h *AccountHandler) SignupForm(c *gin.Context) {
	c.JSON(http.StatusOK, dto.FormResponse{
		Action: AccountsPath + "/signup",
		Fields: dto.SignupFormFields,
		Form:   (&dto.SignupForm{}).Echo(),
	})
}

// Signup handles POST /accounts/signup and sends the new user to login.
func (h *AccountHandler) Signup(c *gin.Context) {
	var form dto.SignupForm
	if !bind(c, &form) {
		return
	}

	fields, err := form.Fields()
	if err != nil {
		dto.HandleFormError(c, err, form.Echo())
		return
	}

	user, err := h.accounts.Signup(c.Request.Context(), fields)
	if err != nil {
		dto.HandleFormError(c, err, form.Echo())
		return
	}

	redirect(c, h.loginPath, user.ID)
}

// LoginForm handles GET /accounts/login, the target of login redirects.
func (h *AccountHandler) LoginForm(c *gin.Context) {
	c.JSON(http.StatusOK, dto.FormResponse{
		Action: h.loginPath,
		Fields: dto.LoginFormFields,
		Form:   gin.H{"username": "", "next": c.Query("next")},
	})
}

// Login handles POST /accounts/login. On success the token is set as the
// session cookie, returned in the body and the caller is sent to next.
func (h *AccountHandler) Login(c *gin.Context) {
	var form dto.LoginForm
	if !bind(c, &form) {
		return
	}

	if form.Next == "" {
		form.Next = c.Query("next")
	}

	session, err := h.accounts.Login(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	h.setCookie(c, session.Token, time.Until(session.ExpiresAt))

	next := safeNext(form.Next)
	c.Header("Location", next)
	c.JSON(http.StatusSeeOther, dto.LoginResponse{
		Redirect:  next,
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
	})
}

// Logout handles POST /accounts/logout.
func (h *AccountHandler) Logout(c *gin.Context) {
	h.setCookie(c, "", -time.Second)
	redirect(c, APIPrefix+"/", 0)
}

// Dashboard handles GET /accounts/dashboard. It must run behind RequireLogin.
func (h *AccountHandler) Dashboard(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		dto.RespondWithErrorCode(c, dto.ErrorCodeUnauthorized, "login required")
		return
	}

	c.JSON(http.StatusOK, dto.NewDashboardResponse(user))
}

// setCookie writes the session cookie. A negative ttl deletes it.
func (h *AccountHandler) setCookie(c *gin.Context, token string, ttl time.Duration) {
	maxAge := int(ttl.Seconds())
	if ttl < 0 {
		maxAge = -1
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, token, maxAge, "/", "", h.cookie.Secure, true)
}

// safeNext keeps post-login redirects on this site.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return DashboardPath
	}

	u, err := url.Parse(next)
	if err != nil || u.IsAbs() || u.Host != "" {
		return DashboardPath
	}

	return next
}

// RegisterAccountRoutes registers account routes on rg. loginRequired
// guards the dashboard.
func (h *AccountHandler) RegisterAccountRoutes(rg *gin.RouterGroup, loginRequired ...gin.HandlerFunc) {
	accounts := rg.Group("/accounts")
	accounts.GET("/signup", h.SignupForm)
	accounts.POST("/signup", h.Signup)
	accounts.GET("/login", h.LoginForm)
	accounts.POST("/login", h.Login)
	accounts.POST("/logout", h.Logout)
	accounts.GET("/dashboard", append(loginRequired, h.Dashboard)...)
}
