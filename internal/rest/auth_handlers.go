package rest

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/yanews/internal/newsportal"
)

const (
	sessionCookie = "sessionid"
	userKey       = "user"

	loginPath  = "/auth/login/"
	signUpPath = "/auth/signup/"
	logoutPath = "/auth/logout/"
)

// sessionMiddleware resolves the session cookie into the current user.
func (h *NewsHandler) sessionMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(sessionCookie)
		if err != nil || cookie.Value == "" {
			return next(c)
		}

		user, err := h.uc.UserBySession(c.Request().Context(), cookie.Value)
		if err != nil {
			return h.handleError(c, err, http.StatusInternalServerError, "internal error")
		}
		if user != nil {
			c.Set(userKey, user)
		}

		return next(c)
	}
}

func currentUser(c echo.Context) *newsportal.User {
	user, _ := c.Get(userKey).(*newsportal.User)
	return user
}

func redirectToLogin(c echo.Context) error {
	next := c.Request().URL.RequestURI()
	return c.Redirect(http.StatusFound, loginPath+"?next="+url.QueryEscape(next))
}

// safeNext allows only local absolute paths as redirect targets.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	return next
}

// SignUpPage handles GET /auth/signup/
// @Summary Sign up page
// @Tags auth
// @Produce json
// @Success 200 {object} rest.AccountContext
// @Router /auth/signup/ [get]
func (h *NewsHandler) SignUpPage(c echo.Context) error {
	return c.JSON(http.StatusOK, AccountContext{
		Form: Form{Action: signUpPath, Fields: []string{"username", "password"}},
		User: NewCurrentUser(currentUser(c)),
	})
}

// SignUp handles POST /auth/signup/
// @Summary Sign up
// @Description Registers a user and redirects to the login page
// @Tags auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 302
// @Failure 400,500 {object} map[string]string
// @Router /auth/signup/ [post]
func (h *NewsHandler) SignUp(c echo.Context) error {
	var req CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	form := &newsportal.SignUpForm{Username: req.Username, Password: req.Password}
	_, err := h.uc.SignUp(c.Request().Context(), form)
	switch {
	case errors.Is(err, newsportal.ErrInvalidForm), errors.Is(err, newsportal.ErrUserExists):
		return c.JSON(http.StatusBadRequest, AccountContext{
			Form: Form{Action: signUpPath, Fields: []string{"username", "password"}, Errors: form.Errors},
		})
	case err != nil:
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.Redirect(http.StatusFound, loginPath)
}

// LoginPage handles GET /auth/login/
// @Summary Login page
// @Tags auth
// @Produce json
// @Param next query string false "Redirect target after login"
// @Success 200 {object} rest.AccountContext
// @Router /auth/login/ [get]
func (h *NewsHandler) LoginPage(c echo.Context) error {
	return c.JSON(http.StatusOK, AccountContext{
		Form: Form{Action: loginPath, Fields: []string{"username", "password"}},
		Next: c.QueryParam("next"),
		User: NewCurrentUser(currentUser(c)),
	})
}

// Login handles POST /auth/login/
// @Summary Login
// @Description Opens a session, sets the session cookie and redirects to next
// @Tags auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Param next formData string false "Redirect target"
// @Success 302
// @Failure 400,500 {object} map[string]string
// @Router /auth/login/ [post]
func (h *NewsHandler) Login(c echo.Context) error {
	var req CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}
	if req.Next == "" {
		req.Next = c.QueryParam("next")
	}

	session, err := h.uc.Login(c.Request().Context(), newsportal.LoginForm{
		Username: req.Username,
		Password: req.Password,
	})
	if errors.Is(err, newsportal.ErrInvalidCredentials) {
		return c.JSON(http.StatusBadRequest, AccountContext{
			Form: Form{
				Action: loginPath,
				Fields: []string{"username", "password"},
				Errors: map[string][]string{"__all__": {"Пожалуйста, введите правильные имя пользователя и пароль."}},
			},
			Next: req.Next,
		})
	} else if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    session.ID,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	return c.Redirect(http.StatusFound, safeNext(req.Next))
}

// Logout handles POST /auth/logout/
// @Summary Logout
// @Description Closes the session and redirects to the home page
// @Tags auth
// @Success 302
// @Failure 500 {object} map[string]string
// @Router /auth/logout/ [post]
func (h *NewsHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(sessionCookie); err == nil {
		if err := h.uc.Logout(c.Request().Context(), cookie.Value); err != nil {
			return h.handleError(c, err, http.StatusInternalServerError, "internal error")
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	return c.Redirect(http.StatusFound, "/")
}
