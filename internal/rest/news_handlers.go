package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/yanews/internal/newsportal"
)

type NewsHandler struct {
	uc           *newsportal.Manager
	log          *slog.Logger
	secureCookie bool
}

func NewNewsHandler(uc *newsportal.Manager, log *slog.Logger, secureCookie bool) *NewsHandler {
	return &NewsHandler{
		uc:           uc,
		log:          log,
		secureCookie: secureCookie,
	}
}

func (h *NewsHandler) handleError(c echo.Context, err error, statusCode int, message string) error {
	level := slog.LevelWarn
	if statusCode >= http.StatusInternalServerError {
		level = slog.LevelError
	}

	h.log.Log(c.Request().Context(), level, "handleError",
		"error", err, "statusCode", statusCode, "message", message, "path", c.Request().URL.Path)
	return c.JSON(statusCode, map[string]string{"error": message})
}

// Home handles GET /
// @Summary Home page
// @Description Returns at most NEWS_COUNT_ON_HOME_PAGE news sorted by date DESC
// @Tags news
// @Produce json
// @Success 200 {object} rest.HomeContext
// @Failure 500 {object} map[string]string
// @Router / [get]
func (h *NewsHandler) Home(c echo.Context) error {
	list, err := h.uc.HomePage(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, HomeContext{
		ObjectList: newsportal.Map(list, NewNews),
		User:       NewCurrentUser(currentUser(c)),
	})
}

// Detail handles GET /news/:id/
// @Summary News page
// @Description Returns the news with its comments sorted by creation time. The form key is present only for authenticated users
// @Tags news
// @Produce json
// @Param id path int true "News ID"
// @Success 200 {object} rest.DetailContext
// @Failure 400,404,500 {object} map[string]string
// @Router /news/{id}/ [get]
func (h *NewsHandler) Detail(c echo.Context) error {
	var req IDRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	user := currentUser(c)
	page, err := h.uc.DetailPage(c.Request().Context(), req.ID, user)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	} else if page == nil {
		return h.handleError(c, nil, http.StatusNotFound, "news not found")
	}

	return c.JSON(http.StatusOK, NewDetailContext(page, user))
}

// CreateComment handles POST /news/:id/
// @Summary Add comment
// @Description Adds a comment to the news. Anonymous users are redirected to the login page
// @Tags comments
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path int true "News ID"
// @Param text formData string true "Comment text"
// @Success 302
// @Failure 400,404,500 {object} map[string]string
// @Router /news/{id}/ [post]
func (h *NewsHandler) CreateComment(c echo.Context) error {
	var id IDRequest
	if err := echo.PathParamsBinder(c).Int("id", &id.ID).BindError(); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	var req CommentRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	user := currentUser(c)
	if user == nil {
		return redirectToLogin(c)
	}

	ctx := c.Request().Context()
	form := newsportal.NewCommentForm(req.Text)
	comment, err := h.uc.AddComment(ctx, id.ID, user, form)
	switch {
	case errors.Is(err, newsportal.ErrInvalidForm):
		page, err := h.uc.DetailPage(ctx, id.ID, user)
		if err != nil || page == nil {
			return h.handleError(c, err, http.StatusInternalServerError, "internal error")
		}
		page.Form = form
		return c.JSON(http.StatusBadRequest, NewDetailContext(page, user))
	case err != nil:
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	case comment == nil:
		return h.handleError(c, nil, http.StatusNotFound, "news not found")
	}

	return c.Redirect(http.StatusFound, newsURL(id.ID)+"#comments")
}
