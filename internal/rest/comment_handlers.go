package rest

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/yanews/internal/newsportal"
)

// EditComment handles GET /edit_comment/:id/
// @Summary Comment edit page
// @Description Only the author of the comment gets the page, others get 404
// @Tags comments
// @Produce json
// @Param id path int true "Comment ID"
// @Success 200 {object} rest.EditContext
// @Success 302
// @Failure 400,404,500 {object} map[string]string
// @Router /edit_comment/{id}/ [get]
func (h *NewsHandler) EditComment(c echo.Context) error {
	var req IDRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	user := currentUser(c)
	if user == nil {
		return redirectToLogin(c)
	}

	page, err := h.uc.EditPage(c.Request().Context(), req.ID, user)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	} else if page == nil {
		return h.handleError(c, nil, http.StatusNotFound, "comment not found")
	}

	return c.JSON(http.StatusOK, NewEditContext(page, user))
}

// UpdateComment handles POST /edit_comment/:id/
// @Summary Update comment
// @Tags comments
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path int true "Comment ID"
// @Param text formData string true "Comment text"
// @Success 302
// @Failure 400,404,500 {object} map[string]string
// @Router /edit_comment/{id}/ [post]
func (h *NewsHandler) UpdateComment(c echo.Context) error {
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

	form := newsportal.NewCommentForm(req.Text)
	comment, err := h.uc.UpdateComment(c.Request().Context(), id.ID, user, form)
	switch {
	case errors.Is(err, newsportal.ErrInvalidForm):
		page, err := h.uc.EditPage(c.Request().Context(), id.ID, user)
		if err != nil || page == nil {
			return h.handleError(c, err, http.StatusInternalServerError, "internal error")
		}
		page.Form = form
		return c.JSON(http.StatusBadRequest, NewEditContext(page, user))
	case err != nil:
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	case comment == nil:
		return h.handleError(c, nil, http.StatusNotFound, "comment not found")
	}

	return c.Redirect(http.StatusFound, newsURL(comment.NewsID)+"#comments")
}

// DeleteCommentPage handles GET /delete_comment/:id/
// @Summary Comment delete confirmation
// @Tags comments
// @Produce json
// @Param id path int true "Comment ID"
// @Success 200 {object} rest.DeleteContext
// @Success 302
// @Failure 400,404,500 {object} map[string]string
// @Router /delete_comment/{id}/ [get]
func (h *NewsHandler) DeleteCommentPage(c echo.Context) error {
	var req IDRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	user := currentUser(c)
	if user == nil {
		return redirectToLogin(c)
	}

	comment, err := h.uc.DeletePage(c.Request().Context(), req.ID, user)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	} else if comment == nil {
		return h.handleError(c, nil, http.StatusNotFound, "comment not found")
	}

	return c.JSON(http.StatusOK, DeleteContext{
		Comment: NewComment(*comment),
		User:    NewCurrentUser(user),
	})
}

// DeleteComment handles POST /delete_comment/:id/
// @Summary Delete comment
// @Tags comments
// @Param id path int true "Comment ID"
// @Success 302
// @Failure 400,404,500 {object} map[string]string
// @Router /delete_comment/{id}/ [post]
func (h *NewsHandler) DeleteComment(c echo.Context) error {
	var req IDRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	user := currentUser(c)
	if user == nil {
		return redirectToLogin(c)
	}

	comment, err := h.uc.DeleteComment(c.Request().Context(), req.ID, user)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	} else if comment == nil {
		return h.handleError(c, nil, http.StatusNotFound, "comment not found")
	}

	return c.Redirect(http.StatusFound, newsURL(comment.NewsID)+"#comments")
}
