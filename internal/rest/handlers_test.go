package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/yanews/internal/db"
	"github.com/daniilsolovey/yanews/internal/newsportal"
)

const (
	authorSession = "author-session"
	readerSession = "reader-session"
	csrfToken     = "test-csrf-token"
)

type testServer struct {
	e       *echo.Echo
	store   *db.MemoryRepository
	manager *newsportal.Manager
	td      *db.TestData
}

func newTestServer(t *testing.T, newsCount, commentCount int) *testServer {
	t.Helper()
	ctx := context.Background()

	store := db.NewMemoryRepository()
	td, err := db.LoadTestData(ctx, store, newsCount, commentCount)
	require.NoError(t, err)

	expires := time.Now().Add(time.Hour)
	require.NoError(t, store.AddSession(ctx, &db.Session{ID: authorSession, UserID: td.Author.ID, ExpiresAt: expires}))
	require.NoError(t, store.AddSession(ctx, &db.Session{ID: readerSession, UserID: td.Reader.ID, ExpiresAt: expires}))

	manager := newsportal.NewNewsManager(store, newsportal.Config{HomePageCount: 10})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &testServer{
		e:       NewNewsHandler(manager, logger, false).RegisterRoutes(),
		store:   store,
		manager: manager,
		td:      td,
	}
}

// do sends a request with a valid csrf cookie and header pair on unsafe methods.
func (s *testServer) do(method, target, session string, form url.Values) *httptest.ResponseRecorder {
	req := s.newRequest(method, target, session, form)
	if method != http.MethodGet {
		req.AddCookie(&http.Cookie{Name: csrfCookie, Value: csrfToken})
		req.Header.Set(csrfHeader, csrfToken)
	}

	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) newRequest(method, target, session string, form url.Values) *http.Request {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	if session != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookie, Value: session})
	}

	return req
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHome(t *testing.T) {
	s := newTestServer(t, 15, 3)

	rec := s.do(http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HomeContext
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.ObjectList, 10)
	for i := 1; i < len(resp.ObjectList); i++ {
		assert.False(t, resp.ObjectList[i].Date.After(resp.ObjectList[i-1].Date))
	}
	assert.Equal(t, s.td.Commented.ID, resp.ObjectList[0].NewsID)
	assert.Equal(t, 3, resp.ObjectList[0].CommentCount)
	assert.Nil(t, resp.User)

	t.Run("Authenticated", func(t *testing.T) {
		body := decodeBody(t, s.do(http.MethodGet, "/", readerSession, nil))
		assert.Contains(t, body, "user")
	})

	t.Run("UnknownSession", func(t *testing.T) {
		body := decodeBody(t, s.do(http.MethodGet, "/", "expired", nil))
		assert.NotContains(t, body, "user")
	})
}

func TestDetail(t *testing.T) {
	s := newTestServer(t, 2, 5)
	target := newsURL(s.td.Commented.ID)

	t.Run("AnonymousHasNoForm", func(t *testing.T) {
		rec := s.do(http.MethodGet, target, "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		assert.NotContains(t, body, "form")
		assert.Contains(t, body, "news")
	})

	t.Run("CommentsInChronologicalOrder", func(t *testing.T) {
		rec := s.do(http.MethodGet, target, "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp DetailContext
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Comments, 5)
		for i := 1; i < len(resp.Comments); i++ {
			assert.False(t, resp.Comments[i].Created.Before(resp.Comments[i-1].Created))
		}
		assert.Equal(t, "author", resp.Comments[0].Author.Username)
	})

	t.Run("AuthenticatedHasForm", func(t *testing.T) {
		rec := s.do(http.MethodGet, target, readerSession, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp DetailContext
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotNil(t, resp.Form)
		assert.Equal(t, target, resp.Form.Action)
		assert.Equal(t, []string{"text"}, resp.Form.Fields)
	})

	t.Run("MissingNews", func(t *testing.T) {
		rec := s.do(http.MethodGet, "/news/100500/", "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("InvalidID", func(t *testing.T) {
		rec := s.do(http.MethodGet, "/news/abc/", "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCreateComment(t *testing.T) {
	s := newTestServer(t, 1, 0)
	newsID := s.td.Commented.ID
	target := newsURL(newsID)

	t.Run("AnonymousRedirectsToLogin", func(t *testing.T) {
		rec := s.do(http.MethodPost, target, "", url.Values{"text": {"hello"}})
		require.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, loginPath+"?next="+url.QueryEscape(target), rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("BadWords", func(t *testing.T) {
		rec := s.do(http.MethodPost, target, readerSession, url.Values{"text": {"ну ты и " + newsportal.BadWords[0]}})
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp DetailContext
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotNil(t, resp.Form)
		assert.Equal(t, []string{newsportal.BadWordsWarning}, resp.Form.Errors["text"])
		assert.Empty(t, resp.Comments)
	})

	t.Run("MissingNews", func(t *testing.T) {
		rec := s.do(http.MethodPost, "/news/100500/", readerSession, url.Values{"text": {"hello"}})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Success", func(t *testing.T) {
		rec := s.do(http.MethodPost, target, readerSession, url.Values{"text": {"Отличная новость"}})
		require.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, target+"#comments", rec.Header().Get(echo.HeaderLocation))

		comments, err := s.manager.Comments(context.Background(), newsID)
		require.NoError(t, err)
		require.Len(t, comments, 1)
		assert.Equal(t, "Отличная новость", comments[0].Text)
		assert.Equal(t, s.td.Reader.ID, comments[0].AuthorID)
	})
}

func TestEditComment(t *testing.T) {
	s := newTestServer(t, 1, 1)
	comment := s.td.Comments[0]
	target := editCommentURL(comment.ID)

	t.Run("AnonymousRedirectsToLogin", func(t *testing.T) {
		rec := s.do(http.MethodGet, target, "", nil)
		require.Equal(t, http.StatusFound, rec.Code)
		assert.True(t, strings.HasPrefix(rec.Header().Get(echo.HeaderLocation), loginPath))
	})

	t.Run("NotAuthor", func(t *testing.T) {
		rec := s.do(http.MethodGet, target, readerSession, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("MissingComment", func(t *testing.T) {
		rec := s.do(http.MethodGet, editCommentURL(100500), authorSession, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Author", func(t *testing.T) {
		rec := s.do(http.MethodGet, target, authorSession, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp EditContext
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotNil(t, resp.Form)
		assert.Equal(t, comment.Text, resp.Form.Text)
		assert.Equal(t, target, resp.Form.Action)
	})

	t.Run("NotAuthorCannotUpdate", func(t *testing.T) {
		rec := s.do(http.MethodPost, target, readerSession, url.Values{"text": {"hacked"}})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("EmptyText", func(t *testing.T) {
		rec := s.do(http.MethodPost, target, authorSession, url.Values{"text": {""}})
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp EditContext
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotNil(t, resp.Form)
		assert.NotEmpty(t, resp.Form.Errors["text"])
	})

	t.Run("AuthorUpdates", func(t *testing.T) {
		rec := s.do(http.MethodPost, target, authorSession, url.Values{"text": {"Исправленный текст"}})
		require.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, newsURL(comment.NewsID)+"#comments", rec.Header().Get(echo.HeaderLocation))

		comments, err := s.manager.Comments(context.Background(), comment.NewsID)
		require.NoError(t, err)
		require.Len(t, comments, 1)
		assert.Equal(t, "Исправленный текст", comments[0].Text)
	})
}

func TestDeleteComment(t *testing.T) {
	s := newTestServer(t, 1, 2)
	comment := s.td.Comments[0]
	target := deleteCommentURL(comment.ID)

	t.Run("AnonymousRedirectsToLogin", func(t *testing.T) {
		rec := s.do(http.MethodPost, target, "", nil)
		assert.Equal(t, http.StatusFound, rec.Code)
	})

	t.Run("NotAuthorPage", func(t *testing.T) {
		rec := s.do(http.MethodGet, target, readerSession, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("AuthorPage", func(t *testing.T) {
		rec := s.do(http.MethodGet, target, authorSession, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp DeleteContext
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, comment.ID, resp.Comment.CommentID)
	})

	t.Run("NotAuthorCannotDelete", func(t *testing.T) {
		rec := s.do(http.MethodPost, target, readerSession, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("AuthorDeletes", func(t *testing.T) {
		rec := s.do(http.MethodPost, target, authorSession, nil)
		require.Equal(t, http.StatusFound, rec.Code)

		comments, err := s.manager.Comments(context.Background(), comment.NewsID)
		require.NoError(t, err)
		assert.Equal(t, []int{s.td.Comments[1].ID}, comments.IDs())

		rec = s.do(http.MethodPost, target, authorSession, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAccounts(t *testing.T) {
	s := newTestServer(t, 1, 0)
	credentials := url.Values{"username": {"lev"}, "password": {"war-and-peace"}}

	t.Run("SignUp", func(t *testing.T) {
		rec := s.do(http.MethodPost, signUpPath, "", credentials)
		require.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, loginPath, rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("DuplicateSignUp", func(t *testing.T) {
		rec := s.do(http.MethodPost, signUpPath, "", credentials)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp AccountContext
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Form.Errors["username"])
	})

	t.Run("WrongPassword", func(t *testing.T) {
		rec := s.do(http.MethodPost, loginPath, "", url.Values{"username": {"lev"}, "password": {"anna-karenina"}})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Nil(t, findCookie(rec, sessionCookie))
	})

	t.Run("LoginAndLogout", func(t *testing.T) {
		form := url.Values{"username": {"lev"}, "password": {"war-and-peace"}, "next": {newsURL(s.td.Commented.ID)}}
		rec := s.do(http.MethodPost, loginPath, "", form)
		require.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, newsURL(s.td.Commented.ID), rec.Header().Get(echo.HeaderLocation))

		session := findCookie(rec, sessionCookie)
		require.NotNil(t, session)
		assert.True(t, session.HttpOnly)

		var resp HomeContext
		require.NoError(t, json.Unmarshal(s.do(http.MethodGet, "/", session.Value, nil).Body.Bytes(), &resp))
		require.NotNil(t, resp.User)
		assert.Equal(t, "lev", resp.User.Username)

		rec = s.do(http.MethodGet, logoutPath, session.Value, nil)
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		body := decodeBody(t, s.do(http.MethodGet, "/", session.Value, nil))
		assert.Contains(t, body, "user")

		rec = s.do(http.MethodPost, logoutPath, session.Value, nil)
		require.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))

		body = decodeBody(t, s.do(http.MethodGet, "/", session.Value, nil))
		assert.NotContains(t, body, "user")
	})

	t.Run("UnsafeNext", func(t *testing.T) {
		form := url.Values{"username": {"lev"}, "password": {"war-and-peace"}, "next": {"https://evil.example.com/"}}
		rec := s.do(http.MethodPost, loginPath, "", form)
		require.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
	})
}

func TestCSRF(t *testing.T) {
	s := newTestServer(t, 1, 0)
	target := newsURL(s.td.Commented.ID)
	form := url.Values{"text": {"hello"}}

	send := func(req *http.Request) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		s.e.ServeHTTP(rec, req)
		return rec
	}

	t.Run("SafeRequestIssuesCookie", func(t *testing.T) {
		rec := s.do(http.MethodGet, target, "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		cookie := findCookie(rec, csrfCookie)
		require.NotNil(t, cookie)
		assert.NotEmpty(t, cookie.Value)
	})

	t.Run("MissingToken", func(t *testing.T) {
		rec := send(s.newRequest(http.MethodPost, target, readerSession, form))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("WrongToken", func(t *testing.T) {
		req := s.newRequest(http.MethodPost, target, readerSession, form)
		req.AddCookie(&http.Cookie{Name: csrfCookie, Value: csrfToken})
		req.Header.Set(csrfHeader, "another-token")
		assert.Equal(t, http.StatusForbidden, send(req).Code)
	})

	t.Run("TokenInForm", func(t *testing.T) {
		withToken := url.Values{"text": {"hello"}, csrfField: {csrfToken}}
		req := s.newRequest(http.MethodPost, target, readerSession, withToken)
		req.AddCookie(&http.Cookie{Name: csrfCookie, Value: csrfToken})
		assert.Equal(t, http.StatusFound, send(req).Code)
	})

	comments, err := s.manager.Comments(context.Background(), s.td.Commented.ID)
	require.NoError(t, err)
	assert.Len(t, comments, 1)
}

func TestSafeNext(t *testing.T) {
	tests := []struct {
		next string
		want string
	}{
		{next: "", want: "/"},
		{next: "/news/1/", want: "/news/1/"},
		{next: "//evil.example.com", want: "/"},
		{next: "/\\evil.example.com", want: "/"},
		{next: "http://evil.example.com", want: "/"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.next), func(t *testing.T) {
			assert.Equal(t, tt.want, safeNext(tt.next))
		})
	}
}

func TestServiceRoutes(t *testing.T) {
	s := newTestServer(t, 1, 0)

	t.Run("Health", func(t *testing.T) {
		rec := s.do(http.MethodGet, healthPath, "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	})

	t.Run("Metrics", func(t *testing.T) {
		s.do(http.MethodGet, "/", "", nil)

		rec := s.do(http.MethodGet, metricsPath, "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "yanews_http_requests_total")
	})

	t.Run("Swagger", func(t *testing.T) {
		rec := s.do(http.MethodGet, swaggerPath, "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, "2.0", body["swagger"])
		assert.Contains(t, body["paths"], "/news/{id}/")
	})
}
