package newsportal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/daniilsolovey/yanews/internal/db"
)

const (
	DefaultHomePageCount = 10
	DefaultSessionTTL    = 14 * 24 * time.Hour
)

// ErrUnauthenticated is returned for actions that need a logged in user.
var ErrUnauthenticated = errors.New("authentication required")

// Store is implemented by db.Repository and db.MemoryRepository.
type Store interface {
	News(ctx context.Context, limit int) ([]db.News, error)
	NewsByID(ctx context.Context, newsID int) (*db.News, error)
	CommentCounts(ctx context.Context, newsIDs []int) (map[int]int, error)

	CommentsByNews(ctx context.Context, newsID int) ([]db.Comment, error)
	CommentByID(ctx context.Context, commentID int) (*db.Comment, error)
	AddComment(ctx context.Context, comment *db.Comment) (*db.Comment, error)
	UpdateComment(ctx context.Context, commentID int, text string) (bool, error)
	DeleteComment(ctx context.Context, commentID int) (bool, error)

	UserByUsername(ctx context.Context, username string) (*db.User, error)
	AddUser(ctx context.Context, user *db.User) (*db.User, error)

	AddSession(ctx context.Context, session *db.Session) error
	SessionByID(ctx context.Context, sessionID string) (*db.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type Config struct {
	// HomePageCount is the maximum number of news on the home page.
	HomePageCount int
	SessionTTL    time.Duration
}

type Manager struct {
	db  Store
	cfg Config
}

func NewNewsManager(store Store, cfg Config) *Manager {
	if cfg.HomePageCount < 1 {
		cfg.HomePageCount = DefaultHomePageCount
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = DefaultSessionTTL
	}

	return &Manager{
		db:  store,
		cfg: cfg,
	}
}

func (u *Manager) HomePageCount() int {
	return u.cfg.HomePageCount
}

// HomePage returns at most HomePageCount news, newest first, with comment counters.
func (u *Manager) HomePage(ctx context.Context) (NewsList, error) {
	dbNews, err := u.db.News(ctx, u.cfg.HomePageCount)
	if err != nil {
		return nil, fmt.Errorf("db get news: %w", err)
	}

	list := NewNewsList(dbNews)
	counts, err := u.db.CommentCounts(ctx, list.IDs())
	if err != nil {
		return nil, fmt.Errorf("db get comment counts: %w", err)
	}
	list.SetCommentCounts(counts)

	return list, nil
}

func (u *Manager) NewsByID(ctx context.Context, newsID int) (*News, error) {
	dbNews, err := u.db.NewsByID(ctx, newsID)
	if err != nil {
		return nil, fmt.Errorf("db get news by id: %w", err)
	} else if dbNews == nil {
		return nil, nil
	}

	news := NewNews(*dbNews)
	return &news, nil
}

// Comments returns all comments of the news, oldest first.
func (u *Manager) Comments(ctx context.Context, newsID int) (Comments, error) {
	list, err := u.db.CommentsByNews(ctx, newsID)
	if err != nil {
		return nil, fmt.Errorf("db get comments: %w", err)
	}

	return NewComments(list), nil
}

// DetailPage builds the news page for user, who is nil for anonymous readers.
// It returns nil when the news does not exist.
func (u *Manager) DetailPage(ctx context.Context, newsID int, user *User) (*DetailPage, error) {
	news, err := u.NewsByID(ctx, newsID)
	if err != nil || news == nil {
		return nil, err
	}

	comments, err := u.Comments(ctx, newsID)
	if err != nil {
		return nil, err
	}
	news.CommentCount = len(comments)

	page := &DetailPage{
		News:     *news,
		Comments: comments,
	}
	if FormVisible(user, false, 0) {
		page.Form = NewCommentForm("")
	}

	return page, nil
}

// EditPage builds the comment edit page. It returns nil when the comment does not
// exist or user is not its author.
func (u *Manager) EditPage(ctx context.Context, commentID int, user *User) (*EditPage, error) {
	comment, err := u.authoredComment(ctx, commentID, user)
	if err != nil || comment == nil {
		return nil, err
	}

	return &EditPage{
		Comment: *comment,
		Form:    NewCommentForm(comment.Text),
	}, nil
}

// DeletePage returns the comment to confirm deletion of, or nil when user may not delete it.
func (u *Manager) DeletePage(ctx context.Context, commentID int, user *User) (*Comment, error) {
	return u.authoredComment(ctx, commentID, user)
}

// AddComment posts a comment from user. It returns nil when the news does not exist
// and ErrInvalidForm when the form has errors.
func (u *Manager) AddComment(ctx context.Context, newsID int, user *User, form *CommentForm) (*Comment, error) {
	if user == nil {
		return nil, ErrUnauthenticated
	}

	news, err := u.db.NewsByID(ctx, newsID)
	if err != nil {
		return nil, fmt.Errorf("db get news by id: %w", err)
	} else if news == nil {
		return nil, nil
	}

	if !form.Validate() {
		return nil, ErrInvalidForm
	}

	dbComment, err := u.db.AddComment(ctx, &db.Comment{
		NewsID:   newsID,
		AuthorID: user.ID,
		Text:     form.Text,
	})
	if err != nil {
		return nil, fmt.Errorf("db add comment: %w", err)
	}

	comment := NewComment(*dbComment)
	comment.Author = *user
	return &comment, nil
}

// UpdateComment rewrites the text of a comment written by user. It returns nil when
// the comment does not exist or belongs to somebody else.
func (u *Manager) UpdateComment(ctx context.Context, commentID int, user *User, form *CommentForm) (*Comment, error) {
	if user == nil {
		return nil, ErrUnauthenticated
	}

	comment, err := u.authoredComment(ctx, commentID, user)
	if err != nil || comment == nil {
		return nil, err
	}

	if !form.Validate() {
		return nil, ErrInvalidForm
	}

	ok, err := u.db.UpdateComment(ctx, commentID, form.Text)
	if err != nil {
		return nil, fmt.Errorf("db update comment: %w", err)
	} else if !ok {
		return nil, nil
	}

	comment.Text = form.Text
	return comment, nil
}

// DeleteComment removes a comment written by user and returns it. It returns nil when
// the comment does not exist or belongs to somebody else.
func (u *Manager) DeleteComment(ctx context.Context, commentID int, user *User) (*Comment, error) {
	if user == nil {
		return nil, ErrUnauthenticated
	}

	comment, err := u.authoredComment(ctx, commentID, user)
	if err != nil || comment == nil {
		return nil, err
	}

	ok, err := u.db.DeleteComment(ctx, commentID)
	if err != nil {
		return nil, fmt.Errorf("db delete comment: %w", err)
	} else if !ok {
		return nil, nil
	}

	return comment, nil
}

func (u *Manager) authoredComment(ctx context.Context, commentID int, user *User) (*Comment, error) {
	dbComment, err := u.db.CommentByID(ctx, commentID)
	if err != nil {
		return nil, fmt.Errorf("db get comment by id: %w", err)
	} else if dbComment == nil {
		return nil, nil
	}

	comment := NewComment(*dbComment)
	if !IsAuthor(user, comment) {
		return nil, nil
	}

	return &comment, nil
}
