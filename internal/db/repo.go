package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
)

const uniqueViolation = "23505"

// ErrDuplicate is returned when an insert hits a unique constraint.
var ErrDuplicate = errors.New("duplicate record")

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

// conn returns the pool behind the repository, or nil when it runs inside a transaction.
func (r *Repository) conn() *pg.DB {
	db, _ := r.db.(*pg.DB)
	return db
}

func (r *Repository) Ping(ctx context.Context) error {
	if db := r.conn(); db != nil {
		return db.Ping(ctx)
	}
	return nil
}

func (r *Repository) Close() error {
	if db := r.conn(); db != nil {
		return db.Close()
	}
	return nil
}

// News returns at most limit news sorted by date DESC, newest id first within a day.
func (r *Repository) News(ctx context.Context, limit int) ([]News, error) {
	if limit < 1 {
		return nil, fmt.Errorf("limit must be greater than 0: limit=%d", limit)
	}

	var news []News
	err := r.db.ModelContext(ctx, &news).
		OrderExpr(`"t"."date" DESC`).
		OrderExpr(`"t"."newsId" DESC`).
		Limit(limit).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query news: %w", err)
	}

	return news, nil
}

func (r *Repository) NewsByID(ctx context.Context, newsID int) (*News, error) {
	news := &News{}
	err := r.db.ModelContext(ctx, news).
		Where(`"t"."newsId" = ?`, newsID).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get news by id: %w", err)
	}

	return news, nil
}

func (r *Repository) AddNews(ctx context.Context, news *News) (*News, error) {
	if news.Date.IsZero() {
		news.Date = time.Now()
	}

	if _, err := r.db.ModelContext(ctx, news).Returning("*").Insert(); err != nil {
		return nil, fmt.Errorf("failed to insert news: %w", err)
	}

	return news, nil
}

// CommentCounts returns the number of comments per news id. Ids without comments are absent.
func (r *Repository) CommentCounts(ctx context.Context, newsIDs []int) (map[int]int, error) {
	counts := make(map[int]int, len(newsIDs))
	if len(newsIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		NewsID int `pg:"newsId"`
		Count  int `pg:"count"`
	}
	err := r.db.ModelContext(ctx, (*Comment)(nil)).
		ColumnExpr(`"t"."newsId"`).
		ColumnExpr(`count(*) AS "count"`).
		Where(`"t"."newsId" IN (?)`, pg.In(newsIDs)).
		GroupExpr(`"t"."newsId"`).
		Select(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to count comments: %w", err)
	}

	for _, row := range rows {
		counts[row.NewsID] = row.Count
	}

	return counts, nil
}

// CommentsByNews returns every comment of the news with its author, oldest first.
func (r *Repository) CommentsByNews(ctx context.Context, newsID int) ([]Comment, error) {
	comments := []Comment{}
	err := r.db.ModelContext(ctx, &comments).
		Relation(Columns.Comment.Author).
		Where(`"t"."newsId" = ?`, newsID).
		OrderExpr(`"t"."createdAt" ASC`).
		OrderExpr(`"t"."commentId" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}

	return comments, nil
}

func (r *Repository) CommentByID(ctx context.Context, commentID int) (*Comment, error) {
	comment := &Comment{}
	err := r.db.ModelContext(ctx, comment).
		Relation(Columns.Comment.Author).
		Where(`"t"."commentId" = ?`, commentID).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get comment by id: %w", err)
	}

	return comment, nil
}

func (r *Repository) AddComment(ctx context.Context, comment *Comment) (*Comment, error) {
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}

	if _, err := r.db.ModelContext(ctx, comment).Returning("*").Insert(); err != nil {
		return nil, fmt.Errorf("failed to insert comment: %w", err)
	}

	return comment, nil
}

// UpdateComment rewrites the comment text. It returns false when no row matched.
func (r *Repository) UpdateComment(ctx context.Context, commentID int, text string) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Comment)(nil)).
		Set(`"text" = ?`, text).
		Where(`"t"."commentId" = ?`, commentID).
		Update()
	if err != nil {
		return false, fmt.Errorf("failed to update comment: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

func (r *Repository) DeleteComment(ctx context.Context, commentID int) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Comment)(nil)).
		Where(`"t"."commentId" = ?`, commentID).
		Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete comment: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

func (r *Repository) UserByUsername(ctx context.Context, username string) (*User, error) {
	user := &User{}
	err := r.db.ModelContext(ctx, user).
		Where(`"t"."username" = ?`, username).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return user, nil
}

func (r *Repository) AddUser(ctx context.Context, user *User) (*User, error) {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	if _, err := r.db.ModelContext(ctx, user).Returning("*").Insert(); err != nil {
		var pgErr pg.Error
		if errors.As(err, &pgErr) && pgErr.Field('C') == uniqueViolation {
			return nil, fmt.Errorf("failed to insert user %q: %w", user.Username, ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	return user, nil
}

func (r *Repository) AddSession(ctx context.Context, session *Session) error {
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}

	if _, err := r.db.ModelContext(ctx, session).Insert(); err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}

	return nil
}

// SessionByID returns a not yet expired session with its user.
func (r *Repository) SessionByID(ctx context.Context, sessionID string) (*Session, error) {
	session := &Session{}
	err := r.db.ModelContext(ctx, session).
		Relation(Columns.Session.User).
		Where(`"t"."sessionId" = ?`, sessionID).
		Where(`"t"."expiresAt" > ?`, time.Now()).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

func (r *Repository) DeleteSession(ctx context.Context, sessionID string) error {
	_, err := r.db.ModelContext(ctx, (*Session)(nil)).
		Where(`"t"."sessionId" = ?`, sessionID).
		Delete()
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
