package db

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// MemoryRepository keeps everything in process memory. It mirrors Repository and
// is used for local runs without PostgreSQL and in unit tests.
type MemoryRepository struct {
	mu sync.RWMutex

	news     map[int]News
	comments map[int]Comment
	users    map[int]User
	sessions map[string]Session

	lastNewsID, lastCommentID, lastUserID int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		news:     make(map[int]News),
		comments: make(map[int]Comment),
		users:    make(map[int]User),
		sessions: make(map[string]Session),
	}
}

func (m *MemoryRepository) Ping(context.Context) error { return nil }

func (m *MemoryRepository) Close() error { return nil }

func (m *MemoryRepository) News(_ context.Context, limit int) ([]News, error) {
	if limit < 1 {
		return nil, fmt.Errorf("limit must be greater than 0: limit=%d", limit)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	news := make([]News, 0, len(m.news))
	for _, n := range m.news {
		news = append(news, n)
	}

	sort.SliceStable(news, func(i, j int) bool {
		if !news[i].Date.Equal(news[j].Date) {
			return news[i].Date.After(news[j].Date)
		}
		return news[i].ID > news[j].ID
	})

	if len(news) > limit {
		news = news[:limit]
	}

	return news, nil
}

func (m *MemoryRepository) NewsByID(_ context.Context, newsID int) (*News, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n, ok := m.news[newsID]
	if !ok {
		return nil, nil
	}

	return &n, nil
}

func (m *MemoryRepository) AddNews(_ context.Context, news *News) (*News, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if news.Date.IsZero() {
		news.Date = time.Now()
	}

	m.lastNewsID++
	news.ID = m.lastNewsID
	m.news[news.ID] = *news

	return news, nil
}

func (m *MemoryRepository) CommentCounts(_ context.Context, newsIDs []int) (map[int]int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	wanted := make(map[int]struct{}, len(newsIDs))
	for _, id := range newsIDs {
		wanted[id] = struct{}{}
	}

	counts := make(map[int]int, len(newsIDs))
	for _, c := range m.comments {
		if _, ok := wanted[c.NewsID]; ok {
			counts[c.NewsID]++
		}
	}

	return counts, nil
}

func (m *MemoryRepository) CommentsByNews(_ context.Context, newsID int) ([]Comment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	comments := []Comment{}
	for _, c := range m.comments {
		if c.NewsID == newsID {
			comments = append(comments, m.withAuthor(c))
		}
	}

	sort.SliceStable(comments, func(i, j int) bool {
		if !comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].CreatedAt.Before(comments[j].CreatedAt)
		}
		return comments[i].ID < comments[j].ID
	})

	return comments, nil
}

func (m *MemoryRepository) CommentByID(_ context.Context, commentID int) (*Comment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.comments[commentID]
	if !ok {
		return nil, nil
	}

	c = m.withAuthor(c)
	return &c, nil
}

func (m *MemoryRepository) AddComment(_ context.Context, comment *Comment) (*Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.news[comment.NewsID]; !ok {
		return nil, fmt.Errorf("failed to insert comment: news %d does not exist", comment.NewsID)
	}
	if _, ok := m.users[comment.AuthorID]; !ok {
		return nil, fmt.Errorf("failed to insert comment: user %d does not exist", comment.AuthorID)
	}

	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}

	m.lastCommentID++
	comment.ID = m.lastCommentID
	comment.Author = nil
	m.comments[comment.ID] = *comment

	return comment, nil
}

func (m *MemoryRepository) UpdateComment(_ context.Context, commentID int, text string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.comments[commentID]
	if !ok {
		return false, nil
	}

	c.Text = text
	m.comments[commentID] = c

	return true, nil
}

func (m *MemoryRepository) DeleteComment(_ context.Context, commentID int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.comments[commentID]; !ok {
		return false, nil
	}

	delete(m.comments, commentID)
	return true, nil
}

func (m *MemoryRepository) UserByUsername(_ context.Context, username string) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.Username == username {
			return &u, nil
		}
	}

	return nil, nil
}

func (m *MemoryRepository) AddUser(_ context.Context, user *User) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Username == user.Username {
			return nil, fmt.Errorf("failed to insert user %q: %w", user.Username, ErrDuplicate)
		}
	}

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	m.lastUserID++
	user.ID = m.lastUserID
	m.users[user.ID] = *user

	return user, nil
}

func (m *MemoryRepository) AddSession(_ context.Context, session *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[session.UserID]; !ok {
		return fmt.Errorf("failed to insert session: user %d does not exist", session.UserID)
	}

	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}

	session.User = nil
	m.sessions[session.ID] = *session

	return nil
}

func (m *MemoryRepository) SessionByID(_ context.Context, sessionID string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[sessionID]
	if !ok || !s.ExpiresAt.After(time.Now()) {
		return nil, nil
	}

	if u, ok := m.users[s.UserID]; ok {
		s.User = &u
	}

	return &s, nil
}

func (m *MemoryRepository) DeleteSession(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, sessionID)
	return nil
}

// withAuthor must be called with the lock held.
func (m *MemoryRepository) withAuthor(c Comment) Comment {
	if u, ok := m.users[c.AuthorID]; ok {
		c.Author = &u
	}
	return c
}
