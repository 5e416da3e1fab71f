package newsportal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/daniilsolovey/yanews/internal/db"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// SignUp registers a new user. It returns ErrInvalidForm with form.Errors filled
// when the form does not validate.
func (u *Manager) SignUp(ctx context.Context, form *SignUpForm) (*User, error) {
	if !form.Validate() {
		return nil, ErrInvalidForm
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	dbUser, err := u.db.AddUser(ctx, &db.User{
		Username:     form.Username,
		PasswordHash: string(hash),
	})
	if errors.Is(err, db.ErrDuplicate) {
		form.Errors.add("username", "Пользователь с таким именем уже существует.")
		return nil, ErrUserExists
	} else if err != nil {
		return nil, fmt.Errorf("db add user: %w", err)
	}

	user := NewUser(*dbUser)
	return &user, nil
}

// Login checks credentials and opens a new session.
func (u *Manager) Login(ctx context.Context, form LoginForm) (*Session, error) {
	dbUser, err := u.db.UserByUsername(ctx, form.Username)
	if err != nil {
		return nil, fmt.Errorf("db get user: %w", err)
	} else if dbUser == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(dbUser.PasswordHash), []byte(form.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	dbSession := &db.Session{
		ID:        uuid.NewString(),
		UserID:    dbUser.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(u.cfg.SessionTTL),
	}
	if err := u.db.AddSession(ctx, dbSession); err != nil {
		return nil, fmt.Errorf("db add session: %w", err)
	}

	session := NewSession(*dbSession)
	session.User = NewUser(*dbUser)
	return &session, nil
}

func (u *Manager) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	if err := u.db.DeleteSession(ctx, sessionID); err != nil {
		return fmt.Errorf("db delete session: %w", err)
	}

	return nil
}

// UserBySession resolves a session id into its user. Unknown and expired sessions give nil.
func (u *Manager) UserBySession(ctx context.Context, sessionID string) (*User, error) {
	if sessionID == "" {
		return nil, nil
	}

	dbSession, err := u.db.SessionByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("db get session: %w", err)
	} else if dbSession == nil || dbSession.User == nil {
		return nil, nil
	}

	user := NewUser(*dbSession.User)
	return &user, nil
}
