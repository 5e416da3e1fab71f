package newsportal

import "github.com/daniilsolovey/yanews/internal/db"

func NewNews(n db.News) News {
	return News{News: n}
}

func NewUser(u db.User) User {
	return User{User: u}
}

func NewComment(c db.Comment) Comment {
	comment := Comment{Comment: c}
	if c.Author != nil {
		comment.Author = NewUser(*c.Author)
	}

	return comment
}

func NewSession(s db.Session) Session {
	session := Session{Session: s}
	if s.User != nil {
		session.User = NewUser(*s.User)
	}

	return session
}
