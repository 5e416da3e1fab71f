package newsportal

import (
	"github.com/daniilsolovey/yanews/internal/db"
)

type News struct {
	db.News
	CommentCount int
}

type Comment struct {
	db.Comment
	Author User
}

type User struct {
	db.User
}

// Session is an authenticated login of a user.
type Session struct {
	db.Session
	User User
}

// DetailPage is the context of a news page. Form is nil unless the reader may comment.
type DetailPage struct {
	News     News
	Comments Comments
	Form     *CommentForm
}

// EditPage is the context of the comment edit page.
type EditPage struct {
	Comment Comment
	Form    *CommentForm
}
