package rest

import (
	"fmt"

	"github.com/daniilsolovey/yanews/internal/newsportal"
)

func NewNews(n newsportal.News) News {
	return News{
		NewsID:       n.ID,
		Title:        n.Title,
		Text:         n.Text,
		Date:         n.Date,
		CommentCount: n.CommentCount,
	}
}

func NewUser(u newsportal.User) User {
	return User{
		UserID:   u.ID,
		Username: u.Username,
	}
}

func NewComment(c newsportal.Comment) Comment {
	return Comment{
		CommentID: c.ID,
		NewsID:    c.NewsID,
		Text:      c.Text,
		Created:   c.CreatedAt,
		Author:    NewUser(c.Author),
	}
}

func NewCurrentUser(u *newsportal.User) *User {
	if u == nil {
		return nil
	}

	user := NewUser(*u)
	return &user
}

func NewCommentForm(f *newsportal.CommentForm, action string) *CommentForm {
	if f == nil {
		return nil
	}

	return &CommentForm{
		Action: action,
		Fields: []string{"text"},
		Text:   f.Text,
		Errors: f.Errors,
	}
}

func NewDetailContext(p *newsportal.DetailPage, user *newsportal.User) DetailContext {
	return DetailContext{
		News:     NewNews(p.News),
		Comments: newsportal.Map(p.Comments, NewComment),
		Form:     NewCommentForm(p.Form, newsURL(p.News.ID)),
		User:     NewCurrentUser(user),
	}
}

func NewEditContext(p *newsportal.EditPage, user *newsportal.User) EditContext {
	return EditContext{
		Comment: NewComment(p.Comment),
		Form:    NewCommentForm(p.Form, editCommentURL(p.Comment.ID)),
		User:    NewCurrentUser(user),
	}
}

func newsURL(newsID int) string {
	return fmt.Sprintf("/news/%d/", newsID)
}

func editCommentURL(commentID int) string {
	return fmt.Sprintf("/edit_comment/%d/", commentID)
}

func deleteCommentURL(commentID int) string {
	return fmt.Sprintf("/delete_comment/%d/", commentID)
}
