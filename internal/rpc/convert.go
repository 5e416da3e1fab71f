package rpc

import "github.com/daniilsolovey/yanews/internal/newsportal"

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

func NewNewsList(in newsportal.NewsList) NewsList {
	out := make(NewsList, len(in))
	for i := range in {
		out[i] = NewNews(in[i])
	}
	return out
}

func NewComments(in newsportal.Comments) Comments {
	out := make(Comments, len(in))
	for i := range in {
		out[i] = NewComment(in[i])
	}
	return out
}
