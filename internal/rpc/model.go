package rpc

import "time"

type User struct {
	UserID   int    `json:"userId"`
	Username string `json:"username"`
}

type News struct {
	NewsID       int       `json:"newsId"`
	Title        string    `json:"title"`
	Text         string    `json:"text"`
	Date         time.Time `json:"date"`
	CommentCount int       `json:"commentCount"`
}

type Comment struct {
	CommentID int       `json:"commentId"`
	NewsID    int       `json:"newsId"`
	Text      string    `json:"text"`
	Created   time.Time `json:"created"`
	Author    User      `json:"author"`
}

type (
	NewsList []News
	Comments []Comment
)
