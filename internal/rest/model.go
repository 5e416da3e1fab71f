package rest

import "time"

type IDRequest struct {
	ID int `param:"id"`
}

type CommentRequest struct {
	Text string `json:"text" form:"text"`
}

type CredentialsRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
	Next     string `json:"next" form:"next" query:"next"`
}

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

// CommentForm describes the comment form of a page.
type CommentForm struct {
	Action string              `json:"action"`
	Fields []string            `json:"fields"`
	Text   string              `json:"text"`
	Errors map[string][]string `json:"errors,omitempty"`
}

// Form is a generic form with errors, used by the account pages.
type Form struct {
	Action string              `json:"action"`
	Fields []string            `json:"fields"`
	Errors map[string][]string `json:"errors,omitempty"`
}

type HomeContext struct {
	ObjectList []News `json:"object_list"`
	User       *User  `json:"user,omitempty"`
}

type DetailContext struct {
	News     News         `json:"news"`
	Comments []Comment    `json:"comments"`
	Form     *CommentForm `json:"form,omitempty"`
	User     *User        `json:"user,omitempty"`
}

type EditContext struct {
	Comment Comment      `json:"comment"`
	Form    *CommentForm `json:"form,omitempty"`
	User    *User        `json:"user,omitempty"`
}

type DeleteContext struct {
	Comment Comment `json:"comment"`
	User    *User   `json:"user,omitempty"`
}

type AccountContext struct {
	Form Form   `json:"form"`
	Next string `json:"next,omitempty"`
	User *User  `json:"user,omitempty"`
}
