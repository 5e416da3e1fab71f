package newsportal

// FormVisible reports whether the comment form belongs in the page context.
// Any authenticated user may comment on a news page; on the edit page only the author sees the form.
func FormVisible(user *User, editing bool, authorID int) bool {
	return user != nil && (!editing || user.ID == authorID)
}

// IsAuthor reports whether user wrote comment.
func IsAuthor(user *User, comment Comment) bool {
	return FormVisible(user, true, comment.AuthorID)
}
