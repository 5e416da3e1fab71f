package newsportal

import "github.com/daniilsolovey/yanews/internal/db"

type NewsList []News

type Comments []Comment

func NewNewsList(in []db.News) NewsList {
	return Map(in, NewNews)
}

func NewComments(in []db.Comment) Comments {
	return Map(in, NewComment)
}

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func (ll NewsList) IDs() []int {
	ids := make([]int, len(ll))
	for i := range ll {
		ids[i] = ll[i].ID
	}
	return ids
}

func (ll NewsList) SetCommentCounts(counts map[int]int) {
	for i := range ll {
		ll[i].CommentCount = counts[ll[i].ID]
	}
}

func (ll Comments) IDs() []int {
	ids := make([]int, len(ll))
	for i := range ll {
		ids[i] = ll[i].ID
	}
	return ids
}
