package rpc

import (
	"context"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/yanews/internal/newsportal"
)

//go:generate zenrpc

// NewsService provides read-only RPC methods over the news feed.
type NewsService struct {
	zenrpc.Service
	manager *newsportal.Manager
}

func NewNewsService(manager *newsportal.Manager) *NewsService {
	return &NewsService{manager: manager}
}

// List returns the home page news sorted by date DESC with comment counters.
//
//zenrpc:return list of news
//zenrpc:500 internal server error
func (s NewsService) List(ctx context.Context) (NewsList, error) {
	list, err := s.manager.HomePage(ctx)
	if err != nil {
		return nil, err
	}

	return NewNewsList(list), nil
}

// ByID returns a single news.
//
//zenrpc:id news numeric ID
//zenrpc:return news
//zenrpc:400 id must be positive
//zenrpc:404 news not found
//zenrpc:500 internal server error
func (s NewsService) ByID(ctx context.Context, id int) (*News, error) {
	if id <= 0 {
		return nil, zenrpc.NewStringError(400, "id must be positive")
	}

	news, err := s.manager.NewsByID(ctx, id)
	if err != nil {
		return nil, err
	} else if news == nil {
		return nil, zenrpc.NewStringError(404, "news not found")
	}

	result := NewNews(*news)
	return &result, nil
}

// Comments returns the comments of a news, oldest first.
//
//zenrpc:newsId news numeric ID
//zenrpc:return list of comments
//zenrpc:404 news not found
//zenrpc:500 internal server error
func (s NewsService) Comments(ctx context.Context, newsId int) (Comments, error) {
	news, err := s.manager.NewsByID(ctx, newsId)
	if err != nil {
		return nil, err
	} else if news == nil {
		return nil, zenrpc.NewStringError(404, "news not found")
	}

	comments, err := s.manager.Comments(ctx, newsId)
	if err != nil {
		return nil, err
	}

	return NewComments(comments), nil
}
