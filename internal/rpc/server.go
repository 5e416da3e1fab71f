package rpc

import (
	"log/slog"

	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/yanews/internal/newsportal"
)

func New(logger *slog.Logger, newsManager *newsportal.Manager) *zenrpc.Server {
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register("news", NewNewsService(newsManager))
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "yanews", nil))

	return rpcServer
}
