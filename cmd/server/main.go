package main

import (
	"log"
	"sync/atomic"

	"github.com/CharaWein/chessGo/config"
	"github.com/CharaWein/chessGo/server"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger, err := cfg.Logs.NewLogger()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	if cfg.Logs.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	var seed func() int64
	if cfg.Bot.Seed != 0 {
		var next atomic.Int64
		next.Store(cfg.Bot.Seed)
		seed = func() int64 { return next.Add(1) }
	}

	router := server.NewRouter(server.NewHandler(logger, seed))
	logger.Info("listening", zap.String("addr", cfg.Http.Addr))
	if err := router.Run(cfg.Http.Addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
