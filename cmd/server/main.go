package main

import (
	"github.com/blues/vds/internal/config"
	"github.com/blues/vds/internal/logger"
	"github.com/blues/vds/internal/repository"
	"github.com/blues/vds/internal/router"
	"github.com/gin-gonic/gin"
)

func main() {
	// 加载配置
	cfg := config.Load()

	// 初始化日志
	if err := logger.InitFromConfig(cfg.Log); err != nil {
		logger.Fatal("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// 初始化数据库
	db, err := repository.Init(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to initialize database: %v", err)
	}

	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化路由。截止日期监控器不随服务启动，
	// 由管理员会话接口按需启停。
	r, adminHandler := router.Setup(db, cfg)
	defer adminHandler.Shutdown()

	// 启动服务器
	logger.Info("Server starting on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("Failed to start server: %v", err)
	}
}
