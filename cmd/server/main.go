package main

import (
	"context"
	"log"

	firebase "firebase.google.com/go/v4"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	handlers "AllyBackend/internal/handler"
	"AllyBackend/internal/store"
	"AllyBackend/pkg/auth"
	"AllyBackend/pkg/config"
	"AllyBackend/pkg/logger"
	"AllyBackend/pkg/metrics"
	"AllyBackend/pkg/middleware"
)

func main() {
	if err := config.Load(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg := config.GlobalConfig

	lg := logger.Init(cfg.Log)
	defer lg.Sync()

	ctx := context.Background()

	// 凭据文件路径来自环境变量，进程启动时初始化一次
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(cfg.ServiceAccountPath))
	if err != nil {
		logger.Fatal("failed to initialize identity provider app", zap.Error(err))
	}

	fsClient, err := app.Firestore(ctx)
	if err != nil {
		logger.Fatal("failed to connect to document store", zap.Error(err))
	}
	defer fsClient.Close()

	stores := store.NewStores(fsClient)

	// 鉴权闸门在装配期选定一次：Verified 或 AllowAll
	var verifier auth.TokenVerifier
	gate := middleware.AllowAll()
	if cfg.AuthDisabled {
		logger.Warn("authentication DISABLED: all gated requests run as placeholder identity",
			zap.String("identity", middleware.PlaceholderUser))
	} else {
		authClient, err := app.Auth(ctx)
		if err != nil {
			logger.Fatal("failed to initialize identity provider auth client", zap.Error(err))
		}
		verifier = auth.NewFirebaseVerifier(authClient)
		gate = middleware.AuthRequired(verifier)
	}

	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		middleware.CORS(),
		middleware.RequestID(),
	)

	m := metrics.NewMetrics()
	engine.Use(metrics.MonitorMiddleware(m))
	engine.GET(cfg.MetricsPrefix, metrics.Handler())

	limiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		Rate:      cfg.RateLimit,
		SkipPaths: []string{"/", cfg.MetricsPrefix},
	}, nil)
	engine.Use(limiter.Middleware())

	h := handlers.NewHandlers(stores, verifier, gate)
	h.Register(engine)

	logger.Info("server listening", zap.String("addr", cfg.Addr))
	if err := engine.Run(cfg.Addr); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
