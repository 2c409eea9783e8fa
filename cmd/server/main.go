package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/code-100-precent/LingCaptcha/cmd/bootstrap"
	"github.com/code-100-precent/LingCaptcha/internal/handlers"
	"github.com/code-100-precent/LingCaptcha/pkg/captcha"
	"github.com/code-100-precent/LingCaptcha/pkg/config"
	"github.com/code-100-precent/LingCaptcha/pkg/logger"
	"github.com/code-100-precent/LingCaptcha/pkg/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang/freetype/truetype"
	"go.uber.org/zap"
)

func main() {
	// 1. Print Banner (optional)
	_ = bootstrap.PrintBannerFromFile("banner.txt")

	// 2. Parse Command Line Parameters
	mode := flag.String("mode", "", "running environment (development, test, production)")
	addrFlag := flag.String("addr", "", "HTTP serve address, overrides ADDR")
	flag.Parse()

	// 3. Set Environment Variables
	if *mode != "" {
		os.Setenv("APP_ENV", *mode)
	}

	// 4. Load Global Configuration
	if err := config.Load(); err != nil {
		panic("config load failed: " + err.Error())
	}
	cfg := config.GlobalConfig
	if *addrFlag != "" {
		cfg.Addr = *addrFlag
	}

	// 5. Load Log Configuration
	if err := logger.Init(&cfg.Log, cfg.Mode); err != nil {
		panic(err)
	}
	defer logger.Sync()

	// 6. Print Configuration
	bootstrap.LogConfigInfo()

	// 7. Load Fonts
	if _, err := captcha.LoadDefaultFont(); err != nil {
		logger.Fatal("embedded captcha font unusable", zap.Error(err))
	}
	var font *truetype.Font
	if cfg.Captcha.FontFile != "" {
		data, err := os.ReadFile(cfg.Captcha.FontFile)
		if err != nil {
			logger.Fatal("read captcha font failed", zap.String("font_file", cfg.Captcha.FontFile), zap.Error(err))
		}
		font, err = captcha.ParseFont(data)
		if err != nil {
			logger.Fatal("parse captcha font failed", zap.String("font_file", cfg.Captcha.FontFile), zap.Error(err))
		}
	}

	// 8. Initialize Gin Routing
	if cfg.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	h := handlers.NewHandlers(cfg, font)

	r := gin.New()
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.Use(
		middleware.RequestIDMiddleware(),
		middleware.RecoveryMiddleware(logger.Lg),
		middleware.LoggerMiddleware(logger.Lg),
		middleware.CompressionMiddleware(middleware.DefaultCompressionConfig(h.ImageRoute())),
	)

	// 9. Register Routes
	h.Register(r)

	// 10. Start HTTP Server
	httpServer := &http.Server{
		Addr:           cfg.Addr,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    120 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1MB
	}

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", cfg.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server run failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down HTTP server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown failed", zap.Error(err))
	}
}
