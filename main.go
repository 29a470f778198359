package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// moduleLogger adapts the zap sugared logger to the outbound client's Logger.
type moduleLogger struct {
	sugar *zap.SugaredLogger
}

func (m *moduleLogger) Log(format string, args ...any) {
	m.sugar.Infof(format, args...)
}

func main() {
	_ = godotenv.Load()

	zapLogger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer zapLogger.Sync()
	sugar := zapLogger.Sugar()

	cfg := NewConfig()
	if err := cfg.ValidateConfig(); err != nil {
		sugar.Fatalw("invalid configuration", "error", err)
	}

	client, err := NewClient(nil, "")
	if err != nil {
		sugar.Fatalw("failed to create http client", "error", err)
	}

	modLog := &moduleLogger{sugar: sugar}

	var provider SessionProvider
	if cfg.Mode == ModeSession {
		proxies, err := NewProxyManager(cfg.ProxyFile)
		if err != nil {
			sugar.Fatalw("failed to load proxies", "error", err, "file", cfg.ProxyFile)
		}
		if n := proxies.Count(); n > 0 {
			sugar.Infow("loaded proxies", "count", n)
		}
		provider = NewHyperNegotiator(cfg.HyperAPIKey, proxies, modLog)
	}

	saweria := NewSaweriaClient(client, modLog, cfg, provider)
	server := NewServer(saweria, sugar, cfg.Mode)

	go func() {
		sugar.Infow("server listening", "port", cfg.Port, "mode", cfg.Mode)
		if err := server.Listen(":" + cfg.Port); err != nil {
			sugar.Fatalw("server stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	sugar.Info("shutting down")
	if err := server.Shutdown(); err != nil {
		sugar.Errorw("shutdown error", "error", err)
	}
}
