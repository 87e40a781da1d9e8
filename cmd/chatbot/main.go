package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/CorporateGuuu/nexustechhub-sub010/internal/chatbot"
	"github.com/CorporateGuuu/nexustechhub-sub010/internal/server"
	"github.com/CorporateGuuu/nexustechhub-sub010/internal/storage"
	"github.com/CorporateGuuu/nexustechhub-sub010/internal/telegram"
	"github.com/CorporateGuuu/nexustechhub-sub010/pkg/config"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Load configuration
	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err), zap.String("path", "config.yaml"))
	}

	// Initialize storage
	var store storage.Storage
	if cfg.Database.UseInMemory {
		logger.Info("Using in-memory storage")
		store = storage.NewMemoryStorage()
	} else {
		logger.Info("Using PostgreSQL storage")
		dbConfig := storage.DatabaseConfig{
			Host:        cfg.Database.Host,
			Port:        cfg.Database.Port,
			User:        cfg.Database.User,
			Password:    cfg.Database.Password,
			DBName:      cfg.Database.DBName,
			SSLMode:     cfg.Database.SSLMode,
			UseInMemory: cfg.Database.UseInMemory,
		}
		store, err = storage.NewPostgresStorage(dbConfig)
		if err != nil {
			logger.Fatal("Failed to initialize storage", zap.Error(err))
		}
	}
	defer store.Close()

	// Initialize the support pipeline
	opts := []chatbot.Option{
		chatbot.WithBaseURL(cfg.Chatbot.BaseURL),
	}
	if cfg.OpenAI.Enabled && cfg.OpenAI.APIKey != "" {
		logger.Info("OpenAI assistant enabled", zap.String("model", cfg.OpenAI.Model))
		opts = append(opts, chatbot.WithAssistant(chatbot.NewAssistant(
			cfg.OpenAI.APIKey,
			cfg.OpenAI.Model,
			cfg.OpenAI.MaxTokens,
			cfg.OpenAI.Temperature,
			logger,
		)))
	}
	service := chatbot.New(store, logger, opts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start the HTTP transport
	srv := server.New(service, store, logger, time.Duration(cfg.Server.RequestTimeout)*time.Second)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.Listen(addr); err != nil {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Optionally start the Telegram channel
	if cfg.Telegram.Enabled && cfg.Telegram.Token != "" {
		b, err := telegram.New(cfg.Telegram.Token, service, logger)
		if err != nil {
			logger.Fatal("Failed to create Telegram bot", zap.Error(err))
		}
		go func() {
			logger.Info("Starting Telegram channel")
			if err := b.Start(ctx); err != nil {
				logger.Error("Telegram bot error", zap.Error(err))
			}
		}()
	}

	<-ctx.Done()
	logger.Info("Shutting down")
	if err := srv.Shutdown(); err != nil {
		logger.Error("Failed to shut down HTTP server", zap.Error(err))
	}
}
