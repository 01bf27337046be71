package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/zubalebr/contestacoes-backend/config"
	"github.com/zubalebr/contestacoes-backend/internal/app/controller"
	"github.com/zubalebr/contestacoes-backend/internal/app/service"
	"github.com/zubalebr/contestacoes-backend/internal/router"
	"github.com/zubalebr/contestacoes-backend/internal/scheduler"
	"github.com/zubalebr/contestacoes-backend/internal/storage"
	"github.com/zubalebr/contestacoes-backend/pkg/logger"
	"github.com/zubalebr/contestacoes-backend/pkg/redis"
	"github.com/zubalebr/contestacoes-backend/pkg/sheets"
	"github.com/zubalebr/contestacoes-backend/pkg/webhook"
)

// missingStoreSource stands in when neither the Sheets API nor an XLSX
// export is configured; GET /stores then answers with a config error.
type missingStoreSource struct{}

func (missingStoreSource) FetchStoreColumn(ctx context.Context) ([]string, error) {
	return nil, sheets.ErrMissingConfig
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting Portal de Contestações API", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Redis is optional; without it the store-list cache is in-process only
	if cfg.Redis.Host != "" {
		if err := redis.Init(&cfg.Redis); err != nil {
			logger.Warn("Continuing without Redis store cache", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			defer func() {
				if err := redis.Close(); err != nil {
					logger.Error("Failed to close Redis connection", err)
				}
			}()
		}
	}

	// Store-list source: local XLSX export wins over the Sheets API
	var storeSource service.StoreSource = missingStoreSource{}
	switch {
	case cfg.Sheets.XLSXPath != "":
		storeSource = &service.XLSXStoreSource{Path: cfg.Sheets.XLSXPath}
		logger.Info("Using XLSX store source", map[string]interface{}{
			"path": cfg.Sheets.XLSXPath,
		})
	default:
		sheetsClient, err := sheets.NewClient(sheets.Config{
			SheetID:   cfg.Sheets.SheetID,
			SheetName: cfg.Sheets.SheetName,
			APIKey:    cfg.Sheets.APIKey,
			BaseURL:   cfg.Sheets.BaseURL,
		})
		if err != nil {
			logger.Warn("Store list source not configured", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			storeSource = sheetsClient
		}
	}

	// Webhook client; submissions fail with a config error without it
	var deliverer service.WebhookDeliverer
	if cfg.Webhook.URL != "" {
		webhookClient, err := webhook.NewClient(webhook.Config{
			URL:     cfg.Webhook.URL,
			Token:   cfg.Webhook.Token,
			Timeout: cfg.Webhook.Timeout,
		})
		if err != nil {
			logger.Fatal("Failed to create webhook client", err)
		}
		deliverer = webhookClient
	} else {
		logger.Warn("N8N_WEBHOOK_URL not set, submissions will be rejected", nil)
	}

	// Evidence storage; without it submissions proceed but attachments drop
	var evidenceStorage service.EvidenceStorage
	if cfg.S3.Bucket != "" {
		evidenceStorage = storage.NewS3Storage(
			cfg.S3.Region,
			cfg.S3.Bucket,
			cfg.S3.AccessKeyID,
			cfg.S3.SecretAccessKey,
			cfg.S3.BaseURL,
		)
	} else {
		logger.Warn("AWS_S3_BUCKET not set, evidence uploads disabled", nil)
	}

	// Initialize services
	storeService := service.NewStoreService(storeSource, cfg.Validation.StoreCacheTTL)
	submissionService := service.NewSubmissionService(storeService, evidenceStorage, deliverer, cfg)

	// Initialize controllers
	storeController := controller.NewStoreController(storeService)
	submissionController := controller.NewSubmissionController(submissionService, cfg.Upload)

	// Keep the store cache warm
	storeScheduler := scheduler.NewStoreRefreshScheduler(storeService)
	if err := storeScheduler.Start(); err != nil {
		logger.Warn("Store refresh scheduler not started", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer storeScheduler.Stop()

	// Setup router
	r := router.NewRouter(storeController, submissionController, cfg)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
