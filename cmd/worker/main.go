package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/falliso3/capstone-fraud-rpa/config"
	"github.com/falliso3/capstone-fraud-rpa/internal/clients"
	"github.com/falliso3/capstone-fraud-rpa/internal/metrics"
	"github.com/falliso3/capstone-fraud-rpa/internal/models"
	"github.com/falliso3/capstone-fraud-rpa/internal/publisher"
	"github.com/falliso3/capstone-fraud-rpa/internal/repository/posgrest"
	"github.com/falliso3/capstone-fraud-rpa/internal/service"
	"github.com/falliso3/capstone-fraud-rpa/internal/worker"
	"github.com/google/uuid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.New()
	if err != nil {
		fmt.Println("Error reading config file", err)
		os.Exit(1)
	}

	db, err := cfg.DB.GormConnect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.StripeEvent{}, &models.Transaction{}); err != nil {
		log.Fatalf("failed to auto migrate: %v", err)
	}

	metrics.RegisterMetrics()

	txRepo := posgrest.NewTransactionRepository(db)

	publishTopics := strings.Split(cfg.Kafka.PublishTopics, ",")
	kafkaPublisher := publisher.NewKafkaPublisher(cfg.Kafka.Brokers, publishTopics, cfg.Kafka.GetRetryConfig())

	workerID := uuid.New().String()

	riskService := service.NewRiskService(txRepo)
	modelClient := clients.NewModelClient(cfg.Model)
	narrativeClient := clients.NewNarrativeClient(cfg.Narrative)
	enrichment := service.NewEnrichmentService(txRepo, riskService, modelClient, narrativeClient, kafkaPublisher, workerID)

	w := worker.New(workerID, txRepo, enrichment, cfg.Worker.PollInterval, cfg.Worker.LeaseDuration, cfg.Worker.ErrorBackoff)
	w.Run(ctx)

	log.Println("Enrichment worker stopped")
}
