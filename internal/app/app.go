package app

import (
	"fmt"
	"log"
	"strings"

	"github.com/falliso3/capstone-fraud-rpa/config"
	"github.com/falliso3/capstone-fraud-rpa/internal/handlers"
	"github.com/falliso3/capstone-fraud-rpa/internal/metrics"
	"github.com/falliso3/capstone-fraud-rpa/internal/models"
	"github.com/falliso3/capstone-fraud-rpa/internal/publisher"
	"github.com/falliso3/capstone-fraud-rpa/internal/repository/posgrest"
	"github.com/falliso3/capstone-fraud-rpa/internal/service"
	"github.com/falliso3/capstone-fraud-rpa/internal/webhook"
	"github.com/gin-gonic/gin"
)

type App struct {
	config *config.Config
	Router *gin.Engine
}

func (a *App) Initialize(cfg *config.Config) {
	a.config = cfg
	db, err := cfg.DB.GormConnect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.StripeEvent{}, &models.Transaction{}); err != nil {
		log.Fatalf("failed to auto migrate: %v", err)
	}

	metrics.RegisterMetrics()

	eventRepo := posgrest.NewEventRepository(db)
	txRepo := posgrest.NewTransactionRepository(db)

	publishTopics := strings.Split(cfg.Kafka.PublishTopics, ",")
	kafkaPublisher := publisher.NewKafkaPublisher(cfg.Kafka.Brokers, publishTopics, cfg.Kafka.GetRetryConfig())

	verifier := webhook.NewSignatureVerifier(cfg.Webhook.SigningSecret, cfg.Webhook.Tolerance)
	ingestService := service.NewIngestService(eventRepo, txRepo, kafkaPublisher)
	txService := service.NewTransactionService(txRepo)

	webhookHandler := handlers.NewWebhookHandler(ingestService, verifier)
	txHandler := handlers.NewTransactionHandler(txService)

	a.Router = gin.Default()
	a.Router.Use(gin.Recovery())
	a.RegisterRoutes(webhookHandler, txHandler)
}

func (a *App) Run() {
	err := a.Router.Run(fmt.Sprintf(":%s", a.config.APP.PORT))
	if err != nil {
		panic(err)
	}
}
