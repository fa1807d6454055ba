package service

import (
	"context"
	"fmt"
	"time"

	"github.com/falliso3/capstone-fraud-rpa/internal/metrics"
	"github.com/falliso3/capstone-fraud-rpa/internal/models"
	"github.com/sirupsen/logrus"
)

// EnrichmentRepo defines the interface for the transaction writes the
// enrichment pass performs.
type EnrichmentRepo interface {
	GetByID(ctx context.Context, id string) (*models.Transaction, error)
	SaveInternalRisk(ctx context.Context, id string, assessment *models.RiskAssessment) error
	SaveMLScore(ctx context.Context, id string, score *models.MLScore) error
	SaveMLError(ctx context.Context, id string, message string) error
	ReleaseSuccess(ctx context.Context, id string, summary string, summaryModel string) error
}

// RiskScorer computes the rule-based assessment.
type RiskScorer interface {
	Score(ctx context.Context, tx *models.Transaction) (*models.RiskAssessment, error)
}

// ModelScorer asks the hosted model for a fraud probability.
type ModelScorer interface {
	Score(ctx context.Context, tx *models.Transaction) (*models.MLScore, error)
}

// Narrator writes the analyst-facing summary.
type Narrator interface {
	Summarize(ctx context.Context, tx *models.Transaction) (text string, model string, err error)
}

// EnrichmentService runs one claimed transaction through risk scoring,
// model scoring and narrative generation. A model failure is recorded
// and skipped; a risk or narrative failure surfaces to the caller, which
// releases the lease as failed so the transaction is retried.
type EnrichmentService struct {
	Repo      EnrichmentRepo
	Risk      RiskScorer
	Model     ModelScorer
	Narrator  Narrator
	Publisher Publisher
	WorkerID  string
}

func NewEnrichmentService(repo EnrichmentRepo, risk RiskScorer, model ModelScorer, narrator Narrator, publisher Publisher, workerID string) *EnrichmentService {
	return &EnrichmentService{
		Repo:      repo,
		Risk:      risk,
		Model:     model,
		Narrator:  narrator,
		Publisher: publisher,
		WorkerID:  workerID,
	}
}

func (s *EnrichmentService) Enrich(ctx context.Context, tx *models.Transaction) error {
	assessment, err := s.Risk.Score(ctx, tx)
	if err != nil {
		return fmt.Errorf("error computing internal risk for %s: %w", tx.ID, err)
	}

	if err := s.Repo.SaveInternalRisk(ctx, tx.ID, assessment); err != nil {
		return fmt.Errorf("error storing internal risk for %s: %w", tx.ID, err)
	}
	metrics.InternalRiskScores.Observe(float64(assessment.Score))

	// Re-read so the later steps see the assessment plus anything the
	// ingestion path merged in the meantime.
	if latest, err := s.Repo.GetByID(ctx, tx.ID); err == nil {
		tx = latest
	} else {
		tx.InternalRisk = assessment
	}

	if ml, err := s.Model.Score(ctx, tx); err != nil {
		logrus.Warnf("Model score failed for %s: %s", tx.ID, err.Error())
		if saveErr := s.Repo.SaveMLError(ctx, tx.ID, err.Error()); saveErr != nil {
			logrus.Errorf("Error recording model failure for %s: %s", tx.ID, saveErr.Error())
		}
	} else {
		if err := s.Repo.SaveMLScore(ctx, tx.ID, ml); err != nil {
			return fmt.Errorf("error storing model score for %s: %w", tx.ID, err)
		}
		tx.ML = ml
	}

	summary, summaryModel, err := s.Narrator.Summarize(ctx, tx)
	if err != nil {
		return fmt.Errorf("error generating summary for %s: %w", tx.ID, err)
	}

	if err := s.Repo.ReleaseSuccess(ctx, tx.ID, summary, summaryModel); err != nil {
		return fmt.Errorf("error releasing %s: %w", tx.ID, err)
	}

	s.publishEnriched(ctx, tx, assessment, summaryModel)
	return nil
}

func (s *EnrichmentService) publishEnriched(ctx context.Context, tx *models.Transaction, assessment *models.RiskAssessment, summaryModel string) {
	if s.Publisher == nil {
		return
	}

	event := models.TransactionEnrichedEvent{
		ID:            tx.ID,
		Decision:      string(tx.Decision),
		InternalScore: assessment.Score,
		InternalLabel: string(assessment.Label),
		SummaryModel:  summaryModel,
		WorkerID:      s.WorkerID,
		EnrichedAt:    time.Now(),
	}
	if tx.ML != nil {
		prob := tx.ML.ProbFraud
		event.ProbFraud = &prob
	}

	if err := s.Publisher.Publish(ctx, models.TransactionEnrichedTopic, tx.ID, event); err != nil {
		logrus.Errorf("Error publishing enrichment for %s: %s", tx.ID, err.Error())
	}
}
