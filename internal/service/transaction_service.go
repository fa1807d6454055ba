package service

import (
	"context"

	"github.com/falliso3/capstone-fraud-rpa/internal/models"
)

// QueryRepo defines the interface for the read/requeue operations behind
// the collaborator-facing API.
type QueryRepo interface {
	ListRecent(ctx context.Context, limit int) (*[]models.Transaction, error)
	GetByID(ctx context.Context, id string) (*models.Transaction, error)
	MarkSummaryNeeded(ctx context.Context, id string) error
}

type TransactionService struct {
	Repo QueryRepo
}

func NewTransactionService(repo QueryRepo) *TransactionService {
	return &TransactionService{
		Repo: repo,
	}
}

func (s *TransactionService) ListRecent(ctx context.Context, limit int) (*[]models.Transaction, error) {
	return s.Repo.ListRecent(ctx, limit)
}

func (s *TransactionService) GetByID(ctx context.Context, id string) (*models.Transaction, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *TransactionService) MarkSummaryNeeded(ctx context.Context, id string) error {
	return s.Repo.MarkSummaryNeeded(ctx, id)
}
