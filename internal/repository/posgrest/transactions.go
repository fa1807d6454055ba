package posgrest

import (
	"context"
	"fmt"
	"time"

	"github.com/falliso3/capstone-fraud-rpa/internal/models"
	"gorm.io/gorm"
)

// TransactionRepository persists the curated transaction projection and
// answers the history queries behind velocity scoring and the worker
// queue.
type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{
		db,
	}
}

func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*models.Transaction, error) {
	var tx models.Transaction
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&tx).Error; err != nil {
		return nil, err
	}
	return &tx, nil
}

// Save writes the whole document back. Single-row writes are the unit of
// atomicity; there are no cross-document transactions.
func (r *TransactionRepository) Save(ctx context.Context, tx *models.Transaction) error {
	return r.db.WithContext(ctx).Save(tx).Error
}

// ListRecent returns up to limit transactions, newest platform timestamp
// first.
func (r *TransactionRepository) ListRecent(ctx context.Context, limit int) (*[]models.Transaction, error) {
	var txs []models.Transaction
	err := r.db.WithContext(ctx).
		Order("created DESC").
		Limit(limit).
		Find(&txs).Error
	if err != nil {
		return nil, err
	}
	return &txs, nil
}

// FindByCharge locates the transaction whose latest_charge or charges
// set contains the given charge id. Disputes arrive keyed by charge, so
// this is the dispute projection's lookup path.
func (r *TransactionRepository) FindByCharge(ctx context.Context, chargeID string) (*models.Transaction, error) {
	var tx models.Transaction
	err := r.db.WithContext(ctx).
		Where("latest_charge = ? OR charges @> ?::jsonb", chargeID, fmt.Sprintf(`[%q]`, chargeID)).
		First(&tx).Error
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

// MarkSummaryNeeded re-queues a transaction for enrichment. Returns
// gorm.ErrRecordNotFound when the id does not exist.
func (r *TransactionRepository) MarkSummaryNeeded(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"summary_needed": true,
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ClaimOne atomically claims the most recently updated transaction that
// needs enrichment and is not under a live lease. The sub-select and the
// flag update run as one statement, and SKIP LOCKED keeps two workers
// from ever claiming the same row. Returns (nil, nil) when nothing is
// eligible.
func (r *TransactionRepository) ClaimOne(ctx context.Context, leaseDuration time.Duration) (*models.Transaction, error) {
	now := time.Now()
	staleBefore := now.Add(-leaseDuration)

	var tx models.Transaction
	result := r.db.WithContext(ctx).Raw(`
		UPDATE transactions
		SET summary_in_progress = true,
		    summary_claimed_at = ?,
		    updated_at = ?
		WHERE id = (
			SELECT id FROM transactions
			WHERE summary_needed = true
			  AND (summary_in_progress = false OR summary_claimed_at < ?)
			ORDER BY updated_at DESC
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING *`,
		now, now, staleBefore,
	).Scan(&tx)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &tx, nil
}

// SaveInternalRisk persists a freshly computed rule assessment.
func (r *TransactionRepository) SaveInternalRisk(ctx context.Context, id string, assessment *models.RiskAssessment) error {
	return r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"internal_risk": assessment,
			"updated_at":    time.Now(),
		}).Error
}

// SaveMLScore persists the external model's answer and clears any prior
// model error.
func (r *TransactionRepository) SaveMLScore(ctx context.Context, id string, score *models.MLScore) error {
	return r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"ml":            score,
			"ml_last_error": nil,
			"updated_at":    time.Now(),
		}).Error
}

func (r *TransactionRepository) SaveMLError(ctx context.Context, id string, message string) error {
	return r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"ml_last_error": message,
			"updated_at":    time.Now(),
		}).Error
}

// ReleaseSuccess stores the narrative, clears the queue flags and drops
// the lease in one write.
func (r *TransactionRepository) ReleaseSuccess(ctx context.Context, id string, summary string, summaryModel string) error {
	return r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"summary":             summary,
			"summary_model":       summaryModel,
			"summary_needed":      false,
			"summary_in_progress": false,
			"summary_last_error":  nil,
			"updated_at":          time.Now(),
		}).Error
}

// ReleaseFailure drops the lease but keeps summary_needed set so the next
// eligible cycle retries, recording why this one failed.
func (r *TransactionRepository) ReleaseFailure(ctx context.Context, id string, message string) error {
	return r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"summary_in_progress": false,
			"summary_last_error":  message,
			"summary_failures":    gorm.Expr("summary_failures + 1"),
			"updated_at":          time.Now(),
		}).Error
}

// identifierScope narrows a query to one card identifier.
func identifierScope(db *gorm.DB, id models.CardIdentifier) *gorm.DB {
	if id.ByFingerprint() {
		return db.Where("card_fingerprint = ?", id.Fingerprint)
	}
	return db.Where("card_brand = ? AND card_last4 = ?", id.Brand, id.Last4)
}

// CountSince counts transactions for an identifier created at or after
// the given platform timestamp (epoch seconds).
func (r *TransactionRepository) CountSince(ctx context.Context, id models.CardIdentifier, since int64) (int64, error) {
	var count int64
	err := identifierScope(r.db.WithContext(ctx).Model(&models.Transaction{}), id).
		Where("created >= ?", since).
		Count(&count).Error
	return count, err
}

func (r *TransactionRepository) AmountStatsSince(ctx context.Context, id models.CardIdentifier, since int64) (*models.AmountStats, error) {
	var stats models.AmountStats
	err := identifierScope(r.db.WithContext(ctx).Model(&models.Transaction{}), id).
		Where("created >= ?", since).
		Select("COALESCE(SUM(amount), 0) AS total, MIN(amount) AS min, MAX(amount) AS max").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// RecentSince returns up to limit samples for an identifier inside a
// window, newest first.
func (r *TransactionRepository) RecentSince(ctx context.Context, id models.CardIdentifier, since int64, limit int) ([]models.TxSample, error) {
	var samples []models.TxSample
	err := identifierScope(r.db.WithContext(ctx).Model(&models.Transaction{}), id).
		Where("created >= ?", since).
		Select("amount, status, created").
		Order("created DESC").
		Limit(limit).
		Scan(&samples).Error
	if err != nil {
		return nil, err
	}
	return samples, nil
}

// CountWithStatusSince counts transactions for an identifier inside a
// window whose status is one of the given values.
func (r *TransactionRepository) CountWithStatusSince(ctx context.Context, id models.CardIdentifier, since int64, statuses []string) (int64, error) {
	var count int64
	err := identifierScope(r.db.WithContext(ctx).Model(&models.Transaction{}), id).
		Where("created >= ?", since).
		Where("status IN ?", statuses).
		Count(&count).Error
	return count, err
}
