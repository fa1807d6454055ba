package posgrest

import (
	"context"

	"github.com/falliso3/capstone-fraud-rpa/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EventRepository persists the append-only webhook event log.
type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{
		db,
	}
}

// Upsert stores an event keyed by its platform id. Redeliveries overwrite
// the same row, so replays are safe.
func (r *EventRepository) Upsert(ctx context.Context, event *models.StripeEvent) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(event).Error
}

// GetByID retrieves a single stored event.
func (r *EventRepository) GetByID(ctx context.Context, id string) (*models.StripeEvent, error) {
	var event models.StripeEvent
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// ListByIntent retrieves every event that referenced a payment intent,
// newest platform timestamp first.
func (r *EventRepository) ListByIntent(ctx context.Context, intentID string) (*[]models.StripeEvent, error) {
	var events []models.StripeEvent
	err := r.db.WithContext(ctx).
		Where("intent_id = ?", intentID).
		Order("created DESC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return &events, nil
}
