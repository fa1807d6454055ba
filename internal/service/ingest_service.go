package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/falliso3/capstone-fraud-rpa/internal/metrics"
	"github.com/falliso3/capstone-fraud-rpa/internal/models"
	"github.com/falliso3/capstone-fraud-rpa/internal/models/dto"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// EventRepo defines the interface for the append-only event log.
type EventRepo interface {
	Upsert(ctx context.Context, event *models.StripeEvent) error
}

// TransactionRepo defines the interface for the curated transaction
// projection used by the ingestion path.
type TransactionRepo interface {
	GetByID(ctx context.Context, id string) (*models.Transaction, error)
	FindByCharge(ctx context.Context, chargeID string) (*models.Transaction, error)
	Save(ctx context.Context, tx *models.Transaction) error
}

// Publisher defines the interface for publishing events to Kafka topics.
type Publisher interface {
	Publish(ctx context.Context, topic string, key string, message interface{}) error
}

// IngestService records every webhook delivery and folds the event
// families it understands into the transaction view. Storage of the raw
// event is the unit of atomicity: a projection failure never rolls it
// back.
type IngestService struct {
	Events       EventRepo
	Transactions TransactionRepo
	Publisher    Publisher
}

func NewIngestService(events EventRepo, transactions TransactionRepo, publisher Publisher) *IngestService {
	return &IngestService{
		Events:       events,
		Transactions: transactions,
		Publisher:    publisher,
	}
}

// ProcessEvent stores the raw event and updates the projection. The
// returned error reflects only the event-store write; projection errors
// are logged and repaired by later related events.
func (s *IngestService) ProcessEvent(ctx context.Context, event *dto.Event) error {
	pointers := dto.ExtractPointers(event)

	stored := &models.StripeEvent{
		ID:         event.ID,
		Type:       event.Type,
		Created:    event.Created,
		Livemode:   event.Livemode,
		Data:       models.RawJSON(event.Data.Object),
		IntentID:   pointers.IntentID,
		ChargeID:   pointers.ChargeID,
		ObjectType: pointers.ObjectType,
		ObjectID:   pointers.ObjectID,
		ReceivedAt: time.Now(),
	}
	if err := stored.Validate(); err != nil {
		return err
	}

	if err := s.Events.Upsert(ctx, stored); err != nil {
		metrics.EventsTotal.WithLabelValues(eventFamily(event.Type), "store_error").Inc()
		return fmt.Errorf("error storing event %s: %w", event.ID, err)
	}

	if err := s.project(ctx, event); err != nil {
		// The raw event is durable; a later related event or manual
		// reconciliation repairs the curated view.
		logrus.Errorf("Projection failed for event %s (%s): %s", event.ID, event.Type, err.Error())
		metrics.EventsTotal.WithLabelValues(eventFamily(event.Type), "projection_error").Inc()
		return nil
	}

	metrics.EventsTotal.WithLabelValues(eventFamily(event.Type), "ok").Inc()
	return nil
}

// shouldQueueSummary reports whether an event family materially changes
// fraud context and therefore queues enrichment.
func shouldQueueSummary(eventType string) bool {
	return strings.HasPrefix(eventType, "charge.") ||
		strings.HasPrefix(eventType, "payment_intent.") ||
		strings.HasPrefix(eventType, "charge.dispute.")
}

func eventFamily(eventType string) string {
	if i := strings.Index(eventType, "."); i > 0 {
		return eventType[:i]
	}
	return "other"
}

func (s *IngestService) project(ctx context.Context, event *dto.Event) error {
	switch {
	case strings.HasPrefix(event.Type, "charge.dispute."):
		return s.projectDispute(ctx, event)
	case strings.HasPrefix(event.Type, "charge."):
		return s.projectCharge(ctx, event)
	case strings.HasPrefix(event.Type, "payment_intent."):
		return s.projectIntent(ctx, event)
	default:
		// Recorded in the event log, nothing to project.
		return nil
	}
}

// getOrNew loads the transaction or initializes one with queue defaults.
func (s *IngestService) getOrNew(ctx context.Context, id string) (*models.Transaction, error) {
	tx, err := s.Transactions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.Transaction{
				ID:                id,
				SummaryInProgress: false,
				SummaryFailures:   0,
			}, nil
		}
		return nil, err
	}
	return tx, nil
}

func (s *IngestService) projectCharge(ctx context.Context, event *dto.Event) error {
	ch, err := event.Charge()
	if err != nil {
		return err
	}

	txID := ch.ID
	if ch.PaymentIntent != nil && *ch.PaymentIntent != "" {
		txID = *ch.PaymentIntent
	}

	tx, err := s.getOrNew(ctx, txID)
	if err != nil {
		return err
	}

	tx.PaymentIntent = ch.PaymentIntent
	tx.LatestCharge = &ch.ID
	tx.Amount = ch.Amount
	tx.Currency = ch.Currency
	tx.Status = ch.Status
	tx.Paid = ch.Paid
	tx.Created = ch.Created
	tx.Livemode = ch.Livemode
	tx.Description = ch.Description
	tx.Disputed = ch.Disputed
	tx.DisputeID = ch.Dispute
	tx.Review = ch.Review

	if ch.BillingDetails != nil && ch.BillingDetails.Address != nil {
		tx.BillingCountry = ch.BillingDetails.Address.Country
	}
	if ch.Shipping != nil && ch.Shipping.Address != nil {
		tx.ShippingCountry = ch.Shipping.Address.Country
	}

	if outcome := ch.Outcome; outcome != nil {
		tx.Risk = models.Risk{
			Level:              outcome.RiskLevel,
			Score:              outcome.RiskScore,
			NetworkStatus:      outcome.NetworkStatus,
			OutcomeType:        outcome.Type,
			SellerMessage:      outcome.SellerMessage,
			Reason:             outcome.Reason,
			NetworkDeclineCode: outcome.NetworkDeclineCode,
			NetworkAdviceCode:  outcome.NetworkAdviceCode,
		}
	}

	if ch.PaymentMethodDetails != nil && ch.PaymentMethodDetails.Card != nil {
		card := ch.PaymentMethodDetails.Card
		tx.CardBrand = card.Brand
		tx.CardLast4 = card.Last4
		tx.CardCountry = card.Country
		tx.CardFunding = card.Funding
		tx.CardNetwork = card.Network
		tx.CardFingerprint = card.Fingerprint
		if card.Checks != nil {
			tx.Checks = models.Checks{
				CVCCheck:               card.Checks.CVCCheck,
				AddressLine1Check:      card.Checks.AddressLine1Check,
				AddressPostalCodeCheck: card.Checks.AddressPostalCodeCheck,
			}
		}
	}

	tx.Charges = tx.Charges.Add(ch.ID)
	s.traceEvent(tx, event)
	tx.Decision = models.ComputeDecision(tx)

	if err := s.Transactions.Save(ctx, tx); err != nil {
		return err
	}

	s.publishDecision(ctx, tx)
	return nil
}

func (s *IngestService) projectIntent(ctx context.Context, event *dto.Event) error {
	pi, err := event.PaymentIntent()
	if err != nil {
		return err
	}

	tx, err := s.getOrNew(ctx, pi.ID)
	if err != nil {
		return err
	}

	tx.PaymentIntent = &pi.ID
	tx.Amount = pi.Amount
	tx.Currency = pi.Currency
	tx.Status = pi.Status
	tx.Created = pi.Created
	tx.Livemode = pi.Livemode
	if pi.LatestCharge != nil {
		tx.LatestCharge = pi.LatestCharge
		tx.Charges = tx.Charges.Add(*pi.LatestCharge)
	}
	s.traceEvent(tx, event)

	if err := s.Transactions.Save(ctx, tx); err != nil {
		return err
	}

	// Recompute against the post-merge state: risk or dispute fields from
	// an earlier charge event may already be present. A concurrent writer
	// sneaking in between the two writes is benign, decision is a cache.
	return s.recomputeDecision(ctx, tx.ID)
}

func (s *IngestService) projectDispute(ctx context.Context, event *dto.Event) error {
	dp, err := event.Dispute()
	if err != nil {
		return err
	}
	if dp.Charge == nil || *dp.Charge == "" {
		logrus.Warnf("Dispute event %s references no charge, skipping projection", event.ID)
		return nil
	}

	tx, err := s.Transactions.FindByCharge(ctx, *dp.Charge)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logrus.Warnf("No transaction found for disputed charge %s (event %s)", *dp.Charge, event.ID)
			return nil
		}
		return err
	}

	tx.Disputed = true
	tx.DisputeID = &dp.ID
	tx.DisputeDetails = &models.DisputeDetails{
		ID:       dp.ID,
		Status:   dp.Status,
		Reason:   dp.Reason,
		Amount:   dp.Amount,
		Currency: dp.Currency,
		Created:  dp.Created,
	}
	s.traceEvent(tx, event)

	if err := s.Transactions.Save(ctx, tx); err != nil {
		return err
	}

	return s.recomputeDecision(ctx, tx.ID)
}

func (s *IngestService) traceEvent(tx *models.Transaction, event *dto.Event) {
	tx.EventIDs = tx.EventIDs.Add(event.ID)
	eventID := event.ID
	eventType := event.Type
	tx.LastEventID = &eventID
	tx.LastEventType = &eventType
	if shouldQueueSummary(event.Type) {
		tx.SummaryNeeded = true
	}
}

func (s *IngestService) recomputeDecision(ctx context.Context, id string) error {
	latest, err := s.Transactions.GetByID(ctx, id)
	if err != nil {
		return err
	}
	latest.Decision = models.ComputeDecision(latest)
	if err := s.Transactions.Save(ctx, latest); err != nil {
		return err
	}
	s.publishDecision(ctx, latest)
	return nil
}

// publishDecision is best-effort: a Kafka outage must not fail the
// webhook delivery.
func (s *IngestService) publishDecision(ctx context.Context, tx *models.Transaction) {
	metrics.DecisionsTotal.WithLabelValues(string(tx.Decision)).Inc()

	if s.Publisher == nil {
		return
	}

	event := models.TransactionDecisionedEvent{
		ID:        tx.ID,
		Decision:  string(tx.Decision),
		Status:    tx.Status,
		Amount:    tx.Amount,
		Currency:  tx.Currency,
		UpdatedAt: tx.UpdatedAt,
	}
	if tx.LastEventID != nil {
		event.LastEventID = *tx.LastEventID
	}
	if tx.LastEventType != nil {
		event.LastEventType = *tx.LastEventType
	}

	if err := s.Publisher.Publish(ctx, models.TransactionDecisionedTopic, tx.ID, event); err != nil {
		logrus.Errorf("Error publishing decision for %s: %s", tx.ID, err.Error())
	}
}
