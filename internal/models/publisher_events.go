package models

import "time"

const (
	TransactionDecisionedTopic = "transactions.decisioned"
	TransactionEnrichedTopic   = "transactions.enriched"
	FraudDLQTopic              = "fraud.dlq"
)

// TransactionDecisionedEvent announces a fresh decision after an event
// was projected into its transaction.
type TransactionDecisionedEvent struct {
	ID            string    `json:"id"`
	Decision      string    `json:"decision"`
	Status        string    `json:"status"`
	Amount        int64     `json:"amount"`
	Currency      string    `json:"currency"`
	LastEventID   string    `json:"last_event_id"`
	LastEventType string    `json:"last_event_type"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TransactionEnrichedEvent announces a completed enrichment pass.
type TransactionEnrichedEvent struct {
	ID            string    `json:"id"`
	Decision      string    `json:"decision"`
	InternalScore int       `json:"internal_score"`
	InternalLabel string    `json:"internal_label"`
	ProbFraud     *float64  `json:"prob_fraud,omitempty"`
	SummaryModel  string    `json:"summary_model"`
	WorkerID      string    `json:"worker_id"`
	EnrichedAt    time.Time `json:"enriched_at"`
}

type DLQMessage struct {
	OriginalTopic string    `json:"original_topic"`
	Key           string    `json:"key"`
	Value         string    `json:"value"`
	Timestamp     time.Time `json:"timestamp"`
	Attempts      int       `json:"attempts"`
}
