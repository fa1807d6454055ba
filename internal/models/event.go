package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// StripeEvent is the append-only record of one inbound webhook delivery.
// The platform-assigned event id is the primary key, so redeliveries
// collapse into an idempotent overwrite.
type StripeEvent struct {
	ID       string  `gorm:"primaryKey" json:"id"`
	Type     string  `gorm:"index:idx_events_type_created,priority:1" json:"type"`
	Created  int64   `gorm:"index:idx_events_type_created,priority:2" json:"created"`
	Livemode bool    `json:"livemode"`
	Data     RawJSON `gorm:"type:jsonb" json:"data"`

	// Trace pointers extracted at ingest time so a transaction can be
	// walked back to every event that touched it.
	IntentID   *string `gorm:"index" json:"intent_id,omitempty"`
	ChargeID   *string `gorm:"index" json:"charge_id,omitempty"`
	ObjectType *string `json:"object_type,omitempty"`
	ObjectID   *string `gorm:"index" json:"object_id,omitempty"`

	ReceivedAt time.Time `json:"received_at"`
}

func (StripeEvent) TableName() string {
	return "stripe_events"
}

func (e *StripeEvent) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("event id is required")
	}
	return nil
}

// RawJSON stores an opaque JSON document in a jsonb column.
type RawJSON json.RawMessage

func (j RawJSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return string(j), nil
}

func (j *RawJSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		*j = append((*j)[0:0], v...)
	case string:
		*j = RawJSON(v)
	default:
		return errors.New("unsupported type for RawJSON")
	}
	return nil
}

func (j RawJSON) MarshalJSON() ([]byte, error) {
	return json.RawMessage(j).MarshalJSON()
}

func (j *RawJSON) UnmarshalJSON(data []byte) error {
	return (*json.RawMessage)(j).UnmarshalJSON(data)
}

func jsonbValue(v interface{}) (driver.Value, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func jsonbScan(dest interface{}, value interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return errors.New("unsupported type for jsonb column")
	}
}
