// Package events publishes notifications about company and job mutations.
// Consumers are external; nothing in this service reads events back.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	EntityCompany = "company"
	EntityJob     = "job"
)

const (
	CompanyCreated = "company.created"
	CompanyUpdated = "company.updated"
	CompanyDeleted = "company.deleted"
	JobCreated     = "job.created"
	JobUpdated     = "job.updated"
	JobDeleted     = "job.deleted"
)

// Event describes one successful mutation. Key is the company handle or the
// job id rendered as text.
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Entity     string    `json:"entity"`
	Key        string    `json:"key"`
	Payload    any       `json:"payload,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
	RequestID  string    `json:"requestId,omitempty"`
}

// New builds an event with a fresh id and the current time.
func New(eventType, entity, key string, payload any) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		Entity:     entity,
		Key:        key,
		Payload:    payload,
		OccurredAt: time.Now().UTC(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// Nop discards every event.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
func (Nop) Close() error                         { return nil }
