package service

import (
	"context"
	"time"
)

// Profile lifecycle event types.
const (
	EventProfileCreated = "profile.created"
	EventProfileUpdated = "profile.updated"
)

// ProfileEvent announces a change to an account's role-specific profile.
type ProfileEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	Type       string    `json:"type"`
	AccountID  string    `json:"account_id"`
	Role       string    `json:"role"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishProfileEvent publishes a profile lifecycle event
	PublishProfileEvent(ctx context.Context, event *ProfileEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
