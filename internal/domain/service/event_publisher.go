package service

import (
	"context"
)

// ProfileEvent is the audit record emitted after a successful mutation.
// Publishing is best effort and never blocks or fails the request.
type ProfileEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	Action    string `json:"action"`
	ProfileID string `json:"profile_id,omitempty"` // Empty for bulk deletes
	OwnerID   string `json:"owner_id"`
	Count     int64  `json:"count,omitempty"` // Records affected by bulk deletes
}

// EventPublisher defines the interface for publishing audit events to a message queue
type EventPublisher interface {
	// PublishProfileEvent publishes a profile lifecycle event
	PublishProfileEvent(ctx context.Context, event *ProfileEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
