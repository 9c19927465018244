// Package domain defines the core outbox domain entities and types.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// OutboxEventStatus represents the status of an outbox event
type OutboxEventStatus string

const (
	OutboxEventStatusPending   OutboxEventStatus = "pending"
	OutboxEventStatusProcessed OutboxEventStatus = "processed"
	OutboxEventStatusFailed    OutboxEventStatus = "failed"
)

// Event types emitted by the inventory and user modules.
const (
	EventTypeAssetCreated    = "asset.created"
	EventTypeAssetUpdated    = "asset.updated"
	EventTypeAssetDeleted    = "asset.deleted"
	EventTypeUserCreated     = "user.created"
	EventTypeUserRoleUpdated = "user.role_updated"
	EventTypeUserDeleted     = "user.deleted"
)

// OutboxEvent represents an event in the transactional outbox pattern
type OutboxEvent struct {
	ID          uuid.UUID
	EventType   string
	Payload     string
	Status      OutboxEventStatus
	Retries     int
	LastError   *string
	ProcessedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
