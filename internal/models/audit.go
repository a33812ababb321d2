package models

import "time"

// AuditEvent is one immutable entry in the hiring audit trail. Events are
// append-only; overwritten row annotations (like interview bypasses) keep
// their history here.
type AuditEvent struct {
	EventID    string         `bson:"event_id" json:"event_id"` // uuid v4
	EntityType string         `bson:"entity_type" json:"entity_type"`
	EntityID   string         `bson:"entity_id" json:"entity_id"`
	Action     string         `bson:"action" json:"action"`
	ActorID    string         `bson:"actor_id" json:"actor_id"`
	Detail     map[string]any `bson:"detail,omitempty" json:"detail,omitempty"`
	CreatedAt  time.Time      `bson:"created_at" json:"created_at"`
}

// Audit entity types and actions.
const (
	AuditEntityApplication = "application"
	AuditEntityInterview   = "interview"
	AuditEntityOffer       = "offer"

	AuditActionSubmitted    = "submitted"
	AuditActionStageChanged = "stage_changed"
	AuditActionBypassed     = "bypassed"
	AuditActionDecided      = "decided"
)
