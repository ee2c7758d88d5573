// Package queue defines message payloads exchanged over the message broker
// and the background consumer that turns them into an audit trail.
package queue

// AuditQueueName is the durable queue every client mutation is published to.
const AuditQueueName = "client.audit"

// Audit actions.
const (
	ActionCreated  = "created"
	ActionUpdated  = "updated"
	ActionArchived = "archived"
	ActionImported = "imported"
)

// ClientAuditEvent is published after every successful client mutation. It
// carries enough information for downstream consumers to log or notify
// without querying the primary database. For bulk imports ClientID and
// FullName are empty and Count holds the number of imported records.
type ClientAuditEvent struct {
	Action     string `json:"action"`
	ClientID   string `json:"client_id,omitempty"`
	FullName   string `json:"full_name,omitempty"`
	Count      int    `json:"count,omitempty"`
	Actor      string `json:"actor"`
	OccurredAt string `json:"occurred_at"`
}
