package domain

import "time"

// Audit actions recorded for user record mutations.
const (
	AuditCreated       = "created"
	AuditUpdated       = "updated"
	AuditStatusToggled = "status_toggled"
	AuditDeleted       = "deleted"
)

// AuditEntry records a single mutation applied to a user record.
type AuditEntry struct {
	RecordID   string
	RecordName string
	Action     string
	Actor      string
	Timestamp  time.Time
}
