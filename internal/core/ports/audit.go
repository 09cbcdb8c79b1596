package ports

import (
	"context"
	"time"

	"github.com/adminhub/user-management/internal/core/domain"
)

// AuditEntryInput is the DTO handed from the service layer to the audit
// pipeline.
type AuditEntryInput struct {
	RecordID   string
	RecordName string
	Action     string
	Actor      string
	Timestamp  time.Time
}

// AuditService processes a single queued audit event.
type AuditService interface {
	Process(ctx context.Context, input AuditEntryInput) error
}

// AuditRepository persists audit entries to the audit trail collection.
type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.AuditEntry) error
}

// AuditRecorder is the narrow interface the user service uses to hand
// mutations to the asynchronous audit pipeline.
type AuditRecorder interface {
	Enqueue(input AuditEntryInput)
}
