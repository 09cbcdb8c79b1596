package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/adminhub/user-management/internal/api/metrics"
	"github.com/adminhub/user-management/internal/core/domain"
	"github.com/adminhub/user-management/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis) for audit events.
type DedupChecker interface {
	IsDuplicate(ctx context.Context, recordID, action string, ts time.Time) (bool, error)
	Mark(ctx context.Context, recordID, action string, ts time.Time) error
}

type auditService struct {
	repo  ports.AuditRepository
	dedup DedupChecker
	log   zerolog.Logger
}

// NewAuditService returns an AuditService implementation.
func NewAuditService(repo ports.AuditRepository, dedup DedupChecker, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, dedup: dedup, log: log}
}

// Process deduplicates and persists a single audit event.
func (s *auditService) Process(ctx context.Context, in ports.AuditEntryInput) error {
	// Idempotency check: silently skip duplicates. A failing check is
	// non-fatal: process the event anyway.
	isDup, err := s.dedup.IsDuplicate(ctx, in.RecordID, in.Action, in.Timestamp)
	if err != nil {
		s.log.Warn().Err(err).Str("record_id", in.RecordID).Msg("dedup check failed, processing anyway")
	} else if isDup {
		s.log.Debug().Str("record_id", in.RecordID).Str("action", in.Action).Msg("duplicate audit event skipped")
		return nil
	}

	if markErr := s.dedup.Mark(ctx, in.RecordID, in.Action, in.Timestamp); markErr != nil {
		s.log.Warn().Err(markErr).Str("record_id", in.RecordID).Msg("failed to set dedup key")
	}

	entry := &domain.AuditEntry{
		RecordID:   in.RecordID,
		RecordName: in.RecordName,
		Action:     in.Action,
		Actor:      in.Actor,
		Timestamp:  in.Timestamp,
	}
	if err := s.repo.Insert(ctx, entry); err != nil {
		metrics.AuditErrorsTotal.WithLabelValues("insert_failed").Inc()
		return fmt.Errorf("process audit event: %w", err)
	}

	metrics.AuditProcessedTotal.WithLabelValues(in.Action).Inc()
	s.log.Info().
		Str("record_id", in.RecordID).
		Str("action", in.Action).
		Str("actor", in.Actor).
		Msg("audit event processed")

	return nil
}
