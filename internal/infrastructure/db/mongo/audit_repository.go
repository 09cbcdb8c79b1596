package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/adminhub/user-management/internal/core/domain"
	"github.com/adminhub/user-management/internal/core/ports"
)

const collectionAudit = "audit_events"

// AuditRepository implements ports.AuditRepository using MongoDB.
type AuditRepository struct {
	db *mongo.Database
}

func NewAuditRepository(db *mongo.Database) ports.AuditRepository {
	return &AuditRepository{db: db}
}

// Insert persists a mutation record to the audit_events collection.
func (r *AuditRepository) Insert(ctx context.Context, entry *domain.AuditEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"record_id":    entry.RecordID,
		"record_name":  entry.RecordName,
		"action":       entry.Action,
		"actor":        entry.Actor,
		"timestamp":    entry.Timestamp.UTC(),
		"processed_at": time.Now().UTC(),
	}

	_, err := r.db.Collection(collectionAudit).InsertOne(ctx, doc)
	return err
}
