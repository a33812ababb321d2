package mongo

import (
	"context"
	"time"

	"github.com/talentflow/talentflow/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AuditRepository interface {
	Append(ctx context.Context, e *models.AuditEvent) error
	ListByEntity(ctx context.Context, entityType, entityID string) ([]models.AuditEvent, error)
}

type auditRepo struct {
	col *mongo.Collection
}

func NewAuditRepo(db *mongo.Database) AuditRepository {
	return &auditRepo{col: db.Collection("audit_events")}
}

func (r *auditRepo) Append(ctx context.Context, e *models.AuditEvent) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	_, err := r.col.InsertOne(ctx, e)
	return err
}

func (r *auditRepo) ListByEntity(ctx context.Context, entityType, entityID string) ([]models.AuditEvent, error) {
	cur, err := r.col.Find(ctx,
		bson.M{"entity_type": entityType, "entity_id": entityID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.AuditEvent
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
