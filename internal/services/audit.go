package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/talentflow/talentflow/internal/models"
	mongorepo "github.com/talentflow/talentflow/internal/repositories/mongo"
	"github.com/talentflow/talentflow/internal/utils"
)

// Auditor appends events to the hiring audit trail. Writes are best-effort:
// a failing trail is logged and never fails the request.
type Auditor struct {
	repo mongorepo.AuditRepository
	log  *logrus.Logger
}

func NewAuditor(repo mongorepo.AuditRepository, log *logrus.Logger) *Auditor {
	return &Auditor{repo: repo, log: log}
}

func (a *Auditor) record(ctx context.Context, entityType, entityID, action, actorID string, detail map[string]any) {
	if a == nil || a.repo == nil {
		return
	}
	e := &models.AuditEvent{
		EventID:    uuid.NewString(),
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		ActorID:    actorID,
		Detail:     detail,
	}
	if err := a.repo.Append(ctx, e); err != nil && a.log != nil {
		a.log.WithFields(logrus.Fields{
			"entity_type": entityType,
			"entity_id":   entityID,
			"action":      action,
		}).WithError(err).Warn("audit append failed")
	}
}

type AuditService interface {
	ListByEntity(ctx context.Context, entityType, entityID string) ([]models.AuditEvent, error)
}

type auditService struct {
	repo mongorepo.AuditRepository
}

func NewAuditService(repo mongorepo.AuditRepository) AuditService {
	return &auditService{repo: repo}
}

func (s *auditService) ListByEntity(ctx context.Context, entityType, entityID string) ([]models.AuditEvent, error) {
	const op = "AuditService.ListByEntity"

	if entityType == "" || entityID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "entity_type and entity_id are required", nil)
	}
	if s.repo == nil {
		return nil, utils.E(utils.CodeUnavailable, op, "audit trail is not configured", nil)
	}

	out, err := s.repo.ListByEntity(ctx, entityType, entityID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list audit events", err)
	}
	return out, nil
}
