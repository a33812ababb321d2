package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/talentflow/talentflow/internal/models"
	pgrepo "github.com/talentflow/talentflow/internal/repositories/postgres"
	"github.com/talentflow/talentflow/internal/utils"
	"gorm.io/datatypes"
)

// OfferService drives an offer through the sequential HM -> BH -> HR
// approval gates. Each gate may only decide while the offer is pending on
// it; rejection at any gate is absorbing.
type OfferService interface {
	Submit(ctx context.Context, applicationID string, offerDetails json.RawMessage, recruiterID string) (*models.OfferApproval, error)
	Decide(ctx context.Context, offerID string, actorID string, role models.Role, decision models.Decision, comments string) (*models.OfferApproval, error)
	ListByApplication(ctx context.Context, applicationID string) ([]models.OfferApproval, error)
}

type offerService struct {
	offers       pgrepo.OfferRepository
	applications pgrepo.ApplicationRepository
	audit        *Auditor
}

func NewOfferService(offers pgrepo.OfferRepository, applications pgrepo.ApplicationRepository, audit *Auditor) OfferService {
	return &offerService{offers: offers, applications: applications, audit: audit}
}

func (s *offerService) Submit(ctx context.Context, applicationID string, offerDetails json.RawMessage, recruiterID string) (*models.OfferApproval, error) {
	const op = "OfferService.Submit"

	if applicationID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "application_id is required", nil)
	}

	if _, err := s.applications.GetByID(ctx, applicationID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "application not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to look up application", err)
	}

	now := time.Now().UTC()
	offer := &models.OfferApproval{
		ID:                   uuid.NewString(),
		ApplicationID:        applicationID,
		OfferDetails:         datatypes.JSON(offerDetails),
		RecruiterID:          recruiterID,
		RecruiterSubmittedAt: now,
		Status:               models.OfferPendingHM,
		CreatedAt:            now,
	}

	if err := s.offers.CreateIfNoActive(ctx, offer); err != nil {
		if errors.Is(err, utils.ErrConflict) {
			return nil, utils.E(utils.CodeConflict, op, "application already has an active offer", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to create offer", err)
	}

	s.audit.record(ctx, models.AuditEntityOffer, offer.ID, models.AuditActionSubmitted, recruiterID, map[string]any{
		"application_id": applicationID,
	})
	return offer, nil
}

func (s *offerService) Decide(ctx context.Context, offerID string, actorID string, role models.Role, decision models.Decision, comments string) (*models.OfferApproval, error) {
	const op = "OfferService.Decide"

	if offerID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "offer id is required", nil)
	}
	if !decision.Valid() {
		return nil, utils.E(utils.CodeInvalidArgument, op, "decision must be Approved or Rejected", nil)
	}

	gate, ok := models.GateFor(role)
	if !ok {
		return nil, utils.E(utils.CodeForbidden, op, "role is not an offer approver", nil)
	}

	offer, err := s.offers.GetByID(ctx, offerID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "offer not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get offer", err)
	}

	if offer.Status.Terminal() {
		return nil, utils.E(utils.CodeInvalidTransition, op,
			fmt.Sprintf("offer is already %s", offer.Status), nil)
	}
	if offer.Status != gate.Pending {
		return nil, utils.E(utils.CodeInvalidTransition, op,
			fmt.Sprintf("offer is %s; it is not this gate's turn", offer.Status), nil)
	}

	now := time.Now().UTC()
	applyGateDecision(offer, role, actorID, decision, comments, now)
	if decision == models.DecisionApproved {
		offer.Status = gate.Next
	} else {
		offer.Status = models.OfferRejected
	}

	if err := s.offers.Update(ctx, offer); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to record decision", err)
	}

	s.audit.record(ctx, models.AuditEntityOffer, offer.ID, models.AuditActionDecided, actorID, map[string]any{
		"role":     string(role),
		"decision": string(decision),
		"status":   string(offer.Status),
	})
	return offer, nil
}

func (s *offerService) ListByApplication(ctx context.Context, applicationID string) ([]models.OfferApproval, error) {
	const op = "OfferService.ListByApplication"

	if applicationID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "application_id is required", nil)
	}

	out, err := s.offers.ListByApplication(ctx, applicationID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list offers", err)
	}
	return out, nil
}

// applyGateDecision writes the field group owned by role; other gates'
// fields stay untouched.
func applyGateDecision(o *models.OfferApproval, role models.Role, actorID string, decision models.Decision, comments string, at time.Time) {
	switch role {
	case models.RoleHiringManager:
		o.HiringManagerID = &actorID
		o.HiringManagerStatus = &decision
		o.HiringManagerComments = &comments
		o.HiringManagerApprovedAt = &at
	case models.RoleBusinessHead:
		o.BusinessHeadID = &actorID
		o.BusinessHeadStatus = &decision
		o.BusinessHeadComments = &comments
		o.BusinessHeadApprovedAt = &at
	case models.RoleHRManager:
		o.HRManagerID = &actorID
		o.HRManagerStatus = &decision
		o.HRManagerComments = &comments
		o.HRManagerApprovedAt = &at
	}
}
