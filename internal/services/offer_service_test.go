package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentflow/talentflow/internal/models"
	pgrepo "github.com/talentflow/talentflow/internal/repositories/postgres"
	"github.com/talentflow/talentflow/internal/utils"
	"gorm.io/gorm"
)

func newOfferService(t *testing.T) (OfferService, *gorm.DB, *fakeAuditRepo) {
	t.Helper()
	db := newTestDB(t)
	audit := &fakeAuditRepo{}
	svc := NewOfferService(
		pgrepo.NewOfferRepo(db),
		pgrepo.NewApplicationRepo(db),
		NewAuditor(audit, newTestLogger()),
	)
	return svc, db, audit
}

var offerDetails = json.RawMessage(`{"salary":95000,"currency":"USD","start_date":"2026-10-01"}`)

func TestOfferSubmitStartsAtFirstGate(t *testing.T) {
	svc, db, audit := newOfferService(t)
	job := seedJob(t, db, "Engineering", models.JobOpen)
	app := seedApplication(t, db, job.ID, models.StageOfferExtended)
	recruiter := uuid.NewString()

	offer, err := svc.Submit(context.Background(), app.ID, offerDetails, recruiter)
	require.NoError(t, err)

	assert.Equal(t, models.OfferPendingHM, offer.Status)
	assert.Equal(t, recruiter, offer.RecruiterID)
	assert.False(t, offer.RecruiterSubmittedAt.IsZero())
	assert.Nil(t, offer.HiringManagerStatus)
	assert.Nil(t, offer.BusinessHeadStatus)
	assert.Nil(t, offer.HRManagerStatus)

	require.Len(t, audit.events, 1)
	assert.Equal(t, models.AuditActionSubmitted, audit.events[0].Action)
	assert.Equal(t, offer.ID, audit.events[0].EntityID)
}

func TestOfferSubmitUnknownApplication(t *testing.T) {
	svc, _, _ := newOfferService(t)

	_, err := svc.Submit(context.Background(), uuid.NewString(), offerDetails, uuid.NewString())
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}

func TestOfferSubmitRejectsSecondActiveOffer(t *testing.T) {
	svc, db, _ := newOfferService(t)
	job := seedJob(t, db, "Engineering", models.JobOpen)
	app := seedApplication(t, db, job.ID, models.StageOfferExtended)

	_, err := svc.Submit(context.Background(), app.ID, offerDetails, uuid.NewString())
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), app.ID, offerDetails, uuid.NewString())
	assert.True(t, utils.IsCode(err, utils.CodeConflict))
}

func TestOfferSubmitAllowedAfterTerminalOffer(t *testing.T) {
	svc, db, _ := newOfferService(t)
	job := seedJob(t, db, "Engineering", models.JobOpen)
	app := seedApplication(t, db, job.ID, models.StageOfferExtended)
	ctx := context.Background()

	first, err := svc.Submit(ctx, app.ID, offerDetails, uuid.NewString())
	require.NoError(t, err)

	_, err = svc.Decide(ctx, first.ID, uuid.NewString(), models.RoleHiringManager, models.DecisionRejected, "budget cut")
	require.NoError(t, err)

	second, err := svc.Submit(ctx, app.ID, offerDetails, uuid.NewString())
	require.NoError(t, err)
	assert.Equal(t, models.OfferPendingHM, second.Status)
}

func TestOfferDecideFullApprovalChain(t *testing.T) {
	svc, db, audit := newOfferService(t)
	job := seedJob(t, db, "Engineering", models.JobOpen)
	app := seedApplication(t, db, job.ID, models.StageOfferExtended)
	ctx := context.Background()

	offer, err := svc.Submit(ctx, app.ID, offerDetails, uuid.NewString())
	require.NoError(t, err)

	hmID, bhID, hrID := uuid.NewString(), uuid.NewString(), uuid.NewString()

	offer, err = svc.Decide(ctx, offer.ID, hmID, models.RoleHiringManager, models.DecisionApproved, "strong interviews")
	require.NoError(t, err)
	assert.Equal(t, models.OfferPendingBH, offer.Status)
	require.NotNil(t, offer.HiringManagerStatus)
	assert.Equal(t, models.DecisionApproved, *offer.HiringManagerStatus)
	assert.Equal(t, hmID, *offer.HiringManagerID)
	assert.Nil(t, offer.BusinessHeadStatus)

	offer, err = svc.Decide(ctx, offer.ID, bhID, models.RoleBusinessHead, models.DecisionApproved, "headcount approved")
	require.NoError(t, err)
	assert.Equal(t, models.OfferPendingHR, offer.Status)
	require.NotNil(t, offer.BusinessHeadStatus)
	assert.Equal(t, bhID, *offer.BusinessHeadID)

	offer, err = svc.Decide(ctx, offer.ID, hrID, models.RoleHRManager, models.DecisionApproved, "")
	require.NoError(t, err)
	assert.Equal(t, models.OfferApproved, offer.Status)
	require.NotNil(t, offer.HRManagerStatus)
	assert.Equal(t, hrID, *offer.HRManagerID)

	// earlier gates keep their own actors and timestamps
	assert.Equal(t, hmID, *offer.HiringManagerID)
	assert.Equal(t, bhID, *offer.BusinessHeadID)
	require.NotNil(t, offer.HiringManagerApprovedAt)
	require.NotNil(t, offer.BusinessHeadApprovedAt)
	require.NotNil(t, offer.HRManagerApprovedAt)
	assert.False(t, offer.HiringManagerApprovedAt.After(*offer.BusinessHeadApprovedAt))
	assert.False(t, offer.BusinessHeadApprovedAt.After(*offer.HRManagerApprovedAt))

	decided := audit.byAction(models.AuditActionDecided)
	assert.Len(t, decided, 3)
}

func TestOfferDecideRejectionIsAbsorbing(t *testing.T) {
	svc, db, _ := newOfferService(t)
	job := seedJob(t, db, "Engineering", models.JobOpen)
	app := seedApplication(t, db, job.ID, models.StageOfferExtended)
	ctx := context.Background()

	offer, err := svc.Submit(ctx, app.ID, offerDetails, uuid.NewString())
	require.NoError(t, err)

	offer, err = svc.Decide(ctx, offer.ID, uuid.NewString(), models.RoleHiringManager, models.DecisionRejected, "not a fit")
	require.NoError(t, err)
	assert.Equal(t, models.OfferRejected, offer.Status)
	assert.Nil(t, offer.BusinessHeadStatus)
	assert.Nil(t, offer.HRManagerStatus)

	_, err = svc.Decide(ctx, offer.ID, uuid.NewString(), models.RoleBusinessHead, models.DecisionApproved, "")
	assert.True(t, utils.IsCode(err, utils.CodeInvalidTransition))
}

func TestOfferDecideOutOfOrderGate(t *testing.T) {
	svc, db, _ := newOfferService(t)
	job := seedJob(t, db, "Engineering", models.JobOpen)
	app := seedApplication(t, db, job.ID, models.StageOfferExtended)
	ctx := context.Background()

	offer, err := svc.Submit(ctx, app.ID, offerDetails, uuid.NewString())
	require.NoError(t, err)

	_, err = svc.Decide(ctx, offer.ID, uuid.NewString(), models.RoleBusinessHead, models.DecisionApproved, "")
	assert.True(t, utils.IsCode(err, utils.CodeInvalidTransition))

	_, err = svc.Decide(ctx, offer.ID, uuid.NewString(), models.RoleHRManager, models.DecisionApproved, "")
	assert.True(t, utils.IsCode(err, utils.CodeInvalidTransition))

	// the pending gate still works after the failed attempts
	offer, err = svc.Decide(ctx, offer.ID, uuid.NewString(), models.RoleHiringManager, models.DecisionApproved, "")
	require.NoError(t, err)
	assert.Equal(t, models.OfferPendingBH, offer.Status)
}

func TestOfferDecideNonApproverRole(t *testing.T) {
	svc, db, _ := newOfferService(t)
	job := seedJob(t, db, "Engineering", models.JobOpen)
	app := seedApplication(t, db, job.ID, models.StageOfferExtended)
	ctx := context.Background()

	offer, err := svc.Submit(ctx, app.ID, offerDetails, uuid.NewString())
	require.NoError(t, err)

	_, err = svc.Decide(ctx, offer.ID, uuid.NewString(), models.RoleRecruiter, models.DecisionApproved, "")
	assert.True(t, utils.IsCode(err, utils.CodeForbidden))

	_, err = svc.Decide(ctx, offer.ID, uuid.NewString(), models.RoleAdmin, models.DecisionApproved, "")
	assert.True(t, utils.IsCode(err, utils.CodeForbidden))
}

func TestOfferDecideValidation(t *testing.T) {
	svc, _, _ := newOfferService(t)
	ctx := context.Background()

	_, err := svc.Decide(ctx, "", uuid.NewString(), models.RoleHiringManager, models.DecisionApproved, "")
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))

	_, err = svc.Decide(ctx, uuid.NewString(), uuid.NewString(), models.RoleHiringManager, models.Decision("Maybe"), "")
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))

	_, err = svc.Decide(ctx, uuid.NewString(), uuid.NewString(), models.RoleHiringManager, models.DecisionApproved, "")
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}

func TestOfferListByApplication(t *testing.T) {
	svc, db, _ := newOfferService(t)
	job := seedJob(t, db, "Engineering", models.JobOpen)
	app := seedApplication(t, db, job.ID, models.StageOfferExtended)
	ctx := context.Background()

	first, err := svc.Submit(ctx, app.ID, offerDetails, uuid.NewString())
	require.NoError(t, err)
	_, err = svc.Decide(ctx, first.ID, uuid.NewString(), models.RoleHiringManager, models.DecisionRejected, "")
	require.NoError(t, err)
	_, err = svc.Submit(ctx, app.ID, offerDetails, uuid.NewString())
	require.NoError(t, err)

	out, err := svc.ListByApplication(ctx, app.ID)
	require.NoError(t, err)
	assert.Len(t, out, 2)
}
