package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentflow/talentflow/internal/models"
	pgrepo "github.com/talentflow/talentflow/internal/repositories/postgres"
	"github.com/talentflow/talentflow/internal/utils"
	"gorm.io/gorm"
)

func newInterviewService(t *testing.T) (InterviewService, *gorm.DB, *fakeAuditRepo) {
	t.Helper()
	db := newTestDB(t)
	audit := &fakeAuditRepo{}
	svc := NewInterviewService(
		pgrepo.NewInterviewRepo(db),
		pgrepo.NewApplicationRepo(db),
		NewAuditor(audit, newTestLogger()),
	)
	return svc, db, audit
}

func TestScheduleDoesNotTouchStage(t *testing.T) {
	svc, db, _ := newInterviewService(t)
	job := seedJob(t, db, "Engineering", models.JobOpen)
	app := seedApplication(t, db, job.ID, models.StageShortlisted)

	row, err := svc.Schedule(context.Background(), ScheduleInterviewInput{
		ApplicationID: app.ID,
		InterviewType: "Technical",
		InterviewerID: uuid.NewString(),
		ScheduledDate: time.Now().UTC().Add(48 * time.Hour),
		Notes:         "round one",
	})
	require.NoError(t, err)
	assert.Equal(t, app.ID, row.ApplicationID)
	assert.False(t, row.BypassLogged)

	// scheduling is not a stage transition
	var got models.Application
	require.NoError(t, db.Where("id = ?", app.ID).Take(&got).Error)
	assert.Equal(t, models.StageShortlisted, got.Stage)
}

func TestScheduleValidation(t *testing.T) {
	svc, _, _ := newInterviewService(t)
	ctx := context.Background()

	_, err := svc.Schedule(ctx, ScheduleInterviewInput{InterviewType: "Technical"})
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))

	_, err = svc.Schedule(ctx, ScheduleInterviewInput{
		ApplicationID: uuid.NewString(),
		InterviewType: "Technical",
		InterviewerID: uuid.NewString(),
	})
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))

	_, err = svc.Schedule(ctx, ScheduleInterviewInput{
		ApplicationID: uuid.NewString(),
		InterviewType: "Technical",
		InterviewerID: uuid.NewString(),
		ScheduledDate: time.Now().UTC(),
	})
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}

func TestListByApplicationOrdersByDate(t *testing.T) {
	svc, db, _ := newInterviewService(t)
	job := seedJob(t, db, "Engineering", models.JobOpen)
	app := seedApplication(t, db, job.ID, models.StageInterviewScheduled)
	ctx := context.Background()
	base := time.Now().UTC()

	for _, offset := range []time.Duration{72 * time.Hour, 24 * time.Hour, 48 * time.Hour} {
		_, err := svc.Schedule(ctx, ScheduleInterviewInput{
			ApplicationID: app.ID,
			InterviewType: "Technical",
			InterviewerID: uuid.NewString(),
			ScheduledDate: base.Add(offset),
		})
		require.NoError(t, err)
	}

	out, err := svc.ListByApplication(ctx, app.ID)
	require.NoError(t, err)
	require.Len(t, out, 3)
	for i := 1; i < len(out); i++ {
		assert.False(t, out[i].ScheduledDate.Before(out[i-1].ScheduledDate))
	}
}

func TestBypassOverwritesAnnotationKeepsTrail(t *testing.T) {
	svc, db, audit := newInterviewService(t)
	job := seedJob(t, db, "Engineering", models.JobOpen)
	app := seedApplication(t, db, job.ID, models.StageInterviewScheduled)
	ctx := context.Background()

	row, err := svc.Schedule(ctx, ScheduleInterviewInput{
		ApplicationID: app.ID,
		InterviewType: "Technical",
		InterviewerID: uuid.NewString(),
		ScheduledDate: time.Now().UTC().Add(24 * time.Hour),
	})
	require.NoError(t, err)

	firstActor := uuid.NewString()
	row, err = svc.Bypass(ctx, row.ID, firstActor, "candidate already assessed")
	require.NoError(t, err)
	assert.True(t, row.BypassLogged)
	require.NotNil(t, row.BypassReason)
	assert.Equal(t, "candidate already assessed", *row.BypassReason)

	secondActor := uuid.NewString()
	row, err = svc.Bypass(ctx, row.ID, secondActor, "interviewer unavailable")
	require.NoError(t, err)

	// the row keeps only the latest annotation
	require.NotNil(t, row.BypassReason)
	assert.Equal(t, "interviewer unavailable", *row.BypassReason)
	require.NotNil(t, row.BypassBy)
	assert.Equal(t, secondActor, *row.BypassBy)

	// both bypasses survive in the trail
	events := audit.byAction(models.AuditActionBypassed)
	require.Len(t, events, 2)
	assert.Equal(t, firstActor, events[0].ActorID)
	assert.Equal(t, "candidate already assessed", events[0].Detail["reason"])
	assert.Equal(t, secondActor, events[1].ActorID)
	assert.Equal(t, "interviewer unavailable", events[1].Detail["reason"])
}

func TestBypassValidation(t *testing.T) {
	svc, _, _ := newInterviewService(t)
	ctx := context.Background()

	_, err := svc.Bypass(ctx, uuid.NewString(), uuid.NewString(), "")
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))

	_, err = svc.Bypass(ctx, uuid.NewString(), uuid.NewString(), "no longer needed")
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}
