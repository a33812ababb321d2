package services

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/talentflow/talentflow/internal/models"
	pgrepo "github.com/talentflow/talentflow/internal/repositories/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	require.NoError(t, err)

	// a second connection would get its own empty in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, pgrepo.Migrate(db))
	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type fakeAuditRepo struct {
	events []models.AuditEvent
}

func (f *fakeAuditRepo) Append(_ context.Context, e *models.AuditEvent) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	f.events = append(f.events, *e)
	return nil
}

func (f *fakeAuditRepo) ListByEntity(_ context.Context, entityType, entityID string) ([]models.AuditEvent, error) {
	var out []models.AuditEvent
	for i := len(f.events) - 1; i >= 0; i-- {
		e := f.events[i]
		if e.EntityType == entityType && e.EntityID == entityID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeAuditRepo) byAction(action string) []models.AuditEvent {
	var out []models.AuditEvent
	for _, e := range f.events {
		if e.Action == action {
			out = append(out, e)
		}
	}
	return out
}

type fakeUploader struct {
	objects map[string][]byte
	fail    bool
}

func (f *fakeUploader) Upload(_ context.Context, objectName, _ string, r io.Reader) (string, error) {
	if f.fail {
		return "", errors.New("upload failed")
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	if f.objects == nil {
		f.objects = map[string][]byte{}
	}
	f.objects[objectName] = b
	return objectName, nil
}

func seedJob(t *testing.T, db *gorm.DB, department string, status models.JobStatus) *models.Job {
	t.Helper()
	now := time.Now().UTC()
	job := &models.Job{
		ID:         uuid.NewString(),
		Title:      "Backend Engineer",
		Department: department,
		Status:     status,
		CreatedBy:  uuid.NewString(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	require.NoError(t, db.Create(job).Error)
	return job
}

func seedApplication(t *testing.T, db *gorm.DB, jobID string, stage models.Stage) *models.Application {
	t.Helper()
	now := time.Now().UTC()
	cand := &models.Candidate{
		ID:        uuid.NewString(),
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Phone:     "555-0101",
		CreatedAt: now,
	}
	require.NoError(t, db.Create(cand).Error)

	app := &models.Application{
		ID:          uuid.NewString(),
		CandidateID: cand.ID,
		JobID:       jobID,
		Stage:       stage,
		AppliedDate: now,
		UpdatedAt:   now,
	}
	require.NoError(t, db.Create(app).Error)
	return app
}
