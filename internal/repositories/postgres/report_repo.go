package postgres

import (
	"context"
	"time"

	"github.com/talentflow/talentflow/internal/models"
	"gorm.io/gorm"
)

// HiredOfferSpan pairs an application's applied date with the hiring
// manager's approval time for a terminally-approved offer. Averaging is
// done by the report service, not in SQL.
type HiredOfferSpan struct {
	AppliedDate             time.Time
	HiringManagerApprovedAt *time.Time
}

type ReportRepository interface {
	CountJobsByStatus(ctx context.Context, status models.JobStatus) (int64, error)
	CountApplications(ctx context.Context) (int64, error)
	CountApplicationsByStage(ctx context.Context, stage models.Stage) (int64, error)
	GroupApplicationsByStage(ctx context.Context) ([]models.StageCount, error)
	GroupOpenJobsByDepartment(ctx context.Context) ([]models.DepartmentCount, error)
	ApprovedOfferSpans(ctx context.Context) ([]HiredOfferSpan, error)
}

type reportRepo struct {
	db *gorm.DB
}

func NewReportRepo(db *gorm.DB) ReportRepository {
	return &reportRepo{db: db}
}

func (r *reportRepo) CountJobsByStatus(ctx context.Context, status models.JobStatus) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Job{}).Where("status = ?", status).Count(&n).Error
	return n, err
}

func (r *reportRepo) CountApplications(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Application{}).Count(&n).Error
	return n, err
}

func (r *reportRepo) CountApplicationsByStage(ctx context.Context, stage models.Stage) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Application{}).Where("stage = ?", stage).Count(&n).Error
	return n, err
}

func (r *reportRepo) GroupApplicationsByStage(ctx context.Context) ([]models.StageCount, error) {
	var out []models.StageCount
	err := r.db.WithContext(ctx).
		Model(&models.Application{}).
		Select("stage, COUNT(*) AS count").
		Group("stage").
		Scan(&out).Error
	return out, err
}

func (r *reportRepo) GroupOpenJobsByDepartment(ctx context.Context) ([]models.DepartmentCount, error) {
	var out []models.DepartmentCount
	err := r.db.WithContext(ctx).
		Model(&models.Job{}).
		Select("department, COUNT(*) AS count").
		Where("status = ?", models.JobOpen).
		Group("department").
		Scan(&out).Error
	return out, err
}

func (r *reportRepo) ApprovedOfferSpans(ctx context.Context) ([]HiredOfferSpan, error) {
	var out []HiredOfferSpan
	err := r.db.WithContext(ctx).
		Model(&models.OfferApproval{}).
		Select("applications.applied_date, offer_approvals.hiring_manager_approved_at").
		Joins("JOIN applications ON applications.id = offer_approvals.application_id").
		Where("offer_approvals.status = ?", models.OfferApproved).
		Scan(&out).Error
	return out, err
}
