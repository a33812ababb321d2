package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/talentflow/talentflow/internal/cache"
	"github.com/talentflow/talentflow/internal/models"
	pgrepo "github.com/talentflow/talentflow/internal/repositories/postgres"
	"github.com/talentflow/talentflow/internal/utils"
)

const dashboardCacheKey = "reports:dashboard"

// ReportService computes hiring metrics by scanning the relational rows.
// All results tolerate empty inputs: zeros and empty slices, never errors.
type ReportService interface {
	Dashboard(ctx context.Context) (*models.DashboardSummary, error)
	TimeToHire(ctx context.Context) (*models.TimeToHire, error)
	ConversionRates(ctx context.Context) ([]models.StageCount, error)
}

type reportService struct {
	reports  pgrepo.ReportRepository
	cache    cache.Cache
	cacheTTL time.Duration
	log      *logrus.Logger
}

func NewReportService(reports pgrepo.ReportRepository, c cache.Cache, cacheTTL time.Duration, log *logrus.Logger) ReportService {
	return &reportService{reports: reports, cache: c, cacheTTL: cacheTTL, log: log}
}

func (s *reportService) Dashboard(ctx context.Context) (*models.DashboardSummary, error) {
	const op = "ReportService.Dashboard"

	if s.cache != nil {
		var cached models.DashboardSummary
		if hit, err := s.cache.GetJSON(ctx, dashboardCacheKey, &cached); err == nil && hit {
			return &cached, nil
		} else if err != nil && s.log != nil {
			s.log.WithError(err).Warn("dashboard cache read failed")
		}
	}

	openPositions, err := s.reports.CountJobsByStatus(ctx, models.JobOpen)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to count open jobs", err)
	}
	totalApplications, err := s.reports.CountApplications(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to count applications", err)
	}
	interviews, err := s.reports.CountApplicationsByStage(ctx, models.StageInterviewScheduled)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to count interview-stage applications", err)
	}
	offers, err := s.reports.CountApplicationsByStage(ctx, models.StageOfferExtended)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to count offer-stage applications", err)
	}
	byStage, err := s.reports.GroupApplicationsByStage(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to group applications by stage", err)
	}
	byDept, err := s.reports.GroupOpenJobsByDepartment(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to group jobs by department", err)
	}

	out := &models.DashboardSummary{
		OpenPositions:       openPositions,
		TotalApplications:   totalApplications,
		InterviewsScheduled: interviews,
		OffersExtended:      offers,
		CandidatesByStage:   emptyToSlice(byStage),
		JobsByDepartment:    emptyToSlice(byDept),
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, dashboardCacheKey, out, s.cacheTTL); err != nil && s.log != nil {
			s.log.WithError(err).Warn("dashboard cache write failed")
		}
	}
	return out, nil
}

func (s *reportService) TimeToHire(ctx context.Context) (*models.TimeToHire, error) {
	const op = "ReportService.TimeToHire"

	spans, err := s.reports.ApprovedOfferSpans(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load approved offers", err)
	}

	var total float64
	var n int
	for _, span := range spans {
		if span.HiringManagerApprovedAt == nil {
			continue
		}
		total += span.HiringManagerApprovedAt.Sub(span.AppliedDate).Hours() / 24
		n++
	}

	out := &models.TimeToHire{}
	if n > 0 {
		out.AverageDays = total / float64(n)
	}
	return out, nil
}

func (s *reportService) ConversionRates(ctx context.Context) ([]models.StageCount, error) {
	const op = "ReportService.ConversionRates"

	byStage, err := s.reports.GroupApplicationsByStage(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to group applications by stage", err)
	}

	counts := make(map[models.Stage]int64, len(byStage))
	for _, sc := range byStage {
		counts[sc.Stage] = sc.Count
	}

	// stable pipeline order, rejected excluded
	out := make([]models.StageCount, 0, len(models.PipelineStages))
	for _, st := range models.PipelineStages {
		out = append(out, models.StageCount{Stage: st, Count: counts[st]})
	}
	return out, nil
}

func emptyToSlice[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
