package models

import "time"

// Stage is a candidate's current position in the hiring pipeline for one
// application.
type Stage string

const (
	StageApplied            Stage = "Applied"
	StageShortlisted        Stage = "Shortlisted"
	StageInterviewScheduled Stage = "Interview Scheduled"
	StageOfferExtended      Stage = "Offer Extended"
	StageHired              Stage = "Hired"
	StageRejected           Stage = "Rejected"
)

// PipelineStages lists the non-rejected stages in pipeline order.
var PipelineStages = []Stage{
	StageApplied,
	StageShortlisted,
	StageInterviewScheduled,
	StageOfferExtended,
	StageHired,
}

// forward edges of the pipeline; Rejected is handled separately in
// CanTransitionTo because it is reachable from any non-terminal stage.
var nextStage = map[Stage]Stage{
	StageApplied:            StageShortlisted,
	StageShortlisted:        StageInterviewScheduled,
	StageInterviewScheduled: StageOfferExtended,
	StageOfferExtended:      StageHired,
}

func (s Stage) Valid() bool {
	if s == StageRejected {
		return true
	}
	for _, st := range PipelineStages {
		if s == st {
			return true
		}
	}
	return false
}

func (s Stage) Terminal() bool { return s == StageHired || s == StageRejected }

// CanTransitionTo reports whether moving from s to next is a legal pipeline
// move: one step forward, or to Rejected from any non-terminal stage.
func (s Stage) CanTransitionTo(next Stage) bool {
	if s.Terminal() {
		return false
	}
	if next == StageRejected {
		return true
	}
	return nextStage[s] == next
}

type Application struct {
	ID          string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	CandidateID string    `gorm:"column:candidate_id;type:uuid;index" json:"candidate_id"`
	JobID       string    `gorm:"column:job_id;type:uuid;index" json:"job_id"`
	Stage       Stage     `gorm:"column:stage;type:text;index" json:"stage"`
	AppliedDate time.Time `gorm:"column:applied_date;type:timestamptz" json:"applied_date"`
	UpdatedAt   time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (Application) TableName() string { return "applications" }

// ApplicationDetail is the list projection joined with candidate and job
// columns, matching what recruiters see on the pipeline board.
type ApplicationDetail struct {
	ID             string    `json:"id"`
	CandidateID    string    `json:"candidate_id"`
	JobID          string    `json:"job_id"`
	Stage          Stage     `json:"stage"`
	AppliedDate    time.Time `json:"applied_date"`
	UpdatedAt      time.Time `json:"updated_at"`
	CandidateName  string    `json:"candidate_name"`
	CandidateEmail string    `json:"candidate_email"`
	CandidatePhone string    `json:"candidate_phone"`
	JobTitle       string    `json:"job_title"`
	Department     string    `json:"department"`
}
