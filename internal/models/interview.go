package models

import "time"

// InterviewSchedule is one interview round for an application. A bypass is
// an audited skip: the row is annotated, never deleted.
type InterviewSchedule struct {
	ID            string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	ApplicationID string    `gorm:"column:application_id;type:uuid;index" json:"application_id"`
	InterviewType string    `gorm:"column:interview_type;type:text" json:"interview_type"`
	InterviewerID string    `gorm:"column:interviewer_id;type:uuid" json:"interviewer_id"`
	ScheduledDate time.Time `gorm:"column:scheduled_date;type:timestamptz" json:"scheduled_date"`
	Notes         string    `gorm:"column:notes;type:text" json:"notes"`

	BypassLogged bool    `gorm:"column:bypass_logged" json:"bypass_logged"`
	BypassBy     *string `gorm:"column:bypass_by;type:uuid" json:"bypass_by,omitempty"`
	BypassReason *string `gorm:"column:bypass_reason;type:text" json:"bypass_reason,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
}

func (InterviewSchedule) TableName() string { return "interview_schedule" }
