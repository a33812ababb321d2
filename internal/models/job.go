package models

import "time"

type JobStatus string

const (
	JobOpen   JobStatus = "Open"
	JobClosed JobStatus = "Closed"
)

func (s JobStatus) Valid() bool { return s == JobOpen || s == JobClosed }

type Job struct {
	ID          string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"column:title;type:text" json:"title"`
	Department  string    `gorm:"column:department;type:text;index" json:"department"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	Status      JobStatus `gorm:"column:status;type:text;index" json:"status"`
	CreatedBy   string    `gorm:"column:created_by;type:uuid" json:"created_by"`
	CreatedAt   time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (Job) TableName() string { return "jobs" }
