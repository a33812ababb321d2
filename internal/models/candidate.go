package models

import "time"

// Candidate rows are created once per public submission; identity fields
// are never edited afterwards.
type Candidate struct {
	ID              string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name            string    `gorm:"column:name;type:text" json:"name"`
	Email           string    `gorm:"column:email;type:text;index" json:"email"`
	Phone           string    `gorm:"column:phone;type:text" json:"phone"`
	ResumeFilePath  string    `gorm:"column:resume_file_path;type:text" json:"resume_file_path,omitempty"`
	CoverLetterPath string    `gorm:"column:cover_letter_path;type:text" json:"cover_letter_path,omitempty"`
	CreatedAt       time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
}

func (Candidate) TableName() string { return "candidates" }
