package models

import "time"

type Role string

const (
	RoleAdmin         Role = "Admin"
	RoleRecruiter     Role = "Recruiter"
	RoleHiringManager Role = "Hiring Manager"
	RoleBusinessHead  Role = "Business Head"
	RoleHRManager     Role = "HR Manager"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleRecruiter, RoleHiringManager, RoleBusinessHead, RoleHRManager:
		return true
	}
	return false
}

type User struct {
	ID           string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"column:name;type:text" json:"name"`
	Email        string    `gorm:"column:email;type:text;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;type:text" json:"-"`
	Role         Role      `gorm:"column:role;type:text" json:"role"`
	CreatedAt    time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
}

func (User) TableName() string { return "users" }
