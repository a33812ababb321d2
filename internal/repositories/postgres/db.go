package postgres

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/talentflow/talentflow/internal/models"
	"github.com/talentflow/talentflow/internal/utils"
	"gorm.io/gorm"
)

// Migrate creates or updates the relational schema.
func Migrate(db *gorm.DB) error {
	for _, m := range []any{
		&models.User{},
		&models.Job{},
		&models.Candidate{},
		&models.Application{},
		&models.InterviewSchedule{},
		&models.OfferApproval{},
	} {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", m, err)
		}
	}
	return nil
}

// SeedUsers creates one account per role when the users table is empty, so
// a fresh install is immediately usable. Password is shared and meant to be
// rotated.
func SeedUsers(db *gorm.DB, password string) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	now := time.Now().UTC()
	seed := []models.User{
		{Name: "Admin", Email: "admin@talentflow.com", Role: models.RoleAdmin},
		{Name: "Recruiter", Email: "recruiter@talentflow.com", Role: models.RoleRecruiter},
		{Name: "Hiring Manager", Email: "hm@talentflow.com", Role: models.RoleHiringManager},
		{Name: "Business Head", Email: "bh@talentflow.com", Role: models.RoleBusinessHead},
		{Name: "HR Manager", Email: "hr@talentflow.com", Role: models.RoleHRManager},
	}
	for i := range seed {
		seed[i].ID = uuid.NewString()
		seed[i].PasswordHash = hash
		seed[i].CreatedAt = now
	}

	if err := db.Create(&seed).Error; err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}
	return nil
}
