package postgres

import (
	"context"
	"errors"

	"github.com/talentflow/talentflow/internal/models"
	"github.com/talentflow/talentflow/internal/utils"
	"gorm.io/gorm"
)

type OfferRepository interface {
	// CreateIfNoActive inserts the offer only if the application has no
	// other offer in a non-terminal status; check and insert run in one
	// transaction. Returns utils.ErrConflict when a live offer exists.
	CreateIfNoActive(ctx context.Context, o *models.OfferApproval) error
	GetByID(ctx context.Context, id string) (*models.OfferApproval, error)
	Update(ctx context.Context, o *models.OfferApproval) error
	ListByApplication(ctx context.Context, applicationID string) ([]models.OfferApproval, error)
}

type offerRepo struct {
	db *gorm.DB
}

func NewOfferRepo(db *gorm.DB) OfferRepository {
	return &offerRepo{db: db}
}

func (r *offerRepo) CreateIfNoActive(ctx context.Context, o *models.OfferApproval) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var live int64
		err := tx.Model(&models.OfferApproval{}).
			Where("application_id = ?", o.ApplicationID).
			Where("status NOT IN ?", []models.OfferStatus{models.OfferApproved, models.OfferRejected}).
			Count(&live).Error
		if err != nil {
			return err
		}
		if live > 0 {
			return utils.ErrConflict
		}
		return tx.Create(o).Error
	})
}

func (r *offerRepo) GetByID(ctx context.Context, id string) (*models.OfferApproval, error) {
	var o models.OfferApproval
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &o, err
}

func (r *offerRepo) Update(ctx context.Context, o *models.OfferApproval) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *offerRepo) ListByApplication(ctx context.Context, applicationID string) ([]models.OfferApproval, error) {
	var out []models.OfferApproval
	err := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("created_at").
		Find(&out).Error
	return out, err
}
