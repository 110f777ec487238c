package repositories

import (
	"context"
	"errors"

	"liamandmia.wedding/configs"
	"liamandmia.wedding/configs/configslog"
	"liamandmia.wedding/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IProfileRepository manages the singleton home-page profile row.
type IProfileRepository interface {
	Get(ctx context.Context) (*models.Profile, error)
	Save(ctx context.Context, profile *models.Profile) error
}

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository() IProfileRepository {
	return &ProfileRepository{db: configs.GetDB()}
}

func NewProfileRepositoryTx(tx *gorm.DB) IProfileRepository {
	return &ProfileRepository{db: tx}
}

func (r *ProfileRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// Get returns the profile row. There is exactly one; the seeder creates it.
func (r *ProfileRepository) Get(ctx context.Context) (*models.Profile, error) {
	var profile models.Profile
	err := r.getDB(ctx).Order("id asc").First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("Profile read failed", zap.Error(err))
		return nil, err
	}
	return &profile, nil
}

// Save persists the profile, creating it when no row exists yet.
func (r *ProfileRepository) Save(ctx context.Context, profile *models.Profile) error {
	if profile == nil {
		return errors.New("nil profile")
	}
	if err := r.getDB(ctx).Save(profile).Error; err != nil {
		configslog.Log.Error("Profile save failed", zap.Error(err))
		return err
	}
	return nil
}

var _ IProfileRepository = (*ProfileRepository)(nil)
