package repositories

import (
	"context"
	"errors"

	"liamandmia.wedding/configs"
	"liamandmia.wedding/configs/configslog"
	"liamandmia.wedding/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IGuestRepository is the guest store: insert-only writes plus a full
// snapshot read for dispatch and the dashboard.
type IGuestRepository interface {
	Create(ctx context.Context, guest *models.Guest) error
	FindAll(ctx context.Context) ([]models.Guest, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Guest, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type GuestRepository struct {
	db *gorm.DB
}

// NewGuestRepository builds a repository on the shared database handle.
func NewGuestRepository() IGuestRepository {
	return &GuestRepository{db: configs.GetDB()}
}

// NewGuestRepositoryTx builds a repository bound to an existing transaction.
func NewGuestRepositoryTx(tx *gorm.DB) IGuestRepository {
	return &GuestRepository{db: tx}
}

func (r *GuestRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// Create inserts one guest row. No dedup against existing emails: a
// resubmission is a second row.
func (r *GuestRepository) Create(ctx context.Context, guest *models.Guest) error {
	if guest == nil {
		return errors.New("nil guest")
	}
	if err := r.getDB(ctx).Create(guest).Error; err != nil {
		configslog.Log.Error("Guest create failed", zap.String("email", guest.Email), zap.Error(err))
		return err
	}
	return nil
}

// FindAll returns the full guest snapshot, newest first.
func (r *GuestRepository) FindAll(ctx context.Context) ([]models.Guest, error) {
	var guests []models.Guest
	if err := r.getDB(ctx).Order("created_at desc").Find(&guests).Error; err != nil {
		configslog.Log.Error("Guest list failed", zap.Error(err))
		return nil, err
	}
	return guests, nil
}

func (r *GuestRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Guest, error) {
	var guest models.Guest
	err := r.getDB(ctx).Where("id = ?", id).First(&guest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("Guest lookup failed", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}
	return &guest, nil
}

// DeleteByID removes one guest row. Hard delete; guests have no
// dependent rows.
func (r *GuestRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	result := r.getDB(ctx).Where("id = ?", id).Delete(&models.Guest{})
	if result.Error != nil {
		configslog.Log.Error("Guest delete failed", zap.String("id", id.String()), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ IGuestRepository = (*GuestRepository)(nil)
