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

// IGalleryImageRepository persists gallery photos.
type IGalleryImageRepository interface {
	Create(ctx context.Context, image *models.GalleryImage) error
	FindAll(ctx context.Context) ([]models.GalleryImage, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.GalleryImage, error)
	SetFeatured(ctx context.Context, id uuid.UUID, featured bool) error
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type GalleryImageRepository struct {
	db *gorm.DB
}

func NewGalleryImageRepository() IGalleryImageRepository {
	return &GalleryImageRepository{db: configs.GetDB()}
}

func NewGalleryImageRepositoryTx(tx *gorm.DB) IGalleryImageRepository {
	return &GalleryImageRepository{db: tx}
}

func (r *GalleryImageRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

func (r *GalleryImageRepository) Create(ctx context.Context, image *models.GalleryImage) error {
	if image == nil {
		return errors.New("nil image")
	}
	if err := r.getDB(ctx).Create(image).Error; err != nil {
		configslog.Log.Error("Gallery image create failed", zap.String("title", image.Title), zap.Error(err))
		return err
	}
	return nil
}

// FindAll returns featured images first, then the rest newest-first.
func (r *GalleryImageRepository) FindAll(ctx context.Context) ([]models.GalleryImage, error) {
	var images []models.GalleryImage
	err := r.getDB(ctx).
		Order("is_featured desc").
		Order("created_at desc").
		Find(&images).Error
	if err != nil {
		configslog.Log.Error("Gallery list failed", zap.Error(err))
		return nil, err
	}
	return images, nil
}

func (r *GalleryImageRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.GalleryImage, error) {
	var image models.GalleryImage
	err := r.getDB(ctx).Where("id = ?", id).First(&image).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("Gallery lookup failed", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}
	return &image, nil
}

func (r *GalleryImageRepository) SetFeatured(ctx context.Context, id uuid.UUID, featured bool) error {
	result := r.getDB(ctx).Model(&models.GalleryImage{}).
		Where("id = ?", id).
		Update("is_featured", featured)
	if result.Error != nil {
		configslog.Log.Error("Gallery feature toggle failed", zap.String("id", id.String()), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GalleryImageRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	result := r.getDB(ctx).Where("id = ?", id).Delete(&models.GalleryImage{})
	if result.Error != nil {
		configslog.Log.Error("Gallery delete failed", zap.String("id", id.String()), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ IGalleryImageRepository = (*GalleryImageRepository)(nil)
