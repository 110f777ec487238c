package migrations

import (
	"liamandmia.wedding/configs/configslog"
	"liamandmia.wedding/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateGalleryImagesTable creates/updates the gallery_images table.
func MigrateGalleryImagesTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating gallery_images table...")
	if err := db.AutoMigrate(&models.GalleryImage{}); err != nil {
		configslog.Log.Error("Failed to migrate gallery_images table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Gallery_images table migrated successfully")
	return nil
}
