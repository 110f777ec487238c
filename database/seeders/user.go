package seeders

import (
	"errors"
	"os"
	"strings"

	"liamandmia.wedding/configs/configslog"
	"liamandmia.wedding/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdminUser makes sure the dashboard account exists. Credentials
// come from ADMIN_EMAIL / ADMIN_PASSWORD; the password is re-hashed and
// updated on every run so a rotated env var takes effect.
func SeedAdminUser(db *gorm.DB) error {
	email := strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL")))
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		configslog.SLog.Warn("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		configslog.Log.Error("Admin password hashing failed", zap.Error(err))
		return err
	}

	var user models.User
	err = db.Where("email = ?", email).First(&user).Error
	switch {
	case err == nil:
		return db.Model(&user).Update("password_hash", string(hash)).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = models.User{
			Email:        email,
			Name:         strings.TrimSpace(os.Getenv("ADMIN_NAME")),
			PasswordHash: string(hash),
		}
		if err := db.Create(&user).Error; err != nil {
			configslog.Log.Error("Admin user creation failed", zap.Error(err))
			return err
		}
		configslog.SLog.Infof("Admin user seeded: %s", email)
		return nil
	default:
		return err
	}
}
