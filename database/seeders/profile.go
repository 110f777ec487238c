package seeders

import (
	"errors"

	"liamandmia.wedding/configs"
	"liamandmia.wedding/configs/configslog"
	"liamandmia.wedding/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedProfile creates the singleton home-page profile when the table is
// empty. Existing copy is never overwritten; the dashboard owns it after
// first boot.
func SeedProfile(db *gorm.DB) error {
	var existing models.Profile
	err := db.Order("id asc").First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	site := configs.Site()
	profile := models.Profile{
		CoupleNames:     site.CoupleNames,
		WebsiteURL:      site.WebsiteURL,
		WeddingDate:     "October 25th, 2025",
		CeremonyTime:    "3:00 PM",
		VenueName:       "The Enchanted Gardens",
		VenueAddress:    "123 Dreamy Lane, Wonderland",
		BackgroundImage: "https://images.unsplash.com/photo-1500673922987-e212871fec22?auto=format&fit=crop&w=1920&q=80",
	}
	if err := db.Create(&profile).Error; err != nil {
		configslog.Log.Error("Profile seed failed", zap.Error(err))
		return err
	}
	configslog.SLog.Infof("Profile seeded for %s", profile.CoupleNames)
	return nil
}
