package public

import (
	"errors"

	"liamandmia.wedding/configs/configslog"
	"liamandmia.wedding/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SiteHandler serves the read-only public content endpoints consumed by
// the frontend.
type SiteHandler struct {
	profileService services.IProfileService
	galleryService services.IGalleryService
}

func NewSiteHandler() *SiteHandler {
	return &SiteHandler{
		profileService: services.NewProfileService(),
		galleryService: services.NewGalleryService(),
	}
}

// GetHome (GET /api/home) returns the home-page profile.
func (h *SiteHandler) GetHome(c *fiber.Ctx) error {
	profile, err := h.profileService.GetProfile(c.UserContext())
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("GetHome failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load site content"})
	}
	return c.JSON(profile)
}

// GetGallery (GET /api/gallery) returns the photo list, featured first.
func (h *SiteHandler) GetGallery(c *fiber.Ctx) error {
	images, err := h.galleryService.ListImages(c.UserContext())
	if err != nil {
		configslog.Log.Error("GetGallery failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load gallery"})
	}
	return c.JSON(fiber.Map{"images": images})
}
