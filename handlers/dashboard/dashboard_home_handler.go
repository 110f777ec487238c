package dashboard

import (
	"errors"

	"liamandmia.wedding/configs/configslog"
	"liamandmia.wedding/models"
	"liamandmia.wedding/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HomeHandler manages the home-page copy from the dashboard.
type HomeHandler struct {
	profileService services.IProfileService
}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{profileService: services.NewProfileService()}
}

// GetProfile (GET /dashboard/api/home)
func (h *HomeHandler) GetProfile(c *fiber.Ctx) error {
	profile, err := h.profileService.GetProfile(c.UserContext())
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("GetProfile failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load profile"})
	}
	return c.JSON(profile)
}

// UpdateProfile (PUT /dashboard/api/home)
func (h *HomeHandler) UpdateProfile(c *fiber.Ctx) error {
	var update models.Profile
	if err := c.BodyParser(&update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	profile, err := h.profileService.UpdateProfile(c.UserContext(), update)
	if err != nil {
		if errors.Is(err, services.ErrProfileCoupleRequired) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("UpdateProfile failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save profile"})
	}
	return c.JSON(profile)
}
