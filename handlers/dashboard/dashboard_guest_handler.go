package dashboard

import (
	"errors"

	"liamandmia.wedding/configs/configslog"
	"liamandmia.wedding/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GuestHandler backs the dashboard's guest list views.
type GuestHandler struct {
	rsvpService services.IRSVPService
}

func NewGuestHandler() *GuestHandler {
	return &GuestHandler{rsvpService: services.NewRSVPService()}
}

// ListGuests (GET /dashboard/api/guests)
func (h *GuestHandler) ListGuests(c *fiber.Ctx) error {
	guests, err := h.rsvpService.ListGuests(c.UserContext())
	if err != nil {
		configslog.Log.Error("ListGuests failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load guests"})
	}
	return c.JSON(fiber.Map{"guests": guests})
}

// GuestStats (GET /dashboard/api/guests/stats)
func (h *GuestHandler) GuestStats(c *fiber.Ctx) error {
	stats, err := h.rsvpService.GuestStats(c.UserContext())
	if err != nil {
		configslog.Log.Error("GuestStats failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load guest stats"})
	}
	return c.JSON(stats)
}

// DeleteGuest (DELETE /dashboard/api/guests/:id) removes one RSVP row.
func (h *GuestHandler) DeleteGuest(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid guest id"})
	}

	if err := h.rsvpService.DeleteGuest(c.UserContext(), id); err != nil {
		if errors.Is(err, services.ErrGuestNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("DeleteGuest failed", zap.String("id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete guest"})
	}
	return c.JSON(fiber.Map{"message": "guest deleted"})
}
