package public

import (
	"errors"

	"liamandmia.wedding/configs/configslog"
	"liamandmia.wedding/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RSVPHandler serves the public RSVP intake form.
type RSVPHandler struct {
	rsvpService services.IRSVPService
}

func NewRSVPHandler() *RSVPHandler {
	return &RSVPHandler{rsvpService: services.NewRSVPService()}
}

// SubmitRSVP (POST /api/rsvp) accepts one submission from the public
// form. Validation failures come back as 422 so the form can re-prompt;
// the guest simply resubmits.
func (h *RSVPHandler) SubmitRSVP(c *fiber.Ctx) error {
	var submission services.RSVPSubmission
	if err := c.BodyParser(&submission); err != nil {
		configslog.Log.Warn("SubmitRSVP: unparsable payload", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	guest, err := h.rsvpService.SubmitRSVP(c.UserContext(), submission)
	if err != nil {
		if errors.Is(err, services.ErrRSVPMissingFields) || errors.Is(err, services.ErrRSVPInvalidChoice) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("SubmitRSVP failed", zap.String("email", submission.Email), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to submit RSVP, please try again"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Thank you for your response. We can't wait to celebrate with you!",
		"guest":   guest,
	})
}
