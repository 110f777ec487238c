package dashboard

import (
	"errors"

	"liamandmia.wedding/configs/configslog"
	"liamandmia.wedding/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// EmailHandler exposes the bulk-dispatch RPC to the dashboard.
type EmailHandler struct {
	emailService services.IEmailService
}

func NewEmailHandler() *EmailHandler {
	return &EmailHandler{emailService: services.NewEmailService()}
}

// SendBulkEmail (POST /dashboard/api/emails/send) runs one dispatch.
// Status mapping: 200 for full success (or demo mode), 207 when some
// recipients failed, 500 for precondition or structural failures. The
// body always carries the reporter's structure when a dispatch ran.
func (h *EmailHandler) SendBulkEmail(c *fiber.Ctx) error {
	var req services.BulkEmailRequest
	if err := c.BodyParser(&req); err != nil {
		configslog.Log.Warn("SendBulkEmail: unparsable payload", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "invalid request body"})
	}

	report, err := h.emailService.SendBulkEmail(c.UserContext(), req)
	if err != nil {
		var svcErr services.EmailServiceError
		if errors.As(err, &svcErr) {
			// Precondition failures: nothing was sent.
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("SendBulkEmail failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "email dispatch failed"})
	}

	status := fiber.StatusOK
	if report.ErrorCount > 0 {
		status = fiber.StatusMultiStatus
	}
	return c.Status(status).JSON(report)
}
