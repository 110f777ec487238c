package auth

import (
	"errors"

	"liamandmia.wedding/configs/configslog"
	"liamandmia.wedding/services"
	"liamandmia.wedding/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler signs the couple in and out of the dashboard.
type AuthHandler struct {
	authService services.IAuthService
}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{authService: services.NewAuthService()}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login (POST /auth/login) verifies credentials and starts a session.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	user, err := h.authService.Authenticate(c.UserContext(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("Login failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "login failed"})
	}

	sess, err := utils.SessionStart(c)
	if err != nil {
		configslog.Log.Error("Login: session start failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "login failed"})
	}
	if err := utils.SignInSession(sess, user.ID, user.Name); err != nil {
		configslog.Log.Error("Login: session save failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "login failed"})
	}

	configslog.SLog.Infof("Dashboard login: %s", user.Email)
	return c.JSON(fiber.Map{"user": user})
}

// Logout (POST /auth/logout) tears the session down.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := utils.SessionStart(c)
	if err == nil {
		_ = utils.SignOutSession(sess)
	}
	return c.JSON(fiber.Map{"message": "signed out"})
}

// Me (GET /auth/me) returns the signed-in user for session bootstrap.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "not signed in"})
	}
	user, err := h.authService.GetUserByID(c.UserContext(), userID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "not signed in"})
	}
	return c.JSON(fiber.Map{"user": user})
}
