package routes

import (
	"liamandmia.wedding/configs"
	"liamandmia.wedding/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupRoutes wires shared middleware and all route groups.
func SetupRoutes(app *fiber.App) {
	app.Use(recoverMiddleware.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(initializeSessionAndLocals())

	registerPublicRoutes(app)
	registerAuthRoutes(app)
	registerDashboardRoutes(app)

	app.Use(notFoundHandler)
}

// initializeSessionAndLocals places the session store in locals and, when
// a session carries a user, populates the identity locals the gated
// routes read.
func initializeSessionAndLocals() fiber.Handler {
	sessionStore := configs.SetupSession()
	return func(c *fiber.Ctx) error {
		c.Locals("session_store", sessionStore)
		sess, err := utils.SessionStart(c)
		if err != nil {
			return c.Next()
		}
		if userID, idErr := utils.GetUserIDFromSession(sess); idErr == nil {
			c.Locals("userID", userID)
		}
		if userName, ok := sess.Get(utils.SessionKeyUserName).(string); ok {
			c.Locals("userName", userName)
		}
		return c.Next()
	}
}

func notFoundHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "resource not found"})
}
