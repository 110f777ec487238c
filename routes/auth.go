package routes

import (
	"liamandmia.wedding/handlers/auth"

	"github.com/gofiber/fiber/v2"
)

func registerAuthRoutes(app *fiber.App) {
	authHandler := auth.NewAuthHandler()

	group := app.Group("/auth")
	group.Post("/login", authHandler.Login)
	group.Post("/logout", authHandler.Logout)
	group.Get("/me", authHandler.Me)
}
