package routes

import (
	"liamandmia.wedding/handlers/dashboard"
	"liamandmia.wedding/middlewares"

	"github.com/gofiber/fiber/v2"
)

func registerDashboardRoutes(app *fiber.App) {
	guestHandler := dashboard.NewGuestHandler()
	emailHandler := dashboard.NewEmailHandler()
	galleryHandler := dashboard.NewGalleryHandler()
	homeHandler := dashboard.NewHomeHandler()

	api := app.Group("/dashboard/api", middlewares.RequireAuth())

	api.Get("/guests", guestHandler.ListGuests)
	api.Get("/guests/stats", guestHandler.GuestStats)
	api.Delete("/guests/:id", guestHandler.DeleteGuest)

	api.Post("/emails/send", emailHandler.SendBulkEmail)

	api.Get("/gallery", galleryHandler.ListImages)
	api.Post("/gallery", galleryHandler.AddImage)
	api.Patch("/gallery/:id/featured", galleryHandler.ToggleFeatured)
	api.Delete("/gallery/:id", galleryHandler.DeleteImage)

	api.Get("/home", homeHandler.GetProfile)
	api.Put("/home", homeHandler.UpdateProfile)
}
