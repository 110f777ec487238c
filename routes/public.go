package routes

import (
	"liamandmia.wedding/handlers/public"

	"github.com/gofiber/fiber/v2"
)

func registerPublicRoutes(app *fiber.App) {
	rsvpHandler := public.NewRSVPHandler()
	siteHandler := public.NewSiteHandler()

	api := app.Group("/api")
	api.Post("/rsvp", rsvpHandler.SubmitRSVP)
	api.Get("/home", siteHandler.GetHome)
	api.Get("/gallery", siteHandler.GetGallery)
}
