package dashboard

import (
	"errors"

	"liamandmia.wedding/configs/configslog"
	"liamandmia.wedding/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GalleryHandler backs the dashboard's gallery management.
type GalleryHandler struct {
	galleryService services.IGalleryService
}

func NewGalleryHandler() *GalleryHandler {
	return &GalleryHandler{galleryService: services.NewGalleryService()}
}

// AddImage (POST /dashboard/api/gallery)
func (h *GalleryHandler) AddImage(c *fiber.Ctx) error {
	var input services.GalleryImageInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	image, err := h.galleryService.AddImage(c.UserContext(), input)
	if err != nil {
		if errors.Is(err, services.ErrGalleryTitleRequired) || errors.Is(err, services.ErrGalleryURLRequired) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("AddImage failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save image"})
	}
	return c.Status(fiber.StatusCreated).JSON(image)
}

// ListImages (GET /dashboard/api/gallery)
func (h *GalleryHandler) ListImages(c *fiber.Ctx) error {
	images, err := h.galleryService.ListImages(c.UserContext())
	if err != nil {
		configslog.Log.Error("ListImages failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load gallery"})
	}
	return c.JSON(fiber.Map{"images": images})
}

// ToggleFeatured (PATCH /dashboard/api/gallery/:id/featured)
func (h *GalleryHandler) ToggleFeatured(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid image id"})
	}

	image, err := h.galleryService.ToggleFeatured(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, services.ErrGalleryImageNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("ToggleFeatured failed", zap.String("id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update image"})
	}
	return c.JSON(image)
}

// DeleteImage (DELETE /dashboard/api/gallery/:id)
func (h *GalleryHandler) DeleteImage(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid image id"})
	}

	if err := h.galleryService.DeleteImage(c.UserContext(), id); err != nil {
		if errors.Is(err, services.ErrGalleryImageNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("DeleteImage failed", zap.String("id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete image"})
	}
	return c.JSON(fiber.Map{"message": "image deleted"})
}
