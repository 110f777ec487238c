package services

import (
	"context"
	"errors"
	"strings"

	"liamandmia.wedding/configs/configslog"
	"liamandmia.wedding/models"
	"liamandmia.wedding/repositories"

	"github.com/google/uuid"
)

type GalleryServiceError string

func (e GalleryServiceError) Error() string { return string(e) }

const (
	ErrGalleryTitleRequired GalleryServiceError = "image title is required"
	ErrGalleryURLRequired   GalleryServiceError = "image URL is required"
	ErrGalleryImageNotFound GalleryServiceError = "gallery image not found"
	ErrGallerySaveFailed    GalleryServiceError = "gallery image could not be saved"
	ErrGalleryDeleteFailed  GalleryServiceError = "gallery image could not be deleted"
)

// GalleryImageInput is the dashboard upload payload. The binary upload
// itself happens against object storage; this service records the
// resulting URL.
type GalleryImageInput struct {
	Title       string `json:"title"`
	Caption     string `json:"caption"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

type IGalleryService interface {
	AddImage(ctx context.Context, input GalleryImageInput) (*models.GalleryImage, error)
	ListImages(ctx context.Context) ([]models.GalleryImage, error)
	ToggleFeatured(ctx context.Context, id uuid.UUID) (*models.GalleryImage, error)
	DeleteImage(ctx context.Context, id uuid.UUID) error
}

type GalleryService struct {
	repo repositories.IGalleryImageRepository
}

func NewGalleryService() IGalleryService {
	return &GalleryService{repo: repositories.NewGalleryImageRepository()}
}

func NewGalleryServiceWithRepo(repo repositories.IGalleryImageRepository) IGalleryService {
	return &GalleryService{repo: repo}
}

func (s *GalleryService) AddImage(ctx context.Context, input GalleryImageInput) (*models.GalleryImage, error) {
	title := strings.TrimSpace(input.Title)
	imageURL := strings.TrimSpace(input.ImageURL)
	if title == "" {
		return nil, ErrGalleryTitleRequired
	}
	if imageURL == "" {
		return nil, ErrGalleryURLRequired
	}

	image := models.GalleryImage{
		Title:       title,
		Caption:     strings.TrimSpace(input.Caption),
		Description: strings.TrimSpace(input.Description),
		ImageURL:    imageURL,
		IsFeatured:  false,
	}
	if err := s.repo.Create(ctx, &image); err != nil {
		return nil, ErrGallerySaveFailed
	}
	configslog.SLog.Infof("Gallery image added: %s", image.Title)
	return &image, nil
}

func (s *GalleryService) ListImages(ctx context.Context) ([]models.GalleryImage, error) {
	return s.repo.FindAll(ctx)
}

func (s *GalleryService) ToggleFeatured(ctx context.Context, id uuid.UUID) (*models.GalleryImage, error) {
	image, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrGalleryImageNotFound
		}
		return nil, err
	}
	if err := s.repo.SetFeatured(ctx, id, !image.IsFeatured); err != nil {
		return nil, ErrGallerySaveFailed
	}
	image.IsFeatured = !image.IsFeatured
	return image, nil
}

func (s *GalleryService) DeleteImage(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrGalleryImageNotFound
		}
		return ErrGalleryDeleteFailed
	}
	configslog.SLog.Infof("Gallery image deleted: %s", id)
	return nil
}

var _ IGalleryService = (*GalleryService)(nil)
