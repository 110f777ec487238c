package services

import (
	"context"
	"errors"
	"strings"

	"liamandmia.wedding/configs/configslog"
	"liamandmia.wedding/models"
	"liamandmia.wedding/repositories"
)

type ProfileServiceError string

func (e ProfileServiceError) Error() string { return string(e) }

const (
	ErrProfileNotFound       ProfileServiceError = "site profile not found"
	ErrProfileCoupleRequired ProfileServiceError = "couple names are required"
	ErrProfileSaveFailed     ProfileServiceError = "site profile could not be saved"
)

// IProfileService manages the home-page copy and the couple identity
// used as the mail templating default.
type IProfileService interface {
	GetProfile(ctx context.Context) (*models.Profile, error)
	UpdateProfile(ctx context.Context, update models.Profile) (*models.Profile, error)
}

type ProfileService struct {
	repo repositories.IProfileRepository
}

func NewProfileService() IProfileService {
	return &ProfileService{repo: repositories.NewProfileRepository()}
}

func NewProfileServiceWithRepo(repo repositories.IProfileRepository) IProfileService {
	return &ProfileService{repo: repo}
}

func (s *ProfileService) GetProfile(ctx context.Context) (*models.Profile, error) {
	profile, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

// UpdateProfile overwrites the singleton row with the submitted copy.
// The row identity is preserved; the dashboard never creates a second
// profile.
func (s *ProfileService) UpdateProfile(ctx context.Context, update models.Profile) (*models.Profile, error) {
	if strings.TrimSpace(update.CoupleNames) == "" {
		return nil, ErrProfileCoupleRequired
	}

	current, err := s.repo.Get(ctx)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return nil, err
		}
		current = &models.Profile{}
	}

	update.BaseModel = current.BaseModel
	if err := s.repo.Save(ctx, &update); err != nil {
		return nil, ErrProfileSaveFailed
	}
	configslog.SLog.Infof("Site profile updated: %s", update.CoupleNames)
	return &update, nil
}

var _ IProfileService = (*ProfileService)(nil)
