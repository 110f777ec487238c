package services

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"liamandmia.wedding/configs/configslog"
	"liamandmia.wedding/models"
	"liamandmia.wedding/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RSVPServiceError carries RSVP-specific failures.
type RSVPServiceError string

func (e RSVPServiceError) Error() string { return string(e) }

const (
	ErrRSVPMissingFields RSVPServiceError = "name, email and attendance choice are required"
	ErrRSVPInvalidChoice RSVPServiceError = "attendance choice must be yes or no"
	ErrRSVPSaveFailed    RSVPServiceError = "RSVP could not be saved"
	ErrGuestNotFound     RSVPServiceError = "guest not found"
	ErrGuestDeleteFailed RSVPServiceError = "guest could not be deleted"
)

// RSVPSubmission is the untrusted public form payload. GuestCount
// arrives as text because the form field is a text input.
type RSVPSubmission struct {
	Name                string `json:"name"`
	Email               string `json:"email"`
	AttendingChoice     string `json:"attending"`
	GuestCount          string `json:"guest_count"`
	DietaryRestrictions string `json:"dietary_restrictions"`
	Message             string `json:"message"`
}

// IRSVPService validates and stores RSVP submissions and backs the
// dashboard's guest views.
type IRSVPService interface {
	SubmitRSVP(ctx context.Context, submission RSVPSubmission) (*models.Guest, error)
	ListGuests(ctx context.Context) ([]models.Guest, error)
	DeleteGuest(ctx context.Context, id uuid.UUID) error
	GuestStats(ctx context.Context) (*models.GuestStats, error)
}

type RSVPService struct {
	repo repositories.IGuestRepository
}

func NewRSVPService() IRSVPService {
	return &RSVPService{repo: repositories.NewGuestRepository()}
}

// NewRSVPServiceWithRepo wires an explicit repository; used by tests.
func NewRSVPServiceWithRepo(repo repositories.IGuestRepository) IRSVPService {
	return &RSVPService{repo: repo}
}

// ValidateRSVPSubmission checks the hard preconditions and maps the
// attendance choice. Runs before any store write.
func ValidateRSVPSubmission(submission RSVPSubmission) (attending bool, err error) {
	name := strings.TrimSpace(submission.Name)
	email := strings.TrimSpace(submission.Email)
	choice := strings.ToLower(strings.TrimSpace(submission.AttendingChoice))

	if name == "" || email == "" || choice == "" {
		return false, ErrRSVPMissingFields
	}
	switch choice {
	case "yes":
		return true, nil
	case "no":
		return false, nil
	default:
		return false, ErrRSVPInvalidChoice
	}
}

// SubmitRSVP inserts one guest row on success. Insert-only: a second
// submission with the same email creates a second row, and the admin
// list shows both.
func (s *RSVPService) SubmitRSVP(ctx context.Context, submission RSVPSubmission) (*models.Guest, error) {
	attending, err := ValidateRSVPSubmission(submission)
	if err != nil {
		return nil, err
	}

	guest := models.Guest{
		Name:                strings.TrimSpace(submission.Name),
		Email:               strings.TrimSpace(submission.Email),
		Attending:           &attending,
		GuestCount:          normalizeGuestCount(submission.GuestCount, attending),
		DietaryRestrictions: strings.TrimSpace(submission.DietaryRestrictions),
		Message:             strings.TrimSpace(submission.Message),
	}

	if err := s.repo.Create(ctx, &guest); err != nil {
		return nil, ErrRSVPSaveFailed
	}
	configslog.SLog.Infof("RSVP received: %s <%s>, attending=%t, party of %d",
		guest.Name, guest.Email, attending, guest.GuestCount)
	return &guest, nil
}

// normalizeGuestCount enforces count >= 1 when attending. The form
// constrains the field to 1+, but the validator cannot trust it: a
// missing, unparsable, zero or negative value becomes 1. Declining
// guests always record 1.
func normalizeGuestCount(raw string, attending bool) int {
	if !attending {
		return 1
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func (s *RSVPService) ListGuests(ctx context.Context) ([]models.Guest, error) {
	return s.repo.FindAll(ctx)
}

func (s *RSVPService) DeleteGuest(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrGuestNotFound
		}
		configslog.Log.Error("DeleteGuest failed", zap.String("id", id.String()), zap.Error(err))
		return ErrGuestDeleteFailed
	}
	configslog.SLog.Infof("Guest deleted: %s", id)
	return nil
}

// GuestStats summarizes the list for the dashboard. Attendee totals sum
// guest_count over attending=true rows only; pending rows have no
// defined count semantics.
func (s *RSVPService) GuestStats(ctx context.Context) (*models.GuestStats, error) {
	guests, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	stats := models.GuestStats{Total: int64(len(guests))}
	for _, g := range guests {
		switch {
		case g.Attending == nil:
			stats.Pending++
		case *g.Attending:
			stats.Confirmed++
			stats.TotalAttendees += int64(g.GuestCount)
		default:
			stats.Declined++
		}
	}
	return &stats, nil
}

var _ IRSVPService = (*RSVPService)(nil)
