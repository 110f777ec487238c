package services

import (
	"context"
	"errors"
	"testing"

	"liamandmia.wedding/models"
	"liamandmia.wedding/repositories"

	"github.com/google/uuid"
)

// fakeGuestRepo is an in-memory IGuestRepository.
type fakeGuestRepo struct {
	guests  []models.Guest
	creates int
	findErr error
}

func (f *fakeGuestRepo) Create(ctx context.Context, guest *models.Guest) error {
	f.creates++
	if guest.ID == uuid.Nil {
		guest.ID = uuid.New()
	}
	f.guests = append(f.guests, *guest)
	return nil
}

func (f *fakeGuestRepo) FindAll(ctx context.Context) ([]models.Guest, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	out := make([]models.Guest, len(f.guests))
	copy(out, f.guests)
	return out, nil
}

func (f *fakeGuestRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Guest, error) {
	for i := range f.guests {
		if f.guests[i].ID == id {
			g := f.guests[i]
			return &g, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeGuestRepo) DeleteByID(ctx context.Context, id uuid.UUID) error {
	for i := range f.guests {
		if f.guests[i].ID == id {
			f.guests = append(f.guests[:i], f.guests[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func boolPtr(b bool) *bool { return &b }

func TestValidateRSVPSubmission(t *testing.T) {
	tests := []struct {
		name          string
		submission    RSVPSubmission
		wantAttending bool
		wantErr       error
	}{
		{"valid yes", RSVPSubmission{Name: "Ann", Email: "ann@x.com", AttendingChoice: "yes"}, true, nil},
		{"valid no", RSVPSubmission{Name: "Bo", Email: "bo@x.com", AttendingChoice: "no"}, false, nil},
		{"choice case insensitive", RSVPSubmission{Name: "Cy", Email: "cy@x.com", AttendingChoice: "YES"}, true, nil},
		{"missing name", RSVPSubmission{Email: "ann@x.com", AttendingChoice: "yes"}, false, ErrRSVPMissingFields},
		{"missing email", RSVPSubmission{Name: "Ann", AttendingChoice: "yes"}, false, ErrRSVPMissingFields},
		{"missing choice", RSVPSubmission{Name: "Ann", Email: "ann@x.com"}, false, ErrRSVPMissingFields},
		{"whitespace name", RSVPSubmission{Name: "   ", Email: "ann@x.com", AttendingChoice: "yes"}, false, ErrRSVPMissingFields},
		{"bogus choice", RSVPSubmission{Name: "Ann", Email: "ann@x.com", AttendingChoice: "maybe"}, false, ErrRSVPInvalidChoice},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attending, err := ValidateRSVPSubmission(tt.submission)
			if !errors.Is(err, tt.wantErr) && (err != nil || tt.wantErr != nil) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if err == nil && attending != tt.wantAttending {
				t.Fatalf("attending = %t, want %t", attending, tt.wantAttending)
			}
		})
	}
}

func TestSubmitRSVPMissingChoiceNoInsert(t *testing.T) {
	repo := &fakeGuestRepo{}
	svc := NewRSVPServiceWithRepo(repo)

	_, err := svc.SubmitRSVP(context.Background(), RSVPSubmission{Name: "Ann", Email: "ann@x.com"})
	if !errors.Is(err, ErrRSVPMissingFields) {
		t.Fatalf("err = %v, want ErrRSVPMissingFields", err)
	}
	if repo.creates != 0 {
		t.Fatalf("store write happened despite validation failure (%d creates)", repo.creates)
	}
}

func TestSubmitRSVPGuestCountNormalization(t *testing.T) {
	tests := []struct {
		name   string
		choice string
		count  string
		want   int
	}{
		{"attending with count", "yes", "3", 3},
		{"attending zero", "yes", "0", 1},
		{"attending negative", "yes", "-2", 1},
		{"attending garbage", "yes", "abc", 1},
		{"attending absent", "yes", "", 1},
		{"declining ignores count", "no", "5", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeGuestRepo{}
			svc := NewRSVPServiceWithRepo(repo)

			guest, err := svc.SubmitRSVP(context.Background(), RSVPSubmission{
				Name: "Ann", Email: "ann@x.com", AttendingChoice: tt.choice, GuestCount: tt.count,
			})
			if err != nil {
				t.Fatalf("SubmitRSVP: %v", err)
			}
			if guest.GuestCount != tt.want {
				t.Fatalf("guest_count = %d, want %d", guest.GuestCount, tt.want)
			}
		})
	}
}

// Resubmission is insert-only by design: no dedup against existing
// email, a second submission is a second row.
func TestSubmitRSVPDuplicateEmailCreatesSecondRow(t *testing.T) {
	repo := &fakeGuestRepo{}
	svc := NewRSVPServiceWithRepo(repo)

	sub := RSVPSubmission{Name: "Ann", Email: "ann@x.com", AttendingChoice: "yes"}
	if _, err := svc.SubmitRSVP(context.Background(), sub); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if _, err := svc.SubmitRSVP(context.Background(), sub); err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if len(repo.guests) != 2 {
		t.Fatalf("rows = %d, want 2 (no upsert on resubmission)", len(repo.guests))
	}
}

func TestGuestStats(t *testing.T) {
	repo := &fakeGuestRepo{guests: []models.Guest{
		{Name: "Ann", Email: "ann@x.com", Attending: boolPtr(true), GuestCount: 2},
		{Name: "Bo", Email: "bo@x.com", Attending: boolPtr(true), GuestCount: 3},
		{Name: "Cy", Email: "cy@x.com", Attending: boolPtr(false), GuestCount: 4},
		{Name: "Di", Email: "di@x.com", Attending: nil, GuestCount: 9},
	}}
	svc := NewRSVPServiceWithRepo(repo)

	stats, err := svc.GuestStats(context.Background())
	if err != nil {
		t.Fatalf("GuestStats: %v", err)
	}
	if stats.Total != 4 || stats.Confirmed != 2 || stats.Declined != 1 || stats.Pending != 1 {
		t.Fatalf("stats = %+v", stats)
	}
	// Only attending=true rows count attendees; declined/pending counts
	// carry no semantics.
	if stats.TotalAttendees != 5 {
		t.Fatalf("total_attendees = %d, want 5", stats.TotalAttendees)
	}
}

func TestDeleteGuestNotFound(t *testing.T) {
	svc := NewRSVPServiceWithRepo(&fakeGuestRepo{})
	err := svc.DeleteGuest(context.Background(), uuid.New())
	if !errors.Is(err, ErrGuestNotFound) {
		t.Fatalf("err = %v, want ErrGuestNotFound", err)
	}
}
