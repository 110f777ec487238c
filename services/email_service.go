package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"liamandmia.wedding/configs"
	"liamandmia.wedding/configs/configslog"
	"liamandmia.wedding/models"
	"liamandmia.wedding/pkg/mailtemplate"
	"liamandmia.wedding/pkg/mailtransport"
	"liamandmia.wedding/pkg/sendqueue"
	"liamandmia.wedding/repositories"

	"go.uber.org/zap"
)

// EmailServiceError carries bulk-dispatch failures.
type EmailServiceError string

func (e EmailServiceError) Error() string { return string(e) }

const (
	ErrEmailMissingContent  EmailServiceError = "subject and message are required"
	ErrEmailNoRecipients    EmailServiceError = "no recipients resolved for the selected audience"
	ErrEmailInvalidAudience EmailServiceError = "unknown recipient audience"
	ErrEmailGuestLoadFailed EmailServiceError = "guest list could not be loaded"
)

// Audience selects which slice of the guest list receives a bulk email.
type Audience string

const (
	AudienceAll       Audience = "all"
	AudienceConfirmed Audience = "confirmed"
	AudienceDeclined  Audience = "declined"
	AudiencePending   Audience = "pending"
	AudienceCustom    Audience = "custom"
)

// Recipient is one resolved addressee.
type Recipient struct {
	Email string
	Name  string
}

// BulkEmailRequest is one dispatch order from the dashboard. Subject and
// Message are operator templates carrying {name} and {website_url}
// tokens. CoupleNames and WebsiteURL override the stored profile when
// set.
type BulkEmailRequest struct {
	Subject     string   `json:"subject"`
	Message     string   `json:"message"`
	Audience    Audience `json:"recipient_type"`
	CustomEmail string   `json:"custom_email"`
	CoupleNames string   `json:"couple_names"`
	WebsiteURL  string   `json:"website_url"`
}

// RecipientError records one failed send, in send order.
type RecipientError struct {
	Email  string `json:"email"`
	Reason string `json:"reason"`
}

// DispatchReport is the aggregate outcome returned to the dashboard.
// ActualEmailsSent is false when dispatch ran in demo mode; callers must
// check it before trusting the counts.
type DispatchReport struct {
	Success          bool             `json:"success"`
	ActualEmailsSent bool             `json:"actual_emails_sent"`
	Message          string           `json:"message"`
	RecipientCount   int              `json:"recipient_count"`
	SuccessCount     int              `json:"success_count"`
	ErrorCount       int              `json:"error_count"`
	Errors           []RecipientError `json:"errors,omitempty"`
	SendingLog       []string         `json:"sending_log"`
}

// IEmailService is the bulk guest-communication surface.
type IEmailService interface {
	SendBulkEmail(ctx context.Context, req BulkEmailRequest) (*DispatchReport, error)
}

type EmailService struct {
	guests   repositories.IGuestRepository
	profiles repositories.IProfileRepository
	// sender is nil when no mail API key is configured; dispatch then
	// runs in demo mode and touches no network.
	sender   mailtransport.Sender
	renderer *mailtemplate.Renderer
	queue    *sendqueue.Queue
	from     string
}

// NewEmailService wires the production dependency set from configuration.
func NewEmailService() IEmailService {
	mail := configs.Mail()
	var sender mailtransport.Sender
	if mail.APIKey != "" {
		sender = mailtransport.NewResendClient(mail.APIKey)
	}
	return &EmailService{
		guests:   repositories.NewGuestRepository(),
		profiles: repositories.NewProfileRepository(),
		sender:   sender,
		renderer: mailtemplate.NewRenderer(mailtemplate.DefaultRules()),
		queue:    sendqueue.New(mail.InterMessageDelay, mail.RateLimitPenalty, nil),
		from:     mail.FromAddress,
	}
}

// NewEmailServiceWithDeps wires explicit dependencies; used by tests.
// A nil sender selects demo mode, exactly as in production.
func NewEmailServiceWithDeps(
	guests repositories.IGuestRepository,
	profiles repositories.IProfileRepository,
	sender mailtransport.Sender,
	renderer *mailtemplate.Renderer,
	queue *sendqueue.Queue,
	from string,
) IEmailService {
	return &EmailService{
		guests:   guests,
		profiles: profiles,
		sender:   sender,
		renderer: renderer,
		queue:    queue,
		from:     from,
	}
}

// SelectRecipients filters a guest snapshot into a concrete recipient
// set. Rows without an email never make it in. The custom audience
// bypasses the snapshot entirely and falls back to the address's local
// part for the display name. Duplicate guest emails stay duplicated:
// two rows mean two sends.
func SelectRecipients(audience Audience, customEmail string, guests []models.Guest) ([]Recipient, error) {
	if audience == AudienceCustom {
		email := strings.TrimSpace(customEmail)
		if email == "" {
			return nil, nil
		}
		return []Recipient{{Email: email, Name: localPart(email)}}, nil
	}

	var match func(g models.Guest) bool
	switch audience {
	case AudienceAll:
		match = func(models.Guest) bool { return true }
	case AudienceConfirmed:
		match = func(g models.Guest) bool { return g.Attending != nil && *g.Attending }
	case AudienceDeclined:
		match = func(g models.Guest) bool { return g.Attending != nil && !*g.Attending }
	case AudiencePending:
		match = func(g models.Guest) bool { return g.Attending == nil }
	default:
		return nil, ErrEmailInvalidAudience
	}

	var recipients []Recipient
	for _, g := range guests {
		email := strings.TrimSpace(g.Email)
		if email == "" || !match(g) {
			continue
		}
		name := strings.TrimSpace(g.Name)
		if name == "" {
			name = localPart(email)
		}
		recipients = append(recipients, Recipient{Email: email, Name: name})
	}
	return recipients, nil
}

func localPart(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}

// SendBulkEmail resolves the audience against a fresh guest snapshot,
// renders the template per recipient, and sends sequentially under the
// queue's throttling policy. Per-recipient failures are contained and
// aggregated; the loop always runs to completion. Precondition failures
// return an error before any transport call.
func (s *EmailService) SendBulkEmail(ctx context.Context, req BulkEmailRequest) (*DispatchReport, error) {
	if strings.TrimSpace(req.Subject) == "" || strings.TrimSpace(req.Message) == "" {
		return nil, ErrEmailMissingContent
	}

	recipients, err := s.resolveRecipients(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(recipients) == 0 {
		return nil, ErrEmailNoRecipients
	}

	tmplCtx := s.templateContext(ctx, req)

	if s.sender == nil {
		configslog.SLog.Infof("Demo dispatch: %d recipient(s), audience=%s, no mail API key configured",
			len(recipients), req.Audience)
		return &DispatchReport{
			Success:          true,
			ActualEmailsSent: false,
			Message: fmt.Sprintf("Demo mode: %d email(s) simulated; configure the mail API key to send for real",
				len(recipients)),
			RecipientCount: len(recipients),
		}, nil
	}

	outcome := s.dispatch(ctx, req.Subject, req.Message, recipients, tmplCtx)
	return Summarize(outcome), nil
}

// dispatchOutcome is the raw aggregate the reporter shapes for callers.
type dispatchOutcome struct {
	recipientCount int
	successCount   int
	errorCount     int
	errors         []RecipientError
	sendingLog     []string
}

func (s *EmailService) dispatch(ctx context.Context, subject, template string, recipients []Recipient, tmplCtx mailtemplate.Context) *dispatchOutcome {
	outcome := &dispatchOutcome{recipientCount: len(recipients)}

	s.queue.Run(len(recipients), func(i int) sendqueue.Verdict {
		r := recipients[i]
		perRecipient := tmplCtx
		perRecipient.Name = r.Name
		body := s.renderer.Render(template, perRecipient)

		outcome.sendingLog = append(outcome.sendingLog,
			fmt.Sprintf("Attempting to send to %s (%d/%d)", r.Email, i+1, len(recipients)))

		msg := &mailtransport.Message{
			From:    formatSender(tmplCtx.CoupleNames, s.from),
			To:      r.Email,
			Subject: subject,
			HTML:    mailtemplate.ToHTML(body),
		}
		id, err := s.sender.Send(ctx, msg)
		if err != nil {
			outcome.errorCount++
			reason := err.Error()
			outcome.errors = append(outcome.errors, RecipientError{Email: r.Email, Reason: reason})
			outcome.sendingLog = append(outcome.sendingLog,
				fmt.Sprintf("Failed to send to %s: %s", r.Email, reason))
			configslog.Log.Warn("Send failed",
				zap.String("to", r.Email), zap.Error(err))
			if mailtransport.Classify(err) == mailtransport.KindRateLimited {
				return sendqueue.RateLimited
			}
			return sendqueue.Failed
		}

		outcome.successCount++
		outcome.sendingLog = append(outcome.sendingLog,
			fmt.Sprintf("Sent to %s", r.Email))
		configslog.SLog.Infof("Sent to %s (message id %s)", r.Email, id)
		return sendqueue.Delivered
	})

	return outcome
}

// Summarize shapes the aggregate outcome for the calling UI. Pure
// formatting: counts and errors pass through unmodified.
func Summarize(outcome *dispatchOutcome) *DispatchReport {
	report := &DispatchReport{
		Success:          outcome.errorCount == 0,
		ActualEmailsSent: true,
		RecipientCount:   outcome.recipientCount,
		SuccessCount:     outcome.successCount,
		ErrorCount:       outcome.errorCount,
		Errors:           outcome.errors,
		SendingLog:       outcome.sendingLog,
	}
	if report.Success {
		report.Message = fmt.Sprintf("All emails sent successfully to %d recipient(s)", outcome.recipientCount)
	} else {
		report.Message = fmt.Sprintf("%d succeeded, %d failed; check the error details",
			outcome.successCount, outcome.errorCount)
	}
	return report
}

// resolveRecipients reads a fresh snapshot immediately before dispatch;
// the store is the source of truth, not whatever list the UI last saw.
func (s *EmailService) resolveRecipients(ctx context.Context, req BulkEmailRequest) ([]Recipient, error) {
	if req.Audience == AudienceCustom {
		return SelectRecipients(req.Audience, req.CustomEmail, nil)
	}
	guests, err := s.guests.FindAll(ctx)
	if err != nil {
		configslog.Log.Error("Guest snapshot failed before dispatch", zap.Error(err))
		return nil, ErrEmailGuestLoadFailed
	}
	return SelectRecipients(req.Audience, "", guests)
}

// templateContext fills couple names and website URL from the request,
// falling back to the stored profile and finally the site settings.
func (s *EmailService) templateContext(ctx context.Context, req BulkEmailRequest) mailtemplate.Context {
	tmplCtx := mailtemplate.Context{
		CoupleNames: strings.TrimSpace(req.CoupleNames),
		WebsiteURL:  strings.TrimSpace(req.WebsiteURL),
	}
	if tmplCtx.CoupleNames != "" && tmplCtx.WebsiteURL != "" {
		return tmplCtx
	}
	if s.profiles != nil {
		if profile, err := s.profiles.Get(ctx); err == nil {
			if tmplCtx.CoupleNames == "" {
				tmplCtx.CoupleNames = profile.CoupleNames
			}
			if tmplCtx.WebsiteURL == "" {
				tmplCtx.WebsiteURL = profile.WebsiteURL
			}
			return tmplCtx
		} else if !errors.Is(err, repositories.ErrNotFound) {
			configslog.Log.Warn("Profile read failed before dispatch", zap.Error(err))
		}
	}
	site := configs.Site()
	if tmplCtx.CoupleNames == "" {
		tmplCtx.CoupleNames = site.CoupleNames
	}
	if tmplCtx.WebsiteURL == "" {
		tmplCtx.WebsiteURL = site.WebsiteURL
	}
	return tmplCtx
}

// formatSender builds the display-name From header, "Liam & Mia <addr>".
func formatSender(coupleNames, address string) string {
	if coupleNames == "" {
		return address
	}
	return fmt.Sprintf("%s <%s>", coupleNames, address)
}

var _ IEmailService = (*EmailService)(nil)
