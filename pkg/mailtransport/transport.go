// Package mailtransport talks to the hosted transactional-email API.
// Every call carries exactly one recipient; batching would defeat
// per-recipient templating and the caller's throttling.
package mailtransport

import (
	"context"
	"errors"
	"strings"
)

// Message is a single outbound email.
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
}

// Sender delivers one message and returns the provider's message ID.
// Tests inject a stub that records calls without hitting the network.
type Sender interface {
	Send(ctx context.Context, msg *Message) (string, error)
}

// ErrorKind classifies a failed send from the provider's response.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	// KindDomainNotVerified: the provider refused the recipient because
	// the sending domain lacks verification.
	KindDomainNotVerified
	// KindRateLimited: per-second quota exceeded.
	KindRateLimited
)

// SendError is a classified transport failure for one recipient.
type SendError struct {
	Kind   ErrorKind
	Reason string
}

func (e *SendError) Error() string { return e.Reason }

// Classify extracts the error kind from a send failure. Anything that
// is not a SendError is KindUnknown.
func Classify(err error) ErrorKind {
	var se *SendError
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindUnknown
}

// classifyResponse maps a provider error message (and HTTP status) to a
// SendError. Recognition is text-based: the provider ships reasons in
// prose, not machine codes.
func classifyResponse(status int, providerMsg string) *SendError {
	lower := strings.ToLower(providerMsg)
	switch {
	case status == 429 ||
		strings.Contains(lower, "rate limit") ||
		strings.Contains(lower, "too many requests"):
		return &SendError{
			Kind:   KindRateLimited,
			Reason: "rate limit exceeded: " + providerMsg,
		}
	case strings.Contains(lower, "verify a domain") ||
		strings.Contains(lower, "domain is not verified") ||
		strings.Contains(lower, "testing emails"):
		return &SendError{
			Kind:   KindDomainNotVerified,
			Reason: providerMsg + " (verify your sending domain with the mail provider to email this address)",
		}
	default:
		return &SendError{Kind: KindUnknown, Reason: providerMsg}
	}
}
