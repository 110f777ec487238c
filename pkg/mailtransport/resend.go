package mailtransport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const resendEndpoint = "https://api.resend.com/emails"

// ResendClient sends through the Resend REST API.
type ResendClient struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

// NewResendClient builds a client with the default endpoint and a
// bounded HTTP timeout. The caller imposes no timeout of its own; this
// is the only clock on a single send.
func NewResendClient(apiKey string) *ResendClient {
	return &ResendClient{
		apiKey:     apiKey,
		endpoint:   resendEndpoint,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// NewResendClientWithEndpoint is used by tests pointing at a local server.
func NewResendClientWithEndpoint(apiKey, endpoint string) *ResendClient {
	c := NewResendClient(apiKey)
	c.endpoint = endpoint
	return c
}

type resendPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type resendResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// Send delivers one message. Failures come back as *SendError with the
// provider's reason classified.
func (c *ResendClient) Send(ctx context.Context, msg *Message) (string, error) {
	payload := resendPayload{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		HTML:    msg.HTML,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &SendError{Kind: KindUnknown, Reason: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return "", &SendError{Kind: KindUnknown, Reason: "read response: " + err.Error()}
	}

	var parsed resendResponse
	_ = json.Unmarshal(raw, &parsed)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		reason := parsed.Message
		if reason == "" {
			reason = fmt.Sprintf("provider returned status %d", resp.StatusCode)
		}
		return "", classifyResponse(resp.StatusCode, reason)
	}
	return parsed.ID, nil
}

var _ Sender = (*ResendClient)(nil)
