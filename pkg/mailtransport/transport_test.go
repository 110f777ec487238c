package mailtransport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClassifyResponse(t *testing.T) {
	tests := []struct {
		name   string
		status int
		msg    string
		want   ErrorKind
	}{
		{"http 429", 429, "slow down", KindRateLimited},
		{"rate limit text", 403, "Rate limit exceeded for today", KindRateLimited},
		{"too many requests", 400, "Too many requests, retry later", KindRateLimited},
		{"verify a domain", 403, "You can only send testing emails to your own address. Please verify a domain.", KindDomainNotVerified},
		{"domain not verified", 403, "The sending domain is not verified", KindDomainNotVerified},
		{"anything else", 500, "internal provider error", KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			se := classifyResponse(tt.status, tt.msg)
			if se.Kind != tt.want {
				t.Fatalf("kind = %v, want %v (reason %q)", se.Kind, tt.want, se.Reason)
			}
			if se.Reason == "" {
				t.Fatal("empty reason")
			}
		})
	}
}

func TestClassify(t *testing.T) {
	if got := Classify(&SendError{Kind: KindRateLimited, Reason: "x"}); got != KindRateLimited {
		t.Fatalf("Classify(SendError) = %v", got)
	}
	if got := Classify(errors.New("plain")); got != KindUnknown {
		t.Fatalf("Classify(plain error) = %v", got)
	}
	if got := Classify(nil); got != KindUnknown {
		t.Fatalf("Classify(nil) = %v", got)
	}
}

func TestResendClientSend(t *testing.T) {
	var captured struct {
		auth    string
		payload resendPayload
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.auth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&captured.payload)
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "msg_123"})
	}))
	defer srv.Close()

	c := NewResendClientWithEndpoint("test-key", srv.URL)
	id, err := c.Send(context.Background(), &Message{
		From:    "Liam & Mia <hello@liamandmia.wedding>",
		To:      "ann@x.com",
		Subject: "Hello",
		HTML:    "Hi<br>there",
	})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if id != "msg_123" {
		t.Fatalf("id = %q", id)
	}
	if captured.auth != "Bearer test-key" {
		t.Fatalf("auth header = %q", captured.auth)
	}
	// One recipient per call, always.
	if len(captured.payload.To) != 1 || captured.payload.To[0] != "ann@x.com" {
		t.Fatalf("to = %v", captured.payload.To)
	}
}

func TestResendClientSendFailureClassified(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Too many requests"})
	}))
	defer srv.Close()

	c := NewResendClientWithEndpoint("test-key", srv.URL)
	_, err := c.Send(context.Background(), &Message{To: "bo@x.com", Subject: "s", HTML: "b"})
	if err == nil {
		t.Fatal("expected error")
	}
	if Classify(err) != KindRateLimited {
		t.Fatalf("kind = %v, err = %v", Classify(err), err)
	}
}

func TestResendClientSendUnknownFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewResendClientWithEndpoint("test-key", srv.URL)
	_, err := c.Send(context.Background(), &Message{To: "bo@x.com", Subject: "s", HTML: "b"})
	if err == nil {
		t.Fatal("expected error")
	}
	if Classify(err) != KindUnknown {
		t.Fatalf("kind = %v", Classify(err))
	}
	if !strings.Contains(err.Error(), "500") {
		t.Fatalf("reason should mention status: %q", err.Error())
	}
}
