package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/simplemsg-hq/simplemsg-go/internal/logger"
	"github.com/simplemsg-hq/simplemsg-go/internal/storage"
	"github.com/simplemsg-hq/simplemsg-go/pkg/forwarders"
	"github.com/simplemsg-hq/simplemsg-go/pkg/webhook"
)

type recordingForwarder struct {
	events []forwarders.Event
}

func (r *recordingForwarder) ID() string   { return "rec" }
func (r *recordingForwarder) Type() string { return "http" }
func (r *recordingForwarder) Forward(_ context.Context, evt forwarders.Event) error {
	r.events = append(r.events, evt)
	return nil
}

func postWebhook(t *testing.T, h *Handler, body, signature string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/webhooks", strings.NewReader(body))
	if signature != "" {
		req.Header.Set("Authorization", "Bearer "+signature)
	}
	w := httptest.NewRecorder()
	h.Webhook(w, req)
	return w
}

func TestWebhookAcknowledgesValidSignature(t *testing.T) {
	const secret = "mySecret"
	rec := &recordingForwarder{}
	h := New("receiver-1", secret, forwarders.NewFanout([]forwarders.Forwarder{rec}), nil, &logger.NopLogger{})

	body := `{"event":"message.delivered","id":"msg_123"}`
	w := postWebhook(t, h, body, webhook.Sign([]byte(body), secret))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["status"] != "Received" {
		t.Fatalf("response = %#v", resp)
	}
	if len(rec.events) != 1 {
		t.Fatalf("expected 1 forwarded event, got %d", len(rec.events))
	}
	if string(rec.events[0].Event.Payload) != body {
		t.Fatalf("forwarded payload = %s", rec.events[0].Event.Payload)
	}
}

func TestWebhookRejectsInvalidSignature(t *testing.T) {
	rec := &recordingForwarder{}
	h := New("receiver-1", "mySecret", forwarders.NewFanout([]forwarders.Forwarder{rec}), nil, &logger.NopLogger{})

	w := postWebhook(t, h, `{"event":"x"}`, "invalid_signature")

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d", w.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["error"] != "Invalid signature" {
		t.Fatalf("response = %#v", resp)
	}
	if len(rec.events) != 0 {
		t.Fatalf("forwarder must not run on mismatch")
	}
}

func TestWebhookRejectsMissingAuthorizationHeader(t *testing.T) {
	h := New("receiver-1", "mySecret", nil, nil, &logger.NopLogger{})

	w := postWebhook(t, h, `{"event":"x"}`, "")
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestWebhookRejectsMalformedJSON(t *testing.T) {
	const secret = "mySecret"
	h := New("receiver-1", secret, nil, nil, &logger.NopLogger{})

	body := `{"event":`
	w := postWebhook(t, h, body, webhook.Sign([]byte(body), secret))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestWebhookSkipsDuplicateDeliveries(t *testing.T) {
	const secret = "mySecret"
	store, err := storage.NewStore("bbolt", filepath.Join(t.TempDir(), "deliveries.db"), storage.Options{})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	defer store.Close()

	rec := &recordingForwarder{}
	h := New("receiver-1", secret, forwarders.NewFanout([]forwarders.Forwarder{rec}), store, &logger.NopLogger{})

	body := `{"event":"message.delivered","id":"msg_123"}`
	signature := webhook.Sign([]byte(body), secret)

	for i := 0; i < 2; i++ {
		if w := postWebhook(t, h, body, signature); w.Code != http.StatusOK {
			t.Fatalf("delivery %d status = %d", i, w.Code)
		}
	}

	if len(rec.events) != 1 {
		t.Fatalf("expected redelivery to be deduplicated, forwarded %d times", len(rec.events))
	}
}
