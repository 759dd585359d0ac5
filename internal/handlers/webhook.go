package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/simplemsg-hq/simplemsg-go/internal/domain"
	"github.com/simplemsg-hq/simplemsg-go/pkg/forwarders"
	"github.com/simplemsg-hq/simplemsg-go/pkg/webhook"
)

// Webhook handles POST /webhooks. The producer signs the raw request body
// with HMAC-SHA256 and sends the hex digest as a bearer token; a mismatch is
// answered with 403 and the body is not processed.
func (h *Handler) Webhook(w http.ResponseWriter, r *http.Request) {
	signature := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.writeJSON(w, map[string]string{"error": "Failed to read request body"}, http.StatusBadRequest)
		return
	}

	if !webhook.Verify(body, h.secret, signature) {
		h.log.WarnObj("webhook signature mismatch", "webhook_auth", map[string]any{
			"remote_addr": r.RemoteAddr,
			"body_bytes":  len(body),
		})
		h.writeJSON(w, map[string]string{"error": "Invalid signature"}, http.StatusForbidden)
		return
	}

	if !json.Valid(body) {
		h.writeJSON(w, map[string]string{"error": "Invalid JSON payload"}, http.StatusBadRequest)
		return
	}

	digest := sha256.Sum256(body)
	evt := domain.WebhookEvent{
		ID:         hex.EncodeToString(digest[:]),
		ReceivedAt: time.Now().UTC(),
		Payload:    json.RawMessage(body),
	}

	h.log.InfoObj("webhook event received", "webhook_event", map[string]any{
		"event_id": evt.ID,
		"payload":  evt.Payload,
	})

	h.dispatch(r, evt)

	h.writeJSON(w, map[string]string{"status": "Received"}, http.StatusOK)
}

// dispatch forwards the verified event downstream unless the delivery was
// already seen. Forwarding failures are logged, never surfaced to the
// producer; the delivery has been accepted.
func (h *Handler) dispatch(r *http.Request, evt domain.WebhookEvent) {
	if h.fanout == nil || h.fanout.Size() == 0 {
		return
	}

	seen, err := h.store.SeenEvent(evt.ID)
	if err != nil {
		h.log.ErrorObj("dedup lookup failed", "webhook_store_error", map[string]any{
			"event_id": evt.ID,
			"error":    err.Error(),
		})
	}
	if seen {
		h.log.DebugObj("duplicate delivery skipped", "webhook_dedup", map[string]any{
			"event_id": evt.ID,
		})
		return
	}

	count, err := h.fanout.Forward(r.Context(), forwarders.NewEvent(h.receiverID, evt))
	if err != nil {
		h.log.ErrorObj("event forwarding failed", "webhook_forward_error", map[string]any{
			"event_id":   evt.ID,
			"successful": count,
			"error":      err.Error(),
		})
	}

	if err := h.store.MarkEvent(evt.ID); err != nil {
		h.log.ErrorObj("dedup mark failed", "webhook_store_error", map[string]any{
			"event_id": evt.ID,
			"error":    err.Error(),
		})
	}
}
