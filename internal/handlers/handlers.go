package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/simplemsg-hq/simplemsg-go/internal/logger"
	"github.com/simplemsg-hq/simplemsg-go/internal/storage"
	"github.com/simplemsg-hq/simplemsg-go/pkg/forwarders"
)

// Handler serves the webhook receiver HTTP surface.
type Handler struct {
	receiverID string
	secret     string
	fanout     *forwarders.Fanout
	store      storage.Store
	log        logger.Logger
}

// New builds a Handler. fanout and store may be nil; events are then only
// logged and acknowledged.
func New(receiverID, secret string, fanout *forwarders.Fanout, store storage.Store, log logger.Logger) *Handler {
	if log == nil {
		log = &logger.NopLogger{}
	}
	if store == nil {
		store, _ = storage.NewStore("none", "", storage.Options{})
	}
	return &Handler{
		receiverID: receiverID,
		secret:     secret,
		fanout:     fanout,
		store:      store,
		log:        log,
	}
}

// writeJSON writes a JSON response with the given status code.
func (h *Handler) writeJSON(w http.ResponseWriter, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.ErrorObj("encode json response failed", "error", err)
	}
}
