package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/simplemsg-hq/simplemsg-go/internal/config"
	"github.com/simplemsg-hq/simplemsg-go/internal/handlers"
	"github.com/simplemsg-hq/simplemsg-go/internal/logger"
	"github.com/simplemsg-hq/simplemsg-go/internal/storage"
	"github.com/simplemsg-hq/simplemsg-go/pkg/forwarders"
)

// Receiver represents the webhook receiver runtime. It owns the HTTP server,
// the delivery dedup store, and the downstream forwarding fanout.
type Receiver struct {
	cfg    *config.Config
	fanout *forwarders.Fanout
	store  storage.Store
	srv    *http.Server
	log    logger.Logger
}

// NewReceiver builds a receiver runtime from config.
func NewReceiver(ctx context.Context, cfg *config.Config, log logger.Logger) (*Receiver, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = &logger.NopLogger{}
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.WebhookSecret == "" {
		return nil, fmt.Errorf("webhook_secret must be configured")
	}

	fanout, err := buildFanout(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	store, err := storage.NewStore(cfg.StorageType, cfg.BBoltPath, storage.Options{
		EventTTL:        cfg.StorageTTL,
		CleanupInterval: cfg.StorageCleanupInterval,
	})
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	handler := handlers.New(cfg.AppName, cfg.WebhookSecret, fanout, store, log)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /webhooks", handler.Webhook)
	mux.HandleFunc("GET /healthz", handler.Health)

	return &Receiver{
		cfg:    cfg,
		fanout: fanout,
		store:  store,
		srv: &http.Server{
			Addr:         cfg.ListenAddr,
			Handler:      mux,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		log: log,
	}, nil
}

// buildFanout loads and instantiates the configured forwarders. An empty
// forwarders_file means events are logged and acknowledged only.
func buildFanout(ctx context.Context, cfg *config.Config, log logger.Logger) (*forwarders.Fanout, error) {
	if cfg.ForwardersFile == "" {
		return forwarders.NewFanout(nil), nil
	}

	fwdReg, err := forwarders.LoadRegistry(cfg.ForwardersFile)
	if err != nil {
		return nil, fmt.Errorf("load forwarders registry: %w", err)
	}

	enabled := fwdReg.Enabled()
	fwds, err := forwarders.BuildAll(ctx, forwarders.DefaultRegistry(), enabled, log)
	if err != nil {
		return nil, fmt.Errorf("build forwarders: %w", err)
	}

	summaries := make([]map[string]string, 0, len(enabled))
	for _, fwdCfg := range enabled {
		summaries = append(summaries, map[string]string{
			"id":   fwdCfg.ID,
			"type": fwdCfg.Type,
		})
	}
	log.InfoObj("forwarders registry loaded", "forwarders", summaries)

	return forwarders.NewFanout(fwds), nil
}

// Run serves webhook traffic until the context is cancelled, then shuts the
// server down gracefully.
func (r *Receiver) Run(ctx context.Context) error {
	if r == nil || r.srv == nil {
		return fmt.Errorf("receiver is not initialized")
	}
	defer r.closeStore()

	r.log.InfoObj("receiver starting", "receiver_state", map[string]any{
		"listen_addr":      r.srv.Addr,
		"forwarders_count": r.fanout.Size(),
		"storage_type":     r.cfg.StorageType,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := r.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	r.log.InfoObj("receiver shutting down", "reason", ctx.Err())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), r.shutdownTimeout())
	defer cancel()

	if err := r.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}

func (r *Receiver) shutdownTimeout() time.Duration {
	if r.cfg != nil && r.cfg.ShutdownTimeout > 0 {
		return r.cfg.ShutdownTimeout
	}
	return 10 * time.Second
}

func (r *Receiver) closeStore() {
	if r.store == nil {
		return
	}
	if err := r.store.Close(); err != nil {
		r.log.ErrorObj("close storage failed", "error", err)
	}
}
