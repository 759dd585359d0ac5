package forwarders

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Builder creates a Forwarder from a config entry.
type Builder func(ctx context.Context, cfg ForwarderConfig, log Logger) (Forwarder, error)

// Registry maps forwarder types to builders.
type Registry interface {
	Register(typ string, builder Builder)
	ForwarderFor(ctx context.Context, cfg ForwarderConfig, log Logger) (Forwarder, error)
}

type registry struct {
	mu       sync.RWMutex
	builders map[string]Builder
}

// NewRegistry returns a registry with optional pre-registered builders.
func NewRegistry(builders map[string]Builder) Registry {
	r := &registry{
		builders: make(map[string]Builder),
	}
	for typ, b := range builders {
		r.Register(typ, b)
	}
	return r
}

// Register associates a builder with a forwarder type.
func (r *registry) Register(typ string, builder Builder) {
	if typ = strings.TrimSpace(strings.ToLower(typ)); typ == "" || builder == nil {
		return
	}

	r.mu.Lock()
	r.builders[typ] = builder
	r.mu.Unlock()
}

// ForwarderFor returns the forwarder built for the provided config.
func (r *registry) ForwarderFor(ctx context.Context, cfg ForwarderConfig, log Logger) (Forwarder, error) {
	if cfg.Type == "" {
		return nil, fmt.Errorf("forwarder %q has no type configured", cfg.ID)
	}

	r.mu.RLock()
	builder := r.builders[strings.ToLower(cfg.Type)]
	r.mu.RUnlock()

	if builder == nil {
		return nil, fmt.Errorf("no forwarder registered for type %q", cfg.Type)
	}
	return builder(ctx, cfg, log)
}

// DefaultRegistry wires up known forwarders.
func DefaultRegistry() Registry {
	builders := map[string]Builder{
		TypeHTTP:      newHTTPForwarder,
		TypeSQS:       newSQSForwarder,
		TypeSNS:       newSNSForwarder,
		TypeGCPPubSub: newGCPPubSubForwarder,
	}
	return NewRegistry(builders)
}

// BuildAll instantiates forwarders for configs using the registry.
func BuildAll(ctx context.Context, reg Registry, cfgs []ForwarderConfig, log Logger) ([]Forwarder, error) {
	if reg == nil || len(cfgs) == 0 {
		return nil, nil
	}

	var fwds []Forwarder
	for _, cfg := range cfgs {
		fwd, err := reg.ForwarderFor(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		fwds = append(fwds, fwd)
	}
	return fwds, nil
}
