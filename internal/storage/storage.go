package storage

import (
	"fmt"
	"strings"
	"time"
)

// Package storage provides local DB/cache abstraction.

// Store tracks webhook delivery IDs so redelivered events are forwarded once.
type Store interface {
	Close() error
	SeenEvent(id string) (bool, error)
	MarkEvent(id string) error
}

// Options controls retention characteristics for concrete store implementations.
type Options struct {
	EventTTL        time.Duration
	CleanupInterval time.Duration
}

const (
	defaultEventTTL        = 24 * time.Hour
	defaultCleanupInterval = 12 * time.Hour
)

// NewStore creates the configured storage backend.
func NewStore(typ, path string, opts Options) (Store, error) {
	typ = strings.TrimSpace(strings.ToLower(typ))
	opts = normalizeOptions(opts)

	switch typ {
	case "", "none", "disabled":
		return noopStore{}, nil
	case "bbolt":
		if strings.TrimSpace(path) == "" {
			return nil, fmt.Errorf("bbolt storage requires a path")
		}
		return openBolt(path, opts)
	default:
		return nil, fmt.Errorf("unsupported storage type %q", typ)
	}
}

func normalizeOptions(opts Options) Options {
	if opts.EventTTL <= 0 {
		opts.EventTTL = defaultEventTTL
	}
	if opts.CleanupInterval <= 0 {
		opts.CleanupInterval = defaultCleanupInterval
	}
	return opts
}

type noopStore struct{}

func (noopStore) Close() error                   { return nil }
func (noopStore) SeenEvent(string) (bool, error) { return false, nil }
func (noopStore) MarkEvent(string) error         { return nil }
