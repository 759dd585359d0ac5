package forwarders

import (
	"context"
	"errors"
	"fmt"
)

// Fanout dispatches events to all configured forwarders.
type Fanout struct {
	forwarders []Forwarder
}

// NewFanout builds a dispatcher that fans out events across forwarders.
func NewFanout(fwds []Forwarder) *Fanout {
	cp := make([]Forwarder, 0, len(fwds))
	for _, f := range fwds {
		if f == nil {
			continue
		}
		cp = append(cp, f)
	}
	return &Fanout{forwarders: cp}
}

// Forward delivers the event to every registered forwarder.
// It returns the number of forwarders that successfully handled the event.
func (f *Fanout) Forward(ctx context.Context, evt Event) (int, error) {
	if f == nil || len(f.forwarders) == 0 {
		return 0, nil
	}

	var errs []error
	successful := 0
	for _, fwd := range f.forwarders {
		if err := fwd.Forward(ctx, evt); err != nil {
			errs = append(errs, fmt.Errorf("%s forwarder[%s]: %w", fwd.Type(), fwd.ID(), err))
		} else {
			successful++
		}
	}
	return successful, errors.Join(errs...)
}

// Size returns the number of active forwarders.
func (f *Fanout) Size() int {
	if f == nil {
		return 0
	}
	return len(f.forwarders)
}
