// internal/app/features/propertydash/dashboard.go
package propertydash

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Dashboard owns the state of one mounted property dashboard. It fetches
// the property list exactly once and then only changes on Select.
type Dashboard struct {
	src PropertySource
	log *zap.Logger

	mu      sync.Mutex
	state   State
	started bool
	closed  bool
	cancel  context.CancelFunc

	settled    chan struct{}
	settleOnce sync.Once
}

// New returns a Dashboard in the loading state. Nothing is fetched until Init.
func New(src PropertySource, logger *zap.Logger) *Dashboard {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dashboard{
		src:     src,
		log:     logger,
		state:   State{Loading: true},
		settled: make(chan struct{}),
	}
}

// Init performs the single property fetch. Fetch failures are recorded in
// the state, not returned. A second call returns ErrAlreadyInitialized.
func (d *Dashboard) Init(ctx context.Context) error {
	d.mu.Lock()
	switch {
	case d.closed:
		d.mu.Unlock()
		return ErrClosed
	case d.started:
		d.mu.Unlock()
		return ErrAlreadyInitialized
	}
	d.started = true
	ctx, d.cancel = context.WithCancel(ctx)
	d.mu.Unlock()

	var (
		props []Property
		err   error
	)
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("property source panicked: %v", p)
		}
		d.settle(props, err)
		d.release()
	}()

	props, err = d.src.GetProperties(ctx)
	return nil
}

// Start runs Init on its own goroutine. The returned channel is closed
// once the fetch has settled or the dashboard is closed.
func (d *Dashboard) Start(ctx context.Context) <-chan struct{} {
	go func() {
		if err := d.Init(ctx); err != nil {
			d.log.Debug("dashboard start skipped", zap.Error(err))
		}
	}()
	return d.settled
}

// Done is closed once the fetch has settled or the dashboard is closed.
func (d *Dashboard) Done() <-chan struct{} {
	return d.settled
}

// Close tears the dashboard down and cancels an in-flight fetch. A fetch
// completing afterwards is discarded.
func (d *Dashboard) Close() {
	d.mu.Lock()
	d.closed = true
	started := d.started
	d.mu.Unlock()

	d.release()
	if !started {
		d.markSettled()
	}
}

func (d *Dashboard) release() {
	d.mu.Lock()
	cancel := d.cancel
	d.cancel = nil
	d.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// Select changes the selected property without fetching.
func (d *Dashboard) Select(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return ErrClosed
	}
	if d.state.Branch() != BranchPopulated {
		return ErrNotReady
	}
	for _, p := range d.state.Properties {
		if p.ID == id {
			d.state.Selected = id
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownProperty, id)
}

// State returns a copy of the current state.
func (d *Dashboard) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()

	s := d.state
	if d.state.Properties != nil {
		s.Properties = make([]Property, len(d.state.Properties))
		copy(s.Properties, d.state.Properties)
	}
	return s
}

func (d *Dashboard) settle(props []Property, err error) {
	defer d.markSettled()

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		d.log.Debug("discarding property fetch completed after close",
			zap.Int("count", len(props)), zap.Error(err))
		return
	}
	defer func() { d.state.Loading = false }()

	if err != nil {
		d.log.Warn("load properties failed", zap.Error(err))
		d.state.Err = ErrorMessage
		d.state.Properties = []Property{}
		return
	}

	d.log.Debug("properties loaded", zap.Int("count", len(props)))
	if props == nil {
		props = []Property{}
	}
	d.state.Properties = props
	if len(props) > 0 {
		d.state.Selected = props[0].ID
	}
}

func (d *Dashboard) markSettled() {
	d.settleOnce.Do(func() { close(d.settled) })
}
