// Package syncview implements the load → mutate → reload protocol shared by
// every dashboard. The displayed state is never a locally-guessed projection
// of server state: a snapshot is committed only when every read succeeded,
// and a mutation is followed by a full reload before the view is considered
// consistent again.
package syncview

import (
	"context"
	"sync"

	"github.com/ewasteportal/ewastecli/internal/client/api"
	"github.com/ewasteportal/ewastecli/internal/client/notify"
	"github.com/ewasteportal/ewastecli/internal/logging"
)

// LoadFunc assembles a complete snapshot from the server. Implementations may
// fan the individual reads out concurrently; returning an error means no part
// of the result is usable.
type LoadFunc[S any] func(ctx context.Context) (S, error)

// Dashboard owns one view snapshot and drives the protocol for it. Snapshots
// are replaced wholesale, never patched field by field.
type Dashboard[S any] struct {
	load        LoadFunc[S]
	notifier    *notify.Channel
	log         logging.Logger
	loadFailMsg string

	mu       sync.Mutex
	gen      uint64
	snapshot S
	loaded   bool
}

func New[S any](load LoadFunc[S], notifier *notify.Channel, log logging.Logger, loadFailMsg string) *Dashboard[S] {
	return &Dashboard[S]{
		load:        load,
		notifier:    notifier,
		log:         log,
		loadFailMsg: loadFailMsg,
	}
}

// Snapshot returns the current snapshot and whether one has been committed.
func (d *Dashboard[S]) Snapshot() (S, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.snapshot, d.loaded
}

// Invalidate marks the view as navigated-away-from: results of loads already
// in flight are discarded instead of committed.
func (d *Dashboard[S]) Invalidate() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.gen++
	d.loaded = false
}

// Load assembles a fresh snapshot and commits it atomically. On any read
// failure the previous snapshot is retained unchanged and a failure
// notification is raised; partial loads are never displayed.
func (d *Dashboard[S]) Load(ctx context.Context) error {
	d.mu.Lock()
	gen := d.gen
	d.mu.Unlock()

	snap, err := d.load(ctx)
	if err != nil {
		d.log.Warn(ctx, "view load failed", "error", err)
		d.notifier.Error(api.Detail(err, d.loadFailMsg))
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.gen != gen {
		// the view was invalidated while the reads were in flight
		d.log.Debug(ctx, "discarding stale view load")
		return nil
	}
	d.snapshot = snap
	d.loaded = true
	return nil
}

// Mutate runs exactly one write operation. On success it raises a success
// notification and re-runs Load in full; on failure it keeps the prior
// snapshot and raises a failure notification carrying the server detail, or
// failMsg when none is present.
func (d *Dashboard[S]) Mutate(ctx context.Context, op func(ctx context.Context) error, successMsg, failMsg string) error {
	return d.MutateFunc(ctx, op, func() string { return successMsg }, failMsg)
}

// MutateFunc is Mutate with a deferred success message, for outcomes whose
// wording depends on the operation's result.
func (d *Dashboard[S]) MutateFunc(ctx context.Context, op func(ctx context.Context) error, successMsg func() string, failMsg string) error {
	if err := op(ctx); err != nil {
		d.log.Warn(ctx, "mutation failed", "error", err)
		d.notifier.Error(api.Detail(err, failMsg))
		return err
	}

	d.notifier.Success(successMsg())
	return d.Load(ctx)
}
