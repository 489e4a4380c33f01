package syncview

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ewasteportal/ewastecli/internal/client/api"
	"github.com/ewasteportal/ewastecli/internal/client/notify"
	"github.com/ewasteportal/ewastecli/internal/logging"
)

type viewState struct {
	Items []string
	Count int
}

func newDashboard(load LoadFunc[viewState]) (*Dashboard[viewState], *notify.Channel) {
	ch := notify.New(notify.DefaultTTL)
	return New(load, ch, logging.Discard(), "Failed to load dashboard"), ch
}

func lastMessage(t *testing.T, ch *notify.Channel) notify.Notification {
	t.Helper()
	items := ch.Active()
	require.NotEmpty(t, items)
	return items[len(items)-1]
}

func TestLoadCommitsSnapshot(t *testing.T) {
	d, _ := newDashboard(func(ctx context.Context) (viewState, error) {
		return viewState{Items: []string{"a", "b"}, Count: 2}, nil
	})

	_, ok := d.Snapshot()
	require.False(t, ok)

	require.NoError(t, d.Load(context.Background()))

	snap, ok := d.Snapshot()
	require.True(t, ok)
	require.Equal(t, 2, snap.Count)
}

func TestFailedLoadRetainsPriorSnapshot(t *testing.T) {
	fail := false
	d, ch := newDashboard(func(ctx context.Context) (viewState, error) {
		if fail {
			return viewState{}, &api.Error{Status: http.StatusInternalServerError, Detail: "boom"}
		}
		return viewState{Count: 1}, nil
	})

	ctx := context.Background()
	require.NoError(t, d.Load(ctx))

	fail = true
	require.Error(t, d.Load(ctx))

	snap, ok := d.Snapshot()
	require.True(t, ok)
	require.Equal(t, 1, snap.Count)

	n := lastMessage(t, ch)
	require.Equal(t, notify.SeverityError, n.Severity)
	require.Equal(t, "boom", n.Message)
}

func TestFailedLoadUsesFallbackMessage(t *testing.T) {
	d, ch := newDashboard(func(ctx context.Context) (viewState, error) {
		return viewState{}, errors.New("connection reset")
	})

	require.Error(t, d.Load(context.Background()))
	require.Equal(t, "Failed to load dashboard", lastMessage(t, ch).Message)
}

func TestMutateReloadsOnSuccess(t *testing.T) {
	count := 0
	d, ch := newDashboard(func(ctx context.Context) (viewState, error) {
		count++
		return viewState{Count: count}, nil
	})

	ctx := context.Background()
	require.NoError(t, d.Load(ctx))

	mutated := false
	err := d.Mutate(ctx, func(ctx context.Context) error {
		mutated = true
		return nil
	}, "Status updated", "Failed to update status")
	require.NoError(t, err)
	require.True(t, mutated)

	// the snapshot reflects the post-mutation reload
	snap, _ := d.Snapshot()
	require.Equal(t, 2, snap.Count)

	require.Equal(t, notify.SeveritySuccess, lastMessage(t, ch).Severity)
}

func TestMutateFailureSkipsReloadAndKeepsSnapshot(t *testing.T) {
	loads := 0
	d, ch := newDashboard(func(ctx context.Context) (viewState, error) {
		loads++
		return viewState{Count: loads}, nil
	})

	ctx := context.Background()
	require.NoError(t, d.Load(ctx))
	require.Equal(t, 1, loads)

	err := d.Mutate(ctx, func(ctx context.Context) error {
		return &api.Error{Status: http.StatusForbidden, Detail: "Item not assigned to your center"}
	}, "Status updated", "Failed to update status")
	require.Error(t, err)

	require.Equal(t, 1, loads) // no reload happened
	snap, _ := d.Snapshot()
	require.Equal(t, 1, snap.Count)

	n := lastMessage(t, ch)
	require.Equal(t, notify.SeverityError, n.Severity)
	require.Equal(t, "Item not assigned to your center", n.Message)
}

func TestMutateFailureFallbackMessage(t *testing.T) {
	d, ch := newDashboard(func(ctx context.Context) (viewState, error) {
		return viewState{}, nil
	})

	err := d.Mutate(context.Background(), func(ctx context.Context) error {
		return errors.New("dial tcp: refused")
	}, "ok", "Failed to update status")
	require.Error(t, err)
	require.Equal(t, "Failed to update status", lastMessage(t, ch).Message)
}

func TestInvalidateDiscardsInFlightLoad(t *testing.T) {
	started := make(chan struct{})
	proceed := make(chan struct{})

	d, _ := newDashboard(func(ctx context.Context) (viewState, error) {
		close(started)
		<-proceed
		return viewState{Count: 99}, nil
	})

	done := make(chan error, 1)
	go func() { done <- d.Load(context.Background()) }()

	<-started
	d.Invalidate() // user navigated away
	close(proceed)
	require.NoError(t, <-done)

	// the stale result was not applied
	_, ok := d.Snapshot()
	require.False(t, ok)
}
