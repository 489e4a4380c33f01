package dashboards

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ewasteportal/ewastecli/internal/client/api"
	"github.com/ewasteportal/ewastecli/internal/client/models"
	"github.com/ewasteportal/ewastecli/internal/client/notify"
	"github.com/ewasteportal/ewastecli/internal/client/syncview"
	"github.com/ewasteportal/ewastecli/internal/logging"
)

// AdminSnapshot is the server-derived state behind the admin dashboard.
type AdminSnapshot struct {
	Centers   []models.Center
	Analytics models.Analytics
}

// FilterCenters projects the snapshot's centers by approval state.
func (s AdminSnapshot) FilterCenters(filter string) []models.Center {
	return FilterCenters(s.Centers, filter)
}

// Admin drives the admin dashboard: center approvals and the analytics
// overview.
type Admin struct {
	api  api.Client
	view *syncview.Dashboard[AdminSnapshot]
}

func NewAdmin(client api.Client, notifier *notify.Channel, log logging.Logger) *Admin {
	a := &Admin{api: client}
	a.view = syncview.New(a.loadAll, notifier, log.With("dashboard", "admin"), "Failed to load data")
	return a
}

func (a *Admin) loadAll(ctx context.Context) (AdminSnapshot, error) {
	var snap AdminSnapshot
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		centers, err := a.api.ListCenters(ctx)
		snap.Centers = centers
		return err
	})
	g.Go(func() error {
		overview, err := a.api.FetchAnalytics(ctx)
		snap.Analytics = overview
		return err
	})
	if err := g.Wait(); err != nil {
		return AdminSnapshot{}, err
	}
	return snap, nil
}

func (a *Admin) Load(ctx context.Context) error {
	return a.view.Load(ctx)
}

func (a *Admin) Snapshot() (AdminSnapshot, bool) {
	return a.view.Snapshot()
}

func (a *Admin) Leave() {
	a.view.Invalidate()
}

// Approve approves a pending center, then reloads so the approval is only
// shown once the server confirms it.
func (a *Admin) Approve(ctx context.Context, centerID int64) error {
	return a.view.Mutate(ctx,
		func(ctx context.Context) error {
			return a.api.ApproveCenter(ctx, centerID)
		},
		"Center approved successfully!",
		"Failed to approve center")
}
