package dashboards

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ewasteportal/ewastecli/internal/client/api"
	"github.com/ewasteportal/ewastecli/internal/client/models"
	"github.com/ewasteportal/ewastecli/internal/client/notify"
	"github.com/ewasteportal/ewastecli/internal/client/syncview"
	"github.com/ewasteportal/ewastecli/internal/logging"
)

// RecyclerSnapshot is the server-derived state behind the recycler dashboard.
// Claimed and Available are derived from Centers and Me during load; they are
// projections of server state, not local guesses.
type RecyclerSnapshot struct {
	Me        models.Identity
	Centers   []models.Center
	Claimed   []models.Center
	Available []models.Center
	Assigned  []models.Report
}

// Tallies are the per-status counts shown in the dashboard header.
type Tallies struct {
	Total    int
	Pending  int
	Received int
	Recycled int
}

// Tallies counts the assigned items by status.
func (s RecyclerSnapshot) Tallies() Tallies {
	t := Tallies{Total: len(s.Assigned)}
	for _, r := range s.Assigned {
		switch r.Status {
		case models.ReportStatusAssigned:
			t.Pending++
		case models.ReportStatusReceived:
			t.Received++
		case models.ReportStatusRecycled:
			t.Recycled++
		}
	}
	return t
}

// FilterAssigned projects the assigned items by search text and status.
func (s RecyclerSnapshot) FilterAssigned(query, status string) []models.Report {
	return FilterReports(s.Assigned, query, status)
}

// Recycler drives the recycler dashboard: assigned items, status transitions
// and center claims.
type Recycler struct {
	api  api.Client
	view *syncview.Dashboard[RecyclerSnapshot]
}

func NewRecycler(client api.Client, notifier *notify.Channel, log logging.Logger) *Recycler {
	r := &Recycler{api: client}
	r.view = syncview.New(r.loadAll, notifier, log.With("dashboard", "recycler"), "Failed to load dashboard")
	return r
}

func (r *Recycler) loadAll(ctx context.Context) (RecyclerSnapshot, error) {
	var snap RecyclerSnapshot
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		me, err := r.api.FetchIdentity(ctx)
		snap.Me = me
		return err
	})
	g.Go(func() error {
		centers, err := r.api.ListCenters(ctx)
		snap.Centers = centers
		return err
	})
	g.Go(func() error {
		assigned, err := r.api.FetchAssigned(ctx)
		snap.Assigned = assigned
		return err
	})
	if err := g.Wait(); err != nil {
		return RecyclerSnapshot{}, err
	}

	for _, c := range snap.Centers {
		if c.ManagedBy(snap.Me.ID) {
			snap.Claimed = append(snap.Claimed, c)
		}
		if c.Approved && (c.ManagerUserID == nil || c.ManagedBy(snap.Me.ID)) {
			snap.Available = append(snap.Available, c)
		}
	}
	return snap, nil
}

func (r *Recycler) Load(ctx context.Context) error {
	return r.view.Load(ctx)
}

func (r *Recycler) Snapshot() (RecyclerSnapshot, bool) {
	return r.view.Snapshot()
}

func (r *Recycler) Leave() {
	r.view.Invalidate()
}

// UpdateStatus transitions one assigned item, then reloads so that the
// snapshot reflects the server-confirmed state. A rejection keeps the old
// snapshot and surfaces the server detail verbatim.
func (r *Recycler) UpdateStatus(ctx context.Context, reportID int64, status string) error {
	return r.view.Mutate(ctx,
		func(ctx context.Context) error {
			return r.api.UpdateItemStatus(ctx, reportID, status)
		},
		fmt.Sprintf("Status updated to %s", status),
		"Failed to update status")
}

// Claim claims a center for the caller. The claim may race other recyclers;
// success is only believed after the server confirms it, and a conflict is
// reported like any other rejection.
func (r *Recycler) Claim(ctx context.Context, centerID int64) error {
	return r.view.Mutate(ctx,
		func(ctx context.Context) error {
			_, err := r.api.ClaimCenter(ctx, centerID)
			return err
		},
		"Center claimed successfully!",
		"Unable to claim center")
}
