// Package dashboards implements the three role dashboards on top of the
// synchronization protocol: each owns one view snapshot, loads it in a single
// atomic batch, and reloads in full after every successful mutation.
package dashboards

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/ewasteportal/ewastecli/internal/client/api"
	"github.com/ewasteportal/ewastecli/internal/client/models"
	"github.com/ewasteportal/ewastecli/internal/client/notify"
	"github.com/ewasteportal/ewastecli/internal/client/syncview"
	"github.com/ewasteportal/ewastecli/internal/logging"
)

// SubmitterSnapshot is the server-derived state behind the submitter
// dashboard, replaced wholesale on every load.
type SubmitterSnapshot struct {
	Centers []models.Center
	History []models.Report
	Stats   models.UserStats
}

// Submitter drives the submitter dashboard: report submission, history and
// personal stats.
type Submitter struct {
	api      api.Client
	notifier *notify.Channel
	view     *syncview.Dashboard[SubmitterSnapshot]
}

func NewSubmitter(client api.Client, notifier *notify.Channel, log logging.Logger) *Submitter {
	s := &Submitter{api: client, notifier: notifier}
	s.view = syncview.New(s.loadAll, notifier, log.With("dashboard", "submitter"), "Failed to load dashboard")
	return s
}

// loadAll issues the three reads concurrently; the snapshot is only committed
// when all of them succeeded.
func (s *Submitter) loadAll(ctx context.Context) (SubmitterSnapshot, error) {
	var snap SubmitterSnapshot
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		centers, err := s.api.ListCenters(ctx)
		snap.Centers = centers
		return err
	})
	g.Go(func() error {
		history, err := s.api.FetchHistory(ctx)
		snap.History = history
		return err
	})
	g.Go(func() error {
		stats, err := s.api.FetchUserStats(ctx)
		snap.Stats = stats
		return err
	})
	if err := g.Wait(); err != nil {
		return SubmitterSnapshot{}, err
	}
	return snap, nil
}

func (s *Submitter) Load(ctx context.Context) error {
	return s.view.Load(ctx)
}

func (s *Submitter) Snapshot() (SubmitterSnapshot, bool) {
	return s.view.Snapshot()
}

// Leave discards results of loads still in flight after navigation away.
func (s *Submitter) Leave() {
	s.view.Invalidate()
}

// SubmitReport validates the submission client-side, uploads it and reloads
// the dashboard. With no image selected the action is blocked before any
// network call.
func (s *Submitter) SubmitReport(ctx context.Context, report models.NewReport) error {
	if err := report.Validate(); err != nil {
		s.notifier.Error("Please select an image")
		return err
	}

	var created models.Report
	return s.view.MutateFunc(ctx,
		func(ctx context.Context) error {
			var err error
			created, err = s.api.CreateReport(ctx, report)
			return err
		},
		func() string {
			confidence := int(math.Round(created.Confidence * 100))
			return fmt.Sprintf("Uploaded: %s (%d%% confidence)", created.Category, confidence)
		},
		"Upload failed")
}

// FilterHistory projects the snapshot's history by search text and status.
func (s SubmitterSnapshot) FilterHistory(query, status string) []models.Report {
	return FilterReports(s.History, query, status)
}
