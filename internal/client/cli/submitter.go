package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ewasteportal/ewastecli/internal/client/dashboards"
	"github.com/ewasteportal/ewastecli/internal/client/models"
	"github.com/ewasteportal/ewastecli/internal/filex"
)

func (a *App) submitterHome(ctx context.Context) error {
	if err := a.submitter.Load(ctx); err != nil {
		return err
	}
	snap, ok := a.submitter.Snapshot()
	if !ok {
		return nil
	}

	printlnFn(a.styles.Header.Render(fmt.Sprintf(
		"Points: %d | Reports: %d | Recycled: %d | CO2 saved: %.1f kg",
		snap.Stats.Points, snap.Stats.TotalReports, snap.Stats.RecycledCount, snap.Stats.CO2SavedKg)))

	approved := dashboards.FilterCenters(snap.Centers, dashboards.FilterApproved)
	printlnFn(renderTable(a.styles, "Drop-off centers",
		[]string{"ID", "Name", "Status", "Rating", "Recycled"},
		centerRows(approved)))

	recent := snap.History
	if len(recent) > 5 {
		recent = recent[:5]
	}
	printlnFn(renderTable(a.styles, "Recent reports", reportHeaders, reportRows(recent)))
	return nil
}

// Submit reads an image from disk and uploads it as a new e-waste report,
// optionally targeting a specific center.
func (a *App) Submit(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: submit <image> [center-id]")
		return nil
	}

	name, data, err := filex.ReadImage(args[0])
	if err != nil {
		a.notifier.Error(err.Error())
		return err
	}

	report := models.NewReport{FileName: name, Data: data}
	if len(args) > 1 {
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			printlnFn("Usage: submit <image> [center-id]")
			return nil
		}
		report.CenterID = &id
	}

	return a.submitter.SubmitReport(ctx, report)
}

// History lists the caller's submitted reports.
func (a *App) History(ctx context.Context) error {
	if err := a.submitter.Load(ctx); err != nil {
		return err
	}
	snap, ok := a.submitter.Snapshot()
	if !ok {
		return nil
	}
	printlnFn(renderTable(a.styles, "Report history", reportHeaders, reportRows(snap.History)))
	return nil
}

// Stats shows the caller's point and impact totals.
func (a *App) Stats(ctx context.Context) error {
	if err := a.submitter.Load(ctx); err != nil {
		return err
	}
	snap, ok := a.submitter.Snapshot()
	if !ok {
		return nil
	}
	printlnFn(renderTable(a.styles, "Your impact",
		[]string{"Points", "Reports", "Recycled", "CO2 saved"},
		[][]string{{
			strconv.FormatInt(snap.Stats.Points, 10),
			strconv.FormatInt(snap.Stats.TotalReports, 10),
			strconv.FormatInt(snap.Stats.RecycledCount, 10),
			fmt.Sprintf("%.1f kg", snap.Stats.CO2SavedKg),
		}}))
	return nil
}
