package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ewasteportal/ewastecli/internal/client/dashboards"
)

func (a *App) adminHome(ctx context.Context) error {
	if err := a.admin.Load(ctx); err != nil {
		return err
	}
	snap, ok := a.admin.Snapshot()
	if !ok {
		return nil
	}

	an := snap.Analytics
	printlnFn(a.styles.Header.Render(fmt.Sprintf(
		"Users: %d | Centers: %d | Reports: %d | Recycled: %d | CO2 saved: %.1f kg",
		an.TotalUsers, an.TotalCenters, an.TotalReports, an.TotalRecycled, an.CO2SavedKg)))

	pending := snap.FilterCenters(dashboards.FilterPending)
	printlnFn(renderTable(a.styles, "Centers awaiting approval",
		[]string{"ID", "Name", "Status", "Rating", "Recycled"},
		centerRows(pending)))
	return nil
}

// Approve approves a pending recycling center.
func (a *App) Approve(ctx context.Context, args []string) error {
	id, ok := parseID(args, "Usage: approve <id>")
	if !ok {
		return nil
	}
	return a.admin.Approve(ctx, id)
}

// Analytics shows the platform-wide aggregates.
func (a *App) Analytics(ctx context.Context) error {
	if err := a.admin.Load(ctx); err != nil {
		return err
	}
	snap, ok := a.admin.Snapshot()
	if !ok {
		return nil
	}
	an := snap.Analytics

	byCategory := make([][]string, 0, len(an.ByCategory))
	for category, count := range an.ByCategory {
		byCategory = append(byCategory, []string{category, strconv.FormatInt(count, 10)})
	}
	printlnFn(renderTable(a.styles, "Reports by category",
		[]string{"Category", "Count"}, byCategory))

	contributors := make([][]string, 0, len(an.TopContributors))
	for _, c := range an.TopContributors {
		contributors = append(contributors, []string{c.Name, strconv.FormatInt(c.Points, 10)})
	}
	printlnFn(renderTable(a.styles, "Top contributors",
		[]string{"Name", "Points"}, contributors))

	performance := make([][]string, 0, len(an.CenterPerformance))
	for _, p := range an.CenterPerformance {
		performance = append(performance, []string{p.Name, strconv.FormatInt(p.Recycled, 10)})
	}
	printlnFn(renderTable(a.styles, "Center performance",
		[]string{"Center", "Recycled"}, performance))

	printlnFn(a.styles.Header.Render(fmt.Sprintf("Growth rate: %.1f%%", an.GrowthRate)))
	return nil
}
