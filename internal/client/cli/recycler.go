package cli

import (
	"context"
	"fmt"

	"github.com/ewasteportal/ewastecli/internal/client/models"
)

func (a *App) recyclerHome(ctx context.Context) error {
	if err := a.recycler.Load(ctx); err != nil {
		return err
	}
	snap, ok := a.recycler.Snapshot()
	if !ok {
		return nil
	}

	t := snap.Tallies()
	printlnFn(a.styles.Header.Render(fmt.Sprintf(
		"Assigned: %d | Pending: %d | Received: %d | Recycled: %d",
		t.Total, t.Pending, t.Received, t.Recycled)))

	printlnFn(renderTable(a.styles, "Your centers",
		[]string{"ID", "Name", "Status", "Rating", "Recycled"},
		centerRows(snap.Claimed)))
	printlnFn(renderTable(a.styles, "Claimable centers",
		[]string{"ID", "Name", "Status", "Rating", "Recycled"},
		centerRows(snap.Available)))
	printlnFn(renderTable(a.styles, "Assigned items", reportHeaders, reportRows(snap.Assigned)))
	return nil
}

// Assigned lists the items assigned to the caller's claimed centers.
func (a *App) Assigned(ctx context.Context) error {
	if err := a.recycler.Load(ctx); err != nil {
		return err
	}
	snap, ok := a.recycler.Snapshot()
	if !ok {
		return nil
	}
	printlnFn(renderTable(a.styles, "Assigned items", reportHeaders, reportRows(snap.Assigned)))
	return nil
}

// Receive marks an assigned item as physically received at the center.
func (a *App) Receive(ctx context.Context, args []string) error {
	id, ok := parseID(args, "Usage: receive <id>")
	if !ok {
		return nil
	}
	return a.recycler.UpdateStatus(ctx, id, models.ReportStatusReceived)
}

// Recycle marks a received item as recycled.
func (a *App) Recycle(ctx context.Context, args []string) error {
	id, ok := parseID(args, "Usage: recycle <id>")
	if !ok {
		return nil
	}
	return a.recycler.UpdateStatus(ctx, id, models.ReportStatusRecycled)
}

// Claim takes over an unclaimed, approved center.
func (a *App) Claim(ctx context.Context, args []string) error {
	id, ok := parseID(args, "Usage: claim <id>")
	if !ok {
		return nil
	}
	return a.recycler.Claim(ctx, id)
}
