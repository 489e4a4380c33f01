package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/ewasteportal/ewastecli/internal/client/api"
	"github.com/ewasteportal/ewastecli/internal/client/guard"
	"github.com/ewasteportal/ewastecli/internal/client/models"
)

// Home renders the role's home dashboard, or the welcome text for anonymous
// sessions.
func (a *App) Home(ctx context.Context) error {
	switch guard.HomeScreen(a.snapshot()) {
	case guard.ScreenSubmitter:
		return a.submitterHome(ctx)
	case guard.ScreenRecycler:
		return a.recyclerHome(ctx)
	case guard.ScreenAdmin:
		return a.adminHome(ctx)
	}
	printlnFn("Welcome to the E-Waste Portal. Log in or register to get started.")
	return nil
}

// Centers lists all recycling centers. Available in every session state.
func (a *App) Centers(ctx context.Context) error {
	centers, err := a.api.ListCenters(ctx)
	if err != nil {
		a.notifier.Error(api.Detail(err, "Failed to load centers"))
		return err
	}
	printlnFn(renderTable(a.styles, "Recycling centers",
		[]string{"ID", "Name", "Status", "Rating", "Recycled"},
		centerRows(centers)))
	return nil
}

// parseID extracts a numeric id from the first argument, printing usage help
// when it is missing or malformed.
func parseID(args []string, usage string) (int64, bool) {
	if len(args) == 0 {
		printlnFn(usage)
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		printlnFn(usage)
		return 0, false
	}
	return id, true
}

func centerRows(centers []models.Center) [][]string {
	rows := make([][]string, 0, len(centers))
	for _, c := range centers {
		status := "pending"
		if c.Approved {
			status = "approved"
		}
		rows = append(rows, []string{
			strconv.FormatInt(c.ID, 10),
			c.Name,
			status,
			fmt.Sprintf("%.1f", c.Rating),
			strconv.FormatInt(c.TotalRecycled, 10),
		})
	}
	return rows
}

func reportRows(reports []models.Report) [][]string {
	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		center := "-"
		if r.Recycler != nil {
			center = r.Recycler.Name
		}
		rows = append(rows, []string{
			strconv.FormatInt(r.ID, 10),
			r.Category,
			fmt.Sprintf("%d%%", int(r.Confidence*100)),
			r.Status,
			center,
			fmt.Sprintf("%.1f kg", r.CO2Saved),
			r.CreatedAt.Format(time.DateOnly),
		})
	}
	return rows
}

var reportHeaders = []string{"ID", "Category", "Confidence", "Status", "Center", "CO2 saved", "Date"}
