package dashboards

import (
	"strings"

	"github.com/ewasteportal/ewastecli/internal/client/models"
)

// FilterAll disables a status or approval filter.
const FilterAll = "all"

// FilterReports projects reports by search text and status. It is pure and
// synchronous: it never touches the server, only the snapshot it is given.
// The query matches category or suggestion, case-insensitively.
func FilterReports(reports []models.Report, query, status string) []models.Report {
	q := strings.ToLower(query)
	out := make([]models.Report, 0, len(reports))
	for _, r := range reports {
		matchesSearch := q == "" ||
			strings.Contains(strings.ToLower(r.Category), q) ||
			strings.Contains(strings.ToLower(r.Suggestion), q)
		matchesStatus := status == "" || status == FilterAll || r.Status == status
		if matchesSearch && matchesStatus {
			out = append(out, r)
		}
	}
	return out
}

// Approval filter values for FilterCenters.
const (
	FilterApproved = "approved"
	FilterPending  = "pending"
)

// FilterCenters projects centers by approval state: all, approved or pending.
func FilterCenters(centers []models.Center, filter string) []models.Center {
	out := make([]models.Center, 0, len(centers))
	for _, c := range centers {
		switch filter {
		case FilterApproved:
			if !c.Approved {
				continue
			}
		case FilterPending:
			if c.Approved {
				continue
			}
		}
		out = append(out, c)
	}
	return out
}
