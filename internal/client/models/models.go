// Package models defines the domain types exchanged with the E-Waste Portal
// backend. All of them are plain data: the server is the single source of
// truth and values are replaced wholesale on every reload, never mutated in
// place.
package models

import (
	"time"
)

// Token is the response of a successful authentication.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Identity is the resolved user record for the current credential. It is only
// trusted for the lifetime of the request that produced it; staleness is
// resolved by refetching.
type Identity struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	Role      Role      `json:"role"`
	Points    int64     `json:"points"`
	CreatedAt time.Time `json:"created_at"`
}

// DisplayName mirrors the portal header: name when present, email otherwise.
func (i Identity) DisplayName() string {
	if i.Name != "" {
		return i.Name
	}
	return i.Email
}

// Center is a recycling center with its approval and claim state.
type Center struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	Description      string  `json:"description,omitempty"`
	ContactInfo      string  `json:"contact_info,omitempty"`
	Approved         bool    `json:"approved"`
	PerformanceScore float64 `json:"performance_score"`
	ManagerUserID    *int64  `json:"manager_user_id,omitempty"`
	TotalRecycled    int64   `json:"total_recycled"`
	TotalCO2Saved    float64 `json:"total_co2_saved"`
	Rating           float64 `json:"rating"`
}

// ManagedBy reports whether the center is claimed by the given user.
func (c Center) ManagedBy(userID int64) bool {
	return c.ManagerUserID != nil && *c.ManagerUserID == userID
}

// ReportStatus values as used by the backend.
const (
	ReportStatusPending  = "pending"
	ReportStatusAssigned = "assigned"
	ReportStatusReceived = "received"
	ReportStatusRecycled = "recycled"
)

// Report is one submitted e-waste item with its AI categorization and
// lifecycle status.
type Report struct {
	ID            int64     `json:"id"`
	ImageURL      string    `json:"image_url"`
	Category      string    `json:"category"`
	Confidence    float64   `json:"confidence"`
	Suggestion    string    `json:"suggestion,omitempty"`
	Recycler      *Center   `json:"recycler,omitempty"`
	Status        string    `json:"status"`
	CO2Saved      float64   `json:"co2_saved"`
	PointsAwarded int64     `json:"points_awarded"`
	CreatedAt     time.Time `json:"created_at"`
}

// UserStats holds a submitter's point/CO2/report totals.
type UserStats struct {
	Points        int64   `json:"points"`
	TotalReports  int64   `json:"total_reports"`
	RecycledCount int64   `json:"recycled_count"`
	CO2SavedKg    float64 `json:"co2_saved_kg"`
}

// Contributor is one entry of the analytics leaderboard.
type Contributor struct {
	Name   string `json:"name"`
	Points int64  `json:"points"`
}

// CenterPerformance is the recycled-count aggregate for one center.
type CenterPerformance struct {
	Name     string `json:"name"`
	Recycled int64  `json:"recycled"`
}

// Analytics is the aggregate category/performance/contributor overview.
type Analytics struct {
	ByCategory        map[string]int64    `json:"by_category"`
	TopContributors   []Contributor       `json:"top_contributors"`
	CenterPerformance []CenterPerformance `json:"center_performance"`
	CO2SavedKg        float64             `json:"co2_saved_kg"`
	TotalUsers        int64               `json:"total_users"`
	TotalCenters      int64               `json:"total_centers"`
	TotalReports      int64               `json:"total_reports"`
	TotalRecycled     int64               `json:"total_recycled"`
	GrowthRate        float64             `json:"growth_rate"`
	ImpactTimeline    []map[string]any    `json:"impact_timeline,omitempty"`
}
