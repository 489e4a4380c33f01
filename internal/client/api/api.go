// Package api is the typed HTTP gateway to the E-Waste Portal backend.
//
// Every outgoing request carries the current credential as a bearer
// authorization header when one is present. Requests are never retried and
// status codes are passed through untouched; interpreting them is the
// caller's responsibility.
package api

import (
	"context"

	"github.com/ewasteportal/ewastecli/internal/client/models"
)

// Client is the operation surface consumed by the session manager and the
// dashboards. Tests substitute fakes for it.
type Client interface {
	// Authenticate exchanges credentials for a bearer token.
	Authenticate(ctx context.Context, email, password string) (models.Token, error)

	// Register creates an account, optionally with center metadata.
	Register(ctx context.Context, reg models.Registration) (models.Identity, error)

	// FetchIdentity resolves the current identity from the credential.
	FetchIdentity(ctx context.Context) (models.Identity, error)

	// FetchUserStats returns the submitter's point/CO2/report totals.
	FetchUserStats(ctx context.Context) (models.UserStats, error)

	// ListCenters returns all recycling centers with approval/claim state.
	ListCenters(ctx context.Context) ([]models.Center, error)

	// ClaimCenter claims an unclaimed, approved center for the caller.
	ClaimCenter(ctx context.Context, centerID int64) (models.Center, error)

	// FetchAssigned returns items assigned to the caller's claimed centers.
	FetchAssigned(ctx context.Context) ([]models.Report, error)

	// UpdateItemStatus transitions an assigned item's status.
	UpdateItemStatus(ctx context.Context, reportID int64, status string) error

	// CreateReport submits an image plus optional target center.
	CreateReport(ctx context.Context, report models.NewReport) (models.Report, error)

	// FetchHistory returns the submitter's own report history.
	FetchHistory(ctx context.Context) ([]models.Report, error)

	// ApproveCenter approves a pending center (admin only).
	ApproveCenter(ctx context.Context, centerID int64) error

	// FetchAnalytics returns the aggregate analytics overview (admin only).
	FetchAnalytics(ctx context.Context) (models.Analytics, error)
}
