package dashboards

import (
	"context"

	"github.com/ewasteportal/ewastecli/internal/client/models"
)

// fakeAPI implements api.Client with overridable behavior per operation.
// Unset operations return zero values.
type fakeAPI struct {
	FetchIdentityFn    func(ctx context.Context) (models.Identity, error)
	FetchUserStatsFn   func(ctx context.Context) (models.UserStats, error)
	ListCentersFn      func(ctx context.Context) ([]models.Center, error)
	ClaimCenterFn      func(ctx context.Context, centerID int64) (models.Center, error)
	FetchAssignedFn    func(ctx context.Context) ([]models.Report, error)
	UpdateItemStatusFn func(ctx context.Context, reportID int64, status string) error
	CreateReportFn     func(ctx context.Context, report models.NewReport) (models.Report, error)
	FetchHistoryFn     func(ctx context.Context) ([]models.Report, error)
	ApproveCenterFn    func(ctx context.Context, centerID int64) error
	FetchAnalyticsFn   func(ctx context.Context) (models.Analytics, error)

	CreateReportCalls int
}

func (f *fakeAPI) Authenticate(ctx context.Context, email, password string) (models.Token, error) {
	return models.Token{}, nil
}

func (f *fakeAPI) Register(ctx context.Context, reg models.Registration) (models.Identity, error) {
	return models.Identity{}, nil
}

func (f *fakeAPI) FetchIdentity(ctx context.Context) (models.Identity, error) {
	if f.FetchIdentityFn != nil {
		return f.FetchIdentityFn(ctx)
	}
	return models.Identity{}, nil
}

func (f *fakeAPI) FetchUserStats(ctx context.Context) (models.UserStats, error) {
	if f.FetchUserStatsFn != nil {
		return f.FetchUserStatsFn(ctx)
	}
	return models.UserStats{}, nil
}

func (f *fakeAPI) ListCenters(ctx context.Context) ([]models.Center, error) {
	if f.ListCentersFn != nil {
		return f.ListCentersFn(ctx)
	}
	return nil, nil
}

func (f *fakeAPI) ClaimCenter(ctx context.Context, centerID int64) (models.Center, error) {
	if f.ClaimCenterFn != nil {
		return f.ClaimCenterFn(ctx, centerID)
	}
	return models.Center{}, nil
}

func (f *fakeAPI) FetchAssigned(ctx context.Context) ([]models.Report, error) {
	if f.FetchAssignedFn != nil {
		return f.FetchAssignedFn(ctx)
	}
	return nil, nil
}

func (f *fakeAPI) UpdateItemStatus(ctx context.Context, reportID int64, status string) error {
	if f.UpdateItemStatusFn != nil {
		return f.UpdateItemStatusFn(ctx, reportID, status)
	}
	return nil
}

func (f *fakeAPI) CreateReport(ctx context.Context, report models.NewReport) (models.Report, error) {
	f.CreateReportCalls++
	if f.CreateReportFn != nil {
		return f.CreateReportFn(ctx, report)
	}
	return models.Report{}, nil
}

func (f *fakeAPI) FetchHistory(ctx context.Context) ([]models.Report, error) {
	if f.FetchHistoryFn != nil {
		return f.FetchHistoryFn(ctx)
	}
	return nil, nil
}

func (f *fakeAPI) ApproveCenter(ctx context.Context, centerID int64) error {
	if f.ApproveCenterFn != nil {
		return f.ApproveCenterFn(ctx, centerID)
	}
	return nil
}

func (f *fakeAPI) FetchAnalytics(ctx context.Context) (models.Analytics, error) {
	if f.FetchAnalyticsFn != nil {
		return f.FetchAnalyticsFn(ctx)
	}
	return models.Analytics{}, nil
}
