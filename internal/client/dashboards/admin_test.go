package dashboards

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ewasteportal/ewastecli/internal/client/api"
	"github.com/ewasteportal/ewastecli/internal/client/models"
	"github.com/ewasteportal/ewastecli/internal/client/notify"
	"github.com/ewasteportal/ewastecli/internal/logging"
)

func newAdmin(fake *fakeAPI) (*Admin, *notify.Channel) {
	ch := notify.New(notify.DefaultTTL)
	return NewAdmin(fake, ch, logging.Discard()), ch
}

func TestAdminLoadAssemblesSnapshot(t *testing.T) {
	fake := &fakeAPI{
		ListCentersFn: func(ctx context.Context) ([]models.Center, error) {
			return []models.Center{{ID: 1, Approved: true}, {ID: 2}}, nil
		},
		FetchAnalyticsFn: func(ctx context.Context) (models.Analytics, error) {
			return models.Analytics{
				ByCategory:      map[string]int64{"Battery": 3},
				TopContributors: []models.Contributor{{Name: "ada", Points: 120}},
				CO2SavedKg:      7.5,
			}, nil
		},
	}
	a, _ := newAdmin(fake)

	require.NoError(t, a.Load(context.Background()))

	snap, ok := a.Snapshot()
	require.True(t, ok)
	require.Len(t, snap.Centers, 2)
	require.EqualValues(t, 3, snap.Analytics.ByCategory["Battery"])
}

func TestApproveReloadsAndClearsPendingFilter(t *testing.T) {
	approved := false
	fake := &fakeAPI{
		ListCentersFn: func(ctx context.Context) ([]models.Center, error) {
			return []models.Center{{ID: 3, Name: "Renew Tech Recyclers", Approved: approved}}, nil
		},
		ApproveCenterFn: func(ctx context.Context, centerID int64) error {
			require.EqualValues(t, 3, centerID)
			approved = true
			return nil
		},
	}
	a, ch := newAdmin(fake)

	ctx := context.Background()
	require.NoError(t, a.Load(ctx))

	snap, _ := a.Snapshot()
	require.Len(t, snap.FilterCenters(FilterPending), 1)

	require.NoError(t, a.Approve(ctx, 3))

	snap, _ = a.Snapshot()
	require.True(t, snap.Centers[0].Approved)
	require.Empty(t, snap.FilterCenters(FilterPending))
	require.Len(t, snap.FilterCenters(FilterApproved), 1)

	n := lastNotification(t, ch)
	require.Equal(t, notify.SeveritySuccess, n.Severity)
	require.Equal(t, "Center approved successfully!", n.Message)
}

func TestApproveFailureKeepsSnapshot(t *testing.T) {
	loads := 0
	fake := &fakeAPI{
		ListCentersFn: func(ctx context.Context) ([]models.Center, error) {
			loads++
			return []models.Center{{ID: 3}}, nil
		},
		ApproveCenterFn: func(ctx context.Context, centerID int64) error {
			return &api.Error{Status: http.StatusNotFound, Detail: "Center not found"}
		},
	}
	a, ch := newAdmin(fake)

	ctx := context.Background()
	require.NoError(t, a.Load(ctx))
	require.Error(t, a.Approve(ctx, 3))

	require.Equal(t, 1, loads)
	require.Equal(t, "Center not found", lastNotification(t, ch).Message)
}

func TestAdminFailedAnalyticsBlocksWholeLoad(t *testing.T) {
	fake := &fakeAPI{
		ListCentersFn: func(ctx context.Context) ([]models.Center, error) {
			return []models.Center{{ID: 1}}, nil
		},
		FetchAnalyticsFn: func(ctx context.Context) (models.Analytics, error) {
			return models.Analytics{}, &api.Error{Status: http.StatusForbidden, Detail: "Admin only"}
		},
	}
	a, ch := newAdmin(fake)

	require.Error(t, a.Load(context.Background()))

	_, ok := a.Snapshot()
	require.False(t, ok)
	require.Equal(t, "Admin only", lastNotification(t, ch).Message)
}

func TestFilterCentersValues(t *testing.T) {
	centers := []models.Center{{ID: 1, Approved: true}, {ID: 2}, {ID: 3, Approved: true}}

	require.Len(t, FilterCenters(centers, FilterAll), 3)
	require.Len(t, FilterCenters(centers, FilterApproved), 2)
	require.Len(t, FilterCenters(centers, FilterPending), 1)
}
