package api

import (
	"context"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ewasteportal/ewastecli/internal/client/credential"
	"github.com/ewasteportal/ewastecli/internal/client/models"
	"github.com/ewasteportal/ewastecli/internal/logging"
)

func newTestClient(t *testing.T, token string, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store := credential.NewMemoryStore()
	if token != "" {
		require.NoError(t, store.Save(context.Background(), token))
	}
	return NewHTTPClient(srv.URL, store, 5*time.Second, logging.Discard())
}

func TestBearerHeaderAttachedWhenPresent(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, "tok-123", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"id":1,"email":"a@b.c","role":"user","points":0,"created_at":"2024-01-01T00:00:00Z"}`))
	})

	_, err := c.FetchIdentity(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer tok-123", gotAuth)
}

func TestNoBearerHeaderWhenAnonymous(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := c.ListCenters(context.Background())
	require.NoError(t, err)
	require.Empty(t, gotAuth)
}

func TestServerDetailSurfacedInError(t *testing.T) {
	c := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"detail":"Not assigned to your center"}`))
	})

	err := c.UpdateItemStatus(context.Background(), 7, models.ReportStatusReceived)
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusForbidden, apiErr.Status)
	require.Equal(t, "Not assigned to your center", apiErr.Detail)
	require.True(t, IsForbidden(err))
	require.Equal(t, "Not assigned to your center", Detail(err, "fallback"))
}

func TestDetailFallback(t *testing.T) {
	c := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	err := c.ApproveCenter(context.Background(), 3)
	require.Error(t, err)
	require.Equal(t, "fallback", Detail(err, "fallback"))
	require.False(t, IsUnauthorized(err))
}

func TestUnauthorizedDetected(t *testing.T) {
	c := newTestClient(t, "expired", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Invalid token"}`))
	})

	_, err := c.FetchIdentity(context.Background())
	require.True(t, IsUnauthorized(err))
}

func TestNetworkFailureWrapsErrUnavailable(t *testing.T) {
	store := credential.NewMemoryStore()
	// nothing listens here
	c := NewHTTPClient("http://127.0.0.1:1", store, 500*time.Millisecond, logging.Discard())

	_, err := c.ListCenters(context.Background())
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnavailable))
}

func TestAuthenticateDecodesToken(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login-json", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		body, _ := io.ReadAll(r.Body)
		require.JSONEq(t, `{"email":"a@b.c","password":"secret"}`, string(body))
		_, _ = w.Write([]byte(`{"access_token":"tok-xyz","token_type":"bearer"}`))
	})

	tok, err := c.Authenticate(context.Background(), "a@b.c", "secret")
	require.NoError(t, err)
	require.Equal(t, "tok-xyz", tok.AccessToken)
}

func TestIdentityRoleMappedFromWireValue(t *testing.T) {
	c := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":4,"email":"s@b.c","role":"user","points":30,"created_at":"2024-01-01T00:00:00Z"}`))
	})

	id, err := c.FetchIdentity(context.Background())
	require.NoError(t, err)
	require.Equal(t, models.RoleSubmitter, id.Role)
}

func TestCreateReportSendsMultipart(t *testing.T) {
	c := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/reports/create", r.URL.Path)

		mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		require.NoError(t, err)
		require.Equal(t, "multipart/form-data", mediaType)

		mr := multipart.NewReader(r.Body, params["boundary"])
		form, err := mr.ReadForm(1 << 20)
		require.NoError(t, err)

		require.Len(t, form.File["file"], 1)
		require.Equal(t, "battery.jpg", form.File["file"][0].Filename)
		require.Equal(t, []string{"9"}, form.Value["recycler_id"])

		_, _ = w.Write([]byte(`{"id":11,"image_url":"/uploads/x.jpg","category":"Battery","confidence":0.92,"status":"assigned","co2_saved":2.5,"points_awarded":19,"created_at":"2024-01-01T00:00:00Z"}`))
	})

	centerID := int64(9)
	report, err := c.CreateReport(context.Background(), models.NewReport{
		FileName: "battery.jpg",
		Data:     []byte{0xff, 0xd8, 0xff},
		CenterID: &centerID,
	})
	require.NoError(t, err)
	require.Equal(t, "Battery", report.Category)
	require.Equal(t, models.ReportStatusAssigned, report.Status)
}

func TestClaimCenterPath(t *testing.T) {
	c := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/recyclers/centers/5/claim", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":5,"name":"GreenCycle Hub","approved":true,"manager_user_id":2}`))
	})

	center, err := c.ClaimCenter(context.Background(), 5)
	require.NoError(t, err)
	require.True(t, center.ManagedBy(2))
}
