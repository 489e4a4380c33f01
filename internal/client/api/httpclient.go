package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ewasteportal/ewastecli/internal/client/credential"
	"github.com/ewasteportal/ewastecli/internal/client/models"
	"github.com/ewasteportal/ewastecli/internal/common"
	"github.com/ewasteportal/ewastecli/internal/logging"
)

// HTTPClient implements Client over plain HTTP/JSON.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	creds   credential.Source
	log     logging.Logger
}

func NewHTTPClient(baseURL string, creds credential.Source, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		creds:   creds,
		log:     log.With("component", "api"),
	}
}

// detailBody matches the backend's error payload.
type detailBody struct {
	Detail string `json:"detail"`
}

// do issues one request and decodes the JSON response into out (when out is
// non-nil). A non-2xx status becomes *Error; a transport failure wraps
// ErrUnavailable. No retries.
func (c *HTTPClient) do(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	token, err := c.creds.Token(ctx)
	if err != nil {
		return fmt.Errorf("credential read error: %w", err)
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug(ctx, "request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{Status: resp.StatusCode}
		var db detailBody
		if err := json.NewDecoder(resp.Body).Decode(&db); err == nil {
			apiErr.Detail = db.Detail
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *HTTPClient) getJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, "", nil, out)
}

func (c *HTTPClient) postJSON(ctx context.Context, path string, payload, out any) error {
	var body io.Reader
	contentType := ""
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
		contentType = "application/json"
	}
	return c.do(ctx, http.MethodPost, path, contentType, body, out)
}

func (c *HTTPClient) Authenticate(ctx context.Context, email, password string) (models.Token, error) {
	payload := map[string]string{"email": email, "password": password}
	var token models.Token
	if err := c.postJSON(ctx, "/auth/login-json", payload, &token); err != nil {
		return models.Token{}, err
	}
	return token, nil
}

func (c *HTTPClient) Register(ctx context.Context, reg models.Registration) (models.Identity, error) {
	var identity models.Identity
	if err := c.postJSON(ctx, "/auth/register", reg, &identity); err != nil {
		return models.Identity{}, err
	}
	return identity, nil
}

func (c *HTTPClient) FetchIdentity(ctx context.Context) (models.Identity, error) {
	var identity models.Identity
	if err := c.getJSON(ctx, "/users/me", &identity); err != nil {
		return models.Identity{}, err
	}
	return identity, nil
}

func (c *HTTPClient) FetchUserStats(ctx context.Context) (models.UserStats, error) {
	var stats models.UserStats
	if err := c.getJSON(ctx, "/users/stats", &stats); err != nil {
		return models.UserStats{}, err
	}
	return stats, nil
}

func (c *HTTPClient) ListCenters(ctx context.Context) ([]models.Center, error) {
	var centers []models.Center
	if err := c.getJSON(ctx, "/recyclers/centers", &centers); err != nil {
		return nil, err
	}
	return centers, nil
}

func (c *HTTPClient) ClaimCenter(ctx context.Context, centerID int64) (models.Center, error) {
	var center models.Center
	path := fmt.Sprintf("/recyclers/centers/%d/claim", centerID)
	if err := c.postJSON(ctx, path, nil, &center); err != nil {
		return models.Center{}, err
	}
	return center, nil
}

func (c *HTTPClient) FetchAssigned(ctx context.Context) ([]models.Report, error) {
	var reports []models.Report
	if err := c.getJSON(ctx, "/recyclers/assigned", &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

func (c *HTTPClient) UpdateItemStatus(ctx context.Context, reportID int64, status string) error {
	path := fmt.Sprintf("/recyclers/assigned/%d/status", reportID)
	return c.postJSON(ctx, path, map[string]string{"status": status}, nil)
}

func (c *HTTPClient) CreateReport(ctx context.Context, report models.NewReport) (models.Report, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", report.FileName)
	if err != nil {
		return models.Report{}, err
	}
	if _, err := part.Write(report.Data); err != nil {
		return models.Report{}, err
	}
	if report.CenterID != nil {
		if err := w.WriteField("recycler_id", strconv.FormatInt(*report.CenterID, 10)); err != nil {
			return models.Report{}, err
		}
	}
	if err := w.Close(); err != nil {
		return models.Report{}, err
	}

	var created models.Report
	if err := c.do(ctx, http.MethodPost, "/reports/create", w.FormDataContentType(), &buf, &created); err != nil {
		return models.Report{}, err
	}
	return created, nil
}

func (c *HTTPClient) FetchHistory(ctx context.Context) ([]models.Report, error) {
	var reports []models.Report
	if err := c.getJSON(ctx, "/reports/history", &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

func (c *HTTPClient) ApproveCenter(ctx context.Context, centerID int64) error {
	path := fmt.Sprintf("/admin/centers/%d/approve", centerID)
	return c.postJSON(ctx, path, nil, nil)
}

func (c *HTTPClient) FetchAnalytics(ctx context.Context) (models.Analytics, error) {
	var overview models.Analytics
	if err := c.getJSON(ctx, "/analytics/overview", &overview); err != nil {
		return models.Analytics{}, err
	}
	return overview, nil
}
