// Package api is the typed client for the remote prediction service.
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
)

// Client talks to the prediction service. A zero timeout leaves request
// lifetimes to the caller's context and the transport.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the service at baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the configured service endpoint.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Health checks service availability via GET /api/health.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	var resp healthResponse
	if err := c.get(ctx, "/api/health", &resp); err != nil {
		return nil, err
	}
	return &Health{Status: resp.Status, ModelLoaded: resp.ModelLoaded}, nil
}

// DatasetStats fetches dataset statistics via GET /api/dataset-stats.
func (c *Client) DatasetStats(ctx context.Context) (*Stats, error) {
	var resp statsResponse
	if err := c.get(ctx, "/api/dataset-stats", &resp); err != nil {
		return nil, err
	}
	return &resp.Stats, nil
}

// Predict submits the full form state and returns the service's valuation.
func (c *Client) Predict(ctx context.Context, payload map[string]string) (*Prediction, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding predict payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/predict", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building predict request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var resp predictResponse
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}
	return &resp.Prediction, nil
}

// GenerateDemoData fetches a complete synthetic player record. Values arrive
// as JSON numbers and strings and are normalized to the form's string
// representation.
func (c *Client) GenerateDemoData(ctx context.Context) (map[string]string, error) {
	var resp recordResponse
	if err := c.get(ctx, "/api/generate-demo-data", &resp); err != nil {
		return nil, err
	}
	return normalizeRecord(resp.Data), nil
}

// UploadCSV sends a CSV file as a multipart request. The service parses it
// and returns its first row as a player record plus the total row count.
func (c *Client) UploadCSV(ctx context.Context, filename string, file io.Reader) (map[string]string, int, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, 0, fmt.Errorf("building multipart body: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, 0, fmt.Errorf("reading csv file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, 0, fmt.Errorf("finalizing multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload-csv", &buf)
	if err != nil {
		return nil, 0, fmt.Errorf("building upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var resp uploadResponse
	if err := c.do(req, &resp); err != nil {
		return nil, 0, err
	}
	return normalizeRecord(resp.Data), resp.TotalRows, nil
}

// get issues a GET request against path and decodes the response into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", path, err)
	}
	return c.do(req, out)
}

// do executes a request and decodes the body. A non-2xx response with an
// {error} payload becomes a *ServiceError carrying the service's message;
// everything else surfaces as a plain (transport) error.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response from %s: %w", req.URL.Path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp errorResponse
		if jsonErr := json.Unmarshal(body, &errResp); jsonErr == nil && errResp.Error != "" {
			return &ServiceError{StatusCode: resp.StatusCode, Message: errResp.Error}
		}
		return &ServiceError{StatusCode: resp.StatusCode}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding response from %s: %w", req.URL.Path, err)
	}
	return nil
}

// normalizeRecord converts a decoded JSON record into the form's string
// values: integers lose the decimal point, decimals keep their natural
// precision, strings pass through.
func normalizeRecord(data map[string]any) map[string]string {
	record := make(map[string]string, len(data))
	for key, value := range data {
		switch v := value.(type) {
		case string:
			record[key] = v
		case float64:
			record[key] = strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			record[key] = strconv.FormatBool(v)
		case nil:
			record[key] = ""
		default:
			record[key] = fmt.Sprintf("%v", v)
		}
	}
	return record
}
