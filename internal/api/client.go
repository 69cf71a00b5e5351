// Package api is a thin HTTP/JSON client for the fertilizer advisory
// backend. One method per backend capability; no retries, caching or
// request deduplication — transient failures surface immediately to
// the caller.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/krishemitra/krishi/internal/common"
	"github.com/krishemitra/krishi/internal/model"
)

// DefaultBaseURL is used when no backend address is configured.
const DefaultBaseURL = "http://localhost:8001"

// Client issues typed requests to the advisory backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// APIError is a non-2xx backend response. Message carries the
// backend's own text (FastAPI-style "detail") when it sent one.
type APIError struct {
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend error: %d - %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend error: %d", e.StatusCode)
}

// errorBody is the shape FastAPI uses for HTTP errors.
type errorBody struct {
	Detail string `json:"detail"`
}

// NewClient creates a client for the backend at baseURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Register creates a farmer account. Validation failures come back as
// an *APIError carrying the backend's message.
func (c *Client) Register(ctx context.Context, farmer model.Farmer) (model.Farmer, error) {
	var created model.Farmer
	if err := c.post(ctx, "/api/register", nil, farmer, &created); err != nil {
		return model.Farmer{}, fmt.Errorf("register: %w", err)
	}
	return created, nil
}

// Login verifies mobile+OTP. A transport-level success does not imply
// a login: the payload's Success flag is the business outcome and
// callers must branch on it as well.
func (c *Client) Login(ctx context.Context, mobile, otp string) (model.LoginResponse, error) {
	body := map[string]string{"mobile": mobile, "otp": otp}
	var resp model.LoginResponse
	if err := c.post(ctx, "/api/login", nil, body, &resp); err != nil {
		return model.LoginResponse{}, fmt.Errorf("login: %w", err)
	}
	return resp, nil
}

// Recommendation requests a fertilizer plan. The call is synchronous;
// the backend computes the full schedule before responding.
func (c *Client) Recommendation(ctx context.Context, farmerMobile string, req model.RecommendationRequest) (model.Recommendation, error) {
	q := url.Values{"farmer_mobile": {farmerMobile}}
	var rec model.Recommendation
	if err := c.post(ctx, "/api/recommendation", q, req, &rec); err != nil {
		return model.Recommendation{}, fmt.Errorf("recommendation: %w", err)
	}
	return rec, nil
}

// History fetches the farmer's past recommendations, newest first.
func (c *Client) History(ctx context.Context, farmerMobile string) ([]model.Recommendation, error) {
	q := url.Values{"farmer_mobile": {farmerMobile}}
	var resp struct {
		History []model.Recommendation `json:"history"`
	}
	if err := c.get(ctx, "/api/history", q, &resp); err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	return resp.History, nil
}

// Crops fetches the crop reference list.
func (c *Client) Crops(ctx context.Context) ([]model.Crop, error) {
	var crops []model.Crop
	if err := c.get(ctx, "/api/crops", nil, &crops); err != nil {
		return nil, fmt.Errorf("crops: %w", err)
	}
	return crops, nil
}

// Districts fetches the district reference list.
func (c *Client) Districts(ctx context.Context) ([]model.District, error) {
	var districts []model.District
	if err := c.get(ctx, "/api/districts", nil, &districts); err != nil {
		return nil, fmt.Errorf("districts: %w", err)
	}
	return districts, nil
}

// Mandals fetches the mandals belonging to district.
func (c *Client) Mandals(ctx context.Context, district string) ([]model.Mandal, error) {
	q := url.Values{"district": {district}}
	var mandals []model.Mandal
	if err := c.get(ctx, "/api/mandals", q, &mandals); err != nil {
		return nil, fmt.Errorf("mandals: %w", err)
	}
	return mandals, nil
}

// Weather fetches the current snapshot for a mandal. Callers treat a
// failure here as "weather unknown", never as a blocking error.
func (c *Client) Weather(ctx context.Context, district, mandal string) (model.Weather, error) {
	q := url.Values{"district": {district}, "mandal": {mandal}}
	var w model.Weather
	if err := c.get(ctx, "/api/weather", q, &w); err != nil {
		return model.Weather{}, fmt.Errorf("weather: %w", err)
	}
	return w, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, query url.Values, body, out any) error {
	return c.do(ctx, http.MethodPost, path, query, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	common.LogDebug("backend request", common.Fields{
		"method": method,
		"path":   path,
		"query":  query.Encode(),
	})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrBackendUnreachable, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var eb errorBody
		if err := json.Unmarshal(raw, &eb); err == nil && eb.Detail != "" {
			apiErr.Message = eb.Detail
		} else {
			apiErr.Message = strings.TrimSpace(string(raw))
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
