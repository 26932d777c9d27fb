package careapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"medibook/config"
	"medibook/models"
)

// Client talks to the external care API, which owns persistence, auth and
// all business rules. Calls are timeout-bounded and never retried: a failed
// fetch is terminal for the caller (the UI shows a generic error state).
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient builds a care API client from AppConfig.
func NewClient() *Client {
	timeout := time.Duration(config.AppConfig.CareAPITimeoutMS) * time.Millisecond
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL:    config.AppConfig.CareAPIBaseURL,
		apiKey:     config.AppConfig.CareAPIKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// NewClientWith builds a client against an explicit base URL, used by tests.
func NewClientWith(baseURL, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	return &Client{baseURL: baseURL, apiKey: apiKey, httpClient: httpClient}
}

// GetDoctor fetches a doctor's profile and normalizes its duck-typed fields.
func (c *Client) GetDoctor(ctx context.Context, doctorID string) (models.DoctorProfile, error) {
	var payload models.DoctorPayload
	if err := c.getJSON(ctx, "/doctors/"+url.PathEscape(doctorID), nil, &payload); err != nil {
		return models.DoctorProfile{}, fmt.Errorf("fetching doctor %s: %w", doctorID, err)
	}
	return payload.Normalize(), nil
}

// GetAvailabilities fetches the recurring weekly availability records for a
// doctor. The care API returns all records; filtering by mode and activity
// happens in the availability service.
func (c *Client) GetAvailabilities(ctx context.Context, doctorID string) ([]models.AvailabilityRecord, error) {
	var records []models.AvailabilityRecord
	path := "/doctors/" + url.PathEscape(doctorID) + "/availabilities"
	if err := c.getJSON(ctx, path, nil, &records); err != nil {
		return nil, fmt.Errorf("fetching availabilities for doctor %s: %w", doctorID, err)
	}
	return records, nil
}

// SearchCities queries location suggestions for the autocomplete widgets.
func (c *Client) SearchCities(ctx context.Context, query string) ([]string, error) {
	var cities []string
	params := url.Values{"q": {query}}
	if err := c.getJSON(ctx, "/locations", params, &cities); err != nil {
		return nil, fmt.Errorf("fetching city suggestions: %w", err)
	}
	return cities, nil
}

// Ping checks upstream liveness for the health monitor.
func (c *Client) Ping(ctx context.Context) error {
	req, err := c.newRequest(ctx, "/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("care API health returned status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, path string, params url.Values) (*http.Request, error) {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out interface{}) error {
	req, err := c.newRequest(ctx, path, params)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("care API returned status %d for %s", resp.StatusCode, path)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response failed: %w", err)
	}
	return nil
}
