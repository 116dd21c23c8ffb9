package postgrest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
)

// Client is the HTTP wrapper for a hosted PostgREST data API.
// All requests carry the project API key both as apikey header and Bearer token.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new PostgREST client for the given project URL.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{},
	}
}

// Query holds filter and ordering parameters for a table request.
// Eq filters compile to PostgREST `column=eq.value` pairs.
type Query struct {
	Eq    map[string]string
	Order string
}

func (q Query) encode() string {
	values := url.Values{}

	// Stable filter order keeps request URLs deterministic for tests and logs.
	keys := make([]string, 0, len(q.Eq))
	for k := range q.Eq {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		values.Set(k, "eq."+q.Eq[k])
	}

	if q.Order != "" {
		values.Set("order", q.Order)
	}
	return values.Encode()
}

// Select fetches rows from a table. The result is the raw JSON array.
func (c *Client) Select(ctx context.Context, table string, q Query) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, table, q, nil, false)
}

// Insert adds rows to a table and returns the created representation.
func (c *Client) Insert(ctx context.Context, table string, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, table, Query{}, body, true)
}

// Update patches rows matching the query and returns the updated representation.
func (c *Client) Update(ctx context.Context, table string, q Query, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPatch, table, q, body, true)
}

// Delete removes rows matching the query.
func (c *Client) Delete(ctx context.Context, table string, q Query) error {
	_, err := c.do(ctx, http.MethodDelete, table, q, nil, false)
	return err
}

func (c *Client) do(ctx context.Context, method, table string, q Query, body any, returning bool) (json.RawMessage, error) {
	reqURL := fmt.Sprintf("%s/rest/v1/%s", c.baseURL, table)
	if encoded := q.encode(); encoded != "" {
		reqURL += "?" + encoded
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s body: %w", table, err)
		}
		reader = bytes.NewBuffer(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", table, err)
	}
	httpReq.Header.Set("apikey", c.apiKey)
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if returning {
		httpReq.Header.Set("Prefer", "return=representation")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call data API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("data API error %d on %s: %s", resp.StatusCode, table, string(raw))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response: %w", table, err)
	}
	return raw, nil
}
