// Package client is the admin console's HTTP binding to the site API. It
// satisfies draft.SiteAPI so the editor controller never sees a transport.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"virasat/models"
)

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Error != "" {
			return fmt.Errorf("%s %s: %s", method, path, apiErr.Error)
		}
		return fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) GetSiteDetail(ctx context.Context, siteID string) (*models.SiteDetail, error) {
	var detail models.SiteDetail
	if err := c.do(ctx, http.MethodGet, "/api/sites/"+siteID, nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (c *Client) CreateSite(ctx context.Context, payload *models.SitePayload) (*models.SiteResult, error) {
	var result models.SiteResult
	if err := c.do(ctx, http.MethodPost, "/api/sites", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) UpdateSite(ctx context.Context, siteID string, payload *models.SitePayload) (*models.SiteResult, error) {
	var result models.SiteResult
	if err := c.do(ctx, http.MethodPut, "/api/sites/"+siteID, payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
