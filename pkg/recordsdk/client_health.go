package recordsdk

import (
	"context"
	"net/http"
)

// GetRoot calls GET /, the API banner.
func (c *SDKClient) GetRoot(ctx context.Context) (*MessageResponse, error) {
	return c.getMessage(ctx, "/")
}

// GetHealth calls GET /api/health. The endpoint always answers 200 with
// status "ok"; database problems only show up in Message.
func (c *SDKClient) GetHealth(ctx context.Context) (*MessageResponse, error) {
	return c.getMessage(ctx, "/api/health")
}

func (c *SDKClient) getMessage(ctx context.Context, path string) (*MessageResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var out MessageResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	if err := checkStatus(resp, out.Status, out.Message); err != nil {
		return nil, err
	}

	return &out, nil
}

// GetLiveness checks if the service is alive.
func (c *SDKClient) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/livez", nil, nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}

	return &health, nil
}

// GetReadiness checks if the service is ready.
func (c *SDKClient) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/readyz", nil, nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}

	return &health, nil
}
