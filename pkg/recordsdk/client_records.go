package recordsdk

import (
	"context"
	"fmt"
	"net/http"
)

// ListRecords fetches the whole collection, ordered by id ascending.
func (c *SDKClient) ListRecords(ctx context.Context) ([]Record, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/data", nil, nil)
	if err != nil {
		return nil, err
	}

	var out ListRecordsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	if err := checkStatus(resp, out.Status, ""); err != nil {
		return nil, err
	}

	return out.Data, nil
}

// CreateRecord creates a record with the given name.
func (c *SDKClient) CreateRecord(ctx context.Context, name string) (*Record, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/data", RecordRequest{Name: name})
	if err != nil {
		return nil, err
	}

	var out RecordResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	if err := checkStatus(resp, out.Status, ""); err != nil {
		return nil, err
	}

	return &out.Data, nil
}

// UpdateRecord renames the record with the given id.
func (c *SDKClient) UpdateRecord(ctx context.Context, id int64, name string) (*Record, error) {
	resp, err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/data/%d", id), RecordRequest{Name: name})
	if err != nil {
		return nil, err
	}

	var out RecordResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	if err := checkStatus(resp, out.Status, ""); err != nil {
		return nil, err
	}

	return &out.Data, nil
}

// DeleteRecord removes the record with the given id. Deleting an id that does
// not exist is not an error.
func (c *SDKClient) DeleteRecord(ctx context.Context, id int64) (*MessageResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/data/%d", id), nil, nil)
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
