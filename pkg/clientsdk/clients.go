package clientsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
)

// ListClients retrieves all client records.
func (s *Session) ListClients(ctx context.Context) ([]Client, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/clients", nil)
	if err != nil {
		return nil, err
	}

	var clients []Client
	if err := decodeJSON(resp, &clients, http.StatusOK); err != nil {
		return nil, err
	}
	return clients, nil
}

// GetClient retrieves a single record by id. A missing record yields an
// *APIError with status 404; see IsNotFound.
func (s *Session) GetClient(ctx context.Context, id int64) (*Client, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/clients/"+strconv.FormatInt(id, 10), nil)
	if err != nil {
		return nil, err
	}

	var client Client
	if err := decodeJSON(resp, &client, http.StatusOK); err != nil {
		return nil, err
	}
	return &client, nil
}

// CreateClient creates a record and returns it as persisted, including the
// server-assigned id.
func (s *Session) CreateClient(ctx context.Context, payload ClientPayload) (*Client, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/clients", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var client Client
	if err := decodeJSON(resp, &client, http.StatusCreated); err != nil {
		return nil, err
	}
	return &client, nil
}

// UpdateClient replaces the full record for id. Optional fields left out of
// the payload are cleared on the server, so callers must resend every field
// they want to keep.
func (s *Session) UpdateClient(ctx context.Context, id int64, payload ClientPayload) (*Client, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPut, "/clients/"+strconv.FormatInt(id, 10), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var client Client
	if err := decodeJSON(resp, &client, http.StatusOK); err != nil {
		return nil, err
	}
	return &client, nil
}

// DeleteClient removes a record. Deleting an id that does not exist succeeds.
func (s *Session) DeleteClient(ctx context.Context, id int64) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/clients/"+strconv.FormatInt(id, 10), nil)
	if err != nil {
		return err
	}

	var msg MessageResponse
	return decodeJSON(resp, &msg, http.StatusOK)
}

// ExportCSV streams the server's CSV export of all records into w.
func (s *Session) ExportCSV(ctx context.Context, w io.Writer) error {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/clients/export/csv", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return parseErrorResponse(resp.StatusCode, body)
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}
