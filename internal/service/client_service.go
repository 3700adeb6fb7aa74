package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"

	"github.com/nandhinijey/ClientFlow/internal/model"
	"github.com/nandhinijey/ClientFlow/internal/repository"
)

var (
	ErrClientNotFound = errors.New("client not found")
)

// ValidationError carries the field errors for a rejected payload. It is
// distinct from store failures so handlers can answer 400 rather than 500.
type ValidationError struct {
	Fields []model.FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// ClientService defines operations on client records
type ClientService interface {
	ListClients(ctx context.Context) ([]model.Client, error)
	GetClient(ctx context.Context, id int64) (*model.Client, error)
	CreateClient(ctx context.Context, payload model.ClientPayload) (*model.Client, error)
	UpdateClient(ctx context.Context, id int64, payload model.ClientPayload) (*model.Client, error)
	DeleteClient(ctx context.Context, id int64) error
	ExportClientsCSV(ctx context.Context) (*bytes.Buffer, error)
}

type clientService struct {
	repo repository.ClientRepository
}

// NewClientService creates a new ClientService
func NewClientService(repo repository.ClientRepository) ClientService {
	return &clientService{repo: repo}
}

func (s *clientService) ListClients(ctx context.Context) ([]model.Client, error) {
	clients, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients from repo: %w", err)
	}
	return clients, nil
}

func (s *clientService) GetClient(ctx context.Context, id int64) (*model.Client, error) {
	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find client by ID: %w", err)
	}
	if client == nil {
		return nil, ErrClientNotFound
	}
	return client, nil
}

func (s *clientService) CreateClient(ctx context.Context, payload model.ClientPayload) (*model.Client, error) {
	if fields := payload.Validate(); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	client := payload.ToClient()
	if err := s.repo.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to create client in repo: %w", err)
	}
	return client, nil
}

// UpdateClient replaces the full record. Fields omitted from the payload are
// written as null, not preserved; two concurrent updates race with
// last-write-wins semantics at the store.
func (s *clientService) UpdateClient(ctx context.Context, id int64, payload model.ClientPayload) (*model.Client, error) {
	if fields := payload.Validate(); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find client for update: %w", err)
	}
	if existing == nil {
		return nil, ErrClientNotFound
	}

	client := payload.ToClient()
	client.ID = id
	if err := s.repo.Update(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to update client in repo: %w", err)
	}
	return client, nil
}

// DeleteClient removes the record unconditionally. Deleting an ID that does
// not exist succeeds.
func (s *clientService) DeleteClient(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete client in repo: %w", err)
	}
	return nil
}

func (s *clientService) ExportClientsCSV(ctx context.Context) (*bytes.Buffer, error) {
	clients, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch clients for CSV export: %w", err)
	}

	buffer := &bytes.Buffer{}
	writer := csv.NewWriter(buffer)

	header := []string{"ID", "Name", "Email", "Phone", "Address", "Category", "BusinessName", "StartDate", "EndDate", "Fee", "PaymentStatus", "ClientStatus", "HoursSigned", "HoursUsed"}
	if err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, c := range clients {
		row := []string{
			strconv.FormatInt(c.ID, 10),
			c.Name,
			c.Email,
			c.Phone,
			stringOrEmpty(c.Address),
			c.ClientCategory,
			stringOrEmpty(c.BusinessName),
			c.StartDate.Format("2006-01-02"),
			dateOrEmpty(c.EndDate),
			strconv.FormatFloat(c.Fee, 'f', -1, 64),
			c.PaymentStatus,
			c.ClientStatus,
			floatOrEmpty(c.HoursSigned),
			floatOrEmpty(c.HoursUsed),
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("error flushing CSV writer: %w", err)
	}

	return buffer, nil
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func dateOrEmpty(d *model.Date) string {
	if d == nil {
		return ""
	}
	return d.Format("2006-01-02")
}

func floatOrEmpty(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}
