package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nandhinijey/ClientFlow/internal/model"

	"github.com/jackc/pgx/v5"
)

// ClientRepository defines operations for client records
type ClientRepository interface {
	FindAll(ctx context.Context) ([]model.Client, error)
	FindByID(ctx context.Context, id int64) (*model.Client, error)
	Create(ctx context.Context, client *model.Client) error
	Update(ctx context.Context, client *model.Client) error
	Delete(ctx context.Context, id int64) error
}

type clientRepository struct {
	db DB
}

// NewClientRepository creates a new ClientRepository
func NewClientRepository(db DB) ClientRepository {
	return &clientRepository{db: db}
}

// clientColumns is the column list shared by every statement. The store's
// lowercase names are mapped back to the camelCase wire schema here and
// nowhere else.
const clientColumns = `id, name, email, phone, address, clientcategory, businessname, startdate, enddate, fee, paymentstatus, clientstatus, hourssigned, hoursused`

func scanClient(row pgx.Row) (*model.Client, error) {
	c := &model.Client{}
	var endDate *time.Time
	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.ClientCategory, &c.BusinessName,
		&c.StartDate.Time, &endDate, &c.Fee, &c.PaymentStatus, &c.ClientStatus,
		&c.HoursSigned, &c.HoursUsed,
	)
	if err != nil {
		return nil, err
	}
	if endDate != nil {
		c.EndDate = &model.Date{Time: *endDate}
	}
	return c, nil
}

func endDateArg(c *model.Client) *time.Time {
	if c.EndDate == nil {
		return nil
	}
	return &c.EndDate.Time
}

// FindAll retrieves every client record. No pagination or ordering is applied;
// the table contents are returned as the store yields them.
func (r *clientRepository) FindAll(ctx context.Context) ([]model.Client, error) {
	sql := `SELECT ` + clientColumns + ` FROM clients`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	var clients []model.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client row: %w", err)
		}
		clients = append(clients, *c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating client rows: %w", err)
	}
	return clients, nil
}

// FindByID retrieves a client by ID. A missing row is (nil, nil); the caller
// decides how to surface not-found.
func (r *clientRepository) FindByID(ctx context.Context, id int64) (*model.Client, error) {
	sql := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	c, err := scanClient(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find client by ID: %w", err)
	}
	return c, nil
}

// Create inserts a new client and reads the persisted row back so the caller
// sees server-assigned defaults.
func (r *clientRepository) Create(ctx context.Context, client *model.Client) error {
	sql := `INSERT INTO clients (name, email, phone, address, clientcategory, businessname, startdate, enddate, fee, paymentstatus, clientstatus, hourssigned, hoursused)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
            RETURNING ` + clientColumns
	persisted, err := scanClient(r.db.QueryRow(ctx, sql,
		client.Name, client.Email, client.Phone, client.Address, client.ClientCategory,
		client.BusinessName, client.StartDate.Time, endDateArg(client), client.Fee,
		client.PaymentStatus, client.ClientStatus, client.HoursSigned, client.HoursUsed,
	))
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	*client = *persisted
	return nil
}

// Update replaces the full row for the client's ID. Last write wins; there is
// no version check.
func (r *clientRepository) Update(ctx context.Context, client *model.Client) error {
	sql := `UPDATE clients SET
              name = $1, email = $2, phone = $3, address = $4, clientcategory = $5,
              businessname = $6, startdate = $7, enddate = $8, fee = $9,
              paymentstatus = $10, clientstatus = $11, hourssigned = $12, hoursused = $13
            WHERE id = $14
            RETURNING ` + clientColumns
	persisted, err := scanClient(r.db.QueryRow(ctx, sql,
		client.Name, client.Email, client.Phone, client.Address, client.ClientCategory,
		client.BusinessName, client.StartDate.Time, endDateArg(client), client.Fee,
		client.PaymentStatus, client.ClientStatus, client.HoursSigned, client.HoursUsed,
		client.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("client not found for update")
		}
		return fmt.Errorf("failed to update client: %w", err)
	}
	*client = *persisted
	return nil
}

// Delete removes a client. Deleting an absent ID is not an error.
func (r *clientRepository) Delete(ctx context.Context, id int64) error {
	sql := `DELETE FROM clients WHERE id = $1`
	if _, err := r.db.Exec(ctx, sql, id); err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	return nil
}
