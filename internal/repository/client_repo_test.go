package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/nandhinijey/ClientFlow/internal/model"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var clientCols = []string{
	"id", "name", "email", "phone", "address", "clientcategory", "businessname",
	"startdate", "enddate", "fee", "paymentstatus", "clientstatus", "hourssigned", "hoursused",
}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func sampleRow(rows *pgxmock.Rows) *pgxmock.Rows {
	addr := "1 Main St"
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	return rows.AddRow(
		int64(1), "Jane Doe", "jane@x.com", "555-1000", &addr, model.CategoryBusiness,
		(*string)(nil), start, (*time.Time)(nil), 500.0, model.PaymentStatusPending,
		model.ClientStatusActive, (*float64)(nil), (*float64)(nil),
	)
}

func TestClientRepository_FindByID(t *testing.T) {
	mock := newMock(t)
	repo := NewClientRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT `+clientColumns+` FROM clients WHERE id = $1`)).
		WithArgs(int64(1)).
		WillReturnRows(sampleRow(pgxmock.NewRows(clientCols)))

	c, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, int64(1), c.ID)
	assert.Equal(t, "Jane Doe", c.Name)
	assert.Equal(t, 500.0, c.Fee)
	assert.Nil(t, c.EndDate)
	require.NotNil(t, c.Address)
	assert.Equal(t, "1 Main St", *c.Address)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepository_FindByID_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewClientRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT `+clientColumns+` FROM clients WHERE id = $1`)).
		WithArgs(int64(42)).
		WillReturnError(pgx.ErrNoRows)

	c, err := repo.FindByID(context.Background(), 42)
	assert.NoError(t, err)
	assert.Nil(t, c)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepository_FindAll(t *testing.T) {
	mock := newMock(t)
	repo := NewClientRepository(mock)

	rows := sampleRow(pgxmock.NewRows(clientCols))
	start := time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	hours := 40.0
	rows.AddRow(
		int64(2), "Acme Pty Ltd", "books@acme.com", "555-2000", (*string)(nil),
		model.CategoryBookkeeping, (*string)(nil), start, &end, 1200.0,
		model.PaymentStatusPaid, model.ClientStatusInactive, &hours, &hours,
	)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + clientColumns + ` FROM clients`)).
		WillReturnRows(rows)

	clients, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, clients, 2)
	assert.Equal(t, "Acme Pty Ltd", clients[1].Name)
	require.NotNil(t, clients[1].EndDate)
	assert.Equal(t, "2024-06-15", clients[1].EndDate.Format("2006-01-02"))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepository_Create(t *testing.T) {
	mock := newMock(t)
	repo := NewClientRepository(mock)

	mock.ExpectQuery(`INSERT INTO clients`).
		WithArgs(
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(),
		).
		WillReturnRows(sampleRow(pgxmock.NewRows(clientCols)))

	client := &model.Client{
		Name:           "Jane Doe",
		Email:          "jane@x.com",
		Phone:          "555-1000",
		ClientCategory: model.CategoryBusiness,
		StartDate:      model.NewDate(2024, time.January, 1),
		Fee:            500,
		PaymentStatus:  model.PaymentStatusPending,
		ClientStatus:   model.ClientStatusActive,
	}
	err := repo.Create(context.Background(), client)
	require.NoError(t, err)

	// Persisted row is read back, including the assigned id
	assert.Equal(t, int64(1), client.ID)
	require.NotNil(t, client.Address)
	assert.Equal(t, "1 Main St", *client.Address)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepository_Update_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewClientRepository(mock)

	mock.ExpectQuery(`UPDATE clients SET`).
		WithArgs(
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(),
		).
		WillReturnError(pgx.ErrNoRows)

	client := &model.Client{
		ID:             9,
		Name:           "Jane Doe",
		Email:          "jane@x.com",
		Phone:          "555-1000",
		ClientCategory: model.CategoryBusiness,
		StartDate:      model.NewDate(2024, time.January, 1),
	}
	err := repo.Update(context.Background(), client)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepository_Delete(t *testing.T) {
	mock := newMock(t)
	repo := NewClientRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM clients WHERE id = $1`)).
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	assert.NoError(t, repo.Delete(context.Background(), 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepository_Delete_MissingIDIsNotAnError(t *testing.T) {
	mock := newMock(t)
	repo := NewClientRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM clients WHERE id = $1`)).
		WithArgs(int64(999)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	assert.NoError(t, repo.Delete(context.Background(), 999))
	assert.NoError(t, mock.ExpectationsWereMet())
}
