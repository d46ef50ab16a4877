package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-world-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	petAddr  = "0x5FbDB2315678afecb367f032d93F642f64180aa3"
	coinAddr = "0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512"
)

func TestAddressRepo_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAddressRepo(mock)

	mock.ExpectQuery("SELECT name, address FROM contract_addresses").
		WillReturnRows(pgxmock.NewRows([]string{"name", "address"}).
			AddRow("pet", petAddr).
			AddRow("pet_coin", coinAddr).
			AddRow("legacy_market", "0x0000000000000000000000000000000000000009"))

	addrs, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, addrs, 2)
	assert.Equal(t, petAddr, addrs[domain.ContractPet])
	assert.Equal(t, coinAddr, addrs[domain.ContractPetCoin])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddressRepo_List_Empty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT name, address FROM contract_addresses").
		WillReturnRows(pgxmock.NewRows([]string{"name", "address"}))

	addrs, err := NewAddressRepo(mock).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, addrs)
}

func TestAddressRepo_List_QueryError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT name, address FROM contract_addresses").
		WillReturnError(errors.New("connection refused"))

	_, err = NewAddressRepo(mock).List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list contract addresses")
}

func TestAddressRepo_Upsert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("INSERT INTO contract_addresses").
		WithArgs("pet_breeding", petAddr).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = NewAddressRepo(mock).Upsert(context.Background(), domain.ContractPetBreeding, petAddr)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	sid := uuid.New()
	entry := &domain.AuditLog{
		ID:           uuid.New(),
		SessionID:    &sid,
		Account:      petAddr,
		Action:       domain.AuditActionAdopt,
		ResourceType: "pet",
		ResourceID:   "12",
		IPAddress:    "127.0.0.1",
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	mock.ExpectExec("INSERT INTO audit_logs").
		WithArgs(entry.ID, entry.SessionID, entry.Account, "ADOPT", "pet",
			"12", "", "127.0.0.1", entry.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, NewAuditRepo(mock).Create(context.Background(), entry))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHealthCheck(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT count").WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(4))

	hc := NewHealthCheck(mock)
	assert.Equal(t, "postgresql", hc.Name())
	assert.NoError(t, hc.Ping(context.Background()))

	mock.ExpectQuery("SELECT count").WillReturnError(errors.New(`relation "contract_addresses" does not exist`))
	assert.ErrorContains(t, hc.Ping(context.Background()), "contract_addresses")
	assert.NoError(t, mock.ExpectationsWereMet())
}
