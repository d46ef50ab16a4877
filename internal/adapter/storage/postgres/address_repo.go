package postgres

import (
	"context"
	"fmt"

	"pet-world-gateway/internal/core/domain"
)

// AddressRepo implements ports.AddressRepository on the contract_addresses table.
type AddressRepo struct {
	pool Pool
}

// NewAddressRepo creates a new AddressRepo.
func NewAddressRepo(pool Pool) *AddressRepo {
	return &AddressRepo{pool: pool}
}

// List returns every stored address. Unknown names are skipped.
func (r *AddressRepo) List(ctx context.Context) (domain.ContractAddresses, error) {
	rows, err := r.pool.Query(ctx, `SELECT name, address FROM contract_addresses ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list contract addresses: %w", err)
	}
	defer rows.Close()

	addrs := domain.ContractAddresses{}
	for rows.Next() {
		var name, address string
		if err := rows.Scan(&name, &address); err != nil {
			return nil, fmt.Errorf("scan contract address: %w", err)
		}
		n, err := domain.ParseContractName(name)
		if err != nil {
			continue
		}
		addrs[n] = address
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contract addresses: %w", err)
	}
	return addrs, nil
}

// Upsert stores or replaces the address of one contract.
func (r *AddressRepo) Upsert(ctx context.Context, name domain.ContractName, address string) error {
	query := `INSERT INTO contract_addresses (name, address, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE SET address = EXCLUDED.address, updated_at = now()`

	_, err := r.pool.Exec(ctx, query, string(name), address)
	if err != nil {
		return fmt.Errorf("upsert contract address %s: %w", name, err)
	}
	return nil
}
