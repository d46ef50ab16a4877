package service

import (
	"context"
	"fmt"
	"strings"

	"pet-world-gateway/internal/core/domain"
	"pet-world-gateway/internal/core/ports"
	"pet-world-gateway/pkg/logger"

	"github.com/rs/zerolog"
)

// AddressBook reads contract addresses through the cache, falling back to
// the repository and finally to the configured seed.
type AddressBook struct {
	repo  ports.AddressRepository
	cache ports.AddressCache
	seed  domain.ContractAddresses
	log   zerolog.Logger
}

// NewAddressBook creates the address book. cache may be nil.
func NewAddressBook(repo ports.AddressRepository, cache ports.AddressCache, seed domain.ContractAddresses, log zerolog.Logger) *AddressBook {
	return &AddressBook{
		repo:  repo,
		cache: cache,
		seed:  seed,
		log:   logger.Component(log, "address_book"),
	}
}

// Addresses returns the current book. Seeded entries are persisted the
// first time they are needed.
func (b *AddressBook) Addresses(ctx context.Context) (domain.ContractAddresses, error) {
	if b.cache != nil {
		addrs, err := b.cache.Get(ctx)
		if err != nil {
			b.log.Warn().Err(err).Msg("address cache read failed")
		} else if addrs != nil {
			return addrs, nil
		}
	}

	addrs, err := b.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing contract addresses: %w", err)
	}
	if addrs == nil {
		addrs = domain.ContractAddresses{}
	}

	for _, name := range domain.ContractNames {
		if _, ok := addrs[name]; ok || !domain.IsAddress(b.seed[name]) {
			continue
		}
		if err := b.repo.Upsert(ctx, name, b.seed[name]); err != nil {
			return nil, fmt.Errorf("seeding %s address: %w", name, err)
		}
		addrs[name] = b.seed[name]
		b.log.Info().Str("contract", string(name)).Str("address", b.seed[name]).Msg("seeded contract address")
	}

	if b.cache != nil && len(addrs) > 0 {
		if err := b.cache.Set(ctx, addrs); err != nil {
			b.log.Warn().Err(err).Msg("address cache write failed")
		}
	}
	return addrs, nil
}

// Save validates and stores the given entries, leaving others untouched.
func (b *AddressBook) Save(ctx context.Context, addrs domain.ContractAddresses) (domain.ContractAddresses, error) {
	clean := make(domain.ContractAddresses, len(addrs))
	for name, addr := range addrs {
		n, err := domain.ParseContractName(string(name))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidIntent, err)
		}
		addr = strings.TrimSpace(addr)
		if !domain.IsAddress(addr) {
			return nil, fmt.Errorf("%w: %s address %q is malformed", domain.ErrInvalidIntent, n, addr)
		}
		clean[n] = addr
	}

	for _, name := range domain.ContractNames {
		addr, ok := clean[name]
		if !ok {
			continue
		}
		if err := b.repo.Upsert(ctx, name, addr); err != nil {
			return nil, fmt.Errorf("saving %s address: %w", name, err)
		}
	}

	if b.cache != nil {
		if err := b.cache.Invalidate(ctx); err != nil {
			b.log.Warn().Err(err).Msg("address cache invalidate failed")
		}
	}
	return b.Addresses(ctx)
}
