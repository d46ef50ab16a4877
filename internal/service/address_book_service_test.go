package service

import (
	"context"
	"errors"
	"testing"

	"pet-world-gateway/internal/adapter/chain/memory"
	"pet-world-gateway/internal/core/domain"
	"pet-world-gateway/internal/core/ports/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAddressBook_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockAddressRepository(ctrl)
	cache := mocks.NewMockAddressCache(ctrl)
	cache.EXPECT().Get(gomock.Any()).Return(memory.DefaultAddresses, nil)

	book := NewAddressBook(repo, cache, nil, newTestLogger())
	addrs, err := book.Addresses(context.Background())
	require.NoError(t, err)
	assert.True(t, addrs.Complete())
}

func TestAddressBook_CacheMissReadsRepo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockAddressRepository(ctrl)
	cache := mocks.NewMockAddressCache(ctrl)
	stored := domain.ContractAddresses{domain.ContractPet: memory.DefaultAddresses[domain.ContractPet]}

	cache.EXPECT().Get(gomock.Any()).Return(nil, nil)
	repo.EXPECT().List(gomock.Any()).Return(stored, nil)
	cache.EXPECT().Set(gomock.Any(), stored).Return(nil)

	book := NewAddressBook(repo, cache, nil, newTestLogger())
	addrs, err := book.Addresses(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stored, addrs)
}

func TestAddressBook_CacheErrorFallsBackToRepo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockAddressRepository(ctrl)
	cache := mocks.NewMockAddressCache(ctrl)

	cache.EXPECT().Get(gomock.Any()).Return(nil, errors.New("redis down"))
	repo.EXPECT().List(gomock.Any()).Return(memory.DefaultAddresses, nil)
	cache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	book := NewAddressBook(repo, cache, nil, newTestLogger())
	addrs, err := book.Addresses(context.Background())
	require.NoError(t, err)
	assert.True(t, addrs.Complete())
}

func TestAddressBook_SeedsMissingEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockAddressRepository(ctrl)
	stored := domain.ContractAddresses{domain.ContractPet: "0x0000000000000000000000000000000000000001"}
	seed := domain.ContractAddresses{
		domain.ContractPet:         memory.DefaultAddresses[domain.ContractPet],
		domain.ContractPetCoin:     memory.DefaultAddresses[domain.ContractPetCoin],
		domain.ContractPetAdoption: "not-an-address",
	}

	repo.EXPECT().List(gomock.Any()).Return(stored, nil)
	repo.EXPECT().Upsert(gomock.Any(), domain.ContractPetCoin, seed[domain.ContractPetCoin]).Return(nil)

	book := NewAddressBook(repo, nil, seed, newTestLogger())
	addrs, err := book.Addresses(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0x0000000000000000000000000000000000000001", addrs[domain.ContractPet], "stored entries win over the seed")
	assert.Equal(t, seed[domain.ContractPetCoin], addrs[domain.ContractPetCoin])
	assert.NotContains(t, addrs, domain.ContractPetAdoption)
}

func TestAddressBook_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockAddressRepository(ctrl)
	repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db down"))

	book := NewAddressBook(repo, nil, nil, newTestLogger())
	_, err := book.Addresses(context.Background())
	assert.ErrorContains(t, err, "db down")
}

func TestAddressBook_Save(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockAddressRepository(ctrl)
	cache := mocks.NewMockAddressCache(ctrl)
	addr := memory.DefaultAddresses[domain.ContractPetBreeding]

	gomock.InOrder(
		repo.EXPECT().Upsert(gomock.Any(), domain.ContractPetBreeding, addr).Return(nil),
		cache.EXPECT().Invalidate(gomock.Any()).Return(nil),
		cache.EXPECT().Get(gomock.Any()).Return(nil, nil),
		repo.EXPECT().List(gomock.Any()).Return(domain.ContractAddresses{domain.ContractPetBreeding: addr}, nil),
		cache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil),
	)

	book := NewAddressBook(repo, cache, nil, newTestLogger())
	addrs, err := book.Save(context.Background(), domain.ContractAddresses{"PET_BREEDING": " " + addr + " "})
	require.NoError(t, err)
	assert.Equal(t, addr, addrs[domain.ContractPetBreeding])
}

func TestAddressBook_SaveRejectsBadInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	book := NewAddressBook(mocks.NewMockAddressRepository(ctrl), nil, nil, newTestLogger())

	_, err := book.Save(context.Background(), domain.ContractAddresses{"marketplace": memory.DefaultAddresses[domain.ContractPet]})
	assert.ErrorIs(t, err, domain.ErrInvalidIntent)

	_, err = book.Save(context.Background(), domain.ContractAddresses{domain.ContractPet: "0x12"})
	assert.ErrorIs(t, err, domain.ErrInvalidIntent)
}
