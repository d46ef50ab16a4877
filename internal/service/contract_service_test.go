package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"pet-world-gateway/internal/adapter/chain/memory"
	"pet-world-gateway/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const otherAccount = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"

func newContractFixture(t *testing.T, opts ...memory.Option) (*memory.Ledger, *testClock, *ContractService) {
	t.Helper()
	clk := newTestClock()
	l := memory.NewLedger(append([]memory.Option{memory.WithClock(clk.Now)}, opts...)...)

	conn, err := memory.NewConnector(l).Connect(context.Background())
	require.NoError(t, err)
	t.Cleanup(conn.Close)

	contracts, err := conn.Contracts(memory.DefaultAddresses, memory.DefaultAccount)
	require.NoError(t, err)

	svc := NewContractService(contracts, memory.DefaultAccount, WorldConfig{
		BreedingCooldown: 24 * time.Hour,
		FetchConcurrency: 2,
		Clock:            clk.Now,
	}, newTestLogger())
	return l, clk, svc
}

func TestContractService_ListPetsOwned(t *testing.T) {
	l, _, svc := newContractFixture(t)
	a := l.SeedPet(memory.DefaultAccount, domain.Pet{Name: "Rex", Type: "dog", Experience: 250})
	l.SeedPet(otherAccount, domain.Pet{Name: "Stray", Type: "cat"})
	b := l.SeedPet(memory.DefaultAccount, domain.Pet{Name: "Mia", Type: "cat", Rarity: domain.RarityEpic})

	pets, err := svc.ListPetsOwned(context.Background())
	require.NoError(t, err)
	require.Len(t, pets, 2)

	assert.Equal(t, a, pets[0].ID)
	assert.Equal(t, b, pets[1].ID)
	assert.Equal(t, uint64(3), pets[0].Level)
	assert.Equal(t, domain.PetImageURL(a), pets[0].ImageURL)
	assert.True(t, pets[0].CanBreed)
	assert.Equal(t, domain.RarityEpic, pets[1].Rarity)
}

func TestContractService_ListPetsOwned_AnyFailureFailsList(t *testing.T) {
	l, _, svc := newContractFixture(t)
	l.SeedPet(memory.DefaultAccount, domain.Pet{Name: "Rex", Type: "dog"})
	l.SeedPet(memory.DefaultAccount, domain.Pet{Name: "Mia", Type: "cat"})
	l.FailNext("getPetInfo", errors.New("rpc timeout"))

	_, err := svc.ListPetsOwned(context.Background())
	assert.ErrorContains(t, err, "rpc timeout")
}

func TestContractService_GetPetInfo_NotFound(t *testing.T) {
	_, _, svc := newContractFixture(t)

	_, err := svc.GetPetInfo(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrPetNotFound)
	assert.Equal(t, "pet #99 not found", err.Error())
}

func TestContractService_Adopt(t *testing.T) {
	l, _, svc := newContractFixture(t)
	l.Mint(memory.DefaultAccount, 120)

	id, err := svc.Adopt(context.Background(), domain.AdoptionIntent{Name: "  Rex ", Type: "dog"})
	require.NoError(t, err)

	pet, err := svc.GetPetInfo(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Rex", pet.Name)
	assert.True(t, pet.OwnedBy(memory.DefaultAccount))

	bal, err := svc.GetBalance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(70), bal)
	assert.Equal(t, 1, l.Calls("approve"))
}

func TestContractService_Adopt_InsufficientBalanceSkipsLedgerWrites(t *testing.T) {
	l, _, svc := newContractFixture(t)
	l.Mint(memory.DefaultAccount, 40)

	_, err := svc.Adopt(context.Background(), domain.AdoptionIntent{Name: "Rex", Type: "dog"})
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, domain.InsufficientBalanceMessage("adoption", 50, 40), err.Error())
	assert.Zero(t, l.Calls("approve"))
	assert.Zero(t, l.Calls("adoptPet"))
}

func TestContractService_Adopt_InvalidIntent(t *testing.T) {
	l, _, svc := newContractFixture(t)

	_, err := svc.Adopt(context.Background(), domain.AdoptionIntent{Name: " ", Type: "dog"})
	assert.ErrorIs(t, err, domain.ErrInvalidIntent)
	assert.Zero(t, l.Calls("adoptionFee"))
}

func TestContractService_Adopt_UserRejectsApproval(t *testing.T) {
	l, _, svc := newContractFixture(t)
	l.Mint(memory.DefaultAccount, 100)
	l.FailNext("approve", fmt.Errorf("%w: denied in wallet", domain.ErrUserRejected))

	_, err := svc.Adopt(context.Background(), domain.AdoptionIntent{Name: "Rex", Type: "dog"})
	assert.ErrorIs(t, err, domain.ErrUserRejected)
	assert.Zero(t, l.Calls("adoptPet"))
}

func TestContractService_PreflightBreed(t *testing.T) {
	l, clk, svc := newContractFixture(t)
	ctx := context.Background()
	mine := l.SeedPet(memory.DefaultAccount, domain.Pet{Name: "A", Type: "dog"})
	mine2 := l.SeedPet(memory.DefaultAccount, domain.Pet{Name: "B", Type: "dog"})
	theirs := l.SeedPet(otherAccount, domain.Pet{Name: "C", Type: "dog"})
	cooling := l.SeedPet(memory.DefaultAccount, domain.Pet{Name: "D", Type: "dog", LastBreedTime: clk.Now().Add(-time.Hour)})

	_, err := svc.PreflightBreed(ctx, domain.BreedingIntent{ParentA: mine, ParentB: theirs, ChildName: "X"})
	assert.ErrorIs(t, err, domain.ErrPetNotOwned)

	_, err = svc.PreflightBreed(ctx, domain.BreedingIntent{ParentA: mine, ParentB: cooling, ChildName: "X"})
	require.ErrorIs(t, err, domain.ErrNotBreedable)
	assert.Contains(t, err.Error(), "23h0m0s left")

	_, err = svc.PreflightBreed(ctx, domain.BreedingIntent{ParentA: mine, ParentB: mine, ChildName: "X"})
	assert.ErrorIs(t, err, domain.ErrInvalidIntent)

	l.Mint(memory.DefaultAccount, 60)
	_, err = svc.PreflightBreed(ctx, domain.BreedingIntent{ParentA: mine, ParentB: mine2, ChildName: "X"})
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, domain.InsufficientBalanceMessage("breeding", 100, 60), err.Error())

	clk.Advance(23 * time.Hour)
	l.Mint(memory.DefaultAccount, 40)
	fee, err := svc.PreflightBreed(ctx, domain.BreedingIntent{ParentA: mine2, ParentB: cooling, ChildName: "X"})
	require.NoError(t, err, "cooldown boundary is inclusive")
	assert.Equal(t, uint64(100), fee)
}

func TestContractService_Breed(t *testing.T) {
	l, _, svc := newContractFixture(t)
	ctx := context.Background()
	a := l.SeedPet(memory.DefaultAccount, domain.Pet{Name: "A", Type: "dog", Rarity: domain.RarityRare})
	b := l.SeedPet(memory.DefaultAccount, domain.Pet{Name: "B", Type: "dog"})
	l.Mint(memory.DefaultAccount, 150)

	child, err := svc.Breed(ctx, domain.BreedingIntent{ParentA: a, ParentB: b, ChildName: "Nova"})
	require.NoError(t, err)

	pet, err := svc.GetPetInfo(ctx, child)
	require.NoError(t, err)
	assert.Equal(t, "Nova", pet.Name)
	assert.Equal(t, domain.RarityRare, pet.Rarity)

	parent, err := svc.GetPetInfo(ctx, a)
	require.NoError(t, err)
	assert.False(t, parent.CanBreed)

	ok, err := svc.CanBreed(ctx, a)
	require.NoError(t, err)
	assert.False(t, ok)

	left, err := svc.CooldownLeft(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, left)

	_, err = svc.Breed(ctx, domain.BreedingIntent{ParentA: a, ParentB: b, ChildName: "Again"})
	assert.ErrorIs(t, err, domain.ErrNotBreedable)
	assert.Equal(t, 1, l.Calls("breedPets"))
}

func TestContractService_Breed_RevertSurfacesVerbatim(t *testing.T) {
	l, _, svc := newContractFixture(t)
	a := l.SeedPet(memory.DefaultAccount, domain.Pet{Name: "A", Type: "dog"})
	b := l.SeedPet(memory.DefaultAccount, domain.Pet{Name: "B", Type: "dog"})
	l.Mint(memory.DefaultAccount, 150)
	l.FailNext("breedPets", fmt.Errorf("%w: Breeding paused", domain.ErrExecutionReverted))

	_, err := svc.Breed(context.Background(), domain.BreedingIntent{ParentA: a, ParentB: b, ChildName: "Nova"})
	require.ErrorIs(t, err, domain.ErrExecutionReverted)
	assert.Equal(t, "execution reverted: Breeding paused", Reason(err))
}

func TestContractService_SignIn(t *testing.T) {
	l, clk, svc := newContractFixture(t)
	ctx := context.Background()

	st, err := svc.SignInStatus(ctx)
	require.NoError(t, err)
	assert.True(t, st.CanSignInToday)
	assert.Equal(t, uint64(10), st.BaseReward)
	assert.Equal(t, uint64(50), st.MaxStreakBonus)
	assert.Equal(t, uint64(10), st.NextReward())

	r, err := svc.SignIn(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.SignInReceipt{Reward: 10, Streak: 1}, *r)

	_, err = svc.SignIn(ctx)
	assert.ErrorIs(t, err, domain.ErrAlreadySignedIn)
	assert.Equal(t, 1, l.Calls("signIn"))

	clk.Advance(24 * time.Hour)
	r, err = svc.SignIn(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.SignInReceipt{Reward: 12, Streak: 2}, *r)

	bal, err := svc.GetBalance(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(22), bal)
}

func TestContractService_Transfer(t *testing.T) {
	l, _, svc := newContractFixture(t)
	ctx := context.Background()
	id := l.SeedPet(memory.DefaultAccount, domain.Pet{Name: "Rex", Type: "dog"})
	theirs := l.SeedPet(otherAccount, domain.Pet{Name: "C", Type: "dog"})

	tests := []struct {
		name   string
		intent domain.TransferIntent
		want   error
	}{
		{"missing pet id", domain.TransferIntent{To: otherAccount}, domain.ErrInvalidIntent},
		{"bad recipient", domain.TransferIntent{PetID: id, To: "0x123"}, domain.ErrInvalidIntent},
		{"self", domain.TransferIntent{PetID: id, To: memory.DefaultAccount}, domain.ErrInvalidIntent},
		{"not owned", domain.TransferIntent{PetID: theirs, To: otherAccount}, domain.ErrPetNotOwned},
		{"unknown pet", domain.TransferIntent{PetID: 42, To: otherAccount}, domain.ErrPetNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, svc.Transfer(ctx, tt.intent), tt.want)
		})
	}
	assert.Zero(t, l.Calls("transferFrom"))

	require.NoError(t, svc.Transfer(ctx, domain.TransferIntent{PetID: id, To: otherAccount}))
	assert.Equal(t, otherAccount, l.Owner(id))
}
