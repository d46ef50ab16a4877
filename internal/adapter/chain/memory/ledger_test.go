package memory

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"pet-world-gateway/internal/core/domain"
	"pet-world-gateway/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, opts ...Option) (*Ledger, *ports.Contracts) {
	t.Helper()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	opts = append([]Option{WithClock(func() time.Time { return base })}, opts...)
	l := NewLedger(opts...)

	conn, err := NewConnector(l).Connect(context.Background())
	require.NoError(t, err)
	t.Cleanup(conn.Close)

	c, err := conn.Contracts(DefaultAddresses, DefaultAccount)
	require.NoError(t, err)
	return l, c
}

func approveAndAdopt(t *testing.T, c *ports.Contracts, name string) uint64 {
	t.Helper()
	ctx := context.Background()
	fee, err := c.Adoption.AdoptionFee(ctx)
	require.NoError(t, err)
	require.NoError(t, c.Coin.Approve(ctx, c.Adoption.Address(), fee))
	id, err := c.Adoption.AdoptPet(ctx, name, "cat")
	require.NoError(t, err)
	return id
}

func TestConnector_Offline(t *testing.T) {
	l := NewLedger()
	l.SetOffline(true)

	_, err := NewConnector(l).Connect(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoProvider)
}

func TestConnection_ContractsRequiresAddresses(t *testing.T) {
	l := NewLedger()
	conn, err := NewConnector(l).Connect(context.Background())
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Contracts(domain.ContractAddresses{domain.ContractPet: DefaultAddresses[domain.ContractPet]}, DefaultAccount)
	assert.ErrorIs(t, err, domain.ErrContractsMissing)
}

func TestConnection_CloseIsIdempotent(t *testing.T) {
	l := NewLedger()
	conn, err := NewConnector(l).Connect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, l.OpenConnections())

	conn.Close()
	conn.Close()
	assert.Equal(t, 0, l.OpenConnections())
}

func TestAdoptPet_RequiresAllowance(t *testing.T) {
	l, c := setup(t, WithFees(50, 100))
	l.Mint(DefaultAccount, 200)

	_, err := c.Adoption.AdoptPet(context.Background(), "Rex", "dog")
	require.ErrorIs(t, err, domain.ErrExecutionReverted)
	assert.Contains(t, err.Error(), "insufficient allowance")
}

func TestAdoptPet_ChargesFeeAndMints(t *testing.T) {
	l, c := setup(t, WithFees(50, 100))
	l.Mint(DefaultAccount, 200)
	ctx := context.Background()

	id := approveAndAdopt(t, c, "Rex")
	assert.Equal(t, uint64(1), id)

	bal, err := c.Coin.GetBalance(ctx, DefaultAccount)
	require.NoError(t, err)
	assert.Equal(t, int64(150), bal.Int64())

	pet, err := c.Pets.GetPetInfo(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Rex", pet.Name)
	assert.Equal(t, DefaultAccount, pet.Owner)
	assert.True(t, pet.Rarity.Valid())
	assert.NotEmpty(t, pet.DNA)

	ids, err := c.Pets.ListPetIDs(ctx, DefaultAccount)
	require.NoError(t, err)
	assert.Equal(t, []uint64{id}, ids)
}

func TestAdoptPet_InsufficientBalance(t *testing.T) {
	l, c := setup(t, WithFees(50, 100))
	l.Mint(DefaultAccount, 40)
	ctx := context.Background()

	require.NoError(t, c.Coin.Approve(ctx, c.Adoption.Address(), big.NewInt(50)))
	_, err := c.Adoption.AdoptPet(ctx, "Rex", "dog")
	require.ErrorIs(t, err, domain.ErrExecutionReverted)
	assert.Contains(t, err.Error(), "exceeds balance")
}

func TestBreedPets(t *testing.T) {
	l, c := setup(t, WithFees(10, 20), WithCooldown(time.Hour))
	l.Mint(DefaultAccount, 1000)
	ctx := context.Background()

	a := approveAndAdopt(t, c, "A")
	b := approveAndAdopt(t, c, "B")

	require.NoError(t, c.Coin.Approve(ctx, c.Breeding.Address(), big.NewInt(20)))
	child, err := c.Breeding.BreedPets(ctx, a, b, "Nova")
	require.NoError(t, err)
	assert.NotEqual(t, a, child)
	assert.NotEqual(t, b, child)

	ok, err := c.Breeding.CanBreed(ctx, a)
	require.NoError(t, err)
	assert.False(t, ok, "parent enters cooldown")

	left, err := c.Breeding.CooldownTimeLeft(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, left)

	require.NoError(t, c.Coin.Approve(ctx, c.Breeding.Address(), big.NewInt(20)))
	_, err = c.Breeding.BreedPets(ctx, a, b, "Again")
	require.ErrorIs(t, err, domain.ErrExecutionReverted)
	assert.Contains(t, err.Error(), "cooldown")

	l.Advance(time.Hour)
	ok, err = c.Breeding.CanBreed(ctx, a)
	require.NoError(t, err)
	assert.True(t, ok, "cooldown boundary is inclusive")
}

func TestBreedPets_NotOwner(t *testing.T) {
	l, c := setup(t)
	other := "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
	a := l.SeedPet(DefaultAccount, domain.Pet{Name: "A", Type: "cat"})
	b := l.SeedPet(other, domain.Pet{Name: "B", Type: "cat"})

	_, err := c.Breeding.BreedPets(context.Background(), a, b, "Kit")
	require.ErrorIs(t, err, domain.ErrExecutionReverted)
	assert.Contains(t, err.Error(), "owner")
}

func TestSignIn_DailyAndStreak(t *testing.T) {
	l, c := setup(t, WithSignInRewards(10, 50))
	ctx := context.Background()

	rcpt, err := c.Coin.SignIn(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), rcpt.Reward)
	assert.Equal(t, uint64(1), rcpt.Streak)

	can, err := c.Coin.CanSignInToday(ctx, DefaultAccount)
	require.NoError(t, err)
	assert.False(t, can)

	_, err = c.Coin.SignIn(ctx)
	require.ErrorIs(t, err, domain.ErrExecutionReverted)

	l.Advance(24 * time.Hour)
	rcpt, err = c.Coin.SignIn(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(12), rcpt.Reward)
	assert.Equal(t, uint64(2), rcpt.Streak)

	last, streak, err := c.Coin.SignInInfo(ctx, DefaultAccount)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), streak)
	assert.False(t, last.IsZero())

	bal, err := c.Coin.GetBalance(ctx, DefaultAccount)
	require.NoError(t, err)
	assert.Equal(t, int64(22), bal.Int64())
}

func TestSignIn_StreakResetsAfterGap(t *testing.T) {
	l, c := setup(t)
	ctx := context.Background()

	_, err := c.Coin.SignIn(ctx)
	require.NoError(t, err)
	l.Advance(72 * time.Hour)

	rcpt, err := c.Coin.SignIn(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), rcpt.Streak)
}

func TestTransfer(t *testing.T) {
	l, c := setup(t)
	to := "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
	id := l.SeedPet(DefaultAccount, domain.Pet{Name: "A", Type: "cat"})

	require.NoError(t, c.Pets.Transfer(context.Background(), id, to))
	assert.Equal(t, to, l.Owner(id))

	err := c.Pets.Transfer(context.Background(), id, DefaultAccount)
	assert.ErrorIs(t, err, domain.ErrExecutionReverted)
}

func TestFailNextAndCalls(t *testing.T) {
	l, c := setup(t)
	l.FailNext("adoptPet", domain.ErrUserRejected)

	_, err := c.Adoption.AdoptPet(context.Background(), "Rex", "dog")
	assert.ErrorIs(t, err, domain.ErrUserRejected)
	assert.Equal(t, 1, l.Calls("adoptPet"))
	assert.Equal(t, 0, l.Calls("approve"))
}

func TestPauseHoldsWrites(t *testing.T) {
	l, c := setup(t)
	l.Pause()

	done := make(chan error, 1)
	go func() {
		_, err := c.Coin.SignIn(context.Background())
		done <- err
	}()

	select {
	case <-done:
		t.Fatal("write confirmed while paused")
	case <-time.After(50 * time.Millisecond):
	}

	l.Resume()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("write not released")
	}
}

func TestPause_ContextCancel(t *testing.T) {
	l, c := setup(t)
	l.Pause()
	defer l.Resume()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Adoption.AdoptPet(ctx, "Rex", "dog")
	assert.Error(t, err)
}

func TestSubscribe_ScopedToAccount(t *testing.T) {
	l, c := setup(t)
	other := "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"

	ctx, cancel := context.WithCancel(context.Background())
	events, err := c.Events.Subscribe(ctx, DefaultAccount)
	require.NoError(t, err)

	l.Mint(other, 10)
	l.Mint(DefaultAccount, 10)

	select {
	case e := <-events:
		assert.Equal(t, domain.EventCoinTransfer, e.Type)
		assert.NotZero(t, e.Block)
	case <-time.After(time.Second):
		t.Fatal("no event delivered")
	}

	select {
	case e := <-events:
		t.Fatalf("unexpected event %+v", e)
	default:
	}

	cancel()
	assert.Eventually(t, func() bool { return l.Subscribers() == 0 }, time.Second, 5*time.Millisecond)
	_, open := <-events
	assert.False(t, open)
}

func TestSubscribe_Failure(t *testing.T) {
	l, c := setup(t)
	l.FailNext("subscribe", errors.New("filter not supported"))

	_, err := c.Events.Subscribe(context.Background(), DefaultAccount)
	assert.Error(t, err)
}

func TestHealthCheck(t *testing.T) {
	l := NewLedger()
	h := NewHealthCheck(l)
	assert.Equal(t, "chain", h.Name())
	assert.NoError(t, h.Ping(context.Background()))

	l.SetOffline(true)
	assert.ErrorIs(t, h.Ping(context.Background()), domain.ErrNoProvider)
}
