package memory

import (
	"context"
	"math/big"
	"strings"
	"time"

	"pet-world-gateway/internal/core/domain"
)

type petRegistry struct{ binding }

func (r *petRegistry) GetPetInfo(_ context.Context, id uint64) (*domain.Pet, error) {
	l := r.ledger
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.enter("getPetInfo"); err != nil {
		return nil, err
	}
	p, ok := l.pets[id]
	if !ok {
		return nil, revert("ERC721: invalid token ID")
	}
	out := *p
	out.CanBreed = l.canBreed(p)
	return &out, nil
}

func (r *petRegistry) ListPetIDs(_ context.Context, owner string) ([]uint64, error) {
	l := r.ledger
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.enter("balanceOf"); err != nil {
		return nil, err
	}
	return l.petIDs(owner), nil
}

func (r *petRegistry) Transfer(ctx context.Context, id uint64, to string) error {
	l := r.ledger
	if err := l.call("transferFrom"); err != nil {
		return err
	}
	if err := l.confirm(ctx.Done()); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	p, ok := l.pets[id]
	if !ok {
		return revert("ERC721: invalid token ID")
	}
	if !strings.EqualFold(p.Owner, r.account) {
		return revert("ERC721: caller is not token owner or approved")
	}
	from := p.Owner
	p.Owner = to
	l.emit(domain.LedgerEvent{Type: domain.EventPetTransfer, PetID: id}, from, to)
	return nil
}

type coinLedger struct{ binding }

func (c *coinLedger) GetBalance(_ context.Context, account string) (*big.Int, error) {
	l := c.ledger
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.enter("getBalance"); err != nil {
		return nil, err
	}
	return new(big.Int).Set(l.balance(account)), nil
}

func (c *coinLedger) SignInInfo(_ context.Context, account string) (time.Time, uint64, error) {
	l := c.ledger
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.enter("getSignInInfo"); err != nil {
		return time.Time{}, 0, err
	}
	rec := l.signIns[key(account)]
	return rec.last, rec.streak, nil
}

func (c *coinLedger) CanSignInToday(_ context.Context, account string) (bool, error) {
	l := c.ledger
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.enter("canSignInToday"); err != nil {
		return false, err
	}
	return l.canSignIn(account), nil
}

func (c *coinLedger) RewardSchedule(_ context.Context) (uint64, uint64, error) {
	l := c.ledger
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.enter("rewardSchedule"); err != nil {
		return 0, 0, err
	}
	return l.baseReward, l.maxBonus, nil
}

func (c *coinLedger) Approve(ctx context.Context, spender string, amount *big.Int) error {
	l := c.ledger
	if err := l.call("approve"); err != nil {
		return err
	}
	if err := l.confirm(ctx.Done()); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	owner := key(c.account)
	if l.allowances[owner] == nil {
		l.allowances[owner] = make(map[string]*big.Int)
	}
	l.allowances[owner][key(spender)] = new(big.Int).Set(amount)
	return nil
}

func (c *coinLedger) SignIn(ctx context.Context) (*domain.SignInReceipt, error) {
	l := c.ledger
	if err := l.call("signIn"); err != nil {
		return nil, err
	}
	if err := l.confirm(ctx.Done()); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.canSignIn(c.account) {
		return nil, revert("Already signed in today")
	}

	now := l.now()
	rec := l.signIns[key(c.account)]
	reward := domain.SignInReward(l.baseReward, rec.streak, l.maxBonus)
	if !rec.last.IsZero() && domain.SameDay(rec.last, now.Add(-24*time.Hour), time.UTC) {
		rec.streak++
	} else {
		rec.streak = 1
	}
	rec.last = now
	l.signIns[key(c.account)] = rec

	l.credit(c.account, new(big.Int).SetUint64(reward))
	l.emit(domain.LedgerEvent{Type: domain.EventSignedIn}, c.account)
	return &domain.SignInReceipt{Reward: reward, Streak: rec.streak}, nil
}

// canSignIn applies the contract's UTC day boundary. Caller holds mu.
func (l *Ledger) canSignIn(account string) bool {
	rec, ok := l.signIns[key(account)]
	if !ok || rec.last.IsZero() {
		return true
	}
	return !domain.SameDay(rec.last, l.now(), time.UTC)
}

type adoptionDesk struct{ binding }

func (a *adoptionDesk) Address() string {
	return a.addrs[domain.ContractPetAdoption]
}

func (a *adoptionDesk) AdoptionFee(_ context.Context) (*big.Int, error) {
	l := a.ledger
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.enter("adoptionFee"); err != nil {
		return nil, err
	}
	return new(big.Int).Set(l.adoptionFee), nil
}

func (a *adoptionDesk) AdoptPet(ctx context.Context, name, petType string) (uint64, error) {
	l := a.ledger
	if err := l.call("adoptPet"); err != nil {
		return 0, err
	}
	if err := l.confirm(ctx.Done()); err != nil {
		return 0, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.spend(a.account, a.Address(), l.adoptionFee); err != nil {
		return 0, err
	}
	id := l.mint(a.account, name, petType, domain.Pet{}, true)
	l.emit(domain.LedgerEvent{Type: domain.EventPetAdopted, PetID: id}, a.account)
	return id, nil
}

type breedingLab struct{ binding }

func (b *breedingLab) Address() string {
	return b.addrs[domain.ContractPetBreeding]
}

func (b *breedingLab) BreedingFee(_ context.Context) (*big.Int, error) {
	l := b.ledger
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.enter("breedingFee"); err != nil {
		return nil, err
	}
	return new(big.Int).Set(l.breedingFee), nil
}

func (b *breedingLab) CanBreed(_ context.Context, id uint64) (bool, error) {
	l := b.ledger
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.enter("canBreed"); err != nil {
		return false, err
	}
	p, ok := l.pets[id]
	if !ok {
		return false, revert("ERC721: invalid token ID")
	}
	return l.canBreed(p), nil
}

func (b *breedingLab) CooldownTimeLeft(_ context.Context, id uint64) (time.Duration, error) {
	l := b.ledger
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.enter("getCooldownTimeLeft"); err != nil {
		return 0, err
	}
	p, ok := l.pets[id]
	if !ok {
		return 0, revert("ERC721: invalid token ID")
	}
	// Whole seconds, as the contract reports.
	return domain.CooldownLeft(l.now(), p.LastBreedTime, l.cooldown).Truncate(time.Second), nil
}

func (b *breedingLab) BreedPets(ctx context.Context, parentA, parentB uint64, childName string) (uint64, error) {
	l := b.ledger
	if err := l.call("breedPets"); err != nil {
		return 0, err
	}
	if err := l.confirm(ctx.Done()); err != nil {
		return 0, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if parentA == parentB {
		return 0, revert("Cannot breed a pet with itself")
	}
	pa, okA := l.pets[parentA]
	pb, okB := l.pets[parentB]
	if !okA || !okB {
		return 0, revert("ERC721: invalid token ID")
	}
	if !strings.EqualFold(pa.Owner, b.account) || !strings.EqualFold(pb.Owner, b.account) {
		return 0, revert("Not the owner of both pets")
	}
	if !l.canBreed(pa) || !l.canBreed(pb) {
		return 0, revert("Pet is still in cooldown")
	}
	if err := l.spend(b.account, b.Address(), l.breedingFee); err != nil {
		return 0, err
	}

	now := l.now()
	pa.LastBreedTime = now
	pb.LastBreedTime = now
	child := domain.Pet{Rarity: max(pa.Rarity, pb.Rarity)}
	id := l.mint(b.account, childName, pa.Type, child, false)
	l.emit(domain.LedgerEvent{Type: domain.EventPetsBred, PetID: id}, b.account)
	return id, nil
}
