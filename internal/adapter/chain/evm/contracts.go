package evm

import (
	"context"
	"fmt"
	"math"
	"math/big"
	"strings"
	"time"

	"pet-world-gateway/internal/core/domain"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
)

// contract is one bound contract plus the ABI needed to decode receipts.
type contract struct {
	*backend
	address common.Address
	abi     abi.ABI
	bound   *bind.BoundContract
}

func newContract(b *backend, addr string, parsed abi.ABI) *contract {
	address := common.HexToAddress(addr)
	return &contract{
		backend: b,
		address: address,
		abi:     parsed,
		bound:   bind.NewBoundContract(address, parsed, b.client, b.client, b.client),
	}
}

// call runs a read-only method and returns its outputs.
func (c *contract) call(ctx context.Context, method string, params ...interface{}) ([]interface{}, error) {
	var out []interface{}
	opts := &bind.CallOpts{Context: ctx, From: c.account}
	if err := c.bound.Call(opts, &out, method, params...); err != nil {
		return nil, classify(fmt.Errorf("%s: %w", method, err))
	}
	return out, nil
}

func (c *contract) callBig(ctx context.Context, method string, params ...interface{}) (*big.Int, error) {
	out, err := c.call(ctx, method, params...)
	if err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

func (c *contract) callBool(ctx context.Context, method string, params ...interface{}) (bool, error) {
	out, err := c.call(ctx, method, params...)
	if err != nil {
		return false, err
	}
	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

// send signs and submits a transaction, then blocks until it is mined.
// There is no timeout beyond ctx.
func (c *contract) send(ctx context.Context, method string, params ...interface{}) (*types.Receipt, error) {
	opts, err := bind.NewKeyedTransactorWithChainID(c.key, c.chainID)
	if err != nil {
		return nil, fmt.Errorf("building transactor: %w", err)
	}
	opts.Context = ctx

	tx, err := c.bound.Transact(opts, method, params...)
	if err != nil {
		return nil, classify(fmt.Errorf("%s: %w", method, err))
	}
	c.log.Debug().Str("method", method).Str("tx", tx.Hash().Hex()).Msg("transaction submitted")

	receipt, err := bind.WaitMined(ctx, c.client, tx)
	if err != nil {
		return nil, fmt.Errorf("%s: waiting for receipt: %w", method, err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, revertError(fmt.Sprintf("execution reverted: %s failed in tx %s", method, tx.Hash().Hex()))
	}
	return receipt, nil
}

// idFromReceipt returns the indexed uint256 field of the first matching event
// emitted by this contract.
func (c *contract) idFromReceipt(receipt *types.Receipt, event, field string) (uint64, error) {
	ev, ok := c.abi.Events[event]
	if !ok {
		return 0, fmt.Errorf("unknown event %s", event)
	}

	topicIdx := 0
	for _, in := range ev.Inputs {
		if !in.Indexed {
			continue
		}
		topicIdx++
		if in.Name != field {
			continue
		}
		for _, lg := range receipt.Logs {
			if lg.Address != c.address || len(lg.Topics) <= topicIdx || lg.Topics[0] != ev.ID {
				continue
			}
			return new(big.Int).SetBytes(lg.Topics[topicIdx].Bytes()).Uint64(), nil
		}
		break
	}
	return 0, fmt.Errorf("%w: %s.%s", domain.ErrMissingReceiptData, event, field)
}

type petRegistry struct{ *contract }

func (r *petRegistry) GetPetInfo(ctx context.Context, id uint64) (*domain.Pet, error) {
	out, err := r.call(ctx, "getPetInfo", new(big.Int).SetUint64(id))
	if err != nil {
		return nil, err
	}
	return decodePet(id, out)
}

// decodePet maps getPetInfo outputs onto a Pet. Level is derived from
// experience, not read from the contract.
func decodePet(id uint64, out []interface{}) (*domain.Pet, error) {
	if len(out) != 10 {
		return nil, fmt.Errorf("getPetInfo: expected 10 outputs, got %d", len(out))
	}
	rarity := domain.Rarity(*abi.ConvertType(out[2], new(uint8)).(*uint8))
	if !rarity.Valid() {
		return nil, fmt.Errorf("getPetInfo: unknown rarity %d", rarity)
	}
	experience := *abi.ConvertType(out[4], new(*big.Int)).(**big.Int)
	birth := *abi.ConvertType(out[5], new(*big.Int)).(**big.Int)
	lastBreed := *abi.ConvertType(out[6], new(*big.Int)).(**big.Int)
	owner := *abi.ConvertType(out[8], new(common.Address)).(*common.Address)
	dna := *abi.ConvertType(out[9], new(*big.Int)).(**big.Int)

	p := &domain.Pet{
		ID:         id,
		Name:       *abi.ConvertType(out[0], new(string)).(*string),
		Type:       *abi.ConvertType(out[1], new(string)).(*string),
		Rarity:     rarity,
		Experience: experience.Uint64(),
		BirthTime:  unixTime(birth),
		CanBreed:   *abi.ConvertType(out[7], new(bool)).(*bool),
		Owner:      owner.Hex(),
		DNA:        hexutil.EncodeBig(dna),
	}
	p.Level = domain.LevelFor(p.Experience)
	p.LastBreedTime = unixTime(lastBreed)
	return p, nil
}

func unixTime(v *big.Int) time.Time {
	if v == nil || v.Sign() == 0 {
		return time.Time{}
	}
	return time.Unix(v.Int64(), 0).UTC()
}

// maxPrealloc bounds slice capacity taken from a ledger-reported count.
const maxPrealloc = 1024

func (r *petRegistry) ListPetIDs(ctx context.Context, owner string) ([]uint64, error) {
	ownerAddr := common.HexToAddress(owner)
	count, err := r.callBig(ctx, "balanceOf", ownerAddr)
	if err != nil {
		return nil, err
	}
	if !count.IsUint64() {
		return nil, fmt.Errorf("balanceOf returned %s pets", count)
	}
	n := count.Uint64()
	ids := make([]uint64, 0, min(n, maxPrealloc))
	for i := uint64(0); i < n; i++ {
		id, err := r.callBig(ctx, "tokenOfOwnerByIndex", ownerAddr, new(big.Int).SetUint64(i))
		if err != nil {
			return nil, err
		}
		ids = append(ids, id.Uint64())
	}
	return ids, nil
}

func (r *petRegistry) Transfer(ctx context.Context, id uint64, to string) error {
	if !common.IsHexAddress(to) {
		return fmt.Errorf("%w: invalid recipient %q", domain.ErrInvalidIntent, to)
	}
	_, err := r.send(ctx, "transferFrom", r.account, common.HexToAddress(to), new(big.Int).SetUint64(id))
	return err
}

type coinLedger struct{ *contract }

func (c *coinLedger) GetBalance(ctx context.Context, account string) (*big.Int, error) {
	return c.callBig(ctx, "getBalance", common.HexToAddress(account))
}

func (c *coinLedger) SignInInfo(ctx context.Context, account string) (time.Time, uint64, error) {
	out, err := c.call(ctx, "getSignInInfo", common.HexToAddress(account))
	if err != nil {
		return time.Time{}, 0, err
	}
	last := *abi.ConvertType(out[0], new(*big.Int)).(**big.Int)
	streak := *abi.ConvertType(out[1], new(*big.Int)).(**big.Int)
	return unixTime(last), streak.Uint64(), nil
}

func (c *coinLedger) CanSignInToday(ctx context.Context, account string) (bool, error) {
	return c.callBool(ctx, "canSignInToday", common.HexToAddress(account))
}

func (c *coinLedger) RewardSchedule(ctx context.Context) (uint64, uint64, error) {
	base, err := c.callBig(ctx, "baseSignInReward")
	if err != nil {
		return 0, 0, err
	}
	maxBonus, err := c.callBig(ctx, "maxStreakBonus")
	if err != nil {
		return 0, 0, err
	}
	return base.Uint64(), maxBonus.Uint64(), nil
}

func (c *coinLedger) Approve(ctx context.Context, spender string, amount *big.Int) error {
	_, err := c.send(ctx, "approve", common.HexToAddress(spender), amount)
	return err
}

func (c *coinLedger) SignIn(ctx context.Context) (*domain.SignInReceipt, error) {
	receipt, err := c.send(ctx, "signIn")
	if err != nil {
		return nil, err
	}
	return c.signInFromReceipt(receipt)
}

func (c *coinLedger) signInFromReceipt(receipt *types.Receipt) (*domain.SignInReceipt, error) {
	ev := c.abi.Events["SignedIn"]
	for _, lg := range receipt.Logs {
		if lg.Address != c.address || len(lg.Topics) == 0 || lg.Topics[0] != ev.ID {
			continue
		}
		values, err := ev.Inputs.NonIndexed().Unpack(lg.Data)
		if err != nil {
			return nil, fmt.Errorf("decoding SignedIn: %w", err)
		}
		reward := *abi.ConvertType(values[0], new(*big.Int)).(**big.Int)
		streak := *abi.ConvertType(values[1], new(*big.Int)).(**big.Int)
		return &domain.SignInReceipt{Reward: reward.Uint64(), Streak: streak.Uint64()}, nil
	}
	return nil, fmt.Errorf("%w: SignedIn", domain.ErrMissingReceiptData)
}

type adoptionDesk struct{ *contract }

func (a *adoptionDesk) Address() string { return a.address.Hex() }

func (a *adoptionDesk) AdoptionFee(ctx context.Context) (*big.Int, error) {
	return a.callBig(ctx, "adoptionFee")
}

func (a *adoptionDesk) AdoptPet(ctx context.Context, name, petType string) (uint64, error) {
	receipt, err := a.send(ctx, "adoptPet", name, petType)
	if err != nil {
		return 0, err
	}
	return a.idFromReceipt(receipt, "PetAdopted", "petId")
}

type breedingLab struct{ *contract }

func (b *breedingLab) Address() string { return b.address.Hex() }

func (b *breedingLab) BreedingFee(ctx context.Context) (*big.Int, error) {
	return b.callBig(ctx, "breedingFee")
}

func (b *breedingLab) CanBreed(ctx context.Context, id uint64) (bool, error) {
	return b.callBool(ctx, "canBreed", new(big.Int).SetUint64(id))
}

func (b *breedingLab) CooldownTimeLeft(ctx context.Context, id uint64) (time.Duration, error) {
	secs, err := b.callBig(ctx, "getCooldownTimeLeft", new(big.Int).SetUint64(id))
	if err != nil {
		return 0, err
	}
	return secondsToDuration(secs), nil
}

func (b *breedingLab) BreedPets(ctx context.Context, parentA, parentB uint64, childName string) (uint64, error) {
	receipt, err := b.send(ctx, "breedPets",
		new(big.Int).SetUint64(parentA), new(big.Int).SetUint64(parentB), strings.TrimSpace(childName))
	if err != nil {
		return 0, err
	}
	return b.idFromReceipt(receipt, "PetsBreed", "childId")
}

// secondsToDuration converts a ledger second count, saturating at the
// largest Duration.
func secondsToDuration(secs *big.Int) time.Duration {
	switch {
	case secs.Sign() <= 0:
		return 0
	case !secs.IsInt64() || secs.Int64() > math.MaxInt64/int64(time.Second):
		return time.Duration(math.MaxInt64)
	default:
		return time.Duration(secs.Int64()) * time.Second
	}
}
