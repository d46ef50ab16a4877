// Package memory is an in-process pet ledger. It follows the contract rules the
// gateway relies on (fees, allowances, cooldowns, daily sign-in) so the
// gateway can run and be tested without a node.
package memory

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"sort"
	"strings"
	"sync"
	"time"

	"pet-world-gateway/internal/core/domain"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// Default deployment used when no addresses are configured.
var DefaultAddresses = domain.ContractAddresses{
	domain.ContractPet:         "0x5FbDB2315678afecb367f032d93F642f64180aa3",
	domain.ContractPetCoin:     "0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512",
	domain.ContractPetAdoption: "0x9fE46736679d2D9a65F0992F2272dE9f3c7fa6e0",
	domain.ContractPetBreeding: "0xCf7Ed3AccA5a467e9e704C703E85D0f4F5f6B1b6",
}

// DefaultAccount is the first well-known development account.
const DefaultAccount = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"

const subscriberBuffer = 64

type signInRecord struct {
	last   time.Time
	streak uint64
}

type subscriber struct {
	account string
	ch      chan domain.LedgerEvent
}

// Ledger holds the simulated contract state.
type Ledger struct {
	mu sync.Mutex

	clock    func() time.Time
	offset   time.Duration
	chainID  int64
	cooldown time.Duration
	accounts []string
	offline  bool
	open     int

	adoptionFee *big.Int
	breedingFee *big.Int
	baseReward  uint64
	maxBonus    uint64

	nextID     uint64
	block      uint64
	pets       map[uint64]*domain.Pet
	coins      map[string]*big.Int
	native     map[string]*big.Int
	allowances map[string]map[string]*big.Int
	signIns    map[string]signInRecord

	calls    map[string]int
	failures map[string]error
	gate     chan struct{}

	subs   map[int]subscriber
	nextSk int
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock sets the block time source.
func WithClock(clock func() time.Time) Option {
	return func(l *Ledger) { l.clock = clock }
}

// WithAccounts sets the accounts the simulated wallet authorizes.
func WithAccounts(accounts ...string) Option {
	return func(l *Ledger) { l.accounts = accounts }
}

// WithChainID sets the reported chain id.
func WithChainID(id int64) Option {
	return func(l *Ledger) { l.chainID = id }
}

// WithCooldown sets the breeding cooldown enforced by the breeding contract.
func WithCooldown(d time.Duration) Option {
	return func(l *Ledger) { l.cooldown = d }
}

// WithFees sets the adoption and breeding fees in coins.
func WithFees(adoption, breeding uint64) Option {
	return func(l *Ledger) {
		l.adoptionFee = new(big.Int).SetUint64(adoption)
		l.breedingFee = new(big.Int).SetUint64(breeding)
	}
}

// WithSignInRewards sets the daily base reward and the streak bonus cap.
func WithSignInRewards(base, maxBonus uint64) Option {
	return func(l *Ledger) {
		l.baseReward = base
		l.maxBonus = maxBonus
	}
}

// NewLedger creates an empty ledger.
func NewLedger(opts ...Option) *Ledger {
	l := &Ledger{
		clock:       time.Now,
		chainID:     31337,
		cooldown:    24 * time.Hour,
		accounts:    []string{DefaultAccount},
		adoptionFee: big.NewInt(50),
		breedingFee: big.NewInt(100),
		baseReward:  10,
		maxBonus:    50,
		nextID:      1,
		pets:        make(map[uint64]*domain.Pet),
		coins:       make(map[string]*big.Int),
		native:      make(map[string]*big.Int),
		allowances:  make(map[string]map[string]*big.Int),
		signIns:     make(map[string]signInRecord),
		calls:       make(map[string]int),
		failures:    make(map[string]error),
		subs:        make(map[int]subscriber),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func key(addr string) string {
	return strings.ToLower(addr)
}

func (l *Ledger) now() time.Time {
	return l.clock().Add(l.offset)
}

// Advance moves block time forward.
func (l *Ledger) Advance(d time.Duration) {
	l.mu.Lock()
	l.offset += d
	l.mu.Unlock()
}

// SetOffline makes Connect fail as if no provider were installed.
func (l *Ledger) SetOffline(offline bool) {
	l.mu.Lock()
	l.offline = offline
	l.mu.Unlock()
}

// Mint credits coins to account.
func (l *Ledger) Mint(account string, amount uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.credit(account, new(big.Int).SetUint64(amount))
	l.emit(domain.LedgerEvent{Type: domain.EventCoinTransfer}, account)
}

// Fund sets the native balance of account in wei.
func (l *Ledger) Fund(account string, wei *big.Int) {
	l.mu.Lock()
	l.native[key(account)] = new(big.Int).Set(wei)
	l.mu.Unlock()
}

// SeedPet stores p as owned by owner and returns the assigned id. Rarity and
// timestamps are kept as given.
func (l *Ledger) SeedPet(owner string, p domain.Pet) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.mint(owner, p.Name, p.Type, p, false)
}

// FailNext makes the next call to method return err.
func (l *Ledger) FailNext(method string, err error) {
	l.mu.Lock()
	l.failures[method] = err
	l.mu.Unlock()
}

// Calls reports how many times method was invoked.
func (l *Ledger) Calls(method string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calls[method]
}

// Pause holds every write before confirmation until Resume is called.
func (l *Ledger) Pause() {
	l.mu.Lock()
	if l.gate == nil {
		l.gate = make(chan struct{})
	}
	l.mu.Unlock()
}

// Resume releases writes held by Pause.
func (l *Ledger) Resume() {
	l.mu.Lock()
	if l.gate != nil {
		close(l.gate)
		l.gate = nil
	}
	l.mu.Unlock()
}

// OpenConnections reports provider handles not yet closed.
func (l *Ledger) OpenConnections() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.open
}

// Owner returns the owner of a pet, or "" when it does not exist.
func (l *Ledger) Owner(id uint64) string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if p, ok := l.pets[id]; ok {
		return p.Owner
	}
	return ""
}

// enter records a call and returns an injected failure, if any. Caller holds mu.
func (l *Ledger) enter(method string) error {
	l.calls[method]++
	if err, ok := l.failures[method]; ok {
		delete(l.failures, method)
		return err
	}
	return nil
}

func (l *Ledger) call(method string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enter(method)
}

func revert(reason string) error {
	return fmt.Errorf("%w: %s", domain.ErrExecutionReverted, reason)
}

func (l *Ledger) balance(account string) *big.Int {
	if b, ok := l.coins[key(account)]; ok {
		return b
	}
	return new(big.Int)
}

func (l *Ledger) credit(account string, amount *big.Int) {
	l.coins[key(account)] = new(big.Int).Add(l.balance(account), amount)
}

// spend moves fee from owner to spender's custody using the allowance owner granted.
func (l *Ledger) spend(owner, spender string, fee *big.Int) error {
	allowed := l.allowances[key(owner)][key(spender)]
	if allowed == nil || allowed.Cmp(fee) < 0 {
		return revert("ERC20: insufficient allowance")
	}
	bal := l.balance(owner)
	if bal.Cmp(fee) < 0 {
		return revert("ERC20: transfer amount exceeds balance")
	}
	l.coins[key(owner)] = new(big.Int).Sub(bal, fee)
	l.allowances[key(owner)][key(spender)] = new(big.Int).Sub(allowed, fee)
	return nil
}

// mint creates a pet, rolling its rarity from the DNA when roll is set. Caller holds mu.
func (l *Ledger) mint(owner, name, petType string, base domain.Pet, roll bool) uint64 {
	id := l.nextID
	l.nextID++
	l.block++

	seed := make([]byte, 8)
	binary.BigEndian.PutUint64(seed, id)
	dna := crypto.Keccak256(seed, []byte(name), []byte(petType), []byte(key(owner)))

	p := base
	p.ID = id
	p.Name = name
	p.Type = petType
	p.Owner = owner
	if p.DNA == "" {
		p.DNA = hexutil.Encode(dna)
	}
	if roll {
		p.Rarity = rarityFromDNA(dna)
	}
	if p.BirthTime.IsZero() {
		p.BirthTime = l.now()
	}
	p.Level = domain.LevelFor(p.Experience)
	l.pets[id] = &p
	return id
}

func rarityFromDNA(dna []byte) domain.Rarity {
	switch roll := int(dna[0]) * 100 / 256; {
	case roll < 50:
		return domain.RarityCommon
	case roll < 75:
		return domain.RarityUncommon
	case roll < 90:
		return domain.RarityRare
	case roll < 98:
		return domain.RarityEpic
	default:
		return domain.RarityLegendary
	}
}

func (l *Ledger) petIDs(owner string) []uint64 {
	var ids []uint64
	for id, p := range l.pets {
		if strings.EqualFold(p.Owner, owner) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (l *Ledger) canBreed(p *domain.Pet) bool {
	return domain.CanBreedAt(l.now(), p.LastBreedTime, l.cooldown)
}

// confirm waits for the write gate, if any, without holding mu.
func (l *Ledger) confirm(ctxDone <-chan struct{}) error {
	l.mu.Lock()
	gate := l.gate
	l.mu.Unlock()
	if gate == nil {
		return nil
	}
	select {
	case <-gate:
		return nil
	case <-ctxDone:
		return fmt.Errorf("waiting for confirmation: context done")
	}
}
