package evm

import (
	"context"
	"math/big"
	"time"

	"pet-world-gateway/internal/core/domain"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog"
)

// logSource is the part of ethclient the watcher polls.
type logSource interface {
	BlockNumber(ctx context.Context) (uint64, error)
	FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error)
}

// eventWatcher implements ports.LedgerEvents by polling eth_getLogs. HTTP
// endpoints have no push subscriptions, so polling works on every transport.
type eventWatcher struct {
	client   logSource
	poll     time.Duration
	pet      common.Address
	coin     common.Address
	adoption common.Address
	breeding common.Address
	log      zerolog.Logger
}

// Subscribe starts polling from the current head.
func (w *eventWatcher) Subscribe(ctx context.Context, account string) (<-chan domain.LedgerEvent, error) {
	head, err := w.client.BlockNumber(ctx)
	if err != nil {
		return nil, classify(err)
	}

	acct := common.HexToAddress(account)
	ch := make(chan domain.LedgerEvent, 64)
	go w.run(ctx, acct, head, ch)
	return ch, nil
}

func (w *eventWatcher) run(ctx context.Context, acct common.Address, last uint64, ch chan<- domain.LedgerEvent) {
	defer close(ch)
	ticker := time.NewTicker(w.poll)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		head, err := w.client.BlockNumber(ctx)
		if err != nil {
			w.log.Warn().Err(err).Msg("event poll: reading head failed")
			continue
		}
		if head <= last {
			continue
		}

		logs, err := w.client.FilterLogs(ctx, ethereum.FilterQuery{
			FromBlock: new(big.Int).SetUint64(last + 1),
			ToBlock:   new(big.Int).SetUint64(head),
			Addresses: []common.Address{w.pet, w.coin, w.adoption, w.breeding},
		})
		if err != nil {
			w.log.Warn().Err(err).Uint64("from", last+1).Uint64("to", head).Msg("event poll: filter logs failed")
			continue
		}
		last = head

		for _, lg := range logs {
			e, ok := w.decode(lg, acct)
			if !ok {
				continue
			}
			select {
			case ch <- e:
			case <-ctx.Done():
				return
			}
		}
	}
}

// decode maps a raw log to a ledger event if it involves acct.
func (w *eventWatcher) decode(lg types.Log, acct common.Address) (domain.LedgerEvent, bool) {
	if lg.Removed || len(lg.Topics) < 2 || !involves(lg, acct) {
		return domain.LedgerEvent{}, false
	}

	e := domain.LedgerEvent{Block: lg.BlockNumber, TxHash: lg.TxHash.Hex()}
	topic := lg.Topics[0]
	switch {
	case lg.Address == w.coin && topic == petCoinABI.Events["Transfer"].ID:
		e.Type = domain.EventCoinTransfer
	case lg.Address == w.coin && topic == petCoinABI.Events["SignedIn"].ID:
		e.Type = domain.EventSignedIn
	case lg.Address == w.adoption && topic == petAdoptionABI.Events["PetAdopted"].ID:
		e.Type = domain.EventPetAdopted
		e.PetID = topicUint(lg, 2)
	case lg.Address == w.breeding && topic == petBreedingABI.Events["PetsBreed"].ID:
		e.Type = domain.EventPetsBred
		e.PetID = topicUint(lg, 2)
	case lg.Address == w.pet && topic == petABI.Events["Transfer"].ID:
		e.Type = domain.EventPetTransfer
		e.PetID = topicUint(lg, 3)
	default:
		return domain.LedgerEvent{}, false
	}
	return e, true
}

// involves reports whether acct is one of the address topics (1 or 2).
func involves(lg types.Log, acct common.Address) bool {
	want := common.BytesToHash(acct.Bytes())
	for i := 1; i < len(lg.Topics) && i <= 2; i++ {
		if lg.Topics[i] == want {
			return true
		}
	}
	return false
}

func topicUint(lg types.Log, i int) uint64 {
	if len(lg.Topics) <= i {
		return 0
	}
	return new(big.Int).SetBytes(lg.Topics[i].Bytes()).Uint64()
}
