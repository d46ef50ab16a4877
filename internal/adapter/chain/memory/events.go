package memory

import (
	"context"
	"strings"

	"pet-world-gateway/internal/core/domain"
)

// emit delivers e to subscribers watching any of the involved accounts.
// Caller holds mu. Slow subscribers drop events; every event only triggers a
// re-fetch, so a later event or poll recovers the state.
func (l *Ledger) emit(e domain.LedgerEvent, involved ...string) {
	l.block++
	e.Block = l.block
	for _, sub := range l.subs {
		for _, acct := range involved {
			if acct != "" && strings.EqualFold(sub.account, acct) {
				select {
				case sub.ch <- e:
				default:
				}
				break
			}
		}
	}
}

type eventFeed struct {
	ledger *Ledger
}

// Subscribe streams events involving account until ctx is cancelled.
func (f *eventFeed) Subscribe(ctx context.Context, account string) (<-chan domain.LedgerEvent, error) {
	l := f.ledger
	l.mu.Lock()
	if err := l.enter("subscribe"); err != nil {
		l.mu.Unlock()
		return nil, err
	}
	id := l.nextSk
	l.nextSk++
	ch := make(chan domain.LedgerEvent, subscriberBuffer)
	l.subs[id] = subscriber{account: account, ch: ch}
	l.mu.Unlock()

	go func() {
		<-ctx.Done()
		l.mu.Lock()
		delete(l.subs, id)
		close(ch)
		l.mu.Unlock()
	}()
	return ch, nil
}

// Subscribers reports the number of open subscriptions.
func (l *Ledger) Subscribers() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.subs)
}
