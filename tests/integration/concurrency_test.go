package integration

import (
	"net/http"
	"sync"
	"testing"

	"pet-world-gateway/internal/adapter/chain/memory"
	"pet-world-gateway/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentReads issues many overlapping reads against one session.
// Every read must succeed and agree on the balance.
func TestConcurrentReads(t *testing.T) {
	app := newTestApp(t, memory.DefaultAddresses)
	app.ledger.Mint(memory.DefaultAccount, 75)
	for i := 0; i < 5; i++ {
		app.ledger.SeedPet(memory.DefaultAccount, domain.Pet{Name: "Pup", Type: "dog", BirthTime: app.clock.Now()})
	}
	token := app.connect(t)

	const workers = 40
	var wg sync.WaitGroup
	statuses := make(chan int, workers*2)
	balances := make(chan uint64, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r := app.do(t, http.MethodGet, "/api/v1/coins/balance", token, nil)
			statuses <- r.status
			if r.status == http.StatusOK {
				var bal struct {
					Coins uint64 `json:"coins"`
				}
				r.decode(t, &bal)
				balances <- bal.Coins
			}

			r = app.do(t, http.MethodPost, "/api/v1/pets/refresh", token, nil)
			statuses <- r.status
		}()
	}
	wg.Wait()
	close(statuses)
	close(balances)

	for s := range statuses {
		assert.Equal(t, http.StatusOK, s)
	}
	for b := range balances {
		assert.Equal(t, uint64(75), b)
	}
	assert.Len(t, app.pets(t, token), 5)
}

// TestReconnectDuringReads reconnects repeatedly while readers run. Readers
// may see a stale token but never an internal error, and exactly one provider
// handle stays open at the end.
func TestReconnectDuringReads(t *testing.T) {
	app := newTestApp(t, memory.DefaultAddresses)
	app.ledger.Mint(memory.DefaultAccount, 10)
	token := app.connect(t)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = map[int]int{}
		stop = make(chan struct{})
	)

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				r := app.do(t, http.MethodGet, "/api/v1/coins/balance", token, nil)
				mu.Lock()
				seen[r.status]++
				mu.Unlock()
			}
		}()
	}

	var last string
	for i := 0; i < 5; i++ {
		last = app.connect(t)
	}
	close(stop)
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.NotZero(t, seen[http.StatusOK]+seen[http.StatusUnauthorized])
	assert.Zero(t, seen[http.StatusInternalServerError])

	assert.Equal(t, 1, app.ledger.OpenConnections())
	r := app.do(t, http.MethodGet, "/api/v1/state", last, nil)
	require.Equal(t, http.StatusOK, r.status)
}

// TestAdoption_SimultaneousSubmits fires two adoptions at once. Only one may
// be accepted; the other is refused before any write reaches the ledger.
func TestAdoption_SimultaneousSubmits(t *testing.T) {
	app := newTestApp(t, memory.DefaultAddresses)
	app.ledger.Mint(memory.DefaultAccount, 500)
	token := app.connect(t)
	app.ledger.Pause()

	var wg sync.WaitGroup
	replies := make(chan reply, 2)
	for _, name := range []string{"Rex", "Max"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			replies <- app.do(t, http.MethodPost, "/api/v1/adoption", token, map[string]string{"name": name, "type": "dog"})
		}()
	}
	wg.Wait()
	close(replies)

	seen := map[int]int{}
	for r := range replies {
		seen[r.status]++
		if r.status == http.StatusConflict {
			assert.Equal(t, "PRE_007", r.body.ErrorCode)
		}
	}
	assert.Equal(t, map[int]int{http.StatusAccepted: 1, http.StatusConflict: 1}, seen)

	app.ledger.Resume()
	app.bg.Wait()
	assert.Equal(t, "succeeded", app.waitAction(t, token, domain.ActionAdopt).Outcome)
	assert.Equal(t, 1, app.ledger.Calls("adoptPet"))
	require.Len(t, app.pets(t, token), 1)
}
