package services

import "sync"

// remittanceGuard is the reentrancy lock of the escrow protocol: a
// per-remittance mutual exclusion held for the full duration of a mutating
// operation, including any outbound value transfer. An outbound transfer can
// hand control to the receiving party, and a re-entrant call from there
// blocks here until the first operation has fully committed or aborted, after
// which it fails the terminal-state checks instead of observing partial
// state.
type remittanceGuard struct {
	mu    sync.Mutex
	locks map[uint64]*sync.Mutex
}

func newRemittanceGuard() *remittanceGuard {
	return &remittanceGuard{
		locks: make(map[uint64]*sync.Mutex),
	}
}

// Lock acquires the mutex for the given remittance id and returns the
// release function. Callers must release on every exit path. Entries are
// retained for the life of the process; remittances are never deleted, so
// the map is bounded by the registry size.
func (g *remittanceGuard) Lock(id uint64) func() {
	g.mu.Lock()
	lock, ok := g.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		g.locks[id] = lock
	}
	g.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
