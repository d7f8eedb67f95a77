package application

import (
	"sync"

	"github.com/bnema/roster-cli/internal/domain"
)

// ownerLocks serializes roster mutations per owner so the check-then-create
// sequence cannot interleave with another call for the same owner.
type ownerLocks struct {
	mu    sync.Mutex
	locks map[domain.Owner]*sync.Mutex
}

func newOwnerLocks() *ownerLocks {
	return &ownerLocks{locks: map[domain.Owner]*sync.Mutex{}}
}

func (l *ownerLocks) lock(owner domain.Owner) func() {
	l.mu.Lock()
	mu, ok := l.locks[owner]
	if !ok {
		mu = &sync.Mutex{}
		l.locks[owner] = mu
	}
	l.mu.Unlock()

	mu.Lock()
	return mu.Unlock
}
