package service

import (
	"sync"
	"sync/atomic"

	"hidegrade/internal/services/api/analytics/domain"
)

// Board keeps the latest published result per owner
// refreshes take a ticket before fetching and only the highest ticket seen for an owner may publish
type Board struct {
	seq atomic.Uint64

	mu    sync.RWMutex
	state map[string]domain.Published
}

// NewBoard returns an empty board
func NewBoard() *Board { return &Board{state: map[string]domain.Published{}} }

// Ticket reserves the next generation
func (b *Board) Ticket() uint64 { return b.seq.Add(1) }

// Publish stores p unless a newer generation for owner is already stored
func (b *Board) Publish(owner string, p domain.Published) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if cur, ok := b.state[owner]; ok && cur.Generation > p.Generation {
		return false
	}
	b.state[owner] = p
	return true
}

// Latest returns the stored entry for owner
func (b *Board) Latest(owner string) (domain.Published, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	p, ok := b.state[owner]
	return p, ok
}
