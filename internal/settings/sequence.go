package settings

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/iw2rmb/focusmode/focus"
)

// Sequencer orders saves that run on separate goroutines. Callers take a
// revision with Next when the settings change and pass it to Save; a save
// older than the last one written is dropped.
type Sequencer struct {
	store Store
	next  atomic.Uint64

	mu      sync.Mutex
	written uint64
}

func NewSequencer(store Store) *Sequencer { return &Sequencer{store: store} }

// Next returns a revision newer than every revision returned before.
func (q *Sequencer) Next() uint64 { return q.next.Add(1) }

// Save writes s under rev. It reports false, with no error, when a newer
// revision is already on disk.
func (q *Sequencer) Save(ctx context.Context, rev uint64, s focus.Settings) (bool, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if rev <= q.written {
		return false, nil
	}
	if err := q.store.Save(ctx, s); err != nil {
		return false, err
	}
	q.written = rev
	return true, nil
}

// Written returns the revision of the last successful save.
func (q *Sequencer) Written() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.written
}
