package storage

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/allisson/constguard/internal/obfuscation/domain"
)

// Arena is an append-only registry of published containers.
//
// Readers load an immutable snapshot without locking. Publish copies the
// snapshot, appends and swaps it in under a mutex, so a container is visible
// to every reader that observes its index.
type Arena struct {
	mu       sync.Mutex
	snapshot atomic.Pointer[[]*Container]
}

// NewArena creates an empty Arena.
func NewArena() *Arena {
	a := &Arena{}
	empty := make([]*Container, 0)
	a.snapshot.Store(&empty)
	return a
}

var defaultArena = NewArena()

// Default returns the process-wide Arena.
func Default() *Arena {
	return defaultArena
}

// Publish appends c and returns its index.
func (a *Arena) Publish(c *Container) uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	current := *a.snapshot.Load()
	next := make([]*Container, len(current), len(current)+1)
	copy(next, current)
	next = append(next, c)
	a.snapshot.Store(&next)

	return uint64(len(next) - 1)
}

// Mask hides an index behind a key mix.
func Mask(index, keyMix uint64) uint64 {
	return index ^ keyMix
}

// Resolve recovers the container behind a masked handle.
// Returns ErrInvalidHandle when the recovered index was never published.
func (a *Arena) Resolve(masked, keyMix uint64) (*Container, error) {
	index := masked ^ keyMix
	containers := *a.snapshot.Load()
	if index >= uint64(len(containers)) {
		return nil, fmt.Errorf("%w: index outside arena", domain.ErrInvalidHandle)
	}
	return containers[index], nil
}

// Len returns the number of published containers.
func (a *Arena) Len() int {
	return len(*a.snapshot.Load())
}
