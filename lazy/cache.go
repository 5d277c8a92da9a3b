package lazy

import (
	"sync"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

type cachedState struct {
	trs     []fst.Tr
	final   semiring.Weight
	isFinal bool
	expanded bool
}

// Cache memoizes expanded states. Bounded to maxStates entries when
// maxStates > 0 (0 means unbounded); eviction is simple FIFO by
// insertion order, since a lazily-composed FST is typically consumed
// roughly in BFS/DFS order and a more elaborate policy (LRU) would cost
// more than it saves here.
type Cache struct {
	mu        sync.Mutex
	states    map[fst.StateId]*cachedState
	order     []fst.StateId
	maxStates int
}

// NewCache returns an empty cache. maxStates <= 0 means unbounded.
func NewCache(maxStates int) *Cache {
	return &Cache{states: make(map[fst.StateId]*cachedState), maxStates: maxStates}
}

func (c *Cache) get(s fst.StateId) (*cachedState, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	st, ok := c.states[s]
	return st, ok
}

func (c *Cache) put(s fst.StateId, st *cachedState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.states[s]; !exists {
		c.order = append(c.order, s)
	}
	c.states[s] = st
	if c.maxStates > 0 {
		for len(c.order) > c.maxStates {
			evict := c.order[0]
			c.order = c.order[1:]
			delete(c.states, evict)
		}
	}
}

// Len reports how many states are currently cached.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.states)
}
