package core

import (
	"fmt"
	"sync"
)

// Entity is a generational handle: low 32 bits index, high 32 bits generation
// A handle becomes stale once its slot is destroyed and reused
type Entity uint64

// NoEntity is the zero handle, never returned by an allocator
const NoEntity Entity = 0

func makeEntity(index, generation uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

// Index returns the slot index
func (e Entity) Index() uint32 {
	return uint32(e)
}

// Generation returns the slot generation
func (e Entity) Generation() uint32 {
	return uint32(e >> 32)
}

func (e Entity) String() string {
	return fmt.Sprintf("%dv%d", e.Index(), e.Generation())
}

// EntityAllocator hands out generational handles with slot reuse
// Index 0 is reserved so the zero Entity is always invalid
type EntityAllocator struct {
	mu          sync.Mutex
	generations []uint32 // Current generation per slot
	alive       []bool
	free        []uint32
	count       int
}

// NewEntityAllocator creates an empty allocator
func NewEntityAllocator() *EntityAllocator {
	a := &EntityAllocator{}
	a.Reset()
	return a
}

// Create returns a fresh handle, reusing a freed slot when available
func (a *EntityAllocator) Create() Entity {
	a.mu.Lock()
	defer a.mu.Unlock()

	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = uint32(len(a.generations))
		a.generations = append(a.generations, 1)
		a.alive = append(a.alive, false)
	}

	a.alive[idx] = true
	a.count++
	return makeEntity(idx, a.generations[idx])
}

// Destroy releases the slot of e; returns false for stale or unknown handles
func (a *EntityAllocator) Destroy(e Entity) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.aliveLocked(e) {
		return false
	}

	idx := e.Index()
	a.alive[idx] = false
	a.generations[idx]++
	// Generation wrap skips 0 so a recycled handle never equals a zero-gen handle
	if a.generations[idx] == 0 {
		a.generations[idx] = 1
	}
	a.free = append(a.free, idx)
	a.count--
	return true
}

// Alive reports whether e refers to a live slot of the current generation
func (a *EntityAllocator) Alive(e Entity) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.aliveLocked(e)
}

func (a *EntityAllocator) aliveLocked(e Entity) bool {
	idx := e.Index()
	if idx == 0 || int(idx) >= len(a.generations) {
		return false
	}
	return a.alive[idx] && a.generations[idx] == e.Generation()
}

// Count returns the number of live entities
func (a *EntityAllocator) Count() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.count
}

// Reset drops every slot; previously issued handles are no longer alive
// Slots keep their generation history, bumped once, so old handles stay stale after reuse
func (a *EntityAllocator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.generations == nil {
		a.generations = make([]uint32, 1, 64)
		a.alive = make([]bool, 1, 64)
		a.count = 0
		return
	}

	a.free = a.free[:0]
	// Pushed high to low so Create hands out low indices first
	for idx := len(a.generations) - 1; idx > 0; idx-- {
		if a.alive[idx] {
			a.generations[idx]++
			if a.generations[idx] == 0 {
				a.generations[idx] = 1
			}
			a.alive[idx] = false
		}
		a.free = append(a.free, uint32(idx))
	}
	a.count = 0
}
