package engine

import (
	"slices"
	"sync"

	"github.com/lixenwraith/chainburst/core"
	"github.com/lixenwraith/chainburst/event"
	"github.com/lixenwraith/chainburst/status"
)

// World contains all entities and their components using typed stores
type World struct {
	mu       sync.RWMutex
	entities *core.EntityAllocator

	Resource  Resource
	Component ComponentStore
	allStores []AnyStore

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates an ECS world with default resources
// A nil config selects DefaultConfigResource, a nil clock a monotonic one
func NewWorld(config *ConfigResource, clock *Clock) *World {
	if config == nil {
		config = DefaultConfigResource()
	}
	if clock == nil {
		clock = NewClock(nil)
	}

	w := &World{
		entities:  core.NewEntityAllocator(),
		Component: newComponentStore(),
		systems:   make([]System, 0, 8),
	}
	w.allStores = w.Component.all()
	w.Resource = Resource{
		Time:   &TimeResource{},
		Config: config,
		Chain:  &ChainResource{},
		Event:  &EventQueueResource{Queue: event.NewEventQueue()},
		Audio:  &AudioResource{},
		Clock:  clock,
		Status: status.NewRegistry(),
	}
	return w
}

// CreateEntity reserves a new entity handle
func (w *World) CreateEntity() core.Entity {
	return w.entities.Create()
}

// DestroyEntity removes all components of e and invalidates the handle
// Stale handles are ignored; returns false for them
func (w *World) DestroyEntity(e core.Entity) bool {
	if !w.entities.Destroy(e) {
		return false
	}
	for _, store := range w.allStores {
		store.Remove(e)
	}
	return true
}

// DestroyEntities destroys a batch of handles, each store is compacted once
// Stale handles are skipped; returns how many were destroyed
func (w *World) DestroyEntities(batch []core.Entity) int {
	live := make([]core.Entity, 0, len(batch))
	for _, e := range batch {
		if w.entities.Destroy(e) {
			live = append(live, e)
		}
	}
	if len(live) == 0 {
		return 0
	}
	for _, store := range w.allStores {
		store.RemoveBatch(live)
	}
	return len(live)
}

// Alive reports whether e is a live handle
func (w *World) Alive(e core.Entity) bool {
	return w.entities.Alive(e)
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	return w.entities.Count()
}

// Clear removes all entities and components from the world
func (w *World) Clear() {
	w.entities.Reset()
	for _, store := range w.allStores {
		store.Clear()
	}
}

// AddSystem adds a system and keeps the list sorted by priority
// Systems with equal priority keep insertion order
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)
	slices.SortStableFunc(w.systems, func(a, b System) int {
		return a.Priority() - b.Priority()
	})
}

// Systems returns a copy of all registered systems in run order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return slices.Clone(w.systems)
}

// RunSafe executes a function while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Update runs all systems sequentially
func (w *World) Update() {
	w.RunSafe(w.UpdateLocked)
}

// UpdateLocked runs all systems assuming the caller already holds the update lock
func (w *World) UpdateLocked() {
	for _, system := range w.Systems() {
		system.Update()
	}
}

// InitSystems calls Init on every system, used on world reset
func (w *World) InitSystems() {
	for _, system := range w.Systems() {
		system.Init()
	}
}

// PushEvent emits a game event stamped with the current frame
// Safe from any goroutine
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.Resource.Event.Queue.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.Resource.Time.FrameNumber,
	})
}
