package engine

import "github.com/lixenwraith/chainburst/component"

// ComponentStore holds the typed stores of the world
type ComponentStore struct {
	Transform *Store[component.TransformComponent]
	Explosion *Store[component.ExplosionComponent]
	Breakable *Store[component.BreakableComponent]
	Bomb      *Store[component.BombComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Transform: NewStore[component.TransformComponent](),
		Explosion: NewStore[component.ExplosionComponent](),
		Breakable: NewStore[component.BreakableComponent](),
		Bomb:      NewStore[component.BombComponent](),
	}
}

// all returns every store for uniform lifecycle operations
func (c ComponentStore) all() []AnyStore {
	return []AnyStore{c.Transform, c.Explosion, c.Breakable, c.Bomb}
}
