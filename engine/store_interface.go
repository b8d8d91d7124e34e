package engine

import "github.com/lixenwraith/chainburst/core"

// AnyStore provides type-erased operations for lifecycle management
// World uses it to strip a destroyed entity from every store without
// knowing the concrete component type
type AnyStore interface {
	Remove(e core.Entity)
	RemoveBatch(entities []core.Entity)
	Has(e core.Entity) bool
	Count() int
	Clear()
}
