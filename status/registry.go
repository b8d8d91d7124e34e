package status

import (
	"fmt"
	"io"
	"sync/atomic"
)

// Registry is the central metrics facade
// Systems cache pointers during init; Update loops write directly to atomics
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count()
}

// Reset zeroes every registered metric, cached pointers stay valid
func (r *Registry) Reset() {
	r.Bools.Range(func(_ string, b *atomic.Bool) { b.Store(false) })
	r.Ints.Range(func(_ string, i *atomic.Int64) { i.Store(0) })
	r.Floats.Range(func(_ string, f *AtomicFloat) { f.Set(0) })
}

// WriteTo prints all metrics as "key = value" lines in key order
func (r *Registry) WriteTo(w io.Writer) (int64, error) {
	var total int64
	var err error
	emit := func(key string, val any) {
		if err != nil {
			return
		}
		var n int
		n, err = fmt.Fprintf(w, "%-24s = %v\n", key, val)
		total += int64(n)
	}

	r.Ints.Range(func(k string, i *atomic.Int64) { emit(k, i.Load()) })
	r.Floats.Range(func(k string, f *AtomicFloat) { emit(k, fmt.Sprintf("%.3f", f.Get())) })
	r.Bools.Range(func(k string, b *atomic.Bool) { emit(k, b.Load()) })
	return total, err
}
