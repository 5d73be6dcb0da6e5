package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Registry is the metrics facade shared by the engine and its observers
// Systems cache pointers at construction; the tick loop writes straight to the atomics
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[Float]
	Labels *MetricMap[Label]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[Float](),
		Labels: NewMetricMap[Label](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Labels.Count()
}

// Summary renders every metric as sorted key=value pairs on one line
func (r *Registry) Summary() string {
	var parts []string
	r.Labels.Range(func(k string, v *Label) {
		parts = append(parts, fmt.Sprintf("%s=%s", k, v.Load()))
	})
	r.Bools.Range(func(k string, v *atomic.Bool) {
		parts = append(parts, fmt.Sprintf("%s=%t", k, v.Load()))
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s=%d", k, v.Load()))
	})
	r.Floats.Range(func(k string, v *Float) {
		parts = append(parts, fmt.Sprintf("%s=%.3f", k, v.Load()))
	})
	return strings.Join(parts, " ")
}
