package splitvec

import (
	"sync/atomic"
	"time"

	"github.com/hupe1980/splitvec/internal/conv"
)

// MetricsCollector defines an interface for collecting fragment-level metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Collectors are invoked synchronously from mutating operations and must be cheap.
type MetricsCollector interface {
	// RecordFragmentAlloc is called after a new fragment was allocated.
	RecordFragmentAlloc(capacity int)

	// RecordFragmentRelease is called after a fragment was dropped by Pop,
	// Truncate, Clear or IntoSlice.
	RecordFragmentRelease(capacity int)

	// RecordGrowthSaturated is called when a computed capacity saturated at
	// MaxFragmentCapacity.
	RecordGrowthSaturated()

	// RecordConversion is called after IntoSlice copied elements out.
	RecordConversion(elements int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordFragmentAlloc(int)             {}
func (NoopMetricsCollector) RecordFragmentRelease(int)           {}
func (NoopMetricsCollector) RecordGrowthSaturated()              {}
func (NoopMetricsCollector) RecordConversion(int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	FragmentAllocs    atomic.Uint64
	FragmentReleases  atomic.Uint64
	CapacityAllocated atomic.Uint64
	CapacityReleased  atomic.Uint64
	GrowthSaturations atomic.Uint64
	Conversions       atomic.Uint64
	ConvertedElements atomic.Uint64
	ConversionNanos   atomic.Int64
}

// RecordFragmentAlloc implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFragmentAlloc(capacity int) {
	b.FragmentAllocs.Add(1)
	if c, err := conv.IntToUint64(capacity); err == nil {
		b.CapacityAllocated.Add(c)
	}
}

// RecordFragmentRelease implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFragmentRelease(capacity int) {
	b.FragmentReleases.Add(1)
	if c, err := conv.IntToUint64(capacity); err == nil {
		b.CapacityReleased.Add(c)
	}
}

// RecordGrowthSaturated implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrowthSaturated() {
	b.GrowthSaturations.Add(1)
}

// RecordConversion implements MetricsCollector.
func (b *BasicMetricsCollector) RecordConversion(elements int, duration time.Duration) {
	b.Conversions.Add(1)
	if n, err := conv.IntToUint64(elements); err == nil {
		b.ConvertedElements.Add(n)
	}
	b.ConversionNanos.Add(duration.Nanoseconds())
}

// LiveFragments returns allocated minus released fragments.
func (b *BasicMetricsCollector) LiveFragments() uint64 {
	return b.FragmentAllocs.Load() - b.FragmentReleases.Load()
}

// LiveCapacity returns allocated minus released element capacity.
func (b *BasicMetricsCollector) LiveCapacity() uint64 {
	return b.CapacityAllocated.Load() - b.CapacityReleased.Load()
}
