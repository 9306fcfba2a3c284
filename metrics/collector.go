// Package metrics exports memoizer stats as Prometheus metrics.
package metrics

import (
	"github.com/on-the-ground/memo_ive_go/purefn"
	"github.com/prometheus/client_golang/prometheus"
)

// StatsSource is satisfied by *purefn.Memoized.
type StatsSource interface {
	Name() string
	Stats() purefn.Stats
}

var _ prometheus.Collector = (*Collector)(nil)

// Collector reads Stats from each source on every scrape.
//
// Memoized functions are not safe for concurrent use, so a registry that scrapes
// from another goroutine must be serialized with the memoizers' callers.
// Source names must be unique within a Collector.
type Collector struct {
	sources []StatsSource

	hits            *prometheus.Desc
	misses          *prometheus.Desc
	recomputations  *prometheus.Desc
	evictions       *prometheus.Desc
	deduplicated    *prometheus.Desc
	entries         *prometheus.Desc
	capacity        *prometheus.Desc
	lastComputation *prometheus.Desc
}

func NewCollector(namespace string, sources ...StatsSource) *Collector {
	labels := []string{"memoizer", "strategy"}
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "memo", name), help, labels, nil)
	}
	return &Collector{
		sources:         sources,
		hits:            desc("hits_total", "Calls served from the cache."),
		misses:          desc("misses_total", "Calls that had to invoke the wrapped function."),
		recomputations:  desc("recomputations_total", "Successful invocations of the wrapped function."),
		evictions:       desc("evictions_total", "Entries dropped to respect the cache size."),
		deduplicated:    desc("dedup_total", "Results replaced by an equal cached result."),
		entries:         desc("entries", "Entries currently cached."),
		capacity:        desc("max_entries", "Cache capacity."),
		lastComputation: desc("last_computation_seconds", "Duration of the latest successful computation."),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.hits
	ch <- c.misses
	ch <- c.recomputations
	ch <- c.evictions
	ch <- c.deduplicated
	ch <- c.entries
	ch <- c.capacity
	ch <- c.lastComputation
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for _, src := range c.sources {
		s := src.Stats()
		labels := []string{src.Name(), s.Strategy}
		counter := func(desc *prometheus.Desc, v uint64) {
			ch <- prometheus.MustNewConstMetric(desc, prometheus.CounterValue, float64(v), labels...)
		}
		gauge := func(desc *prometheus.Desc, v float64) {
			ch <- prometheus.MustNewConstMetric(desc, prometheus.GaugeValue, v, labels...)
		}

		counter(c.hits, s.Hits)
		counter(c.misses, s.Misses)
		counter(c.recomputations, s.Recomputations)
		counter(c.evictions, s.Evictions)
		counter(c.deduplicated, s.Deduplicated)
		gauge(c.entries, float64(s.Size))
		gauge(c.capacity, float64(s.MaxSize))
		gauge(c.lastComputation, s.LastComputation.Duration().Seconds())
	}
}
