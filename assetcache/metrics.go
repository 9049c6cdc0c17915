package assetcache

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts cache traffic. Register it with WithRegisterer to expose
// it on /metrics.
type Metrics struct {
	Hits          prometheus.Counter
	Misses        prometheus.Counter
	Revalidations prometheus.Counter
	OriginErrors  prometheus.Counter
	Installed     prometheus.Gauge
}

func newMetrics(version string) *Metrics {
	labels := prometheus.Labels{"cache": version}
	return &Metrics{
		Hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "pecking_order",
			Subsystem:   "assetcache",
			Name:        "hits_total",
			Help:        "Requests served from the cache.",
			ConstLabels: labels,
		}),
		Misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "pecking_order",
			Subsystem:   "assetcache",
			Name:        "misses_total",
			Help:        "Requests that had to go to the origin.",
			ConstLabels: labels,
		}),
		Revalidations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "pecking_order",
			Subsystem:   "assetcache",
			Name:        "revalidations_total",
			Help:        "Background refreshes of stale entries.",
			ConstLabels: labels,
		}),
		OriginErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "pecking_order",
			Subsystem:   "assetcache",
			Name:        "origin_errors_total",
			Help:        "Failed origin fetches.",
			ConstLabels: labels,
		}),
		Installed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "pecking_order",
			Subsystem:   "assetcache",
			Name:        "installed_assets",
			Help:        "Assets stored by the last successful install.",
			ConstLabels: labels,
		}),
	}
}

func (m *Metrics) register(r prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{m.Hits, m.Misses, m.Revalidations, m.OriginErrors, m.Installed} {
		if err := r.Register(c); err != nil {
			return err
		}
	}
	return nil
}
