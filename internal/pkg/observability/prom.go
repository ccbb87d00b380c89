package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	// ServiceName prefixes every self-observability metric. The translated
	// player statistics are deliberately not under this prefix: they form
	// their own exposition, rendered per scrape by the presenter.
	ServiceName = "seichitranslator"

	// TracingServiceName identifies this process in trace backends.
	TracingServiceName = "seichi-gamedata-translator"
)

var (
	AggregateDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "scrape", "aggregate_duration_seconds"),
		Help:    "Duration of a full fetch-and-fold aggregation cycle in seconds",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
	})
	UpstreamFetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "upstream", "fetch_duration_seconds"),
		Help:    "Duration of a single upstream collection fetch in seconds",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
	}, []string{"collection"})
	KnownPlayers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: prometheus.BuildFQName(ServiceName, "scrape", "known_players"),
		Help: "Number of players in the most recently aggregated statistics set",
	})
	RenderBytes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "scrape", "render_bytes"),
		Help:    "Size of the rendered exposition body in bytes",
		Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
	})
)
