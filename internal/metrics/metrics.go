package metrics

import (
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	redirectsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "applinks_redirects_total",
			Help: "Total redirects served, by classified application and client platform",
		},
		[]string{"app", "platform"},
	)

	linksCreatedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "applinks_links_created_total",
			Help: "Total link creation attempts by outcome",
		},
		[]string{"outcome"},
	)
)

var initOnce sync.Once

// Init registers the collectors. Must be called once at startup.
func Init() {
	initOnce.Do(func() {
		for _, c := range []prometheus.Collector{redirectsTotal, linksCreatedTotal} {
			if err := prometheus.Register(c); err != nil {
				slog.Error("failed to register metrics collector", "error", err)
			}
		}
	})
}

// RecordRedirect counts one served redirect.
func RecordRedirect(app, platform string) {
	redirectsTotal.WithLabelValues(app, platform).Inc()
}

// RecordLinkCreated counts one link creation attempt. Outcome is "ok",
// "invalid" or "conflict".
func RecordLinkCreated(outcome string) {
	linksCreatedTotal.WithLabelValues(outcome).Inc()
}
