package core


import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)


const (
	Namespace = "emitter"

	KindPublish  = "publish"
	KindUse      = "use"
	KindTransfer = "transfer"
)


type Metrics struct {
	Generated  *prometheus.CounterVec
	Picks      *prometheus.CounterVec
	Failures   *prometheus.CounterVec
}

func NewMetrics(registry prometheus.Registerer) *Metrics {
	return &Metrics{
		Generated: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "transactions_generated_total",
				Help:      "the number of signed transactions generated",
			},
			[]string{"workload", "kind"},
		),
		Picks: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "package_picks_total",
				Help:      "the number of package variants picked from the catalog",
			},
			[]string{"package"},
		),
		Failures: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "generate_failures_total",
				Help:      "the number of failed generation calls",
			},
			[]string{"workload"},
		),
	}
}

// Metrics on a private registry, for callers that do not export them.
//
func NewUnregisteredMetrics() *Metrics {
	return NewMetrics(prometheus.NewRegistry())
}

func (this *Metrics) RecordGenerated(workload, kind string, count int) {
	this.Generated.WithLabelValues(workload, kind).Add(float64(count))
}

func (this *Metrics) RecordPick(name string) {
	this.Picks.WithLabelValues(name).Inc()
}

func (this *Metrics) RecordFailure(workload string) {
	this.Failures.WithLabelValues(workload).Inc()
}
