// Package metrics exports Prometheus counters for the notifications flowing
// through a notify.Channel.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/go-drift/collectionkit/pkg/notify"
)

// Metrics counts notifications observed on one or more channels.
type Metrics struct {
	Mutations      *prometheus.CounterVec
	MutatedIndices *prometheus.CounterVec
	Reloads        *prometheus.CounterVec
	BatchSize      *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg. A nil reg skips
// registration.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "collectionkit_mutations_total",
			Help: "Total number of item mutation notifications published",
		}, []string{"channel", "action"}),
		MutatedIndices: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "collectionkit_mutated_indices_total",
			Help: "Total number of indices carried by item mutation notifications",
		}, []string{"channel", "action"}),
		Reloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "collectionkit_reloads_total",
			Help: "Total number of reload notifications published",
		}, []string{"channel", "subject"}),
		BatchSize: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "collectionkit_mutation_batch_size",
			Help:    "Number of indices per item mutation notification",
			Buckets: []float64{1, 2, 5, 10, 25, 50, 100},
		}, []string{"channel", "action"}),
	}
	if reg != nil {
		reg.MustRegister(m.Mutations, m.MutatedIndices, m.Reloads, m.BatchSize)
	}
	return m
}

// Observe subscribes to ch and counts everything published on it until the
// returned subscription is canceled.
func (m *Metrics) Observe(ch *notify.Channel) *notify.Subscription {
	name := ch.Name()
	return ch.Subscribe(notify.Handler{
		OnMutation: func(mut notify.Mutation) {
			m.RecordMutation(name, mut)
		},
		OnReload: func(r notify.Reload) {
			m.RecordReload(name, r)
		},
	})
}

// RecordMutation counts one mutation notification.
func (m *Metrics) RecordMutation(channel string, mut notify.Mutation) {
	action := mut.Action.String()
	m.Mutations.WithLabelValues(channel, action).Inc()
	m.MutatedIndices.WithLabelValues(channel, action).Add(float64(len(mut.Indices)))
	m.BatchSize.WithLabelValues(channel, action).Observe(float64(len(mut.Indices)))
}

// RecordReload counts one reload notification.
func (m *Metrics) RecordReload(channel string, r notify.Reload) {
	m.Reloads.WithLabelValues(channel, r.Subject.String()).Inc()
}
