// Package metrics exposes Prometheus instrumentation for WatFS RPC
// traffic and the client write cache, following the promauto registration
// style used throughout the pack's metrics code.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels a completed RPC attempt for the rpcCalls/rpcDuration
// vectors.
type Outcome string

const (
	OutcomeSuccess   Outcome = "success"
	OutcomeAppError  Outcome = "app_error"
	OutcomeTransport Outcome = "transport_error"
)

// Registry bundles the counters and gauges shared by the server and the
// client. A nil *Registry is safe to call methods on (all become no-ops),
// so callers that don't want metrics can simply not construct one.
type Registry struct {
	rpcCalls       *prometheus.CounterVec
	rpcDuration    *prometheus.HistogramVec
	cacheSize      prometheus.Gauge
	replayEvents   prometheus.Counter
	verfMismatches prometheus.Counter
}

// New registers WatFS's metrics with reg and returns a Registry. Pass
// prometheus.NewRegistry() for an isolated registry (as in tests) or
// prometheus.DefaultRegisterer for the global one.
func New(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)
	return &Registry{
		rpcCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "watfs_rpc_calls_total",
			Help: "Total number of WatFS RPC attempts by method and outcome.",
		}, []string{"method", "outcome"}),
		rpcDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "watfs_rpc_duration_seconds",
			Help:    "Latency of completed WatFS RPC attempts by method.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
		cacheSize: factory.NewGauge(prometheus.GaugeOpts{
			Name: "watfs_client_cache_writes",
			Help: "Number of writes currently held in the client write cache.",
		}),
		replayEvents: factory.NewCounter(prometheus.CounterOpts{
			Name: "watfs_client_cache_replays_total",
			Help: "Total number of times the client replayed its write cache after a verifier change.",
		}),
		verfMismatches: factory.NewCounter(prometheus.CounterOpts{
			Name: "watfs_client_verifier_mismatches_total",
			Help: "Total number of times a Commit observed a server verifier different from the client's stored one.",
		}),
	}
}

// ObserveRPC records the outcome and duration of one RPC attempt.
func (r *Registry) ObserveRPC(method string, outcome Outcome, seconds float64) {
	if r == nil {
		return
	}
	r.rpcCalls.WithLabelValues(method, string(outcome)).Inc()
	r.rpcDuration.WithLabelValues(method).Observe(seconds)
}

// SetCacheSize reports the current number of cached writes.
func (r *Registry) SetCacheSize(n int) {
	if r == nil {
		return
	}
	r.cacheSize.Set(float64(n))
}

// IncReplay records a cache replay triggered by a verifier mismatch.
func (r *Registry) IncReplay() {
	if r == nil {
		return
	}
	r.replayEvents.Inc()
}

// IncVerfMismatch records an observed verifier mismatch (whether or not
// it ultimately triggered a replay).
func (r *Registry) IncVerfMismatch() {
	if r == nil {
		return
	}
	r.verfMismatches.Inc()
}
