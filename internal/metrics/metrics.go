// Package metrics exposes the gateway's Prometheus instrumentation.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	toolInvocations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mcpkanboard_tool_invocations_total",
			Help: "Total number of tool invocations by tool name and outcome",
		},
		[]string{"tool", "outcome"},
	)
	kanboardCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "mcpkanboard_kanboard_call_duration_seconds",
			Help: "Duration of JSON-RPC calls against the Kanboard backend",
		},
		[]string{"method"},
	)
)

func CountToolInvocation(tool string, success bool) {
	outcome := "success"
	if !success {
		outcome = "error"
	}
	toolInvocations.WithLabelValues(tool, outcome).Inc()
}

func ObserveKanboardCall(method string, d time.Duration) {
	kanboardCallDuration.WithLabelValues(method).Observe(d.Seconds())
}
