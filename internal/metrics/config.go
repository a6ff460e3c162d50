// Package metrics provides Prometheus metrics for sitecfg.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

// Result label values.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

var (
	// ConfigLoadTotal counts configuration loads by result.
	ConfigLoadTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sitecfg_config_load_total",
		Help: "Total number of configuration loads, by result (ok/error).",
	}, []string{"result"})

	// ConfigReloadTotal counts hot reloads by result.
	ConfigReloadTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sitecfg_config_reload_total",
		Help: "Total number of configuration hot reloads, by result (ok/error).",
	}, []string{"result"})
)

// CounterValue returns the current value of a labelled counter, or 0 if it
// cannot be read.
func CounterValue(vec *prometheus.CounterVec, labels ...string) float64 {
	c, err := vec.GetMetricWithLabelValues(labels...)
	if err != nil {
		return 0
	}
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		return 0
	}
	return m.GetCounter().GetValue()
}
