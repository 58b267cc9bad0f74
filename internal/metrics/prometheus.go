package metrics

import (
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusCollector は課題作成のメトリクスをPrometheusレジストリに記録する
type PrometheusCollector struct {
	registry *prometheus.Registry
	textfile string

	created  *prometheus.CounterVec
	failed   *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewPrometheusCollector creates a collector with its own registry.
// When textfile is set, Flush writes the registry there in the text exposition
// format for node_exporter's textfile collector.
//
// Metrics:
//   - logira_issues_created_total (counter)
//   - logira_issues_failed_total (counter)
//   - logira_issue_create_duration_seconds (histogram)
func NewPrometheusCollector(textfile string) (*PrometheusCollector, error) {
	registry := prometheus.NewRegistry()

	created := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "logira",
			Name:      "issues_created_total",
			Help:      "Total number of issues created in the remote tracker",
		},
		[]string{"project"},
	)
	failed := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "logira",
			Name:      "issues_failed_total",
			Help:      "Total number of failed issue creations",
		},
		[]string{"project", "reason"},
	)
	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "logira",
			Name:      "issue_create_duration_seconds",
			Help:      "Duration of remote issue creation in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"project", "status"},
	)

	// MustRegisterはpanicするため使わない
	for _, c := range []prometheus.Collector{created, failed, duration} {
		if err := registry.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register metric: %w", err)
		}
	}

	return &PrometheusCollector{
		registry: registry,
		textfile: textfile,
		created:  created,
		failed:   failed,
		duration: duration,
	}, nil
}

// maxLabelLength はラベル値の最大長（カーディナリティ対策）
const maxLabelLength = 64

// sanitizeLabel は制御文字を除去し、ルーン単位で長さを制限する
func sanitizeLabel(value string) string {
	clean := strings.Map(func(r rune) rune {
		if r < 0x20 {
			return '_'
		}
		return r
	}, value)

	runes := []rune(clean)
	if len(runes) > maxLabelLength {
		return string(runes[:maxLabelLength])
	}
	return clean
}

// RecordIssueCreated records a successful creation
func (c *PrometheusCollector) RecordIssueCreated(project string, duration time.Duration) {
	project = sanitizeLabel(project)
	c.created.WithLabelValues(project).Inc()
	c.duration.WithLabelValues(project, "success").Observe(duration.Seconds())
}

// RecordIssueFailed records a failed creation
func (c *PrometheusCollector) RecordIssueFailed(project, reason string, duration time.Duration) {
	project = sanitizeLabel(project)
	c.failed.WithLabelValues(project, sanitizeLabel(reason)).Inc()
	c.duration.WithLabelValues(project, "error").Observe(duration.Seconds())
}

// Registry returns the underlying registry
func (c *PrometheusCollector) Registry() *prometheus.Registry {
	return c.registry
}

// Flush writes the registry to the configured textfile
func (c *PrometheusCollector) Flush() error {
	if c.textfile == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(c.textfile, c.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
