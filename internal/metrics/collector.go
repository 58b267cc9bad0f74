// Package metrics collects Prometheus metrics about issue submission.
package metrics

import (
	"context"
	"time"

	"github.com/douhashi/logira/internal/jira"
)

// Collector records the outcome of remote issue creation.
type Collector interface {
	RecordIssueCreated(project string, duration time.Duration)
	RecordIssueFailed(project, reason string, duration time.Duration)
	// Flush writes collected metrics to their destination, if any.
	Flush() error
}

// NopCollector discards everything.
type NopCollector struct{}

// RecordIssueCreated does nothing
func (NopCollector) RecordIssueCreated(string, time.Duration) {}

// RecordIssueFailed does nothing
func (NopCollector) RecordIssueFailed(string, string, time.Duration) {}

// Flush does nothing
func (NopCollector) Flush() error { return nil }

// InstrumentedCreator records metrics around another RemoteIssueCreator.
// Errors are returned unchanged.
type InstrumentedCreator struct {
	next      jira.RemoteIssueCreator
	collector Collector
	now       func() time.Time
}

// NewInstrumentedCreator wraps next so every call is recorded in collector.
func NewInstrumentedCreator(next jira.RemoteIssueCreator, collector Collector) *InstrumentedCreator {
	if collector == nil {
		collector = NopCollector{}
	}
	return &InstrumentedCreator{next: next, collector: collector, now: time.Now}
}

// CreateIssue implements jira.RemoteIssueCreator
func (c *InstrumentedCreator) CreateIssue(ctx context.Context, issue *jira.RemoteIssue) (string, error) {
	start := c.now()
	key, err := c.next.CreateIssue(ctx, issue)
	duration := c.now().Sub(start)

	if err != nil {
		c.collector.RecordIssueFailed(issue.ProjectKey, failureReason(err), duration)
		return "", err
	}
	c.collector.RecordIssueCreated(issue.ProjectKey, duration)
	return key, nil
}

// failureReason classifies err into a low-cardinality label value.
func failureReason(err error) string {
	switch {
	case jira.IsValidationError(err):
		return "validation"
	case jira.IsNotSupportedError(err):
		return "not_supported"
	case jira.IsTransportError(err):
		return "transport"
	default:
		return "other"
	}
}
