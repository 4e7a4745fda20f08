package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Read operations recorded by BusinessMetrics.
const (
	OperationGet  = "constant_get"
	OperationList = "constant_list"
)

// Status label values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// BusinessMetrics records constant catalog activity.
type BusinessMetrics interface {
	// RecordRead records one catalog read. group is the group label to use;
	// callers pass "all" for reads spanning every group.
	RecordRead(ctx context.Context, operation, group string, duration time.Duration, status string)

	// RecordVerify records one consistency run and the mismatching reads it observed.
	RecordVerify(ctx context.Context, duration time.Duration, mismatches int, status string)
}

type businessMetrics struct {
	readCounter     metric.Int64Counter
	readDuration    metric.Float64Histogram
	verifyCounter   metric.Int64Counter
	verifyDuration  metric.Float64Histogram
	mismatchCounter metric.Int64Counter
}

// NewBusinessMetrics creates the catalog instruments on meterProvider, prefixed with namespace.
func NewBusinessMetrics(meterProvider metric.MeterProvider, namespace string) (BusinessMetrics, error) {
	meter := meterProvider.Meter(namespace)

	readCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_constant_reads_total", namespace),
		metric.WithDescription("Total number of constant catalog reads"),
		metric.WithUnit("{read}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create read counter: %w", err)
	}

	// Reads decode a handful of words, so buckets start in the microseconds.
	readDuration, err := meter.Float64Histogram(
		fmt.Sprintf("%s_constant_read_duration_seconds", namespace),
		metric.WithDescription("Duration of constant catalog reads in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.000001, 0.00001, 0.0001, 0.001, 0.01, 0.1),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create read duration histogram: %w", err)
	}

	verifyCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_verify_runs_total", namespace),
		metric.WithDescription("Total number of concurrent consistency runs"),
		metric.WithUnit("{run}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create verify counter: %w", err)
	}

	verifyDuration, err := meter.Float64Histogram(
		fmt.Sprintf("%s_verify_duration_seconds", namespace),
		metric.WithDescription("Duration of concurrent consistency runs in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create verify duration histogram: %w", err)
	}

	mismatchCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_verify_mismatches_total", namespace),
		metric.WithDescription("Total number of reads that differed from the baseline value"),
		metric.WithUnit("{read}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mismatch counter: %w", err)
	}

	return &businessMetrics{
		readCounter:     readCounter,
		readDuration:    readDuration,
		verifyCounter:   verifyCounter,
		verifyDuration:  verifyDuration,
		mismatchCounter: mismatchCounter,
	}, nil
}

func (b *businessMetrics) RecordRead(
	ctx context.Context,
	operation, group string,
	duration time.Duration,
	status string,
) {
	attrs := metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("group", group),
		attribute.String("status", status),
	)

	b.readCounter.Add(ctx, 1, attrs)
	b.readDuration.Record(ctx, duration.Seconds(), attrs)
}

func (b *businessMetrics) RecordVerify(ctx context.Context, duration time.Duration, mismatches int, status string) {
	attrs := metric.WithAttributes(attribute.String("status", status))

	b.verifyCounter.Add(ctx, 1, attrs)
	b.verifyDuration.Record(ctx, duration.Seconds(), attrs)
	if mismatches > 0 {
		b.mismatchCounter.Add(ctx, int64(mismatches))
	}
}

// NoOpBusinessMetrics is used when metrics are disabled.
type NoOpBusinessMetrics struct{}

// NewNoOpBusinessMetrics creates a no-op BusinessMetrics implementation.
func NewNoOpBusinessMetrics() BusinessMetrics {
	return &NoOpBusinessMetrics{}
}

// RecordRead does nothing.
func (n *NoOpBusinessMetrics) RecordRead(context.Context, string, string, time.Duration, string) {}

// RecordVerify does nothing.
func (n *NoOpBusinessMetrics) RecordVerify(context.Context, time.Duration, int, string) {}
