package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

// RegisterArenaGauge exposes the number of published constant containers.
// size is called on every collection and must be safe for concurrent use.
func RegisterArenaGauge(meterProvider metric.MeterProvider, namespace string, size func() int) error {
	meter := meterProvider.Meter(namespace)

	_, err := meter.Int64ObservableGauge(
		fmt.Sprintf("%s_arena_containers", namespace),
		metric.WithDescription("Number of constant containers published to the arena"),
		metric.WithUnit("{container}"),
		metric.WithInt64Callback(func(_ context.Context, o metric.Int64Observer) error {
			o.Observe(int64(size()))
			return nil
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to create arena gauge: %w", err)
	}

	return nil
}
