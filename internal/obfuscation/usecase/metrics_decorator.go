package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/allisson/constguard/internal/metrics"
	"github.com/allisson/constguard/internal/obfuscation/domain"
)

// catalogUseCaseWithMetrics decorates CatalogUseCase with metrics instrumentation.
type catalogUseCaseWithMetrics struct {
	next    CatalogUseCase
	metrics metrics.BusinessMetrics
}

// NewCatalogUseCaseWithMetrics wraps a CatalogUseCase with metrics recording.
func NewCatalogUseCaseWithMetrics(useCase CatalogUseCase, m metrics.BusinessMetrics) CatalogUseCase {
	return &catalogUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Groups delegates without recording; it never touches stored values.
func (c *catalogUseCaseWithMetrics) Groups(ctx context.Context) []domain.GroupInfo {
	return c.next.Groups(ctx)
}

// List records metrics for bulk constant reads.
func (c *catalogUseCaseWithMetrics) List(ctx context.Context, group string) ([]domain.Value, error) {
	start := time.Now()
	values, err := c.next.List(ctx, group)

	c.metrics.RecordRead(ctx, metrics.OperationList, groupLabel(group, err), time.Since(start), statusLabel(err))

	return values, err
}

// Get records metrics for single constant reads.
func (c *catalogUseCaseWithMetrics) Get(ctx context.Context, group, name string) (domain.Value, error) {
	start := time.Now()
	value, err := c.next.Get(ctx, group, name)

	c.metrics.RecordRead(ctx, metrics.OperationGet, groupLabel(group, err), time.Since(start), statusLabel(err))

	return value, err
}

// verifyUseCaseWithMetrics decorates VerifyUseCase with metrics instrumentation.
type verifyUseCaseWithMetrics struct {
	next    VerifyUseCase
	metrics metrics.BusinessMetrics
}

// NewVerifyUseCaseWithMetrics wraps a VerifyUseCase with metrics recording.
func NewVerifyUseCaseWithMetrics(useCase VerifyUseCase, m metrics.BusinessMetrics) VerifyUseCase {
	return &verifyUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Verify records metrics for consistency checks. A run with mismatches counts as an error.
func (v *verifyUseCaseWithMetrics) Verify(
	ctx context.Context,
	readers, reads int,
) (*domain.VerifyReport, error) {
	start := time.Now()
	report, err := v.next.Verify(ctx, readers, reads)

	status := statusLabel(err)
	mismatches := 0
	if report != nil {
		mismatches = report.Mismatches
		if !report.Consistent() {
			status = metrics.StatusError
		}
	}

	v.metrics.RecordVerify(ctx, time.Since(start), mismatches, status)

	return report, err
}

func statusLabel(err error) string {
	if err != nil {
		return metrics.StatusError
	}
	return metrics.StatusSuccess
}

// groupLabel bounds the group label to registered names: unknown groups and
// reads across every group get fixed labels.
func groupLabel(group string, err error) string {
	switch {
	case errors.Is(err, domain.ErrGroupNotFound):
		return "unknown"
	case group == "":
		return "all"
	default:
		return group
	}
}
