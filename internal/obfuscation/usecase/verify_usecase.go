package usecase

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/allisson/constguard/internal/errors"
	"github.com/allisson/constguard/internal/obfuscation/domain"
)

type verifyUseCase struct {
	catalog CatalogUseCase
}

// NewVerifyUseCase creates a VerifyUseCase reading through catalog.
func NewVerifyUseCase(catalog CatalogUseCase) VerifyUseCase {
	return &verifyUseCase{catalog: catalog}
}

// Verify reads a baseline of every constant, then starts readers goroutines
// that each perform reads accessor calls cycling over all constants and
// counts results that differ from the baseline.
func (v *verifyUseCase) Verify(ctx context.Context, readers, reads int) (*domain.VerifyReport, error) {
	if readers < 1 || reads < 1 {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "readers and reads must be positive (got %d, %d)", readers, reads)
	}

	start := time.Now()

	baseline, err := v.catalog.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to read baseline: %w", err)
	}
	if len(baseline) == 0 {
		return &domain.VerifyReport{Readers: readers, Reads: reads, Duration: time.Since(start)}, nil
	}

	var mismatches atomic.Int64
	g, gctx := errgroup.WithContext(ctx)

	for r := range readers {
		g.Go(func() error {
			for i := range reads {
				if err := gctx.Err(); err != nil {
					return err
				}

				expected := baseline[(r+i)%len(baseline)]
				got, err := v.catalog.Get(gctx, expected.Group, expected.Name)
				if err != nil {
					return err
				}
				if got != expected {
					mismatches.Add(1)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.VerifyReport{
		Readers:    readers,
		Reads:      reads,
		Constants:  len(baseline),
		Mismatches: int(mismatches.Load()),
		Duration:   time.Since(start),
	}, nil
}
