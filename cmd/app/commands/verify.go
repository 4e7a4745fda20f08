package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/allisson/constguard/internal/obfuscation/usecase"
)

// ErrInconsistentReads is returned when concurrent readers disagree on a value.
var ErrInconsistentReads = errors.New("concurrent reads returned inconsistent values")

// RunVerify reads every registered constant from readers concurrent goroutines,
// reads times each, and reports whether all of them observed the same values.
func RunVerify(
	ctx context.Context,
	verifyUseCase usecase.VerifyUseCase,
	logger *slog.Logger,
	writer io.Writer,
	readers int,
	reads int,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	if readers < 1 {
		return fmt.Errorf("readers must be a positive number, got: %d", readers)
	}
	if reads < 1 {
		return fmt.Errorf("reads must be a positive number, got: %d", reads)
	}

	logger.Info("verifying constants",
		slog.Int("readers", readers),
		slog.Int("reads", reads),
	)

	report, err := verifyUseCase.Verify(ctx, readers, reads)
	if err != nil {
		return fmt.Errorf("failed to verify constants: %w", err)
	}

	if format == "json" {
		err = writeJSON(writer, map[string]any{
			"readers":     report.Readers,
			"reads":       report.Reads,
			"constants":   report.Constants,
			"mismatches":  report.Mismatches,
			"duration_ms": report.Duration.Milliseconds(),
			"consistent":  report.Consistent(),
		})
	} else {
		_, err = fmt.Fprintf(writer,
			"Verified %d constant(s) with %d reader(s) x %d read(s) in %s: %d mismatch(es)\n",
			report.Constants, report.Readers, report.Reads, report.Duration, report.Mismatches,
		)
	}
	if err != nil {
		return err
	}

	logger.Info("verification completed",
		slog.Int("constants", report.Constants),
		slog.Int("mismatches", report.Mismatches),
		slog.Duration("duration", report.Duration),
	)

	if !report.Consistent() {
		return fmt.Errorf("%w: %d mismatch(es)", ErrInconsistentReads, report.Mismatches)
	}

	return nil
}
