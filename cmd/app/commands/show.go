package commands

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/allisson/constguard/internal/obfuscation/domain"
	"github.com/allisson/constguard/internal/obfuscation/http/dto"
	"github.com/allisson/constguard/internal/obfuscation/usecase"
)

// RunShow prints the decoded constants of every registered group, or of a single
// group when one is given. The JSON output matches the HTTP API list response.
func RunShow(
	ctx context.Context,
	catalogUseCase usecase.CatalogUseCase,
	writer io.Writer,
	group string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	values, err := catalogUseCase.List(ctx, group)
	if err != nil {
		return fmt.Errorf("failed to list constants: %w", err)
	}

	if format == "json" {
		return writeJSON(writer, dto.MapValuesToListResponse(values))
	}

	return outputShowText(writer, catalogUseCase.Groups(ctx), values)
}

// outputShowText prints one tab-aligned block per group.
func outputShowText(writer io.Writer, groups []domain.GroupInfo, values []domain.Value) error {
	families := make(map[string]domain.Family, len(groups))
	for _, g := range groups {
		families[g.Name] = g.Family
	}

	tw := tabwriter.NewWriter(writer, 0, 0, 2, ' ', 0)

	current := ""
	for i, v := range values {
		if v.Group != current {
			if i > 0 {
				_, _ = fmt.Fprintln(tw)
			}
			_, _ = fmt.Fprintf(tw, "[%s] family=%s\n", v.Group, families[v.Group])
			current = v.Group
		}
		_, _ = fmt.Fprintf(tw, "  %s\t%s\t%s\n", v.Name, v.Kind, v.String())
	}

	return tw.Flush()
}
