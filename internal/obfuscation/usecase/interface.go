package usecase

import (
	"context"

	"github.com/allisson/constguard/internal/obfuscation/domain"
)

// ConstantSource reads constants of one group by identifier.
// Group implements it; generated sealed groups provide their own.
type ConstantSource interface {
	Name() string
	Family() domain.Family
	Value(name string, kind domain.Kind) (domain.Value, error)
}

// Registration binds a source to the constants it is known to expose.
type Registration struct {
	Source    ConstantSource
	Constants []domain.ConstantInfo
}

// CatalogUseCase exposes registered constant groups to outer surfaces.
type CatalogUseCase interface {
	// Groups returns every registered group in registration order.
	Groups(ctx context.Context) []domain.GroupInfo

	// List reads every constant of a group, or of all groups when group is empty.
	List(ctx context.Context, group string) ([]domain.Value, error)

	// Get reads a single constant.
	Get(ctx context.Context, group, name string) (domain.Value, error)
}

// VerifyUseCase checks that concurrent readers observe identical values.
type VerifyUseCase interface {
	Verify(ctx context.Context, readers, reads int) (*domain.VerifyReport, error)
}
