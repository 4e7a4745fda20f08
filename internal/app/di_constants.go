package app

import (
	"context"
	"fmt"

	"github.com/allisson/constguard/internal/constants"
	obfuscationHTTP "github.com/allisson/constguard/internal/obfuscation/http"
	"github.com/allisson/constguard/internal/obfuscation/storage"
	"github.com/allisson/constguard/internal/obfuscation/usecase"
)

// CatalogUseCase returns the catalog over every predefined group.
func (c *Container) CatalogUseCase() (usecase.CatalogUseCase, error) {
	var err error
	c.catalogUseCaseInit.Do(func() {
		c.catalogUseCase, err = c.initCatalogUseCase()
		if err != nil {
			c.initErrors["catalogUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["catalogUseCase"]; exists {
		return nil, storedErr
	}
	return c.catalogUseCase, nil
}

// VerifyUseCase returns the concurrent consistency checker.
func (c *Container) VerifyUseCase() (usecase.VerifyUseCase, error) {
	var err error
	c.verifyUseCaseInit.Do(func() {
		c.verifyUseCase, err = c.initVerifyUseCase()
		if err != nil {
			c.initErrors["verifyUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["verifyUseCase"]; exists {
		return nil, storedErr
	}
	return c.verifyUseCase, nil
}

// ConstantHandler returns the HTTP handler for constant reads.
func (c *Container) ConstantHandler() (*obfuscationHTTP.ConstantHandler, error) {
	var err error
	c.constantHandlerInit.Do(func() {
		c.constantHandler, err = c.initConstantHandler()
		if err != nil {
			c.initErrors["constantHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["constantHandler"]; exists {
		return nil, storedErr
	}
	return c.constantHandler, nil
}

func (c *Container) initCatalogUseCase() (usecase.CatalogUseCase, error) {
	// Groups log their build through slog.Default
	c.Logger()

	baseUseCase, err := usecase.NewCatalogUseCase(constants.Registrations()...)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog use case: %w", err)
	}

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for catalog use case: %w", err)
		}
		return usecase.NewCatalogUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) initVerifyUseCase() (usecase.VerifyUseCase, error) {
	catalogUseCase, err := c.CatalogUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog use case for verify use case: %w", err)
	}

	baseUseCase := usecase.NewVerifyUseCase(catalogUseCase)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for verify use case: %w", err)
		}
		return usecase.NewVerifyUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) initConstantHandler() (*obfuscationHTTP.ConstantHandler, error) {
	catalogUseCase, err := c.CatalogUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog use case for constant handler: %w", err)
	}

	return obfuscationHTTP.NewConstantHandler(catalogUseCase, c.Logger()), nil
}

// buildGroups builds every runtime group; the server reports ready once it succeeds.
func buildGroups(ctx context.Context) error {
	for _, g := range constants.Groups() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := g.Build(); err != nil {
			return err
		}
	}
	return nil
}

// arenaSize reports the number of containers in the process-wide arena.
func arenaSize() int {
	return storage.Default().Len()
}
