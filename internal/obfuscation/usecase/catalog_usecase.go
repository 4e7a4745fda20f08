package usecase

import (
	"context"
	"fmt"

	"github.com/allisson/constguard/internal/obfuscation/domain"
)

type registeredGroup struct {
	source ConstantSource
	kinds  map[string]domain.Kind
	info   domain.GroupInfo
}

type catalogUseCase struct {
	order  []string
	groups map[string]*registeredGroup
}

// NewCatalogUseCase creates a CatalogUseCase over the given registrations.
// Returns ErrDuplicateConstant if two registrations share a group name.
func NewCatalogUseCase(registrations ...Registration) (CatalogUseCase, error) {
	c := &catalogUseCase{groups: make(map[string]*registeredGroup, len(registrations))}

	for _, reg := range registrations {
		name := reg.Source.Name()
		if _, exists := c.groups[name]; exists {
			return nil, fmt.Errorf("%w: group %q registered twice", domain.ErrDuplicateConstant, name)
		}

		kinds := make(map[string]domain.Kind, len(reg.Constants))
		constants := make([]domain.ConstantInfo, len(reg.Constants))
		for i, info := range reg.Constants {
			kinds[info.Name] = info.Kind
			constants[i] = info
		}

		c.groups[name] = &registeredGroup{
			source: reg.Source,
			kinds:  kinds,
			info:   domain.GroupInfo{Name: name, Family: reg.Source.Family(), Constants: constants},
		}
		c.order = append(c.order, name)
	}

	return c, nil
}

// Groups returns every registered group in registration order.
func (c *catalogUseCase) Groups(ctx context.Context) []domain.GroupInfo {
	infos := make([]domain.GroupInfo, 0, len(c.order))
	for _, name := range c.order {
		infos = append(infos, c.groups[name].info)
	}
	return infos
}

// List reads every constant of a group, or of all groups when group is empty.
func (c *catalogUseCase) List(ctx context.Context, group string) ([]domain.Value, error) {
	names := c.order
	if group != "" {
		if _, ok := c.groups[group]; !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrGroupNotFound, group)
		}
		names = []string{group}
	}

	var values []domain.Value
	for _, name := range names {
		g := c.groups[name]
		for _, info := range g.info.Constants {
			value, err := g.source.Value(info.Name, info.Kind)
			if err != nil {
				return nil, err
			}
			values = append(values, value)
		}
	}

	return values, nil
}

// Get reads a single constant.
func (c *catalogUseCase) Get(ctx context.Context, group, name string) (domain.Value, error) {
	g, ok := c.groups[group]
	if !ok {
		return domain.Value{}, fmt.Errorf("%w: %s", domain.ErrGroupNotFound, group)
	}

	kind, ok := g.kinds[name]
	if !ok {
		return domain.Value{}, fmt.Errorf("%w: %s/%s", domain.ErrConstantNotFound, group, name)
	}

	return g.source.Value(name, kind)
}
