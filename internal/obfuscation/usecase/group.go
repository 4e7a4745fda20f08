package usecase

import (
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/google/uuid"

	"github.com/allisson/constguard/internal/obfuscation/domain"
	"github.com/allisson/constguard/internal/obfuscation/service"
	"github.com/allisson/constguard/internal/obfuscation/storage"
)

// slot locates one constant inside the group's container.
type slot struct {
	kind   domain.Kind
	offset int
}

// GroupOption configures a Group.
type GroupOption func(*Group)

// WithPepper overrides the fixed pepper component of the group key.
func WithPepper(pepper uint64) GroupOption {
	return func(g *Group) {
		g.pepper = pepper
	}
}

// WithArena publishes the group container to arena instead of the process-wide one.
func WithArena(arena *storage.Arena) GroupOption {
	return func(g *Group) {
		g.arena = arena
	}
}

// WithLogger sets the logger used when the group is built.
// Without it the group logs to slog.Default() as it is at build time.
func WithLogger(logger *slog.Logger) GroupOption {
	return func(g *Group) {
		g.logger = logger
	}
}

// Group is a lazily built set of obfuscated constants sharing one family and key.
//
// The define function runs exactly once, on first access, and its definitions
// are discarded after the forward pipeline has encoded them. Slots are indexed
// by identifier hash so identifiers are not kept either. A Group is safe for
// concurrent use.
type Group struct {
	id     uuid.UUID
	name   string
	family domain.Family
	pepper uint64
	arena  *storage.Arena
	logger *slog.Logger

	once     sync.Once
	define   func() []domain.Definition
	buildErr error
	codec    service.Codec
	key      service.KeyMaterial
	handle   uint64
	slots    map[uint32]slot
}

// NewGroup declares a constant group. Nothing is encoded until the first read.
func NewGroup(
	name string,
	family domain.Family,
	define func() []domain.Definition,
	opts ...GroupOption,
) *Group {
	g := &Group{
		id:     uuid.Must(uuid.NewV7()),
		name:   name,
		family: family,
		pepper: domain.Pepper,
		arena:  storage.Default(),
		define: define,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the group instance id.
func (g *Group) ID() uuid.UUID {
	return g.id
}

// Name returns the group name.
func (g *Group) Name() string {
	return g.name
}

// Family returns the obfuscation family of the group.
func (g *Group) Family() domain.Family {
	return g.family
}

// Build runs the forward pipeline if it has not run yet and returns its error.
func (g *Group) Build() error {
	g.once.Do(func() {
		g.buildErr = g.build()
		g.define = nil
	})
	return g.buildErr
}

func (g *Group) build() error {
	codec, err := service.NewCodec(g.family)
	if err != nil {
		return fmt.Errorf("group %s: %w", g.name, err)
	}

	key, err := service.NewKeyMaterial(g.name, g.family, g.pepper)
	if err != nil {
		return fmt.Errorf("group %s: %w", g.name, err)
	}

	var definitions []domain.Definition
	if g.define != nil {
		definitions = g.define()
	}

	mix := key.Mix()
	slots := make(map[uint32]slot, len(definitions))
	var builder storage.Builder

	for _, def := range definitions {
		h := service.Hash(def.Name)
		if _, exists := slots[h]; exists {
			return fmt.Errorf("group %s: %w: %q", g.name, domain.ErrDuplicateConstant, def.Name)
		}

		var offset int
		switch def.Kind {
		case domain.KindFloat64:
			offset = builder.Append64(codec.Encode64(def.Bits64(), mix, def.Name))
		case domain.KindInt32:
			offset = builder.Append32(codec.Encode32(def.Bits32(), mix, def.Name))
		case domain.KindDecimal:
			if err := def.Decimal.Validate(); err != nil {
				return fmt.Errorf("group %s: constant %q: %w", g.name, def.Name, err)
			}
			offset = builder.Append128(codec.EncodeDecimal(def.Decimal, mix, def.Name))
		default:
			return fmt.Errorf("group %s: constant %q: %w: %s", g.name, def.Name, domain.ErrUnsupportedKind, def.Kind)
		}

		slots[h] = slot{kind: def.Kind, offset: offset}
	}

	index := g.arena.Publish(builder.Build())

	g.codec = codec
	g.key = key
	g.slots = slots
	g.handle = storage.Mask(index, mix)

	logger := g.logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Debug("constant group built",
		slog.String("group", g.name),
		slog.String("group_id", g.id.String()),
		slog.String("family", string(g.family)),
		slog.Int("constants", len(slots)),
	)

	return nil
}

// resolve finds the container and slot of a constant and returns the current key mix.
func (g *Group) resolve(name string, kind domain.Kind) (*storage.Container, slot, uint64, error) {
	if err := g.Build(); err != nil {
		return nil, slot{}, 0, err
	}

	s, ok := g.slots[service.Hash(name)]
	if !ok {
		return nil, slot{}, 0, fmt.Errorf("%w: %s/%s", domain.ErrConstantNotFound, g.name, name)
	}
	if s.kind != kind {
		return nil, slot{}, 0, fmt.Errorf(
			"%w: %s/%s is %s, not %s", domain.ErrKindMismatch, g.name, name, s.kind, kind,
		)
	}

	mix := g.key.Mix()
	container, err := g.arena.Resolve(g.handle, mix)
	if err != nil {
		return nil, slot{}, 0, err
	}

	return container, s, mix, nil
}

// Float64 reads a float64 constant.
func (g *Group) Float64(name string) (float64, error) {
	container, s, mix, err := g.resolve(name, domain.KindFloat64)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(g.codec.Decode64(container.Word(s.offset), mix, name)), nil
}

// Int32 reads an int32 constant.
func (g *Group) Int32(name string) (int32, error) {
	container, s, mix, err := g.resolve(name, domain.KindInt32)
	if err != nil {
		return 0, err
	}
	return int32(g.codec.Decode32(container.Word32(s.offset), mix, name)), nil
}

// Decimal reads a decimal constant.
func (g *Group) Decimal(name string) (domain.Decimal, error) {
	container, s, mix, err := g.resolve(name, domain.KindDecimal)
	if err != nil {
		return domain.Decimal{}, err
	}
	return g.codec.DecodeDecimal(container.Words4(s.offset), mix, name), nil
}

// Value reads a constant of any kind.
func (g *Group) Value(name string, kind domain.Kind) (domain.Value, error) {
	value := domain.Value{Group: g.name, Name: name, Kind: kind}

	var err error
	switch kind {
	case domain.KindFloat64:
		value.Float64, err = g.Float64(name)
	case domain.KindInt32:
		value.Int32, err = g.Int32(name)
	case domain.KindDecimal:
		value.Decimal, err = g.Decimal(name)
	default:
		err = fmt.Errorf("%w: %s", domain.ErrUnsupportedKind, kind)
	}
	if err != nil {
		return domain.Value{}, err
	}

	return value, nil
}
