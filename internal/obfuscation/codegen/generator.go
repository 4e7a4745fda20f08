package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"

	"github.com/allisson/constguard/internal/obfuscation/domain"
	"github.com/allisson/constguard/internal/obfuscation/service"
)

// KeySource draws one 64-bit build key component.
type KeySource func() (uint64, error)

// Generator turns manifests into sealed Go source.
type Generator struct {
	keySource KeySource
	codec     service.Codec
}

// NewGenerator creates a Generator drawing build keys from keySource.
// A nil keySource uses service.RandomKey.
func NewGenerator(keySource KeySource) *Generator {
	if keySource == nil {
		keySource = service.RandomKey
	}
	return &Generator{keySource: keySource, codec: service.NewKeyedCodec()}
}

type sealedEntry struct {
	Name   string
	Func   string
	Kind   string
	Doc    string
	Word64 uint64
	Word32 uint32
	Words  [4]uint32
}

type sealedFile struct {
	Package    string
	Group      string
	KeyA       uint64
	KeyB       uint64
	Entries    []sealedEntry
	HasFloat   bool
	HasDecimal bool
}

// Generate seals every constant of m and returns gofmt'ed Go source.
//
// The build key is split in two halves drawn independently; generated
// accessors XOR them on every read.
func (g *Generator) Generate(m *Manifest) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	definitions, err := m.Definitions()
	if err != nil {
		return nil, err
	}

	keyA, err := g.keySource()
	if err != nil {
		return nil, fmt.Errorf("failed to draw build key: %w", err)
	}
	keyB, err := g.keySource()
	if err != nil {
		return nil, fmt.Errorf("failed to draw build key: %w", err)
	}
	key := keyA ^ keyB

	file := sealedFile{Package: m.Package, Group: m.Group, KeyA: keyA, KeyB: keyB}
	for i, def := range definitions {
		entry := sealedEntry{
			Name: def.Name,
			Func: m.Prefix + def.Name,
			Kind: string(def.Kind),
			Doc:  m.Constants[i].Doc,
		}

		switch def.Kind {
		case domain.KindFloat64:
			entry.Word64 = g.codec.Encode64(def.Bits64(), key, def.Name)
			file.HasFloat = true
		case domain.KindInt32:
			entry.Word32 = g.codec.Encode32(def.Bits32(), key, def.Name)
		case domain.KindDecimal:
			entry.Words = g.codec.EncodeDecimal(def.Decimal, key, def.Name)
			file.HasDecimal = true
		}

		file.Entries = append(file.Entries, entry)
	}

	var buf bytes.Buffer
	if err := sealedTemplate.Execute(&buf, file); err != nil {
		return nil, fmt.Errorf("failed to render sealed source: %w", err)
	}

	source, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format sealed source: %w", err)
	}

	return source, nil
}

// kindIdentifier returns the Go expression naming a constant kind.
func kindIdentifier(kind string) string {
	switch domain.Kind(kind) {
	case domain.KindFloat64:
		return "domain.KindFloat64"
	case domain.KindInt32:
		return "domain.KindInt32"
	default:
		return "domain.KindDecimal"
	}
}

var sealedTemplate = template.Must(template.New("sealed").Funcs(template.FuncMap{
	"hex64":     func(v uint64) string { return fmt.Sprintf("0x%016x", v) },
	"hex32":     func(v uint32) string { return fmt.Sprintf("0x%08x", v) },
	"kindIdent": kindIdentifier,
}).Parse(sealedSource))
