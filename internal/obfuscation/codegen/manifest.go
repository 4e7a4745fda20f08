// Package codegen seals constants into generated Go source.
//
// A manifest lists named literals. The generator runs the keyed pipeline over
// each one at generation time and emits a file that holds only the stored
// words, the split build key and accessors that reverse the pipeline on read.
// The plaintext literals never reach the compiled binary.
package codegen

import (
	"fmt"
	"io"
	"math"
	"strconv"

	validation "github.com/jellydator/validation"
	"gopkg.in/yaml.v3"

	apperrors "github.com/allisson/constguard/internal/errors"
	"github.com/allisson/constguard/internal/obfuscation/domain"
	customValidation "github.com/allisson/constguard/internal/validation"
)

// Manifest describes one sealed constant group.
type Manifest struct {
	Package   string          `yaml:"package"`
	Group     string          `yaml:"group"`
	Prefix    string          `yaml:"prefix"`
	Constants []ManifestEntry `yaml:"constants"`
}

// ManifestEntry is one named literal of a manifest.
type ManifestEntry struct {
	Name  string `yaml:"name"`
	Kind  string `yaml:"kind"`
	Value string `yaml:"value"`
	Doc   string `yaml:"doc"`
}

// LoadManifest decodes and validates a YAML manifest.
func LoadManifest(r io.Reader) (*Manifest, error) {
	var m Manifest

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to decode manifest: %w", err)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	return &m, nil
}

// Validate checks the manifest fields and that every literal parses.
func (m *Manifest) Validate() error {
	err := validation.ValidateStruct(m,
		validation.Field(&m.Package, validation.Required, customValidation.LowerIdentifier),
		validation.Field(&m.Group, validation.Required, customValidation.LowerIdentifier),
		validation.Field(&m.Prefix, customValidation.ExportedIdentifier),
		validation.Field(&m.Constants, validation.Required),
	)
	if err != nil {
		return customValidation.WrapValidationError(err)
	}

	seen := make(map[string]bool, len(m.Constants))
	for i := range m.Constants {
		entry := &m.Constants[i]

		err := validation.ValidateStruct(entry,
			validation.Field(&entry.Name, validation.Required, customValidation.ExportedIdentifier),
			validation.Field(&entry.Kind, validation.Required, customValidation.Kind),
			validation.Field(&entry.Value, validation.Required, customValidation.Literal(entry.Kind)),
			validation.Field(&entry.Doc, customValidation.SingleLine),
		)
		if err != nil {
			return customValidation.WrapValidationError(fmt.Errorf("constants[%d]: %w", i, err))
		}

		if seen[entry.Name] {
			return fmt.Errorf("%w: %q", domain.ErrDuplicateConstant, entry.Name)
		}
		seen[entry.Name] = true
	}

	return nil
}

// Definitions parses every entry into a domain definition.
func (m *Manifest) Definitions() ([]domain.Definition, error) {
	definitions := make([]domain.Definition, 0, len(m.Constants))

	for _, entry := range m.Constants {
		switch domain.Kind(entry.Kind) {
		case domain.KindFloat64:
			f, err := strconv.ParseFloat(entry.Value, 64)
			if err != nil {
				return nil, apperrors.Wrapf(apperrors.ErrInvalidInput, "%s: %v", entry.Name, err)
			}
			if math.IsNaN(f) {
				return nil, apperrors.Wrapf(apperrors.ErrInvalidInput, "%s: NaN cannot be sealed", entry.Name)
			}
			definitions = append(definitions, domain.Float64Definition(entry.Name, f))
		case domain.KindInt32:
			i, err := strconv.ParseInt(entry.Value, 10, 32)
			if err != nil {
				return nil, apperrors.Wrapf(apperrors.ErrInvalidInput, "%s: %v", entry.Name, err)
			}
			definitions = append(definitions, domain.Int32Definition(entry.Name, int32(i)))
		case domain.KindDecimal:
			d, err := domain.ParseDecimal(entry.Value)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", entry.Name, err)
			}
			definitions = append(definitions, domain.DecimalDefinition(entry.Name, d))
		default:
			return nil, fmt.Errorf("%w: %s: %s", domain.ErrUnsupportedKind, entry.Name, entry.Kind)
		}
	}

	return definitions, nil
}
