package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/allisson/constguard/internal/obfuscation/codegen"
)

// RunGenerate seals the constants of a YAML manifest into a Go source file.
// A non-empty pkg overrides the package declared by the manifest.
func RunGenerate(manifestPath, outPath, pkg string, writer io.Writer) error {
	return runGenerate(manifestPath, outPath, pkg, writer, codegen.NewGenerator(nil))
}

func runGenerate(manifestPath, outPath, pkg string, writer io.Writer, generator *codegen.Generator) error {
	f, err := os.Open(manifestPath)
	if err != nil {
		return fmt.Errorf("failed to open manifest: %w", err)
	}
	defer func() { _ = f.Close() }()

	manifest, err := codegen.LoadManifest(f)
	if err != nil {
		return fmt.Errorf("failed to load manifest %s: %w", manifestPath, err)
	}

	if pkg != "" {
		manifest.Package = pkg
	}

	source, err := generator.Generate(manifest)
	if err != nil {
		return fmt.Errorf("failed to generate sealed source: %w", err)
	}

	if err := os.WriteFile(outPath, source, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	_, err = fmt.Fprintf(writer, "Sealed %d constant(s) of group %q into %s\n",
		len(manifest.Constants), manifest.Group, outPath)
	return err
}
