package commands

import (
	"bytes"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/constguard/internal/obfuscation/codegen"
)

const testManifest = `package: sealedtest
group: demo
prefix: Demo
constants:
  - name: Pi
    kind: float64
    value: "3.141592653589793"
  - name: Answer
    kind: int32
    value: "42"
`

func writeManifest(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "manifest.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRunGenerate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		manifestPath := writeManifest(t, testManifest)
		outPath := filepath.Join(t.TempDir(), "demo_gen.go")

		var out bytes.Buffer
		err := RunGenerate(manifestPath, outPath, "", &out)
		require.NoError(t, err)
		assert.Contains(t, out.String(), `Sealed 2 constant(s) of group "demo"`)

		source, err := os.ReadFile(outPath)
		require.NoError(t, err)

		file, err := parser.ParseFile(token.NewFileSet(), outPath, source, 0)
		require.NoError(t, err)
		assert.Equal(t, "sealedtest", file.Name.Name)
		assert.Contains(t, string(source), "func DemoPi() float64")
		assert.Contains(t, string(source), "func DemoAnswer() int32")
		assert.NotContains(t, string(source), "3.141592653589793")
	})

	t.Run("package-override", func(t *testing.T) {
		manifestPath := writeManifest(t, testManifest)
		outPath := filepath.Join(t.TempDir(), "demo_gen.go")

		keys := []uint64{0x0123456789abcdef, 0xfedcba9876543210}
		generator := codegen.NewGenerator(func() (uint64, error) {
			k := keys[0]
			keys = keys[1:]
			return k, nil
		})

		err := runGenerate(manifestPath, outPath, "other", &bytes.Buffer{}, generator)
		require.NoError(t, err)

		source, err := os.ReadFile(outPath)
		require.NoError(t, err)
		assert.Contains(t, string(source), "package other")
		assert.Contains(t, string(source), "demoKeyA uint64 = 0x0123456789abcdef")
		assert.Contains(t, string(source), "demoKeyB uint64 = 0xfedcba9876543210")
	})

	t.Run("missing-manifest", func(t *testing.T) {
		err := RunGenerate(filepath.Join(t.TempDir(), "missing.yaml"), filepath.Join(t.TempDir(), "out.go"), "", &bytes.Buffer{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to open manifest")
	})

	t.Run("invalid-manifest", func(t *testing.T) {
		manifestPath := writeManifest(t, "package: Bad\ngroup: demo\nconstants: []\n")
		outPath := filepath.Join(t.TempDir(), "out.go")

		err := RunGenerate(manifestPath, outPath, "", &bytes.Buffer{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load manifest")
		assert.NoFileExists(t, outPath)
	})
}
