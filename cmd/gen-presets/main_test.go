package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/mediacore/preset"
)

const doc1080p30 = `{
    "description": "1080p30",
    "frame": {"width": 1920, "height": 1080},
    "frame_rate": {"number": 30, "denominator": 1},
    "sample_aspect": {"number": 1, "denominator": 1},
    "display_aspect": {"number": 16, "denominator": 9},
    "explicit_type": "Computed",
    "render_type": "Progressive",
    "color_space": "Bt709"
}`

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "presets")
	for name, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	return dir
}

func TestParseCLIFlags(t *testing.T) {
	config, err := parseCLIFlags([]string{"-in", "defs", "-o", "out.go", "-pkg", "catalog", "-v"})
	require.NoError(t, err)
	assert.Equal(t, "defs", config.inputDir)
	assert.Equal(t, "out.go", config.outputFile)
	assert.Equal(t, "catalog", config.packageName)
	assert.Equal(t, "DEBUG", config.logLevel)

	defaults, err := parseCLIFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, "presets", defaults.inputDir)
	assert.Equal(t, preset.DefaultOptions().Workers, defaults.workers)

	_, err = parseCLIFlags([]string{"-o", ""})
	assert.ErrorIs(t, err, errMissingFlag)

	_, err = parseCLIFlags([]string{"-h"})
	assert.ErrorIs(t, err, flag.ErrHelp)
}

func TestRunWritesGeneratedFile(t *testing.T) {
	in := writeTree(t, map[string]string{"HD/1080p30.json": doc1080p30})
	out := filepath.Join(t.TempDir(), "zz_generated_presets.go")

	config, err := parseCLIFlags([]string{"-in", in, "-o", out})
	require.NoError(t, err)
	require.NoError(t, run(context.Background(), config))

	src, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(src), `m["HD - 1080p30"]`)
	assert.Contains(t, string(src), "package preset")
}

func TestRunDigestIgnoresCheckoutLocation(t *testing.T) {
	files := map[string]string{"HD/1080p30.json": doc1080p30}
	first := filepath.Join(t.TempDir(), "a.go")
	second := filepath.Join(t.TempDir(), "b.go")

	for _, out := range []string{first, second} {
		config, err := parseCLIFlags([]string{"-in", writeTree(t, files), "-o", out})
		require.NoError(t, err)
		require.NoError(t, run(context.Background(), config))
	}

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestRunFailureWritesNothing(t *testing.T) {
	in := writeTree(t, map[string]string{
		"HD/1080p30.json": doc1080p30,
		"HD/broken.json":  `{"description": 5}`,
	})
	outDir := t.TempDir()
	out := filepath.Join(outDir, "zz_generated_presets.go")
	require.NoError(t, os.WriteFile(out, []byte("previous"), 0o644))

	config, err := parseCLIFlags([]string{"-in", in, "-o", out})
	require.NoError(t, err)
	err = run(context.Background(), config)
	require.Error(t, err)
	assert.ErrorIs(t, err, preset.ErrInvalidDocument)

	kept, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(kept))

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files are cleaned up")
}

func TestRunMissingInput(t *testing.T) {
	config, err := parseCLIFlags([]string{"-in", filepath.Join(t.TempDir(), "nope"), "-o", filepath.Join(t.TempDir(), "x.go")})
	require.NoError(t, err)
	assert.ErrorIs(t, run(context.Background(), config), os.ErrNotExist)
}
