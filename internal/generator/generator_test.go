package generator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xll-gen/resgen/internal/config"
)

func TestGenerate_CreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	res := writeResource(t, dir, "r.bin", []byte("abc"))

	cfg := &config.Config{Namespace: "resources", Name: "resources", Output: filepath.Join(dir, "newdir", "sub", "out.hpp")}
	report, err := Generate(cfg, []config.ResourceEntry{{Path: res, Alias: "r"}}, nil)
	require.NoError(t, err)

	content := readOutput(t, cfg.Output)
	assert.Contains(t, content, "#ifndef _RESOURCES_OUT_HPP_\n")
	assert.Contains(t, content, `{ "r", { 97,98,99, } },`)
	assert.Equal(t, "_RESOURCES_OUT_HPP_", report.Guard)
}

func TestGenerate_Idempotent(t *testing.T) {
	dir := t.TempDir()
	a := writeResource(t, dir, "a.bin", []byte{0, 1, 2, 3})
	b := writeResource(t, dir, "b.bin", []byte(strings.Repeat("z", 100)))
	entries := []config.ResourceEntry{{Path: a, Alias: "a"}, {Path: b, Alias: "b"}}
	cfg := &config.Config{Namespace: "ns", Name: "table", Output: filepath.Join(dir, "gen", "out.hpp")}

	_, err := Generate(cfg, entries, nil)
	require.NoError(t, err)
	first := readOutput(t, cfg.Output)

	_, err = Generate(cfg, entries, nil)
	require.NoError(t, err)
	second := readOutput(t, cfg.Output)

	assert.Equal(t, first, second)
}

func TestGenerate_DirectoryFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	cfg := &config.Config{Namespace: "resources", Name: "resources", Output: filepath.Join(blocker, "sub", "out.hpp")}
	_, err := Generate(cfg, nil, nil)

	var dirErr *DirectoryError
	require.ErrorAs(t, err, &dirErr)
	assert.Equal(t, filepath.Join(blocker, "sub"), dirErr.Dir)
}
