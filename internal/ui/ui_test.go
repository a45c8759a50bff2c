package ui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xll-gen/resgen/internal/config"
)

func TestReporter(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, &buf, false)

	r.ResourceEmbedded(config.ResourceEntry{Path: "a.bin", Alias: "a"}, 10)
	r.ResourceFailed(config.ResourceEntry{Path: "missing.bin", Alias: "m"}, errors.New("boom"))
	r.DuplicateAlias("a")
	r.Generated("out/res.hpp")

	assert.Equal(t, "[FAIL] Can't open file 'missing.bin'\n"+
		"[WARN] Duplicate alias 'a'\n"+
		"[ OK ] File 'out/res.hpp' generated\n", buf.String())
}

func TestReporter_Verbose(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, &buf, true)

	r.ResourceEmbedded(config.ResourceEntry{Path: "a.bin", Alias: "logo"}, 2048)
	assert.Equal(t, "[ OK ] Embedded 'logo' (2.0 kB)\n", buf.String())
}

func TestReporter_FatalGoesToErrOut(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewReporter(&out, &errOut, false)

	r.ResourceFailed(config.ResourceEntry{Path: "missing.bin", Alias: "m"}, errors.New("boom"))
	r.DirectoryFailed("newdir", "newdir/out.hpp")
	r.OutputFailed("out.hpp", errors.New("disk full"))

	assert.Equal(t, "[FAIL] Can't open file 'missing.bin'\n", out.String())
	assert.Equal(t, "[FAIL] Can't create directory 'newdir' for output file 'newdir/out.hpp'\n"+
		"[FAIL] Can't write output file 'out.hpp': disk full\n", errOut.String())
}
