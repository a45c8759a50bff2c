// Package ui prints run status lines for the terminal.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/xll-gen/resgen/internal/config"
)

// Reporter writes "[ OK ]", "[WARN]" and "[FAIL]" status lines.
// Lines for failures that abort the run go to a separate error writer.
// Tags are colored only when writing to the process's stdout or stderr.
type Reporter struct {
	out     io.Writer
	errOut  io.Writer
	verbose bool

	ok    *color.Color
	warn  *color.Color
	fail  *color.Color
	fatal *color.Color
}

// NewReporter returns a Reporter writing status lines to out and fatal errors
// to errOut. When verbose is set, every embedded resource gets its own line.
func NewReporter(out, errOut io.Writer, verbose bool) *Reporter {
	r := &Reporter{
		out:     out,
		errOut:  errOut,
		verbose: verbose,
		ok:      color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
		fail:    color.New(color.FgRed, color.Bold),
		fatal:   color.New(color.FgRed, color.Bold),
	}
	if !isStdStream(out) {
		r.ok.DisableColor()
		r.warn.DisableColor()
		r.fail.DisableColor()
	}
	if !isStdStream(errOut) {
		r.fatal.DisableColor()
	}
	return r
}

func isStdStream(w io.Writer) bool {
	return w == io.Writer(os.Stdout) || w == io.Writer(os.Stderr)
}

func (r *Reporter) line(c *color.Color, tag, format string, args ...any) {
	writeLine(r.out, c, tag, format, args...)
}

func writeLine(w io.Writer, c *color.Color, tag, format string, args ...any) {
	fmt.Fprintf(w, "[%s] %s\n", c.Sprint(tag), fmt.Sprintf(format, args...))
}

// ResourceEmbedded implements generator.Observer.
func (r *Reporter) ResourceEmbedded(entry config.ResourceEntry, size int) {
	if !r.verbose {
		return
	}
	r.line(r.ok, " OK ", "Embedded '%s' (%s)", entry.Alias, humanize.Bytes(uint64(size)))
}

// ResourceFailed implements generator.Observer.
func (r *Reporter) ResourceFailed(entry config.ResourceEntry, err error) {
	r.line(r.fail, "FAIL", "Can't open file '%s'", entry.Path)
}

// DuplicateAlias warns that alias maps to more than one resource.
func (r *Reporter) DuplicateAlias(alias string) {
	r.line(r.warn, "WARN", "Duplicate alias '%s'", alias)
}

// Generated reports a successfully written header.
func (r *Reporter) Generated(output string) {
	r.line(r.ok, " OK ", "File '%s' generated", output)
}

// DirectoryFailed reports that the output directory could not be created.
func (r *Reporter) DirectoryFailed(dir, output string) {
	writeLine(r.errOut, r.fatal, "FAIL", "Can't create directory '%s' for output file '%s'", dir, output)
}

// OutputFailed reports that the header could not be written.
func (r *Reporter) OutputFailed(output string, err error) {
	writeLine(r.errOut, r.fatal, "FAIL", "Can't write output file '%s': %v", output, err)
}
