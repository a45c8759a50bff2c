package generator

import (
	"bufio"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/xll-gen/resgen/internal/config"
	"github.com/xll-gen/resgen/internal/templates"
)

// EntryResult records what happened to one resource entry.
type EntryResult struct {
	Entry config.ResourceEntry
	// Bytes is the number of bytes embedded. It is zero when Err is set.
	Bytes int
	// Err is a *ResourceError when the file could not be read.
	Err error
}

// OK reports whether the entry was embedded.
func (r EntryResult) OK() bool {
	return r.Err == nil
}

// EmitReport summarizes one generated header.
type EmitReport struct {
	Output  string
	Guard   string
	Entries []EntryResult
}

// Embedded returns the number of entries written to the mapping.
func (r *EmitReport) Embedded() int {
	n := 0
	for _, e := range r.Entries {
		if e.OK() {
			n++
		}
	}
	return n
}

// Failed returns the number of entries skipped because they could not be read.
func (r *EmitReport) Failed() int {
	return len(r.Entries) - r.Embedded()
}

// TotalBytes returns the number of resource bytes embedded.
func (r *EmitReport) TotalBytes() int {
	n := 0
	for _, e := range r.Entries {
		n += e.Bytes
	}
	return n
}

type headerData struct {
	Guard     string
	Namespace string
	Name      string
	Pragma    bool
}

type entryData struct {
	Alias string
	Data  []byte
}

// Emit writes the resource header for entries to cfg.Output.
//
// The header is written to a temporary file next to the output and renamed into
// place once complete, so a failed run never leaves a truncated header behind.
// Entries whose files cannot be read are reported to obs and left out; only
// failures to write the output itself are returned.
func Emit(cfg *config.Config, entries []config.ResourceEntry, guard string, obs Observer) (report *EmitReport, err error) {
	if obs == nil {
		obs = nopObserver{}
	}

	tmpl, err := templates.Parse(templates.Header, GetCommonFuncMap())
	if err != nil {
		return nil, &OutputError{Output: cfg.Output, Err: err}
	}

	tmpPath := filepath.Join(filepath.Dir(cfg.Output), "."+filepath.Base(cfg.Output)+"."+uuid.NewString()+".tmp")
	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, &OutputError{Output: cfg.Output, Err: err}
	}
	defer func() {
		if f != nil {
			f.Close()
		}
		if err != nil {
			os.Remove(tmpPath)
		}
	}()

	header := headerData{
		Guard:     guard,
		Namespace: cfg.Namespace,
		Name:      cfg.Name,
		Pragma:    cfg.Guards == config.GuardPragma,
	}

	w := bufio.NewWriter(f)
	if err = tmpl.ExecuteTemplate(w, "header", header); err != nil {
		return nil, &OutputError{Output: cfg.Output, Err: err}
	}

	report = &EmitReport{Output: cfg.Output, Guard: guard}
	for _, entry := range entries {
		data, rerr := os.ReadFile(entry.Path)
		if rerr != nil {
			rerr = &ResourceError{Path: entry.Path, Err: rerr}
			slog.Warn("skipping resource", "path", entry.Path, "alias", entry.Alias, "error", rerr)
			report.Entries = append(report.Entries, EntryResult{Entry: entry, Err: rerr})
			obs.ResourceFailed(entry, rerr)
			continue
		}

		if err = tmpl.ExecuteTemplate(w, "entry", entryData{Alias: entry.Alias, Data: data}); err != nil {
			return nil, &OutputError{Output: cfg.Output, Err: err}
		}
		slog.Debug("embedded resource", "path", entry.Path, "alias", entry.Alias, "bytes", len(data))
		report.Entries = append(report.Entries, EntryResult{Entry: entry, Bytes: len(data)})
		obs.ResourceEmbedded(entry, len(data))
	}

	if err = tmpl.ExecuteTemplate(w, "footer", header); err != nil {
		return nil, &OutputError{Output: cfg.Output, Err: err}
	}
	if err = w.Flush(); err != nil {
		return nil, &OutputError{Output: cfg.Output, Err: err}
	}

	closeErr := f.Close()
	f = nil
	if closeErr != nil {
		err = &OutputError{Output: cfg.Output, Err: closeErr}
		return nil, err
	}
	if renameErr := os.Rename(tmpPath, cfg.Output); renameErr != nil {
		err = &OutputError{Output: cfg.Output, Err: renameErr}
		return nil, err
	}
	return report, nil
}
