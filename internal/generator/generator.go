package generator

import (
	"log/slog"

	"github.com/xll-gen/resgen/internal/config"
)

// Observer is notified about each resource as it is processed.
type Observer interface {
	ResourceEmbedded(entry config.ResourceEntry, size int)
	ResourceFailed(entry config.ResourceEntry, err error)
}

type nopObserver struct{}

func (nopObserver) ResourceEmbedded(config.ResourceEntry, int) {}
func (nopObserver) ResourceFailed(config.ResourceEntry, error) {}

// Generate runs the whole pipeline for a resolved configuration: it derives the
// include guard, ensures the output directory exists and emits the header.
//
// Parameters:
//   - cfg: The resolved configuration (defaults applied, output normalized).
//   - entries: The resources to embed, in mapping order.
//   - obs: Receives per-resource progress. May be nil.
//
// Returns:
//   - *EmitReport: Per-entry results when the header was written.
//   - error: A *DirectoryError or *OutputError. Unreadable resources are not errors.
func Generate(cfg *config.Config, entries []config.ResourceEntry, obs Observer) (*EmitReport, error) {
	guard := DeriveGuard(cfg.Output, cfg.Namespace)
	slog.Debug("derived include guard", "output", cfg.Output, "namespace", cfg.Namespace, "guard", guard)

	if err := EnsureParentDir(cfg.Output); err != nil {
		return nil, err
	}

	report, err := Emit(cfg, entries, guard, obs)
	if err != nil {
		return nil, err
	}

	slog.Info("generated resource header",
		"output", report.Output,
		"embedded", report.Embedded(),
		"failed", report.Failed(),
		"bytes", report.TotalBytes(),
	)
	return report, nil
}
