package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/xll-gen/resgen/internal/config"
	"github.com/xll-gen/resgen/internal/generator"
	"github.com/xll-gen/resgen/internal/ui"
	"github.com/xll-gen/resgen/pkg/log"
)

// runGenerate resolves the configuration from flags, the optional manifest and the
// positional resources, then writes the header.
//
// Returns:
//   - error: A configuration error, or a reportedError wrapping a fatal generation error.
//     Resources that cannot be read are reported but do not fail the run.
func runGenerate(cmd *cobra.Command, opts *options, args []string) error {
	if !log.ValidLevel(opts.logLevel) {
		return fmt.Errorf("invalid logging level: %s (allowed: debug, info, warn, error)", opts.logLevel)
	}
	closer, err := log.Init(opts.logFile, opts.logLevel, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer closer.Close()

	cfg, entries, err := resolve(cmd, opts, args)
	if err != nil {
		return err
	}
	slog.Debug("resolved configuration",
		"namespace", cfg.Namespace,
		"name", cfg.Name,
		"output", cfg.Output,
		"guards", cfg.Guards.String(),
		"resources", len(entries),
	)

	rep := ui.NewReporter(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts.verbose)
	for _, alias := range config.DuplicateAliases(entries) {
		slog.Warn("duplicate alias", "alias", alias)
		rep.DuplicateAlias(alias)
	}

	report, err := generator.Generate(cfg, entries, rep)
	if err != nil {
		var dirErr *generator.DirectoryError
		var outErr *generator.OutputError
		switch {
		case errors.As(err, &dirErr):
			rep.DirectoryFailed(dirErr.Dir, dirErr.Output)
		case errors.As(err, &outErr):
			rep.OutputFailed(outErr.Output, outErr.Err)
		default:
			return err
		}
		slog.Error("generation failed", "error", err)
		return reportedError{err: err}
	}

	rep.Generated(report.Output)
	return nil
}

// resolve merges the manifest (if any) under the command-line flags, applies defaults
// and parses the positional resources. Manifest resources come first.
func resolve(cmd *cobra.Command, opts *options, args []string) (*config.Config, []config.ResourceEntry, error) {
	cfg := &config.Config{
		Namespace: opts.namespace,
		Name:      opts.name,
		Output:    opts.output,
		Guards:    opts.guards,
	}

	var entries []config.ResourceEntry
	if opts.manifest != "" {
		m, err := config.LoadManifest(opts.manifest)
		if err != nil {
			return nil, nil, err
		}
		if err := m.Apply(cfg, flagSet(cmd)); err != nil {
			return nil, nil, err
		}
		entries = append(entries, m.Resources...)
	}

	positional, err := config.ParseEntries(args)
	if err != nil {
		return nil, nil, err
	}
	entries = append(entries, positional...)

	config.ApplyDefaults(cfg)
	if err := config.Validate(cfg, entries); err != nil {
		return nil, nil, err
	}
	return cfg, entries, nil
}

// flagSet reports whether a flag was given a non-empty value on the command line.
// An empty value counts as unset so the manifest or the default applies.
func flagSet(cmd *cobra.Command) func(name string) bool {
	return func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed && f.Value.String() != ""
	}
}
