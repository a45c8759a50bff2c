package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/xll-gen/resgen/internal/config"
	"github.com/xll-gen/resgen/version"
)

// options holds the values bound to the root command's flags.
type options struct {
	guards    config.GuardStyle
	name      string
	namespace string
	output    string
	manifest  string
	verbose   bool
	logLevel  string
	logFile   string
}

// newRootCmd builds the resgen command. Each call returns a fresh command with its own flags.
func newRootCmd() *cobra.Command {
	opts := &options{guards: config.GuardDefine}

	cmd := &cobra.Command{
		Use:   "resgen [file:alias ...]",
		Short: "Generate a C++ header with binary resources",
		Long: `resgen embeds arbitrary files into a single generated C++ header as byte arrays,
keyed by alias, so programs can use them without reading files at runtime.

Arguments starting with '@' name a file holding further arguments, one per line.`,
		Version:       version.Version,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runGenerate(cmd, opts, args)
		},
	}
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	flags := cmd.Flags()
	flags.Var(&opts.guards, "guards", "include guards (define, pragma)")
	flags.StringVar(&opts.name, "name", config.DefaultName, "name for resources")
	flags.StringVar(&opts.namespace, "namespace", config.DefaultNamespace, "namespace for resources")
	flags.StringVarP(&opts.output, "output", "o", config.DefaultOutput, "output file name")
	flags.StringVarP(&opts.manifest, "config", "c", "", "YAML manifest with options and resources")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "report every embedded resource")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to this file instead of stderr")

	return cmd
}

// reportedError marks an error the reporter has already printed.
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

// run expands argument files, executes the command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	expanded, err := config.ExpandArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	cmd := newRootCmd()
	cmd.SetArgs(expanded)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		var reported reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

// Execute runs resgen with the process arguments and exits with its status.
// This is called by main.main().
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
