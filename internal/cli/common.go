// Package cli contains the cobra commands of the stackgen binary.
package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/example/stackgen/internal/scaffold"
	"github.com/example/stackgen/internal/wire"
)

// DefaultFieldSpec is used when generate is called without a field list.
const DefaultFieldSpec = "name:string,description:string"

// NewLogger returns the process logger: Debug when verbose, Warn otherwise.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// entityArgs requires the entity name and allows an optional field list.
func entityArgs(cmd *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return scaffold.NewUsageError("missing entity name (usage: %s)", cmd.UseLine())
	case len(args) > 2:
		return scaffold.NewUsageError("unexpected argument %q (usage: %s)", args[2], cmd.UseLine())
	}
	return nil
}

// fieldSpecArg returns the field list argument or the default.
func fieldSpecArg(args []string) string {
	if len(args) > 1 {
		return args[1]
	}
	return DefaultFieldSpec
}

// containerFor builds the dependency container from the command's flags.
// readOnly keeps the history database closed.
func containerFor(cmd *cobra.Command, readOnly bool) (*wire.Container, error) {
	root, _ := cmd.Flags().GetString("root")
	verbose, _ := cmd.Flags().GetBool("verbose")

	opts := wire.Options{
		Root:      root,
		Logger:    NewLogger(cmd.ErrOrStderr(), verbose),
		NoHistory: readOnly,
	}
	if f := cmd.Flags().Lookup("backend-dir"); f != nil {
		opts.BackendDir = f.Value.String()
	}
	if f := cmd.Flags().Lookup("client-dir"); f != nil {
		opts.ClientDir = f.Value.String()
	}
	if f := cmd.Flags().Lookup("skip-client"); f != nil {
		opts.SkipClient, _ = cmd.Flags().GetBool("skip-client")
	}
	if noHistory, _ := cmd.Flags().GetBool("no-history"); noHistory {
		opts.NoHistory = true
	}

	return wire.New(opts)
}

// addLayoutFlags registers the per-run layout overrides.
func addLayoutFlags(cmd *cobra.Command) {
	cmd.Flags().String("backend-dir", "", "Backend source directory (overrides backend_dir)")
	cmd.Flags().String("client-dir", "", "Client source directory (overrides client_dir)")
	cmd.Flags().Bool("skip-client", false, "Do not generate client artifacts")
}
