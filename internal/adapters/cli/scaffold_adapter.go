// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle argument parsing, output formatting,
// but delegate business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/example/stackgen/internal/ports/primary"
	"github.com/example/stackgen/internal/scaffold"
)

// ScaffoldAdapter is a thin adapter that translates CLI operations to ScaffoldService calls.
// It depends only on the ScaffoldService interface, enabling easy testing with mocks.
type ScaffoldAdapter struct {
	service primary.ScaffoldService
	out     io.Writer
}

// NewScaffoldAdapter creates a new ScaffoldAdapter with the given service.
func NewScaffoldAdapter(service primary.ScaffoldService, out io.Writer) *ScaffoldAdapter {
	return &ScaffoldAdapter{
		service: service,
		out:     out,
	}
}

// Generate runs a generation and prints one line per artifact and manifest.
func (a *ScaffoldAdapter) Generate(ctx context.Context, req primary.GenerateRequest) error {
	resp, err := a.service.Generate(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Generating %s\n\n", resp.Entity)
	for _, f := range resp.Files {
		fmt.Fprintf(a.out, "%s %s\n", actionLabel(f.Action), f.Path)
	}

	if len(resp.Manifests) > 0 {
		fmt.Fprintln(a.out)
		for _, m := range resp.Manifests {
			if len(m.Added) == 0 {
				fmt.Fprintf(a.out, "%s %s\n", color.New(color.FgBlue).Sprint("= unchanged "), m.Path)
				continue
			}
			fmt.Fprintf(a.out, "%s %s (+%d)\n", color.New(color.FgGreen).Sprint("✓ updated   "), m.Path, len(m.Added))
		}
	}

	fmt.Fprintf(a.out, "\nMigration: %s\n", resp.Migration)
	if resp.RunID != "" {
		fmt.Fprintf(a.out, "Run:       %s\n", resp.RunID)
	}
	return nil
}

// Preview prints what a generation would write. With showContent set the
// rendered artifacts are printed as well.
func (a *ScaffoldAdapter) Preview(ctx context.Context, req primary.GenerateRequest, showContent bool) error {
	resp, err := a.service.Preview(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Generating %s\n\n", resp.Entity)
	fmt.Fprintln(a.out, "Files to write:")
	for _, f := range resp.Files {
		fmt.Fprintf(a.out, "  %-15s %s\n", f.Kind, f.Path)
	}
	fmt.Fprintln(a.out)

	fmt.Fprintln(a.out, "Manifests to update:")
	for _, m := range resp.Manifests {
		fmt.Fprintf(a.out, "  %s\n", m.Path)
		for _, line := range m.Lines {
			fmt.Fprintf(a.out, "    %s\n", line)
		}
	}
	fmt.Fprintln(a.out)

	fmt.Fprintf(a.out, "Migration: %s\n", resp.Migration)
	fmt.Fprintln(a.out, color.New(color.FgYellow).Sprint("(dry-run mode - no files written)"))

	if showContent {
		for _, f := range resp.Files {
			fmt.Fprintf(a.out, "\n--- %s ---\n", f.Path)
			fmt.Fprint(a.out, f.Content)
		}
	}
	return nil
}

// History prints recorded runs as a table.
func (a *ScaffoldAdapter) History(ctx context.Context, req primary.HistoryRequest) error {
	runs, err := a.service.History(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if len(runs) == 0 {
		fmt.Fprintln(a.out, "No runs recorded")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RUN\tENTITY\tFIELDS\tMIGRATION\tFILES\tCREATED")
	for _, r := range runs {
		files := fmt.Sprintf("%d", r.FileCount)
		if r.SkipClient {
			files += " (no client)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", r.ID, r.Entity, r.FieldSpec, r.Migration, files, r.CreatedAt)
	}
	return w.Flush()
}

// ShowRun prints one recorded run.
func (a *ScaffoldAdapter) ShowRun(ctx context.Context, id string) error {
	run, err := a.service.GetRun(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get run: %w", err)
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Run:\t%s\n", run.ID)
	fmt.Fprintf(w, "Entity:\t%s\n", run.Entity)
	fmt.Fprintf(w, "Fields:\t%s\n", run.FieldSpec)
	fmt.Fprintf(w, "Migration:\t%s\n", run.Migration)
	fmt.Fprintf(w, "Files:\t%d\n", run.FileCount)
	fmt.Fprintf(w, "Client:\t%t\n", !run.SkipClient)
	fmt.Fprintf(w, "Created:\t%s\n", run.CreatedAt)
	return w.Flush()
}

// Types prints the recognized field type tokens.
func (a *ScaffoldAdapter) Types() error {
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TOKEN\tVALUE TYPE\tCOLUMN\tTYPESCRIPT")
	for _, e := range scaffold.KnownTypes() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Token, e.ValueType, e.ColumnType, e.ValueType.TSType())
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\nUnknown tokens fall back to %s (%s). Mark optional fields with '?': %s\n",
		strings.ToLower(scaffold.DefaultResolution.ValueType.String()),
		scaffold.DefaultResolution.ColumnType,
		"nickname?:string")
	return nil
}

func actionLabel(action string) string {
	switch action {
	case primary.ActionCreated:
		return color.New(color.FgGreen).Sprint("✓ created    ")
	case primary.ActionOverwritten:
		return color.New(color.FgYellow).Sprint("! overwritten")
	case primary.ActionSkipped:
		return color.New(color.FgBlue).Sprint("- skipped    ")
	default:
		return action
	}
}
