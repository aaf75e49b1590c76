// Package app contains the application layer - service implementations and effect execution.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/example/stackgen/internal/core/effects"
	"github.com/example/stackgen/internal/core/generation"
	"github.com/example/stackgen/internal/ctxutil"
	"github.com/example/stackgen/internal/ports/primary"
	"github.com/example/stackgen/internal/ports/secondary"
	"github.com/example/stackgen/internal/scaffold"
)

// EffectExecutor interprets and executes effects.
// This is the "Imperative Shell" - the only place I/O happens.
type EffectExecutor interface {
	Execute(ctx context.Context, effs []effects.Effect) (*ExecutionReport, error)
}

// ExecutionReport records what each executed effect did. On failure it
// holds the effects that completed before the failing one.
type ExecutionReport struct {
	Files     []primary.FileResult
	Manifests []primary.ManifestResult
	RunID     string
}

// DefaultEffectExecutor implements EffectExecutor against a FileStore and an
// optional RunRepository.
type DefaultEffectExecutor struct {
	store  secondary.FileStore
	runs   secondary.RunRepository
	logger *slog.Logger
}

// NewEffectExecutor creates a new DefaultEffectExecutor. runs may be nil when
// history is disabled.
func NewEffectExecutor(store secondary.FileStore, runs secondary.RunRepository, logger *slog.Logger) *DefaultEffectExecutor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &DefaultEffectExecutor{
		store:  store,
		runs:   runs,
		logger: logger,
	}
}

// Execute processes a slice of effects in sequence, stopping at the first
// failure.
func (e *DefaultEffectExecutor) Execute(ctx context.Context, effs []effects.Effect) (*ExecutionReport, error) {
	report := &ExecutionReport{}
	if err := e.execute(ctx, effs, report); err != nil {
		return report, err
	}
	return report, nil
}

func (e *DefaultEffectExecutor) execute(ctx context.Context, effs []effects.Effect, report *ExecutionReport) error {
	for _, eff := range effs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := e.executeOne(ctx, eff, report); err != nil {
			var fsErr *scaffold.FileSystemError
			if errors.As(err, &fsErr) {
				return err
			}
			return fmt.Errorf("failed to execute %s effect: %w", eff.EffectType(), err)
		}
	}
	return nil
}

func (e *DefaultEffectExecutor) executeOne(ctx context.Context, eff effects.Effect, report *ExecutionReport) error {
	switch typed := eff.(type) {
	case effects.FileEffect:
		return e.executeFile(ctx, typed, report)
	case effects.ManifestEffect:
		return e.executeManifest(ctx, typed, report)
	case effects.PersistEffect:
		return e.executePersist(ctx, typed, report)
	case effects.LogEffect:
		e.log(ctx).Log(ctx, logLevel(typed.Level), typed.Message, logAttrs(typed.Fields)...)
		return nil
	default:
		return fmt.Errorf("unknown effect type: %T", eff)
	}
}

func (e *DefaultEffectExecutor) executeFile(ctx context.Context, eff effects.FileEffect, report *ExecutionReport) error {
	switch eff.Operation {
	case "mkdir":
		e.log(ctx).Debug("ensure directory", "path", eff.Path)
		return e.store.EnsureDir(ctx, eff.Path, eff.Mode)
	case "write":
		exists, err := e.store.Exists(ctx, eff.Path)
		if err != nil {
			return err
		}

		action := primary.ActionCreated
		switch {
		case exists && eff.SkipIfExists:
			action = primary.ActionSkipped
		case exists:
			action = primary.ActionOverwritten
		}

		if action != primary.ActionSkipped {
			if err := e.store.Write(ctx, eff.Path, eff.Content, eff.Mode); err != nil {
				return err
			}
		}

		e.log(ctx).Debug("artifact", "kind", eff.Kind, "path", eff.Path, "action", action)
		report.Files = append(report.Files, primary.FileResult{
			Kind:   eff.Kind,
			Path:   eff.Path,
			Action: action,
		})
		return nil
	default:
		return fmt.Errorf("unknown file operation: %s", eff.Operation)
	}
}

// executeManifest reads the manifest once, merges the lines and writes it
// back only when something was added.
func (e *DefaultEffectExecutor) executeManifest(ctx context.Context, eff effects.ManifestEffect, report *ExecutionReport) error {
	current, _, err := e.store.ReadIfExists(ctx, eff.Path)
	if err != nil {
		return err
	}

	merged, added := scaffold.MergeManifest(current, eff.Lines)
	if len(added) > 0 {
		if err := e.store.Write(ctx, eff.Path, []byte(merged), 0o644); err != nil {
			return err
		}
	}

	e.log(ctx).Debug("manifest", "manifest", eff.Path, "added", len(added))
	report.Manifests = append(report.Manifests, primary.ManifestResult{
		Path:  eff.Path,
		Added: added,
	})
	return nil
}

func (e *DefaultEffectExecutor) executePersist(ctx context.Context, eff effects.PersistEffect, report *ExecutionReport) error {
	switch eff.Entity {
	case "run":
		return e.executeRunOp(ctx, eff, report)
	default:
		return fmt.Errorf("unknown entity: %s", eff.Entity)
	}
}

func (e *DefaultEffectExecutor) executeRunOp(ctx context.Context, eff effects.PersistEffect, report *ExecutionReport) error {
	switch eff.Operation {
	case "create":
		data, ok := eff.Data.(generation.RunRecord)
		if !ok {
			return fmt.Errorf("invalid run create data type: %T", eff.Data)
		}
		if e.runs == nil {
			return fmt.Errorf("run history is not configured")
		}

		record := &secondary.RunRecord{
			ID:         data.ID,
			Entity:     data.Entity,
			FieldSpec:  data.FieldSpec,
			Migration:  data.Migration,
			FileCount:  data.FileCount,
			SkipClient: data.SkipClient,
		}
		if !data.CreatedAt.IsZero() {
			record.CreatedAt = data.CreatedAt.UTC().Format(time.RFC3339)
		}
		if err := e.runs.Create(ctx, record); err != nil {
			return err
		}

		e.log(ctx).Debug("recorded run", "run_id", record.ID)
		report.RunID = record.ID
		return nil
	default:
		return fmt.Errorf("unknown run operation: %s", eff.Operation)
	}
}

// log returns the executor logger annotated with the entity in ctx.
func (e *DefaultEffectExecutor) log(ctx context.Context) *slog.Logger {
	if entity := ctxutil.EntityFromContext(ctx); entity != "" {
		return e.logger.With("entity", entity)
	}
	return e.logger
}

func logLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// logAttrs flattens fields into slog key/value pairs in key order.
func logAttrs(fields map[string]any) []any {
	args := make([]any, 0, len(fields)*2)
	for _, k := range slices.Sorted(maps.Keys(fields)) {
		args = append(args, k, fields[k])
	}
	return args
}
