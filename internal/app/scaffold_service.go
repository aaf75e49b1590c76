package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/example/stackgen/internal/core/generation"
	"github.com/example/stackgen/internal/ctxutil"
	"github.com/example/stackgen/internal/ports/primary"
	"github.com/example/stackgen/internal/ports/secondary"
	"github.com/example/stackgen/internal/scaffold"
)

// ErrHistoryDisabled is returned by History when no run repository is wired.
var ErrHistoryDisabled = errors.New("generation history is disabled")

// ScaffoldOptions holds the configured defaults for every run.
type ScaffoldOptions struct {
	Layout     scaffold.Layout
	SkipClient bool
	Overwrite  bool // false behaves like SkipExisting on every run
}

// ScaffoldServiceImpl implements the ScaffoldService interface.
type ScaffoldServiceImpl struct {
	opts      ScaffoldOptions
	generator *scaffold.Generator
	executor  EffectExecutor
	runs      secondary.RunRepository
	logger    *slog.Logger
	now       func() time.Time
}

// NewScaffoldService creates a new ScaffoldService. runs may be nil, which
// disables history. now defaults to time.Now.
func NewScaffoldService(
	opts ScaffoldOptions,
	generator *scaffold.Generator,
	executor EffectExecutor,
	runs secondary.RunRepository,
	logger *slog.Logger,
	now func() time.Time,
) *ScaffoldServiceImpl {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if now == nil {
		now = time.Now
	}
	return &ScaffoldServiceImpl{
		opts:      opts,
		generator: generator,
		executor:  executor,
		runs:      runs,
		logger:    logger,
		now:       now,
	}
}

// prepared is the pure part of a run: everything computed before any I/O.
type prepared struct {
	input     scaffold.EmitInput
	units     []scaffold.GenerationUnit
	manifests []scaffold.ManifestEntry
}

func (s *ScaffoldServiceImpl) prepare(req primary.GenerateRequest) (*prepared, error) {
	// 1. Validate all input before touching the disk
	fields, err := scaffold.ParseFields(req.FieldSpec)
	if err != nil {
		return nil, err
	}
	names, err := scaffold.DeriveNames(req.Entity)
	if err != nil {
		return nil, err
	}

	// 2. One stamp per run
	input := scaffold.EmitInput{
		Names:      names,
		Fields:     fields,
		Stamp:      scaffold.NewMigrationStamp(s.now()),
		Layout:     s.opts.Layout,
		SkipClient: req.SkipClient || s.opts.SkipClient,
	}

	// 3. Render
	units, err := s.generator.Emit(input)
	if err != nil {
		return nil, err
	}
	if err := generation.CanApplyUnits(units).Error(); err != nil {
		return nil, err
	}

	return &prepared{
		input:     input,
		units:     units,
		manifests: scaffold.Manifests(input, units),
	}, nil
}

// Generate writes every artifact for an entity and merges its manifests.
func (s *ScaffoldServiceImpl) Generate(ctx context.Context, req primary.GenerateRequest) (*primary.GenerateResponse, error) {
	p, err := s.prepare(req)
	if err != nil {
		return nil, err
	}

	migration := scaffold.MigrationClassName(p.input.Names, p.input.Stamp)

	var record *generation.RunRecord
	if s.runs != nil {
		record = &generation.RunRecord{
			Entity:     req.Entity,
			FieldSpec:  req.FieldSpec,
			Migration:  migration,
			FileCount:  len(p.units),
			SkipClient: p.input.SkipClient,
			CreatedAt:  p.input.Stamp.Time(),
		}
	}

	// 4. Plan
	plan := generation.GeneratePlan(generation.PlanInput{
		Fields:       p.input.Fields,
		Units:        p.units,
		Manifests:    p.manifests,
		SkipExisting: req.SkipExisting || !s.opts.Overwrite,
		Record:       record,
	})

	// 5. Apply
	s.logger.Debug("generating", "entity", p.input.Names.TypeName, "units", len(p.units))
	ctx = ctxutil.WithEntity(ctx, p.input.Names.TypeName)
	report, err := s.executor.Execute(ctx, plan.Effects())
	if err != nil {
		return nil, err
	}

	// 6. Report
	s.logger.Info("generated", "entity", p.input.Names.TypeName, "run_id", report.RunID)
	return &primary.GenerateResponse{
		RunID:     report.RunID,
		Entity:    p.input.Names.TypeName,
		Migration: migration,
		Files:     report.Files,
		Manifests: report.Manifests,
	}, nil
}

// Preview computes what Generate would write. It performs no I/O.
func (s *ScaffoldServiceImpl) Preview(ctx context.Context, req primary.GenerateRequest) (*primary.PreviewResponse, error) {
	p, err := s.prepare(req)
	if err != nil {
		return nil, err
	}

	resp := &primary.PreviewResponse{
		Entity:    p.input.Names.TypeName,
		Migration: scaffold.MigrationClassName(p.input.Names, p.input.Stamp),
	}
	for _, u := range p.units {
		resp.Files = append(resp.Files, primary.PlannedFile{
			Kind:    string(u.Kind),
			Path:    u.Path,
			Content: u.Content,
		})
	}

	order, lines := scaffold.GroupManifestEntries(p.manifests)
	for _, path := range order {
		resp.Manifests = append(resp.Manifests, primary.PlannedManifest{
			Path:  path,
			Lines: lines[path],
		})
	}

	return resp, nil
}

// History lists recorded runs, newest first.
func (s *ScaffoldServiceImpl) History(ctx context.Context, req primary.HistoryRequest) ([]*primary.Run, error) {
	if s.runs == nil {
		return nil, ErrHistoryDisabled
	}

	records, err := s.runs.List(ctx, secondary.RunFilters{
		Entity: req.Entity,
		Limit:  req.Limit,
	})
	if err != nil {
		return nil, err
	}

	runs := make([]*primary.Run, len(records))
	for i, r := range records {
		runs[i] = toRun(r)
	}
	return runs, nil
}

// GetRun returns one recorded run.
func (s *ScaffoldServiceImpl) GetRun(ctx context.Context, id string) (*primary.Run, error) {
	if s.runs == nil {
		return nil, ErrHistoryDisabled
	}

	record, err := s.runs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toRun(record), nil
}

func toRun(r *secondary.RunRecord) *primary.Run {
	return &primary.Run{
		ID:         r.ID,
		Entity:     r.Entity,
		FieldSpec:  r.FieldSpec,
		Migration:  r.Migration,
		FileCount:  r.FileCount,
		SkipClient: r.SkipClient,
		CreatedAt:  r.CreatedAt,
	}
}
