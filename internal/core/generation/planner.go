// Package generation contains the pure planning logic for a generation run.
// This is part of the Functional Core - no I/O, only pure functions.
package generation

import (
	"path"
	"time"

	"github.com/example/stackgen/internal/core/effects"
	"github.com/example/stackgen/internal/scaffold"
)

const (
	dirMode  = 0o755
	fileMode = 0o644
)

// RunRecord is the history row persisted at the end of a run.
type RunRecord struct {
	ID         string
	Entity     string
	FieldSpec  string
	Migration  string // migration class name
	FileCount  int
	SkipClient bool
	CreatedAt  time.Time
}

// PlanInput contains everything needed to plan a run.
// All values are pre-computed by the caller - no I/O in the planner.
type PlanInput struct {
	Fields       []scaffold.FieldSpec
	Units        []scaffold.GenerationUnit
	Manifests    []scaffold.ManifestEntry
	SkipExisting bool
	Record       *RunRecord // nil when history is disabled
}

// Plan represents the planned effects for a generation run.
type Plan struct {
	LogOps      []effects.LogEffect
	DirOps      []effects.FileEffect
	WriteOps    []effects.FileEffect
	ManifestOps []effects.ManifestEffect
	DatabaseOps []effects.PersistEffect
}

// Effects returns all effects as a flat slice for execution.
// Warnings come first, then directories, artifact writes, manifests and history.
func (p Plan) Effects() []effects.Effect {
	result := make([]effects.Effect, 0, len(p.LogOps)+len(p.DirOps)+len(p.WriteOps)+len(p.ManifestOps)+len(p.DatabaseOps))
	for _, e := range p.LogOps {
		result = append(result, e)
	}
	for _, e := range p.DirOps {
		result = append(result, e)
	}
	for _, e := range p.WriteOps {
		result = append(result, e)
	}
	for _, e := range p.ManifestOps {
		result = append(result, e)
	}
	for _, e := range p.DatabaseOps {
		result = append(result, e)
	}
	return result
}

// GeneratePlan creates the effect plan for a generation run.
// This is a pure function - all input data must be pre-computed.
func GeneratePlan(input PlanInput) Plan {
	var plan Plan

	// 0. Unknown type tokens fall back to text
	for _, f := range input.Fields {
		if f.Known {
			continue
		}
		plan.LogOps = append(plan.LogOps, effects.LogEffect{
			Level:   "WARN",
			Message: "unknown field type, using text",
			Fields: map[string]any{
				"field":  f.Name,
				"type":   f.RawType,
				"column": f.ColumnType,
			},
		})
	}

	// 1. One mkdir per distinct parent directory
	seen := make(map[string]bool)
	addDir := func(file string) {
		dir := path.Dir(file)
		if dir == "." || seen[dir] {
			return
		}
		seen[dir] = true
		plan.DirOps = append(plan.DirOps, effects.FileEffect{
			Operation: "mkdir",
			Path:      dir,
			Mode:      dirMode,
		})
	}
	for _, u := range input.Units {
		addDir(u.Path)
	}
	for _, m := range input.Manifests {
		addDir(m.Manifest)
	}

	// 2. Artifact writes, in emission order
	for _, u := range input.Units {
		plan.WriteOps = append(plan.WriteOps, effects.FileEffect{
			Operation:    "write",
			Path:         u.Path,
			Kind:         string(u.Kind),
			Content:      []byte(u.Content),
			Mode:         fileMode,
			SkipIfExists: input.SkipExisting,
		})
	}

	// 3. One merge per manifest, first-seen order
	order, lines := scaffold.GroupManifestEntries(input.Manifests)
	for _, manifest := range order {
		plan.ManifestOps = append(plan.ManifestOps, effects.ManifestEffect{
			Path:  manifest,
			Lines: lines[manifest],
		})
	}

	// 4. History
	if input.Record != nil {
		plan.DatabaseOps = append(plan.DatabaseOps, effects.PersistEffect{
			Entity:    "run",
			Operation: "create",
			Data:      *input.Record,
		})
	}

	return plan
}
