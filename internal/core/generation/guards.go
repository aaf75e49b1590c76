package generation

import (
	"fmt"
	"path"
	"strings"

	"github.com/example/stackgen/internal/scaffold"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string // Human-readable reason (populated when not allowed)
}

// Error returns the guard result as an error if not allowed, nil otherwise.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// CanApplyUnits evaluates whether a set of units may be written.
// Rules: at least one unit, every path stays inside the project root, and
// no two units target the same path.
func CanApplyUnits(units []scaffold.GenerationUnit) GuardResult {
	if len(units) == 0 {
		return GuardResult{Allowed: false, Reason: "nothing to generate"}
	}

	paths := make(map[string]scaffold.Kind, len(units))
	for _, u := range units {
		if r := CheckRelativePath(u.Path); !r.Allowed {
			return r
		}
		if other, ok := paths[u.Path]; ok {
			return GuardResult{
				Allowed: false,
				Reason:  fmt.Sprintf("%s and %s both target %s", other, u.Kind, u.Path),
			}
		}
		paths[u.Path] = u.Kind
	}
	return GuardResult{Allowed: true}
}

// CheckRelativePath evaluates whether p is a clean path below the project root.
func CheckRelativePath(p string) GuardResult {
	if p == "" {
		return GuardResult{Allowed: false, Reason: "empty path"}
	}
	if path.IsAbs(p) || strings.HasPrefix(p, "\\") {
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("path %s is absolute", p)}
	}
	clean := path.Clean(p)
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("path %s escapes the project root", p)}
	}
	return GuardResult{Allowed: true}
}
