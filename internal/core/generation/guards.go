// Package generation contains the pure business logic for generation runs.
// This is part of the Functional Core - no I/O, only pure functions.
package generation

import (
	"fmt"
	"path"
	"strings"
)

// WriteContext describes a rendered file set about to be written.
type WriteContext struct {
	Paths []string
}

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

// CanWriteFiles evaluates whether a rendered file set may be written.
// Rule: the set is non-empty, every path stays inside the output directory
// and no two files share a path (entity names such as "UserRole" and
// "User_role" map to the same file).
func CanWriteFiles(ctx WriteContext) GuardResult {
	if len(ctx.Paths) == 0 {
		return GuardResult{Allowed: false, Reason: "nothing to write - the schema produced no files"}
	}

	seen := make(map[string]bool, len(ctx.Paths))
	for _, p := range ctx.Paths {
		clean := path.Clean(p)
		if p == "" || path.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, "../") {
			return GuardResult{
				Allowed: false,
				Reason:  fmt.Sprintf("cannot write %q - output paths must be relative to the output directory", p),
			}
		}
		if seen[clean] {
			return GuardResult{
				Allowed: false,
				Reason:  fmt.Sprintf("cannot write %s twice - two entities render to the same file", clean),
			}
		}
		seen[clean] = true
	}

	return GuardResult{Allowed: true}
}
