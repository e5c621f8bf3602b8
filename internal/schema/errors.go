package schema

import (
	"fmt"
	"strings"
)

// Problem is one inconsistency found in a declaration.
type Problem struct {
	Entity  string
	Field   string
	Message string
}

// String returns a formatted problem string.
func (p Problem) String() string {
	var prefix []string
	if p.Entity != "" {
		prefix = append(prefix, "["+p.Entity+"]")
	}
	if p.Field != "" {
		prefix = append(prefix, p.Field)
	}
	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + p.Message
	}
	return p.Message
}

// Error is returned when a declaration is inconsistent. It lists every
// problem found, not just the first.
type Error struct {
	Problems []Problem
}

func (e *Error) Error() string {
	parts := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		parts[i] = p.String()
	}
	return fmt.Sprintf("invalid schema (%d problems): %s", len(e.Problems), strings.Join(parts, "; "))
}

// problems accumulates Problems while a declaration is checked.
type problems []Problem

func (ps *problems) add(entity, field, format string, args ...any) {
	*ps = append(*ps, Problem{Entity: entity, Field: field, Message: fmt.Sprintf(format, args...)})
}

func (ps problems) err() error {
	if len(ps) == 0 {
		return nil
	}
	return &Error{Problems: ps}
}
