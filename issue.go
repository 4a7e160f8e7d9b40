package formdata

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind tags the category of a validation failure.
//
// Only KindInvalidUnion changes how an issue is processed: it marks an issue
// carrying one sub-issue list per attempted union alternative. Every other
// kind is carried through for callers that want to branch on it.
type Kind string

const (
	KindInvalidType    Kind = "invalid_type"
	KindInvalidLiteral Kind = "invalid_literal"
	KindRequired       Kind = "required"
	KindTooSmall       Kind = "too_small"
	KindTooBig         Kind = "too_big"
	KindInvalidFormat  Kind = "invalid_format"
	KindInvalidUnion   Kind = "invalid_union"
	KindCustom         Kind = "custom"
)

// Path locates a value within nested input data. An empty path refers to the
// root value.
//
// Segments are property names (string) or non-negative array indices (int).
type Path []any

// Key renders the path in dot notation, e.g. "user.addresses.0.street".
// The empty path renders as "".
func (p Path) Key() string {
	if len(p) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, seg := range p {
		if i > 0 {
			sb.WriteByte('.')
		}

		switch s := seg.(type) {
		case string:
			sb.WriteString(s)
		case int:
			sb.WriteString(strconv.Itoa(s))
		default:
			sb.WriteString(fmt.Sprint(s))
		}
	}

	return sb.String()
}

// Issue is a single validation failure reported by a schema engine.
type Issue struct {
	// Path locates the failing value. Inside Alternatives, paths are
	// relative to the parent issue's path.
	Path Path

	// Message is the human-readable description, already worded by the
	// schema definition.
	Message string

	// Kind categorizes the failure.
	Kind Kind

	// Alternatives carries one issue list per attempted union branch.
	// It is populated only when Kind is KindInvalidUnion.
	Alternatives [][]Issue
}

// Issues is an ordered collection of validation failures. Schema adapters
// return it as the error value of a failed parse; Parse recognizes it via
// errors.As and turns it into an ErrorMap. Any other error kind propagates
// untouched.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return "formdata: validation failed"
	}

	const maxShown = 3

	var sb strings.Builder
	sb.WriteString("formdata: validation failed: ")

	lim := min(len(iss), maxShown)
	for i := range lim {
		if i > 0 {
			sb.WriteString("; ")
		}

		fmt.Fprintf(&sb, "%s at %q", iss[i].Kind, iss[i].Path.Key())
	}

	if len(iss) > lim {
		fmt.Fprintf(&sb, "; ... (total %d)", len(iss))
	}

	return sb.String()
}
