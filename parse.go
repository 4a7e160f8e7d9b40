package formdata

import (
	"context"
	"errors"
	"fmt"

	"go.inout.gg/foundations/debug"
)

// Options configures a single Parse invocation. A nil *Options means
// defaults: empty strings kept, nested error maps.
type Options struct {
	// StripEmptyStrings deletes keys whose value is exactly "" before
	// validation, so the schema engine sees those fields as absent and
	// optional fields are not spuriously flagged.
	StripEmptyStrings bool

	// FlatResult selects dot-joined path keys for the error map instead of
	// the default nested shape.
	FlatResult bool
}

// Outcome is the discriminated result of Parse: either the validated, typed
// value or an ErrorMap, never both and never neither.
//
// The zero Outcome is a failure with no errors recorded; real values are
// produced only by Parse.
type Outcome[T any] struct {
	value  T
	errors ErrorMap
	issues Issues
	valid  bool
}

// Valid reports whether validation succeeded.
func (o Outcome[T]) Valid() bool { return o.valid }

// Value returns the validated, typed value. The boolean mirrors Valid.
func (o Outcome[T]) Value() (T, bool) { return o.value, o.valid }

// MustValue returns the validated value and panics on a failed outcome.
func (o Outcome[T]) MustValue() T {
	debug.Assert(o.valid, "MustValue called on a failed outcome")
	return o.value
}

// Errors returns the normalized error map of a failed outcome, or nil when
// validation succeeded.
func (o Outcome[T]) Errors() ErrorMap { return o.errors }

// Issues returns the raw issue list exactly as the schema engine reported
// it, for callers needing full fidelity beyond the error map. It is nil when
// validation succeeded.
func (o Outcome[T]) Issues() Issues { return o.issues }

// Parse validates form input against schema and normalizes the result.
//
// data may be a Source implementation, a plain map[string]any, url.Values,
// or *multipart.Form; anything else fails with ErrInvalidInputKind. The
// input is normalized to a plain mapping (repeated form keys keep their last
// value), optionally stripped of empty-string values, and handed to the
// schema engine.
//
// A validation failure is not an error of Parse itself: it comes back as a
// failed Outcome carrying the ErrorMap. The returned error is non-nil only
// for unsupported input containers and for engine errors that are not
// validation issues, such as a misconfigured schema; those fail loudly
// instead of being swallowed into an empty map.
//
// Parse is pure: no state is shared across calls and identical inputs yield
// structurally identical outcomes, so it is safe to call concurrently with
// shared schemas.
func Parse[T any](ctx context.Context, schema Schema[T], data any, opts *Options) (Outcome[T], error) {
	var out Outcome[T]

	debug.Assert(schema != nil, "schema must not be nil")

	if opts == nil {
		//nolint:exhaustruct
		opts = &Options{}
	}

	values, err := NormalizeSource(data)
	if err != nil {
		return out, err
	}

	if opts.StripEmptyStrings {
		values = stripEmptyStrings(values)
	}

	value, err := schema.Parse(ctx, values)
	if err != nil {
		var issues Issues
		if !errors.As(err, &issues) {
			return out, fmt.Errorf("formdata: schema engine failed: %w", err)
		}

		d("validation failed with %d issue(s)", len(issues))

		out.issues = issues
		if opts.FlatResult {
			out.errors = FlattenIssues(issues)
		} else {
			out.errors = NestIssues(issues)
		}

		return out, nil
	}

	out.value = value
	out.valid = true

	return out, nil
}

// stripEmptyStrings returns a copy of values without empty-string entries.
// The caller's map is never mutated.
func stripEmptyStrings(values map[string]any) map[string]any {
	out := make(map[string]any, len(values))
	for k, v := range values {
		if s, ok := v.(string); ok && s == "" {
			continue
		}

		out[k] = v
	}

	return out
}
