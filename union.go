package formdata

import (
	"context"
	"errors"
	"fmt"
)

var _ Schema[any] = (*anyOfSchema[any])(nil)

// AnyOf composes alternative schemas into one: input is tried against each
// alternative in order and the first success wins.
//
// When every alternative fails, the combined schema reports a single
// KindInvalidUnion issue at the root whose Alternatives carry each attempted
// branch's issues, in the order the branches were declared. AnyOf defines no
// validation rules of its own; all semantics belong to the alternatives.
//
// msg is the generic message stored under the union's own key, e.g.
// "invalid input".
func AnyOf[T any](msg string, alts ...Schema[T]) Schema[T] {
	return &anyOfSchema[T]{msg: msg, alts: alts}
}

type anyOfSchema[T any] struct {
	msg  string
	alts []Schema[T]
}

func (s *anyOfSchema[T]) Parse(ctx context.Context, values map[string]any) (T, error) {
	var zero T

	if len(s.alts) == 0 {
		return zero, errors.New("formdata: AnyOf requires at least one alternative")
	}

	branches := make([][]Issue, 0, len(s.alts))

	for _, alt := range s.alts {
		value, err := alt.Parse(ctx, values)
		if err == nil {
			return value, nil
		}

		var issues Issues
		if !errors.As(err, &issues) {
			// Not a validation failure; the engine itself broke.
			return zero, fmt.Errorf("formdata: union alternative failed: %w", err)
		}

		branches = append(branches, issues)
	}

	return zero, Issues{{
		Path:         nil,
		Message:      s.msg,
		Kind:         KindInvalidUnion,
		Alternatives: branches,
	}}
}
