// Package goskemaform binds github.com/reoring/goskema schemas to the
// formdata.Schema contract.
//
// goskema reports issues with JSON Pointer paths and string codes; this
// package converts them into formdata segment paths and kinds, leaving
// messages untouched. Errors that are not goskema issues, such as a broken
// schema construction, pass through unchanged so they fail loudly.
package goskemaform

import (
	"context"

	goskema "github.com/reoring/goskema"

	"go.inout.gg/formdata"
)

var _ formdata.Schema[any] = (*schema[any])(nil)

// Schema adapts a goskema schema to the formdata.Schema contract.
func Schema[T any](s goskema.Schema[T]) formdata.Schema[T] {
	return &schema[T]{inner: s}
}

type schema[T any] struct {
	inner goskema.Schema[T]
}

func (s *schema[T]) Parse(ctx context.Context, values map[string]any) (T, error) {
	value, err := s.inner.Parse(ctx, values)
	if err != nil {
		var zero T

		if issues, ok := goskema.AsIssues(err); ok {
			return zero, convertIssues(issues)
		}

		return zero, err
	}

	return value, nil
}

func convertIssues(issues goskema.Issues) formdata.Issues {
	out := make(formdata.Issues, 0, len(issues))
	for _, issue := range issues {
		out = append(out, formdata.Issue{
			Path:         parsePointer(issue.Path),
			Message:      issue.Message,
			Kind:         kindOf(issue.Code),
			Alternatives: nil,
		})
	}

	return out
}

// kindOf maps goskema issue codes onto formdata kinds. Codes without a
// direct counterpart collapse into KindCustom; only KindInvalidUnion has
// special meaning downstream and goskema's discriminated unions never carry
// per-branch sub-issues, so it is never produced here.
func kindOf(code string) formdata.Kind {
	switch code {
	case goskema.CodeInvalidType, goskema.CodeParseError:
		return formdata.KindInvalidType
	case goskema.CodeRequired, goskema.CodeDiscriminatorMissing:
		return formdata.KindRequired
	case goskema.CodeTooSmall, goskema.CodeTooShort:
		return formdata.KindTooSmall
	case goskema.CodeTooBig, goskema.CodeTooLong, goskema.CodeOverflow:
		return formdata.KindTooBig
	case goskema.CodeInvalidEnum, goskema.CodeDiscriminatorUnknown:
		return formdata.KindInvalidLiteral
	case goskema.CodePattern, goskema.CodeInvalidFormat:
		return formdata.KindInvalidFormat
	default:
		return formdata.KindCustom
	}
}
