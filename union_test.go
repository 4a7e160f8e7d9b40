package formdata

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// literalBranch mimics one union alternative of a feature-flag form:
// enabled must equal want, and when want is true a title must be present.
func literalBranch(want bool) SchemaFunc[map[string]any] {
	return func(_ context.Context, values map[string]any) (map[string]any, error) {
		var issues Issues

		if enabled, _ := values["enabled"].(bool); enabled != want {
			issues = append(issues, Issue{
				Path:    Path{"enabled"},
				Message: "enabled must match the expected literal",
				Kind:    KindInvalidLiteral,
			})
		}

		if want {
			if _, ok := values["title"]; !ok {
				issues = append(issues, Issue{
					Path:    Path{"title"},
					Message: "title is required",
					Kind:    KindRequired,
				})
			}
		}

		if issues != nil {
			return nil, issues
		}

		return values, nil
	}
}

func TestAnyOf(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	schema := AnyOf[map[string]any]("invalid input", literalBranch(true), literalBranch(false))

	t.Run("first matching alternative wins", func(t *testing.T) {
		t.Parallel()

		value, err := schema.Parse(ctx, map[string]any{"enabled": true, "title": "hello"})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"enabled": true, "title": "hello"}, value)

		value, err = schema.Parse(ctx, map[string]any{"enabled": false})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"enabled": false}, value)
	})

	t.Run("all alternatives failing reports one union issue", func(t *testing.T) {
		t.Parallel()

		// enabled=true matches the first branch's literal but misses title;
		// the second branch rejects the literal.
		_, err := schema.Parse(ctx, map[string]any{"enabled": true})
		require.Error(t, err)

		var issues Issues
		require.ErrorAs(t, err, &issues)
		require.Len(t, issues, 1)

		issue := issues[0]
		assert.Equal(t, KindInvalidUnion, issue.Kind)
		assert.Empty(t, issue.Path)
		assert.Equal(t, "invalid input", issue.Message)
		require.Len(t, issue.Alternatives, 2)

		assert.Equal(t, Path{"title"}, issue.Alternatives[0][0].Path)
		assert.Equal(t, Path{"enabled"}, issue.Alternatives[1][0].Path)
	})

	t.Run("flattened union failure covers every attempted branch", func(t *testing.T) {
		t.Parallel()

		out, err := Parse(ctx, schema, Map{"enabled": true}, &Options{FlatResult: true})
		require.NoError(t, err)

		errs := out.Errors()
		assert.Equal(t, "invalid input", errs.Get(""))
		assert.Equal(t, "title is required", errs.Get("title"))
		assert.Equal(t, "enabled must match the expected literal", errs.Get("enabled"))
	})

	t.Run("engine errors are not folded into the union issue", func(t *testing.T) {
		t.Parallel()

		engineErr := errors.New("broken alternative")
		broken := SchemaFunc[map[string]any](
			func(_ context.Context, _ map[string]any) (map[string]any, error) {
				return nil, engineErr
			},
		)

		_, err := AnyOf[map[string]any]("invalid input", broken).Parse(ctx, map[string]any{})
		require.ErrorIs(t, err, engineErr)
	})

	t.Run("no alternatives is a programmer error", func(t *testing.T) {
		t.Parallel()

		_, err := AnyOf[map[string]any]("invalid input").Parse(ctx, map[string]any{})
		require.Error(t, err)

		var issues Issues
		assert.False(t, errors.As(err, &issues))
	})
}
