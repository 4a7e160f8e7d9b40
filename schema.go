package formdata

import "context"

// Schema is the contract between this package and an external validation
// engine. It is the only boundary the package depends on; adapters binding
// concrete engines live under contrib/.
//
// Parse validates the prepared key-value mapping and returns the fully
// validated, typed value. On validation failure it returns an Issues error
// describing every reported problem. Any other error is treated as engine
// misuse (e.g. a malformed schema handle) and is propagated loudly rather
// than being reshaped into an ErrorMap.
type Schema[T any] interface {
	Parse(ctx context.Context, values map[string]any) (T, error)
}

// SchemaFunc adapts a plain function to the Schema interface.
type SchemaFunc[T any] func(ctx context.Context, values map[string]any) (T, error)

func (f SchemaFunc[T]) Parse(ctx context.Context, values map[string]any) (T, error) {
	return f(ctx, values)
}
