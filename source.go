package formdata

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/url"
)

// ErrInvalidInputKind is reported when the input data is neither a plain
// mapping nor a recognized form-encoded container.
var ErrInvalidInputKind = errors.New("formdata: invalid input kind")

var (
	_ Source = (Map)(nil)
	_ Source = (Form)(nil)
)

// Source is an input container that can be normalized into the canonical
// key-value mapping handed to the schema engine.
//
// The set of built-in sources is intentionally small: Map for plain mappings,
// Form for url-encoded containers. New containers are added by implementing
// Source, never by extending the flattening engine.
type Source interface {
	// FormValues returns the canonical mapping. Implementations may return
	// a shallow view of their own storage; Parse never mutates the result
	// in place.
	FormValues() map[string]any
}

// Map is a plain key-value mapping source. It is passed through as-is.
type Map map[string]any

func (m Map) FormValues() map[string]any { return m }

// Form is a url-encoded container source, e.g. http.Request.Form or any
// url.Values. A key appearing multiple times keeps only its last value;
// this last-entry-wins behavior is an explicit contract of the package.
type Form url.Values

func (f Form) FormValues() map[string]any {
	values := make(map[string]any, len(f))
	for k, vs := range f {
		if len(vs) == 0 {
			continue
		}

		values[k] = vs[len(vs)-1]
	}

	return values
}

// NormalizeSource converts supported input containers into the canonical
// mapping. Supported kinds: Source implementations, map[string]any,
// url.Values, and *multipart.Form (its value fields only).
//
// Anything else fails with ErrInvalidInputKind.
func NormalizeSource(data any) (map[string]any, error) {
	switch src := data.(type) {
	case Source:
		return src.FormValues(), nil
	case map[string]any:
		return src, nil
	case url.Values:
		return Form(src).FormValues(), nil
	case *multipart.Form:
		if src == nil {
			return nil, fmt.Errorf("%w: nil *multipart.Form", ErrInvalidInputKind)
		}

		return Form(src.Value).FormValues(), nil
	case nil:
		return nil, fmt.Errorf("%w: nil", ErrInvalidInputKind)
	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidInputKind, data)
	}
}
