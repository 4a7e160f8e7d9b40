// Package formframe glues formdata to Go's HTTP stack: it extracts form
// input from a request by media type, validates it against a schema, and
// hands the typed value to a handler. Validation failures are routed to a
// configurable error handler; the default one answers with a 422 JSON body
// carrying the normalized error map.
package formframe

import (
	"cmp"
	"errors"
	"fmt"
	"mime"
	"net/http"

	"github.com/go-json-experiment/json"
	"go.inout.gg/foundations/debug"
	"go.inout.gg/foundations/http/httperror"

	"go.inout.gg/formdata"
)

//nolint:gochecknoglobals
var d = debug.Debuglog("formdata/frame")

const (
	mediaTypeJSON      = "application/json"
	mediaTypeForm      = "application/x-www-form-urlencoded"
	mediaTypeMultipart = "multipart/form-data"
)

// DefaultMaxMultipartMemory bounds the in-memory part of multipart parsing.
const DefaultMaxMultipartMemory int64 = 32 << 20

// ErrUnsupportedMediaType is reported when a request body carries a media
// type the frame cannot turn into form values.
var ErrUnsupportedMediaType = errors.New("formframe: unsupported media type")

// Handler consumes the validated, typed form value.
type Handler[T any] interface {
	ServeForm(w http.ResponseWriter, r *http.Request, form T) error
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc[T any] func(w http.ResponseWriter, r *http.Request, form T) error

func (f HandlerFunc[T]) ServeForm(w http.ResponseWriter, r *http.Request, form T) error {
	return f(w, r, form)
}

// Options configures a mounted form endpoint.
type Options struct {
	// Form is passed through to formdata.Parse.
	Form *formdata.Options

	// ErrorHandler receives validation failures (as *ValidationError) and
	// every other request error. Defaults to DefaultErrorHandler.
	ErrorHandler httperror.ErrorHandler

	// JSONUnmarshalOptions customize decoding of JSON request bodies.
	JSONUnmarshalOptions []json.Options

	// MaxMultipartMemory bounds in-memory multipart parsing. Defaults to
	// DefaultMaxMultipartMemory.
	MaxMultipartMemory int64
}

// ValidationError carries a failed parse outcome across the error-handling
// boundary: the normalized error map plus the raw issues for callers needing
// full fidelity.
type ValidationError struct {
	Errors formdata.ErrorMap
	Issues formdata.Issues
}

func (e *ValidationError) Error() string { return e.Issues.Error() }

// DefaultErrorHandler answers validation failures with a 422 JSON body of
// the shape {"errors": {...}}, unsupported media types with 415, and
// unrecognized input containers with 400. Anything else is delegated to
// foundations' default handler.
//
//nolint:gochecknoglobals
var DefaultErrorHandler httperror.ErrorHandler = httperror.ErrorHandlerFunc(
	func(w http.ResponseWriter, r *http.Request, err error) {
		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
				"errors": validationErr.Errors,
			})

			return
		}

		switch {
		case errors.Is(err, ErrUnsupportedMediaType):
			http.Error(w, http.StatusText(http.StatusUnsupportedMediaType), http.StatusUnsupportedMediaType)
		case errors.Is(err, formdata.ErrInvalidInputKind):
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		default:
			httperror.DefaultErrorHandler(w, r, err)
		}
	},
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", mediaTypeJSON)
	w.WriteHeader(status)

	if err := json.MarshalWrite(w, body); err != nil {
		d("failed to write JSON response: %v", err)
	}
}

// Handle mounts schema in front of h and returns the resulting handler.
//
// GET and HEAD requests are validated against their query string; other
// methods against the request body per its Content-Type (JSON, url-encoded
// form, or multipart form).
func Handle[T any](schema formdata.Schema[T], h Handler[T], opts *Options) http.Handler {
	if opts == nil {
		//nolint:exhaustruct
		opts = &Options{}
	}

	debug.Assert(schema != nil, "schema must not be nil")
	debug.Assert(h != nil, "handler must not be nil")

	errorHandler := cmp.Or(opts.ErrorHandler, DefaultErrorHandler)
	maxMemory := cmp.Or(opts.MaxMultipartMemory, DefaultMaxMultipartMemory)

	handleError := httperror.WithErrorHandler(errorHandler)

	return handleError(httperror.HandlerFunc(func(w http.ResponseWriter, r *http.Request) error {
		data, err := extract(r, maxMemory, opts.JSONUnmarshalOptions)
		if err != nil {
			return err
		}

		out, err := formdata.Parse(r.Context(), schema, data, opts.Form)
		if err != nil {
			return fmt.Errorf("formframe: failed to parse form: %w", err)
		}

		if !out.Valid() {
			d("request failed validation with %d issue(s)", len(out.Issues()))

			return &ValidationError{Errors: out.Errors(), Issues: out.Issues()}
		}

		return h.ServeForm(w, r, out.MustValue())
	}))
}

// extract normalizes the request into one of the input containers accepted
// by formdata.Parse.
func extract(r *http.Request, maxMemory int64, jsonOpts []json.Options) (any, error) {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return r.URL.Query(), nil
	}

	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("formframe: failed to parse Content-Type header: %w", err)
	}

	switch mediaType {
	case mediaTypeJSON:
		d("received JSON request")

		var values map[string]any
		if err := json.UnmarshalRead(r.Body, &values, jsonOpts...); err != nil {
			return nil, fmt.Errorf("formframe: failed to decode JSON body: %w", err)
		}

		return values, nil
	case mediaTypeForm:
		d("received form request")

		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("formframe: failed to parse form data: %w", err)
		}

		return r.PostForm, nil
	case mediaTypeMultipart:
		d("received multipart request")

		if err := r.ParseMultipartForm(maxMemory); err != nil {
			return nil, fmt.Errorf("formframe: failed to parse multipart form: %w", err)
		}

		return r.MultipartForm, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMediaType, mediaType)
	}
}
