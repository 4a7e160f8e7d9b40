// Package playgroundform binds a struct type validated by
// github.com/go-playground/validator/v10 to the formdata.Schema contract,
// with value coercion performed by github.com/go-playground/form/v4.
//
// The form decoder coerces string form values into the struct's field types
// (numbers, booleans, times), so a url-encoded container and a plain mapping
// holding the same logical values validate identically. Field errors are
// reported under the field's form tag name, nested structs under dotted
// paths.
package playgroundform

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/form/v4"
	"github.com/go-playground/validator/v10"

	"go.inout.gg/formdata"
)

// Config customizes a schema. All fields are optional.
type Config struct {
	// Decoder coerces the normalized mapping into the struct. Defaults to
	// a form.Decoder reading `form` tags.
	Decoder *form.Decoder

	// Validate runs the struct rules. Defaults to a validator reading
	// `form` tags for field names, falling back to `json`.
	Validate *validator.Validate

	// MessageFunc words the message for one field error. Defaults to
	// DefaultMessage.
	MessageFunc func(fe validator.FieldError) string
}

var _ formdata.Schema[any] = (*schema[any])(nil)

// Schema builds a formdata.Schema validating values of struct type T.
//
// A nil config uses the package defaults.
func Schema[T any](config *Config) formdata.Schema[T] {
	if config == nil {
		//nolint:exhaustruct
		config = &Config{}
	}

	messageFunc := config.MessageFunc
	if messageFunc == nil {
		messageFunc = DefaultMessage
	}

	return &schema[T]{
		decoder:     cmp.Or(config.Decoder, defaultDecoder()),
		validate:    cmp.Or(config.Validate, defaultValidator()),
		messageFunc: messageFunc,
	}
}

type schema[T any] struct {
	decoder     *form.Decoder
	validate    *validator.Validate
	messageFunc func(fe validator.FieldError) string
}

func (s *schema[T]) Parse(ctx context.Context, values map[string]any) (T, error) {
	var value T

	if err := s.decoder.Decode(&value, encodeValues(values)); err != nil {
		var decodeErrs form.DecodeErrors
		if !errors.As(err, &decodeErrs) {
			return value, fmt.Errorf("playgroundform: failed to decode values: %w", err)
		}

		var zero T
		return zero, decodeIssues(decodeErrs)
	}

	if err := s.validate.StructCtx(ctx, value); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			// InvalidValidationError and friends: programmer error.
			return value, fmt.Errorf("playgroundform: failed to validate: %w", err)
		}

		var zero T
		return zero, s.issues(fieldErrs)
	}

	return value, nil
}

func (s *schema[T]) issues(fieldErrs validator.ValidationErrors) formdata.Issues {
	issues := make(formdata.Issues, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		issues = append(issues, formdata.Issue{
			Path:         namespacePath(fe.Namespace()),
			Message:      s.messageFunc(fe),
			Kind:         kindOf(fe.Tag()),
			Alternatives: nil,
		})
	}

	return issues
}

func decodeIssues(decodeErrs form.DecodeErrors) formdata.Issues {
	issues := make(formdata.Issues, 0, len(decodeErrs))
	for field, err := range decodeErrs {
		issues = append(issues, formdata.Issue{
			Path:         decodePath(field),
			Message:      fmt.Sprintf("%s is not a valid value", fieldName(field)),
			Kind:         formdata.KindInvalidType,
			Alternatives: nil,
		})

		d("decode error at %q: %v", field, err)
	}

	return issues
}

// encodeValues converts the canonical mapping into url.Values for the form
// decoder. Nested mappings flatten into dotted keys; slices become repeated
// values under their key; everything else is stringified.
func encodeValues(values map[string]any) url.Values {
	out := make(url.Values, len(values))
	encodeInto(out, "", values)

	return out
}

func encodeInto(out url.Values, prefix string, values map[string]any) {
	for key, value := range values {
		if prefix != "" {
			key = prefix + "." + key
		}

		switch v := value.(type) {
		case map[string]any:
			encodeInto(out, key, v)
		case []string:
			for _, item := range v {
				out.Add(key, item)
			}
		case []any:
			for _, item := range v {
				out.Add(key, fmt.Sprint(item))
			}
		case string:
			out.Add(key, v)
		case nil:
			// Absent.
		default:
			out.Add(key, fmt.Sprint(v))
		}
	}
}

// tagName resolves the reported name of a struct field: `form` tag first,
// then `json`, then the Go field name.
func tagName(fld reflect.StructField) string {
	for _, tag := range []string{"form", "json"} {
		name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}

		if name != "" {
			return name
		}
	}

	return fld.Name
}

func defaultDecoder() *form.Decoder {
	decoder := form.NewDecoder()
	decoder.SetTagName("form")

	return decoder
}

func defaultValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(tagName)

	return validate
}

// kindOf maps validator baked-in tags onto formdata kinds. Unmapped tags,
// including custom registrations, report as KindCustom.
func kindOf(tag string) formdata.Kind {
	switch tag {
	case "required", "required_if", "required_unless", "required_with", "required_without":
		return formdata.KindRequired
	case "min", "gt", "gte":
		return formdata.KindTooSmall
	case "max", "lt", "lte":
		return formdata.KindTooBig
	case "eq", "oneof", "boolean":
		return formdata.KindInvalidLiteral
	case "email", "url", "uuid", "datetime", "e164", "ip", "hostname":
		return formdata.KindInvalidFormat
	default:
		return formdata.KindCustom
	}
}

// DefaultMessage words a field error in plain English without localization.
func DefaultMessage(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
