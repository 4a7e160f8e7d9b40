package formdata

import (
	"mime/multipart"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSource(t *testing.T) {
	t.Parallel()

	t.Run("plain map passes through", func(t *testing.T) {
		t.Parallel()

		data := map[string]any{"name": "Bob", "age": 42}

		values, err := NormalizeSource(data)
		require.NoError(t, err)
		assert.Equal(t, data, values)
	})

	t.Run("url.Values keeps the last value per key", func(t *testing.T) {
		t.Parallel()

		form := url.Values{}
		form.Add("name", "Bob")
		form.Add("color", "red")
		form.Add("color", "blue")

		values, err := NormalizeSource(form)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"name": "Bob", "color": "blue"}, values)
	})

	t.Run("empty value list is skipped", func(t *testing.T) {
		t.Parallel()

		values, err := NormalizeSource(Form{"ghost": nil})
		require.NoError(t, err)
		assert.NotContains(t, values, "ghost")
	})

	t.Run("multipart form uses its value fields", func(t *testing.T) {
		t.Parallel()

		form := &multipart.Form{
			Value: map[string][]string{"title": {"draft", "final"}},
			File:  nil,
		}

		values, err := NormalizeSource(form)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"title": "final"}, values)
	})

	t.Run("unsupported kinds fail", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name string
			data any
		}{
			{name: "nil", data: nil},
			{name: "scalar", data: 42},
			{name: "string map of strings is not a form", data: map[string]string{"a": "b"}},
			{name: "nil multipart form", data: (*multipart.Form)(nil)},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				_, err := NormalizeSource(tt.data)
				assert.ErrorIs(t, err, ErrInvalidInputKind)
			})
		}
	})
}
