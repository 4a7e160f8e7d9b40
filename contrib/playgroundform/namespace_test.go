package playgroundform

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.inout.gg/formdata"
)

func TestNamespacePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ns   string
		want formdata.Path
	}{
		{name: "root struct only", ns: "signupForm", want: nil},
		{name: "top-level field", ns: "signupForm.email", want: formdata.Path{"email"}},
		{name: "nested field", ns: "profileForm.user.email", want: formdata.Path{"user", "email"}},
		{name: "slice index", ns: "orderForm.items[2].price", want: formdata.Path{"items", 2, "price"}},
		{name: "map key", ns: "settingsForm.labels[primary]", want: formdata.Path{"labels", "primary"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, namespacePath(tt.ns))
		})
	}
}

func TestDecodePath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, formdata.Path{"age"}, decodePath("age"))
	assert.Equal(t, formdata.Path{"user", "age"}, decodePath("user.age"))
	assert.Equal(t, formdata.Path{"items", 0}, decodePath("items[0]"))
}

func TestFieldName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "email", fieldName("signupForm.user.email"))
	assert.Equal(t, "age", fieldName("age"))
	assert.Equal(t, "items", fieldName("form.items[2]"))
}
