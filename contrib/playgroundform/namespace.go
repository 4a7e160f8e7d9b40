package playgroundform

import (
	"strconv"
	"strings"

	"go.inout.gg/foundations/debug"

	"go.inout.gg/formdata"
)

//nolint:gochecknoglobals
var d = debug.Debuglog("formdata/playgroundform")

// namespacePath converts a validator field namespace, e.g.
// "signupForm.user.addresses[2].street", into a segment path. The leading
// token is the root struct's own name and is dropped; bracketed tokens
// become integer index segments.
func namespacePath(ns string) formdata.Path {
	tokens := strings.Split(ns, ".")
	if len(tokens) < 2 {
		return nil
	}

	return tokensPath(tokens[1:])
}

// decodePath converts a form decoder field key, e.g. "user.age", into a
// segment path. Unlike validator namespaces, decoder keys carry no root
// struct token.
func decodePath(key string) formdata.Path {
	return tokensPath(strings.Split(key, "."))
}

func tokensPath(tokens []string) formdata.Path {
	path := make(formdata.Path, 0, len(tokens))

	for _, token := range tokens {
		name, rest, indexed := strings.Cut(token, "[")
		if name != "" {
			path = append(path, name)
		}

		for indexed {
			var idxToken string

			idxToken, rest, indexed = strings.Cut(rest, "[")
			idxToken = strings.TrimSuffix(idxToken, "]")

			if idx, err := strconv.Atoi(idxToken); err == nil {
				path = append(path, idx)
			} else {
				// Map keys are also rendered in brackets.
				path = append(path, idxToken)
			}
		}
	}

	return path
}

// fieldName returns the last name token of a namespace for message wording.
func fieldName(ns string) string {
	if i := strings.LastIndexByte(ns, '.'); i >= 0 {
		ns = ns[i+1:]
	}

	name, _, _ := strings.Cut(ns, "[")

	return name
}
