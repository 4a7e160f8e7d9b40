package goskemaform

import (
	"strconv"
	"strings"

	"go.inout.gg/formdata"
)

// parsePointer converts a goskema JSON Pointer ("/items/2/price") into a
// segment path. goskema renders the root value as "/" (or ""), both of which
// become the empty path.
//
// Escaped tokens are unescaped per RFC 6901 ("~1" -> "/", "~0" -> "~").
// All-digit tokens are treated as array indices.
func parsePointer(pointer string) formdata.Path {
	if pointer == "" || pointer == "/" {
		return nil
	}

	tokens := strings.Split(strings.TrimPrefix(pointer, "/"), "/")
	path := make(formdata.Path, 0, len(tokens))

	for _, token := range tokens {
		if idx, err := strconv.Atoi(token); err == nil && idx >= 0 {
			path = append(path, idx)
			continue
		}

		token = strings.ReplaceAll(token, "~1", "/")
		token = strings.ReplaceAll(token, "~0", "~")
		path = append(path, token)
	}

	return path
}
