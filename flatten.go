package formdata

import (
	"strconv"
)

// ErrorMap maps a field key to either a message string or, in nested mode,
// a further ErrorMap for the fields below it.
//
// Flattened mode keys are dot-joined paths ("user.email"); nested mode keys
// are single path segments. An issue at the root value is stored under the
// empty-string key. Each key holds at most one entry: when several issues
// resolve to the same key, the last one reported wins.
type ErrorMap map[string]any

// Get returns the message for a flattened field key, or "" if the key is
// absent or holds a nested map.
func (m ErrorMap) Get(key string) string {
	msg, _ := m[key].(string)
	return msg
}

// Nested returns the nested error map under key, or nil if the key is absent
// or holds a plain message.
func (m ErrorMap) Nested(key string) ErrorMap {
	sub, _ := m[key].(ErrorMap)
	return sub
}

// FlattenIssues converts an ordered issue list into a flattened ErrorMap
// keyed by dot-joined paths.
//
// Union issues contribute their own generic message first, then every
// sub-issue of every attempted alternative under the parent-prefixed key,
// in branch order then issue order. Later writes overwrite earlier ones.
func FlattenIssues(issues Issues) ErrorMap {
	out := make(ErrorMap, len(issues))
	flattenInto(out, nil, issues)

	return out
}

func flattenInto(out ErrorMap, prefix Path, issues []Issue) {
	for _, issue := range issues {
		path := joinPath(prefix, issue.Path)
		out[path.Key()] = issue.Message

		if issue.Kind == KindInvalidUnion {
			for _, branch := range issue.Alternatives {
				flattenInto(out, path, branch)
			}
		}
	}
}

// NestIssues converts an ordered issue list into a nested ErrorMap mirroring
// the schema shape: each path segment becomes one level of mapping and the
// innermost segment maps to the issue message.
//
// Issues are merged deeply by path, so sibling issues under a shared parent
// segment all survive. When two issues collide at the exact same path, or a
// message and a subtree compete for one key, the later write wins.
func NestIssues(issues Issues) ErrorMap {
	out := make(ErrorMap, len(issues))
	nestInto(out, nil, issues)

	return out
}

func nestInto(out ErrorMap, prefix Path, issues []Issue) {
	for _, issue := range issues {
		path := joinPath(prefix, issue.Path)
		setNested(out, path, issue.Message)

		if issue.Kind == KindInvalidUnion {
			for _, branch := range issue.Alternatives {
				nestInto(out, path, branch)
			}
		}
	}
}

// setNested writes msg at path, materializing intermediate maps. A message
// occupying an intermediate key is replaced by a map; a subtree occupying the
// leaf key is replaced by the message.
func setNested(out ErrorMap, path Path, msg string) {
	if len(path) == 0 {
		out[""] = msg
		return
	}

	cur := out
	for _, seg := range path[:len(path)-1] {
		key := segmentKey(seg)

		next, ok := cur[key].(ErrorMap)
		if !ok {
			next = make(ErrorMap, 1)
			cur[key] = next
		}

		cur = next
	}

	cur[segmentKey(path[len(path)-1])] = msg
}

func segmentKey(seg any) string {
	switch s := seg.(type) {
	case string:
		return s
	case int:
		return strconv.Itoa(s)
	default:
		return Path{seg}.Key()
	}
}

func joinPath(prefix, rel Path) Path {
	if len(prefix) == 0 {
		return rel
	}

	if len(rel) == 0 {
		return prefix
	}

	joined := make(Path, 0, len(prefix)+len(rel))
	joined = append(joined, prefix...)
	joined = append(joined, rel...)

	return joined
}
