// Package formdata normalizes the outcome of schema validation into a flat,
// presentation-ready mapping from field name to human-readable message, while
// passing successfully validated, typed data through untouched.
//
// It is aimed at form-handling code that needs to display per-field errors
// without depending on a validation engine's internal error representation.
// The engine itself is an external collaborator bound through the Schema
// interface; adapters for concrete engines live under contrib/.
package formdata

import "go.inout.gg/foundations/debug"

//nolint:gochecknoglobals
var d = debug.Debuglog("formdata")
