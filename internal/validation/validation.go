// Package validation implements schema-level checks on inbound payloads.
// A check collects every violated field before failing, so callers see the
// full set of problems at once. Validation is side-effect-free and always
// runs before any persistence or authorization check.
package validation

import (
	"sort"
	"strings"
)

// Errors accumulates per-field violations. The zero value is ready to use.
type Errors struct {
	fields map[string]string
}

func (e *Errors) Add(field, message string) {
	if e.fields == nil {
		e.fields = make(map[string]string)
	}
	// Keep the first message per field.
	if _, ok := e.fields[field]; !ok {
		e.fields[field] = message
	}
}

func (e *Errors) Has() bool {
	return e != nil && len(e.fields) > 0
}

// Fields returns the violation map. Never nil.
func (e *Errors) Fields() map[string]string {
	if e == nil || e.fields == nil {
		return map[string]string{}
	}
	return e.fields
}

func (e *Errors) Error() string {
	if !e.Has() {
		return "validation failed"
	}
	keys := make([]string, 0, len(e.fields))
	for k := range e.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Err returns e as an error, or nil when no violations were recorded.
func (e *Errors) Err() error {
	if e.Has() {
		return e
	}
	return nil
}
