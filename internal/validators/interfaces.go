// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides the rule library used by every form in the
// application.
//
// Core concepts:
//   - Rule: a pure function that inspects one field value, optionally reading
//     sibling field values, and returns a *Violation or nil.
//   - Violation: the failure kind plus the human-readable message shown next
//     to the field.
//   - Registry: named rule factories, so form definitions can reference rules
//     by name and parameters instead of code.
//
// Usage patterns:
//  1. Build rules directly with the constructors (Required, Email, ...).
//  2. Or resolve them by name through a Registry when loading form definitions.
//  3. Compose per-field rules with All; the first violation wins.
//
// Rules never mutate their inputs and never fail with an error: a value either
// satisfies the rule or yields a violation.
package validators

// Siblings gives a rule read access to the other field values of the same form.
type Siblings interface {

	// Value returns the current raw value of the named field, or "" when the
	// field is unknown.
	Value(field string) string
}

// Values is a map-backed Siblings implementation.
type Values map[string]string

// Value implements Siblings.
func (v Values) Value(field string) string {
	return v[field]
}

// Rule checks a single value. A nil result means the value is acceptable.
type Rule func(value string, siblings Siblings) *Violation

// Factory builds a Rule from definition parameters. label is the human
// readable field name used in default messages.
type Factory func(params Params, label string) (Rule, error)

func sibling(s Siblings, field string) string {
	if s == nil {
		return ""
	}
	return s.Value(field)
}
