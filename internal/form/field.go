package form

import (
	"fmt"
	"slices"

	"github.com/MKhiriev/go-form-keeper/internal/validators"
)

// Status is the validation state of a field.
type Status int

const (
	Untouched Status = iota
	Valid
	Invalid
)

func (s Status) String() string {
	switch s {
	case Untouched:
		return "untouched"
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Control is the kind of input a host should render for a field.
type Control string

const (
	ControlText     Control = "text"
	ControlPassword Control = "password"
	ControlTextArea Control = "textarea"
	ControlSelect   Control = "select"
	ControlCheckbox Control = "checkbox"
	ControlDate     Control = "date"
)

// Coercion converts a raw field value into its payload representation.
type Coercion string

const (
	CoerceString Coercion = "string"
	CoerceFloat  Coercion = "float"
	CoerceInt    Coercion = "int"
	CoerceBool   Coercion = "bool"
	CoerceSecret Coercion = "secret"
	CoerceOmit   Coercion = "omit"
)

// Lookup names a dynamic options source.
type Lookup string

const (
	LookupNone     Lookup = ""
	LookupRegions  Lookup = "regions"
	LookupCommunes Lookup = "communes"
)

// Field declares one input of a form.
type Field struct {
	Name        string
	Label       string
	Control     Control
	Placeholder string
	Rule        validators.Rule

	// Options are the static choices of a select. Lookup replaces them with
	// dynamic ones; LookupCommunes is keyed by the value of DependsOn.
	Options   []string
	Lookup    Lookup
	DependsOn string

	Coerce  Coercion
	Default string
}

// FieldState is the presentation view of a field.
type FieldState struct {
	Name     string
	Label    string
	Control  Control
	Value    string
	Status   Status
	Message  string
	Kind     validators.Kind
	Options  []string
	Disabled bool
}

type field struct {
	def      Field
	value    string
	status   Status
	message  string
	kind     validators.Kind
	options  []string
	disabled bool
}

func (f *field) state() FieldState {
	return FieldState{
		Name:     f.def.Name,
		Label:    f.def.Label,
		Control:  f.def.Control,
		Value:    f.value,
		Status:   f.status,
		Message:  f.message,
		Kind:     f.kind,
		Options:  slices.Clone(f.options),
		Disabled: f.disabled,
	}
}

func (f *field) clear() {
	f.status = Untouched
	f.message = ""
	f.kind = 0
}
