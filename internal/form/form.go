package form

import (
	"fmt"
	"strings"
)

// Form is the explicit state of one mounted form.
type Form struct {
	id     string
	order  []string
	fields map[string]*field
	graph  *Graph
	lookup OptionsLookup
}

// New builds a form from its field declarations and explicit dependency
// edges. Fields whose options depend on another field get an implicit
// WhenInvalid edge from that field.
func New(id string, fields []Field, edges []Edge, lookup OptionsLookup) (*Form, error) {
	f := &Form{
		id:     id,
		order:  make([]string, 0, len(fields)),
		fields: make(map[string]*field, len(fields)),
		lookup: lookup,
	}

	var implicit []Edge
	for _, def := range fields {
		if err := f.checkField(def); err != nil {
			return nil, err
		}
		if def.Control == "" {
			def.Control = ControlText
		}
		if def.Coerce == "" {
			def.Coerce = CoerceString
		}
		f.order = append(f.order, def.Name)
		f.fields[def.Name] = &field{def: def}
		if def.Lookup == LookupCommunes {
			implicit = append(implicit, Edge{Source: def.DependsOn, Dependent: def.Name, Policy: WhenInvalid})
		}
	}

	g, err := NewGraph(f.order, append(append([]Edge{}, edges...), implicit...))
	if err != nil {
		return nil, fmt.Errorf("form %s: %w", id, err)
	}
	f.graph = g

	f.Reset()
	return f, nil
}

func (f *Form) checkField(def Field) error {
	switch {
	case def.Name == "":
		return fmt.Errorf("%w: form %s has a field without a name", ErrInvalidDefinition, f.id)
	case f.fields[def.Name] != nil:
		return fmt.Errorf("%w: form %s declares %q twice", ErrInvalidDefinition, f.id, def.Name)
	case def.Lookup != LookupNone && f.lookup == nil:
		return fmt.Errorf("%w: field %q needs an options lookup", ErrInvalidDefinition, def.Name)
	case def.Lookup == LookupCommunes && def.DependsOn == "":
		return fmt.Errorf("%w: field %q has no source field for its options", ErrInvalidDefinition, def.Name)
	case def.Lookup != LookupNone && def.Lookup != LookupRegions && def.Lookup != LookupCommunes:
		return fmt.Errorf("%w: field %q uses unknown lookup %q", ErrInvalidDefinition, def.Name, def.Lookup)
	}

	switch def.Coerce {
	case "", CoerceString, CoerceFloat, CoerceInt, CoerceBool, CoerceSecret, CoerceOmit:
		return nil
	default:
		return fmt.Errorf("%w: field %q uses unknown coercion %q", ErrInvalidDefinition, def.Name, def.Coerce)
	}
}

// ID returns the form identifier.
func (f *Form) ID() string {
	return f.id
}

// Value returns the current raw value of a field, "" for unknown fields.
// Form implements validators.Siblings through it.
func (f *Form) Value(name string) string {
	if fld, ok := f.fields[name]; ok {
		return fld.value
	}
	return ""
}

// Field returns the state of a single field.
func (f *Form) Field(name string) (FieldState, error) {
	fld, ok := f.fields[name]
	if !ok {
		return FieldState{}, fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	return fld.state(), nil
}

// Fields returns the state of every field in declaration order.
func (f *Form) Fields() []FieldState {
	out := make([]FieldState, 0, len(f.order))
	for _, name := range f.order {
		out = append(out, f.fields[name].state())
	}
	return out
}

// Names returns the field names in declaration order.
func (f *Form) Names() []string {
	return append([]string(nil), f.order...)
}

// Blur handles focus leaving a field: the field is always re-evaluated.
func (f *Form) Blur(name string) (FieldState, error) {
	fld, ok := f.fields[name]
	if !ok {
		return FieldState{}, fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	f.evaluate(fld)
	return fld.state(), nil
}

// Set handles a value change. The field is re-evaluated only if it is
// currently Invalid; afterwards its dependents are revisited in declaration
// order according to their edge policy.
func (f *Form) Set(name, value string) error {
	fld, ok := f.fields[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}

	changed := fld.value != value
	fld.value = value
	if fld.status == Invalid {
		f.evaluate(fld)
	}

	for _, e := range f.graph.Dependents(name) {
		dep := f.fields[e.Dependent]
		reset := changed && dep.def.Lookup == LookupCommunes && dep.def.DependsOn == name
		if reset {
			dep.value = ""
			f.refreshOptions(dep)
		}

		switch {
		case e.Policy == Always, dep.status == Invalid:
			f.evaluate(dep)
		case reset:
			dep.clear()
		}
	}
	return nil
}

// ValidateAll re-evaluates every field with focus-loss semantics and reports
// whether the form is submittable.
func (f *Form) ValidateAll() bool {
	for _, name := range f.order {
		f.evaluate(f.fields[name])
	}
	return f.Submittable()
}

// Submittable reports whether every field is Valid.
func (f *Form) Submittable() bool {
	for _, name := range f.order {
		if f.fields[name].status != Valid {
			return false
		}
	}
	return true
}

// Invalid returns the names of the fields currently Invalid.
func (f *Form) Invalid() []string {
	var out []string
	for _, name := range f.order {
		if f.fields[name].status == Invalid {
			out = append(out, name)
		}
	}
	return out
}

// Reset clears every value and returns every field to Untouched.
func (f *Form) Reset() {
	for _, name := range f.order {
		fld := f.fields[name]
		fld.value = ""
		fld.clear()
	}
	for _, name := range f.order {
		f.refreshOptions(f.fields[name])
	}
}

func (f *Form) evaluate(fld *field) {
	if fld.def.Rule == nil {
		fld.status = Valid
		fld.message = ""
		fld.kind = 0
		return
	}
	if v := fld.def.Rule(fld.value, f); v != nil {
		fld.status = Invalid
		fld.message = v.Message
		fld.kind = v.Kind
		return
	}
	fld.status = Valid
	fld.message = ""
	fld.kind = 0
}

func (f *Form) refreshOptions(fld *field) {
	switch fld.def.Lookup {
	case LookupRegions:
		fld.options = f.lookup.Regions()
	case LookupCommunes:
		source := strings.TrimSpace(f.Value(fld.def.DependsOn))
		if source == "" {
			fld.options = nil
			fld.disabled = true
			return
		}
		fld.options = f.lookup.Communes(source)
		fld.disabled = false
	default:
		fld.options = append([]string(nil), fld.def.Options...)
	}
}
