package catalog

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-form-keeper/internal/form"
	"github.com/MKhiriev/go-form-keeper/internal/submission"
	"github.com/MKhiriev/go-form-keeper/internal/validators"
	"gopkg.in/yaml.v3"
)

// Definition is the YAML description of one form.
type Definition struct {
	ID          string     `yaml:"id"`
	Title       string     `yaml:"title"`
	Destination string     `yaml:"destination"`
	Success     string     `yaml:"success"`
	Fields      []FieldDef `yaml:"fields"`
	Edges       []EdgeDef  `yaml:"edges"`
}

// FieldDef describes one field and the rules applied to it in order.
type FieldDef struct {
	Name        string     `yaml:"name"`
	Label       string     `yaml:"label"`
	Control     string     `yaml:"control"`
	Placeholder string     `yaml:"placeholder"`
	Options     []string   `yaml:"options"`
	Lookup      string     `yaml:"lookup"`
	DependsOn   string     `yaml:"depends_on"`
	Coerce      string     `yaml:"coerce"`
	Default     string     `yaml:"default"`
	Rules       []RuleSpec `yaml:"rules"`
}

// EdgeDef describes a dependency edge.
type EdgeDef struct {
	Source    string `yaml:"source"`
	Dependent string `yaml:"dependent"`
	Policy    string `yaml:"policy"`
}

// RuleSpec references a registry rule. It accepts three YAML shapes:
//
//	- required
//	- min_length: 3
//	- email:
//	    domains: ["@duoc.cl"]
type RuleSpec struct {
	Name   string
	Params validators.Params
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *RuleSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		r.Name = node.Value
		return nil
	case yaml.MappingNode:
		if len(node.Content) != 2 {
			return fmt.Errorf("line %d: a rule must have exactly one name", node.Line)
		}
		r.Name = node.Content[0].Value
		value := node.Content[1]

		switch value.Kind {
		case yaml.MappingNode:
			params := validators.Params{}
			if err := value.Decode(&params); err != nil {
				return fmt.Errorf("line %d: rule %s: %w", value.Line, r.Name, err)
			}
			r.Params = params
		default:
			var v any
			if err := value.Decode(&v); err != nil {
				return fmt.Errorf("line %d: rule %s: %w", value.Line, r.Name, err)
			}
			r.Params = validators.Params{"value": v}
		}
		return nil
	default:
		return fmt.Errorf("line %d: unexpected rule shape", node.Line)
	}
}

// DisplayName returns the title, or the ID of an untitled form.
func (d Definition) DisplayName() string {
	if d.Title != "" {
		return d.Title
	}
	return d.ID
}

// SubmissionConfig builds the controller configuration of the form.
func (d Definition) SubmissionConfig(submitTimeout, navigateDelay time.Duration) submission.Config {
	return submission.Config{
		Destination:     d.Destination,
		SuccessTemplate: d.Success,
		SubmitTimeout:   submitTimeout,
		NavigateDelay:   navigateDelay,
	}
}

func (d Definition) fields(registry *validators.Registry) ([]form.Field, error) {
	fields := make([]form.Field, 0, len(d.Fields))
	for _, fd := range d.Fields {
		label := fd.Label
		if label == "" {
			label = fd.Name
		}

		rules := make([]validators.Rule, 0, len(fd.Rules))
		for _, spec := range fd.Rules {
			rule, err := registry.Build(spec.Name, spec.Params, label)
			if err != nil {
				return nil, fmt.Errorf("%w: %s.%s: %w", ErrInvalidDefinition, d.ID, fd.Name, err)
			}
			rules = append(rules, rule)
		}

		var rule validators.Rule
		if len(rules) > 0 {
			rule = validators.All(rules...)
		}

		fields = append(fields, form.Field{
			Name:        fd.Name,
			Label:       label,
			Control:     form.Control(fd.Control),
			Placeholder: fd.Placeholder,
			Rule:        rule,
			Options:     fd.Options,
			Lookup:      form.Lookup(fd.Lookup),
			DependsOn:   fd.DependsOn,
			Coerce:      form.Coercion(fd.Coerce),
			Default:     fd.Default,
		})
	}
	return fields, nil
}

func (d Definition) edges() []form.Edge {
	edges := make([]form.Edge, 0, len(d.Edges))
	for _, e := range d.Edges {
		edges = append(edges, form.Edge{Source: e.Source, Dependent: e.Dependent, Policy: form.Policy(e.Policy)})
	}
	return edges
}
