package validators

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/benbjohnson/clock"
)

// Params carries the parameters of a rule reference in a form definition.
// Scalar shorthand parameters (`min_length: 3`) are stored under "value".
type Params map[string]any

// Int returns the integer parameter key, or def when it is absent.
func (p Params) Int(key string, def int) (int, error) {
	raw, ok := p[key]
	if !ok || raw == nil {
		return def, nil
	}
	switch v := raw.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("%w: %s must be a whole number", ErrInvalidParams, key)
		}
		return int(v), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %w", ErrInvalidParams, key, err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%w: %s has type %T", ErrInvalidParams, key, raw)
	}
}

// String returns the string parameter key, or def when it is absent or empty.
func (p Params) String(key, def string) string {
	raw, ok := p[key]
	if !ok || raw == nil {
		return def
	}
	s := fmt.Sprint(raw)
	if s == "" {
		return def
	}
	return s
}

// Bool returns the boolean parameter key, or def when it is absent.
func (p Params) Bool(key string, def bool) (bool, error) {
	raw, ok := p[key]
	if !ok || raw == nil {
		return def, nil
	}
	switch v := raw.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false, fmt.Errorf("%w: %s: %w", ErrInvalidParams, key, err)
		}
		return b, nil
	default:
		return false, fmt.Errorf("%w: %s has type %T", ErrInvalidParams, key, raw)
	}
}

// Strings returns the list parameter key.
func (p Params) Strings(key string) ([]string, error) {
	raw, ok := p[key]
	if !ok || raw == nil {
		return nil, nil
	}
	switch v := raw.(type) {
	case []string:
		return v, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, fmt.Sprint(item))
		}
		return out, nil
	case string:
		return []string{v}, nil
	default:
		return nil, fmt.Errorf("%w: %s has type %T", ErrInvalidParams, key, raw)
	}
}

func (p Params) required(key string) (string, error) {
	s := p.String(key, "")
	if s == "" {
		return "", fmt.Errorf("%w: %s is required", ErrInvalidParams, key)
	}
	return s, nil
}

// Registry resolves rule names to factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	clock     clock.Clock
}

// NewRegistry returns a registry preloaded with the built-in rules. c is used
// by date rules that depend on the current day.
func NewRegistry(c clock.Clock) *Registry {
	if c == nil {
		c = clock.New()
	}
	r := &Registry{
		factories: make(map[string]Factory),
		clock:     c,
	}
	for name, f := range r.builtins() {
		r.factories[name] = f
	}
	return r
}

// Register adds a custom rule factory.
func (r *Registry) Register(name string, f Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.factories[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateRule, name)
	}
	r.factories[name] = f
	return nil
}

// Names lists the registered rule names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build resolves name and constructs the rule for a field labelled label.
func (r *Registry) Build(name string, params Params, label string) (Rule, error) {
	r.mu.RLock()
	f, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRule, name)
	}
	if params == nil {
		params = Params{}
	}
	rule, err := f(params, label)
	if err != nil {
		return nil, fmt.Errorf("rule %s: %w", name, err)
	}
	return rule, nil
}

func (r *Registry) builtins() map[string]Factory {
	return map[string]Factory{
		"required":        requiredFactory,
		"min_length":      minLengthFactory,
		"max_length":      maxLengthFactory,
		"length":          lengthFactory,
		"number":          numberFactory(Number, "number"),
		"integer":         numberFactory(Integer, "integer"),
		"at_most":         atMostFactory,
		"pattern":         patternFactory,
		"rut":             nationalIDFactory,
		"email":           emailFactory,
		"strong_password": strongPasswordFactory,
		"matches":         matchesFactory,
		"image_url":       imageURLFactory,
		"checked":         checkedFactory,
		"selected":        selectedFactory,
		"one_of":          oneOfFactory,
		"birth_date":      r.birthDateFactory,
	}
}

func requiredFactory(p Params, label string) (Rule, error) {
	return Required(p.String("message", label+" is required")), nil
}

func minLengthFactory(p Params, label string) (Rule, error) {
	n, err := p.Int("value", 0)
	if err != nil {
		return nil, err
	}
	return MinLength(n, p.String("message", fmt.Sprintf("%s must be at least %d characters long", label, n))), nil
}

func maxLengthFactory(p Params, label string) (Rule, error) {
	n, err := p.Int("value", -1)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: value is required", ErrInvalidParams)
	}
	return MaxLength(n, p.String("message", fmt.Sprintf("%s must be at most %d characters long", label, n))), nil
}

func lengthFactory(p Params, label string) (Rule, error) {
	lo, err := p.Int("min", 0)
	if err != nil {
		return nil, err
	}
	hi, err := p.Int("max", -1)
	if err != nil {
		return nil, err
	}
	if hi >= 0 && hi < lo {
		return nil, fmt.Errorf("%w: max %d is below min %d", ErrInvalidParams, hi, lo)
	}
	trim, err := p.Bool("trim", true)
	if err != nil {
		return nil, err
	}

	message := p.String("message", fmt.Sprintf("%s must be between %d and %d characters long", label, lo, hi))
	if !trim {
		return RawLength(lo, hi, message), nil
	}
	return Length(lo, hi, message), nil
}

func numberFactory(build func(NumberMessages) Rule, noun string) Factory {
	return func(p Params, label string) (Rule, error) {
		return build(NumberMessages{
			Invalid:  p.String("invalid_message", label+" must be a valid "+noun),
			Negative: p.String("negative_message", label+" cannot be negative"),
		}), nil
	}
}

func atMostFactory(p Params, label string) (Rule, error) {
	base, err := p.required("field")
	if err != nil {
		return nil, err
	}
	return AtMost(base, p.String("message", fmt.Sprintf("%s exceeds %s", label, base))), nil
}

func patternFactory(p Params, label string) (Rule, error) {
	expr, err := p.required("value")
	if err != nil {
		return nil, err
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}
	return Pattern(re, p.String("strip", ""), p.String("message", label+" format is invalid")), nil
}

func nationalIDFactory(p Params, label string) (Rule, error) {
	return NationalID(NationalIDMessages{
		TooShort: p.String("too_short_message", label+" is too short"),
		TooLong:  p.String("too_long_message", label+" is too long"),
		Format:   p.String("format_message", label+" must be 7 or 8 digits followed by a digit or K"),
	}), nil
}

func emailFactory(p Params, label string) (Rule, error) {
	domains, err := p.Strings("domains")
	if err != nil {
		return nil, err
	}
	return Email(domains, EmailMessages{
		Format: p.String("format_message", label+" must be a valid email address"),
		Domain: p.String("domain_message", "Only "+strings.Join(domains, ", ")+" addresses are allowed"),
	}), nil
}

func strongPasswordFactory(p Params, label string) (Rule, error) {
	n, err := p.Int("min", 6)
	if err != nil {
		return nil, err
	}
	return StrongPassword(n, PasswordMessages{
		TooShort:    p.String("too_short_message", fmt.Sprintf("%s must be at least %d characters long", label, n)),
		Composition: p.String("composition_message", label+" must contain a lowercase letter, an uppercase letter and a number"),
	}), nil
}

func matchesFactory(p Params, label string) (Rule, error) {
	other, err := p.required("field")
	if err != nil {
		return nil, err
	}
	return Matches(other, MatchMessages{
		Empty:    p.String("empty_message", label+" is required"),
		Mismatch: p.String("mismatch_message", label+" does not match"),
	}), nil
}

func imageURLFactory(p Params, label string) (Rule, error) {
	return ImageURL(p.String("message", label+" must be a valid image URL (jpg, jpeg, png, gif or webp)")), nil
}

func checkedFactory(p Params, label string) (Rule, error) {
	return Checked(p.String("message", label+" must be accepted")), nil
}

func selectedFactory(p Params, label string) (Rule, error) {
	return Selected(p.String("message", "Please select a "+strings.ToLower(label))), nil
}

func oneOfFactory(p Params, label string) (Rule, error) {
	options, err := p.Strings("value")
	if err != nil {
		return nil, err
	}
	if len(options) == 0 {
		return nil, fmt.Errorf("%w: at least one option is required", ErrInvalidParams)
	}
	return OneOf(options, p.String("message", label+" is not a valid option")), nil
}

func (r *Registry) birthDateFactory(p Params, label string) (Rule, error) {
	age, err := p.Int("min_age", 0)
	if err != nil {
		return nil, err
	}
	return BirthDate(r.clock, age, BirthDateMessages{
		Format:   p.String("format_message", label+" must be a valid date (YYYY-MM-DD)"),
		Future:   p.String("future_message", label+" cannot be in the future"),
		Underage: p.String("underage_message", fmt.Sprintf("You must be at least %d years old", age)),
	}), nil
}
