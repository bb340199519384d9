package validators

import "fmt"

// Kind classifies why a value was rejected.
type Kind int

const (
	MissingRequiredValue Kind = iota + 1
	LengthOutOfBounds
	NotANumber
	NegativeNumber
	NotAnInteger
	PatternMismatch
	DisallowedDomain
	BelowMinimumAge
	FutureDate
	ThresholdExceedsBase
	ValueMismatch
	UnselectedOption
)

var kindNames = map[Kind]string{
	MissingRequiredValue: "missing_required_value",
	LengthOutOfBounds:    "length_out_of_bounds",
	NotANumber:           "not_a_number",
	NegativeNumber:       "negative_number",
	NotAnInteger:         "not_an_integer",
	PatternMismatch:      "pattern_mismatch",
	DisallowedDomain:     "disallowed_domain",
	BelowMinimumAge:      "below_minimum_age",
	FutureDate:           "future_date",
	ThresholdExceedsBase: "threshold_exceeds_base",
	ValueMismatch:        "value_mismatch",
	UnselectedOption:     "unselected_option",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Violation is the outcome of a failed rule.
type Violation struct {
	Kind    Kind
	Message string
}

func violation(kind Kind, message string) *Violation {
	return &Violation{Kind: kind, Message: message}
}

func (v *Violation) Error() string {
	return fmt.Sprintf("%s: %s", v.Kind, v.Message)
}
