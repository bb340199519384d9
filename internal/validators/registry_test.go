package validators

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// TestParams
// ---------------------------------------------------------------------------

func TestParams(t *testing.T) {
	p := Params{
		"int":     3,
		"float":   float64(4),
		"frac":    4.5,
		"str":     "12",
		"bad":     "x",
		"list":    []any{"a", "b"},
		"strings": []string{"c"},
		"single":  "d",
		"map":     map[string]any{},
	}

	t.Run("Int", func(t *testing.T) {
		n, err := p.Int("int", 0)
		require.NoError(t, err)
		assert.Equal(t, 3, n)

		n, err = p.Int("float", 0)
		require.NoError(t, err)
		assert.Equal(t, 4, n)

		n, err = p.Int("str", 0)
		require.NoError(t, err)
		assert.Equal(t, 12, n)

		n, err = p.Int("missing", 9)
		require.NoError(t, err)
		assert.Equal(t, 9, n)

		_, err = p.Int("frac", 0)
		require.ErrorIs(t, err, ErrInvalidParams)

		_, err = p.Int("bad", 0)
		require.ErrorIs(t, err, ErrInvalidParams)
	})

	t.Run("Strings", func(t *testing.T) {
		got, err := p.Strings("list")
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, got)

		got, err = p.Strings("strings")
		require.NoError(t, err)
		assert.Equal(t, []string{"c"}, got)

		got, err = p.Strings("single")
		require.NoError(t, err)
		assert.Equal(t, []string{"d"}, got)

		_, err = p.Strings("map")
		require.ErrorIs(t, err, ErrInvalidParams)
	})

	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "12", p.String("str", "def"))
		assert.Equal(t, "def", p.String("missing", "def"))
		assert.Equal(t, "3", p.String("int", "def"))
	})
}

// ---------------------------------------------------------------------------
// TestRegistry
// ---------------------------------------------------------------------------

func TestRegistry_Builtins(t *testing.T) {
	r := NewRegistry(nil)

	assert.Equal(t, []string{
		"at_most", "birth_date", "checked", "email", "image_url", "integer", "length",
		"matches", "max_length", "min_length", "number", "one_of", "pattern",
		"required", "rut", "selected", "strong_password",
	}, r.Names())
}

func TestRegistry_Build(t *testing.T) {
	c := fixedClock(t, 2026, time.October, 19)
	r := NewRegistry(c)

	tests := []struct {
		name    string
		rule    string
		params  Params
		value   string
		sibs    Siblings
		want    Kind
		message string
	}{
		{name: "required default message", rule: "required", value: "", want: MissingRequiredValue, message: "Code is required"},
		{name: "required custom message", rule: "required", params: Params{"message": "Enter a code"}, value: "", want: MissingRequiredValue, message: "Enter a code"},
		{name: "min_length", rule: "min_length", params: Params{"value": 3}, value: "ab", want: LengthOutOfBounds, message: "Code must be at least 3 characters long"},
		{name: "max_length ok", rule: "max_length", params: Params{"value": 3}, value: "abc"},
		{name: "length", rule: "length", params: Params{"min": 4, "max": 10}, value: "abc", want: LengthOutOfBounds, message: "Code must be between 4 and 10 characters long"},
		{name: "length raw", rule: "length", params: Params{"min": 4, "max": 10, "trim": false}, value: " abcdefghij", want: LengthOutOfBounds},
		{name: "length trimmed", rule: "length", params: Params{"min": 4, "max": 10}, value: " abcdefghij"},
		{name: "number", rule: "number", value: "x", want: NotANumber, message: "Code must be a valid number"},
		{name: "integer", rule: "integer", value: "x", want: NotANumber, message: "Code must be a valid integer"},
		{name: "integer negative", rule: "integer", value: "-2", want: NegativeNumber, message: "Code cannot be negative"},
		{name: "at_most", rule: "at_most", params: Params{"field": "stock"}, value: "3", sibs: Values{"stock": "2"}, want: ThresholdExceedsBase},
		{name: "pattern", rule: "pattern", params: Params{"value": `^[0-9]+$`}, value: "a1", want: PatternMismatch},
		{name: "rut", rule: "rut", value: "123", want: LengthOutOfBounds, message: "Code is too short"},
		{name: "email domain", rule: "email", params: Params{"domains": []any{"@duoc.cl"}}, value: "a@b.cl", want: DisallowedDomain, message: "Only @duoc.cl addresses are allowed"},
		{name: "strong_password", rule: "strong_password", value: "abcdef", want: PatternMismatch},
		{name: "matches", rule: "matches", params: Params{"field": "password"}, value: "a", sibs: Values{"password": "b"}, want: ValueMismatch, message: "Code does not match"},
		{name: "image_url", rule: "image_url", value: "nope", want: PatternMismatch},
		{name: "checked", rule: "checked", value: "false", want: MissingRequiredValue, message: "Code must be accepted"},
		{name: "selected", rule: "selected", value: "", want: UnselectedOption, message: "Please select a code"},
		{name: "one_of", rule: "one_of", params: Params{"value": []any{"a", "b"}}, value: "c", want: UnselectedOption},
		{name: "birth_date", rule: "birth_date", params: Params{"min_age": 18}, value: "2010-01-01", want: BelowMinimumAge, message: "You must be at least 18 years old"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := r.Build(tt.rule, tt.params, "Code")
			require.NoError(t, err)

			v := rule(tt.value, tt.sibs)
			if tt.want == 0 {
				assert.Nil(t, v)
				return
			}
			require.NotNil(t, v)
			assert.Equal(t, tt.want, v.Kind)
			if tt.message != "" {
				assert.Equal(t, tt.message, v.Message)
			}
		})
	}
}

func TestRegistry_BuildErrors(t *testing.T) {
	r := NewRegistry(nil)

	t.Run("unknown rule", func(t *testing.T) {
		_, err := r.Build("nope", nil, "X")
		require.ErrorIs(t, err, ErrUnknownRule)
	})

	tests := []struct {
		name   string
		rule   string
		params Params
	}{
		{name: "max_length without value", rule: "max_length"},
		{name: "length inverted", rule: "length", params: Params{"min": 5, "max": 2}},
		{name: "length bad trim", rule: "length", params: Params{"min": 1, "trim": "sometimes"}},
		{name: "at_most without field", rule: "at_most"},
		{name: "pattern without value", rule: "pattern"},
		{name: "pattern invalid", rule: "pattern", params: Params{"value": "("}},
		{name: "matches without field", rule: "matches"},
		{name: "one_of empty", rule: "one_of"},
		{name: "birth_date bad age", rule: "birth_date", params: Params{"min_age": "old"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Build(tt.rule, tt.params, "X")
			require.ErrorIs(t, err, ErrInvalidParams)
		})
	}
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry(nil)

	upper := func(p Params, label string) (Rule, error) {
		return func(value string, _ Siblings) *Violation {
			if value != "" && value[0] >= 'a' && value[0] <= 'z' {
				return &Violation{Kind: PatternMismatch, Message: label + " must start upper-case"}
			}
			return nil
		}, nil
	}

	require.NoError(t, r.Register("capitalised", upper))
	require.ErrorIs(t, r.Register("capitalised", upper), ErrDuplicateRule)
	require.ErrorIs(t, r.Register("required", upper), ErrDuplicateRule)

	rule, err := r.Build("capitalised", nil, "Name")
	require.NoError(t, err)
	assert.Nil(t, rule("Ana", nil))
	assert.Equal(t, "Name must start upper-case", rule("ana", nil).Message)
}
