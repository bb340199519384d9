// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func assertKind(t *testing.T, want Kind, v *Violation) {
	t.Helper()
	require.NotNil(t, v)
	assert.Equal(t, want, v.Kind)
}

func fixedClock(t *testing.T, y int, m time.Month, d int) *clock.Mock {
	t.Helper()
	c := clock.NewMock()
	c.Set(time.Date(y, m, d, 12, 0, 0, 0, time.UTC))
	return c
}

// ---------------------------------------------------------------------------
// TestAll
// ---------------------------------------------------------------------------

func TestAll(t *testing.T) {
	rule := All(
		Required("Name is required"),
		MinLength(3, "Name must be at least 3 characters long"),
		MaxLength(5, "Name must be at most 5 characters long"),
	)

	t.Run("first violation wins", func(t *testing.T) {
		v := rule("", nil)
		assertKind(t, MissingRequiredValue, v)
		assert.Equal(t, "Name is required", v.Message)
	})

	t.Run("later rule reports when earlier pass", func(t *testing.T) {
		v := rule("ab", nil)
		assertKind(t, LengthOutOfBounds, v)
		assert.Contains(t, v.Message, "at least 3")
	})

	t.Run("all pass", func(t *testing.T) {
		assert.Nil(t, rule("abcd", nil))
	})

	t.Run("no rules", func(t *testing.T) {
		assert.Nil(t, All()("anything", nil))
	})
}

// ---------------------------------------------------------------------------
// TestRequired
// ---------------------------------------------------------------------------

func TestRequired(t *testing.T) {
	r := Required("Code is required")

	assertKind(t, MissingRequiredValue, r("", nil))
	assertKind(t, MissingRequiredValue, r("   \t", nil))
	assert.Nil(t, r(" x ", nil))
}

// ---------------------------------------------------------------------------
// TestLength
// ---------------------------------------------------------------------------

func TestLength(t *testing.T) {
	t.Run("min length ignores empty", func(t *testing.T) {
		assert.Nil(t, MinLength(3, "too short")("", nil))
	})

	t.Run("min length counts trimmed runes", func(t *testing.T) {
		r := MinLength(3, "too short")
		assertKind(t, LengthOutOfBounds, r("  ab  ", nil))
		assert.Nil(t, r("ñáé", nil))
	})

	t.Run("max length", func(t *testing.T) {
		r := MaxLength(100, "too long")
		assert.Nil(t, r(strings.Repeat("a", 100), nil))
		assertKind(t, LengthOutOfBounds, r(strings.Repeat("a", 101), nil))
	})

	t.Run("bounded range", func(t *testing.T) {
		r := Length(4, 10, "between 4 and 10")
		assertKind(t, LengthOutOfBounds, r("abc", nil))
		assert.Nil(t, r("abcd", nil))
		assert.Nil(t, r("abcdefghij", nil))
		assertKind(t, LengthOutOfBounds, r("abcdefghijk", nil))
	})

	t.Run("raw length counts surrounding spaces", func(t *testing.T) {
		r := RawLength(4, 10, "between 4 and 10")
		assertKind(t, LengthOutOfBounds, r(" abcdefghij", nil))
		assertKind(t, LengthOutOfBounds, r("abcdefghij   ", nil))
		assert.Nil(t, r("ab  ", nil))
		assert.Nil(t, r("abcdefghij", nil))
		assert.Nil(t, r("", nil))
	})
}

// ---------------------------------------------------------------------------
// TestNumber / TestInteger
// ---------------------------------------------------------------------------

func TestNumber(t *testing.T) {
	r := Number(NumberMessages{Invalid: "Price must be a valid number", Negative: "Price cannot be negative"})

	tests := []struct {
		name  string
		value string
		want  Kind
	}{
		{name: "empty", value: ""},
		{name: "integer", value: "10"},
		{name: "decimal", value: "12.5"},
		{name: "zero", value: "0"},
		{name: "padded", value: " 3.25 "},
		{name: "letters", value: "abc", want: NotANumber},
		{name: "trailing garbage", value: "12abc", want: NotANumber},
		{name: "nan", value: "NaN", want: NotANumber},
		{name: "infinity", value: "Inf", want: NotANumber},
		{name: "negative", value: "-1", want: NegativeNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := r(tt.value, nil)
			if tt.want == 0 {
				assert.Nil(t, v)
				return
			}
			assertKind(t, tt.want, v)
		})
	}
}

func TestInteger(t *testing.T) {
	r := Integer(NumberMessages{Invalid: "Stock must be a valid integer", Negative: "Stock cannot be negative"})

	assert.Nil(t, r("", nil))
	assert.Nil(t, r("7", nil))
	assertKind(t, NotAnInteger, r("7.5", nil))
	assertKind(t, NotANumber, r("seven", nil))
	assertKind(t, NegativeNumber, r("-3", nil))

	v := r("7.5", nil)
	assert.Equal(t, "Stock must be a valid integer", v.Message)

	t.Run("whole decimals", func(t *testing.T) {
		assert.Nil(t, r("10.0", nil))
		assert.Nil(t, r("1e3", nil))
	})

	t.Run("int64 bounds", func(t *testing.T) {
		assert.Nil(t, r("9223372036854775807", nil))

		for _, value := range []string{"9223372036854775808", "99999999999999999999", "1e19", "-99999999999999999999"} {
			v := r(value, nil)
			assertKind(t, NotAnInteger, v)
			assert.Equal(t, "Stock must be a valid integer", v.Message, value)
		}
	})
}

// ---------------------------------------------------------------------------
// TestAtMost
// ---------------------------------------------------------------------------

func TestAtMost(t *testing.T) {
	threshold := All(
		Integer(NumberMessages{Invalid: "Critical stock must be a valid integer", Negative: "Critical stock cannot be negative"}),
		AtMost("stock", "Critical stock exceeds available stock"),
	)
	siblings := Values{"stock": "10"}

	t.Run("empty is valid", func(t *testing.T) {
		assert.Nil(t, threshold("", siblings))
	})

	t.Run("below base", func(t *testing.T) {
		assert.Nil(t, threshold("5", siblings))
	})

	t.Run("equal to base", func(t *testing.T) {
		assert.Nil(t, threshold("10", siblings))
	})

	t.Run("above base", func(t *testing.T) {
		v := threshold("11", siblings)
		assertKind(t, ThresholdExceedsBase, v)
		assert.Contains(t, v.Message, "exceeds available")
	})

	t.Run("negative", func(t *testing.T) {
		v := threshold("-1", siblings)
		assertKind(t, NegativeNumber, v)
		assert.Contains(t, v.Message, "cannot be negative")
	})

	t.Run("base missing", func(t *testing.T) {
		assert.Nil(t, threshold("11", Values{}))
		assert.Nil(t, threshold("11", nil))
	})

	t.Run("base unparsable", func(t *testing.T) {
		assert.Nil(t, threshold("11", Values{"stock": "lots"}))
	})
}

// ---------------------------------------------------------------------------
// TestPattern
// ---------------------------------------------------------------------------

func TestPattern(t *testing.T) {
	phone := Pattern(regexp.MustCompile(`^\+?56?9[0-9]{8}$`), " -", "Phone format is invalid")

	assert.Nil(t, phone("", nil))
	assert.Nil(t, phone("+56 9 1234 5678", nil))
	assert.Nil(t, phone("9-1234-5678", nil))
	assertKind(t, PatternMismatch, phone("12345", nil))
}

// ---------------------------------------------------------------------------
// TestNationalID
// ---------------------------------------------------------------------------

func TestNationalID(t *testing.T) {
	r := NationalID(NationalIDMessages{TooShort: "RUT is too short", TooLong: "RUT is too long", Format: "RUT format is invalid"})

	t.Run("formatted with dots and dash", func(t *testing.T) {
		assert.Nil(t, r("19.011.022-K", nil))
	})

	t.Run("lowercase k", func(t *testing.T) {
		assert.Nil(t, r("19011022k", nil))
	})

	t.Run("seven digits", func(t *testing.T) {
		assert.Nil(t, r("1234567-8", nil))
	})

	t.Run("too short", func(t *testing.T) {
		v := r("123", nil)
		assertKind(t, LengthOutOfBounds, v)
		assert.Equal(t, "RUT is too short", v.Message)
	})

	t.Run("too long", func(t *testing.T) {
		v := r("1234567890", nil)
		assertKind(t, LengthOutOfBounds, v)
		assert.Equal(t, "RUT is too long", v.Message)
	})

	t.Run("letters in body", func(t *testing.T) {
		assertKind(t, PatternMismatch, r("12A45678K", nil))
	})

	t.Run("empty left to required", func(t *testing.T) {
		assert.Nil(t, r("", nil))
	})

	assert.Equal(t, "19011022K", CleanNationalID("19.011.022-k"))
}

// ---------------------------------------------------------------------------
// TestEmail
// ---------------------------------------------------------------------------

func TestEmail(t *testing.T) {
	r := Email([]string{"@duoc.cl", "@profesor.duoc.cl", "gmail.com"}, EmailMessages{
		Format: "Email must be a valid email address",
		Domain: "Only @duoc.cl, @profesor.duoc.cl, @gmail.com addresses are allowed",
	})

	t.Run("allowed domains", func(t *testing.T) {
		assert.Nil(t, r("ana@duoc.cl", nil))
		assert.Nil(t, r("ana@profesor.duoc.cl", nil))
		assert.Nil(t, r("Ana@GMAIL.com", nil))
	})

	t.Run("disallowed domain", func(t *testing.T) {
		v := r("a@yahoo.com", nil)
		assertKind(t, DisallowedDomain, v)
		assert.Contains(t, v.Message, "@duoc.cl")
	})

	t.Run("malformed", func(t *testing.T) {
		assertKind(t, PatternMismatch, r("not-an-email", nil))
		assertKind(t, PatternMismatch, r("a@@duoc.cl", nil))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Nil(t, r("", nil))
	})

	t.Run("no domain restriction", func(t *testing.T) {
		assert.Nil(t, Email(nil, EmailMessages{})("a@yahoo.com", nil))
	})
}

// ---------------------------------------------------------------------------
// TestStrongPassword
// ---------------------------------------------------------------------------

func TestStrongPassword(t *testing.T) {
	r := StrongPassword(6, PasswordMessages{TooShort: "too short", Composition: "weak"})

	assert.Nil(t, r("", nil))
	assertKind(t, LengthOutOfBounds, r("Ab1", nil))
	assertKind(t, PatternMismatch, r("abcdef1", nil))
	assertKind(t, PatternMismatch, r("ABCDEF1", nil))
	assertKind(t, PatternMismatch, r("Abcdefg", nil))
	assert.Nil(t, r("Abcdef1", nil))
}

// ---------------------------------------------------------------------------
// TestMatches
// ---------------------------------------------------------------------------

func TestMatches(t *testing.T) {
	r := Matches("password", MatchMessages{Empty: "Please confirm your password", Mismatch: "Passwords do not match"})

	assertKind(t, MissingRequiredValue, r("", Values{"password": "Abcdef1"}))
	assertKind(t, ValueMismatch, r("Abcdef2", Values{"password": "Abcdef1"}))
	assertKind(t, ValueMismatch, r("abcdef1", Values{"password": "Abcdef1"}))
	assert.Nil(t, r("Abcdef1", Values{"password": "Abcdef1"}))
}

// ---------------------------------------------------------------------------
// TestImageURL
// ---------------------------------------------------------------------------

func TestImageURL(t *testing.T) {
	r := ImageURL("invalid image")

	assert.Nil(t, r("", nil))
	assert.Nil(t, r("https://cdn.example.com/p/1.png", nil))
	assert.Nil(t, r("http://example.com/a.JPEG", nil))
	assertKind(t, PatternMismatch, r("ftp://example.com/a.png", nil))
	assertKind(t, PatternMismatch, r("https://example.com/a.bmp", nil))
}

// ---------------------------------------------------------------------------
// TestChoices
// ---------------------------------------------------------------------------

func TestChecked(t *testing.T) {
	r := Checked("You must accept the terms")

	assert.Nil(t, r("true", nil))
	assertKind(t, MissingRequiredValue, r("false", nil))
	assertKind(t, MissingRequiredValue, r("", nil))
}

func TestSelected(t *testing.T) {
	r := Selected("Please select a category")

	assertKind(t, UnselectedOption, r("", nil))
	assert.Nil(t, r("electronics", nil))
}

func TestOneOf(t *testing.T) {
	r := OneOf([]string{"admin", "seller", "customer"}, "invalid user type")

	assert.Nil(t, r("", nil))
	assert.Nil(t, r("seller", nil))
	assertKind(t, UnselectedOption, r("root", nil))
}

// ---------------------------------------------------------------------------
// TestBirthDate
// ---------------------------------------------------------------------------

func TestBirthDate(t *testing.T) {
	c := fixedClock(t, 2026, time.October, 19)
	r := BirthDate(c, 18, BirthDateMessages{Format: "bad date", Future: "future", Underage: "You must be at least 18 years old"})

	t.Run("exactly eighteen today", func(t *testing.T) {
		assert.Nil(t, r("2008-10-19", nil))
	})

	t.Run("one day short of eighteen", func(t *testing.T) {
		v := r("2008-10-20", nil)
		assertKind(t, BelowMinimumAge, v)
		assert.Equal(t, "You must be at least 18 years old", v.Message)
	})

	t.Run("future", func(t *testing.T) {
		assertKind(t, FutureDate, r("2026-10-20", nil))
	})

	t.Run("born today", func(t *testing.T) {
		assertKind(t, BelowMinimumAge, r("2026-10-19", nil))
	})

	t.Run("malformed", func(t *testing.T) {
		assertKind(t, PatternMismatch, r("19/10/2000", nil))
	})

	t.Run("follows the clock", func(t *testing.T) {
		c.Add(24 * time.Hour)
		assert.Nil(t, r("2008-10-20", nil))
	})
}

func TestAge(t *testing.T) {
	on := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 26, Age(time.Date(2000, time.February, 29, 0, 0, 0, 0, time.UTC), on))
	assert.Equal(t, 26, Age(time.Date(2000, time.March, 1, 0, 0, 0, 0, time.UTC), on))
	assert.Equal(t, 25, Age(time.Date(2000, time.March, 2, 0, 0, 0, 0, time.UTC), on))
}
