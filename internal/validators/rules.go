package validators

import (
	"errors"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/benbjohnson/clock"
	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

var (
	validate = validator.New()

	nationalIDFormat = regexp.MustCompile(`^[0-9]{7,8}[0-9K]$`)
	imageURLFormat   = regexp.MustCompile(`(?i)^https?://.+\.(jpg|jpeg|png|gif|webp)$`)
)

// All combines rules; the first violation in declaration order is returned.
func All(rules ...Rule) Rule {
	return func(value string, siblings Siblings) *Violation {
		for _, r := range rules {
			if v := r(value, siblings); v != nil {
				return v
			}
		}
		return nil
	}
}

// Required rejects values that are empty after trimming whitespace.
func Required(message string) Rule {
	return func(value string, _ Siblings) *Violation {
		if strings.TrimSpace(value) == "" {
			return violation(MissingRequiredValue, message)
		}
		return nil
	}
}

// MinLength rejects non-empty values shorter than min runes.
func MinLength(min int, message string) Rule {
	return Length(min, -1, message)
}

// MaxLength rejects values longer than max runes.
func MaxLength(max int, message string) Rule {
	return Length(0, max, message)
}

// Length rejects non-empty values whose rune count falls outside [min, max].
// A negative max disables the upper bound.
func Length(min, max int, message string) Rule {
	return lengthRule(min, max, message, true)
}

// RawLength is Length counting every rune of the value, surrounding
// whitespace included. Secret fields use it because they are submitted
// untrimmed.
func RawLength(min, max int, message string) Rule {
	return lengthRule(min, max, message, false)
}

func lengthRule(min, max int, message string, trim bool) Rule {
	return func(value string, _ Siblings) *Violation {
		if trim {
			value = strings.TrimSpace(value)
		}
		if value == "" {
			return nil
		}
		n := utf8.RuneCountInString(value)
		if n < min || (max >= 0 && n > max) {
			return violation(LengthOutOfBounds, message)
		}
		return nil
	}
}

// NumberMessages holds the messages used by Number and Integer.
type NumberMessages struct {
	Invalid  string
	Negative string
}

func parseNumber(value string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Number accepts non-negative decimal numbers.
func Number(msgs NumberMessages) Rule {
	return func(value string, _ Siblings) *Violation {
		if strings.TrimSpace(value) == "" {
			return nil
		}
		f, ok := parseNumber(value)
		if !ok {
			return violation(NotANumber, msgs.Invalid)
		}
		if f < 0 {
			return violation(NegativeNumber, msgs.Negative)
		}
		return nil
	}
}

// Integer accepts non-negative whole numbers that fit in an int64. Whole
// decimals such as "10.0" are accepted.
func Integer(msgs NumberMessages) Rule {
	return func(value string, _ Siblings) *Violation {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return nil
		}

		n, err := strconv.ParseInt(trimmed, 10, 64)
		switch {
		case err == nil:
			if n < 0 {
				return violation(NegativeNumber, msgs.Negative)
			}
			return nil
		case errors.Is(err, strconv.ErrRange):
			return violation(NotAnInteger, msgs.Invalid)
		}

		f, ok := parseNumber(trimmed)
		if !ok {
			return violation(NotANumber, msgs.Invalid)
		}
		if f != math.Trunc(f) || f >= maxInt64Float || f < -maxInt64Float {
			return violation(NotAnInteger, msgs.Invalid)
		}
		if f < 0 {
			return violation(NegativeNumber, msgs.Negative)
		}
		return nil
	}
}

// maxInt64Float is 2^63, the first float64 above math.MaxInt64.
const maxInt64Float = float64(1 << 63)

// AtMost rejects a number greater than the numeric value of the base field.
// Either side being empty or unparsable is left to the other rules.
func AtMost(base string, message string) Rule {
	return func(value string, siblings Siblings) *Violation {
		v, ok := parseNumber(value)
		if !ok {
			return nil
		}
		limit, ok := parseNumber(sibling(siblings, base))
		if !ok {
			return nil
		}
		if v > limit {
			return violation(ThresholdExceedsBase, message)
		}
		return nil
	}
}

// Pattern matches the value against re after removing every rune in strip.
func Pattern(re *regexp.Regexp, strip string, message string) Rule {
	return func(value string, _ Siblings) *Violation {
		cleaned := removeRunes(strings.TrimSpace(value), strip)
		if cleaned == "" {
			return nil
		}
		if !re.MatchString(cleaned) {
			return violation(PatternMismatch, message)
		}
		return nil
	}
}

func removeRunes(s, set string) string {
	if set == "" {
		return s
	}
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(set, r) {
			return -1
		}
		return r
	}, s)
}

// NationalIDMessages holds the messages used by NationalID.
type NationalIDMessages struct {
	TooShort string
	TooLong  string
	Format   string
}

// CleanNationalID strips dots, dashes and spaces and upper-cases the check digit.
func CleanNationalID(value string) string {
	return strings.ToUpper(removeRunes(value, ".- "))
}

// NationalID validates the shape of a Chilean RUT: 7 or 8 digits followed by a
// digit or K. The check digit itself is not verified.
func NationalID(msgs NationalIDMessages) Rule {
	return func(value string, _ Siblings) *Violation {
		cleaned := CleanNationalID(value)
		switch {
		case cleaned == "":
			return nil
		case len(cleaned) < 8:
			return violation(LengthOutOfBounds, msgs.TooShort)
		case len(cleaned) > 9:
			return violation(LengthOutOfBounds, msgs.TooLong)
		case !nationalIDFormat.MatchString(cleaned):
			return violation(PatternMismatch, msgs.Format)
		}
		return nil
	}
}

// EmailMessages holds the messages used by Email.
type EmailMessages struct {
	Format string
	Domain string
}

// Email accepts well-formed addresses ending with one of the allowed domain
// suffixes. An empty domain list accepts any domain.
func Email(domains []string, msgs EmailMessages) Rule {
	suffixes := make([]string, 0, len(domains))
	for _, d := range domains {
		d = strings.ToLower(strings.TrimSpace(d))
		if !strings.HasPrefix(d, "@") {
			d = "@" + d
		}
		suffixes = append(suffixes, d)
	}

	return func(value string, _ Siblings) *Violation {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return nil
		}
		if err := validate.Var(trimmed, "email"); err != nil {
			return violation(PatternMismatch, msgs.Format)
		}
		if len(suffixes) == 0 {
			return nil
		}
		lower := strings.ToLower(trimmed)
		for _, s := range suffixes {
			if strings.HasSuffix(lower, s) {
				return nil
			}
		}
		return violation(DisallowedDomain, msgs.Domain)
	}
}

// PasswordMessages holds the messages used by StrongPassword.
type PasswordMessages struct {
	TooShort    string
	Composition string
}

// StrongPassword requires at least min runes with a lowercase letter, an
// uppercase letter and a digit.
func StrongPassword(min int, msgs PasswordMessages) Rule {
	return func(value string, _ Siblings) *Violation {
		if value == "" {
			return nil
		}
		if utf8.RuneCountInString(value) < min {
			return violation(LengthOutOfBounds, msgs.TooShort)
		}
		var lower, upper, digit bool
		for _, r := range value {
			switch {
			case unicode.IsLower(r):
				lower = true
			case unicode.IsUpper(r):
				upper = true
			case unicode.IsDigit(r):
				digit = true
			}
		}
		if !lower || !upper || !digit {
			return violation(PatternMismatch, msgs.Composition)
		}
		return nil
	}
}

// MatchMessages holds the messages used by Matches.
type MatchMessages struct {
	Empty    string
	Mismatch string
}

// Matches requires the value to equal the other field's value exactly.
func Matches(other string, msgs MatchMessages) Rule {
	return func(value string, siblings Siblings) *Violation {
		if strings.TrimSpace(value) == "" {
			return violation(MissingRequiredValue, msgs.Empty)
		}
		if value != sibling(siblings, other) {
			return violation(ValueMismatch, msgs.Mismatch)
		}
		return nil
	}
}

// ImageURL accepts http(s) URLs pointing at a jpg, jpeg, png, gif or webp file.
func ImageURL(message string) Rule {
	return func(value string, _ Siblings) *Violation {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return nil
		}
		if !imageURLFormat.MatchString(trimmed) {
			return violation(PatternMismatch, message)
		}
		return nil
	}
}

// Checked requires a boolean field to be true.
func Checked(message string) Rule {
	return func(value string, _ Siblings) *Violation {
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil || !b {
			return violation(MissingRequiredValue, message)
		}
		return nil
	}
}

// Selected requires a choice field to hold a non-placeholder option.
func Selected(message string) Rule {
	return func(value string, _ Siblings) *Violation {
		if strings.TrimSpace(value) == "" {
			return violation(UnselectedOption, message)
		}
		return nil
	}
}

// OneOf rejects non-empty values outside the allowed set.
func OneOf(options []string, message string) Rule {
	allowed := slices.Clone(options)
	return func(value string, _ Siblings) *Violation {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return nil
		}
		if !slices.Contains(allowed, trimmed) {
			return violation(UnselectedOption, message)
		}
		return nil
	}
}

// BirthDateMessages holds the messages used by BirthDate.
type BirthDateMessages struct {
	Format   string
	Future   string
	Underage string
}

// BirthDate parses YYYY-MM-DD dates and rejects future dates and people
// younger than minAge full years, measured against c.
func BirthDate(c clock.Clock, minAge int, msgs BirthDateMessages) Rule {
	return func(value string, _ Siblings) *Violation {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return nil
		}
		born, err := time.Parse(dateLayout, trimmed)
		if err != nil {
			return violation(PatternMismatch, msgs.Format)
		}
		now := c.Now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		if born.After(today) {
			return violation(FutureDate, msgs.Future)
		}
		if Age(born, today) < minAge {
			return violation(BelowMinimumAge, msgs.Underage)
		}
		return nil
	}
}

// Age returns the number of full years between born and on.
func Age(born, on time.Time) int {
	age := on.Year() - born.Year()
	if on.Month() < born.Month() || (on.Month() == born.Month() && on.Day() < born.Day()) {
		age--
	}
	return age
}
