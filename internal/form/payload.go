package form

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-form-keeper/models"
	"golang.org/x/crypto/bcrypt"
)

// SecretCost is the bcrypt cost used for CoerceSecret fields.
var SecretCost = bcrypt.DefaultCost

// Payload assembles the submission payload from the current values using each
// field's coercion. Empty values fall back to the field default.
func (f *Form) Payload() (models.Payload, error) {
	payload := make(models.Payload, len(f.order))
	for _, name := range f.order {
		fld := f.fields[name]
		if fld.def.Coerce == CoerceOmit {
			continue
		}

		raw := strings.TrimSpace(fld.value)
		if fld.def.Coerce == CoerceSecret {
			raw = fld.value
		}
		if raw == "" {
			raw = fld.def.Default
		}

		v, err := coerce(fld.def.Coerce, raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrCoercion, name, err)
		}
		payload[name] = v
	}
	return payload, nil
}

func coerce(c Coercion, raw string) (any, error) {
	switch c {
	case CoerceFloat:
		if raw == "" {
			return nil, nil
		}
		return strconv.ParseFloat(raw, 64)
	case CoerceInt:
		if raw == "" {
			return nil, nil
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err == nil {
			return n, nil
		}
		// "10.0" passes the integer rule
		fl, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil || fl >= 1<<63 || fl < -(1<<63) || fl != math.Trunc(fl) {
			return nil, err
		}
		return int64(fl), nil
	case CoerceBool:
		if raw == "" {
			return false, nil
		}
		return strconv.ParseBool(raw)
	case CoerceSecret:
		if raw == "" {
			return "", nil
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(raw), SecretCost)
		if err != nil {
			return nil, err
		}
		return string(hash), nil
	default:
		return raw, nil
	}
}
