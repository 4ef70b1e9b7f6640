package domain

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Property values are stored as text. The functions in this file are the only
// place that text is turned into typed values and back.

const (
	_dateLayout     = "2006-01-02"
	_dateTimeLayout = "2006-01-02T15:04:05"
)

var (
	decimalPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

	truthyTokens = map[string]bool{"true": true, "1": true}
	falsyTokens  = map[string]bool{"false": true, "0": true}

	_exampleEpoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// DecodeValue parses raw against the schema kind. The returned error is always
// a *FieldError naming the schema.
func DecodeValue(schema FieldSchema, raw string) (any, error) {
	field := string(schema.Name)

	switch kind := schema.Kind.(type) {
	case NumberKind:
		return decodeNumber(field, raw)
	case BooleanKind:
		return decodeBoolean(field, raw)
	case DateKind:
		return decodeDate(field, raw)
	case EnumKind:
		return decodeEnum(field, kind, raw)
	case StringKind, LongTextKind:
		return raw, nil
	default:
		return nil, NewFieldError(field, CodeInvalidType, fmt.Sprintf("unsupported field type %T", schema.Kind), raw)
	}
}

// DecodeStored decodes a possibly missing stored value. A missing value is
// reported as nil, which is a valid state for any field.
func DecodeStored(schema FieldSchema, stored *string) (any, error) {
	if stored == nil {
		return nil, nil
	}
	return DecodeValue(schema, *stored)
}

// ValidateValue checks raw for assignment to the schema, including the
// required constraint that DecodeValue does not know about.
func ValidateValue(schema FieldSchema, raw string) *FieldError {
	if schema.Required && strings.TrimSpace(raw) == "" {
		return NewFieldError(string(schema.Name), CodeRequired, "value is required", raw)
	}

	_, err := DecodeValue(schema, raw)
	if err == nil {
		return nil
	}

	fieldErr, ok := err.(*FieldError)
	if !ok {
		return NewFieldError(string(schema.Name), CodeInvalidType, err.Error(), raw)
	}
	return fieldErr
}

// EncodeValue turns a typed value into its stored text form.
func EncodeValue(kind FieldKind, value any) (string, error) {
	switch k := kind.(type) {
	case NumberKind:
		number, ok := toFloat(value)
		if !ok || math.IsNaN(number) || math.IsInf(number, 0) {
			return "", fmt.Errorf("encoding %v as number", value)
		}
		return strconv.FormatFloat(number, 'f', -1, 64), nil
	case BooleanKind:
		b, ok := value.(bool)
		if !ok {
			return "", fmt.Errorf("encoding %v as boolean", value)
		}
		return strconv.FormatBool(b), nil
	case DateKind:
		switch v := value.(type) {
		case time.Time:
			return v.Format(_dateLayout), nil
		case string:
			if _, ok := parseDate(v); !ok {
				return "", fmt.Errorf("encoding %q as date", v)
			}
			return v, nil
		default:
			return "", fmt.Errorf("encoding %v as date", value)
		}
	case EnumKind:
		s, ok := value.(string)
		if !ok || !k.Allows(s) {
			return "", fmt.Errorf("encoding %v as enum", value)
		}
		return s, nil
	case StringKind, LongTextKind:
		s, ok := value.(string)
		if !ok {
			return "", fmt.Errorf("encoding %v as text", value)
		}
		return s, nil
	default:
		return "", fmt.Errorf("unsupported field kind %T", kind)
	}
}

// ExampleValue returns a deterministic valid value for seeding data.
func ExampleValue(kind FieldKind, n int) string {
	if n < 0 {
		n = -n
	}

	switch k := kind.(type) {
	case NumberKind:
		return strconv.Itoa((n + 1) * 10)
	case BooleanKind:
		return strconv.FormatBool(n%2 == 0)
	case DateKind:
		return _exampleEpoch.AddDate(0, 0, n).Format(_dateLayout)
	case EnumKind:
		if len(k.Values) == 0 {
			return ""
		}
		return k.Values[n%len(k.Values)]
	case StringKind:
		return fmt.Sprintf("sample-%d", n)
	case LongTextKind:
		return fmt.Sprintf("Sample description %d. Generated for seeding and demo purposes only.", n)
	default:
		return ""
	}
}

func decodeNumber(field, raw string) (any, error) {
	value := strings.TrimSpace(raw)
	if !decimalPattern.MatchString(value) {
		return nil, NewFieldError(field, CodeInvalidType, "value must be a decimal number", raw)
	}

	number, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsInf(number, 0) || math.IsNaN(number) {
		return nil, NewFieldError(field, CodeInvalidType, "value must be a finite number", raw)
	}

	return number, nil
}

func decodeBoolean(field, raw string) (any, error) {
	token := strings.ToLower(strings.TrimSpace(raw))
	if truthyTokens[token] {
		return true, nil
	}
	if falsyTokens[token] {
		return false, nil
	}
	return nil, NewFieldError(field, CodeInvalidType, "value must be one of true, false, 1, 0", raw)
}

func decodeDate(field, raw string) (any, error) {
	if _, ok := parseDate(raw); !ok {
		return nil, NewFieldError(field, CodeInvalidType, "value must be a date (YYYY-MM-DD)", raw)
	}
	return raw, nil
}

func decodeEnum(field string, kind EnumKind, raw string) (any, error) {
	if len(kind.Values) == 0 {
		return nil, NewFieldError(field, CodeInvalidOption, "field has no allowed values", raw)
	}
	if !kind.Allows(raw) {
		return nil, NewFieldError(field, CodeInvalidOption,
			fmt.Sprintf("value must be one of %s", strings.Join(kind.Values, ", ")), raw)
	}
	return raw, nil
}

func parseDate(raw string) (time.Time, bool) {
	value := strings.TrimSpace(raw)
	for _, layout := range []string{_dateLayout, time.RFC3339, time.RFC3339Nano, _dateTimeLayout} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}
