package domain

import (
	"fmt"
	"slices"
	"strings"
)

type FieldType string

const (
	FieldTypeNumber   FieldType = "number"
	FieldTypeString   FieldType = "string"
	FieldTypeBoolean  FieldType = "boolean"
	FieldTypeDate     FieldType = "date"
	FieldTypeLongText FieldType = "long_text"
	FieldTypeEnum     FieldType = "enum"
)

var FieldTypes = []FieldType{
	FieldTypeNumber,
	FieldTypeString,
	FieldTypeBoolean,
	FieldTypeDate,
	FieldTypeLongText,
	FieldTypeEnum,
}

// FieldKind is the closed set of field types a schema can declare. Only the
// variants in this file implement it.
type FieldKind interface {
	Type() FieldType
	sealed()
}

type NumberKind struct{}
type StringKind struct{}
type BooleanKind struct{}
type DateKind struct{}
type LongTextKind struct{}

// EnumKind holds the ordered list of allowed values.
type EnumKind struct {
	Values []string
}

func (NumberKind) Type() FieldType   { return FieldTypeNumber }
func (StringKind) Type() FieldType   { return FieldTypeString }
func (BooleanKind) Type() FieldType  { return FieldTypeBoolean }
func (DateKind) Type() FieldType     { return FieldTypeDate }
func (LongTextKind) Type() FieldType { return FieldTypeLongText }
func (EnumKind) Type() FieldType     { return FieldTypeEnum }

func (NumberKind) sealed()   {}
func (StringKind) sealed()   {}
func (BooleanKind) sealed()  {}
func (DateKind) sealed()     {}
func (LongTextKind) sealed() {}
func (EnumKind) sealed()     {}

func (k EnumKind) Allows(value string) bool {
	for _, allowed := range k.Values {
		if allowed == value {
			return true
		}
	}
	return false
}

// ParseFieldType maps a wire value to a FieldType.
func ParseFieldType(value string) (FieldType, error) {
	candidate := FieldType(strings.ToLower(strings.TrimSpace(value)))
	for _, fieldType := range FieldTypes {
		if fieldType == candidate {
			return fieldType, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFieldType, value)
}

// NewFieldKind builds the variant for a field type. Options are only kept for
// enums, every other variant ignores them.
func NewFieldKind(fieldType FieldType, options []string) (FieldKind, error) {
	switch fieldType {
	case FieldTypeNumber:
		return NumberKind{}, nil
	case FieldTypeString:
		return StringKind{}, nil
	case FieldTypeBoolean:
		return BooleanKind{}, nil
	case FieldTypeDate:
		return DateKind{}, nil
	case FieldTypeLongText:
		return LongTextKind{}, nil
	case FieldTypeEnum:
		if len(options) == 0 {
			return nil, ErrEnumWithoutOptions
		}
		values := make([]string, len(options))
		copy(values, options)
		return EnumKind{Values: values}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFieldType, fieldType)
	}
}

// CheckEnumOptions reports why options cannot back an enum, or "" when they can.
func CheckEnumOptions(options []string) string {
	if len(options) == 0 {
		return "enum fields need at least one option"
	}

	seen := make(map[string]bool, len(options))
	for _, option := range options {
		if strings.TrimSpace(option) == "" {
			return "enum options cannot be blank"
		}
		if seen[option] {
			return fmt.Sprintf("enum option %q is repeated", option)
		}
		seen[option] = true
	}
	return ""
}

// SameKind compares two kinds including enum values and their order.
func SameKind(a, b FieldKind) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Type() != b.Type() {
		return false
	}
	return slices.Equal(KindOptions(a), KindOptions(b))
}

// KindOptions returns the options stored alongside a kind. Only enums carry any.
func KindOptions(kind FieldKind) []string {
	switch k := kind.(type) {
	case EnumKind:
		values := make([]string, len(k.Values))
		copy(values, k.Values)
		return values
	case NumberKind, StringKind, BooleanKind, DateKind, LongTextKind:
		return []string{}
	default:
		panic(fmt.Sprintf("unhandled field kind %T", kind))
	}
}
