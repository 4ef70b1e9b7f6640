package domain

import "strings"

type ID string

func (vo ID) String() string {
	return string(vo)
}

type Name string

// Normalized returns the comparison key for a name: trimmed and lower cased.
func (vo Name) Normalized() string {
	return strings.ToLower(strings.TrimSpace(string(vo)))
}

type Code string

// NewCode upper cases and trims a business key.
func NewCode(value string) Code {
	return Code(strings.ToUpper(strings.TrimSpace(value)))
}

func (vo Code) String() string {
	return string(vo)
}

type Description string
