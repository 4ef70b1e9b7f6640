package utils

// StringPtr returns a pointer to the string if it's not empty, otherwise returns nil
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// DerefOr returns the pointed value, or fallback when v is nil.
func DerefOr[T any](v *T, fallback T) T {
	if v == nil {
		return fallback
	}
	return *v
}

func BoolPtr(b bool) *bool {
	return &b
}
