package validate

import (
	"fmt"
	"reflect"
	"strings"
)

// createError formats a validation error from the given message and arguments.
func createError(msg string, args ...any) error {
	return fmt.Errorf(msg, args...)
}

// NotNil checks if the provided value is not nil, including typed nil pointers,
// maps, slices, channels and functions.
// It returns an error if the value is nil, using the provided message and arguments.
func NotNil(value any, msg string, args ...any) error {
	if value == nil {
		return createError(msg, args...)
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		if v.IsNil() {
			return createError(msg, args...)
		}
	default:
	}
	return nil
}

// IsBlank returns true when the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsNotBlank returns true when the string contains at least one non-whitespace character.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// ContainsNull returns true when the string contains a null character.
func ContainsNull(s string) bool {
	return strings.ContainsRune(s, '\x00')
}

// ContainsSpaces returns true when the string contains whitespace.
func ContainsSpaces(s string) bool {
	return strings.ContainsAny(s, " \t")
}
