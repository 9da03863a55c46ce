package prompt

import (
	"cmp"
	"fmt"
	"strings"
)

// Min rejects values below lo.
func Min[T cmp.Ordered](lo T) Validator[T] {
	return Validator[T]{
		Reject:  func(v T) bool { return v < lo },
		Message: fmt.Sprintf("[color=red][bold]Value must be at least %v.", lo),
	}
}

// Max rejects values above hi.
func Max[T cmp.Ordered](hi T) Validator[T] {
	return Validator[T]{
		Reject:  func(v T) bool { return v > hi },
		Message: fmt.Sprintf("[color=red][bold]Value must be at most %v.", hi),
	}
}

// NotEmpty rejects blank strings.
func NotEmpty() Validator[string] {
	return Validator[string]{
		Reject:  func(v string) bool { return strings.TrimSpace(v) == "" },
		Message: "[color=red][bold]A value is required.",
	}
}

// OneOf rejects strings outside options. Matching ignores case.
func OneOf(options ...string) Validator[string] {
	return Validator[string]{
		Reject: func(v string) bool {
			for _, o := range options {
				if strings.EqualFold(v, o) {
					return false
				}
			}
			return true
		},
		Message: fmt.Sprintf("[color=red][bold]Expected one of: [/bold]%s", strings.Join(options, ", ")),
	}
}

// All rejects a value when any of validators rejects it, with a single
// message.
func All[T any](message string, validators ...Validator[T]) Validator[T] {
	return Validator[T]{
		Reject: func(v T) bool {
			for _, val := range validators {
				if val.Reject != nil && val.Reject(v) {
					return true
				}
			}
			return false
		},
		Message: message,
	}
}
