package prompt

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/tagterm/pkg/errors"
)

// Kind names a target type and parses trimmed input into it.
type Kind[T any] struct {
	// Name appears in the "expected input type" message
	Name  string
	Parse func(string) (T, error)
}

// Built-in kinds
var (
	String = Kind[string]{
		Name:  "string",
		Parse: func(s string) (string, error) { return s, nil },
	}

	Int = Kind[int]{
		Name:  "int",
		Parse: strconv.Atoi,
	}

	Int64 = Kind[int64]{
		Name:  "int64",
		Parse: func(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) },
	}

	Uint = Kind[uint]{
		Name: "uint",
		Parse: func(s string) (uint, error) {
			v, err := strconv.ParseUint(s, 10, 0)
			return uint(v), err
		},
	}

	Float64 = Kind[float64]{
		Name:  "float64",
		Parse: func(s string) (float64, error) { return strconv.ParseFloat(s, 64) },
	}

	Bool = Kind[bool]{
		Name:  "bool",
		Parse: strconv.ParseBool,
	}
)

// YesNo accepts y, yes, n and no in any case.
var YesNo = Kind[bool]{
	Name:  "yes/no",
	Parse: parseYesNo,
}

func parseYesNo(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	}
	return false, errors.Newf(errors.ErrInvalidInput, "not a yes/no answer: %q", s)
}
