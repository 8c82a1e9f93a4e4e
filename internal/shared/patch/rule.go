package patch

import (
	"reflect"
	"strings"
)

// Rule decides whether a supplied field becomes part of a change set.
type Rule int

const (
	// OmitIfBlank includes the field only when it is present, non-null and,
	// for strings, not empty after trimming whitespace.
	OmitIfBlank Rule = iota
	// OmitIfNull includes the field only when it is present and non-null.
	OmitIfNull
	// IncludeWhenPresent includes the field whenever it was supplied, null included.
	IncludeWhenPresent
)

func (r Rule) String() string {
	switch r {
	case OmitIfBlank:
		return "omit_if_blank"
	case OmitIfNull:
		return "omit_if_null"
	case IncludeWhenPresent:
		return "include_when_present"
	default:
		return "unknown"
	}
}

// Include applies rule r to o.
func Include[T any](o Optional[T], r Rule) bool {
	switch r {
	case IncludeWhenPresent:
		return o.Present
	case OmitIfNull:
		return o.Present && !o.Null
	case OmitIfBlank:
		if !o.Present || o.Null {
			return false
		}
		return !isBlank(o.Value)
	default:
		panic("patch: unknown rule " + r.String())
	}
}

// isBlank treats whitespace-only strings as blank; non-string values are
// blank only when they are nil pointers.
func isBlank(v any) bool {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s) == ""
	case *string:
		return s == nil || strings.TrimSpace(*s) == ""
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return true
	}
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
