package patch

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var errNotOptional = errors.New("patch: rule applied to a non Optional value")

// ValueRules applies rules to the value of a present, non-null Optional.
// Absent and null fields pass; whether they take part in an update is
// decided by a Rule.
func ValueRules[T any](rules ...validation.Rule) validation.Rule {
	return validation.By(func(v interface{}) error {
		o, ok := v.(Optional[T])
		if !ok {
			return validation.NewInternalError(errNotOptional)
		}
		val, ok := o.Get()
		if !ok {
			return nil
		}
		return validation.Validate(val, rules...)
	})
}
