package utils

import "errors"

// EnumValidator restricts a string field to a fixed value set.
func EnumValidator(allowed ...string) func(string) error {
	set := map[string]struct{}{}
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(s string) error {
		if _, ok := set[s]; ok {
			return nil
		}
		return errors.New("validation failed")
	}
}
