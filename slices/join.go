package slices

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Join formats every element with fmt.Sprint and joins them with separator
// (default ",").
func Join[T any](s []T, separator ...string) string {
	sep := lo.FirstOr(separator, ",")
	return strings.Join(Map(s, func(elem T) string {
		return fmt.Sprint(elem)
	}), sep)
}
