// Package itemid builds and parses the stable identifiers that bind catalog
// items to persisted user state.
//
// An id has the form "{category}-{index}". Parsing splits on the last
// separator and requires a canonical decimal index, so category keys may
// themselves contain the separator without making ids ambiguous.
package itemid

import (
	"strconv"
	"strings"
)

// Separator joins the category key and the item index.
const Separator = "-"

// Make returns the id of the item at index within category.
func Make(category string, index int) string {
	return category + Separator + strconv.Itoa(index)
}

// Parse splits id into its category key and index. ok is false when id does
// not have the "{category}-{index}" shape.
func Parse(id string) (category string, index int, ok bool) {
	i := strings.LastIndex(id, Separator)
	if i <= 0 || i == len(id)-1 {
		return "", 0, false
	}
	digits := id[i+1:]
	if !canonical(digits) {
		return "", 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return "", 0, false
	}
	return id[:i], n, true
}

// canonical reports whether s is a non-negative decimal without sign or
// leading zeros, which is exactly what strconv.Itoa produces.
func canonical(s string) bool {
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
