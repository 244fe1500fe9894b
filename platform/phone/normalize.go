// Package phone provides phone number utilities.
// This is part of the platform layer and contains no business logic.
package phone

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	countryCodePrefix   = "84"
	accessCodePrefix    = "00"
	localTrunkPrefix    = "0"
	separatorCharacters = "-()+"
)

// vnMobileRegex matches a Vietnamese mobile number in canonical local form.
var vnMobileRegex = regexp.MustCompile(`^0[3-9]\d{8}$`)

// Normalize reshapes free-form phone input into canonical local form.
// Separators are removed, a leading "84" becomes "0", and afterwards a leading
// "00" is dropped. Each prefix rule is applied at most once, so "0084..." ends
// up as "84..." and is not converted again. Normalize never rejects input.
func Normalize(input string) string {
	if input == "" {
		return ""
	}

	normalized := stripSeparators(strings.TrimFunc(input, isBlank))

	if strings.HasPrefix(normalized, countryCodePrefix) {
		normalized = localTrunkPrefix + normalized[len(countryCodePrefix):]
	}

	if strings.HasPrefix(normalized, accessCodePrefix) {
		normalized = normalized[len(accessCodePrefix):]
	}

	return normalized
}

// IsValidVietnamesePhone reports whether an already normalized number is a
// ten digit Vietnamese mobile number ("0", then 3-9, then eight digits).
func IsValidVietnamesePhone(input string) bool {
	if input == "" {
		return false
	}
	return vnMobileRegex.MatchString(input)
}

func stripSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		if isBlank(r) || strings.ContainsRune(separatorCharacters, r) {
			return -1
		}
		return r
	}, s)
}

// isBlank reports whether r is white space in the ECMAScript sense: the
// Unicode space separators plus the byte order mark, but not NEL (U+0085).
func isBlank(r rune) bool {
	switch r {
	case '\ufeff':
		return true
	case '\u0085':
		return false
	}
	return unicode.IsSpace(r)
}
