// Package currency formats monetary amounts for display in storefronts.
// This is part of the platform layer and contains no business logic.
package currency

import (
	"math"
	"strconv"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// SymbolVND is the narrow display symbol for Vietnamese dong.
const SymbolVND = "₫"

const (
	million  = 1_000_000
	thousand = 1_000
)

var vnd = currency.MustParseISO("VND")

// Code returns the ISO 4217 code used for all amounts in this package.
func Code() string {
	return vnd.String()
}

// FormatVND renders whole dong with Vietnamese digit grouping, e.g. "1.234.567 ₫".
// The symbol is separated by a no-break space.
func FormatVND(amount int64) string {
	p := message.NewPrinter(language.Vietnamese)
	return p.Sprintf("%d", amount) + "\u00a0" + SymbolVND
}

// FormatCompactVND abbreviates large amounts for dashboards: millions as "2.5M",
// thousands as "15K". Smaller (and negative) amounts fall back to FormatVND.
func FormatCompactVND(amount int64) string {
	switch {
	case amount >= million:
		v := math.Round(float64(amount)/million*10) / 10
		return strconv.FormatFloat(v, 'f', 1, 64) + "M"
	case amount >= thousand:
		v := math.Round(float64(amount) / thousand)
		return strconv.FormatFloat(v, 'f', 0, 64) + "K"
	default:
		return FormatVND(amount)
	}
}
