package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion is the region assumed for numbers written without a country code.
const DefaultRegion = "VN"

// Number types reported by Inspect.
const (
	TypeMobile            = "mobile"
	TypeFixedLine         = "fixed_line"
	TypeFixedLineOrMobile = "fixed_line_or_mobile"
	TypeVoIP              = "voip"
	TypeTollFree          = "toll_free"
	TypeUnknown           = "unknown"
)

// Details describes a single phone input after normalization and parsing.
type Details struct {
	Input      string `json:"input"`
	Normalized string `json:"normalized"`
	Valid      bool   `json:"valid"`
	E164       string `json:"e164,omitempty"`
	Region     string `json:"region,omitempty"`
	Type       string `json:"type,omitempty"`
}

// NormalizeE164 formats a phone number to E.164. If parsing fails, it returns the trimmed input.
func NormalizeE164(input string) string {
	return NormalizeE164In(input, DefaultRegion)
}

// NormalizeE164In is NormalizeE164 with an explicit default region.
func NormalizeE164In(input, region string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return trimmed
	}

	number, ok := parseValid(trimmed, region)
	if !ok {
		return trimmed
	}

	return phonenumbers.Format(number, phonenumbers.E164)
}

// Inspect normalizes input and enriches it with parsing results for the given region.
// Fields that depend on parsing stay empty when the number cannot be parsed.
func Inspect(input, region string) Details {
	if region == "" {
		region = DefaultRegion
	}

	normalized := Normalize(input)
	details := Details{
		Input:      input,
		Normalized: normalized,
		Valid:      IsValidVietnamesePhone(normalized),
	}

	if normalized == "" {
		return details
	}

	number, ok := parseValid(normalized, region)
	if !ok {
		return details
	}

	details.E164 = phonenumbers.Format(number, phonenumbers.E164)
	details.Region = phonenumbers.GetRegionCodeForNumber(number)
	details.Type = numberType(phonenumbers.GetNumberType(number))
	return details
}

func parseValid(input, region string) (*phonenumbers.PhoneNumber, bool) {
	number, err := phonenumbers.Parse(input, region)
	if err != nil {
		return nil, false
	}
	if !phonenumbers.IsValidNumber(number) {
		return nil, false
	}
	return number, true
}

func numberType(t phonenumbers.PhoneNumberType) string {
	switch t {
	case phonenumbers.MOBILE:
		return TypeMobile
	case phonenumbers.FIXED_LINE:
		return TypeFixedLine
	case phonenumbers.FIXED_LINE_OR_MOBILE:
		return TypeFixedLineOrMobile
	case phonenumbers.VOIP:
		return TypeVoIP
	case phonenumbers.TOLL_FREE:
		return TypeTollFree
	default:
		return TypeUnknown
	}
}
