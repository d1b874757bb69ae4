package phone

import (
	"fmt"

	"github.com/nyaruka/phonenumbers"
)

// defaultRegion is assumed for numbers without an international prefix.
// The prospect pipeline ingests German local businesses.
const defaultRegion = "DE"

// PhoneType represents the type of phone number.
type PhoneType string

const (
	TypeFixedLine         PhoneType = "FIXED_LINE"
	TypeMobile            PhoneType = "MOBILE"
	TypeFixedLineOrMobile PhoneType = "FIXED_LINE_OR_MOBILE"
	TypeTollFree          PhoneType = "TOLL_FREE"
	TypePremiumRate       PhoneType = "PREMIUM_RATE"
	TypeVoip              PhoneType = "VOIP"
	TypeUnknown           PhoneType = "UNKNOWN"
)

// ValidationResult contains the result of phone number validation.
type ValidationResult struct {
	IsValid             bool      `json:"is_valid"`
	E164Format          string    `json:"e164_format"`
	InternationalFormat string    `json:"international_format"`
	NationalFormat      string    `json:"national_format"`
	CountryCode         string    `json:"country_code"`
	PhoneType           PhoneType `json:"phone_type"`
}

// ValidatePhone validates a phone number and returns detailed information.
func ValidatePhone(phone, countryCode string) (*ValidationResult, error) {
	if phone == "" {
		return nil, fmt.Errorf("phone number cannot be empty")
	}
	if countryCode == "" {
		countryCode = defaultRegion
	}

	parsed, err := phonenumbers.Parse(phone, countryCode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse phone number: %w", err)
	}

	return &ValidationResult{
		IsValid:             phonenumbers.IsValidNumber(parsed),
		E164Format:          phonenumbers.Format(parsed, phonenumbers.E164),
		InternationalFormat: phonenumbers.Format(parsed, phonenumbers.INTERNATIONAL),
		NationalFormat:      phonenumbers.Format(parsed, phonenumbers.NATIONAL),
		CountryCode:         phonenumbers.GetRegionCodeForNumber(parsed),
		PhoneType:           phoneTypeOf(phonenumbers.GetNumberType(parsed)),
	}, nil
}

// NormalizePhone converts a phone number to E.164, the canonical storage
// format for prospects. Invalid numbers return an error instead of a
// best-effort string; the caller decides whether to drop or keep the raw
// value.
func NormalizePhone(phone, countryCode string) (string, error) {
	if countryCode == "" {
		countryCode = defaultRegion
	}

	parsed, err := phonenumbers.Parse(phone, countryCode)
	if err != nil {
		return "", fmt.Errorf("failed to parse phone number: %w", err)
	}
	if !phonenumbers.IsValidNumber(parsed) {
		return "", fmt.Errorf("invalid phone number: %s", phone)
	}
	return phonenumbers.Format(parsed, phonenumbers.E164), nil
}

// GetPhoneType returns the line type of a phone number.
func GetPhoneType(phone, countryCode string) (PhoneType, error) {
	if countryCode == "" {
		countryCode = defaultRegion
	}
	parsed, err := phonenumbers.Parse(phone, countryCode)
	if err != nil {
		return TypeUnknown, fmt.Errorf("failed to parse phone number: %w", err)
	}
	return phoneTypeOf(phonenumbers.GetNumberType(parsed)), nil
}

func phoneTypeOf(t phonenumbers.PhoneNumberType) PhoneType {
	switch t {
	case phonenumbers.FIXED_LINE:
		return TypeFixedLine
	case phonenumbers.MOBILE:
		return TypeMobile
	case phonenumbers.FIXED_LINE_OR_MOBILE:
		return TypeFixedLineOrMobile
	case phonenumbers.TOLL_FREE:
		return TypeTollFree
	case phonenumbers.PREMIUM_RATE:
		return TypePremiumRate
	case phonenumbers.VOIP:
		return TypeVoip
	default:
		return TypeUnknown
	}
}
