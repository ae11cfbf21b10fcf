package enums

import (
	"fmt"
	"strings"
)

// Gender is the audience a fragrance is marketed to.
type Gender string

const (
	GenderMen    Gender = "MEN"
	GenderWomen  Gender = "WOMEN"
	GenderUnisex Gender = "UNISEX"
)

var validGenders = []Gender{
	GenderMen,
	GenderWomen,
	GenderUnisex,
}

// String implements fmt.Stringer.
func (g Gender) String() string {
	return string(g)
}

// IsValid reports whether the value is a known Gender.
func (g Gender) IsValid() bool {
	for _, candidate := range validGenders {
		if candidate == g {
			return true
		}
	}
	return false
}

// ParseGender accepts any casing, e.g. "men" or "MEN".
func ParseGender(value string) (Gender, error) {
	normalized := Gender(strings.ToUpper(strings.TrimSpace(value)))
	if normalized.IsValid() {
		return normalized, nil
	}
	return "", fmt.Errorf("invalid gender %q", value)
}
