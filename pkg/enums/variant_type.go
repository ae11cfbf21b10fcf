package enums

import "fmt"

// VariantType distinguishes decants from full bottles and testers.
type VariantType string

const (
	VariantTypeDecant     VariantType = "DECANT"
	VariantTypeFullBottle VariantType = "FULL_BOTTLE"
	VariantTypeTester     VariantType = "TESTER"
)

var validVariantTypes = []VariantType{
	VariantTypeDecant,
	VariantTypeFullBottle,
	VariantTypeTester,
}

var variantTypeLabels = map[VariantType]string{
	VariantTypeDecant:     "Decant",
	VariantTypeFullBottle: "Frasco",
	VariantTypeTester:     "Tester",
}

// String implements fmt.Stringer.
func (v VariantType) String() string {
	return string(v)
}

// Label is the storefront name shown next to the size, e.g. "Frasco".
func (v VariantType) Label() string {
	if label, ok := variantTypeLabels[v]; ok {
		return label
	}
	return string(v)
}

// IsValid reports whether the value is a known VariantType.
func (v VariantType) IsValid() bool {
	for _, candidate := range validVariantTypes {
		if candidate == v {
			return true
		}
	}
	return false
}

// ParseVariantType converts raw input into a VariantType.
func ParseVariantType(value string) (VariantType, error) {
	for _, candidate := range validVariantTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid variant type %q", value)
}
