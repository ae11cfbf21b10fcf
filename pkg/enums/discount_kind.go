package enums

import "fmt"

// DiscountKind selects how a discount value is applied to a price.
type DiscountKind string

const (
	// DiscountKindPercent takes value percent off, clamped to [0, 100].
	DiscountKindPercent DiscountKind = "PERCENT"
	// DiscountKindFixed subtracts value cents, flooring at zero.
	DiscountKindFixed DiscountKind = "FIXED"
)

var validDiscountKinds = []DiscountKind{
	DiscountKindPercent,
	DiscountKindFixed,
}

func (k DiscountKind) String() string {
	return string(k)
}

func (k DiscountKind) IsValid() bool {
	for _, candidate := range validDiscountKinds {
		if candidate == k {
			return true
		}
	}
	return false
}

func ParseDiscountKind(value string) (DiscountKind, error) {
	for _, candidate := range validDiscountKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid discount kind %q", value)
}
