package enums

import "fmt"

// Concentration is the perfume oil concentration printed on the bottle.
type Concentration string

const (
	ConcentrationEDP     Concentration = "EDP"
	ConcentrationEDT     Concentration = "EDT"
	ConcentrationParfum  Concentration = "PARFUM"
	ConcentrationExtrait Concentration = "EXTRAIT"
	ConcentrationCologne Concentration = "COLOGNE"
)

var validConcentrations = []Concentration{
	ConcentrationEDP,
	ConcentrationEDT,
	ConcentrationParfum,
	ConcentrationExtrait,
	ConcentrationCologne,
}

func (c Concentration) String() string {
	return string(c)
}

func (c Concentration) IsValid() bool {
	for _, candidate := range validConcentrations {
		if candidate == c {
			return true
		}
	}
	return false
}

func ParseConcentration(value string) (Concentration, error) {
	for _, candidate := range validConcentrations {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid concentration %q", value)
}
