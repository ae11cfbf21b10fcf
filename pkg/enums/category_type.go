package enums

import "fmt"

// CategoryType tags a category with the storefront section it feeds.
type CategoryType string

const (
	CategoryTypeMen     CategoryType = "MEN"
	CategoryTypeWomen   CategoryType = "WOMEN"
	CategoryTypeDecants CategoryType = "DECANTS"
	CategoryTypeOffers  CategoryType = "OFFERS"
	CategoryTypeNew     CategoryType = "NEW"
)

var validCategoryTypes = []CategoryType{
	CategoryTypeMen,
	CategoryTypeWomen,
	CategoryTypeDecants,
	CategoryTypeOffers,
	CategoryTypeNew,
}

func (c CategoryType) String() string {
	return string(c)
}

func (c CategoryType) IsValid() bool {
	for _, candidate := range validCategoryTypes {
		if candidate == c {
			return true
		}
	}
	return false
}

func ParseCategoryType(value string) (CategoryType, error) {
	for _, candidate := range validCategoryTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid category type %q", value)
}
