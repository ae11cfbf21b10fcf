package enums

// CatalogSort orders a product listing.
type CatalogSort string

const (
	CatalogSortNewest    CatalogSort = "newest"
	CatalogSortPriceAsc  CatalogSort = "priceAsc"
	CatalogSortPriceDesc CatalogSort = "priceDesc"
)

var validCatalogSorts = []CatalogSort{
	CatalogSortNewest,
	CatalogSortPriceAsc,
	CatalogSortPriceDesc,
}

func (s CatalogSort) String() string {
	return string(s)
}

func (s CatalogSort) IsValid() bool {
	for _, candidate := range validCatalogSorts {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseCatalogSort never fails: unknown or empty values mean newest first.
func ParseCatalogSort(value string) CatalogSort {
	if sort := CatalogSort(value); sort.IsValid() {
		return sort
	}
	return CatalogSortNewest
}
