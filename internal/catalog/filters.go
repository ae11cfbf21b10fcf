package catalog

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/jdmejias/perfumes-app/pkg/enums"
	pkgerrors "github.com/jdmejias/perfumes-app/pkg/errors"
)

// ParseFilters reads listing filters from query params. Unparsable price
// bounds are dropped; an unknown gender is rejected.
func ParseFilters(values url.Values) (Filters, error) {
	filters := Filters{
		Query:    strings.TrimSpace(values.Get("q")),
		Category: strings.TrimSpace(values.Get("category")),
		Brand:    strings.TrimSpace(values.Get("brand")),
		MinPrice: parseCents(values.Get("minPrice")),
		MaxPrice: parseCents(values.Get("maxPrice")),
		OnSale:   values.Get("onSale") == "true",
		Sort:     enums.ParseCatalogSort(values.Get("sort")),
	}

	if raw := strings.TrimSpace(values.Get("gender")); raw != "" {
		gender, err := enums.ParseGender(raw)
		if err != nil {
			return Filters{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid gender").
				WithDetails(map[string]any{"gender": raw})
		}
		filters.Gender = &gender
	}

	return filters, nil
}

func parseCents(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

func (f Filters) storageQuery() ProductQuery {
	q := ProductQuery{
		Search:   f.Query,
		Category: f.Category,
		Brand:    f.Brand,
	}
	if f.Gender != nil {
		q.Gender = f.Gender.String()
	}
	return q
}
