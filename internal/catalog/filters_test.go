package catalog

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdmejias/perfumes-app/pkg/enums"
	pkgerrors "github.com/jdmejias/perfumes-app/pkg/errors"
)

func TestParseFilters(t *testing.T) {
	values := url.Values{
		"q":        {"  aqua "},
		"category": {"decants"},
		"brand":    {"armaf"},
		"gender":   {"men"},
		"minPrice": {"1500"},
		"maxPrice": {"abc"},
		"onSale":   {"true"},
		"sort":     {"priceDesc"},
	}

	f, err := ParseFilters(values)
	require.NoError(t, err)
	assert.Equal(t, "aqua", f.Query)
	assert.Equal(t, "decants", f.Category)
	assert.Equal(t, "armaf", f.Brand)
	require.NotNil(t, f.Gender)
	assert.Equal(t, enums.GenderMen, *f.Gender)
	require.NotNil(t, f.MinPrice)
	assert.Equal(t, 1500, *f.MinPrice)
	assert.Nil(t, f.MaxPrice, "unparsable bounds are ignored")
	assert.True(t, f.OnSale)
	assert.Equal(t, enums.CatalogSortPriceDesc, f.Sort)
}

func TestParseFiltersDefaults(t *testing.T) {
	f, err := ParseFilters(url.Values{"onSale": {"1"}, "sort": {"cheapest"}})
	require.NoError(t, err)
	assert.False(t, f.OnSale, "only the literal true enables onSale")
	assert.Equal(t, enums.CatalogSortNewest, f.Sort)
	assert.Nil(t, f.Gender)
	assert.Nil(t, f.MinPrice)
}

func TestParseFiltersRejectsUnknownGender(t *testing.T) {
	_, err := ParseFilters(url.Values{"gender": {"robot"}})
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}
