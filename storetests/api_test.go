package storetests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

var testProduct = Product{
	ID:       "p1",
	Name:     "Blue Checkered Dress Shirt",
	Price:    59.99,
	Gender:   "men",
	Category: "shirts",
	Colors:   []string{"blue", "white"},
	Sizes:    []string{"S", "M", "L"},
}

func TestProductFilterMatchesGenderAndCategory(t *testing.T) {
	assert.True(t, ProductFilter{Gender: "men"}.Matches(testProduct))
	assert.False(t, ProductFilter{Gender: "women"}.Matches(testProduct))
	assert.True(t, ProductFilter{Category: "shirts"}.Matches(testProduct))
	assert.False(t, ProductFilter{Category: "jeans"}.Matches(testProduct))
}

func TestProductFilterColorAndSizeRequireBothMemberships(t *testing.T) {
	assert.True(t, ProductFilter{Color: "blue", Size: "M"}.Matches(testProduct))
	assert.False(t, ProductFilter{Color: "red", Size: "M"}.Matches(testProduct))
	assert.False(t, ProductFilter{Color: "blue", Size: "XXL"}.Matches(testProduct))
}

func TestProductFilterPriceBoundsAreInclusive(t *testing.T) {
	exact := Product{Price: 20}
	assert.True(t, ProductFilter{MinPrice: ldvalue.NewOptionalInt(20)}.Matches(exact))
	assert.True(t, ProductFilter{MaxPrice: ldvalue.NewOptionalInt(20)}.Matches(exact))
	assert.False(t, ProductFilter{MinPrice: ldvalue.NewOptionalInt(21)}.Matches(exact))
	assert.False(t, ProductFilter{MaxPrice: ldvalue.NewOptionalInt(19)}.Matches(exact))

	assert.True(t, ProductFilter{
		MinPrice: ldvalue.NewOptionalInt(20),
		MaxPrice: ldvalue.NewOptionalInt(100),
	}.Matches(testProduct))
}

func TestProductFilterEmptyMatchesEverything(t *testing.T) {
	assert.True(t, ProductFilter{}.Matches(testProduct))
	assert.True(t, ProductFilter{}.Matches(Product{}))
}

func TestProductFilterQueryString(t *testing.T) {
	assert.Equal(t, "", ProductFilter{}.queryString())
	assert.Equal(t, "?gender=men", ProductFilter{Gender: "men"}.queryString())
	assert.Equal(t, "?color=blue&size=M", ProductFilter{Color: "blue", Size: "M"}.queryString())
	assert.Equal(t, "?maxPrice=100&minPrice=20", ProductFilter{
		MinPrice: ldvalue.NewOptionalInt(20),
		MaxPrice: ldvalue.NewOptionalInt(100),
	}.queryString())
}

func TestCartItemKeyMatching(t *testing.T) {
	item := CartItem{ProductID: "p1", Quantity: 2, Size: "M", Color: "blue"}

	assert.True(t, item.MatchesKey("p1", "M", "blue"))
	assert.False(t, item.MatchesKey("p1", "L", "blue"))
	assert.False(t, item.MatchesKey("p1", "M", "white"))
	assert.False(t, item.MatchesKey("p2", "M", "blue"))
}

func TestFindCartItem(t *testing.T) {
	cart := []CartItem{
		{ProductID: "p1", Size: "M", Color: "blue", Quantity: 2},
		{ProductID: "p1", Size: "L", Color: "blue", Quantity: 1},
	}

	found := findCartItem(cart, "p1", "L", "blue")
	if assert.NotNil(t, found) {
		assert.Equal(t, 1, found.Quantity)
	}
	assert.Nil(t, findCartItem(cart, "p2", "M", "blue"))
}
