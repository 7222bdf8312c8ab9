package storetests

import (
	"fmt"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// doProductListing fetches the unfiltered catalog. The returned slice feeds
// the cart stage; nil means the listing check failed or came back empty.
func doProductListing(c *TestContext) []Product {
	const checkName = "Get All Products"

	resp, ok := c.getJSON(checkName, "/products")
	if !ok {
		return nil
	}
	if resp.StatusCode != 200 {
		c.failStatus(checkName, resp)
		return nil
	}

	var decoded productsResponse
	if !c.decode(checkName, resp, &decoded) {
		return nil
	}
	if !decoded.Success {
		c.fail(checkName, "Invalid response format", "Response: "+resp.TruncatedBody(200))
		return nil
	}
	if len(decoded.Products) == 0 {
		c.fail(checkName, "No products found", "Products array is empty")
		return nil
	}

	c.pass(checkName, fmt.Sprintf("Retrieved %d products", len(decoded.Products)),
		fmt.Sprintf("First product: %s", decoded.Products[0].Name))
	return decoded.Products
}

// doProductFiltering exercises each filter dimension. A 200 with unfiltered
// or partially filtered data is a failure; every returned item must satisfy
// the requested predicate.
func doProductFiltering(c *TestContext) {
	checkFilter(c, "Filter by Gender (men)",
		ProductFilter{Gender: "men"},
		func(n int) string { return fmt.Sprintf("Found %d men's products", n) })

	checkFilter(c, "Filter by Category (shirts)",
		ProductFilter{Category: "shirts"},
		func(n int) string { return fmt.Sprintf("Found %d shirt products", n) })

	checkFilter(c, "Filter by Color & Size",
		ProductFilter{Color: "blue", Size: "M"},
		func(n int) string { return fmt.Sprintf("Found %d blue M-sized products", n) })

	checkFilter(c, "Filter by Price Range",
		ProductFilter{MinPrice: ldvalue.NewOptionalInt(20), MaxPrice: ldvalue.NewOptionalInt(100)},
		func(n int) string { return fmt.Sprintf("Found %d products in $20-$100 range", n) })
}

func checkFilter(c *TestContext, checkName string, filter ProductFilter, passMessage func(matched int) string) {
	resp, ok := c.getJSON(checkName, "/products"+filter.queryString())
	if !ok {
		return
	}
	if resp.StatusCode != 200 {
		c.failStatus(checkName, resp)
		return
	}

	var decoded productsResponse
	if !c.decode(checkName, resp, &decoded) {
		return
	}
	if !decoded.Success {
		c.fail(checkName, "API returned success=false")
		return
	}

	for _, p := range decoded.Products {
		if !filter.Matches(p) {
			c.fail(checkName, "Filter not working correctly",
				fmt.Sprintf("Product %q does not satisfy the requested filter", p.Name))
			return
		}
	}
	c.pass(checkName, passMessage(len(decoded.Products)))
}
