package storetests

import "fmt"

const cartTestQuantity = 2
const cartTestSize = "M"

// doCartOperations runs the cart checks against the first listed product.
// It needs a concrete product id, so an empty product list short-circuits
// the whole stage with a single failing record.
func doCartOperations(c *TestContext, products []Product) {
	if len(products) == 0 {
		c.fail("Cart Operations", "No products available for cart testing")
		return
	}

	if !checkEmptyCart(c) {
		return
	}

	product := products[0]
	color := "blue"
	if len(product.Colors) > 0 {
		color = product.Colors[0]
	}

	checkAddToCart(c, product, color)
	checkCartWithItems(c)
	checkRemoveFromCart(c, product, color)
}

func checkEmptyCart(c *TestContext) bool {
	const checkName = "Get Empty Cart"

	resp, ok := c.getJSON(checkName, "/cart")
	if !ok {
		return false
	}
	switch {
	case resp.StatusCode == 401:
		c.fail(checkName, "Authentication required")
		return false
	case resp.StatusCode != 200:
		c.failStatus(checkName, resp)
		return false
	}

	var decoded cartResponse
	if !c.decode(checkName, resp, &decoded) {
		return false
	}
	if !decoded.Success {
		c.fail(checkName, "API returned success=false")
		return false
	}

	c.pass(checkName, fmt.Sprintf("Cart retrieved successfully with %d items", len(decoded.Cart)))
	return true
}

// checkAddToCart verifies presence-after-add: an item matching the
// (productId, size, color) tuple must appear in the returned cart with the
// submitted quantity.
func checkAddToCart(c *TestContext, product Product, color string) {
	const checkName = "Add Item to Cart"

	resp, ok := c.postJSON(checkName, "/cart/add", addToCartRequest{
		ProductID: product.ID,
		Quantity:  cartTestQuantity,
		Size:      cartTestSize,
		Color:     color,
	})
	if !ok {
		return
	}
	switch {
	case resp.StatusCode == 401:
		c.fail(checkName, "Authentication required")
		return
	case resp.StatusCode != 200:
		c.failStatus(checkName, resp)
		return
	}

	var decoded cartResponse
	if !c.decode(checkName, resp, &decoded) {
		return
	}
	if !decoded.Success {
		c.fail(checkName, "API returned success=false", "Response: "+resp.TruncatedBody(200))
		return
	}

	added := findCartItem(decoded.Cart, product.ID, cartTestSize, color)
	if added == nil {
		c.fail(checkName, "Item not found in cart after adding")
		return
	}
	if added.Quantity != cartTestQuantity {
		c.fail(checkName, "Item added with wrong quantity",
			fmt.Sprintf("Expected %d, got %d", cartTestQuantity, added.Quantity))
		return
	}

	c.pass(checkName, fmt.Sprintf("Added %s to cart", product.Name),
		fmt.Sprintf("Quantity: %d", added.Quantity))
}

func checkCartWithItems(c *TestContext) {
	const checkName = "Get Cart with Items"

	resp, ok := c.getJSON(checkName, "/cart")
	if !ok {
		return
	}
	if resp.StatusCode != 200 {
		c.failStatus(checkName, resp)
		return
	}

	var decoded cartResponse
	if !c.decode(checkName, resp, &decoded) {
		return
	}
	if !decoded.Success {
		c.fail(checkName, "API returned success=false")
		return
	}
	if len(decoded.Cart) == 0 {
		c.fail(checkName, "Cart is empty after adding items")
		return
	}

	c.pass(checkName, fmt.Sprintf("Cart contains %d items", len(decoded.Cart)))
}

// checkRemoveFromCart verifies absence-after-remove using the same identity
// tuple the add used; removal never carries a separate cart-item id.
func checkRemoveFromCart(c *TestContext, product Product, color string) {
	const checkName = "Remove Item from Cart"

	resp, ok := c.postJSON(checkName, "/cart/remove", removeFromCartRequest{
		ProductID: product.ID,
		Size:      cartTestSize,
		Color:     color,
	})
	if !ok {
		return
	}
	if resp.StatusCode != 200 {
		c.failStatus(checkName, resp)
		return
	}

	var decoded cartResponse
	if !c.decode(checkName, resp, &decoded) {
		return
	}
	if !decoded.Success {
		c.fail(checkName, "API returned success=false")
		return
	}

	if findCartItem(decoded.Cart, product.ID, cartTestSize, color) != nil {
		c.fail(checkName, "Item still in cart after removal")
		return
	}
	c.pass(checkName, fmt.Sprintf("Removed %s from cart", product.Name))
}
