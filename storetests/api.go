package storetests

import (
	"net/url"
	"strconv"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// User is the public view of an account as the API returns it.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Product is a catalog entry. The harness only reads these; creation is
// delegated to the init-data endpoint.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Image       string   `json:"image,omitempty"`
	Gender      string   `json:"gender"`
	Category    string   `json:"category"`
	Colors      []string `json:"colors"`
	Sizes       []string `json:"sizes"`
	Description string   `json:"description,omitempty"`
}

func (p Product) HasColor(color string) bool {
	return containsString(p.Colors, color)
}

func (p Product) HasSize(size string) bool {
	return containsString(p.Sizes, size)
}

func containsString(list []string, value string) bool {
	for _, s := range list {
		if s == value {
			return true
		}
	}
	return false
}

// CartItem is one cart line. Its identity for add/remove matching is the
// (ProductID, Size, Color) tuple; the cart has no separate item id on the wire.
type CartItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name,omitempty"`
	Price     float64 `json:"price,omitempty"`
	Image     string  `json:"image,omitempty"`
	Quantity  int     `json:"quantity"`
	Size      string  `json:"size"`
	Color     string  `json:"color"`
}

func (i CartItem) MatchesKey(productID, size, color string) bool {
	return i.ProductID == productID && i.Size == size && i.Color == color
}

func findCartItem(cart []CartItem, productID, size, color string) *CartItem {
	for i := range cart {
		if cart[i].MatchesKey(productID, size, color) {
			return &cart[i]
		}
	}
	return nil
}

// ProductFilter is the query the catalog endpoint accepts. Empty string
// fields and undefined price bounds are omitted from the query string,
// matching how the API treats absent parameters.
type ProductFilter struct {
	Gender   string
	Category string
	Color    string
	Size     string
	MinPrice ldvalue.OptionalInt
	MaxPrice ldvalue.OptionalInt
}

func (f ProductFilter) queryString() string {
	values := url.Values{}
	if f.Gender != "" {
		values.Set("gender", f.Gender)
	}
	if f.Category != "" {
		values.Set("category", f.Category)
	}
	if f.Color != "" {
		values.Set("color", f.Color)
	}
	if f.Size != "" {
		values.Set("size", f.Size)
	}
	if v, ok := f.MinPrice.Get(); ok {
		values.Set("minPrice", strconv.Itoa(v))
	}
	if v, ok := f.MaxPrice.Get(); ok {
		values.Set("maxPrice", strconv.Itoa(v))
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

// Matches is the semantic post-condition for a filtered listing: every
// returned product must individually satisfy the requested predicate. Price
// bounds are inclusive.
func (f ProductFilter) Matches(p Product) bool {
	if f.Gender != "" && p.Gender != f.Gender {
		return false
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Color != "" && !p.HasColor(f.Color) {
		return false
	}
	if f.Size != "" && !p.HasSize(f.Size) {
		return false
	}
	if v, ok := f.MinPrice.Get(); ok && p.Price < float64(v) {
		return false
	}
	if v, ok := f.MaxPrice.Get(); ok && p.Price > float64(v) {
		return false
	}
	return true
}

// Wire shapes. Every endpoint wraps its payload in an envelope with a success
// flag and an optional message.

type statusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type userResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	User    *User  `json:"user"`
}

type productsResponse struct {
	Success  bool      `json:"success"`
	Message  string    `json:"message"`
	Products []Product `json:"products"`
}

type cartResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Cart    []CartItem `json:"cart"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type addToCartRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

type removeFromCartRequest struct {
	ProductID string `json:"productId"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}
