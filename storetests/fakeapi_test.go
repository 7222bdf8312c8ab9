package storetests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// fakeStorefront is an in-memory stand-in for the real deployment, just
// complete enough to drive every stage of the suite. The fault-injection
// flags let tests exercise the harness's failure and gating paths.
type fakeStorefront struct {
	mu       sync.Mutex
	users    map[string]fakeUser // keyed by email
	sessions map[string]string   // token -> email
	carts    map[string][]CartItem
	products []Product

	rejectRegistration  bool // every registration answers 400
	rejectLogin         bool // every login answers 401
	emptyCatalog        bool // init-data seeds nothing
	ignoreFilters       bool // filtered listings return the whole catalog
	ambiguousRejection  bool // 401 bodies omit the success field
	keepSessionOnLogout bool // logout responds success but leaves the session valid
}

type fakeUser struct {
	ID       string
	Name     string
	Email    string
	Password string
}

func newFakeStorefront() *fakeStorefront {
	return &fakeStorefront{
		users:    map[string]fakeUser{},
		sessions: map[string]string{},
		carts:    map[string][]CartItem{},
	}
}

func (f *fakeStorefront) start() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/init-data", f.handleInitData)
	mux.HandleFunc("/api/auth/register", f.handleRegister)
	mux.HandleFunc("/api/auth/login", f.handleLogin)
	mux.HandleFunc("/api/auth/logout", f.handleLogout)
	mux.HandleFunc("/api/auth/me", f.handleMe)
	mux.HandleFunc("/api/products", f.handleProducts)
	mux.HandleFunc("/api/cart", f.handleCart)
	mux.HandleFunc("/api/cart/add", f.handleCartAdd)
	mux.HandleFunc("/api/cart/remove", f.handleCartRemove)
	return httptest.NewServer(mux)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (f *fakeStorefront) unauthorized(w http.ResponseWriter) {
	if f.ambiguousRejection {
		writeJSON(w, 401, map[string]interface{}{"message": "Not authenticated"})
		return
	}
	writeJSON(w, 401, map[string]interface{}{"success": false, "message": "Not authenticated"})
}

func (f *fakeStorefront) currentUser(r *http.Request) *fakeUser {
	cookie, err := r.Cookie("token")
	if err != nil {
		return nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	email, ok := f.sessions[cookie.Value]
	if !ok {
		return nil
	}
	u := f.users[email]
	return &u
}

func sampleProducts() []Product {
	return []Product{
		{
			ID: uuid.NewString(), Name: "Classic White T-Shirt", Price: 29.99,
			Gender: "men", Category: "shirts",
			Colors: []string{"white", "black", "navy"}, Sizes: []string{"S", "M", "L", "XL"},
		},
		{
			ID: uuid.NewString(), Name: "Blue Checkered Dress Shirt", Price: 59.99,
			Gender: "men", Category: "shirts",
			Colors: []string{"blue", "white"}, Sizes: []string{"S", "M", "L", "XL", "XXL"},
		},
		{
			ID: uuid.NewString(), Name: "Designer Jeans", Price: 79.99,
			Gender: "women", Category: "jeans",
			Colors: []string{"blue", "black", "gray"}, Sizes: []string{"26", "28", "30", "32"},
		},
		{
			ID: uuid.NewString(), Name: "Premium Gold Watch", Price: 199.99,
			Gender: "unisex", Category: "accessories",
			Colors: []string{"gold", "silver"}, Sizes: []string{"One Size"},
		},
	}
}

func (f *fakeStorefront) handleInitData(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.emptyCatalog {
		writeJSON(w, 200, map[string]interface{}{"success": true, "message": "Sample data initialized"})
		return
	}
	if len(f.products) > 0 {
		writeJSON(w, 200, map[string]interface{}{"success": true, "message": "Data already initialized"})
		return
	}
	f.products = sampleProducts()
	writeJSON(w, 200, map[string]interface{}{"success": true, "message": "Sample data initialized"})
}

func (f *fakeStorefront) handleRegister(w http.ResponseWriter, r *http.Request) {
	if f.rejectRegistration {
		writeJSON(w, 400, map[string]interface{}{"success": false, "message": "User already exists"})
		return
	}
	var req registerRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.users[req.Email]; exists {
		writeJSON(w, 400, map[string]interface{}{"success": false, "message": "User already exists"})
		return
	}
	u := fakeUser{ID: uuid.NewString(), Name: req.Name, Email: req.Email, Password: req.Password}
	f.users[req.Email] = u

	token := uuid.NewString()
	f.sessions[token] = req.Email
	http.SetCookie(w, &http.Cookie{Name: "token", Value: token, Path: "/"})
	writeJSON(w, 200, map[string]interface{}{
		"success": true,
		"user":    User{ID: u.ID, Name: u.Name, Email: u.Email},
	})
}

func (f *fakeStorefront) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[req.Email]
	if f.rejectLogin || !ok || u.Password != req.Password {
		writeJSON(w, 401, map[string]interface{}{"success": false, "message": "Invalid credentials"})
		return
	}
	token := uuid.NewString()
	f.sessions[token] = req.Email
	http.SetCookie(w, &http.Cookie{Name: "token", Value: token, Path: "/"})
	writeJSON(w, 200, map[string]interface{}{
		"success": true,
		"user":    User{ID: u.ID, Name: u.Name, Email: u.Email},
	})
}

func (f *fakeStorefront) handleLogout(w http.ResponseWriter, r *http.Request) {
	if !f.keepSessionOnLogout {
		if cookie, err := r.Cookie("token"); err == nil {
			f.mu.Lock()
			delete(f.sessions, cookie.Value)
			f.mu.Unlock()
		}
		http.SetCookie(w, &http.Cookie{Name: "token", Value: "", Path: "/", MaxAge: -1})
	}
	writeJSON(w, 200, map[string]interface{}{"success": true, "message": "Logged out"})
}

func (f *fakeStorefront) handleMe(w http.ResponseWriter, r *http.Request) {
	u := f.currentUser(r)
	if u == nil {
		f.unauthorized(w)
		return
	}
	writeJSON(w, 200, map[string]interface{}{
		"success": true,
		"user":    User{ID: u.ID, Name: u.Name, Email: u.Email},
	})
}

func (f *fakeStorefront) handleProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := ProductFilter{
		Gender:   q.Get("gender"),
		Category: q.Get("category"),
		Color:    q.Get("color"),
		Size:     q.Get("size"),
	}
	if v, err := strconv.Atoi(q.Get("minPrice")); err == nil {
		filter.MinPrice = ldvalue.NewOptionalInt(v)
	}
	if v, err := strconv.Atoi(q.Get("maxPrice")); err == nil {
		filter.MaxPrice = ldvalue.NewOptionalInt(v)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	matched := []Product{}
	for _, p := range f.products {
		if f.ignoreFilters || filter.Matches(p) {
			matched = append(matched, p)
		}
	}
	writeJSON(w, 200, map[string]interface{}{"success": true, "products": matched})
}

func (f *fakeStorefront) handleCart(w http.ResponseWriter, r *http.Request) {
	u := f.currentUser(r)
	if u == nil {
		f.unauthorized(w)
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	cart := f.carts[u.ID]
	if cart == nil {
		cart = []CartItem{}
	}
	writeJSON(w, 200, map[string]interface{}{"success": true, "cart": cart})
}

func (f *fakeStorefront) handleCartAdd(w http.ResponseWriter, r *http.Request) {
	u := f.currentUser(r)
	if u == nil {
		f.unauthorized(w)
		return
	}
	var req addToCartRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	f.mu.Lock()
	defer f.mu.Unlock()
	var product *Product
	for i := range f.products {
		if f.products[i].ID == req.ProductID {
			product = &f.products[i]
			break
		}
	}
	if product == nil {
		writeJSON(w, 404, map[string]interface{}{"success": false, "message": "Product not found"})
		return
	}

	cart := f.carts[u.ID]
	if existing := findCartItem(cart, req.ProductID, req.Size, req.Color); existing != nil {
		existing.Quantity += req.Quantity
	} else {
		cart = append(cart, CartItem{
			ProductID: req.ProductID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  req.Quantity,
			Size:      req.Size,
			Color:     req.Color,
		})
	}
	f.carts[u.ID] = cart
	writeJSON(w, 200, map[string]interface{}{"success": true, "cart": cart})
}

func (f *fakeStorefront) handleCartRemove(w http.ResponseWriter, r *http.Request) {
	u := f.currentUser(r)
	if u == nil {
		f.unauthorized(w)
		return
	}
	var req removeFromCartRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	f.mu.Lock()
	defer f.mu.Unlock()
	kept := []CartItem{}
	for _, item := range f.carts[u.ID] {
		if !item.MatchesKey(req.ProductID, req.Size, req.Color) {
			kept = append(kept, item)
		}
	}
	f.carts[u.ID] = kept
	writeJSON(w, 200, map[string]interface{}{"success": true, "cart": kept})
}
