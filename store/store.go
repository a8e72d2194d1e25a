// ABOUTME: Process-wide application store: filters, auth, queries, mutations
// ABOUTME: Single-instance lifecycle with a fail-fast accessor

package store

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"

	"github.com/stephenolajire/Ronkz-Couture/api"
	"github.com/stephenolajire/Ronkz-Couture/cache"
	"github.com/stephenolajire/Ronkz-Couture/config"
	"github.com/stephenolajire/Ronkz-Couture/models"
	"github.com/stephenolajire/Ronkz-Couture/storage"
)

var (
	ErrNotInitialized     = errors.New("store: not initialized, call store.Init first")
	ErrAlreadyInitialized = errors.New("store: already initialized")
)

// Cache keys. Mutations invalidate by prefix, so a resource family
// shares one prefix regardless of its parameters.
const (
	keyCategories          = "categories"
	keyProductsPrefix      = "products"
	keyProductDetailPrefix = "product_detail:"
	keyCartPrefix          = "cart_items:"
	keyCustomPrefix        = "custom_order:"
)

func productsKey(f models.ProductFilter) string {
	return keyProductsPrefix + "?" + f.CacheKey()
}

// Store is the shared application state: the product filter, the
// authentication state, and every query and mutation the views consume.
// Exactly one instance exists per running application.
//
// Mutation → invalidation map (the only write/read coupling):
//
//	AddToCart, UpdateCartItem, DeleteCartItem   → cart_items:<cart_code>
//	SubmitCustomOrder, DeleteCustomOrder        → custom_order:<identity>
//	Login, Register, VerifyEmail, ResendOTP,
//	SendOTP, VerifyOTP, ResetPassword           → (none; auth is not cached)
type Store struct {
	cfg     *config.Config
	client  *api.Client
	cache   *cache.Cache
	storage storage.Storage
	session *session
	flights flightGroup

	filterMu sync.Mutex
	filters  models.ProductFilter

	Categories *Query[[]models.Category]

	Login             *Mutation[models.LoginRequest, models.LoginResponse]
	Register          *Mutation[models.RegisterRequest, models.RegisterResponse]
	VerifyEmail       *Mutation[models.VerifyEmailRequest, models.MessageResponse]
	ResendOTP         *Mutation[models.EmailRequest, models.MessageResponse]
	SendOTP           *Mutation[models.EmailRequest, models.MessageResponse]
	VerifyOTP         *Mutation[models.VerifyOTPRequest, models.MessageResponse]
	ResetPassword     *Mutation[models.ResetPasswordRequest, models.MessageResponse]
	AddToCart         *Mutation[models.AddToCartRequest, models.AddToCartResponse]
	UpdateCartItem    *Mutation[models.UpdateCartItemRequest, models.MessageResponse]
	DeleteCartItem    *Mutation[models.DeleteCartItemRequest, models.MessageResponse]
	SubmitCustomOrder *Mutation[models.CustomOrderSubmission, models.CustomOrderResponse]
	DeleteCustomOrder *Mutation[models.DeleteCustomOrderRequest, models.MessageResponse]
}

var (
	globalMu sync.Mutex
	global   *Store
)

// Init constructs the single Store for this process. A second call is an
// error; nested stores are not supported.
func Init(cfg *config.Config) (*Store, error) {
	globalMu.Lock()
	defer globalMu.Unlock()
	if global != nil {
		return nil, ErrAlreadyInitialized
	}

	st, err := storage.OpenFile(cfg.StatePath)
	if err != nil {
		return nil, fmt.Errorf("store: failed to open client storage: %w", err)
	}

	global = newStore(cfg, st)
	return global, nil
}

// Current returns the initialized Store, failing fast when Init has not
// run. Views use this instead of holding their own references.
func Current() (*Store, error) {
	globalMu.Lock()
	defer globalMu.Unlock()
	if global == nil {
		return nil, ErrNotInitialized
	}
	return global, nil
}

// Reset tears down the global instance. Tests only.
func Reset() {
	globalMu.Lock()
	defer globalMu.Unlock()
	if global != nil {
		global.cache.Close()
		global = nil
	}
}

// newStore wires the store against explicit dependencies.
func newStore(cfg *config.Config, st storage.Storage) *Store {
	s := &Store{
		cfg:     cfg,
		cache:   cache.New(),
		storage: st,
		session: &session{storage: st},
	}
	s.client = api.New(cfg.BaseURL, cfg.HTTPTimeout, s.session.accessToken)

	s.buildQueries()
	s.buildMutations()
	s.session.checkAuth()
	return s
}

func (s *Store) buildQueries() {
	s.Categories = &Query[[]models.Category]{
		store:      s,
		key:        func() string { return keyCategories },
		staleAfter: s.cfg.CategoriesStale,
		gcAfter:    s.cfg.CategoriesGC,
		fetch: func(ctx context.Context) ([]models.Category, error) {
			var categories []models.Category
			if err := s.client.Get(ctx, "categories", nil, &categories); err != nil {
				return nil, err
			}
			return categories, nil
		},
	}
}

// Products returns the product-list query for the filter as it stands
// right now. The key and the request params derive from one snapshot,
// so a concurrent filter update cannot cache one filter's results under
// another filter's key. A filter change lands on a different cache
// entry instead of mutating the old one.
func (s *Store) Products() *Query[models.ProductList] {
	return s.productsFor(s.Filters())
}

func (s *Store) productsFor(f models.ProductFilter) *Query[models.ProductList] {
	return &Query[models.ProductList]{
		store:      s,
		key:        func() string { return productsKey(f) },
		staleAfter: s.cfg.ProductsStale,
		gcAfter:    s.cfg.ProductsGC,
		fetch: func(ctx context.Context) (models.ProductList, error) {
			var list models.ProductList
			if err := s.client.Get(ctx, "products", f.Values(), &list); err != nil {
				return models.ProductList{}, err
			}
			return list, nil
		},
	}
}

// ProductDetail returns the cached query for one product. The query is
// disabled while id is empty, which keeps half-initialized views from
// hammering the API.
func (s *Store) ProductDetail(id string) *Query[models.Product] {
	return &Query[models.Product]{
		store:      s,
		key:        func() string { return keyProductDetailPrefix + id },
		enabled:    func() bool { return id != "" },
		staleAfter: s.cfg.ProductsStale,
		gcAfter:    s.cfg.ProductsGC,
		fetch: func(ctx context.Context) (models.Product, error) {
			var p models.Product
			if err := s.client.Get(ctx, "product/"+url.PathEscape(id), nil, &p); err != nil {
				return models.Product{}, err
			}
			return p, nil
		},
	}
}

// CartItems returns the cart query for this client's cart identity,
// creating and persisting the identity on first use.
func (s *Store) CartItems() (*Query[models.Cart], error) {
	code, err := s.CartCode()
	if err != nil {
		return nil, err
	}
	return s.cartItemsFor(code), nil
}

func (s *Store) cartItemsFor(code string) *Query[models.Cart] {
	return &Query[models.Cart]{
		store:      s,
		key:        func() string { return keyCartPrefix + code },
		enabled:    func() bool { return code != "" },
		staleAfter: s.cfg.CartStale,
		gcAfter:    s.cfg.CartGC,
		fetch: func(ctx context.Context) (models.Cart, error) {
			params := url.Values{}
			params.Set("cart_code", code)
			var cart models.Cart
			if err := s.client.Get(ctx, "cart-items/", params, &cart); err != nil {
				return models.Cart{}, err
			}
			return cart, nil
		},
	}
}

// CustomOrders returns the custom-order list query for this client's
// custom identity, creating the identity on first use.
func (s *Store) CustomOrders() (*Query[models.CustomOrderList], error) {
	code, err := s.CustomIdentity()
	if err != nil {
		return nil, err
	}
	return s.customOrdersFor(code), nil
}

func (s *Store) customOrdersFor(code string) *Query[models.CustomOrderList] {
	return &Query[models.CustomOrderList]{
		store:      s,
		key:        func() string { return keyCustomPrefix + code },
		enabled:    func() bool { return code != "" },
		staleAfter: s.cfg.CartStale,
		gcAfter:    s.cfg.CartGC,
		fetch: func(ctx context.Context) (models.CustomOrderList, error) {
			params := url.Values{}
			params.Set("identity_code", code)
			var list models.CustomOrderList
			if err := s.client.Get(ctx, "custom-order-list/", params, &list); err != nil {
				return models.CustomOrderList{}, err
			}
			return list, nil
		},
	}
}

func (s *Store) buildMutations() {
	s.Login = &Mutation[models.LoginRequest, models.LoginResponse]{
		store: s,
		name:  "login",
		run: func(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
			var resp models.LoginResponse
			if err := s.client.Post(ctx, "login/", req, &resp); err != nil {
				return models.LoginResponse{}, err
			}
			return resp, nil
		},
		onSuccess: func(_ models.LoginRequest, resp models.LoginResponse) error {
			return s.session.save(resp.AccessToken, resp.RefreshToken, resp.User)
		},
	}

	s.Register = &Mutation[models.RegisterRequest, models.RegisterResponse]{
		store: s,
		name:  "register",
		run: func(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error) {
			var resp models.RegisterResponse
			if err := s.client.Post(ctx, "register/", req, &resp); err != nil {
				return models.RegisterResponse{}, err
			}
			return resp, nil
		},
		// The email rides along to the verification screen.
		onSuccess: func(req models.RegisterRequest, _ models.RegisterResponse) error {
			return s.storage.Set(storage.KeyUserEmail, req.Email)
		},
	}

	s.VerifyEmail = &Mutation[models.VerifyEmailRequest, models.MessageResponse]{
		store: s,
		name:  "verify-email",
		run: func(ctx context.Context, req models.VerifyEmailRequest) (models.MessageResponse, error) {
			var resp models.MessageResponse
			if err := s.client.Post(ctx, "verify-email/", req, &resp); err != nil {
				return models.MessageResponse{}, err
			}
			return resp, nil
		},
		onSuccess: func(models.VerifyEmailRequest, models.MessageResponse) error {
			return s.storage.Delete(storage.KeyUserEmail)
		},
	}

	s.ResendOTP = s.emailMutation("resend-otp", "resend-otp/")
	s.SendOTP = s.emailMutation("send-otp", "send-otp/")

	s.VerifyOTP = &Mutation[models.VerifyOTPRequest, models.MessageResponse]{
		store: s,
		name:  "verify-otp",
		run: func(ctx context.Context, req models.VerifyOTPRequest) (models.MessageResponse, error) {
			var resp models.MessageResponse
			if err := s.client.Post(ctx, "verify-otp/", req, &resp); err != nil {
				return models.MessageResponse{}, err
			}
			return resp, nil
		},
	}

	s.ResetPassword = &Mutation[models.ResetPasswordRequest, models.MessageResponse]{
		store: s,
		name:  "reset-password",
		run: func(ctx context.Context, req models.ResetPasswordRequest) (models.MessageResponse, error) {
			var resp models.MessageResponse
			if err := s.client.Post(ctx, "reset-password/", req, &resp); err != nil {
				return models.MessageResponse{}, err
			}
			return resp, nil
		},
	}

	s.AddToCart = &Mutation[models.AddToCartRequest, models.AddToCartResponse]{
		store: s,
		name:  "add-to-cart",
		run: func(ctx context.Context, req models.AddToCartRequest) (models.AddToCartResponse, error) {
			var resp models.AddToCartResponse
			if err := s.client.Post(ctx, "add-to-cart/", req, &resp); err != nil {
				return models.AddToCartResponse{}, err
			}
			return resp, nil
		},
		invalidates: func(req models.AddToCartRequest) []string {
			return []string{keyCartPrefix + req.CartCode}
		},
	}

	s.UpdateCartItem = &Mutation[models.UpdateCartItemRequest, models.MessageResponse]{
		store: s,
		name:  "update-cart-item",
		run: func(ctx context.Context, req models.UpdateCartItemRequest) (models.MessageResponse, error) {
			var resp models.MessageResponse
			if err := s.client.Patch(ctx, "cart-items/", req, &resp); err != nil {
				return models.MessageResponse{}, err
			}
			return resp, nil
		},
		invalidates: func(req models.UpdateCartItemRequest) []string {
			return []string{keyCartPrefix + req.CartCode}
		},
	}

	s.DeleteCartItem = &Mutation[models.DeleteCartItemRequest, models.MessageResponse]{
		store: s,
		name:  "delete-cart-item",
		run: func(ctx context.Context, req models.DeleteCartItemRequest) (models.MessageResponse, error) {
			var resp models.MessageResponse
			if err := s.client.Delete(ctx, "cart-items/", req, &resp); err != nil {
				return models.MessageResponse{}, err
			}
			return resp, nil
		},
		invalidates: func(req models.DeleteCartItemRequest) []string {
			return []string{keyCartPrefix + req.CartCode}
		},
	}

	s.SubmitCustomOrder = &Mutation[models.CustomOrderSubmission, models.CustomOrderResponse]{
		store: s,
		name:  "submit-custom-order",
		run: func(ctx context.Context, req models.CustomOrderSubmission) (models.CustomOrderResponse, error) {
			files := map[string]models.FileUpload{}
			if req.Image.Filename != "" {
				files["image"] = req.Image
			}
			if req.Picture.Filename != "" {
				files["picture"] = req.Picture
			}
			var resp models.CustomOrderResponse
			if err := s.client.PostMultipart(ctx, "custom-orders/", req.FormFields(), files, &resp); err != nil {
				return models.CustomOrderResponse{}, err
			}
			return resp, nil
		},
		invalidates: func(req models.CustomOrderSubmission) []string {
			return []string{keyCustomPrefix + req.CustomIdentity}
		},
	}

	s.DeleteCustomOrder = &Mutation[models.DeleteCustomOrderRequest, models.MessageResponse]{
		store: s,
		name:  "delete-custom-order",
		run: func(ctx context.Context, req models.DeleteCustomOrderRequest) (models.MessageResponse, error) {
			params := url.Values{}
			params.Set("product_code", fmt.Sprintf("%d", req.ProductCode))
			params.Set("identity_code", req.IdentityCode)
			var resp models.MessageResponse
			if err := s.client.Delete(ctx, "custom-order-list/?"+params.Encode(), nil, &resp); err != nil {
				return models.MessageResponse{}, err
			}
			return resp, nil
		},
		invalidates: func(req models.DeleteCustomOrderRequest) []string {
			return []string{keyCustomPrefix + req.IdentityCode}
		},
	}
}

func (s *Store) emailMutation(name, path string) *Mutation[models.EmailRequest, models.MessageResponse] {
	return &Mutation[models.EmailRequest, models.MessageResponse]{
		store: s,
		name:  name,
		run: func(ctx context.Context, req models.EmailRequest) (models.MessageResponse, error) {
			var resp models.MessageResponse
			if err := s.client.Post(ctx, path, req, &resp); err != nil {
				return models.MessageResponse{}, err
			}
			return resp, nil
		},
	}
}

// Filters returns a copy of the current product filter.
func (s *Store) Filters() models.ProductFilter {
	s.filterMu.Lock()
	defer s.filterMu.Unlock()
	return s.filters
}

// UpdateFilters applies a partial merge to the product filter. The old
// filter's cache entry is untouched; the products query simply derives a
// new key on its next read.
func (s *Store) UpdateFilters(apply func(*models.ProductFilter)) {
	s.filterMu.Lock()
	defer s.filterMu.Unlock()
	apply(&s.filters)
}

// ClearFilters resets every filter field to "no constraint".
func (s *Store) ClearFilters() {
	s.filterMu.Lock()
	defer s.filterMu.Unlock()
	s.filters = models.ProductFilter{}
}

// CheckAuth re-derives authentication from the stored access token. Call
// after any token mutation; the store never polls.
func (s *Store) CheckAuth() bool {
	return s.session.checkAuth()
}

// IsAuthenticated reports the last CheckAuth derivation.
func (s *Store) IsAuthenticated() bool {
	return s.session.isAuthenticated()
}

// User returns the stored profile, or nil when anonymous.
func (s *Store) User() *models.User {
	return s.session.user()
}

// Logout clears the session. The anonymous cart and custom-order
// identities survive.
func (s *Store) Logout() {
	s.session.clear()
}

// PendingEmail returns the address awaiting verification, if any.
func (s *Store) PendingEmail() string {
	email, _ := s.storage.Get(storage.KeyUserEmail)
	return email
}

// CartCode returns this client's cart identity, creating it exactly once.
func (s *Store) CartCode() (string, error) {
	return storage.EnsureIdentity(s.storage, storage.KeyCartCode, "cart")
}

// CustomIdentity returns this client's custom-order identity, creating
// it exactly once.
func (s *Store) CustomIdentity() (string, error) {
	return storage.EnsureIdentity(s.storage, storage.KeyCustomIdentity, "custom")
}
