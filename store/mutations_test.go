// ABOUTME: Tests for mutations: invalidation, auth side effects, pending state
// ABOUTME: Uses httptest servers that change state across requests

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stephenolajire/Ronkz-Couture/api"
	"github.com/stephenolajire/Ronkz-Couture/cache"
	"github.com/stephenolajire/Ronkz-Couture/models"
)

// cartServer serves a mutable quantity so tests can observe whether a
// read after a write reflects the write.
func cartServer(quantity *int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/add-to-cart/":
			*quantity++
			json.NewEncoder(w).Encode(models.AddToCartResponse{
				Message: "Item added", CartCode: "cart_1_aa", Quantity: *quantity,
			})
		case r.URL.Path == "/cart-items/":
			fmt.Fprintf(w, `{"cart_code":"cart_1_aa","items":[{"id":1,"quantity":%d}],"total_price":"10.00"}`, *quantity)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func TestAddToCart_InvalidatesCartQuery(t *testing.T) {
	quantity := 1
	server := httptest.NewServer(cartServer(&quantity))
	defer server.Close()

	s := newTestStore(t, server)
	ctx := context.Background()

	cart := s.cartItemsFor("cart_1_aa")
	before, err := cart.Get(ctx)
	if err != nil {
		t.Fatalf("cart Get failed: %v", err)
	}
	if before.Items[0].Quantity != 1 {
		t.Fatalf("initial quantity = %d, want 1", before.Items[0].Quantity)
	}

	_, err = s.AddToCart.Do(ctx, models.AddToCartRequest{
		ProductID: 1, CartCode: "cart_1_aa", Quantity: 1,
	})
	if err != nil {
		t.Fatalf("AddToCart failed: %v", err)
	}

	// The cache entry was still inside its freshness window; only
	// invalidation can explain a refetch here.
	after, err := cart.Get(ctx)
	if err != nil {
		t.Fatalf("cart Get after mutation failed: %v", err)
	}
	if after.Items[0].Quantity != 2 {
		t.Errorf("quantity after add = %d, want 2", after.Items[0].Quantity)
	}
}

func TestMutation_DoesNotInvalidateOtherCarts(t *testing.T) {
	quantity := 1
	server := httptest.NewServer(cartServer(&quantity))
	defer server.Close()

	s := newTestStore(t, server)
	ctx := context.Background()

	other := s.cartItemsFor("cart_2_bb")
	if _, err := other.Get(ctx); err != nil {
		t.Fatalf("other cart Get failed: %v", err)
	}

	s.AddToCart.Do(ctx, models.AddToCartRequest{ProductID: 1, CartCode: "cart_1_aa", Quantity: 1})

	if _, state := s.cache.Lookup(keyCartPrefix + "cart_2_bb"); state != cache.Fresh {
		t.Errorf("unrelated cart entry state = %v, want fresh", state)
	}
}

func TestLogin_SavesSession(t *testing.T) {
	var token string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/login/" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.LoginResponse{
			Message:      "Login successful",
			AccessToken:  token,
			RefreshToken: "refresh-1",
			User:         &models.User{ID: 3, Email: "ada@example.com"},
		})
	}))
	defer server.Close()

	s := newTestStore(t, server)
	token = signedToken(t, time.Hour)

	_, err := s.Login.Do(context.Background(), models.LoginRequest{
		Email: "ada@example.com", Password: "secret1",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if !s.IsAuthenticated() {
		t.Error("not authenticated after login")
	}
	if u := s.User(); u == nil || u.Email != "ada@example.com" {
		t.Errorf("user = %+v, want ada@example.com", u)
	}
}

func TestRegisterAndVerify_PendingEmailLifecycle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"ok"}`))
	}))
	defer server.Close()

	s := newTestStore(t, server)
	ctx := context.Background()

	_, err := s.Register.Do(ctx, models.RegisterRequest{Email: "new@example.com", Password: "Aa1@aaaa"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if got := s.PendingEmail(); got != "new@example.com" {
		t.Fatalf("pending email = %q, want new@example.com", got)
	}

	_, err = s.VerifyEmail.Do(ctx, models.VerifyEmailRequest{Email: "new@example.com", OTP: "123456"})
	if err != nil {
		t.Fatalf("VerifyEmail failed: %v", err)
	}
	if got := s.PendingEmail(); got != "" {
		t.Errorf("pending email after verification = %q, want empty", got)
	}
}

func TestDeleteCartItem_SendsItemIDAsProductID(t *testing.T) {
	// Mirror the backend's delete handler: it reads the cart-item id
	// from productId and rejects the request when that field is absent.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		if body["productId"] == nil || body["cart_code"] == nil {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"Item ID and cart code are required"}`))
			return
		}
		w.Write([]byte(`{"message":"Item removed"}`))
	}))
	defer server.Close()

	s := newTestStore(t, server)

	resp, err := s.DeleteCartItem.Do(context.Background(), models.DeleteCartItemRequest{
		ItemID: 7, CartCode: "cart_123",
	})
	if err != nil {
		t.Fatalf("DeleteCartItem failed: %v", err)
	}
	if resp.Message != "Item removed" {
		t.Errorf("message = %q, want the server's confirmation", resp.Message)
	}
}

func TestMutation_UnauthorizedClearsSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Authentication credentials were not provided."}`))
	}))
	defer server.Close()

	s := newTestStore(t, server)
	s.session.save(signedToken(t, time.Hour), "refresh", nil)

	_, err := s.AddToCart.Do(context.Background(), models.AddToCartRequest{ProductID: 1, CartCode: "c", Quantity: 1})
	if !api.IsUnauthorized(err) {
		t.Fatalf("error = %v, want 401", err)
	}
	if s.IsAuthenticated() {
		t.Error("session survived a 401 mutation")
	}
}

func TestMutation_SurfacesServerMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"Quantity must be positive"}`))
	}))
	defer server.Close()

	s := newTestStore(t, server)

	_, err := s.AddToCart.Do(context.Background(), models.AddToCartRequest{ProductID: 1, CartCode: "c"})
	if err == nil || !strings.Contains(err.Error(), "Quantity must be positive") {
		t.Errorf("error = %v, want the server's message", err)
	}
}

func TestMutation_PendingDuringRequest(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"ok"}`))
	}))
	defer server.Close()

	s := newTestStore(t, server)

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.SendOTP.Do(context.Background(), models.EmailRequest{Email: "a@b.co"})
	}()

	deadline := time.After(2 * time.Second)
	for !s.SendOTP.IsPending() {
		select {
		case <-deadline:
			t.Fatal("mutation never became pending")
		case <-time.After(time.Millisecond):
		}
	}
	close(release)
	<-done

	if s.SendOTP.IsPending() {
		t.Error("still pending after completion")
	}
}

func TestSubmitCustomOrder_SendsMultipartAndInvalidates(t *testing.T) {
	var gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodPost && r.URL.Path == "/custom-orders/" {
			gotContentType = r.Header.Get("Content-Type")
			r.ParseMultipartForm(1 << 20)
			if r.FormValue("first_name") != "Ada" {
				t.Errorf("first_name = %q, want Ada", r.FormValue("first_name"))
			}
			if _, _, err := r.FormFile("image"); err != nil {
				t.Errorf("image file missing: %v", err)
			}
			json.NewEncoder(w).Encode(models.CustomOrderResponse{
				Message: "created", IdentityCode: "custom_1_cc", OrderID: 12,
			})
			return
		}
		w.Write([]byte(`{"identity_code":"custom_1_cc","items":[]}`))
	}))
	defer server.Close()

	s := newTestStore(t, server)
	ctx := context.Background()

	orders := s.customOrdersFor("custom_1_cc")
	if _, err := orders.Get(ctx); err != nil {
		t.Fatalf("orders Get failed: %v", err)
	}

	resp, err := s.SubmitCustomOrder.Do(ctx, models.CustomOrderSubmission{
		FirstName:      "Ada",
		LastName:       "Lovelace",
		Email:          "ada@example.com",
		CustomIdentity: "custom_1_cc",
		Image:          models.FileUpload{Filename: "ref.jpg", Content: []byte("jpeg")},
		Picture:        models.FileUpload{Filename: "me.jpg", Content: []byte("jpeg")},
	})
	if err != nil {
		t.Fatalf("SubmitCustomOrder failed: %v", err)
	}
	if resp.OrderID != 12 {
		t.Errorf("order id = %d, want 12", resp.OrderID)
	}
	if !strings.HasPrefix(gotContentType, "multipart/form-data") {
		t.Errorf("content type = %q, want multipart/form-data", gotContentType)
	}

	if _, state := s.cache.Lookup(keyCustomPrefix + "custom_1_cc"); state != cache.Miss {
		t.Errorf("custom order entry state = %v, want invalidated", state)
	}
}

func TestDeleteCustomOrder_SendsIdentifiersAsQuery(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	s := newTestStore(t, server)

	_, err := s.DeleteCustomOrder.Do(context.Background(), models.DeleteCustomOrderRequest{
		ProductCode: 12, IdentityCode: "custom_1_cc",
	})
	if err != nil {
		t.Fatalf("DeleteCustomOrder failed: %v", err)
	}
	if gotQuery != "identity_code=custom_1_cc&product_code=12" {
		t.Errorf("query = %q, want both identifiers", gotQuery)
	}
}
