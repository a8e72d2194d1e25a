// ABOUTME: Cart view models and cart mutation payloads
// ABOUTME: Carts are correlated by a client-generated cart_code identity

package models

// CartItem is a server-owned cart line. The client never patches these
// locally; every change goes through a mutation and a refetch.
type CartItem struct {
	ID       int     `json:"id"`
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Subtotal Decimal `json:"subtotal"`
}

// Cart is the GET cart-items/ response.
type Cart struct {
	CartCode   string     `json:"cart_code"`
	Items      []CartItem `json:"items"`
	TotalPrice Decimal    `json:"total_price"`
}

// AddToCartRequest is the POST add-to-cart/ payload.
type AddToCartRequest struct {
	ProductID int    `json:"productId"`
	CartCode  string `json:"cart_code"`
	Quantity  int    `json:"quantity"`
}

// AddToCartResponse is the POST add-to-cart/ result.
type AddToCartResponse struct {
	Message  string `json:"message"`
	CartCode string `json:"cart_code"`
	ItemID   int    `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// UpdateCartItemRequest is the PATCH cart-items/ payload.
type UpdateCartItemRequest struct {
	ItemID   int    `json:"itemId"`
	CartCode string `json:"cart_code"`
	Quantity int    `json:"quantity"`
}

// DeleteCartItemRequest is the DELETE cart-items/ payload. The cart API
// reads the JSON body of DELETE requests, and reads the cart-item id
// from the productId field (unlike PATCH, which uses itemId).
type DeleteCartItemRequest struct {
	ItemID   int    `json:"productId"`
	CartCode string `json:"cart_code"`
}

// MessageResponse covers write endpoints that return only a message.
type MessageResponse struct {
	Message string `json:"message"`
}
