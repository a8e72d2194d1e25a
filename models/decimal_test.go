package models

import (
	"encoding/json"
	"testing"
)

func TestDecimal_UnmarshalStringAndNumber(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"drf string", `"45000.00"`, "45000.00"},
		{"bare number", `45000.5`, "45000.5"},
		{"integer", `120`, "120"},
		{"null", `null`, "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Decimal
			if err := json.Unmarshal([]byte(tt.in), &d); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d.String() != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, d.String())
			}
		})
	}
}

func TestDecimal_UnmarshalRejectsNonNumeric(t *testing.T) {
	var d Decimal
	if err := json.Unmarshal([]byte(`{"amount":1}`), &d); err == nil {
		t.Error("Expected error for object payload, got nil")
	}
}

func TestDecimal_Float(t *testing.T) {
	d := Decimal("45000.00")
	v, err := d.Float()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 45000.0 {
		t.Errorf("Expected 45000.0, got %v", v)
	}

	var empty Decimal
	v, err = empty.Float()
	if err != nil || v != 0 {
		t.Errorf("Expected empty decimal to parse as 0, got %v, %v", v, err)
	}
}

func TestCartDecodesServerPayload(t *testing.T) {
	payload := `{
		"cart_code": "cart_1700000000000_ab12cd34",
		"items": [
			{"id": 7, "product": {"id": 3, "name": "Silk Gown", "price": "45000.00"}, "quantity": 2, "subtotal": "90000.00"}
		],
		"total_price": 90000.00
	}`

	var cart Cart
	if err := json.Unmarshal([]byte(payload), &cart); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cart.CartCode != "cart_1700000000000_ab12cd34" {
		t.Errorf("Unexpected cart code %q", cart.CartCode)
	}
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 2 {
		t.Fatalf("Unexpected items %+v", cart.Items)
	}
	if cart.Items[0].Product.Price.String() != "45000.00" {
		t.Errorf("Unexpected price %q", cart.Items[0].Product.Price)
	}
	if cart.TotalPrice.String() != "90000.00" {
		t.Errorf("Unexpected total %q", cart.TotalPrice)
	}
}
