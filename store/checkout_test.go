// ABOUTME: Tests for the checkout wizard's step gating and routing
// ABOUTME: Covers billing skip, validation blocks, and the terminal step

package store

import (
	"testing"

	"github.com/stephenolajire/Ronkz-Couture/schema"
)

func validShipping() schema.ShippingForm {
	return schema.ShippingForm{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Phone:     "08012345678",
		Address:   "1 Analytical Way",
		City:      "Lagos",
		State:     "Lagos",
		ZipCode:   "100001",
	}
}

func TestCheckout_InvalidShippingStaysPut(t *testing.T) {
	c := NewCheckout()
	c.Shipping.FirstName = "Ada" // everything else missing

	fields, err := c.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if len(fields) == 0 {
		t.Fatal("expected validation messages for an incomplete form")
	}
	if c.Step() != StepShipping {
		t.Errorf("step = %v, want shipping", c.Step())
	}
}

func TestCheckout_SkipsBillingByDefault(t *testing.T) {
	c := NewCheckout()
	c.Shipping = validShipping()

	if fields, err := c.Next(); err != nil || len(fields) > 0 {
		t.Fatalf("Next returned (%v, %v), want clean advance", fields, err)
	}
	if c.Step() != StepPayment {
		t.Errorf("step = %v, want payment (billing skipped)", c.Step())
	}
}

func TestCheckout_BillingStepWhenRequested(t *testing.T) {
	c := NewCheckout()
	c.Shipping = validShipping()
	c.Shipping.BillingDifferent = true

	c.Next()
	if c.Step() != StepBilling {
		t.Fatalf("step = %v, want billing", c.Step())
	}

	// An empty billing form blocks.
	if fields, _ := c.Next(); len(fields) == 0 {
		t.Error("empty billing form advanced")
	}

	c.Billing = schema.BillingForm{
		FirstName: "Ada", LastName: "Lovelace",
		Address: "2 Invoice Rd", City: "Lagos", State: "Lagos",
	}
	if fields, err := c.Next(); err != nil || len(fields) > 0 {
		t.Fatalf("Next returned (%v, %v), want clean advance", fields, err)
	}
	if c.Step() != StepPayment {
		t.Errorf("step = %v, want payment", c.Step())
	}
}

func TestCheckout_PaymentRequiresCardDetailsForCard(t *testing.T) {
	c := NewCheckout()
	c.Shipping = validShipping()
	c.Next()

	c.Payment.Method = "card"
	if fields, _ := c.Next(); len(fields) == 0 {
		t.Fatal("card payment without card details advanced")
	}

	c.Payment.CardNumber = "4242424242424242"
	c.Payment.Expiry = "12/27"
	c.Payment.CVV = "123"
	if fields, err := c.Next(); err != nil || len(fields) > 0 {
		t.Fatalf("Next returned (%v, %v), want clean advance", fields, err)
	}
	if c.Step() != StepConfirmation {
		t.Errorf("step = %v, want confirmation", c.Step())
	}
}

func TestCheckout_TransferNeedsNoCardDetails(t *testing.T) {
	c := NewCheckout()
	c.Shipping = validShipping()
	c.Next()

	c.Payment.Method = "transfer"
	if fields, err := c.Next(); err != nil || len(fields) > 0 {
		t.Fatalf("Next returned (%v, %v), want clean advance", fields, err)
	}
	if c.Step() != StepConfirmation {
		t.Errorf("step = %v, want confirmation", c.Step())
	}
}

func TestCheckout_BackRetracesTheTakenPath(t *testing.T) {
	c := NewCheckout()
	c.Shipping = validShipping()
	c.Next() // -> payment

	c.Back()
	if c.Step() != StepShipping {
		t.Errorf("step = %v, want shipping (billing was skipped)", c.Step())
	}

	c.Shipping.BillingDifferent = true
	c.Next() // -> billing
	c.Billing = schema.BillingForm{
		FirstName: "Ada", LastName: "Lovelace",
		Address: "2 Invoice Rd", City: "Lagos", State: "Lagos",
	}
	c.Next() // -> payment

	c.Back()
	if c.Step() != StepBilling {
		t.Errorf("step = %v, want billing", c.Step())
	}
}

func TestCheckout_ConfirmationIsTerminal(t *testing.T) {
	c := NewCheckout()
	c.Shipping = validShipping()
	c.Next()
	c.Payment.Method = "transfer"
	c.Next()

	if _, err := c.Next(); err != ErrCheckoutDone {
		t.Errorf("Next at confirmation = %v, want ErrCheckoutDone", err)
	}
	c.Back()
	if c.Step() != StepConfirmation {
		t.Errorf("Back left confirmation: step = %v", c.Step())
	}
}
