// ABOUTME: Forward-only checkout wizard: shipping, billing, payment, confirmation
// ABOUTME: Each advance is gated by that step's form validation

package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/stephenolajire/Ronkz-Couture/schema"
)

// CheckoutStep identifies one screen of the checkout flow.
type CheckoutStep int

const (
	StepShipping CheckoutStep = iota
	StepBilling
	StepPayment
	StepConfirmation
)

func (s CheckoutStep) String() string {
	switch s {
	case StepShipping:
		return "shipping"
	case StepBilling:
		return "billing"
	case StepPayment:
		return "payment"
	case StepConfirmation:
		return "confirmation"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

var ErrCheckoutDone = errors.New("checkout: already at confirmation")

// Checkout holds the in-progress order forms and the current step.
// Advancing validates the current step's form; going back never does.
// Billing is skipped unless the customer asked for a separate billing
// address.
type Checkout struct {
	mu   sync.Mutex
	step CheckoutStep

	Shipping schema.ShippingForm
	Billing  schema.BillingForm
	Payment  schema.PaymentForm
}

// NewCheckout starts a fresh flow at the shipping step.
func NewCheckout() *Checkout {
	return &Checkout{step: StepShipping}
}

// Step returns the current step.
func (c *Checkout) Step() CheckoutStep {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.step
}

// Next validates the current step and advances past it. On validation
// failure it returns the per-field messages and stays put.
func (c *Checkout) Next() (map[string]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.step {
	case StepShipping:
		if fields := schema.ValidateShipping(c.Shipping); len(fields) > 0 {
			return fields, nil
		}
		if c.Shipping.BillingDifferent {
			c.step = StepBilling
		} else {
			c.step = StepPayment
		}
	case StepBilling:
		if fields := schema.ValidateBilling(c.Billing); len(fields) > 0 {
			return fields, nil
		}
		c.step = StepPayment
	case StepPayment:
		if fields := schema.ValidatePayment(c.Payment); len(fields) > 0 {
			return fields, nil
		}
		c.step = StepConfirmation
	case StepConfirmation:
		return nil, ErrCheckoutDone
	}
	return nil, nil
}

// Back moves one step toward shipping without validating. Confirmation
// is terminal: a placed order cannot be walked back.
func (c *Checkout) Back() {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.step {
	case StepBilling:
		c.step = StepShipping
	case StepPayment:
		if c.Shipping.BillingDifferent {
			c.step = StepBilling
		} else {
			c.step = StepShipping
		}
	}
}
