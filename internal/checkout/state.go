package checkout

import (
	"time"

	"storefront-api/internal/apperror"
)

type State string

const (
	StateCartReview          State = "cart_review"
	StateAddressEntry        State = "address_entry"
	StatePaymentSelection    State = "payment_selection"
	StatePaymentConfirmation State = "payment_confirmation"
	StateOrderCreated        State = "order_created"
)

var flowNext = map[State]State{
	StateCartReview:          StateAddressEntry,
	StateAddressEntry:        StatePaymentSelection,
	StatePaymentSelection:    StatePaymentConfirmation,
	StatePaymentConfirmation: StateOrderCreated,
}

// Flow runs one checkout: CartReview -> AddressEntry -> PaymentSelection ->
// PaymentConfirmation -> OrderCreated. A failed step keeps the current state
// and reports field errors; OrderCreated is terminal, a new checkout starts
// with a new Flow.
type Flow struct {
	state   State
	cart    Cart
	address AddressForm
	method  Method
}

func NewFlow(cart Cart) *Flow {
	return &Flow{state: StateCartReview, cart: cart}
}

func (f *Flow) State() State {
	return f.state
}

func (f *Flow) Cart() *Cart {
	return &f.cart
}

func (f *Flow) Address() AddressForm {
	return f.address
}

func (f *Flow) Method() Method {
	return f.method
}

func (f *Flow) require(s State) error {
	if f.state != s {
		return apperror.NewValidation("state", "checkout is in state "+string(f.state))
	}
	return nil
}

func (f *Flow) advance() {
	f.state = flowNext[f.state]
}

// Proceed leaves cart review; an empty cart cannot be checked out.
func (f *Flow) Proceed() error {
	if err := f.require(StateCartReview); err != nil {
		return err
	}
	if f.cart.Empty() {
		return apperror.NewValidation("cart", "cart is empty")
	}
	f.advance()
	return nil
}

func (f *Flow) SubmitAddress(a AddressForm) error {
	if err := f.require(StateAddressEntry); err != nil {
		return err
	}
	if errs := a.Validate(); errs != nil {
		return apperror.FieldErrors(errs)
	}
	f.address = a
	f.advance()
	return nil
}

// SelectMethod validates the chosen method and its sub-form. cod and
// direct-transfer need no sub-form and confirm immediately.
func (f *Flow) SelectMethod(m Method, card *CardForm, upiID string) error {
	if err := f.require(StatePaymentSelection); err != nil {
		return err
	}
	if !m.Known() {
		return apperror.NewValidation("paymentMethod", "unknown payment method")
	}
	switch {
	case m.Card():
		if card == nil {
			return apperror.NewValidation("card", "card details are required")
		}
		if errs := card.Validate(time.Now()); errs != nil {
			return apperror.FieldErrors(errs)
		}
	case m == MethodUPI:
		if errs := ValidateUPI(upiID); errs != nil {
			return apperror.FieldErrors(errs)
		}
	}
	f.method = m
	f.advance()
	return nil
}

// SelectVerifiedMethod accepts a gateway-backed method whose payment was
// already confirmed by the gateway, so no sub-form applies.
func (f *Flow) SelectVerifiedMethod(m Method) error {
	if err := f.require(StatePaymentSelection); err != nil {
		return err
	}
	if !m.Known() || !m.GatewayBacked() {
		return apperror.NewValidation("paymentMethod", "not a gateway payment method")
	}
	f.method = m
	f.advance()
	return nil
}

// Complete moves to the terminal state and clears the cart.
func (f *Flow) Complete() error {
	if err := f.require(StatePaymentConfirmation); err != nil {
		return err
	}
	f.cart.clear()
	f.advance()
	return nil
}
