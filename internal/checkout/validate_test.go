package checkout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAddress() AddressForm {
	return AddressForm{
		FullName: "Asha Sharma",
		Phone:    "9876543210",
		Email:    "asha@example.com",
		Address:  "12 MI Road",
		Landmark: "Near Hawa Mahal",
		City:     "Jaipur",
		State:    "Rajasthan",
		Pincode:  "302001",
	}
}

func TestAddressFormValid(t *testing.T) {
	assert.Nil(t, validAddress().Validate())
}

func TestAddressFormFieldErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AddressForm)
		field  string
	}{
		{"nine digit phone", func(a *AddressForm) { a.Phone = "987654321" }, "phone"},
		{"five digit pincode", func(a *AddressForm) { a.Pincode = "30200" }, "pincode"},
		{"malformed email", func(a *AddressForm) { a.Email = "asha@nowhere" }, "email"},
		{"empty name", func(a *AddressForm) { a.FullName = "  " }, "fullName"},
		{"empty street", func(a *AddressForm) { a.Address = "" }, "address"},
		{"empty city", func(a *AddressForm) { a.City = "" }, "city"},
		{"empty state", func(a *AddressForm) { a.State = "" }, "state"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validAddress()
			tt.mutate(&form)
			errs := form.Validate()
			require.Len(t, errs, 1)
			assert.Contains(t, errs, tt.field)
		})
	}
}

func TestAddressFormPhoneIgnoresFormatting(t *testing.T) {
	form := validAddress()
	form.Phone = "98765 43210"
	assert.Nil(t, form.Validate())
}

func validCard() CardForm {
	return CardForm{
		Number:      "4111111111111111",
		HolderName:  "Asha Sharma",
		ExpiryMonth: "12",
		ExpiryYear:  "39",
		CVV:         "123",
	}
}

func TestCardFormValid(t *testing.T) {
	assert.Nil(t, validCard().Validate(time.Now()))
}

func TestCardFormRejectsFifteenDigitNumber(t *testing.T) {
	card := validCard()
	card.Number = "411111111111111"
	errs := card.Validate(time.Now())
	require.NotNil(t, errs)
	assert.Contains(t, errs, "cardNumber")
}

func TestCardFormAcceptsSpacedNumber(t *testing.T) {
	card := validCard()
	card.Number = "4111 1111 1111 1111"
	assert.Nil(t, card.Validate(time.Now()))
}

func TestCardFormExpired(t *testing.T) {
	card := validCard()
	card.ExpiryMonth = "01"
	card.ExpiryYear = "20"
	errs := card.Validate(time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC))
	require.NotNil(t, errs)
	assert.Contains(t, errs, "expiryYear")
}

func TestCardFormCVV(t *testing.T) {
	card := validCard()
	card.CVV = "12"
	assert.Contains(t, card.Validate(time.Now()), "cvv")

	card.CVV = "1234"
	assert.Nil(t, card.Validate(time.Now()))
}

func TestCardFormLast4(t *testing.T) {
	assert.Equal(t, "1111", validCard().Last4())
}

func TestValidateUPI(t *testing.T) {
	assert.Nil(t, ValidateUPI("asha@okhdfcbank"))
	assert.Contains(t, ValidateUPI("not a handle"), "upiId")
	assert.Contains(t, ValidateUPI("asha@"), "upiId")
}

func TestMethodKnown(t *testing.T) {
	for _, m := range []Method{MethodCreditCard, MethodDebitCard, MethodUPI,
		MethodNetBanking, MethodWallet, MethodDirectTransfer, MethodCOD} {
		assert.True(t, m.Known(), string(m))
	}
	assert.False(t, Method("bitcoin").Known())
}

func TestMintTransactionID(t *testing.T) {
	ts := time.UnixMilli(1714989049123)

	assert.Equal(t, "COD-1714989049123", MintTransactionID(MethodCOD, ts))
	assert.Equal(t, "UPI-1714989049123", MintTransactionID(MethodUPI, ts))
	assert.Equal(t, "TXN-1714989049123", MintTransactionID(MethodCreditCard, ts))
	assert.Equal(t, "TXN-1714989049123", MintTransactionID(MethodDirectTransfer, ts))
}
