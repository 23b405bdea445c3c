package checkout

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	phoneRe   = regexp.MustCompile(`^\d{10}$`)
	pincodeRe = regexp.MustCompile(`^\d{6}$`)
	emailRe   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	upiRe     = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9]+$`)
	cardRe    = regexp.MustCompile(`^\d{16}$`)
	cvvRe     = regexp.MustCompile(`^\d{3,4}$`)
	digitsRe  = regexp.MustCompile(`\D`)
)

func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// AddressForm is the delivery address as entered at checkout.
type AddressForm struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	Landmark string `json:"landmark,omitempty"`
	City     string `json:"city"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
}

// Validate returns per-field messages, or nil when the form is acceptable.
// Phone is compared digits-only so "98765 43210" still passes.
func (f AddressForm) Validate() map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(f.FullName) == "" {
		errs["fullName"] = "full name is required"
	}
	if !phoneRe.MatchString(digitsRe.ReplaceAllString(f.Phone, "")) {
		errs["phone"] = "phone number must be 10 digits"
	}
	if !emailRe.MatchString(f.Email) {
		errs["email"] = "invalid email format"
	}
	if strings.TrimSpace(f.Address) == "" {
		errs["address"] = "address is required"
	}
	if strings.TrimSpace(f.City) == "" {
		errs["city"] = "city is required"
	}
	if strings.TrimSpace(f.State) == "" {
		errs["state"] = "state is required"
	}
	if !pincodeRe.MatchString(f.Pincode) {
		errs["pincode"] = "pincode must be 6 digits"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// CardForm is the card sub-form for credit-card and debit-card methods.
type CardForm struct {
	Number      string `json:"number"`
	HolderName  string `json:"holderName"`
	ExpiryMonth string `json:"expiryMonth"`
	ExpiryYear  string `json:"expiryYear"` // two-digit year
	CVV         string `json:"cvv"`
}

func (f CardForm) Validate(now time.Time) map[string]string {
	errs := map[string]string{}
	if !cardRe.MatchString(strings.ReplaceAll(f.Number, " ", "")) {
		errs["cardNumber"] = "card number must be 16 digits"
	}
	if strings.TrimSpace(f.HolderName) == "" {
		errs["holderName"] = "card holder name is required"
	}
	month, err := strconv.Atoi(f.ExpiryMonth)
	if err != nil || month < 1 || month > 12 {
		errs["expiryMonth"] = "expiry month is required"
	}
	year, err := strconv.Atoi(f.ExpiryYear)
	if err != nil || len(f.ExpiryYear) != 2 {
		errs["expiryYear"] = "expiry year is required"
	} else if _, ok := errs["expiryMonth"]; !ok {
		cy := now.Year() % 100
		if year < cy || (year == cy && month < int(now.Month())) {
			errs["expiryYear"] = "card has expired"
		}
	}
	if !cvvRe.MatchString(f.CVV) {
		errs["cvv"] = "CVV must be 3-4 digits"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Last4 returns the final four digits of the card number for the payment
// record; the full number is never persisted.
func (f CardForm) Last4() string {
	n := strings.ReplaceAll(f.Number, " ", "")
	if len(n) < 4 {
		return ""
	}
	return n[len(n)-4:]
}

// ValidateUPI checks the handle looks like username@bankname.
func ValidateUPI(upiID string) map[string]string {
	if upiRe.MatchString(upiID) {
		return nil
	}
	return map[string]string{"upiId": "invalid UPI ID format (e.g., username@bankname)"}
}
