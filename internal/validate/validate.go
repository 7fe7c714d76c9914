// Package validate holds the pure field validators used by the checkout flow
// and the quantity selector, plus the currency formatter shared by every
// price display.
package validate

import (
	"errors"
	"regexp"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// MaxQuantity is the ceiling shared by the quantity validator and the
// quantity selector.
const MaxQuantity = 99

// local@domain.tld shape; anything beyond that is the mail server's problem.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func Name(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errors.New("Name is required")
	}
	if len([]rune(trimmed)) < 2 {
		return errors.New("Name must be at least 2 characters")
	}
	return nil
}

func Email(email string) error {
	if strings.TrimSpace(email) == "" {
		return errors.New("Email is required")
	}
	if !emailRe.MatchString(email) {
		return errors.New("Please enter a valid email address")
	}
	return nil
}

func Phone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return errors.New("Phone number is required")
	}
	digits := 0
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if digits < 10 {
		return errors.New("Please enter a valid phone number (at least 10 digits)")
	}
	return nil
}

func Quantity(quantity int) error {
	if quantity <= 0 {
		return errors.New("Quantity must be at least 1")
	}
	if quantity > MaxQuantity {
		return errors.New("Maximum quantity exceeded")
	}
	return nil
}

// All prices are shown in Canadian dollars with en-CA formatting.
var pricePrinter = message.NewPrinter(language.MustParse("en-CA"))

// FormatCurrency renders an amount the way the storefront displays money.
func FormatCurrency(amount float64) string {
	return pricePrinter.Sprint(currency.Symbol(currency.CAD.Amount(amount)))
}
