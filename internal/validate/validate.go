// Package validate checks raw user input before it reaches the services.
package validate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/metlab/inventory/types"
)

var (
	ErrEmptyUsername     = errors.New("username cannot be empty")
	ErrEmptyPassword     = errors.New("password cannot be empty")
	ErrItemNameRequired  = errors.New("item name is required")
	ErrCategoryRequired  = errors.New("category is required")
	ErrQuantityNotNumber = errors.New("quantity must be a number")
	ErrPriceNotNumber    = errors.New("price must be a number")
	ErrEmptyQuantity     = errors.New("quantity cannot be empty")
	ErrEmptyPrice        = errors.New("price cannot be empty")
	ErrTransactionType   = errors.New("transaction type must be IN or OUT")
)

func Username(username string) error {
	if strings.TrimSpace(username) == "" {
		return ErrEmptyUsername
	}
	return nil
}

func Password(password string, minLength int) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if len(password) < minLength {
		return fmt.Errorf("password must be at least %d characters", minLength)
	}
	return nil
}

// ItemData checks the fields of a new item and returns the parsed quantity
// and price.
func ItemData(name, category, quantity, price string) (int, float64, error) {
	if strings.TrimSpace(name) == "" {
		return 0, 0, ErrItemNameRequired
	}
	if strings.TrimSpace(category) == "" {
		return 0, 0, ErrCategoryRequired
	}
	q, err := strconv.Atoi(strings.TrimSpace(quantity))
	if err != nil {
		return 0, 0, ErrQuantityNotNumber
	}
	p, err := strconv.ParseFloat(strings.TrimSpace(price), 64)
	if err != nil {
		return 0, 0, ErrPriceNotNumber
	}
	return q, p, nil
}

func Quantity(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrEmptyQuantity
	}
	q, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ErrQuantityNotNumber
	}
	return q, nil
}

func Price(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrEmptyPrice
	}
	p, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, ErrPriceNotNumber
	}
	return p, nil
}

// Role maps free-form input to a known role; anything unrecognised becomes
// a plain user.
func Role(raw string) string {
	if strings.ToLower(strings.TrimSpace(raw)) == types.RoleAdmin {
		return types.RoleAdmin
	}
	return types.RoleUser
}

// TransactionType upper-cases raw and checks it is IN or OUT.
func TransactionType(raw string) (string, error) {
	t := strings.ToUpper(strings.TrimSpace(raw))
	if !types.IsValidTransactionType(t) {
		return "", ErrTransactionType
	}
	return t, nil
}
