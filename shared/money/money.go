// Package money represents currency amounts as integer minor units (cents)
// so that repeated quantity×price arithmetic stays exact. Amounts are only
// rendered with two decimal places at the API boundary.
package money

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type Amount int64

var (
	ErrNegativeAmount = errors.New("amount must not be negative")
	ErrInvalidAmount  = errors.New("invalid amount")
)

const centsPerUnit = 100

// FromUnits builds an Amount from whole currency units and cents.
func FromUnits(units int64, cents int64) Amount {
	return Amount(units*centsPerUnit + cents)
}

// Mul multiplies the amount by a non-negative integer quantity.
func (a Amount) Mul(qty int) Amount {
	return a * Amount(qty)
}

func (a Amount) Add(b Amount) Amount {
	return a + b
}

// String renders the amount with two decimal places, e.g. "1250" -> "12.50".
func (a Amount) String() string {
	sign := ""
	value := int64(a)

	if value < 0 {
		sign = "-"
		value = -value
	}

	return fmt.Sprintf("%s%d.%02d", sign, value/centsPerUnit, value%centsPerUnit)
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(a.String())), nil
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	str, err := strconv.Unquote(string(data))
	if err != nil {
		// Not a quoted string, accept a bare number of cents.
		cents, numErr := strconv.ParseInt(string(data), 10, 64)
		if numErr != nil {
			return fmt.Errorf("%w: %s", ErrInvalidAmount, string(data))
		}

		*a = Amount(cents)

		return nil
	}

	parsed, err := Parse(str)
	if err != nil {
		return err
	}

	*a = parsed

	return nil
}

// Parse reads a decimal string like "12.50" (at most two fraction digits)
// into an Amount.
func Parse(value string) (Amount, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, ErrInvalidAmount
	}

	negative := strings.HasPrefix(value, "-")
	value = strings.TrimPrefix(value, "-")

	unitsPart := value
	centsPart := "0"

	if idx := strings.Index(value, "."); idx >= 0 {
		unitsPart = value[:idx]
		centsPart = value[idx+1:]
	}

	if unitsPart == "" {
		unitsPart = "0"
	}

	if len(centsPart) > 2 {
		return 0, fmt.Errorf("%w: more than two decimal places in %q", ErrInvalidAmount, value)
	}

	for len(centsPart) < 2 {
		centsPart += "0"
	}

	units, err := strconv.ParseInt(unitsPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, value)
	}

	cents, err := strconv.ParseInt(centsPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, value)
	}

	amount := FromUnits(units, cents)
	if negative {
		amount = -amount
	}

	return amount, nil
}
