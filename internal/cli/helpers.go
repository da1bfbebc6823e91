package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidNumber is returned when numeric input cannot be parsed
var ErrInvalidNumber = errors.New("not a valid number")

// HoursScale is the number of fractional digits kept for hour values
const HoursScale = 2

// ParseHours parses a decimal hour value and rounds it to two fractional digits
func ParseHours(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%q is %w", s, ErrInvalidNumber)
	}
	return d.Round(HoursScale), nil
}

// ParseInt parses a whole number such as a difficulty or a project ID
func ParseInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is %w", s, ErrInvalidNumber)
	}
	return n, nil
}
