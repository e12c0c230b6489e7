package entity

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	errs "github.com/skylar-games/case-opener/internal/domain/error"
)

// All coin amounts are held as int64 tenths of a coin. The game currency
// carries exactly one decimal place (the cheapest reward pays 0.1), so tenths
// keep every balance and payout exact without floating point drift, and
// "rounded to one decimal place" holds by construction.

// MaxDecimalPlaces is the number of decimal places the currency carries
const MaxDecimalPlaces = 1

// ParseAmount validates a signed decimal string and converts it to tenths.
// Accepted forms: "10", "-10", "10.5", "-0.1", "10.". Anything with more
// than one fractional digit or non-numeric content is rejected.
func ParseAmount(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	negative := strings.HasPrefix(amount, "-")
	if negative {
		amount = amount[1:]
	}
	if len(amount) == 0 {
		return 0, fmt.Errorf("%w: sign without digits", errs.ErrInvalidAmount)
	}

	parts := strings.Split(amount, ".")
	if len(parts) > 2 {
		return 0, fmt.Errorf("%w: multiple decimal points", errs.ErrInvalidAmount)
	}

	var digits string
	switch {
	case len(parts) == 1:
		// No decimal point, amount is whole coins
		digits = parts[0] + "0"
	case len(parts[1]) == 0:
		// Trailing point like "10."
		digits = parts[0] + "0"
	case len(parts[1]) == MaxDecimalPlaces:
		digits = parts[0] + parts[1]
	default:
		return 0, fmt.Errorf("%w: at most %d decimal place allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
	}

	value, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}
	if negative {
		value = -value
	}
	return value, nil
}

// FormatTenths renders a tenths amount with exactly one decimal place.
// 9900 becomes "990.0", -40000 becomes "-4000.0", 1 becomes "0.1".
func FormatTenths(tenths int64) string {
	negative := tenths < 0
	if negative {
		tenths = -tenths
	}

	s := strconv.FormatInt(tenths, 10)
	for len(s) < 2 {
		s = "0" + s
	}

	whole := s[:len(s)-1]
	if negative {
		return "-" + whole + "." + s[len(s)-1:]
	}
	return whole + "." + s[len(s)-1:]
}

// TenthsToCoins converts a tenths amount to coins for JSON persistence and
// API responses that carry numbers rather than strings.
func TenthsToCoins(tenths int64) float64 {
	return float64(tenths) / 10
}

// CoinsToTenths converts a coin amount back to tenths, rounding to the one
// decimal place the currency carries.
func CoinsToTenths(coins float64) int64 {
	return int64(math.Round(coins * 10))
}
