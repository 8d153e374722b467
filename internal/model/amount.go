package model

import (
	"fmt"
	"math"
)

// Amount is a monetary value in satoshis. Balances and pots are integer
// minor units so that repeated credits and debits stay exact.
type Amount int64

// SatsPerBTC is the number of satoshis in one bitcoin.
const SatsPerBTC = 100_000_000

// Add returns a + b, failing if the sum overflows.
func (a Amount) Add(b Amount) (Amount, error) {
	if b > 0 && a > math.MaxInt64-b {
		return 0, ErrAmountOverflow
	}
	if b < 0 && a < math.MinInt64-b {
		return 0, ErrAmountOverflow
	}
	return a + b, nil
}

// Sub returns a - b, failing if the result would be negative.
func (a Amount) Sub(b Amount) (Amount, error) {
	if b > a {
		return 0, ErrInsufficientBalance
	}
	return a - b, nil
}

// BTC formats the amount as a decimal BTC string, e.g. "0.00010000".
func (a Amount) BTC() string {
	neg := ""
	v := int64(a)
	if v < 0 {
		neg = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%08d", neg, v/SatsPerBTC, v%SatsPerBTC)
}

// String implements fmt.Stringer.
func (a Amount) String() string {
	return a.BTC() + " BTC"
}
