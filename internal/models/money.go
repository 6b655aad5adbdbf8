package models

import (
	"encoding/json"
	"fmt"
	"math"
)

// Money is a fixed-point currency amount stored as integer cents.
// All arithmetic stays in integers; binary floating point is used only
// when converting at the API boundary, where amounts travel as decimal
// numbers with two fractional digits.
type Money struct {
	// Cents is the amount in the currency's minor unit.
	Cents int64
}

// MoneyFromFloat converts a decimal amount (e.g. a JSON number) to Money,
// rounding half to even to the nearest cent.
func MoneyFromFloat(amount float64) Money {
	return Money{Cents: int64(math.RoundToEven(amount * 100))}
}

// Float returns the amount as a decimal number with cent precision.
func (m Money) Float() float64 {
	return float64(m.Cents) / 100
}

// Add returns m + o.
func (m Money) Add(o Money) Money {
	return Money{Cents: m.Cents + o.Cents}
}

// Sub returns m - o.
func (m Money) Sub(o Money) Money {
	return Money{Cents: m.Cents - o.Cents}
}

// Neg returns the amount with its sign flipped.
func (m Money) Neg() Money {
	return Money{Cents: -m.Cents}
}

// Abs returns the magnitude of the amount.
func (m Money) Abs() Money {
	if m.Cents < 0 {
		return Money{Cents: -m.Cents}
	}
	return m
}

// IsZero reports whether the amount is exactly zero cents.
func (m Money) IsZero() bool { return m.Cents == 0 }

// IsPositive reports whether the amount is above zero.
func (m Money) IsPositive() bool { return m.Cents > 0 }

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool { return m.Cents < 0 }

// Divide splits the amount into n equal parts, rounding half to even to
// the nearest cent. n must be positive. The result is the same for every
// part; any sub-cent remainder is not redistributed.
func (m Money) Divide(n int64) Money {
	c := m.Cents
	neg := c < 0
	if neg {
		c = -c
	}
	q := c / n
	r := c % n
	switch {
	case 2*r > n:
		q++
	case 2*r == n && q%2 == 1:
		q++
	}
	if neg {
		q = -q
	}
	return Money{Cents: q}
}

// Percent returns pct percent of the amount, rounding half to even to the
// nearest cent.
func (m Money) Percent(pct float64) Money {
	return Money{Cents: int64(math.RoundToEven(float64(m.Cents) * pct / 100))}
}

// String formats the amount with two decimal places, e.g. "12.34".
func (m Money) String() string {
	sign := ""
	c := m.Cents
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}

// MarshalJSON encodes the amount as a plain decimal number (12.34), the
// shape API clients send and expect back.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Float())
}

// UnmarshalJSON accepts a decimal number and stores the nearest cent.
func (m *Money) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("invalid money amount: %w", err)
	}
	*m = MoneyFromFloat(f)
	return nil
}
