package domain

import (
	"fmt"
	"math"
	"strconv"
)

// Money is a monetary amount in paise (1/100 of a rupee).
// Storing minor units as an integer keeps pricing arithmetic exact;
// floating point is only involved at the JSON boundary.
type Money int64

// Rupees builds a Money from a whole-rupee amount.
func Rupees(r int64) Money {
	return Money(r * 100)
}

// Times returns the amount multiplied by n (e.g. a per-day cost over n days).
func (m Money) Times(n int) Money {
	return m * Money(n)
}

// Percent returns p percent of the amount, truncated to the paisa.
func (m Money) Percent(p int64) Money {
	return m * Money(p) / 100
}

// String formats the amount in rupees, e.g. "₹2500" or "₹2500.50".
func (m Money) String() string {
	if m%100 == 0 {
		return fmt.Sprintf("₹%d", int64(m)/100)
	}
	return fmt.Sprintf("₹%.2f", float64(m)/100)
}

// MarshalJSON serializes the amount as a rupee number ("costPerDay": 2500),
// matching the wire format of the public catalog API.
func (m Money) MarshalJSON() ([]byte, error) {
	if m%100 == 0 {
		return strconv.AppendInt(nil, int64(m)/100, 10), nil
	}
	return strconv.AppendFloat(nil, float64(m)/100, 'f', 2, 64), nil
}

// UnmarshalJSON parses a rupee number into paise, rounding to the nearest
// paisa to absorb binary-float representation noise.
func (m *Money) UnmarshalJSON(data []byte) error {
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("domain.Money: parse %q: %w", data, err)
	}
	*m = Money(math.Round(f * 100))
	return nil
}
