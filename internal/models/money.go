package models

import "github.com/shopspring/decimal"

// Cents is an amount of money in integer minor currency units. Every table
// stores money this way; conversion to major units happens exactly once, at
// the serialization boundary, through Major or String.
type Cents int64

// Major converts the amount to major currency units. 59700 cents -> 597.00.
// Exact for any realistic amount: two decimal digits always fit a float64
// below 2^52 cents.
func (c Cents) Major() float64 {
	f, _ := decimal.New(int64(c), -2).Float64()
	return f
}

// String formats the amount in major units with two decimal places.
func (c Cents) String() string {
	return decimal.New(int64(c), -2).StringFixed(2)
}
