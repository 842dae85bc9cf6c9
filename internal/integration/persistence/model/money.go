package model

import "github.com/shopspring/decimal"

// Money columns hold integer cents so SQL increments stay exact on every driver.

// ToCents converts an amount to whole cents, rounding half away from zero.
func ToCents(amount decimal.Decimal) int64 {
	return amount.Round(2).Shift(2).IntPart()
}

// FromCents converts whole cents back to an amount.
func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}
