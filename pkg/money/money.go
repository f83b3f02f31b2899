// Package money holds fixed-point amounts at 9 decimal places, the smallest
// transferable unit of SOL.
package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Decimals is the number of fractional digits an amount carries.
const Decimals = 9

// Lamports is an amount expressed in units of 1e-9. All arithmetic happens on
// the integer, so every step is already rounded to 9 decimals.
type Lamports int64

var (
	ErrNotFinite  = errors.New("amount is not a finite number")
	ErrOutOfRange = errors.New("amount out of range")
)

// FromDecimal rounds d half away from zero to 9 places. Amounts that do not
// fit in Lamports return ErrOutOfRange.
func FromDecimal(d decimal.Decimal) (Lamports, error) {
	return fromUnits(d.Shift(Decimals))
}

func fromUnits(d decimal.Decimal) (Lamports, error) {
	n := d.Round(0).BigInt()
	if !n.IsInt64() {
		return 0, fmt.Errorf("%w: %s", ErrOutOfRange, d.Shift(-Decimals))
	}
	return Lamports(n.Int64()), nil
}

// Parse reads a decimal string such as "0.05".
func Parse(s string) (Lamports, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return FromDecimal(d)
}

// Share returns fee * percent / 100 rounded to 9 places. percent is clamped
// to 0-100, so the share never exceeds the fee.
func Share(fee Lamports, percent int) Lamports {
	percent = min(max(percent, 0), 100)
	d := decimal.NewFromInt(int64(fee)).Mul(decimal.NewFromInt(int64(percent))).Div(decimal.NewFromInt(100))
	return Lamports(d.Round(0).IntPart())
}

// Gross is the inverse of Share: the full fee a share of percent came from.
// A zero percent yields zero.
func Gross(share Lamports, percent int) (Lamports, error) {
	if percent <= 0 {
		return 0, nil
	}
	d := decimal.NewFromInt(int64(share)).Mul(decimal.NewFromInt(100)).Div(decimal.NewFromInt(int64(percent)))
	return fromUnits(d)
}

// Decimal returns the amount in whole units.
func (l Lamports) Decimal() decimal.Decimal {
	return decimal.New(int64(l), -Decimals)
}

// String renders all 9 decimals.
func (l Lamports) String() string {
	return l.Decimal().StringFixed(Decimals)
}

// Display renders 6 decimals for people.
func (l Lamports) Display() string {
	return l.Decimal().StringFixed(6)
}
