package farey

import (
	"fmt"
	"math/bits"

	apperrors "github.com/agbru/fareycalc/internal/errors"
)

// Fraction is an immutable non-negative rational number backed by two uint64
// values. The zero Fraction is invalid; use New, which is the sole validation
// gate for the non-zero denominator invariant.
type Fraction struct {
	numerator   uint64
	denominator uint64
}

// New creates a Fraction after validating the denominator.
//
// Parameters:
//   - numerator: The numerator value.
//   - denominator: The denominator value; must not be zero.
//
// Returns:
//   - Fraction: The validated fraction.
//   - error: An apperrors.DivisionByZeroError if denominator is zero.
func New(numerator, denominator uint64) (Fraction, error) {
	if denominator == 0 {
		return Fraction{}, apperrors.DivisionByZeroError{Numerator: numerator}
	}
	return Fraction{numerator: numerator, denominator: denominator}, nil
}

// Numerator returns the numerator.
func (f Fraction) Numerator() uint64 { return f.numerator }

// Denominator returns the denominator.
func (f Fraction) Denominator() uint64 { return f.denominator }

// Value returns the quotient numerator/denominator as a float64. It is used
// for comparison and display only; the integer pair stays authoritative.
func (f Fraction) Value() float64 {
	return float64(f.numerator) / float64(f.denominator)
}

// Mediant computes the mediant (a+c)/(b+d) of f = a/b and other = c/d.
// This is Farey addition, not the arithmetic mean: for a/b < c/d the mediant
// lies strictly between them, which is what lets the search engine bisect the
// Stern-Brocot tree.
//
// Both additions are carry-checked. The sums grow on every bisection step, so
// for deep searches they can genuinely exceed the uint64 range; a wrapped sum
// would silently corrupt the walk, hence the explicit OverflowError.
//
// Parameters:
//   - other: The second fraction.
//
// Returns:
//   - Fraction: The mediant.
//   - error: An apperrors.OverflowError if either sum wraps around.
func (f Fraction) Mediant(other Fraction) (Fraction, error) {
	num, carryNum := bits.Add64(f.numerator, other.numerator, 0)
	den, carryDen := bits.Add64(f.denominator, other.denominator, 0)
	if carryNum != 0 || carryDen != 0 {
		return Fraction{}, apperrors.OverflowError{Numerator: num, Denominator: den}
	}
	return New(num, den)
}

// String renders the fraction as "numerator/denominator".
func (f Fraction) String() string {
	return fmt.Sprintf("%d/%d", f.numerator, f.denominator)
}

// reduce divides numerator and denominator by their greatest common divisor.
// Mediants of distinct Stern-Brocot neighbours are already in lowest terms;
// the only non-reduced fraction the engine can produce is the first mediant of
// two equal whole-number bounds (2n/2), which this normalizes to n/1.
func (f Fraction) reduce() Fraction {
	g := gcd(f.numerator, f.denominator)
	if g <= 1 {
		return f
	}
	return Fraction{numerator: f.numerator / g, denominator: f.denominator / g}
}

// gcd computes the greatest common divisor by the Euclidean algorithm.
func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
