package cpl

import "fmt"

// EditRate is a rational frame rate. It is kept exactly as written in the
// document: no reduction and no sign checks.
type EditRate struct {
	numerator   int64
	denominator int64
}

// NewEditRate builds an edit rate from a numerator and denominator pair.
func NewEditRate(values []int64) (EditRate, error) {
	if len(values) != 2 {
		return EditRate{}, &MalformedEditRateError{Values: append([]int64(nil), values...)}
	}
	return EditRate{numerator: values[0], denominator: values[1]}, nil
}

// Numerator returns the edit rate numerator.
func (r EditRate) Numerator() int64 { return r.numerator }

// Denominator returns the edit rate denominator.
func (r EditRate) Denominator() int64 { return r.denominator }

// Float64 returns the rate as edit units per second, or 0 when the
// denominator is zero.
func (r EditRate) Float64() float64 {
	if r.denominator == 0 {
		return 0
	}
	return float64(r.numerator) / float64(r.denominator)
}

func (r EditRate) String() string {
	return fmt.Sprintf("%d/%d", r.numerator, r.denominator)
}
