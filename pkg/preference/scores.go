package preference

import "math"

// Precision settings for the epsilon used to order entries of equal quality.
const (
	// DefaultPrecision gives eps = 0.0001, small enough that a handful of
	// wildcards or parameters never outweighs a q difference of 0.01.
	DefaultPrecision = 5

	// MinPrecision is the smallest usable precision (eps = 0.1). Anything
	// lower falls back to DefaultPrecision.
	MinPrecision = 2
)

// Wildcard penalties.
const (
	// penaltyConcrete is applied to type/subtype.
	penaltyConcrete = 0

	// penaltySubtype is applied to type/*.
	penaltySubtype = 1

	// penaltyAny is applied to */* (and the degenerate */subtype).
	penaltyAny = 2
)

// normalizePrecision maps out of range precision values to DefaultPrecision.
func normalizePrecision(precision int) int {
	if precision < MinPrecision {
		return DefaultPrecision
	}
	return precision
}

// epsilon returns 10^-(precision-1).
func epsilon(precision int) float64 {
	return math.Pow10(-(normalizePrecision(precision) - 1))
}

// wildcardPenalty counts the wildcard positions of a media range.
func wildcardPenalty(typ, subtype string) int {
	switch {
	case typ == "*":
		return penaltyAny
	case subtype == "*":
		return penaltySubtype
	default:
		return penaltyConcrete
	}
}

// rank computes the effective rank of e at the given precision. The result
// is rounded to precision digits so equal ranks compare equal and fall back
// to input order.
func rank(e *Entry, precision int) float64 {
	precision = normalizePrecision(precision)
	adjust := len(e.Params) - wildcardPenalty(e.Type, e.Subtype)
	return roundTo(e.Quality()+float64(adjust)*epsilon(precision), precision)
}

// roundTo rounds v to the given number of decimal digits.
func roundTo(v float64, digits int) float64 {
	scale := math.Pow10(digits)
	return math.Round(v*scale) / scale
}
