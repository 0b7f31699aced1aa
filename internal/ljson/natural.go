package ljson

import (
	"math/big"
	"unicode/utf8"
)

// Ordering is the three-way result of a comparison.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// CompareNatural is a total order on strings that treats maximal runs of
// ASCII decimal digits as arbitrary-precision numbers, so that e.g.
// "item2" sorts before "item10". Non-digit runs compare code-point-wise.
//
// At each step, if both sides sit on a digit, the maximal digit run on
// each side is consumed and compared numerically; if only one side sits
// on a digit, that side is lesser; otherwise the current runes are
// compared directly. Exhaustion of one side first makes it the lesser
// string.
func CompareNatural(a, b string) Ordering {
	ra, rb := []rune(a), []rune(b)
	i, j := 0, 0
	for i < len(ra) && j < len(rb) {
		ca, cb := ra[i], rb[j]
		digitA, digitB := isASCIIDigit(ca), isASCIIDigit(cb)

		switch {
		case digitA && digitB:
			startA := i
			for i < len(ra) && isASCIIDigit(ra[i]) {
				i++
			}
			startB := j
			for j < len(rb) && isASCIIDigit(rb[j]) {
				j++
			}
			numA := bigFromDigits(ra[startA:i])
			numB := bigFromDigits(rb[startB:j])
			if c := numA.Cmp(numB); c != 0 {
				return orderingFromInt(c)
			}
		case digitA && !digitB:
			return Less
		case !digitA && digitB:
			return Greater
		default:
			if ca != cb {
				return orderingFromInt(int(ca) - int(cb))
			}
			i++
			j++
		}
	}
	switch {
	case i < len(ra):
		return Greater
	case j < len(rb):
		return Less
	default:
		return Equal
	}
}

// CompareNormal is byte-wise string comparison (Go's native string order).
func CompareNormal(a, b string) Ordering {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	default:
		return Equal
	}
}

// Compare applies the comparator named by algo, defaulting to
// CompareNormal when algo is SortAlgorithmNone (callers that reach here
// with SortAlgorithmNone should normally not be comparing at all).
func Compare(algo SortAlgorithm, a, b string) Ordering {
	if algo == SortAlgorithmNatural {
		return CompareNatural(a, b)
	}
	return CompareNormal(a, b)
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func bigFromDigits(digits []rune) *big.Int {
	buf := make([]byte, 0, len(digits)*utf8.UTFMax)
	for _, r := range digits {
		buf = utf8.AppendRune(buf, r)
	}
	n := new(big.Int)
	n.SetString(string(buf), 10)
	return n
}

func orderingFromInt(c int) Ordering {
	switch {
	case c < 0:
		return Less
	case c > 0:
		return Greater
	default:
		return Equal
	}
}
