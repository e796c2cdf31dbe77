package recommend

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// SimilarityFunc scores two strings between 0 (nothing in common) and 1
// (identical)
type SimilarityFunc func(a, b string) float64

// SequenceRatio compares a and b character by character with difflib's
// sequence matcher: 2*M/T, where M counts the characters in the longest
// common blocks and T is the combined length. The score is not symmetric.
func SequenceRatio(a, b string) float64 {
	return difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, "")).Ratio()
}
