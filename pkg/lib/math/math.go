package math

import (
	"golang.org/x/exp/constraints"
)

// Number is a generic constraint for all numeric types.
type Number interface {
	constraints.Integer | constraints.Float
}

// Min returns the smallest of the provided values.
func Min[T constraints.Ordered](first T, rest ...T) T {
	min := first
	for _, v := range rest {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the largest of the provided values.
func Max[T constraints.Ordered](first T, rest ...T) T {
	max := first
	for _, v := range rest {
		if v > max {
			max = v
		}
	}
	return max
}
