package core

import "golang.org/x/exp/constraints"

// Lerp returns a*(1-t) + b*t. Values of t outside [0,1] extrapolate.
func Lerp[T constraints.Float](a, b, t T) T {
	return a*(1-t) + b*t
}
