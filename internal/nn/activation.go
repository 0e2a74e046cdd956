package nn

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Activation is an elementwise nonlinearity applied to a layer's affine
// output. It is a closed set of variants; each variant is a pair of pure
// functions (Apply, Derivative) with no owned state.
//
// Derivative is evaluated at the layer's already-activated output, not at
// the pre-activation net. Each formula below is therefore expressed in
// terms of the activated value, which lets Layer avoid retaining the
// pre-activation vector between the forward and backward passes. Callers
// must pass the output of Apply, never the raw net.
type Activation int

const (
	// Sigmoid squashes values to the open interval (0, 1):
	// σ(x) = 1 / (1 + exp(-x)).
	Sigmoid Activation = iota

	// RectifiedLinearUnit clamps negative values to zero:
	// f(x) = max(x, 0).
	RectifiedLinearUnit

	// Softplus is a smooth approximation of ReLU with strictly positive
	// output: f(x) = ln(1 + exp(x)).
	Softplus
)

// String returns the variant name.
func (a Activation) String() string {
	switch a {
	case Sigmoid:
		return "Sigmoid"
	case RectifiedLinearUnit:
		return "RectifiedLinearUnit"
	case Softplus:
		return "Softplus"
	default:
		return fmt.Sprintf("Activation(%d)", int(a))
	}
}

// Apply computes the activation elementwise over x and returns a new
// vector. x is not modified.
func (a Activation) Apply(x *mat.VecDense) *mat.VecDense {
	switch a {
	case Sigmoid:
		return mapVec(x, sigmoid)
	case RectifiedLinearUnit:
		return mapVec(x, func(v float64) float64 {
			return math.Max(v, 0)
		})
	case Softplus:
		return mapVec(x, func(v float64) float64 {
			return math.Log1p(math.Exp(v))
		})
	default:
		panic(fmt.Sprintf("Activation.Apply: unknown activation %s", a))
	}
}

// Derivative computes the activation's local derivative elementwise,
// evaluated at the activated output y (see the type comment). y is not
// modified.
//
// For Sigmoid the derivative at net x is σ(x)(1-σ(x)); since y = σ(x),
// that is y(1-y). For ReLU it is 1 where the output is positive and 0
// elsewhere (a positive output implies a positive net and vice versa).
// For Softplus the derivative at net x is σ(x); evaluating σ at the
// activated value follows the same activated-input convention.
func (a Activation) Derivative(y *mat.VecDense) *mat.VecDense {
	switch a {
	case Sigmoid:
		return mapVec(y, func(v float64) float64 {
			return v * (1 - v)
		})
	case RectifiedLinearUnit:
		return mapVec(y, func(v float64) float64 {
			if v > 0 {
				return 1
			}
			return 0
		})
	case Softplus:
		return mapVec(y, sigmoid)
	default:
		panic(fmt.Sprintf("Activation.Derivative: unknown activation %s", a))
	}
}

func sigmoid(v float64) float64 {
	return 1 / (1 + math.Exp(-v))
}
