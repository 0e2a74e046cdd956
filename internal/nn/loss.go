package nn

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// LossFunction measures the discrepancy between a desired output and the
// output a layer actually produced. Like Activation it is a closed set of
// variants, each a pair of pure functions with no owned state.
//
// Only the terminal layer of a network consults its loss: Error is a
// diagnostic for reporting training progress, and Derivative seeds the
// backward pass. Hidden layers receive their gradient signal from the next
// layer instead and never invoke either function.
type LossFunction int

const (
	// SquaredError is the elementwise squared difference, halved so that
	// its derivative is the plain difference:
	//
	//	error(t, a)      = (t - a)² / 2
	//	derivative(t, a) = a - t
	SquaredError LossFunction = iota

	// CrossEntropy is declared but not implemented. Both Error and
	// Derivative panic when invoked; it is a reserved variant, not a
	// usable one.
	CrossEntropy
)

// String returns the variant name.
func (l LossFunction) String() string {
	switch l {
	case SquaredError:
		return "SquaredError"
	case CrossEntropy:
		return "CrossEntropy"
	default:
		return fmt.Sprintf("LossFunction(%d)", int(l))
	}
}

// Error computes the elementwise loss between the target and actual
// vectors. It is diagnostic only; the backward pass uses Derivative.
func (l LossFunction) Error(target, actual *mat.VecDense) *mat.VecDense {
	switch l {
	case SquaredError:
		if target.Len() != actual.Len() {
			panic(fmt.Sprintf("LossFunction.Error: target length %d does not match actual length %d",
				target.Len(), actual.Len()))
		}
		out := mat.NewVecDense(target.Len(), nil)
		for i := 0; i < target.Len(); i++ {
			d := target.AtVec(i) - actual.AtVec(i)
			out.SetVec(i, d*d/2)
		}
		return out
	case CrossEntropy:
		panic("LossFunction.Error: CrossEntropy is not implemented")
	default:
		panic(fmt.Sprintf("LossFunction.Error: unknown loss function %s", l))
	}
}

// Derivative computes the elementwise gradient of the loss with respect to
// the actual output.
func (l LossFunction) Derivative(target, actual *mat.VecDense) *mat.VecDense {
	switch l {
	case SquaredError:
		if target.Len() != actual.Len() {
			panic(fmt.Sprintf("LossFunction.Derivative: target length %d does not match actual length %d",
				target.Len(), actual.Len()))
		}
		out := mat.NewVecDense(target.Len(), nil)
		out.SubVec(actual, target)
		return out
	case CrossEntropy:
		panic("LossFunction.Derivative: CrossEntropy is not implemented")
	default:
		panic(fmt.Sprintf("LossFunction.Derivative: unknown loss function %s", l))
	}
}
