// Package nn implements the trainable feed-forward layer at the core of
// the Synapse library.
//
// This package provides the building blocks for single-layer forward and
// backward propagation:
//   - Layer: an affine transform followed by a nonlinearity
//   - Activation: Sigmoid, RectifiedLinearUnit, Softplus
//   - LossFunction: SquaredError (CrossEntropy is reserved, unimplemented)
//   - Propagation / Adjustment / WeightedDeltas: the backward-pass record
//     and the gradient signal threaded between layers
//
// Vector and matrix arithmetic is supplied by gonum; this package only
// adds the layer semantics on top of it.
package nn

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Layer is a single fully connected neural-network layer.
//
// It performs the transformation y = activation(W·x + b) where:
//   - x is the input vector with length inFeatures
//   - W is the weight matrix with shape [outFeatures, inFeatures]
//   - b is the bias vector with length outFeatures
//   - y is the activated output vector with length outFeatures
//
// The loss function is consulted only when the layer is the terminal layer
// of a network, to seed the backward pass from a desired target output.
//
// A Layer is not safe for concurrent use: Backpropagate mutates the weight
// matrix in place, and callers must hold exclusive access to the layer for
// the duration of a training step.
type Layer struct {
	inFeatures  int
	outFeatures int
	weights     *mat.Dense    // [outFeatures, inFeatures]
	bias        *mat.VecDense // [outFeatures]
	activation  Activation
	loss        LossFunction
}

// NewLayer creates a Layer with Xavier-initialized weights and a zero bias.
//
// Parameters:
//   - inFeatures: number of inputs the layer accepts
//   - outFeatures: number of outputs the layer produces
//   - activation: nonlinearity applied to the affine output
//   - loss: loss function used when this is the terminal layer
func NewLayer(inFeatures, outFeatures int, activation Activation, loss LossFunction) *Layer {
	if inFeatures <= 0 || outFeatures <= 0 {
		panic(fmt.Sprintf("NewLayer: dimensions must be positive, got %dx%d", outFeatures, inFeatures))
	}
	return &Layer{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weights:     Xavier(inFeatures, outFeatures),
		bias:        Zeros(outFeatures),
		activation:  activation,
		loss:        loss,
	}
}

// NewLayerFrom creates a Layer from explicit weights and bias.
//
// The weight matrix must be [outFeatures, inFeatures] and the bias length
// must equal outFeatures. Returns an error if the shapes are inconsistent.
// The layer takes ownership of both arguments; callers must not mutate
// them afterwards.
func NewLayerFrom(weights *mat.Dense, bias *mat.VecDense, activation Activation, loss LossFunction) (*Layer, error) {
	rows, cols := weights.Dims()
	if bias.Len() != rows {
		return nil, fmt.Errorf("bias length mismatch: weights are %dx%d but bias has length %d",
			rows, cols, bias.Len())
	}
	return &Layer{
		inFeatures:  cols,
		outFeatures: rows,
		weights:     weights,
		bias:        bias,
		activation:  activation,
		loss:        loss,
	}, nil
}

// Propagation is the per-call record handed to Backpropagate. It bundles
// the vectors of one forward pass with the adjustment to apply. The layer
// does not retain it.
type Propagation struct {
	// Input is the vector that was fed to Propagate.
	Input *mat.VecDense

	// Output is the activated vector Propagate produced for Input.
	Output *mat.VecDense

	// Adjustment selects how the error signal is derived: from a desired
	// target output (terminal layer) or from the deltas handed back by
	// the next layer (hidden layer).
	Adjustment Adjustment

	// LearningRate scales the weight update. Must be positive.
	LearningRate float64
}

// Adjustment is a two-variant tagged union: Target carries the desired
// output for the network's terminal layer, Deltas carries the gradient
// signal propagated back from the next layer for a hidden layer.
type Adjustment struct {
	target *mat.VecDense
	deltas *WeightedDeltas
}

// Target returns an Adjustment toward a desired output vector.
func Target(t *mat.VecDense) Adjustment {
	return Adjustment{target: t}
}

// Deltas returns an Adjustment from the gradient signal of the next layer.
func Deltas(d WeightedDeltas) Adjustment {
	return Adjustment{deltas: &d}
}

// WeightedDeltas is the gradient signal a layer hands to the previous
// layer during backpropagation: how much each of the previous layer's
// outputs contributed to the downstream error, before the previous layer's
// activation derivative is applied.
type WeightedDeltas struct {
	vec *mat.VecDense
}

// Vector returns the underlying gradient vector.
func (w WeightedDeltas) Vector() *mat.VecDense {
	return w.vec
}

// Len returns the length of the gradient vector.
func (w WeightedDeltas) Len() int {
	return w.vec.Len()
}

// Propagate pushes an input vector through the layer and returns the
// activated output: activation(W·x + b).
//
// It is a pure function of x and the layer's current weights and bias.
// Panics if the input length does not match the layer's input dimension.
func (l *Layer) Propagate(x *mat.VecDense) *mat.VecDense {
	if x.Len() != l.inFeatures {
		panic(fmt.Sprintf("Layer.Propagate: expected input of length %d, got %d", l.inFeatures, x.Len()))
	}

	net := mat.NewVecDense(l.outFeatures, nil)
	net.MulVec(l.weights, x)
	net.AddVec(net, l.bias)

	return l.activation.Apply(net)
}

// Backpropagate propagates an error signal backwards through the layer and
// applies a plain gradient-descent update to the weights, in place.
//
// Given the Propagation record {input, output, adjustment, lr}:
//
//  1. deltas = loss.Derivative(target, output) ⊙ activation.Derivative(output)
//     when the adjustment is a Target, or
//     deltas = d ⊙ activation.Derivative(output) when it is Deltas(d).
//  2. upstream = Wᵀ · deltas, the signal for the previous layer.
//  3. grad = deltas ⊗ inputᵀ, the weight gradient.
//  4. W ← W − lr · grad.
//
// The returned WeightedDeltas is upstream, ready to be wrapped with Deltas
// and fed to the preceding layer of a multi-layer backward pass.
//
// Only the weight matrix is updated; the bias is left untouched, matching
// the documented numeric behavior of the system this library reproduces
// (see DESIGN.md for the deliberate decision).
//
// All intermediate vectors are computed before the weight matrix is
// mutated, so a panic never leaves the layer partially updated. Panics on
// any dimension mismatch among input, output, and the weight matrix, and
// when the adjustment is a Target but the layer's loss is CrossEntropy.
func (l *Layer) Backpropagate(p *Propagation) WeightedDeltas {
	if p.Input.Len() != l.inFeatures {
		panic(fmt.Sprintf("Layer.Backpropagate: expected input of length %d, got %d", l.inFeatures, p.Input.Len()))
	}
	if p.Output.Len() != l.outFeatures {
		panic(fmt.Sprintf("Layer.Backpropagate: expected output of length %d, got %d", l.outFeatures, p.Output.Len()))
	}

	actDeriv := l.activation.Derivative(p.Output)

	deltas := mat.NewVecDense(l.outFeatures, nil)
	switch {
	case p.Adjustment.target != nil:
		if p.Adjustment.target.Len() != l.outFeatures {
			panic(fmt.Sprintf("Layer.Backpropagate: expected target of length %d, got %d",
				l.outFeatures, p.Adjustment.target.Len()))
		}
		deltas.MulElemVec(l.loss.Derivative(p.Adjustment.target, p.Output), actDeriv)
	case p.Adjustment.deltas != nil:
		if p.Adjustment.deltas.Len() != l.outFeatures {
			panic(fmt.Sprintf("Layer.Backpropagate: expected deltas of length %d, got %d",
				l.outFeatures, p.Adjustment.deltas.Len()))
		}
		deltas.MulElemVec(p.Adjustment.deltas.Vector(), actDeriv)
	default:
		panic("Layer.Backpropagate: adjustment carries neither a target nor deltas")
	}

	upstream := mat.NewVecDense(l.inFeatures, nil)
	upstream.MulVec(l.weights.T(), deltas)

	// lr·grad = lr·(deltas ⊗ inputᵀ), same shape as the weight matrix.
	update := mat.NewDense(l.outFeatures, l.inFeatures, nil)
	update.Outer(p.LearningRate, deltas, p.Input)
	l.weights.Sub(l.weights, update)

	return WeightedDeltas{vec: upstream}
}

// Weights returns the layer's weight matrix. The returned matrix is the
// layer's own storage, not a copy.
func (l *Layer) Weights() *mat.Dense {
	return l.weights
}

// Bias returns the layer's bias vector. The returned vector is the layer's
// own storage, not a copy.
func (l *Layer) Bias() *mat.VecDense {
	return l.bias
}

// Activation returns the layer's activation variant.
func (l *Layer) Activation() Activation {
	return l.activation
}

// Loss returns the layer's loss-function variant.
func (l *Layer) Loss() LossFunction {
	return l.loss
}

// InFeatures returns the number of inputs the layer accepts.
func (l *Layer) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the number of outputs the layer produces.
func (l *Layer) OutFeatures() int {
	return l.outFeatures
}
