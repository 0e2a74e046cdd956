// Copyright 2026 The Synapse Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"gonum.org/v1/gonum/mat"

	"github.com/synapse-ml/synapse/internal/nn"
)

// Layer is a single fully connected layer: activation(W·x + b).
type Layer = nn.Layer

// NewLayer creates a Layer with Xavier-initialized weights and a zero
// bias.
//
// Example:
//
//	layer := nn.NewLayer(2, 1, nn.Sigmoid, nn.SquaredError)
func NewLayer(inFeatures, outFeatures int, activation Activation, loss LossFunction) *Layer {
	return nn.NewLayer(inFeatures, outFeatures, activation, loss)
}

// NewLayerFrom creates a Layer from explicit weights and bias. The weight
// matrix must be [outFeatures, inFeatures] and the bias length must equal
// outFeatures.
func NewLayerFrom(weights *mat.Dense, bias *mat.VecDense, activation Activation, loss LossFunction) (*Layer, error) {
	return nn.NewLayerFrom(weights, bias, activation, loss)
}

// Activations

// Activation is the layer's elementwise nonlinearity variant.
type Activation = nn.Activation

const (
	// Sigmoid squashes values to (0, 1).
	Sigmoid = nn.Sigmoid
	// RectifiedLinearUnit clamps negative values to zero.
	RectifiedLinearUnit = nn.RectifiedLinearUnit
	// Softplus is a smooth, strictly positive approximation of ReLU.
	Softplus = nn.Softplus
)

// Loss functions

// LossFunction measures the discrepancy between a desired and an actual
// output at the network's terminal layer.
type LossFunction = nn.LossFunction

const (
	// SquaredError is the halved elementwise squared difference.
	SquaredError = nn.SquaredError
	// CrossEntropy is reserved and unimplemented; invoking it panics.
	CrossEntropy = nn.CrossEntropy
)

// Backward-pass types

// Propagation is the per-call record handed to Layer.Backpropagate.
type Propagation = nn.Propagation

// Adjustment selects the error source of a backward step: a desired
// target (terminal layer) or the next layer's deltas (hidden layer).
type Adjustment = nn.Adjustment

// WeightedDeltas is the gradient signal a layer hands to the previous
// layer during the backward pass.
type WeightedDeltas = nn.WeightedDeltas

// Target returns an Adjustment toward a desired output vector.
func Target(t *mat.VecDense) Adjustment {
	return nn.Target(t)
}

// Deltas returns an Adjustment from the gradient signal of the next layer.
func Deltas(d WeightedDeltas) Adjustment {
	return nn.Deltas(d)
}

// Initialization

// Xavier creates an [outFeatures, inFeatures] weight matrix initialized
// with the Xavier/Glorot uniform distribution.
func Xavier(inFeatures, outFeatures int) *mat.Dense {
	return nn.Xavier(inFeatures, outFeatures)
}

// Zeros creates a zero vector of length n.
func Zeros(n int) *mat.VecDense {
	return nn.Zeros(n)
}
