// Copyright 2026 The Synapse Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the trainable feed-forward layer and its policies.
//
// # Overview
//
// This package contains:
//   - Layer: affine transform + nonlinearity with forward and backward
//     propagation and in-place gradient-descent weight updates
//   - Activations: Sigmoid, RectifiedLinearUnit, Softplus
//   - Loss functions: SquaredError (CrossEntropy is reserved)
//   - Propagation, Adjustment, WeightedDeltas: the backward-pass record
//     and the gradient signal threaded between layers
//
// # Basic Usage
//
//	import (
//	    "gonum.org/v1/gonum/mat"
//
//	    "github.com/synapse-ml/synapse/nn"
//	)
//
//	func main() {
//	    layer := nn.NewLayer(2, 1, nn.Sigmoid, nn.SquaredError)
//
//	    input := mat.NewVecDense(2, []float64{0.4, -0.1})
//	    output := layer.Propagate(input)
//
//	    layer.Backpropagate(&nn.Propagation{
//	        Input:        input,
//	        Output:       output,
//	        Adjustment:   nn.Target(mat.NewVecDense(1, []float64{0.3})),
//	        LearningRate: 1.0,
//	    })
//	}
//
// A hidden layer of a multi-layer network is driven the same way, except
// its Adjustment wraps the WeightedDeltas returned by the next layer:
//
//	deltas := terminal.Backpropagate(record)
//	hidden.Backpropagate(&nn.Propagation{
//	    Input:        x,
//	    Output:       h,
//	    Adjustment:   nn.Deltas(deltas),
//	    LearningRate: 1.0,
//	})
//
// Vector and matrix values are gonum types (*mat.VecDense, *mat.Dense);
// all linear algebra is supplied by gonum.
package nn
