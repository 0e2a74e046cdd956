// Copyright 2026 The Synapse Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/synapse-ml/synapse/model"
	"github.com/synapse-ml/synapse/nn"
)

// TestLayerThroughFacade runs the reference scenario end to end through
// the public API: forward value, then convergence toward a target.
func TestLayerThroughFacade(t *testing.T) {
	layer, err := nn.NewLayerFrom(
		mat.NewDense(1, 2, []float64{1.0, 2.0}),
		mat.NewVecDense(1, []float64{0.0}),
		nn.Sigmoid,
		nn.SquaredError,
	)
	require.NoError(t, err)

	input := mat.NewVecDense(2, []float64{0.4, -0.1})
	target := mat.NewVecDense(1, []float64{0.3})

	output := layer.Propagate(input)
	assert.InDelta(t, 0.5498, output.AtVec(0), 1e-3)

	for i := 0; i < 1000; i++ {
		out := layer.Propagate(input)
		layer.Backpropagate(&nn.Propagation{
			Input:        input,
			Output:       out,
			Adjustment:   nn.Target(target),
			LearningRate: 1.0,
		})
	}
	assert.InDelta(t, 0.3, layer.Propagate(input).AtVec(0), 1e-3)
}

// TestLayerSatisfiesTransform verifies *nn.Layer plugs into the model
// pipeline as a Transform.
func TestLayerSatisfiesTransform(t *testing.T) {
	var _ model.Transform = nn.NewLayer(2, 1, nn.Sigmoid, nn.SquaredError)

	m := model.Sequential(
		nn.NewLayer(2, 3, nn.Sigmoid, nn.SquaredError),
		nn.NewLayer(3, 1, nn.Sigmoid, nn.SquaredError),
	)

	input := mat.NewVecDense(2, []float64{0.4, -0.1})
	output := m.Forward(input)
	require.Equal(t, 1, output.Len())

	m.Step(input, mat.NewVecDense(1, []float64{0.3}), 0.5)
}
