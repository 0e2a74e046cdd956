// Copyright 2026 The Synapse Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package model provides the sequential composition of layers: forward
// passes fold Propagate left to right, backward passes fold Backpropagate
// right to left, threading the gradient signal between adjacent layers.
//
// Example:
//
//	m := model.Sequential(
//	    nn.NewLayer(2, 3, nn.Sigmoid, nn.SquaredError),
//	    nn.NewLayer(3, 1, nn.Sigmoid, nn.SquaredError),
//	)
//
//	output := m.Forward(input)
//	m.Step(input, target, 1.0)
package model

import (
	"github.com/synapse-ml/synapse/internal/model"
)

// Transform is one step of a model pipeline; *nn.Layer satisfies it.
type Transform = model.Transform

// Stage is an ordered run of transforms executed in sequence.
type Stage = model.Stage

// Model is an ordered sequence of stages of transforms.
type Model = model.Model

// TrainConfig configures Model.Train.
type TrainConfig = model.TrainConfig

// New creates a Model from an ordered list of stages.
func New(stages ...*Stage) *Model {
	return model.New(stages...)
}

// NewStage creates a Stage from an ordered list of transforms.
func NewStage(transforms ...Transform) *Stage {
	return model.NewStage(transforms...)
}

// Sequential creates a single-stage Model from an ordered list of
// transforms.
func Sequential(transforms ...Transform) *Model {
	return model.Sequential(transforms...)
}
