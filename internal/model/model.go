// Package model implements the sequential composition of layers: an
// ordered pipeline whose forward pass folds Propagate left to right and
// whose backward pass folds Backpropagate right to left, threading the
// gradient signal between adjacent layers.
package model

import (
	"fmt"

	"github.com/synapse-ml/synapse/internal/nn"
	"gonum.org/v1/gonum/mat"
)

// Transform is one step of a model pipeline. *nn.Layer is the only
// implementation provided by this library, but anything that honors the
// layer's propagation contract can take part in a pipeline.
type Transform interface {
	// Propagate computes the transform's output for an input vector.
	Propagate(x *mat.VecDense) *mat.VecDense

	// Backpropagate consumes one forward pass's record, updates the
	// transform in place, and returns the gradient signal for the
	// preceding transform.
	Backpropagate(p *nn.Propagation) nn.WeightedDeltas
}

// Stage is an ordered run of transforms executed in sequence.
type Stage struct {
	transforms []Transform
}

// NewStage creates a Stage from an ordered list of transforms.
func NewStage(transforms ...Transform) *Stage {
	return &Stage{transforms: transforms}
}

// Add appends a transform to the stage.
func (s *Stage) Add(t Transform) {
	s.transforms = append(s.transforms, t)
}

// Len returns the number of transforms in the stage.
func (s *Stage) Len() int {
	return len(s.transforms)
}

// Model is an ordered sequence of stages. It owns its layers exclusively;
// layers never reference each other, and all chaining happens through the
// WeightedDeltas signal the model threads during Step.
//
// Like Layer, a Model is not safe for concurrent use.
type Model struct {
	stages []*Stage
}

// New creates a Model from an ordered list of stages.
func New(stages ...*Stage) *Model {
	return &Model{stages: stages}
}

// Sequential creates a single-stage Model from an ordered list of
// transforms, the common case:
//
//	m := model.Sequential(
//	    nn.NewLayer(2, 3, nn.Sigmoid, nn.SquaredError),
//	    nn.NewLayer(3, 1, nn.Sigmoid, nn.SquaredError),
//	)
func Sequential(transforms ...Transform) *Model {
	return &Model{stages: []*Stage{NewStage(transforms...)}}
}

// Add appends a stage to the model.
func (m *Model) Add(s *Stage) {
	m.stages = append(m.stages, s)
}

// Len returns the total number of transforms across all stages.
func (m *Model) Len() int {
	n := 0
	for _, s := range m.stages {
		n += len(s.transforms)
	}
	return n
}

// flatten returns the model's transforms in execution order.
func (m *Model) flatten() []Transform {
	ts := make([]Transform, 0, m.Len())
	for _, s := range m.stages {
		ts = append(ts, s.transforms...)
	}
	return ts
}

// Forward folds Propagate over the pipeline left to right: each
// transform's output becomes the next transform's input. Returns the final
// output. Panics if the model is empty.
func (m *Model) Forward(x *mat.VecDense) *mat.VecDense {
	ts := m.flatten()
	if len(ts) == 0 {
		panic("Model.Forward: model has no transforms")
	}
	out := x
	for _, t := range ts {
		out = t.Propagate(out)
	}
	return out
}

// Step runs one full training step on a single sample: a forward pass
// recording every transform's input and output, then a backward pass right
// to left. The terminal transform receives the desired target; every
// earlier transform receives the deltas returned by its successor.
//
// Returns the model's output for the sample from before the update, so
// callers can track training progress without a second forward pass.
func (m *Model) Step(input, target *mat.VecDense, learningRate float64) *mat.VecDense {
	if learningRate <= 0 {
		panic(fmt.Sprintf("Model.Step: learning rate must be positive, got %g", learningRate))
	}
	ts := m.flatten()
	if len(ts) == 0 {
		panic("Model.Step: model has no transforms")
	}

	inputs := make([]*mat.VecDense, len(ts))
	outputs := make([]*mat.VecDense, len(ts))
	x := input
	for i, t := range ts {
		inputs[i] = x
		x = t.Propagate(x)
		outputs[i] = x
	}

	adjustment := nn.Target(target)
	for i := len(ts) - 1; i >= 0; i-- {
		deltas := ts[i].Backpropagate(&nn.Propagation{
			Input:        inputs[i],
			Output:       outputs[i],
			Adjustment:   adjustment,
			LearningRate: learningRate,
		})
		adjustment = nn.Deltas(deltas)
	}

	return outputs[len(ts)-1]
}

// TrainConfig configures Train.
type TrainConfig struct {
	LearningRate float64 // step size for every weight update (default: 0.01)
	Epochs       int     // number of passes over the sample set (default: 1)
}

// Train repeatedly steps the model over a sample set. inputs and targets
// are parallel slices; each epoch visits the samples in order.
//
// Returns an error if the slices are empty or their lengths differ. This
// is a convenience for small in-process training loops; anything beyond
// strict sequential single-sample descent is out of scope.
func (m *Model) Train(inputs, targets []*mat.VecDense, config TrainConfig) error {
	if len(inputs) == 0 {
		return fmt.Errorf("no training samples")
	}
	if len(inputs) != len(targets) {
		return fmt.Errorf("sample count mismatch: %d inputs, %d targets", len(inputs), len(targets))
	}
	if config.LearningRate == 0 {
		config.LearningRate = 0.01
	}
	if config.Epochs == 0 {
		config.Epochs = 1
	}

	for epoch := 0; epoch < config.Epochs; epoch++ {
		for i := range inputs {
			m.Step(inputs[i], targets[i], config.LearningRate)
		}
	}
	return nil
}
