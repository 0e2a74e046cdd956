package nn

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Xavier creates an [outFeatures, inFeatures] weight matrix initialized
// with the Xavier/Glorot uniform distribution:
// U(-sqrt(6/(fanIn+fanOut)), sqrt(6/(fanIn+fanOut))).
//
// This initialization helps maintain the variance of activations across
// layers.
func Xavier(inFeatures, outFeatures int) *mat.Dense {
	bound := math.Sqrt(6.0 / float64(inFeatures+outFeatures))

	data := make([]float64, outFeatures*inFeatures)
	for i := range data {
		//nolint:gosec // math/rand is fine for weight initialization
		data[i] = (rand.Float64()*2 - 1) * bound
	}
	return mat.NewDense(outFeatures, inFeatures, data)
}

// Zeros creates a zero vector of length n, the conventional bias
// initialization.
func Zeros(n int) *mat.VecDense {
	return mat.NewVecDense(n, nil)
}

// mapVec applies f elementwise over x and returns a new vector.
func mapVec(x *mat.VecDense, f func(float64) float64) *mat.VecDense {
	out := mat.NewVecDense(x.Len(), nil)
	for i := 0; i < x.Len(); i++ {
		out.SetVec(i, f(x.AtVec(i)))
	}
	return out
}
