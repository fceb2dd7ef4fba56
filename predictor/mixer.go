/*
Copyright 2026 File-Compressor Authors
Licensed under the Apache License, Version 2.0 (the "License")
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package predictor

// defaultLearningRate is the mixer's online gradient step.
const defaultLearningRate = 0.005

const (
	minWeight = 0.1
	maxWeight = 10.0
)

// Mixer fuses a fixed set of predictors into one probability-of-1 by
// weighted mean, and folds the observed bit back into every predictor's
// weight by the delta rule. It satisfies Predictor itself, so a mixer can
// sit at the top of a pipeline exactly like any single model.
//
// Holds its predictors directly in a slice: Go interface values are
// already safe to share and store by value, so there's no need for the
// arena-plus-index indirection a single-ownership language would reach
// for here.
type Mixer struct {
	predictors []Predictor
	weights    []float64
	lr         float64

	lastMix  float64
	lastPred []float64
}

// NewMixer creates a mixer over the given predictors, every weight
// initialized to 1.0: the neutral starting point the delta-rule update
// already pulls away from the moment a sub-predictor's first prediction
// errs, rather than guessing at an untested tie-break heuristic.
func NewMixer(predictors []Predictor) *Mixer {
	weights := make([]float64, len(predictors))

	for i := range weights {
		weights[i] = 1.0
	}

	return &Mixer{
		predictors: predictors,
		weights:    weights,
		lr:         defaultLearningRate,
		lastPred:   make([]float64, len(predictors)),
	}
}

// Predict computes the weighted-mean probability over every sub-predictor
// and caches the inputs UpdateBit needs.
func (mx *Mixer) Predict() uint16 {
	var wsum, psum float64

	for i, p := range mx.predictors {
		pi := float64(p.Predict()) / 65535.0
		mx.lastPred[i] = pi
		wsum += mx.weights[i]
		psum += mx.weights[i] * pi
	}

	mx.lastMix = psum / wsum
	return clampP1(int32(mx.lastMix*65535.0 + 0.5))
}

// UpdateBit applies the delta-rule weight update, clamped to
// [0.1, 10.0], then forwards the bit to every sub-predictor.
func (mx *Mixer) UpdateBit(bit byte) {
	y := float64(bit)

	for i, w := range mx.weights {
		w += mx.lr * (y - mx.lastMix) * (mx.lastPred[i] - mx.lastMix)

		if w < minWeight {
			w = minWeight
		} else if w > maxWeight {
			w = maxWeight
		}

		mx.weights[i] = w
	}

	for _, p := range mx.predictors {
		p.UpdateBit(bit)
	}
}

// UpdateByte forwards the completed byte to every sub-predictor.
func (mx *Mixer) UpdateByte(b byte) {
	for _, p := range mx.predictors {
		p.UpdateByte(b)
	}
}
