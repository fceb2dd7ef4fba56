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

// Package predictor implements the bit-prediction models the ctxmix and
// bwt profiles mix together: a scalar state-table predictor, byte- and
// bit-context models, a match model, and the mixer that fuses them.
// Every model predicts and updates on a common 16-bit probability-of-1
// scale, so any of them can be mixed or swapped in for another.
package predictor

// Predictor is the contract every model in this package satisfies. The
// canonical call order, on both the encoder and the decoder, is:
// Predict, code the bit, UpdateBit, and — once every 8 bits — UpdateByte.
// Deviating from that order on either side desynchronizes the stream.
type Predictor interface {
	// Predict returns the probability of the next bit being 1, on a
	// 16-bit scale clamped to [1, 65534].
	Predict() uint16
	// UpdateBit revises internal statistics once the true bit is known.
	UpdateBit(bit byte)
	// UpdateByte revises context once a full byte has completed.
	UpdateByte(b byte)
}

func clampP1(p int32) uint16 {
	if p < 1 {
		return 1
	}

	if p > 65534 {
		return 65534
	}

	return uint16(p)
}
