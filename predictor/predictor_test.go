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

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStateMapLearnsBiasedBit(t *testing.T) {
	sm := NewStateMap()

	for i := 0; i < 4000; i++ {
		sm.UpdateBit(1)
	}

	require.Greater(t, sm.Predict(), uint16(40000))
}

func TestByteContextModelNeutralBeforeHistory(t *testing.T) {
	m := NewByteContextModel(1)
	require.Equal(t, uint16(0x8000), m.Predict())
}

func TestByteContextModelLearnsRepeatedByte(t *testing.T) {
	m := NewByteContextModel(1)

	feed := func(b byte) {
		for i := 7; i >= 0; i-- {
			bit := (b >> uint(i)) & 1
			m.Predict()
			m.UpdateBit(bit)
		}

		m.UpdateByte(b)
	}

	for i := 0; i < 200; i++ {
		feed(0xAA)
	}

	// After many repetitions of the same byte, predicting the high bit of
	// the next 0xAA (1) should lean well above neutral.
	p := m.Predict()
	require.Greater(t, p, uint16(0x8000))
}

func TestBitContextModelNeutralBeforeHistory(t *testing.T) {
	m := NewBitContextModel(4)
	require.Equal(t, uint16(0x8000), m.Predict())
}

func TestBitContextModelLearnsPattern(t *testing.T) {
	m := NewBitContextModel(3)
	pattern := []byte{1, 1, 0, 1, 1, 0, 1, 1, 0}

	for rep := 0; rep < 100; rep++ {
		for _, b := range pattern {
			m.Predict()
			m.UpdateBit(b)
		}
	}

	// Context "110" always preceded the next "1" in the training pattern.
	p := m.Predict()
	require.Greater(t, p, uint16(0x8000))
}

func TestMatchModelFindsRepeat(t *testing.T) {
	m := NewMatchModel()
	data := []byte("the quick brown fox the quick brown fox")

	feedByte := func(b byte) {
		for i := 7; i >= 0; i-- {
			bit := (b >> uint(i)) & 1
			m.Predict()
			m.UpdateBit(bit)
		}

		m.UpdateByte(b)
	}

	for _, b := range data {
		feedByte(byte(b))
	}

	require.GreaterOrEqual(t, m.matchLen, 1)
}

func TestMixerWeightsStayWithinBounds(t *testing.T) {
	a := NewStateMap()
	b := NewStateMap()
	mx := NewMixer([]Predictor{a, b})

	rnd := rand.New(rand.NewSource(3))

	for i := 0; i < 2000; i++ {
		bit := byte(rnd.Intn(2))
		mx.Predict()
		mx.UpdateBit(bit)
		mx.UpdateByte(0)
	}

	for _, w := range mx.weights {
		require.GreaterOrEqual(t, w, minWeight)
		require.LessOrEqual(t, w, maxWeight)
	}
}

func TestMixerPredictClamped(t *testing.T) {
	mx := NewMixer([]Predictor{NewStateMap()})
	p := mx.Predict()
	require.GreaterOrEqual(t, p, uint16(1))
	require.LessOrEqual(t, p, uint16(65534))
}
