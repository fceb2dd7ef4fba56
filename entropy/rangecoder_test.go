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

package entropy

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/rata5/File-Compressor/bitio"
	"github.com/stretchr/testify/require"
)

func TestRangeCoderRoundTripFixedProbability(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	bits := make([]byte, 5000)

	for i := range bits {
		if rnd.Intn(10) < 7 {
			bits[i] = 1
		}
	}

	var buf bytes.Buffer
	bw := bitio.NewWriter(&buf)
	enc := NewRangeEncoder(bw)

	for _, b := range bits {
		require.NoError(t, enc.EncodeBit(b, 45000))
	}

	require.NoError(t, enc.Finish())

	br := bitio.NewReader(&buf)
	dec, err := NewRangeDecoder(br)
	require.NoError(t, err)

	for i, want := range bits {
		got, err := dec.DecodeBit(45000)
		require.NoError(t, err)
		require.Equalf(t, want, got, "bit %d", i)
	}
}

func TestRangeCoderRoundTripAdaptiveProbability(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	bits := make([]byte, 3000)

	for i := range bits {
		bits[i] = byte(rnd.Intn(2))
	}

	encode := func(p []uint16) []byte {
		var buf bytes.Buffer
		bw := bitio.NewWriter(&buf)
		enc := NewRangeEncoder(bw)

		for i, b := range bits {
			require.NoError(t, enc.EncodeBit(b, p[i]))
		}

		require.NoError(t, enc.Finish())
		return buf.Bytes()
	}

	probs := make([]uint16, len(bits))
	p := uint16(32768)

	for i, b := range bits {
		probs[i] = p

		if b == 1 {
			p += (65535 - p) >> 5
		} else {
			p -= p >> 5
		}

		if p < 1 {
			p = 1
		} else if p > 65534 {
			p = 65534
		}
	}

	encoded := encode(probs)

	br := bitio.NewReader(bytes.NewReader(encoded))
	dec, err := NewRangeDecoder(br)
	require.NoError(t, err)

	p = 32768

	for i, want := range bits {
		got, err := dec.DecodeBit(p)
		require.NoError(t, err)
		require.Equalf(t, want, got, "bit %d", i)

		if got == 1 {
			p += (65535 - p) >> 5
		} else {
			p -= p >> 5
		}

		if p < 1 {
			p = 1
		} else if p > 65534 {
			p = 65534
		}
	}
}
