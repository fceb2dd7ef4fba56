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

package bitio

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitRoundTripSingleBits(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	rnd := rand.New(rand.NewSource(1))
	bits := make([]byte, 1000)

	for i := range bits {
		bits[i] = byte(rnd.Intn(2))
		require.NoError(t, w.WriteBit(bits[i]))
	}

	require.NoError(t, w.Close())

	r := NewReader(&buf)

	for i, want := range bits {
		got, err := r.ReadBit()
		require.NoError(t, err)
		require.Equalf(t, want, got, "bit %d", i)
	}
}

func TestBitRoundTripFields(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	values := []struct {
		v uint32
		n uint
	}{
		{0, 1}, {1, 1}, {0xFF, 8}, {0x1234, 16}, {0xFFFFFFFF, 32}, {5, 3},
	}

	for _, f := range values {
		require.NoError(t, w.WriteBits(f.v, f.n))
	}

	require.NoError(t, w.Close())

	r := NewReader(&buf)

	for _, f := range values {
		got, err := r.ReadBits(f.n)
		require.NoError(t, err)
		require.Equal(t, f.v&((1<<f.n)-1), got)
	}
}

func TestWriteByteRequiresAlignment(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteBit(1))
	require.Error(t, w.WriteByte(0xAA))
}

func TestFlushPadsWithZeros(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteBits(0x5, 3)) // 101
	require.NoError(t, w.Close())
	require.Equal(t, []byte{0b10100000}, buf.Bytes())
}
