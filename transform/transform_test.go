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

package transform

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBWTRoundTripBanana(t *testing.T) {
	s := []byte("banana")
	res := Forward(s)
	got := Inverse(res.L, res.Primary)
	require.Equal(t, s, got)
}

func TestBWTEmptyBlock(t *testing.T) {
	res := Forward(nil)
	require.Empty(t, res.L)
	require.Equal(t, 0, res.Primary)
	require.Empty(t, Inverse(res.L, res.Primary))
}

func TestBWTRoundTripVariousInputs(t *testing.T) {
	inputs := [][]byte{
		[]byte("a"),
		[]byte("aaaaaaaaaa"),
		[]byte("abcabcabcabc"),
		[]byte("the quick brown fox jumps over the lazy dog"),
		{0, 1, 2, 3, 4, 5, 255, 254, 0, 0, 0},
	}

	for _, in := range inputs {
		res := Forward(in)
		got := Inverse(res.L, res.Primary)
		require.Equal(t, in, got)
	}
}

func TestMTFIdentityOnSortedInput(t *testing.T) {
	in := make([]byte, 256)

	for i := range in {
		in[i] = byte(i)
	}

	out := MTFForward(in)
	require.Equal(t, in, out)
}

func TestMTFRoundTrip(t *testing.T) {
	in := []byte("mississippi river mississippi")
	out := MTFForward(in)
	back := MTFInverse(out)
	require.Equal(t, in, back)
}

func TestRLE0ZeroRunSplitting(t *testing.T) {
	in := make([]byte, 1024)
	out := RLE0Forward(in)
	want := []byte{0, 255, 0, 255, 0, 255, 0, 255, 0, 4}
	require.Equal(t, want, out)
}

func TestRLE0RoundTrip(t *testing.T) {
	inputs := [][]byte{
		{},
		{1, 2, 3},
		{0},
		{0, 0, 0, 0, 0},
		{1, 0, 0, 2, 0, 3},
		make([]byte, 600),
	}

	for _, in := range inputs {
		enc := RLE0Forward(in)
		dec, err := RLE0Inverse(enc)
		require.NoError(t, err)
		require.Equal(t, in, dec)
	}
}

func TestRLE0TruncatedPacketErrors(t *testing.T) {
	_, err := RLE0Inverse([]byte{1, 2, 0})
	require.Error(t, err)
}
