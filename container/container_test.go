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

package container

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeaderRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHeader(&buf, MagicCtxmix, 12345))

	got, err := ReadHeader(&buf, MagicCtxmix)
	require.NoError(t, err)
	require.Equal(t, uint64(12345), got)
}

func TestHeaderRejectsWrongMagic(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHeader(&buf, MagicOrder0, 1))

	_, err := ReadHeader(&buf, MagicBWT)
	require.ErrorIs(t, err, ErrInvalidFormat)
}

func TestHeaderRejectsTruncation(t *testing.T) {
	_, err := ReadHeader(bytes.NewReader([]byte{1, 2, 3}), MagicOrder0)
	require.ErrorIs(t, err, ErrUnexpectedEOF)
}

func TestBlockHeaderRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	h := BlockHeader{BlockLen: 100, Primary: 42, RLECount: 90, CompSize: 30}
	require.NoError(t, WriteBlockHeader(&buf, h))

	got, err := ReadBlockHeader(&buf)
	require.NoError(t, err)
	require.Equal(t, h, got)
}

func TestBlockHeaderEOFAtBoundary(t *testing.T) {
	_, err := ReadBlockHeader(bytes.NewReader(nil))
	require.ErrorIs(t, err, io.EOF)
}
