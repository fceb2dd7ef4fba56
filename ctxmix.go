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

package fcc

import (
	"io"

	"github.com/rata5/File-Compressor/bitio"
	"github.com/rata5/File-Compressor/container"
	"github.com/rata5/File-Compressor/entropy"
)

// compressCtxmix writes the ctxmix archive: an originalSize header
// followed by a single range-coded pass over the whole input, driven by
// the mixed order-1/order-2/bit-context/match-model predictor.
func compressCtxmix(out io.Writer, data []byte) error {
	if err := container.WriteHeader(out, container.MagicCtxmix, uint64(len(data))); err != nil {
		return errIO("Cannot open output", err)
	}

	bw := bitio.NewWriter(out)
	enc := entropy.NewRangeEncoder(bw)
	mix := newCtxmixPredictor()

	for _, b := range data {
		if err := encodeByteBits(enc, mix, b); err != nil {
			return errIO("Cannot open output", err)
		}
	}

	if err := enc.Finish(); err != nil {
		return errIO("Cannot open output", err)
	}

	return nil
}

// decompressCtxmix is compressCtxmix's exact counterpart: it decodes
// exactly originalSize bytes, relying on the header's length rather than
// an in-band EOF symbol.
func decompressCtxmix(r io.Reader, out io.Writer) error {
	originalSize, err := container.ReadHeader(r, container.MagicCtxmix)

	if err != nil {
		return mapContainerErr(err)
	}

	br := bitio.NewReader(r)

	dec, err := entropy.NewRangeDecoder(br)

	if err != nil {
		return errFormat("Unexpected EOF", err)
	}

	mix := newCtxmixPredictor()

	for i := uint64(0); i < originalSize; i++ {
		b, err := decodeByteBits(dec, mix)

		if err != nil {
			return errFormat("Unexpected EOF", err)
		}

		if _, err := out.Write([]byte{b}); err != nil {
			return errIO("Cannot open output", err)
		}
	}

	return nil
}

func mapContainerErr(err error) error {
	switch {
	case err == container.ErrInvalidFormat:
		return errFormat("Invalid file format", err)
	case err == container.ErrUnsupportedVersion:
		return errFormat("Unsupported version", err)
	case err == container.ErrUnexpectedEOF:
		return errFormat("Unexpected EOF", err)
	default:
		return errIO("Cannot open input", err)
	}
}
