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
	"bytes"
	"errors"
	"io"

	"github.com/rata5/File-Compressor/bitio"
	"github.com/rata5/File-Compressor/container"
	"github.com/rata5/File-Compressor/entropy"
	"github.com/rata5/File-Compressor/transform"
)

// compressBWT writes the bwt archive: an originalSize header followed by
// a sequence of self-describing blocks, each BWT -> MTF -> RLE0 ->
// range-coded independently of the others.
func compressBWT(out io.Writer, data []byte, l Listener) error {
	if err := container.WriteHeader(out, container.MagicBWT, uint64(len(data))); err != nil {
		return errIO("Cannot open output", err)
	}

	block := 0

	for offset := 0; offset < len(data); {
		end := offset + container.BlockSize

		if end > len(data) {
			end = len(data)
		}

		chunk := data[offset:end]
		notifyHash(l, EventBlockStart, block, int64(len(chunk)), container.BlockChecksum(chunk), "block start")

		bwtRes := transform.Forward(chunk)
		mtf := transform.MTFForward(bwtRes.L)
		rle := transform.RLE0Forward(mtf)

		var payload bytes.Buffer
		bw := bitio.NewWriter(&payload)
		enc := entropy.NewRangeEncoder(bw)
		mix := newCtxmixPredictor() // fresh per block, so blocks decode independently

		for _, b := range rle {
			if err := encodeByteBits(enc, mix, b); err != nil {
				return errIO("Cannot open output", err)
			}
		}

		if err := enc.Finish(); err != nil {
			return errIO("Cannot open output", err)
		}

		hdr := container.BlockHeader{
			BlockLen: uint32(len(chunk)),
			Primary:  uint32(bwtRes.Primary),
			RLECount: uint32(len(rle)),
			CompSize: uint32(payload.Len()),
		}

		if err := container.WriteBlockHeader(out, hdr); err != nil {
			return errIO("Cannot open output", err)
		}

		if _, err := out.Write(payload.Bytes()); err != nil {
			return errIO("Cannot open output", err)
		}

		notifyHash(l, EventBlockEnd, block, int64(len(chunk)), container.BlockChecksum(chunk), "block end")
		block++
		offset = end
	}

	return nil
}

// decompressBWT is compressBWT's exact counterpart: it reads blocks
// until a clean end-of-stream, decoding each one independently with a
// fresh predictor/mixer set.
func decompressBWT(r io.Reader, out io.Writer, l Listener) error {
	if _, err := container.ReadHeader(r, container.MagicBWT); err != nil {
		return mapContainerErr(err)
	}

	block := 0

	for {
		hdr, err := container.ReadBlockHeader(r)

		if err == io.EOF {
			return nil
		}

		if err != nil {
			return mapContainerErr(err)
		}

		payload := make([]byte, hdr.CompSize)

		if _, err := io.ReadFull(r, payload); err != nil {
			return errFormat("Unexpected EOF", err)
		}

		br := bitio.NewReader(bytes.NewReader(payload))

		dec, err := entropy.NewRangeDecoder(br)

		if err != nil {
			return errFormat("Unexpected EOF", err)
		}

		mix := newCtxmixPredictor()
		rle := make([]byte, hdr.RLECount)

		for i := range rle {
			b, err := decodeByteBits(dec, mix)

			if err != nil {
				return errFormat("Unexpected EOF", err)
			}

			rle[i] = b
		}

		mtf, err := transform.RLE0Inverse(rle)

		if err != nil {
			return errFormat("Invalid file format", err)
		}

		l0 := transform.MTFInverse(mtf)
		chunk := transform.Inverse(l0, int(hdr.Primary))

		if uint32(len(chunk)) != hdr.BlockLen {
			return errFormat("Invalid file format", errors.New("block length mismatch"))
		}

		if _, err := out.Write(chunk); err != nil {
			return errIO("Cannot open output", err)
		}

		notifyHash(l, EventBlockEnd, block, int64(len(chunk)), container.BlockChecksum(chunk), "block decoded")
		block++
	}
}
