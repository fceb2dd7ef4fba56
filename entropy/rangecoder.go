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
	"io"

	"github.com/rata5/File-Compressor/bitio"
)

// RangeEncoder is the binary, probability-of-1 coder used by the ctxmix
// and bwt profiles: 32-bit low/high plus an explicit follow counter for
// carry propagation.
type RangeEncoder struct {
	bw        *bitio.Writer
	low, high uint32
	follow    uint32
}

// NewRangeEncoder creates an encoder writing to bw.
func NewRangeEncoder(bw *bitio.Writer) *RangeEncoder {
	return &RangeEncoder{bw: bw, low: 0, high: 0xFFFFFFFF}
}

// EncodeBit narrows [low, high] to the sub-range selected by bit under
// probability-of-1 p1 and renormalizes.
func (e *RangeEncoder) EncodeBit(bit byte, p1 uint16) error {
	rng := uint64(e.high-e.low) + 1
	bound := e.low + uint32((rng*uint64(0xFFFF-p1))>>16)

	if bit == 1 {
		e.low = bound + 1
	} else {
		e.high = bound
	}

	return e.renormalize()
}

// renormalize applies E1 and E3 in a single loop, since either can put
// the interval into a state where the other newly applies (an E3 rotate
// can bring the top bytes of low and high into agreement, and an E1
// shift can newly straddle Half).
func (e *RangeEncoder) renormalize() error {
	for {
		switch {
		case (e.low^e.high)&0xFF000000 == 0:
			if err := e.emit(byte(e.high >> 24)); err != nil {
				return err
			}

			e.low <<= 8
			e.high = (e.high << 8) | 0xFF
		case e.low&half != 0 && e.high&half == 0:
			e.follow++
			e.low = (e.low << 1) & 0x7FFFFFFF
			e.high = ((e.high ^ half) << 1) | 1
		default:
			return nil
		}
	}
}

func (e *RangeEncoder) emit(b byte) error {
	if err := e.bw.WriteByte(b); err != nil {
		return err
	}

	complement := ^b

	for e.follow > 0 {
		if err := e.bw.WriteByte(complement); err != nil {
			return err
		}

		e.follow--
	}

	return nil
}

// Finish flushes the final 4 bytes of low, most significant first, and
// byte-aligns the underlying bit buffer.
func (e *RangeEncoder) Finish() error {
	for i := 0; i < 4; i++ {
		if err := e.emit(byte(e.low >> 24)); err != nil {
			return err
		}

		e.low <<= 8
	}

	return e.bw.Flush()
}

// RangeDecoder is the RangeEncoder's counterpart.
type RangeDecoder struct {
	br              *bitio.Reader
	low, high, code uint32
}

// NewRangeDecoder creates a decoder reading from br, priming code with
// the stream's first 4 bytes. A short stream pads the remainder with
// zeros, the same trailing-zero convention renormalize uses once the
// stream runs out mid-decode.
func NewRangeDecoder(br *bitio.Reader) (*RangeDecoder, error) {
	d := &RangeDecoder{br: br, low: 0, high: 0xFFFFFFFF}

	for i := 0; i < 4; i++ {
		b, err := br.ReadByte()

		if err != nil {
			if err != io.EOF {
				return nil, err
			}

			b = 0
		}

		d.code = (d.code << 8) | uint32(b)
	}

	return d, nil
}

// DecodeBit recovers the next bit given probability-of-1 p1 and
// renormalizes identically to the encoder.
func (d *RangeDecoder) DecodeBit(p1 uint16) (byte, error) {
	rng := uint64(d.high-d.low) + 1
	bound := d.low + uint32((rng*uint64(0xFFFF-p1))>>16)

	var bit byte

	if d.code > bound {
		bit = 1
		d.low = bound + 1
	} else {
		bit = 0
		d.high = bound
	}

	if err := d.renormalize(); err != nil {
		return 0, err
	}

	return bit, nil
}

// renormalize mirrors the encoder's E1 byte shift and E3 bit rotate.
// Once a stream has gone through an E3 rotate it is no longer
// byte-aligned from the bitio.Reader's point of view, so every further
// input consumption — including E1's whole-byte shift — goes through
// ReadBits instead of ReadByte.
func (d *RangeDecoder) renormalize() error {
	for {
		switch {
		case (d.low^d.high)&0xFF000000 == 0:
			d.low <<= 8
			d.high = (d.high << 8) | 0xFF

			b, err := d.readBits(8)

			if err != nil {
				return err
			}

			d.code = (d.code << 8) | b
		case d.low&half != 0 && d.high&half == 0:
			d.low = (d.low << 1) & 0x7FFFFFFF
			d.high = ((d.high ^ half) << 1) | 1

			bit, err := d.readBits(1)

			if err != nil {
				return err
			}

			d.code = ((d.code << 1) & 0x7FFFFFFF) | bit
		default:
			return nil
		}
	}
}

// readBits reads n bits, treating exhaustion of the underlying stream as
// trailing zero padding: a well-formed stream never needs bits past its
// final flush byte.
func (d *RangeDecoder) readBits(n uint) (uint32, error) {
	v, err := d.br.ReadBits(n)

	if err != nil {
		if err != io.EOF {
			return 0, err
		}

		return 0, nil
	}

	return v, nil
}
