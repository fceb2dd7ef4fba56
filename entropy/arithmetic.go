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

// 32-bit range quarters, named exactly as in the data model section.
const (
	q1   = uint32(0x40000000)
	half = uint32(0x80000000)
	q3   = uint32(0xC0000000)
)

// ArithmeticEncoder is the order0 profile's 32-bit cumulative-frequency
// coder, with underflow (E3) handling.
type ArithmeticEncoder struct {
	bw        *bitio.Writer
	low, high uint32
	underflow uint32
}

// NewArithmeticEncoder creates an encoder writing to bw.
func NewArithmeticEncoder(bw *bitio.Writer) *ArithmeticEncoder {
	return &ArithmeticEncoder{bw: bw, low: 0, high: 0xFFFFFFFF}
}

// EncodeSymbol narrows [low, high] to the symbol's cumulative-frequency
// band and renormalizes.
func (e *ArithmeticEncoder) EncodeSymbol(symbol int, ft *FrequencyTable) error {
	total := uint64(ft.Total())
	rng := uint64(e.high-e.low) + 1
	cumLow := uint64(ft.Cum(symbol))
	cumHigh := uint64(ft.Cum(symbol + 1))

	e.high = e.low + uint32((rng*cumHigh)/total) - 1
	e.low = e.low + uint32((rng*cumLow)/total)

	return e.renormalize()
}

func (e *ArithmeticEncoder) renormalize() error {
	for {
		switch {
		case e.high < half:
			if err := e.outputBit(0); err != nil {
				return err
			}
		case e.low >= half:
			if err := e.outputBit(1); err != nil {
				return err
			}

			e.low -= half
			e.high -= half
		case e.low >= q1 && e.high < q3:
			e.underflow++
			e.low -= q1
			e.high -= q1
		default:
			return nil
		}

		e.low <<= 1
		e.high = (e.high << 1) | 1
	}
}

func (e *ArithmeticEncoder) outputBit(bit byte) error {
	if err := e.bw.WriteBit(bit); err != nil {
		return err
	}

	opposite := bit ^ 1

	for e.underflow > 0 {
		if err := e.bw.WriteBit(opposite); err != nil {
			return err
		}

		e.underflow--
	}

	return nil
}

// Flush emits the final underflow-resolving bit and pads the bit buffer
// to a byte boundary. Must be called exactly once, after the EOF symbol
// has been encoded.
func (e *ArithmeticEncoder) Flush() error {
	e.underflow++

	if e.low < q1 {
		if err := e.outputBit(0); err != nil {
			return err
		}
	} else {
		if err := e.outputBit(1); err != nil {
			return err
		}
	}

	return e.bw.Flush()
}

// ArithmeticDecoder is the order0 profile's decoder counterpart.
type ArithmeticDecoder struct {
	br              *bitio.Reader
	low, high, code uint32
}

// NewArithmeticDecoder creates a decoder reading from br, priming code
// with the stream's first 4 bytes. A short stream — the flush of a tiny
// input can be well under 4 bytes — pads the remainder with zeros, the
// same trailing-zero convention renormalize uses once the stream runs
// out mid-decode.
func NewArithmeticDecoder(br *bitio.Reader) (*ArithmeticDecoder, error) {
	d := &ArithmeticDecoder{br: br, low: 0, high: 0xFFFFFFFF}

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

// DecodeSymbol recovers the next symbol from cum/total, narrows
// [low, high] identically to the encoder, and renormalizes.
func (d *ArithmeticDecoder) DecodeSymbol(ft *FrequencyTable) (int, error) {
	total := uint64(ft.Total())
	rng := uint64(d.high-d.low) + 1
	value := ((uint64(d.code-d.low)+1)*total - 1) / rng
	symbol := ft.Symbol(uint32(value))

	cumLow := uint64(ft.Cum(symbol))
	cumHigh := uint64(ft.Cum(symbol + 1))
	d.high = d.low + uint32((rng*cumHigh)/total) - 1
	d.low = d.low + uint32((rng*cumLow)/total)

	if err := d.renormalize(); err != nil {
		return 0, err
	}

	return symbol, nil
}

func (d *ArithmeticDecoder) renormalize() error {
	for {
		switch {
		case d.high < half:
			// nothing extra
		case d.low >= half:
			d.code -= half
			d.low -= half
			d.high -= half
		case d.low >= q1 && d.high < q3:
			d.code -= q1
			d.low -= q1
			d.high -= q1
		default:
			return nil
		}

		d.low <<= 1
		d.high = (d.high << 1) | 1

		bit, err := d.br.ReadBit()

		if err != nil {
			if err != io.EOF {
				return err
			}
			// A well-formed stream never needs bits past the flush byte;
			// treat exhaustion as trailing zero padding.
			bit = 0
		}

		d.code = (d.code << 1) | uint32(bit)
	}
}
