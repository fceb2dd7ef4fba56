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
	"github.com/rata5/File-Compressor/entropy"
	"github.com/rata5/File-Compressor/predictor"
)

// encodeByteBits drives p's predict/updateBit/updateByte contract
// through enc, most significant bit first, for one whole byte — the
// canonical per-byte step both ctxmix/bwt and the legacy paq variant
// share, whether p is a single StateMap or a full Mixer.
func encodeByteBits(enc *entropy.RangeEncoder, p predictor.Predictor, b byte) error {
	for i := 7; i >= 0; i-- {
		bit := (b >> uint(i)) & 1
		p1 := p.Predict()

		if err := enc.EncodeBit(bit, p1); err != nil {
			return err
		}

		p.UpdateBit(bit)
	}

	p.UpdateByte(b)
	return nil
}

// decodeByteBits is encodeByteBits' exact decoder counterpart.
func decodeByteBits(dec *entropy.RangeDecoder, p predictor.Predictor) (byte, error) {
	var b byte

	for i := 0; i < 8; i++ {
		p1 := p.Predict()
		bit, err := dec.DecodeBit(p1)

		if err != nil {
			return 0, err
		}

		p.UpdateBit(bit)
		b = (b << 1) | bit
	}

	p.UpdateByte(b)
	return b, nil
}

// newCtxmixPredictor builds the ctxmix/bwt profiles' shared model: order-1
// and order-2 byte contexts, a 16-bit bit context, and a match model,
// fused by a weighted-mean mixer. A fresh instance is built per call so
// the bwt profile can reset all predictor and mixer state at the start
// of every block, keeping blocks independently decodable from state zero.
func newCtxmixPredictor() *predictor.Mixer {
	return predictor.NewMixer([]predictor.Predictor{
		predictor.NewByteContextModel(1),
		predictor.NewByteContextModel(2),
		predictor.NewBitContextModel(16),
		predictor.NewMatchModel(),
	})
}
