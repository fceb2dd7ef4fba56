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
	lru "github.com/hashicorp/golang-lru/v2"
)

// maxBitContextCacheSize caps the LRU behind a BitContextModel, same
// rationale as maxByteContextCacheSize.
const maxBitContextCacheSize = 1 << 18

// bitContextCacheSize returns 2^(order+1) clamped to
// maxBitContextCacheSize: the exclusive upper bound of the keys an
// order-b model produces (its 2^order keys all lie in
// [2^order, 2^(order+1))), or the cap, whichever is smaller.
func bitContextCacheSize(order int) int {
	if order >= 17 {
		return maxBitContextCacheSize
	}

	size := 1 << uint(order+1)

	if size > maxBitContextCacheSize {
		return maxBitContextCacheSize
	}

	return size
}

// BitContextModel is ByteContextModel's bit-granularity counterpart: the
// key is the last b bits seen (bit-packed below a fixed leading 1 at bit
// position b), rather than b whole bytes. Until b bits have been seen the
// cache is not consulted at all.
type BitContextModel struct {
	order int
	bits  uint64 // last `order` bits, low-order-justified
	seen  int
	cache *lru.Cache[uint64, *byteCounters]
}

// NewBitContextModel creates a model keyed on the last `order` bits.
func NewBitContextModel(order int) *BitContextModel {
	cache, err := lru.New[uint64, *byteCounters](bitContextCacheSize(order))

	if err != nil {
		panic(err)
	}

	return &BitContextModel{order: order, cache: cache}
}

// key packs the last `order` bits below a leading 1 marker at bit
// position `order`; every key therefore has the same length.
func (m *BitContextModel) key() uint64 {
	return (uint64(1) << m.order) | m.bits
}

func (m *BitContextModel) lookup() *byteCounters {
	k := m.key()
	c, ok := m.cache.Get(k)

	if !ok {
		c = &byteCounters{}
		m.cache.Add(k, c)
	}

	return c
}

// Predict returns the neutral 0x8000 until `order` bits of history have
// accumulated, else ((c1+1) * 0xFFFF) / (c0+c1+2).
func (m *BitContextModel) Predict() uint16 {
	if m.seen < m.order {
		return 0x8000
	}

	c := m.lookup()
	p := (uint64(c.c1+1) * 0xFFFF) / uint64(c.c0+c.c1+2)
	return clampP1(int32(p))
}

// UpdateBit folds the observed bit into the current context's counters,
// then rolls that bit into the history.
func (m *BitContextModel) UpdateBit(bit byte) {
	if m.seen >= m.order {
		c := m.lookup()

		if bit == 0 {
			c.c0++
		} else {
			c.c1++
		}
	}

	mask := uint64(1)<<m.order - 1
	m.bits = ((m.bits << 1) | uint64(bit)) & mask

	if m.seen < m.order {
		m.seen++
	}
}

// UpdateByte is a no-op: BitContextModel tracks history at bit
// granularity only, with no byte boundary to react to.
func (m *BitContextModel) UpdateByte(byte) {}
