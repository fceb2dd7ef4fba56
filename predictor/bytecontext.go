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

// byteCounters is the (c0, c1) pair a ByteContextModel keeps per history
// key: counts of bits-so-far observed as 0 and as 1 while predicting the
// current byte's remaining bits.
type byteCounters struct {
	c0, c1 uint32
}

// maxByteContextCacheSize caps the LRU behind a ByteContextModel. Below
// the cap, the cache is sized to the order's exact key space (history
// bytes plus the in-progress byte) so it never evicts anything reachable;
// above it, eviction is what keeps a high order's otherwise-unbounded key
// space from growing memory without limit.
const maxByteContextCacheSize = 1 << 18

// byteContextCacheSize returns 256^(order+1) clamped to
// maxByteContextCacheSize: the number of distinct (history, in-progress
// byte) keys an order-k model can produce, or the cap, whichever is
// smaller.
func byteContextCacheSize(order int) int {
	size := 256

	for i := 0; i < order; i++ {
		size *= 256

		if size >= maxByteContextCacheSize {
			return maxByteContextCacheSize
		}
	}

	return size
}

// ByteContextModel predicts the bits of the byte currently being coded
// from the preceding k whole bytes of history: an order-k FIFO byte
// history hashed into a bounded LRU of counter pairs instead of a flat
// array, since k is caller-chosen and unbounded in principle.
type ByteContextModel struct {
	order   int
	history []byte // FIFO of the last `order` completed bytes
	cache   *lru.Cache[uint64, *byteCounters]

	// key and inByteCxt track the in-progress byte: key is the packed
	// history, inByteCxt is the partial current byte (1-prefixed) so a
	// byte context model and a bit context model never collide on key 0.
	key       uint64
	inByteCxt uint32
}

// NewByteContextModel creates an order-k byte context model.
func NewByteContextModel(order int) *ByteContextModel {
	cache, err := lru.New[uint64, *byteCounters](byteContextCacheSize(order))

	if err != nil {
		// Only returns an error for a non-positive size, which
		// byteContextCacheSize never returns.
		panic(err)
	}

	return &ByteContextModel{order: order, cache: cache, inByteCxt: 1}
}

func (m *ByteContextModel) fullKey() uint64 {
	return (m.key << 32) | uint64(m.inByteCxt)
}

func (m *ByteContextModel) lookup() *byteCounters {
	key := m.fullKey()
	c, ok := m.cache.Get(key)

	if !ok {
		c = &byteCounters{}
		m.cache.Add(key, c)
	}

	return c
}

// Predict returns the neutral 0x8000 until `order` bytes of history have
// accumulated, else ((c1+1) * 0xFFFF) / (c0+c1+2).
func (m *ByteContextModel) Predict() uint16 {
	if len(m.history) < m.order {
		return 0x8000
	}

	c := m.lookup()
	p := (uint64(c.c1+1) * 0xFFFF) / uint64(c.c0+c.c1+2)
	return clampP1(int32(p))
}

// UpdateBit folds the observed bit into the current byte's counters and
// advances the in-byte context.
func (m *ByteContextModel) UpdateBit(bit byte) {
	if len(m.history) >= m.order {
		c := m.lookup()

		if bit == 0 {
			c.c0++
		} else {
			c.c1++
		}
	}

	m.inByteCxt = (m.inByteCxt << 1) | uint32(bit)
}

// UpdateByte appends the completed byte to the FIFO history (evicting the
// oldest byte once full), repacks the history key, and resets the
// in-progress byte context for the next byte.
func (m *ByteContextModel) UpdateByte(b byte) {
	m.history = append(m.history, b)

	if len(m.history) > m.order {
		m.history = m.history[len(m.history)-m.order:]
	}

	var key uint64

	for _, hb := range m.history {
		key = (key << 8) | uint64(hb)
	}

	m.key = key
	m.inByteCxt = 1
}
