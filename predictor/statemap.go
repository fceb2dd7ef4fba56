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

// StateMap is the lightweight scalar bit predictor used where no mixer is
// wanted: a 512-entry table of probabilities, indexed by a 9-bit rolling
// context of the last bits seen, each entry nudged a fraction of the way
// toward the observed bit on every update.
type StateMap struct {
	table [512]uint32
	cxt   uint32
}

// NewStateMap creates a state map with every entry at the neutral
// probability (0.5 on the 16-bit scale, left-shifted into the internal
// 20-bit accumulator the update rule operates on).
func NewStateMap() *StateMap {
	sm := &StateMap{}

	for i := range sm.table {
		sm.table[i] = 1 << 19
	}

	return sm
}

// Predict returns table[cxt] >> 4, a 16-bit probability derived from the
// internal 20-bit accumulator.
func (sm *StateMap) Predict() uint16 {
	return clampP1(int32(sm.table[sm.cxt] >> 4))
}

// UpdateBit nudges the current context's accumulator toward the 20-bit
// rail matching bit (0 or 1<<20) by a 1/32 step and rolls the context
// forward. The rail is shifted by 4 relative to Predict's bit<<16 output
// scale since table is a 20-bit accumulator read back via >>4.
func (sm *StateMap) UpdateBit(bit byte) {
	target := uint32(bit) << 20
	cur := sm.table[sm.cxt]

	if target > cur {
		sm.table[sm.cxt] = cur + ((target - cur) >> 5)
	} else {
		sm.table[sm.cxt] = cur - ((cur - target) >> 5)
	}

	sm.cxt = ((sm.cxt << 1) | uint32(bit)) & 0x1FF
}

// UpdateByte is a no-op: StateMap is a pure bit model with no byte-level
// context to refresh.
func (sm *StateMap) UpdateByte(byte) {}
