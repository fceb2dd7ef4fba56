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

// MTFForward applies move-to-front: a 256-symbol list starts as
// [0,1,...,255]; each input byte's current list index is emitted, then
// the byte is moved to the front.
func MTFForward(in []byte) []byte {
	var table [256]byte

	for i := range table {
		table[i] = byte(i)
	}

	out := make([]byte, len(in))

	for i, c := range in {
		idx := 0

		for table[idx] != c {
			idx++
		}

		out[i] = byte(idx)

		for j := idx; j > 0; j-- {
			table[j] = table[j-1]
		}

		table[0] = c
	}

	return out
}

// MTFInverse is MTFForward's exact inverse.
func MTFInverse(in []byte) []byte {
	var table [256]byte

	for i := range table {
		table[i] = byte(i)
	}

	out := make([]byte, len(in))

	for i, idx := range in {
		c := table[idx]
		out[i] = c

		for j := int(idx); j > 0; j-- {
			table[j] = table[j-1]
		}

		table[0] = c
	}

	return out
}
