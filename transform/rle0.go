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

import "fmt"

// RLE0Forward emits non-zero bytes verbatim and replaces each maximal run
// of r>=1 zero bytes with [0x00, min(r,255)] packets, splitting runs
// longer than 255 into consecutive full-length packets plus a remainder.
func RLE0Forward(in []byte) []byte {
	out := make([]byte, 0, len(in))
	i := 0

	for i < len(in) {
		if in[i] != 0 {
			out = append(out, in[i])
			i++
			continue
		}

		run := 0

		for i < len(in) && in[i] == 0 && run < 255 {
			run++
			i++
		}

		out = append(out, 0x00, byte(run))
	}

	return out
}

// RLE0Inverse is RLE0Forward's exact inverse. A 0x00 byte not followed by
// a count byte is a malformed stream.
func RLE0Inverse(in []byte) ([]byte, error) {
	out := make([]byte, 0, len(in))
	i := 0

	for i < len(in) {
		if in[i] != 0 {
			out = append(out, in[i])
			i++
			continue
		}

		if i+1 >= len(in) {
			return nil, fmt.Errorf("transform: truncated RLE0 zero-run packet at offset %d", i)
		}

		run := int(in[i+1])

		for j := 0; j < run; j++ {
			out = append(out, 0)
		}

		i += 2
	}

	return out, nil
}
