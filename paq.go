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
	"github.com/rata5/File-Compressor/predictor"
)

// decompressPaq is CompressPaq's counterpart: read the legacy header,
// decode originalSize bytes with a single StateMap predictor, and
// re-prepend the UTF-8 BOM the header says was stripped.
func decompressPaq(r io.Reader, out io.Writer) error {
	originalSize, bom, err := container.ReadPaqHeader(r)

	if err != nil {
		return mapContainerErr(err)
	}

	if bom {
		if _, err := out.Write(utf8BOM); err != nil {
			return errIO("Cannot open output", err)
		}
	}

	br := bitio.NewReader(r)

	dec, err := entropy.NewRangeDecoder(br)

	if err != nil {
		return errFormat("Unexpected EOF", err)
	}

	sm := predictor.NewStateMap()

	for i := uint64(0); i < originalSize; i++ {
		b, err := decodeByteBits(dec, sm)

		if err != nil {
			return errFormat("Unexpected EOF", err)
		}

		if _, err := out.Write([]byte{b}); err != nil {
			return errIO("Cannot open output", err)
		}
	}

	return nil
}
