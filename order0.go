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
	"github.com/rata5/File-Compressor/entropy"
)

// compressOrder0 writes the headerless order0 archive: a raw
// arithmetic-coded stream terminated by the reserved EOF symbol (256)
// and a final flush.
func compressOrder0(out io.Writer, data []byte) error {
	bw := bitio.NewWriter(out)
	enc := entropy.NewArithmeticEncoder(bw)
	ft := entropy.NewFrequencyTable()

	for _, b := range data {
		if err := enc.EncodeSymbol(int(b), ft); err != nil {
			return errIO("Cannot open output", err)
		}

		ft.Update(int(b))
	}

	if err := enc.EncodeSymbol(entropy.EOFSymbol, ft); err != nil {
		return errIO("Cannot open output", err)
	}

	ft.Update(entropy.EOFSymbol)

	if err := enc.Flush(); err != nil {
		return errIO("Cannot open output", err)
	}

	return nil
}

// decompressOrder0 reads a headerless order0 archive until the reserved
// EOF symbol is decoded.
func decompressOrder0(r io.Reader, out io.Writer) error {
	br := bitio.NewReader(r)

	dec, err := entropy.NewArithmeticDecoder(br)

	if err != nil {
		return errFormat("Unexpected EOF", err)
	}

	ft := entropy.NewFrequencyTable()

	for {
		sym, err := dec.DecodeSymbol(ft)

		if err != nil {
			return errFormat("Unexpected EOF", err)
		}

		if sym == entropy.EOFSymbol {
			ft.Update(sym)
			return nil
		}

		if _, err := out.Write([]byte{byte(sym)}); err != nil {
			return errIO("Cannot open output", err)
		}

		ft.Update(sym)
	}
}
