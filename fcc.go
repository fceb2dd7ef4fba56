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

// Package fcc is the compression engine's public surface: compress and
// decompress an opaque byte stream into a smaller, bit-exact-recoverable
// archive. A GUI or other caller only ever needs Compress and
// Decompress.
package fcc

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/rata5/File-Compressor/bitio"
	"github.com/rata5/File-Compressor/container"
	"github.com/rata5/File-Compressor/entropy"
	"github.com/rata5/File-Compressor/predictor"
)

// Profile selects which of the three engine pipelines Compress uses. It
// is a build/configuration-time choice, per the system overview: the
// archive layout and magic differ per profile, and Decompress recovers
// the profile from the archive's own magic rather than taking one as an
// argument.
type Profile int

const (
	ProfileOrder0 Profile = iota
	ProfileCtxmix
	ProfileBWT
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Compress reads inPath, compresses it under the given profile, and
// writes the archive to outPath. listeners, if any, receive progress
// events; passing none keeps the call to its required
// (inPath, outPath) -> error shape.
func Compress(inPath, outPath string, profile Profile, listeners ...Listener) error {
	l := fanout(listeners)

	in, data, err := openInputAll(inPath)

	if err != nil {
		return err
	}

	defer in.Close()

	out, err := createOutput(inPath, outPath)

	if err != nil {
		return err
	}

	defer out.Close()

	notify(l, EventCompressionStart, 0, int64(len(data)), "compression started")

	switch profile {
	case ProfileOrder0:
		err = compressOrder0(out, data)
	case ProfileCtxmix:
		err = compressCtxmix(out, data)
	case ProfileBWT:
		err = compressBWT(out, data, l)
	default:
		err = errors.New("fcc: unknown profile")
	}

	if err != nil {
		out.Close()
		os.Remove(outPath)
		return err
	}

	notify(l, EventCompressionEnd, 0, int64(len(data)), "compression finished")
	return nil
}

// CompressPaq compresses inPath under the legacy single-predictor paq
// archive format, stripping a leading UTF-8 BOM if present.
func CompressPaq(inPath, outPath string, listeners ...Listener) error {
	l := fanout(listeners)

	in, data, err := openInputAll(inPath)

	if err != nil {
		return err
	}

	defer in.Close()

	out, err := createOutput(inPath, outPath)

	if err != nil {
		return err
	}

	defer out.Close()

	notify(l, EventCompressionStart, 0, int64(len(data)), "compression started")

	bom := len(data) >= 3 && data[0] == utf8BOM[0] && data[1] == utf8BOM[1] && data[2] == utf8BOM[2]

	if bom {
		data = data[3:]
	}

	if err := container.WritePaqHeader(out, uint64(len(data)), bom); err != nil {
		out.Close()
		os.Remove(outPath)
		return errIO("Cannot open output", err)
	}

	bw := bitio.NewWriter(out)
	enc := entropy.NewRangeEncoder(bw)
	sm := predictor.NewStateMap()

	for _, b := range data {
		if err := encodeByteBits(enc, sm, b); err != nil {
			out.Close()
			os.Remove(outPath)
			return errIO("Cannot open output", err)
		}
	}

	if err := enc.Finish(); err != nil {
		out.Close()
		os.Remove(outPath)
		return errIO("Cannot open output", err)
	}

	notify(l, EventCompressionEnd, 0, int64(len(data)), "compression finished")
	return nil
}

// Decompress reads the archive at inPath, recovers the profile from its
// magic, and writes the original bytes to outPath.
func Decompress(inPath, outPath string, listeners ...Listener) error {
	l := fanout(listeners)

	in, err := openInput(inPath)

	if err != nil {
		return err
	}

	defer in.Close()

	out, err := createOutput(inPath, outPath)

	if err != nil {
		return err
	}

	defer out.Close()

	notify(l, EventDecompressionStart, 0, 0, "decompression started")

	br := bufio.NewReader(in)
	magic, peekErr := peekMagic(br)

	if peekErr != nil {
		out.Close()
		os.Remove(outPath)
		return peekErr
	}

	switch magic {
	case container.MagicCtxmix:
		err = decompressCtxmix(br, out)
	case container.MagicBWT:
		err = decompressBWT(br, out, l)
	case container.MagicPAQ:
		err = decompressPaq(br, out)
	default:
		err = decompressOrder0(br, out)
	}

	if err != nil {
		out.Close()
		os.Remove(outPath)
		return err
	}

	notify(l, EventDecompressionEnd, 0, 0, "decompression finished")
	return nil
}

func peekMagic(br *bufio.Reader) (uint32, error) {
	head, err := br.Peek(4)

	if err != nil {
		if err == io.EOF {
			// Fewer than 4 bytes total: only a bare, headerless order0
			// archive (including the empty input's flush-only archive)
			// is this short.
			return 0, nil
		}

		return 0, errIO("Cannot open input", err)
	}

	return binary.LittleEndian.Uint32(head), nil
}

func fanout(listeners []Listener) Listener {
	if len(listeners) == 0 {
		return nil
	}

	if len(listeners) == 1 {
		return listeners[0]
	}

	return multiListener(listeners)
}

type multiListener []Listener

func (m multiListener) OnEvent(e Event) {
	for _, l := range m {
		if l != nil {
			l.OnEvent(e)
		}
	}
}

func openInput(path string) (*os.File, error) {
	f, err := os.Open(path)

	if err != nil {
		if os.IsNotExist(err) {
			return nil, &Error{Kind: KindIO, Msg: "Input missing", Err: err}
		}

		return nil, errIO("Cannot open input", err)
	}

	return f, nil
}

func openInputAll(path string) (*os.File, []byte, error) {
	f, err := openInput(path)

	if err != nil {
		return nil, nil, err
	}

	data, err := io.ReadAll(f)

	if err != nil {
		f.Close()
		return nil, nil, errIO("Cannot open input", err)
	}

	return f, data, nil
}

func createOutput(inPath, outPath string) (*os.File, error) {
	inAbs, err1 := filepath.Abs(inPath)
	outAbs, err2 := filepath.Abs(outPath)

	if err1 == nil && err2 == nil && inAbs == outAbs {
		return nil, errIO("Cannot open output", errors.New("input and output resolve to the same path"))
	}

	if _, err := os.Stat(outPath); err == nil {
		return nil, errOverwrite()
	}

	f, err := os.Create(outPath)

	if err != nil {
		return nil, errIO("Cannot open output", err)
	}

	return f, nil
}
