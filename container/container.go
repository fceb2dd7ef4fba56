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

// Package container implements the archive framing: the
// magic/version/originalSize header of the ctxmix and bwt profiles, the
// bwt profile's per-block metadata, and the legacy paq header. The order0
// archive is headerless and uses none of it.
package container

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/pierrec/xxHash/xxHash32"
)

// Profile magic numbers, one per archive kind.
const (
	MagicOrder0 = 0x4F524430 // "ORD0"
	MagicCtxmix = 0x43544D58 // "CTMX"
	MagicBWT    = 0x42575431 // "BWT1"
	MagicPAQ    = 0x50515130
)

// Version is the only header version this engine emits or accepts.
const Version = 1

// BlockSize is the bwt profile's maximum uncompressed block size.
const BlockSize = 102400

var (
	// ErrInvalidFormat is returned when a header's magic does not match
	// the profile being decompressed.
	ErrInvalidFormat = errors.New("Invalid file format")
	// ErrUnsupportedVersion is returned when a header's version field is
	// not one this engine understands.
	ErrUnsupportedVersion = errors.New("Unsupported version")
	// ErrUnexpectedEOF is returned when a header or block is truncated.
	ErrUnexpectedEOF = errors.New("Unexpected EOF")
)

// WriteHeader writes the magic/version/originalSize header, all fields
// little-endian.
func WriteHeader(w io.Writer, magic uint32, originalSize uint64) error {
	var buf [16]byte
	binary.LittleEndian.PutUint32(buf[0:4], magic)
	binary.LittleEndian.PutUint32(buf[4:8], Version)
	binary.LittleEndian.PutUint64(buf[8:16], originalSize)
	_, err := w.Write(buf[:])
	return err
}

// ReadHeader reads and validates a header against wantMagic, returning
// the archive's declared original size.
func ReadHeader(r io.Reader, wantMagic uint32) (uint64, error) {
	var buf [16]byte

	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return 0, ErrUnexpectedEOF
		}

		return 0, err
	}

	magic := binary.LittleEndian.Uint32(buf[0:4])

	if magic != wantMagic {
		return 0, ErrInvalidFormat
	}

	version := binary.LittleEndian.Uint32(buf[4:8])

	if version != Version {
		return 0, ErrUnsupportedVersion
	}

	return binary.LittleEndian.Uint64(buf[8:16]), nil
}

// BlockHeader is the bwt profile's four-field per-block prefix.
type BlockHeader struct {
	BlockLen uint32
	Primary  uint32
	RLECount uint32
	CompSize uint32
}

// WriteBlockHeader writes the block header fields, little-endian.
func WriteBlockHeader(w io.Writer, h BlockHeader) error {
	var buf [16]byte
	binary.LittleEndian.PutUint32(buf[0:4], h.BlockLen)
	binary.LittleEndian.PutUint32(buf[4:8], h.Primary)
	binary.LittleEndian.PutUint32(buf[8:12], h.RLECount)
	binary.LittleEndian.PutUint32(buf[12:16], h.CompSize)
	_, err := w.Write(buf[:])
	return err
}

// ReadBlockHeader reads one block header, or io.EOF if the stream ends
// cleanly at a block boundary (the normal end-of-stream signal for the
// bwt profile).
func ReadBlockHeader(r io.Reader) (BlockHeader, error) {
	var buf [16]byte
	n, err := io.ReadFull(r, buf[:])

	if err != nil {
		if err == io.EOF && n == 0 {
			return BlockHeader{}, io.EOF
		}

		return BlockHeader{}, ErrUnexpectedEOF
	}

	return BlockHeader{
		BlockLen: binary.LittleEndian.Uint32(buf[0:4]),
		Primary:  binary.LittleEndian.Uint32(buf[4:8]),
		RLECount: binary.LittleEndian.Uint32(buf[8:12]),
		CompSize: binary.LittleEndian.Uint32(buf[12:16]),
	}, nil
}

// WritePaqHeader writes the legacy paq archive's header: magic,
// originalSize, and a bomFlag byte — no version field, matching that
// format's own on-wire layout exactly.
func WritePaqHeader(w io.Writer, originalSize uint64, bomFlag bool) error {
	var buf [13]byte
	binary.LittleEndian.PutUint32(buf[0:4], MagicPAQ)
	binary.LittleEndian.PutUint64(buf[4:12], originalSize)

	if bomFlag {
		buf[12] = 1
	}

	_, err := w.Write(buf[:])
	return err
}

// ReadPaqHeader reads and validates a paq header.
func ReadPaqHeader(r io.Reader) (originalSize uint64, bomFlag bool, err error) {
	var buf [13]byte

	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return 0, false, ErrUnexpectedEOF
		}

		return 0, false, err
	}

	magic := binary.LittleEndian.Uint32(buf[0:4])

	if magic != MagicPAQ {
		return 0, false, ErrInvalidFormat
	}

	return binary.LittleEndian.Uint64(buf[4:12]), buf[12] != 0, nil
}

// BlockChecksum computes an xxHash32 digest of a block's uncompressed
// bytes. The bwt pipeline reports it on both the encoder and decoder
// sides through the event Listener (Event.Hash). It is not carried on the
// wire, and nothing compares the two sides' values.
func BlockChecksum(data []byte) uint32 {
	h := xxHash32.New(0)
	h.Write(data)
	return h.Sum32()
}
