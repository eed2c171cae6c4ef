// SPDX-License-Identifier: MIT

// Package matrix - raw binary wire format.
//
// Format (little-endian):
//
//	int32 ncols | int32 nrows | ncols*nrows float64
//
// There is NO layout tag. The storage buffer is written in storage order and
// zero-padded to ncols*nrows values; decoding always yields a Normal matrix.
// Consequently only Normal matrices round-trip. A packed or blocked matrix
// comes back as a Normal matrix whose cells hold the raw storage sequence,
// i.e. its structure is lost. This is a known limitation of the format.

package matrix

import (
	"bytes"
	"encoding"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// headerSize is the byte length of the (ncols, nrows) header.
const headerSize = 8

// MaxSerializedCells bounds ncols*nrows accepted by Decode, so a corrupt
// header cannot trigger a huge allocation.
const MaxSerializedCells = 1 << 28

var (
	_ io.WriterTo                = (*Matrix)(nil)
	_ encoding.BinaryMarshaler   = (*Matrix)(nil)
	_ encoding.BinaryUnmarshaler = (*Matrix)(nil)
)

// SerializedSize is the exact byte length WriteTo produces for m.
func (m *Matrix) SerializedSize() int64 {
	return headerSize + 8*int64(m.rows)*int64(m.cols)
}

// WriteTo encodes m in the wire format. See the package comment for the
// layout limitation.
func (m *Matrix) WriteTo(w io.Writer) (int64, error) {
	if m.data == nil {
		return 0, fmt.Errorf("WriteTo: %w", ErrReleased)
	}
	if m.cols > math.MaxInt32 || m.rows > math.MaxInt32 {
		return 0, fmt.Errorf("WriteTo: %w", ErrBadHeader)
	}
	header := [2]int32{int32(m.cols), int32(m.rows)}
	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return 0, fmt.Errorf("WriteTo: header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, m.data); err != nil {
		return headerSize, fmt.Errorf("WriteTo: data: %w", err)
	}
	// Packed layouts store fewer than rows*cols values.
	if pad := m.rows*m.cols - len(m.data); pad > 0 {
		if err := binary.Write(w, binary.LittleEndian, make([]float64, pad)); err != nil {
			return headerSize + 8*int64(len(m.data)), fmt.Errorf("WriteTo: padding: %w", err)
		}
	}

	return m.SerializedSize(), nil
}

// Decode reads one wire-format matrix from r as a Normal matrix.
//
// Errors:
//   - ErrBadHeader for non-positive or oversized dimensions.
//   - ErrTruncated when r ends before the header or the payload is complete.
func Decode(r io.Reader, opts ...Option) (*Matrix, error) {
	var header [2]int32
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, decodeErr("header", err)
	}
	cols, rows := int(header[0]), int(header[1])
	if cols <= 0 || rows <= 0 || int64(cols)*int64(rows) > MaxSerializedCells {
		return nil, fmt.Errorf("Decode(%d×%d): %w", rows, cols, ErrBadHeader)
	}

	m, err := NewNormal(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	if err = binary.Read(r, binary.LittleEndian, m.data); err != nil {
		return nil, decodeErr("data", err)
	}

	return m, nil
}

// decodeErr maps short reads to ErrTruncated and keeps other I/O errors.
func decodeErr(stage string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("Decode: %s: %w", stage, ErrTruncated)
	}

	return fmt.Errorf("Decode: %s: %w", stage, err)
}

// MarshalBinary implements encoding.BinaryMarshaler via WriteTo.
func (m *Matrix) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(int(m.SerializedSize()))
	if _, err := m.WriteTo(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The receiver is
// replaced by a Normal matrix regardless of its previous layout; trailing
// bytes are ignored.
func (m *Matrix) UnmarshalBinary(b []byte) error {
	dec, err := Decode(bytes.NewReader(b))
	if err != nil {
		return err
	}
	*m = *dec

	return nil
}
