// Package acsbyte provides bounds-checked little-endian primitive reads
// over a byte range, the foundation every higher-level ACS block parser
// is built on.
package acsbyte

import (
	"fmt"
	"unicode/utf16"
)

// UnexpectedEndOfData is returned whenever a read would cross the end of
// the reader's range.
type UnexpectedEndOfData struct {
	BytesRequested     int
	OffsetFromRangeStart int
}

func (e UnexpectedEndOfData) Error() string {
	return fmt.Sprintf("acsbyte: unexpected end of data: requested %d bytes at offset %d",
		e.BytesRequested, e.OffsetFromRangeStart)
}

// InvalidRange is returned when constructing a sub-reader over a range
// that does not fit inside the parent blob.
type InvalidRange struct {
	RangeOffset int
	RangeLength int
	BlobLength  int
}

func (e InvalidRange) Error() string {
	return fmt.Sprintf("acsbyte: invalid range: offset=%d length=%d blob=%d",
		e.RangeOffset, e.RangeLength, e.BlobLength)
}

// Reader is a cursor over blob[start:end], tracking the current read
// offset. All multi-byte reads are little-endian.
type Reader struct {
	blob  []byte
	start int
	end   int
	// offset is absolute into blob, always within [start, end].
	offset int
}

// NewReader creates a Reader over the entire blob.
func NewReader(blob []byte) *Reader {
	return &Reader{blob: blob, start: 0, end: len(blob), offset: 0}
}

// SubReader creates a Reader scoped to blob[rangeOffset : rangeOffset+rangeLength],
// relative to the parent reader's own blob (not its current offset).
func (r *Reader) SubReader(rangeOffset, rangeLength int) (*Reader, error) {
	if rangeOffset < 0 || rangeLength < 0 || rangeOffset+rangeLength > len(r.blob) {
		return nil, InvalidRange{RangeOffset: rangeOffset, RangeLength: rangeLength, BlobLength: len(r.blob)}
	}
	return &Reader{
		blob:   r.blob,
		start:  rangeOffset,
		end:    rangeOffset + rangeLength,
		offset: rangeOffset,
	}, nil
}

// Offset returns the current offset relative to the start of the range.
func (r *Reader) Offset() int {
	return r.offset - r.start
}

// Len returns the number of unread bytes remaining in the range.
func (r *Reader) Len() int {
	return r.end - r.offset
}

func (r *Reader) require(n int) error {
	if r.offset+n > r.end {
		return UnexpectedEndOfData{BytesRequested: n, OffsetFromRangeStart: r.offset - r.start}
	}
	return nil
}

// U8 reads an unsigned 8-bit integer.
func (r *Reader) U8() (uint8, error) {
	if err := r.require(1); err != nil {
		return 0, err
	}
	v := r.blob[r.offset]
	r.offset++
	return v, nil
}

// U16 reads an unsigned 16-bit little-endian integer.
func (r *Reader) U16() (uint16, error) {
	if err := r.require(2); err != nil {
		return 0, err
	}
	v := uint16(r.blob[r.offset]) | uint16(r.blob[r.offset+1])<<8
	r.offset += 2
	return v, nil
}

// I16 reads a signed 16-bit little-endian integer.
func (r *Reader) I16() (int16, error) {
	v, err := r.U16()
	if err != nil {
		return 0, err
	}
	return int16(v), nil
}

// U32 reads an unsigned 32-bit little-endian integer.
func (r *Reader) U32() (uint32, error) {
	if err := r.require(4); err != nil {
		return 0, err
	}
	v := uint32(r.blob[r.offset]) | uint32(r.blob[r.offset+1])<<8 |
		uint32(r.blob[r.offset+2])<<16 | uint32(r.blob[r.offset+3])<<24
	r.offset += 4
	return v, nil
}

// Bytes reads n raw bytes.
func (r *Reader) Bytes(n int) ([]byte, error) {
	if err := r.require(n); err != nil {
		return nil, err
	}
	v := r.blob[r.offset : r.offset+n]
	r.offset += n
	return v, nil
}

// Skip advances the cursor by n bytes without returning them.
func (r *Reader) Skip(n int) error {
	if err := r.require(n); err != nil {
		return err
	}
	r.offset += n
	return nil
}

// UTF16String reads a UTF-16LE string of l code units (no terminator
// consumed) and decodes it to a Go string.
func (r *Reader) UTF16String(l int) (string, error) {
	if err := r.require(l * 2); err != nil {
		return "", err
	}
	units := make([]uint16, l)
	for i := 0; i < l; i++ {
		units[i] = uint16(r.blob[r.offset]) | uint16(r.blob[r.offset+1])<<8
		r.offset += 2
	}
	return string(utf16.Decode(units)), nil
}
