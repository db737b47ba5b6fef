// Package fixture produces and stores the input arrays fed to the
// validators.
//
// A fixture file starts with an 8-byte header followed by frames of up to
// 4096 values:
//
//	Bytes 0-3:   magic "CYCF"
//	Bytes 4-7:   value count (uint32, little-endian)
//	per frame:   uint16 length of the StreamVByte data, then the data
//
// Values are zigzag-encoded before StreamVByte so the small negative values
// of the pattern stay one byte wide.
package fixture

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/mhr3/streamvbyte"

	"github.com/Akron/cyclecheck"
)

const (
	headerBytes = 8
	// frameSize is the number of values per StreamVByte frame. The
	// encoded frame must fit the uint16 length prefix.
	frameSize = 4096
)

var magic = [4]byte{'C', 'Y', 'C', 'F'}

// ErrInvalidFixture is returned when a fixture buffer is truncated or
// malformed.
var ErrInvalidFixture = errors.New("fixture: invalid fixture")

var bo = binary.LittleEndian

// Pattern returns an array of cfg.Length elements that matches the pattern
// everywhere.
func Pattern(cfg cyclecheck.Config) []int32 {
	arr := make([]int32, cfg.Length)
	for i := range arr {
		arr[i] = cfg.Expected(i)
	}
	return arr
}

// Corrupt returns a copy of arr with arr[idx] replaced by v.
func Corrupt(arr []int32, idx int, v int32) []int32 {
	if idx < 0 || idx >= len(arr) {
		panic(fmt.Sprintf("fixture: corrupt index %d out of range [0,%d)", idx, len(arr)))
	}
	out := slices.Clone(arr)
	out[idx] = v
	return out
}

// Encode appends the fixture encoding of values to dst.
func Encode(dst []byte, values []int32) []byte {
	dst = append(dst, magic[:]...)
	dst = bo.AppendUint32(dst, uint32(len(values)))
	var zz [frameSize]uint32
	for off := 0; off < len(values); off += frameSize {
		n := min(frameSize, len(values)-off)
		for i := range n {
			zz[i] = zigzagEncode32(values[off+i])
		}
		start := len(dst)
		maxLen := streamvbyte.MaxEncodedLen(n)
		dst = slices.Grow(dst, 2+maxLen)
		dst = dst[:start+2+maxLen]
		svbData := streamvbyte.EncodeUint32(zz[:n], &streamvbyte.EncodeOptions[uint32]{
			Buffer: dst[start+2:],
		})
		svbLen := copy(dst[start+2:], svbData)
		bo.PutUint16(dst[start:], uint16(svbLen))
		dst = dst[:start+2+svbLen]
	}
	return dst
}

// Decode parses a buffer produced by Encode.
func Decode(buf []byte) ([]int32, error) {
	if len(buf) < headerBytes {
		return nil, fmt.Errorf("%w: buffer too small for header (need %d bytes, got %d)",
			ErrInvalidFixture, headerBytes, len(buf))
	}
	if [4]byte(buf[:4]) != magic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrInvalidFixture, buf[:4])
	}
	count := int(bo.Uint32(buf[4:headerBytes]))
	p := buf[headerBytes:]
	// Every value takes at least one data byte, which bounds count before
	// allocating.
	if count > len(p) {
		return nil, fmt.Errorf("%w: count %d exceeds payload of %d bytes", ErrInvalidFixture, count, len(p))
	}
	values := make([]int32, count)
	var scratch [frameSize]uint32
	for off := 0; off < count; off += frameSize {
		n := min(frameSize, count-off)
		if len(p) < 2 {
			return nil, fmt.Errorf("%w: missing frame length at value %d", ErrInvalidFixture, off)
		}
		svbLen := int(bo.Uint16(p[:2]))
		p = p[2:]
		if len(p) < svbLen {
			return nil, fmt.Errorf("%w: truncated frame at value %d (need %d bytes, got %d)",
				ErrInvalidFixture, off, svbLen, len(p))
		}
		if need := svbEncodedLen(p[:svbLen], n); need != svbLen {
			return nil, fmt.Errorf("%w: frame at value %d has %d bytes, control bytes describe %d",
				ErrInvalidFixture, off, svbLen, need)
		}
		decoded := streamvbyte.DecodeUint32(p[:svbLen], n, &streamvbyte.DecodeOptions[uint32]{
			Buffer: scratch[:n],
		})
		for i, v := range decoded[:n] {
			values[off+i] = zigzagDecode32(v)
		}
		p = p[svbLen:]
	}
	if len(p) != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrInvalidFixture, len(p))
	}
	return values, nil
}

// ReadFile loads a fixture file.
func ReadFile(path string) ([]int32, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	values, err := Decode(buf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return values, nil
}

// WriteFile stores values as a fixture file.
func WriteFile(path string, values []int32) error {
	return os.WriteFile(path, Encode(nil, values), 0o644)
}

// zigzagEncode32 maps signed integers to unsigned ones so that values close
// to zero, of either sign, stay small.
func zigzagEncode32(v int32) uint32 {
	return uint32(v<<1) ^ uint32(v>>31)
}

// zigzagDecode32 inverts zigzagEncode32.
func zigzagDecode32(v uint32) int32 {
	return int32((v >> 1) ^ uint32(-(int32(v & 1))))
}
