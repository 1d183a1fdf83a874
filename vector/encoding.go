package vector

import (
	"encoding/binary"
	"fmt"
	"math"
)

const (
	encodingVersion byte = 1

	flagObject     byte = 1 << 0
	flagAttributes byte = 1 << 1
)

// Encode serializes a vector into a self-describing little-endian BLOB:
//
//	version(u8) kind(u8) flags(u8)
//	[attributes: class(strings) dim(u32 count, i32 each) names(strings)]
//	n(u32) elements
//
// Strings are u32 length followed by UTF-8 bytes; string lists are prefixed
// with a u32 count. Logical and integer elements are i32, doubles are IEEE 754
// float64 bits. The read-only mark is not encoded.
func Encode(v Value) ([]byte, error) {
	if v == nil {
		return nil, fmt.Errorf("vector: cannot encode nil value")
	}
	kind := v.Kind()
	if !kind.Valid() {
		return nil, fmt.Errorf("vector: cannot encode %s", kind)
	}
	out := make([]byte, 0, 16+8*v.Len())
	putU8 := func(b byte) { out = append(out, b) }
	putU32 := func(u uint32) { out = binary.LittleEndian.AppendUint32(out, u) }
	putString := func(s string) { putU32(uint32(len(s))); out = append(out, s...) }
	putStrings := func(ss []string) {
		putU32(uint32(len(ss)))
		for _, s := range ss {
			putString(s)
		}
	}

	var flags byte
	if v.IsObject() {
		flags |= flagObject
	}
	attrs := v.Attributes()
	if attrs != nil {
		flags |= flagAttributes
	}
	putU8(encodingVersion)
	putU8(byte(kind))
	putU8(flags)
	if attrs != nil {
		putStrings(attrs.class)
		putU32(uint32(len(attrs.dim)))
		for _, d := range attrs.dim {
			putU32(uint32(int32(d)))
		}
		putStrings(attrs.names)
	}

	if kind == KindLogical {
		logicals := v.Logicals()
		putU32(uint32(len(logicals)))
		for _, l := range logicals {
			putU32(uint32(l))
		}
	} else {
		vec, ok := v.(*Vector)
		if !ok {
			return nil, fmt.Errorf("vector: cannot encode %s elements of %T", kind, v)
		}
		putU32(uint32(vec.Len()))
		switch kind {
		case KindInteger:
			for _, i := range vec.integers {
				putU32(uint32(i))
			}
		case KindDouble:
			for _, d := range vec.doubles {
				out = binary.LittleEndian.AppendUint64(out, math.Float64bits(d))
			}
		case KindCharacter:
			for _, s := range vec.characters {
				putString(s)
			}
		}
	}
	return out, nil
}

// Decode reconstructs a vector produced by Encode. Attributes, when present,
// are rebuilt as a new *Attributes: values survive the round trip, pointer
// identity does not.
func Decode(b []byte) (*Vector, error) {
	d := decoder{data: b}
	version := d.u8()
	if d.err == nil && version != encodingVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidEncoding, version)
	}
	kind := Kind(d.u8())
	flags := d.u8()
	if d.err != nil {
		return nil, d.err
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown kind %d", ErrInvalidEncoding, uint8(kind))
	}

	out := &Vector{kind: kind, object: flags&flagObject != 0}
	if flags&flagAttributes != 0 {
		class := d.strs()
		dim := make([]int, d.count(4))
		for i := range dim {
			dim[i] = int(int32(d.u32()))
		}
		names := d.strs()
		if d.err != nil {
			return nil, d.err
		}
		out.attrs = &Attributes{class: class, dim: dim, names: names}
	}

	switch kind {
	case KindLogical:
		out.logicals = make([]Logical, d.count(4))
		for i := range out.logicals {
			out.logicals[i] = Logical(int32(d.u32()))
		}
	case KindInteger:
		out.integers = make([]int32, d.count(4))
		for i := range out.integers {
			out.integers[i] = int32(d.u32())
		}
	case KindDouble:
		out.doubles = make([]float64, d.count(8))
		for i := range out.doubles {
			out.doubles[i] = math.Float64frombits(d.u64())
		}
	case KindCharacter:
		out.characters = make([]string, d.count(4))
		for i := range out.characters {
			out.characters[i] = d.str()
		}
	}
	if d.err != nil {
		return nil, d.err
	}
	if d.off != len(d.data) {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrInvalidEncoding, len(d.data)-d.off)
	}
	return out, nil
}

// decoder reads little-endian fields and records the first error; reads
// after an error return zero values.
type decoder struct {
	data []byte
	off  int
	err  error
}

func (d *decoder) take(n int) []byte {
	if d.err != nil {
		return nil
	}
	if n < 0 || d.off+n > len(d.data) {
		d.err = fmt.Errorf("%w: truncated at offset %d", ErrInvalidEncoding, d.off)
		return nil
	}
	b := d.data[d.off : d.off+n]
	d.off += n
	return b
}

func (d *decoder) u8() byte {
	if b := d.take(1); b != nil {
		return b[0]
	}
	return 0
}

func (d *decoder) u32() uint32 {
	if b := d.take(4); b != nil {
		return binary.LittleEndian.Uint32(b)
	}
	return 0
}

func (d *decoder) u64() uint64 {
	if b := d.take(8); b != nil {
		return binary.LittleEndian.Uint64(b)
	}
	return 0
}

// count reads an element count and rejects counts that cannot fit in the
// remaining bytes given a minimum element size.
// The comparison is done in uint64 so a large u32 cannot wrap negative on
// 32-bit platforms.
func (d *decoder) count(minSize int) int {
	n := d.u32()
	if d.err != nil {
		return 0
	}
	if uint64(n)*uint64(minSize) > uint64(len(d.data)-d.off) {
		d.err = fmt.Errorf("%w: count %d exceeds remaining %d bytes", ErrInvalidEncoding, n, len(d.data)-d.off)
		return 0
	}
	return int(n)
}

func (d *decoder) str() string {
	return string(d.take(d.count(1)))
}

func (d *decoder) strs() []string {
	out := make([]string, d.count(4))
	for i := range out {
		out[i] = d.str()
	}
	if d.err != nil {
		return nil
	}
	return out
}
