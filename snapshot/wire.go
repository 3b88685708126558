package snapshot

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// field is one decoded key/value pair of a message
type field struct {
	num   protowire.Number
	typ   protowire.Type
	value uint64
	bytes []byte
}

// walk calls fn for every field of a message. Groups are skipped.
func walk(b []byte, fn func(f field) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return corrupt(protowire.ParseError(n))
		}
		b = b[n:]

		f := field{num: num, typ: typ}
		switch typ {
		case protowire.VarintType:
			f.value, n = protowire.ConsumeVarint(b)
		case protowire.Fixed64Type:
			f.value, n = protowire.ConsumeFixed64(b)
		case protowire.Fixed32Type:
			var v uint32
			v, n = protowire.ConsumeFixed32(b)
			f.value = uint64(v)
		case protowire.BytesType:
			f.bytes, n = protowire.ConsumeBytes(b)
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return corrupt(fmt.Errorf("field %d: %w", num, protowire.ParseError(n)))
		}
		b = b[n:]

		if err := fn(f); err != nil {
			return err
		}
	}
	return nil
}

func (f field) expect(typ protowire.Type) error {
	if f.typ != typ {
		return corrupt(fmt.Errorf("field %d has wire type %d, want %d", f.num, f.typ, typ))
	}
	return nil
}

func (f field) asUint() (uint64, error) {
	return f.value, f.expect(protowire.VarintType)
}

// asIndex decodes a non-negative index that must fit in an int
func (f field) asIndex() (int, error) {
	if err := f.expect(protowire.VarintType); err != nil {
		return 0, err
	}
	if f.value > math.MaxInt32 {
		return 0, corrupt(fmt.Errorf("field %d: index %d out of range", f.num, f.value))
	}
	return int(f.value), nil
}

func (f field) asInt() (int64, error) {
	return protowire.DecodeZigZag(f.value), f.expect(protowire.VarintType)
}

func (f field) asBool() (bool, error) {
	return protowire.DecodeBool(f.value), f.expect(protowire.VarintType)
}

func (f field) asFloat() (float64, error) {
	return math.Float64frombits(f.value), f.expect(protowire.Fixed64Type)
}

func (f field) asString() (string, error) {
	return string(f.bytes), f.expect(protowire.BytesType)
}

func (f field) asMessage() ([]byte, error) {
	return f.bytes, f.expect(protowire.BytesType)
}

// asIndexes decodes a packed repeated varint field
func (f field) asIndexes() ([]int, error) {
	if err := f.expect(protowire.BytesType); err != nil {
		return nil, err
	}
	out := []int{}
	for b := f.bytes; len(b) > 0; {
		v, n := protowire.ConsumeVarint(b)
		if n < 0 {
			return nil, corrupt(protowire.ParseError(n))
		}
		if v > math.MaxInt32 {
			return nil, corrupt(fmt.Errorf("field %d: index %d out of range", f.num, v))
		}
		out = append(out, int(v))
		b = b[n:]
	}
	return out, nil
}

func corrupt(err error) error {
	return fmt.Errorf("%w: %v", ErrCorrupt, err)
}
