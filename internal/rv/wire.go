package rv

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// message is implemented by every wire type in this package.
type message interface {
	marshal(b []byte) []byte
	unmarshal(data []byte) error
}

// Marshal encodes a wire message. Encoding is append-only and cannot fail.
func Marshal(m message) []byte {
	return m.marshal(nil)
}

// Unmarshal decodes data into m. Fields m does not model are retained and
// re-emitted by a later Marshal.
func Unmarshal(data []byte, m message) error {
	return m.unmarshal(data)
}

// reader walks the fields of one protobuf-encoded message.
type reader struct {
	buf  []byte
	num  protowire.Number
	typ  protowire.Type
	raw  []byte // whole field, tag included
	body []byte // value portion only
	err  error
}

func (r *reader) next() bool {
	if r.err != nil || len(r.buf) == 0 {
		return false
	}
	num, typ, n := protowire.ConsumeTag(r.buf)
	if n < 0 {
		r.err = fmt.Errorf("rv: malformed tag: %w", protowire.ParseError(n))
		return false
	}
	m := protowire.ConsumeFieldValue(num, typ, r.buf[n:])
	if m < 0 {
		r.err = fmt.Errorf("rv: malformed field %d: %w", num, protowire.ParseError(m))
		return false
	}
	r.num, r.typ = num, typ
	r.raw = r.buf[:n+m]
	r.body = r.buf[n : n+m]
	r.buf = r.buf[n+m:]
	return true
}

// keep appends the current field, tag and all, to an unknown-field buffer.
func (r *reader) keep(unknown *[]byte) {
	*unknown = append(*unknown, r.raw...)
}

func (r *reader) mismatch(want protowire.Type) {
	if r.err == nil {
		r.err = fmt.Errorf("rv: field %d: wire type %d, want %d", r.num, r.typ, want)
	}
}

func (r *reader) varint() uint64 {
	if r.typ != protowire.VarintType {
		r.mismatch(protowire.VarintType)
		return 0
	}
	v, _ := protowire.ConsumeVarint(r.body)
	return v
}

func (r *reader) boolean() bool { return r.varint() != 0 }

func (r *reader) i32() int32 { return int32(r.varint()) }

func (r *reader) i64() int64 { return int64(r.varint()) }

func (r *reader) u32() uint32 { return uint32(r.varint()) }

func (r *reader) f32() float32 {
	if r.typ != protowire.Fixed32Type {
		r.mismatch(protowire.Fixed32Type)
		return 0
	}
	v, _ := protowire.ConsumeFixed32(r.body)
	return math.Float32frombits(v)
}

func (r *reader) f64() float64 {
	if r.typ != protowire.Fixed64Type {
		r.mismatch(protowire.Fixed64Type)
		return 0
	}
	v, _ := protowire.ConsumeFixed64(r.body)
	return math.Float64frombits(v)
}

func (r *reader) str() string {
	if r.typ != protowire.BytesType {
		r.mismatch(protowire.BytesType)
		return ""
	}
	v, _ := protowire.ConsumeBytes(r.body)
	return string(v)
}

func (r *reader) bytes() []byte {
	if r.typ != protowire.BytesType {
		r.mismatch(protowire.BytesType)
		return nil
	}
	v, _ := protowire.ConsumeBytes(r.body)
	out := make([]byte, len(v))
	copy(out, v)
	return out
}

func (r *reader) msg(m message) {
	if r.typ != protowire.BytesType {
		r.mismatch(protowire.BytesType)
		return
	}
	v, _ := protowire.ConsumeBytes(r.body)
	if err := m.unmarshal(v); err != nil && r.err == nil {
		r.err = err
	}
}

// f64s reads a repeated double field, packed or not.
func (r *reader) f64s(vals *[]float64) {
	switch r.typ {
	case protowire.Fixed64Type:
		v, _ := protowire.ConsumeFixed64(r.body)
		*vals = append(*vals, math.Float64frombits(v))
	case protowire.BytesType:
		packed, _ := protowire.ConsumeBytes(r.body)
		for len(packed) > 0 {
			v, n := protowire.ConsumeFixed64(packed)
			if n < 0 {
				r.err = fmt.Errorf("rv: field %d: malformed packed doubles", r.num)
				return
			}
			*vals = append(*vals, math.Float64frombits(v))
			packed = packed[n:]
		}
	default:
		r.mismatch(protowire.BytesType)
	}
}

// Append helpers. Scalars follow proto3 presence: zero values are omitted.

func appendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func appendBytes(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

func appendBool(b []byte, num protowire.Number, v bool) []byte {
	if !v {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, 1)
}

func appendInt32(b []byte, num protowire.Number, v int32) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(int64(v)))
}

func appendInt64(b []byte, num protowire.Number, v int64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(v))
}

func appendUint32(b []byte, num protowire.Number, v uint32) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(v))
}

func appendFloat(b []byte, num protowire.Number, v float32) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.Fixed32Type)
	return protowire.AppendFixed32(b, math.Float32bits(v))
}

func appendDouble(b []byte, num protowire.Number, v float64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.Fixed64Type)
	return protowire.AppendFixed64(b, math.Float64bits(v))
}

func appendDoubles(b []byte, num protowire.Number, vals []float64) []byte {
	if len(vals) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	packed := make([]byte, 0, 8*len(vals))
	for _, v := range vals {
		packed = protowire.AppendFixed64(packed, math.Float64bits(v))
	}
	return protowire.AppendBytes(b, packed)
}

// appendMsg encodes a nested message field, skipping nil pointers.
func appendMsg[T any, P interface {
	*T
	message
}](b []byte, num protowire.Number, m P) []byte {
	if m == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, m.marshal(nil))
}

func appendMsgs[T any, P interface {
	*T
	message
}](b []byte, num protowire.Number, ms []P) []byte {
	for _, m := range ms {
		b = appendMsg(b, num, m)
	}
	return b
}

// Optional scalars carry explicit presence and are emitted even when zero.

func appendOptString(b []byte, num protowire.Number, v *string) []byte {
	if v == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, *v)
}

func appendOptInt32(b []byte, num protowire.Number, v *int32) []byte {
	if v == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(int64(*v)))
}

func appendOptDouble(b []byte, num protowire.Number, v *float64) []byte {
	if v == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.Fixed64Type)
	return protowire.AppendFixed64(b, math.Float64bits(*v))
}
