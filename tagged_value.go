package edn

import (
	"encoding/binary"
	"fmt"
	"hash/maphash"
	"math"
	"reflect"
)

// A TaggedValue is a tagged element which received no specific handling,
// for example because no handler was registered for its tag.
type TaggedValue struct {
	tag   Tag
	value any
}

// NewTaggedValue returns a TaggedValue for tag and value. The tag must not
// be the zero Tag; value may be nil.
func NewTaggedValue(tag Tag, value any) (TaggedValue, error) {
	if tag.IsZero() {
		return TaggedValue{}, argumentErr("tag")
	}
	return TaggedValue{tag: tag, value: value}, nil
}

// Tag returns the tag of v, which is never zero for a constructed value.
func (v TaggedValue) Tag() Tag   { return v.tag }
func (v TaggedValue) Value() any { return v.value }

// Equal reports whether v and o have equal tags and deeply equal values.
func (v TaggedValue) Equal(o TaggedValue) bool {
	return v.tag == o.tag && reflect.DeepEqual(v.value, o.value)
}

// Hash is consistent with Equal. Values other than identifiers, tagged
// values, strings, booleans and numbers contribute only their type.
func (v TaggedValue) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	h.WriteByte(taggedKind)
	writeUint64(&h, v.tag.Hash())
	hashValue(&h, v.value)
	return h.Sum64()
}

func hashValue(h *maphash.Hash, value any) {
	switch x := value.(type) {
	case nil:
		h.WriteByte(0)
	case Symbol:
		writeUint64(h, x.Hash())
	case Keyword:
		writeUint64(h, x.Hash())
	case Tag:
		writeUint64(h, x.Hash())
	case TaggedValue:
		writeUint64(h, x.Hash())
	case string:
		h.WriteString(x)
	case bool:
		if x {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case int64:
		writeUint64(h, uint64(x))
	case int:
		writeUint64(h, uint64(x))
	case float64:
		if x == 0 {
			x = 0 // -0
		}
		writeUint64(h, math.Float64bits(x))
	default:
		h.WriteString(reflect.TypeOf(value).String())
	}
}

func writeUint64(h *maphash.Hash, u uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], u)
	h.Write(b[:])
}

// String returns the tag and value separated by a space; a nil value
// prints as nil.
func (v TaggedValue) String() string {
	if v.value == nil {
		return v.tag.String() + " nil"
	}
	return fmt.Sprintf("%s %v", v.tag, v.value)
}
