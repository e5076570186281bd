// Package json implements the document value: a closed tagged union over
// null, bool, number, string, list and object. The active variant is decided
// by the kind tag, never by which payload pointer happens to be non-nil, and
// replacing a variant drops the previous payload so no two variants are ever
// populated at once.
//
// Lists and object members are stored in jdoc.mleku.dev/seq sequences. Object
// members are NOT deduplicated: Insert prepends a member regardless of
// whether the key is already present, and lookups return the first match.
package json

import (
	"bytes"
	"errors"
	"fmt"

	"jdoc.mleku.dev/seq"
)

// Kind is the variant tag of a value.
type Kind byte

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindList
	KindObject
)

var kindNames = []string{"null", "bool", "number", "string", "list", "object"}

func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return "invalid"
	}
	return kindNames[k]
}

// TypeError is returned when an accessor is used on a value whose active
// variant is not the one the accessor works on. No accessor coerces between
// variants.
type TypeError struct {
	Want, Got Kind
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("value is a %v, not a %v", e.Got, e.Want)
}

// ErrNotFound is returned by Lookup when no member carries the requested key.
var ErrNotFound = errors.New("key not found")

// Member is one key/value field of an object. Keys are raw bytes, not
// type-checked: the parser stores whatever literal text appeared in key
// position.
type Member struct {
	Key []byte
	Val *T
}

// T is a document value. The zero value (and New()) is null.
type T struct {
	kind Kind
	b    bool
	n    float64
	s    []byte
	list *seq.List[*T]
	obj  *seq.List[Member]
}

// New returns a null value.
func New() *T { return &T{} }

// NewString returns a string value, converting from either Go string or byte
// slice to save the caller the cast.
func NewString[V string | []byte](s V) *T {
	return &T{kind: KindString, s: []byte(s)}
}

// NewNumber returns a number value.
func NewNumber(n float64) *T { return &T{kind: KindNumber, n: n} }

// NewBool returns a bool value.
func NewBool(b bool) *T { return &T{kind: KindBool, b: b} }

// Kind returns the active variant tag.
func (t *T) Kind() Kind { return t.kind }

func (t *T) IsNull() bool   { return t.kind == KindNull }
func (t *T) IsBool() bool   { return t.kind == KindBool }
func (t *T) IsNumber() bool { return t.kind == KindNumber }
func (t *T) IsString() bool { return t.kind == KindString }
func (t *T) IsList() bool   { return t.kind == KindList }
func (t *T) IsObject() bool { return t.kind == KindObject }

// Bool returns the bool payload.
func (t *T) Bool() (v bool, err error) {
	if t.kind != KindBool {
		err = &TypeError{Want: KindBool, Got: t.kind}
		return
	}
	return t.b, nil
}

// Number returns the number payload.
func (t *T) Number() (v float64, err error) {
	if t.kind != KindNumber {
		err = &TypeError{Want: KindNumber, Got: t.kind}
		return
	}
	return t.n, nil
}

// Str returns the string payload. The bytes are the live payload, not a copy.
func (t *T) Str() (v []byte, err error) {
	if t.kind != KindString {
		err = &TypeError{Want: KindString, Got: t.kind}
		return
	}
	return t.s, nil
}

// List returns the live element sequence of a list value.
func (t *T) List() (l *seq.List[*T], err error) {
	if t.kind != KindList {
		err = &TypeError{Want: KindList, Got: t.kind}
		return
	}
	return t.list, nil
}

// Object returns the live member sequence of an object value.
func (t *T) Object() (o *seq.List[Member], err error) {
	if t.kind != KindObject {
		err = &TypeError{Want: KindObject, Got: t.kind}
		return
	}
	return t.obj, nil
}

// release drops whatever payload is currently held so the next variant starts
// clean.
func (t *T) release() {
	t.b = false
	t.n = 0
	t.s = nil
	t.list = nil
	t.obj = nil
	t.kind = KindNull
}

// SetNull makes the value null, dropping any payload.
func (t *T) SetNull() { t.release() }

// SetBool replaces the payload with a bool.
func (t *T) SetBool(v bool) {
	t.release()
	t.kind = KindBool
	t.b = v
}

// SetNumber replaces the payload with a number.
func (t *T) SetNumber(v float64) {
	t.release()
	t.kind = KindNumber
	t.n = v
}

// SetString replaces the payload with a string. The value takes ownership of
// the bytes.
func (t *T) SetString(v []byte) {
	t.release()
	t.kind = KindString
	t.s = v
}

// SetList replaces the payload with an empty list.
func (t *T) SetList() {
	t.release()
	t.kind = KindList
	t.list = seq.New[*T]()
}

// SetObject replaces the payload with an empty object.
func (t *T) SetObject() {
	t.release()
	t.kind = KindObject
	t.obj = seq.New[Member]()
}

// PushFront prepends an element to a list value.
func (t *T) PushFront(v *T) (err error) {
	if t.kind != KindList {
		return &TypeError{Want: KindList, Got: t.kind}
	}
	t.list.PushFront(v)
	return
}

// PushBack appends an element to a list value.
func (t *T) PushBack(v *T) (err error) {
	if t.kind != KindList {
		return &TypeError{Want: KindList, Got: t.kind}
	}
	t.list.PushBack(v)
	return
}

// Insert adds a member to an object value. The member goes at the FRONT of
// the member sequence, so iteration order is the reverse of insertion order.
// This mirrors the legacy reader this codec replaces and is relied on by its
// callers; see DESIGN.md before changing it.
func (t *T) Insert(key []byte, v *T) (err error) {
	if t.kind != KindObject {
		return &TypeError{Want: KindObject, Got: t.kind}
	}
	t.obj.PushFront(Member{Key: key, Val: v})
	return
}

// Get returns the value of the first member carrying key. When the key is
// absent a fresh null member is appended at the back and its value returned,
// so assignment through the result lands in the object (auto-vivification).
func (t *T) Get(key []byte) (v *T, err error) {
	if t.kind != KindObject {
		err = &TypeError{Want: KindObject, Got: t.kind}
		return
	}
	for n := t.obj.Front(); n != nil; n = n.Next() {
		if bytes.Equal(n.V.Key, key) {
			return n.V.Val, nil
		}
	}
	v = New()
	t.obj.PushBack(Member{Key: bytes.Clone(key), Val: v})
	return
}

// Lookup returns the value of the first member carrying key, or ErrNotFound.
// Unlike Get it never mutates the object.
func (t *T) Lookup(key []byte) (v *T, err error) {
	if t.kind != KindObject {
		err = &TypeError{Want: KindObject, Got: t.kind}
		return
	}
	for n := t.obj.Front(); n != nil; n = n.Next() {
		if bytes.Equal(n.V.Key, key) {
			return n.V.Val, nil
		}
	}
	err = ErrNotFound
	return
}

// Copy returns a fully independent deep copy: nested list and object
// contents are cloned recursively, string payloads are duplicated.
func (t *T) Copy() (c *T) {
	c = &T{kind: t.kind, b: t.b, n: t.n}
	if t.s != nil {
		c.s = bytes.Clone(t.s)
	}
	if t.list != nil {
		c.list = t.list.Copy(func(v *T) *T { return v.Copy() })
	}
	if t.obj != nil {
		c.obj = t.obj.Copy(func(m Member) Member {
			return Member{Key: bytes.Clone(m.Key), Val: m.Val.Copy()}
		})
	}
	return
}

// Move transfers the payload into a new value and leaves the receiver null.
func (t *T) Move() (m *T) {
	m = &T{kind: t.kind, b: t.b, n: t.n, s: t.s, list: t.list, obj: t.obj}
	t.release()
	return
}

// Equal reports deep structural equality: same variant, same payload, and for
// lists and objects the same elements in the same order.
func (t *T) Equal(rhs *T) bool {
	if t.kind != rhs.kind {
		return false
	}
	switch t.kind {
	case KindNull:
		return true
	case KindBool:
		return t.b == rhs.b
	case KindNumber:
		return t.n == rhs.n
	case KindString:
		return bytes.Equal(t.s, rhs.s)
	case KindList:
		return t.list.Equal(rhs.list,
			func(a, b *T) bool { return a.Equal(b) })
	case KindObject:
		return t.obj.Equal(rhs.obj, func(a, b Member) bool {
			return bytes.Equal(a.Key, b.Key) && a.Val.Equal(b.Val)
		})
	}
	return false
}
