package json

import (
	"io"
	"strconv"
)

// Marshal renders the value as document text, appending to dst and returning
// the extended slice.
//
// The layout keeps the legacy renderer's bracket style: every list element
// and object member is followed by a separator, including the last one before
// the closing bracket (`[ 1, 2, ] `). The parser in jdoc.mleku.dev/parser
// accepts that trailing separator, so output re-parses. Strings and keys are
// quoted (the legacy renderer emitted them bare, which could not be read
// back; see DESIGN.md). No escape processing is applied in either direction,
// so a string payload containing a double quote has no readable rendering.
func (t *T) Marshal(dst []byte) (b []byte) {
	b = dst
	switch t.kind {
	case KindNull:
		b = append(b, "null"...)
	case KindBool:
		if t.b {
			b = append(b, "true"...)
		} else {
			b = append(b, "false"...)
		}
	case KindNumber:
		b = strconv.AppendFloat(b, t.n, 'g', -1, 64)
	case KindString:
		b = append(b, '"')
		b = append(b, t.s...)
		b = append(b, '"')
	case KindList:
		b = append(b, '[', ' ')
		for n := t.list.Front(); n != nil; n = n.Next() {
			b = n.V.Marshal(b)
			b = append(b, ',', ' ')
		}
		b = append(b, ']', ' ')
	case KindObject:
		b = append(b, '{', ' ')
		for n := t.obj.Front(); n != nil; n = n.Next() {
			b = append(b, '"')
			b = append(b, n.V.Key...)
			b = append(b, '"', ':')
			b = n.V.Val.Marshal(b)
			b = append(b, ',', ' ')
		}
		b = append(b, '}', ' ')
	}
	return
}

// Write streams the marshalled form to w.
func (t *T) Write(w io.Writer) (err error) {
	_, err = w.Write(t.Marshal(nil))
	return
}

// String renders the marshalled form, for logs and %v.
func (t *T) String() string { return string(t.Marshal(nil)) }
