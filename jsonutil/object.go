package jsonutil

import (
	"bytes"
	"errors"
	"fmt"
)

// ErrFieldCount reports that an object emitted a different number of fields
// than it declared.
var ErrFieldCount = errors.New("jsonutil: field count mismatch")

// ObjectEncoder writes a single JSON object field by field. Keys appear in
// the order Field is called. The number of fields is declared up front and
// checked by Finish.
type ObjectEncoder struct {
	buf      bytes.Buffer
	declared int
	written  int
	err      error
}

// NewObjectEncoder starts an object that will hold exactly fields entries.
func NewObjectEncoder(fields int) *ObjectEncoder {
	enc := &ObjectEncoder{declared: fields}
	enc.buf.Grow(16 * (fields + 1))
	enc.buf.WriteByte('{')
	return enc
}

// Field appends name and the JSON encoding of value. A nil value is written
// as null. The first encoding error sticks and is returned by every later
// call and by Finish.
func (e *ObjectEncoder) Field(name string, value any) error {
	if e.err != nil {
		return e.err
	}

	key, err := Marshal(name)
	if err != nil {
		e.err = fmt.Errorf("encode field name %q: %w", name, err)
		return e.err
	}

	var val []byte
	if value == nil {
		val = []byte("null")
	} else if val, err = Marshal(value); err != nil {
		e.err = fmt.Errorf("encode field %q: %w", name, err)
		return e.err
	}

	if e.written > 0 {
		e.buf.WriteByte(',')
	}
	e.buf.Write(key)
	e.buf.WriteByte(':')
	e.buf.Write(val)
	e.written++
	return nil
}

// Finish closes the object and returns its bytes.
func (e *ObjectEncoder) Finish() ([]byte, error) {
	if e.err != nil {
		return nil, e.err
	}
	if e.written != e.declared {
		return nil, fmt.Errorf("%w: declared %d, wrote %d", ErrFieldCount, e.declared, e.written)
	}
	e.buf.WriteByte('}')
	return e.buf.Bytes(), nil
}

// Len reports how many fields have been written so far.
func (e *ObjectEncoder) Len() int {
	return e.written
}
