package config

// SignType selects how the status sign field encodes success and failure.
type SignType uint8

const (
	// SignBool writes true on success and false on failure.
	SignBool SignType = iota + 1
	// SignBoolReversed writes false on success and true on failure.
	SignBoolReversed
	// SignNumber writes a caller supplied number per branch.
	SignNumber
	// SignString writes a caller supplied string per branch.
	SignString
)

// StatusSign names the status sign field and its encoding.
type StatusSign struct {
	field string
	kind  SignType
	ok    any
	fail  any
}

// BoolSign encodes success as true.
func BoolSign(field string) StatusSign {
	return StatusSign{field: field, kind: SignBool, ok: true, fail: false}
}

// ReversedBoolSign encodes success as false.
func ReversedBoolSign(field string) StatusSign {
	return StatusSign{field: field, kind: SignBoolReversed, ok: false, fail: true}
}

// NumberSign encodes success as ok and failure as fail.
func NumberSign(field string, ok, fail uint8) StatusSign {
	return StatusSign{field: field, kind: SignNumber, ok: ok, fail: fail}
}

// StringSign encodes success as ok and failure as fail.
func StringSign(field, ok, fail string) StatusSign {
	return StatusSign{field: field, kind: SignString, ok: ok, fail: fail}
}

// Field returns the field name.
func (s StatusSign) Field() string { return s.field }

// Type returns the encoding.
func (s StatusSign) Type() SignType { return s.kind }

// Value returns the encoded sign for the given branch.
func (s StatusSign) Value(success bool) any {
	if success {
		return s.ok
	}
	return s.fail
}
