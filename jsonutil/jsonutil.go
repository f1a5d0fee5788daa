package jsonutil

import (
	"io"

	"github.com/bytedance/sonic"
)

var api = sonic.ConfigStd

// Marshal encodes v using the standard-compatible sonic configuration.
func Marshal(v any) ([]byte, error) {
	return api.Marshal(v)
}

// MarshalIndent is like Marshal but applies prefix and indent to each line.
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return api.MarshalIndent(v, prefix, indent)
}

// Unmarshal decodes data into v.
func Unmarshal(data []byte, v any) error {
	return api.Unmarshal(data, v)
}

// Encode writes the JSON encoding of v to w followed by a newline.
func Encode(w io.Writer, v any) error {
	return api.NewEncoder(w).Encode(v)
}

// Decode reads the next JSON value from r into v.
func Decode(r io.Reader, v any) error {
	return api.NewDecoder(r).Decode(v)
}
