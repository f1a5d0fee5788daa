package outcome

// Nil is the payload of handlers that have nothing to return. It is written
// as JSON null.
type Nil struct{}

// MarshalJSON implements json.Marshaler.
func (Nil) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}
