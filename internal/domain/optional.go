package domain

import "encoding/json"

// Optional distinguishes three JSON states for a patch field:
// key absent (Set=false, leave untouched), explicit null (Set=true,
// Valid=false, clear the field), and a value (Set=true, Valid=true).
type Optional[T any] struct {
	Set   bool
	Valid bool
	Value T
}

// UnmarshalJSON is only invoked when the key is present,
// so Set is true for both null and value payloads.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Valid = false
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// MarshalJSON round-trips the value; cleared and unset both encode as null
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
