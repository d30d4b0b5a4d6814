package amount

import (
	"encoding/binary"
	"strconv"
)

// MarshalJSON implements json.Marshaler. The amount is carried as its raw
// uint64 representation: the exact interchange form. Callers needing an
// approximate numeric value use Float64 explicitly.
func (a Amount) MarshalJSON() (data []byte, err error) {
	return strconv.AppendUint(nil, a.repr, 10), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Amount) UnmarshalJSON(data []byte) (err error) {
	defer Error.WrapP(&err)

	repr, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return err
	}

	a.repr = repr

	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler. The amount is encoded
// as 8 big-endian bytes of the raw representation.
func (a Amount) MarshalBinary() (data []byte, err error) {
	data = make([]byte, 8)
	binary.BigEndian.PutUint64(data, a.repr)

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (a *Amount) UnmarshalBinary(data []byte) (err error) {
	if len(data) != 8 {
		return Error.New("invalid length: %d", len(data))
	}

	a.repr = binary.BigEndian.Uint64(data)

	return nil
}
