package srec

import "fmt"

// Limits imposed by the single-byte count field. The count byte covers the
// address bytes, the payload bytes and the checksum byte.
const (
	// MaxAddress24 is the largest value representable in a 24-bit address field
	MaxAddress24 = 0xFFFFFF

	// maxBodyBytes is the maximum number of address + payload bytes per record
	maxBodyBytes = 0xFE
)

// Address16 is a 16-bit memory address, used by S0, S1 and S9 records.
type Address16 uint16

// Address24 is a 24-bit memory address, used by S2 and S8 records.
// The top byte must be zero; values above MaxAddress24 are rejected when
// the record is encoded.
type Address24 uint32

// Address32 is a 32-bit memory address, used by S3 and S7 records.
type Address32 uint32

// bytes returns the address in big-endian order.
func (a Address16) bytes() []byte {
	return []byte{byte(a >> 8), byte(a)}
}

func (a Address24) bytes() []byte {
	return []byte{byte(a >> 16), byte(a >> 8), byte(a)}
}

func (a Address32) bytes() []byte {
	return []byte{byte(a >> 24), byte(a >> 16), byte(a >> 8), byte(a)}
}

// Record is a single line of an SREC file.
//
// It is a closed set: the only implementations are the nine concrete record
// types S0, S1, S2, S3, S5, S6, S7, S8 and S9 in this package (S4 is
// reserved by the format and has no type). Callers inspect a decoded Record
// with a type switch over those types.
type Record interface {
	// typeDigit returns the ASCII digit following the 'S' marker.
	typeDigit() byte

	// body returns the address and payload bytes that follow the count
	// byte on the encoded line, excluding the checksum.
	body() ([]byte, error)
}

// S0 is the file header record. The header text is conventionally short
// ASCII metadata (module name, version); its address field is always zero.
type S0 struct {
	Header string
}

// S1 is a data record with a 16-bit address.
type S1 struct {
	Address Address16
	Data    []byte
}

// S2 is a data record with a 24-bit address.
type S2 struct {
	Address Address24
	Data    []byte
}

// S3 is a data record with a 32-bit address.
type S3 struct {
	Address Address32
	Data    []byte
}

// S5 is a 16-bit record count record. Count is the number of S1/S2/S3
// records preceding it in the file. The codec does not verify the value
// against the actual record count; that is the producer's responsibility.
type S5 struct {
	Count uint16
}

// S6 is a 24-bit record count record. Values above MaxAddress24 are
// rejected when the record is encoded.
type S6 struct {
	Count uint32
}

// S7 is a termination record carrying a 32-bit start address.
type S7 struct {
	Address Address32
}

// S8 is a termination record carrying a 24-bit start address.
type S8 struct {
	Address Address24
}

// S9 is a termination record carrying a 16-bit start address.
type S9 struct {
	Address Address16
}

func (r S0) typeDigit() byte { return '0' }
func (r S1) typeDigit() byte { return '1' }
func (r S2) typeDigit() byte { return '2' }
func (r S3) typeDigit() byte { return '3' }
func (r S5) typeDigit() byte { return '5' }
func (r S6) typeDigit() byte { return '6' }
func (r S7) typeDigit() byte { return '7' }
func (r S8) typeDigit() byte { return '8' }
func (r S9) typeDigit() byte { return '9' }

func (r S0) body() ([]byte, error) {
	return append(Address16(0).bytes(), r.Header...), nil
}

func (r S1) body() ([]byte, error) {
	return append(r.Address.bytes(), r.Data...), nil
}

func (r S2) body() ([]byte, error) {
	if r.Address > MaxAddress24 {
		return nil, fmt.Errorf("%w: 0x%X does not fit in 24 bits", ErrAddressRange, uint32(r.Address))
	}
	return append(r.Address.bytes(), r.Data...), nil
}

func (r S3) body() ([]byte, error) {
	return append(r.Address.bytes(), r.Data...), nil
}

func (r S5) body() ([]byte, error) {
	return Address16(r.Count).bytes(), nil
}

func (r S6) body() ([]byte, error) {
	if r.Count > MaxAddress24 {
		return nil, fmt.Errorf("%w: count 0x%X does not fit in 24 bits", ErrAddressRange, r.Count)
	}
	return Address24(r.Count).bytes(), nil
}

func (r S7) body() ([]byte, error) {
	return r.Address.bytes(), nil
}

func (r S8) body() ([]byte, error) {
	if r.Address > MaxAddress24 {
		return nil, fmt.Errorf("%w: 0x%X does not fit in 24 bits", ErrAddressRange, uint32(r.Address))
	}
	return r.Address.bytes(), nil
}

func (r S9) body() ([]byte, error) {
	return r.Address.bytes(), nil
}

// addressWidth returns the size in bytes of the address field (or, for S5
// and S6, the count field) for a record type digit.
func addressWidth(typ byte) int {
	switch typ {
	case '0', '1', '5', '9':
		return 2
	case '2', '6', '8':
		return 3
	default: // '3', '7'
		return 4
	}
}

// hasPayload reports whether a record type carries payload bytes after its
// address field. Count and termination records do not.
func hasPayload(typ byte) bool {
	switch typ {
	case '0', '1', '2', '3':
		return true
	default:
		return false
	}
}
