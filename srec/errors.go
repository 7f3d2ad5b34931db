package srec

import (
	"errors"
	"fmt"
)

// Decode errors. ParseRecord wraps these with detail about the offending
// field; match them with errors.Is.
var (
	// ErrMalformedLine indicates an empty line or one missing the 'S'
	// record marker.
	ErrMalformedLine = errors.New("malformed line")

	// ErrUnknownRecordType indicates a type digit outside {0,1,2,3,5,6,7,8,9}.
	ErrUnknownRecordType = errors.New("unknown record type")

	// ErrInvalidHex indicates a non-hexadecimal character in a hex field.
	ErrInvalidHex = errors.New("invalid hex")

	// ErrLengthMismatch indicates that the declared byte count does not
	// match the fields actually present on the line.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrChecksumMismatch indicates that the line's checksum byte does not
	// equal the checksum calculated over the line.
	ErrChecksumMismatch = errors.New("checksum mismatch")
)

// Encode errors, reported wrapped in an EncodeError.
var (
	// ErrAddressRange indicates an address or count value too large for
	// its record type's field width.
	ErrAddressRange = errors.New("address out of range")

	// ErrRecordTooLong indicates a payload so large that the count byte
	// would exceed 0xFF.
	ErrRecordTooLong = errors.New("record too long")
)

// EncodeError reports a record that cannot be encoded. It wraps
// ErrAddressRange or ErrRecordTooLong and carries the offending record.
type EncodeError struct {
	Record Record
	Err    error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("cannot encode S%c record: %v", e.Record.typeDigit(), e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }
