package srec

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// EncodeRecord formats a single record as an SREC line with uppercase hex
// digits and no line terminator.
//
// It fails with an *EncodeError if the record's address or count value does
// not fit its field width, or if the payload is so large that the count
// byte would exceed 0xFF.
func EncodeRecord(r Record) (string, error) {
	body, err := r.body()
	if err != nil {
		return "", &EncodeError{Record: r, Err: err}
	}
	if len(body) > maxBodyBytes {
		return "", &EncodeError{
			Record: r,
			Err:    fmt.Errorf("%w: %d address and payload bytes, maximum is %d", ErrRecordTooLong, len(body), maxBodyBytes),
		}
	}

	// count covers the body plus the checksum byte
	line := make([]byte, 0, len(body)+1)
	line = append(line, byte(len(body)+1))
	line = append(line, body...)

	var sb strings.Builder
	sb.Grow(2*len(line) + 4)
	sb.WriteByte('S')
	sb.WriteByte(r.typeDigit())
	for _, b := range line {
		fmt.Fprintf(&sb, "%02X", b)
	}
	fmt.Fprintf(&sb, "%02X", Checksum(line))

	return sb.String(), nil
}

// Generate formats records as an SREC file: one line per record in input
// order, each terminated with a line feed. An empty record list yields an
// empty string.
//
// Generate performs no whole-file validation; callers are responsible for
// record ordering, overlap and count record consistency.
func Generate(records []Record) (string, error) {
	var sb strings.Builder
	for i, r := range records {
		line, err := EncodeRecord(r)
		if err != nil {
			return "", fmt.Errorf("record %d: %w", i, err)
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

// Write formats records with Generate and writes the result to w.
func Write(w io.Writer, records []Record) error {
	s, err := Generate(records)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, s); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// WriteFile formats records with Generate and writes the result to the
// file at the given path, creating or truncating it.
func WriteFile(path string, records []Record) error {
	s, err := Generate(records)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(s), 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
