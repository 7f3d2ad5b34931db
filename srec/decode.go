package srec

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
)

// ParseRecord parses a single SREC line into a Record. Trailing CR/LF
// characters are stripped before parsing. Hex digits are accepted in both
// upper and lower case.
//
// On failure the returned error wraps one of ErrMalformedLine,
// ErrUnknownRecordType, ErrInvalidHex, ErrLengthMismatch or
// ErrChecksumMismatch.
func ParseRecord(line string) (Record, error) {
	line = strings.TrimRight(line, "\r\n")

	if len(line) == 0 {
		return nil, fmt.Errorf("%w: empty line", ErrMalformedLine)
	}
	if line[0] != 'S' {
		return nil, fmt.Errorf("%w: missing 'S' record marker", ErrMalformedLine)
	}
	if len(line) < 2 {
		return nil, fmt.Errorf("%w: missing type digit", ErrMalformedLine)
	}

	typ := line[1]
	switch typ {
	case '0', '1', '2', '3', '5', '6', '7', '8', '9':
	default:
		return nil, fmt.Errorf("%w: S%c", ErrUnknownRecordType, typ)
	}

	if len(line) < 4 {
		return nil, fmt.Errorf("%w: missing byte count", ErrMalformedLine)
	}

	countBytes, err := hex.DecodeString(line[2:4])
	if err != nil {
		return nil, fmt.Errorf("%w: byte count %q", ErrInvalidHex, line[2:4])
	}
	count := int(countBytes[0])

	// The count covers address bytes, payload bytes and the checksum byte,
	// so the rest of the line must be exactly count hex pairs.
	rest := line[4:]
	if len(rest) != 2*count {
		return nil, fmt.Errorf("%w: byte count %d declares %d hex characters, line has %d",
			ErrLengthMismatch, count, 2*count, len(rest))
	}

	width := addressWidth(typ)
	if count < width+1 {
		return nil, fmt.Errorf("%w: byte count %d is too small for an S%c record (minimum %d)",
			ErrLengthMismatch, count, typ, width+1)
	}
	if !hasPayload(typ) && count != width+1 {
		return nil, fmt.Errorf("%w: S%c records carry no payload, byte count must be %d, got %d",
			ErrLengthMismatch, typ, width+1, count)
	}

	data, err := hex.DecodeString(rest)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}

	sum := append([]byte{byte(count)}, data[:len(data)-1]...)
	want := Checksum(sum)
	if got := data[len(data)-1]; got != want {
		return nil, fmt.Errorf("%w: calculated 0x%02X, line has 0x%02X", ErrChecksumMismatch, want, got)
	}

	addr := data[:width]
	var payload []byte
	if n := len(data) - 1 - width; n > 0 {
		payload = data[width : len(data)-1]
	}

	switch typ {
	case '0':
		// Header text is conventionally NUL padded to a fixed length.
		return S0{Header: strings.TrimRight(string(payload), "\x00")}, nil
	case '1':
		return S1{Address: Address16(be16(addr)), Data: payload}, nil
	case '2':
		return S2{Address: Address24(be24(addr)), Data: payload}, nil
	case '3':
		return S3{Address: Address32(be32(addr)), Data: payload}, nil
	case '5':
		return S5{Count: be16(addr)}, nil
	case '6':
		return S6{Count: be24(addr)}, nil
	case '7':
		return S7{Address: Address32(be32(addr))}, nil
	case '8':
		return S8{Address: Address24(be24(addr))}, nil
	default: // '9'
		return S9{Address: Address16(be16(addr))}, nil
	}
}

func be16(b []byte) uint16 {
	return uint16(b[0])<<8 | uint16(b[1])
}

func be24(b []byte) uint32 {
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
}

func be32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

// Scanner decodes SREC lines one at a time from an io.Reader.
//
// A Scanner yields one result per non-blank input line, in input order. A
// line that fails to parse does not stop the scan; the failure is returned
// by Record for that line and scanning continues with the next line. The
// scan cannot be restarted once consumed.
//
//	sc := srec.NewScanner(f)
//	for sc.Scan() {
//	    rec, err := sc.Record()
//	    if err != nil {
//	        log.Printf("line %d: %v", sc.Line(), err)
//	        continue
//	    }
//	    // use rec
//	}
//	if err := sc.Err(); err != nil {
//	    // reader failure
//	}
type Scanner struct {
	sc   *bufio.Scanner
	line int
	rec  Record
	err  error
}

// NewScanner returns a Scanner reading SREC lines from r. Lines may be
// terminated by LF, CRLF or a bare CR.
func NewScanner(r io.Reader) *Scanner {
	sc := bufio.NewScanner(r)
	sc.Split(scanLines)
	return &Scanner{sc: sc}
}

// Scan advances to the next non-blank line, parsing it. It returns false
// when the input is exhausted or the underlying reader fails; check Err
// after the loop to distinguish the two.
func (s *Scanner) Scan() bool {
	for s.sc.Scan() {
		s.line++
		text := s.sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		s.rec, s.err = ParseRecord(text)
		return true
	}
	s.rec, s.err = nil, nil
	return false
}

// Record returns the record parsed by the last call to Scan, or the decode
// error for that line.
func (s *Scanner) Record() (Record, error) {
	return s.rec, s.err
}

// Line returns the 1-based input line number of the record returned by
// Record.
func (s *Scanner) Line() int {
	return s.line
}

// Err returns the first error encountered by the underlying reader. Decode
// failures of individual lines are reported by Record, not Err.
func (s *Scanner) Err() error {
	return s.sc.Err()
}

// scanLines is a bufio.SplitFunc accepting LF, CRLF and bare CR line
// terminators.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\r' {
			if i+1 < len(data) && data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			if i+1 == len(data) && !atEOF {
				// A LF may still follow the CR; wait for more data.
				return 0, nil, nil
			}
		}
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// ParseReader reads all records from r, stopping at the first line that
// fails to decode. The returned error carries the failing line number.
//
// Callers that want to keep going past bad lines should use Scanner
// directly.
func ParseReader(r io.Reader) ([]Record, error) {
	var records []Record
	sc := NewScanner(r)
	for sc.Scan() {
		rec, err := sc.Record()
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", sc.Line(), err)
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return records, nil
}

// Parse reads all records from the SREC file at the given path.
//
// Example:
//
//	records, err := srec.Parse("firmware.mot")
//	if err != nil {
//	    log.Fatal(err)
//	}
func Parse(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ParseReader(f)
}
