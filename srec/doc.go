// Package srec encodes and decodes the Motorola S-record (SREC) text format
// used to carry binary firmware and memory images as checksummed ASCII lines.
//
// # Line Format
//
// Every line is the 'S' marker, a type digit, and hex-encoded fields:
//
//	S<type>[Count(2)][Address(4|6|8)][Data(variable)][Checksum(2)]
//
// Example line:
//
//	S107123400010203AC
//	  S1 = data record with 16-bit address
//	  07 = byte count (address + data + checksum)
//	  1234 = address
//	  00010203 = data
//	  AC = checksum
//
// The byte count covers the address bytes, the data bytes and the checksum
// byte. The checksum is the one's complement of the low byte of the sum of
// every byte the count covers, plus the count byte itself.
//
// # Record Types
//
//	S0  header text, 16-bit address (zero by convention)
//	S1  data, 16-bit address
//	S2  data, 24-bit address
//	S3  data, 32-bit address
//	S5  16-bit count of preceding data records
//	S6  24-bit count of preceding data records
//	S7  termination, 32-bit start address
//	S8  termination, 24-bit start address
//	S9  termination, 16-bit start address
//
// S4 is reserved and rejected.
//
// # Usage
//
// Decode a whole file, stopping at the first bad line:
//
//	records, err := srec.Parse("firmware.mot")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, rec := range records {
//	    switch r := rec.(type) {
//	    case srec.S0:
//	        fmt.Printf("header: %q\n", r.Header)
//	    case srec.S1:
//	        fmt.Printf("%d bytes at 0x%04X\n", len(r.Data), uint16(r.Address))
//	    }
//	}
//
// Decode line by line, tolerating bad lines, with Scanner. Encode with
// EncodeRecord for a single line or Generate for a whole file:
//
//	s, err := srec.Generate([]srec.Record{
//	    srec.S0{Header: "HDR"},
//	    srec.S1{Address: 0x1234, Data: []byte{0x00, 0x01, 0x02, 0x03}},
//	    srec.S9{Address: 0x1234},
//	})
//
// # Error Handling
//
// Decode failures wrap one of the sentinel errors ErrMalformedLine,
// ErrUnknownRecordType, ErrInvalidHex, ErrLengthMismatch and
// ErrChecksumMismatch; match them with errors.Is. Each failure is local to
// its line: Scanner keeps scanning past a bad line, and the error messages
// include what was expected and what the line contained.
//
// Encoding fails only when a record violates its own field widths; the
// failure is an *EncodeError carrying the offending record.
//
// The codec holds no state across calls. Decoding never cross-checks S5/S6
// count records against the number of data records actually seen, and the
// codec enforces no ordering between records; both are caller policy.
package srec
