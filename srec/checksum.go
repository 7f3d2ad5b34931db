package srec

// Checksum computes the 8-bit SREC line checksum: the one's complement of
// the low byte of the sum of the input bytes. The input covers the count
// byte, the address bytes and the payload bytes; the 'S' marker and the
// type digit are excluded.
func Checksum(data []byte) byte {
	var sum byte
	for _, b := range data {
		sum += b
	}
	// One's complement: 0xFF - sum
	return ^sum
}
