package srec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChecksum(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected byte
	}{
		{
			name:     "empty data",
			data:     []byte{},
			expected: 0xFF, // one's complement of 0
		},
		{
			name:     "single byte",
			data:     []byte{0x01},
			expected: 0xFE,
		},
		{
			name:     "sum overflows a byte",
			data:     []byte{0xFF, 0xFF},
			expected: 0x01, // only the low byte of the sum counts
		},
		{
			name:     "all ones",
			data:     []byte{0xFF},
			expected: 0x00,
		},
		{
			name:     "data record body",
			data:     []byte{0x07, 0x12, 0x34, 0x00, 0x01, 0x02, 0x03},
			expected: 0xAC,
		},
		{
			name:     "header record body",
			data:     []byte{0x06, 0x00, 0x00, 0x48, 0x44, 0x52},
			expected: 0x1B,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Checksum(tt.data))
		})
	}
}
