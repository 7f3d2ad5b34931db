package image

import (
	"strings"
	"testing"

	"github.com/hexfmt/go-srec/srec"
	"github.com/stretchr/testify/require"
)

func TestImageRecords(t *testing.T) {
	t.Run("empty image yields no records", func(t *testing.T) {
		records, err := New().Records()
		require.NoError(t, err)
		require.Empty(t, records)
	})

	t.Run("smallest format picks S1 for 16-bit addresses", func(t *testing.T) {
		img := New()
		require.NoError(t, img.Add(0x1234, []byte{0x11, 0x22, 0x33, 0x44}))

		records, err := img.Records()
		require.NoError(t, err)
		require.Equal(t, []srec.Record{
			srec.S1{Address: 0x1234, Data: []byte{0x11, 0x22, 0x33, 0x44}},
		}, records)
	})

	t.Run("smallest format widens to S2 for the whole image", func(t *testing.T) {
		img := New()
		require.NoError(t, img.Add(0x1234, []byte{0x11, 0x22}))
		require.NoError(t, img.Add(0x123456, []byte{0x33, 0x44}))

		records, err := img.Records()
		require.NoError(t, err)
		require.Equal(t, []srec.Record{
			srec.S2{Address: 0x1234, Data: []byte{0x11, 0x22}},
			srec.S2{Address: 0x123456, Data: []byte{0x33, 0x44}},
		}, records)
	})

	t.Run("smallest format widens to S3", func(t *testing.T) {
		img := New()
		require.NoError(t, img.Add(0x12345678, []byte{0x11}))

		records, err := img.Records()
		require.NoError(t, err)
		require.Equal(t, []srec.Record{
			srec.S3{Address: 0x12345678, Data: []byte{0x11}},
		}, records)
	})

	t.Run("forced format is honored", func(t *testing.T) {
		img := New()
		require.NoError(t, img.Add(0x1234, []byte{0x11, 0x22}))

		records, err := img.Records(WithAddressFormat(Format32))
		require.NoError(t, err)
		require.Equal(t, []srec.Record{
			srec.S3{Address: 0x1234, Data: []byte{0x11, 0x22}},
		}, records)
	})

	t.Run("forced format too narrow fails", func(t *testing.T) {
		img := New()
		require.NoError(t, img.Add(0x123456, []byte{0x11}))

		_, err := img.Records(WithAddressFormat(Format16))
		require.ErrorIs(t, err, srec.ErrAddressRange)

		img2 := New()
		require.NoError(t, img2.Add(0x12345678, []byte{0x11}))

		_, err = img2.Records(WithAddressFormat(Format24))
		require.ErrorIs(t, err, srec.ErrAddressRange)
	})

	t.Run("blocks split at the default record size", func(t *testing.T) {
		img := New()
		require.NoError(t, img.Add(0x1000, make([]byte, 70)))

		records, err := img.Records()
		require.NoError(t, err)
		require.Len(t, records, 3)

		r0 := records[0].(srec.S1)
		r1 := records[1].(srec.S1)
		r2 := records[2].(srec.S1)
		require.Equal(t, srec.Address16(0x1000), r0.Address)
		require.Len(t, r0.Data, 32)
		require.Equal(t, srec.Address16(0x1020), r1.Address)
		require.Len(t, r1.Data, 32)
		require.Equal(t, srec.Address16(0x1040), r2.Address)
		require.Len(t, r2.Data, 6)
	})

	t.Run("record size option", func(t *testing.T) {
		img := New()
		require.NoError(t, img.Add(0x0000, make([]byte, 40)))

		records, err := img.Records(WithRecordSize(16))
		require.NoError(t, err)
		require.Len(t, records, 3)
	})

	t.Run("out of range record sizes keep the default", func(t *testing.T) {
		img := New()
		require.NoError(t, img.Add(0x0000, make([]byte, 40)))

		for _, size := range []int{0, -1, 251} {
			records, err := img.Records(WithRecordSize(size))
			require.NoError(t, err)
			require.Len(t, records, 2)
		}
	})
}

func TestImageFileRecords(t *testing.T) {
	t.Run("empty image still produces a complete file", func(t *testing.T) {
		records, err := New().FileRecords("EMPTY")
		require.NoError(t, err)
		require.Equal(t, []srec.Record{
			srec.S0{Header: "EMPTY"},
			srec.S5{Count: 0},
			srec.S9{Address: 0},
		}, records)
	})

	t.Run("header, data, count and terminator in order", func(t *testing.T) {
		img := New()
		require.NoError(t, img.Add(0x1234, []byte{0x00, 0x01, 0x02, 0x03}))
		require.NoError(t, img.Add(0x1238, []byte{0x04, 0x05, 0x06, 0x07}))

		records, err := img.FileRecords("HDR", WithStartAddress(0x1234))
		require.NoError(t, err)
		require.Equal(t, []srec.Record{
			srec.S0{Header: "HDR"},
			srec.S1{Address: 0x1234, Data: []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07}},
			srec.S5{Count: 1},
			srec.S9{Address: 0x1234},
		}, records)
	})

	t.Run("terminator matches the record format", func(t *testing.T) {
		img := New()
		require.NoError(t, img.Add(0x12345678, []byte{0x11}))

		records, err := img.FileRecords("HDR")
		require.NoError(t, err)
		require.Equal(t, srec.S7{Address: 0}, records[len(records)-1])

		records, err = img.FileRecords("HDR", WithAddressFormat(Format24))
		require.Error(t, err) // 32-bit block cannot be forced into S2

		img2 := New()
		require.NoError(t, img2.Add(0x123456, []byte{0x11}))
		records, err = img2.FileRecords("HDR")
		require.NoError(t, err)
		require.Equal(t, srec.S8{Address: 0}, records[len(records)-1])
	})

	t.Run("start address must fit the terminator", func(t *testing.T) {
		img := New()
		require.NoError(t, img.Add(0x1000, []byte{0x11}))

		_, err := img.FileRecords("HDR", WithStartAddress(0x10000))
		require.ErrorIs(t, err, srec.ErrAddressRange)
	})

	t.Run("generated file parses back", func(t *testing.T) {
		img := New()
		require.NoError(t, img.Add(0x1000, []byte{0xDE, 0xAD, 0xBE, 0xEF}))
		require.NoError(t, img.Add(0x2000, make([]byte, 64)))

		records, err := img.FileRecords("FW01", WithStartAddress(0x1000))
		require.NoError(t, err)

		s, err := srec.Generate(records)
		require.NoError(t, err)

		parsed, err := srec.ParseReader(strings.NewReader(s))
		require.NoError(t, err)
		require.Equal(t, records, parsed)
	})
}
