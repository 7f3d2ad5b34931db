package image

import (
	"fmt"
	"slices"

	"github.com/hexfmt/go-srec/srec"
)

// Records converts the image into S1, S2 or S3 data records, splitting each
// block into payloads of at most the configured record size (32 bytes by
// default).
//
// With the default Smallest format the widest record address present
// decides the record type for the whole image. Forcing a format too narrow
// for an address in the image fails with an error wrapping
// srec.ErrAddressRange.
func (img *Image) Records(opts ...Option) ([]srec.Record, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	records, _, err := img.records(cfg)
	return records, err
}

// FileRecords converts the image into a complete SREC file sequence: an S0
// header, the data records, a count record (S5, or S6 when the data record
// count exceeds 0xFFFF) and the termination record matching the data record
// type, carrying the configured start address.
func (img *Image) FileRecords(header string, opts ...Option) ([]srec.Record, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	data, format, err := img.records(cfg)
	if err != nil {
		return nil, err
	}

	out := make([]srec.Record, 0, len(data)+3)
	out = append(out, srec.S0{Header: header})
	out = append(out, data...)

	if len(data) > 0xFFFF {
		out = append(out, srec.S6{Count: uint32(len(data))})
	} else {
		out = append(out, srec.S5{Count: uint16(len(data))})
	}

	start := cfg.StartAddress
	switch format {
	case Format16:
		if start > 0xFFFF {
			return nil, fmt.Errorf("start address: %w: 0x%X does not fit in 16 bits", srec.ErrAddressRange, start)
		}
		out = append(out, srec.S9{Address: srec.Address16(start)})
	case Format24:
		if start > srec.MaxAddress24 {
			return nil, fmt.Errorf("start address: %w: 0x%X does not fit in 24 bits", srec.ErrAddressRange, start)
		}
		out = append(out, srec.S8{Address: srec.Address24(start)})
	default:
		out = append(out, srec.S7{Address: srec.Address32(start)})
	}

	return out, nil
}

// records emits the data records and reports the format actually used,
// which FileRecords needs to pick the matching termination record.
func (img *Image) records(cfg Config) ([]srec.Record, AddressFormat, error) {
	format := cfg.Format
	if format == Smallest {
		format = img.smallestFormat(cfg.RecordSize)
	}

	var records []srec.Record
	for _, b := range img.blocks {
		for off := 0; off < len(b.Data); off += cfg.RecordSize {
			chunk := slices.Clone(b.Data[off:min(off+cfg.RecordSize, len(b.Data))])
			addr := uint64(b.Address) + uint64(off)

			switch format {
			case Format16:
				if addr > 0xFFFF {
					return nil, format, fmt.Errorf("%w: 0x%X does not fit in 16 bits", srec.ErrAddressRange, addr)
				}
				records = append(records, srec.S1{Address: srec.Address16(addr), Data: chunk})
			case Format24:
				if addr > srec.MaxAddress24 {
					return nil, format, fmt.Errorf("%w: 0x%X does not fit in 24 bits", srec.ErrAddressRange, addr)
				}
				records = append(records, srec.S2{Address: srec.Address24(addr), Data: chunk})
			default:
				records = append(records, srec.S3{Address: srec.Address32(addr), Data: chunk})
			}
		}
	}
	return records, format, nil
}

// smallestFormat returns the narrowest format that fits every record start
// address the image will produce at the given record size. An empty image
// is Format16.
func (img *Image) smallestFormat(recordSize int) AddressFormat {
	var max uint64
	for _, b := range img.blocks {
		last := (len(b.Data) - 1) / recordSize * recordSize
		if addr := uint64(b.Address) + uint64(last); addr > max {
			max = addr
		}
	}
	switch {
	case max <= 0xFFFF:
		return Format16
	case max <= srec.MaxAddress24:
		return Format24
	default:
		return Format32
	}
}
