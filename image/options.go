package image

// AddressFormat selects which data record type an image is emitted as.
type AddressFormat int

const (
	// Smallest picks the narrowest record type whose address field fits
	// every record in the image: S1 up to 0xFFFF, S2 up to 0xFFFFFF, S3
	// beyond. The whole image uses one record type.
	Smallest AddressFormat = iota

	// Format16 forces S1 records (16-bit addresses).
	Format16

	// Format24 forces S2 records (24-bit addresses).
	Format24

	// Format32 forces S3 records (32-bit addresses).
	Format32
)

// maxRecordSize is the largest payload an S3 record can carry: the count
// byte covers 4 address bytes, the payload and the checksum byte.
const maxRecordSize = 250

// defaultRecordSize is the conventional SREC payload size per data record.
const defaultRecordSize = 32

// Config holds record generation settings.
type Config struct {
	// RecordSize is the maximum number of data bytes per record
	RecordSize int

	// Format selects the data record type
	Format AddressFormat

	// StartAddress is carried by the termination record
	StartAddress uint32
}

// defaultConfig returns the default generation settings.
func defaultConfig() Config {
	return Config{
		RecordSize: defaultRecordSize,
		Format:     Smallest,
	}
}

// Option is a functional option for record generation.
type Option func(*Config)

// WithRecordSize sets the maximum number of data bytes per record.
// Values outside 1..250 are ignored.
//
// Example:
//
//	records, err := img.Records(image.WithRecordSize(16))
func WithRecordSize(n int) Option {
	return func(c *Config) {
		if n > 0 && n <= maxRecordSize {
			c.RecordSize = n
		}
	}
}

// WithAddressFormat forces a specific data record type instead of the
// default Smallest selection.
//
// Example:
//
//	records, err := img.Records(image.WithAddressFormat(image.Format32))
func WithAddressFormat(f AddressFormat) Option {
	return func(c *Config) {
		c.Format = f
	}
}

// WithStartAddress sets the execution start address carried by the
// termination record emitted by FileRecords. The default is zero.
func WithStartAddress(addr uint32) Option {
	return func(c *Config) {
		c.StartAddress = addr
	}
}
