// Package image assembles binary data scattered across a memory address
// space and converts it into SREC records.
//
// An Image collects non-overlapping blocks of bytes. Blocks that touch are
// merged, blocks that collide are rejected, so the image always describes
// each address at most once:
//
//	img := image.New()
//	if err := img.Add(0x1000, firmware); err != nil {
//	    log.Fatal(err)
//	}
//	if err := img.Add(0x8000, config); err != nil {
//	    log.Fatal(err)
//	}
//
// Records splits the blocks into data records; FileRecords wraps them into
// a complete file sequence with header, count and termination records:
//
//	records, err := img.FileRecords("MYFW",
//	    image.WithRecordSize(16),
//	    image.WithStartAddress(0x1000),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	s, err := srec.Generate(records)
//
// By default the narrowest record type that fits every address is used and
// records carry at most 32 data bytes.
package image
