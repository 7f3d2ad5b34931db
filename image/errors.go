package image

import "fmt"

// OverlapError indicates that a block added to an image overlaps a block
// already present.
type OverlapError struct {
	// Address and Length describe the rejected block.
	Address uint32
	Length  int

	// ExistingAddress and ExistingLength describe the block it collides with.
	ExistingAddress uint32
	ExistingLength  int
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("block at 0x%08X (%d bytes) overlaps existing block at 0x%08X (%d bytes)",
		e.Address, e.Length, e.ExistingAddress, e.ExistingLength)
}
