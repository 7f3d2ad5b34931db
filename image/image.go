package image

import (
	"slices"
	"sort"
)

// Block is a contiguous run of bytes starting at Address.
type Block struct {
	Address uint32
	Data    []byte
}

// Image is a sparse memory image assembled from non-overlapping blocks.
// Blocks that become contiguous are merged, so the image always holds the
// minimal set of runs in ascending address order.
//
// The zero value is an empty image ready for use; New is provided for
// symmetry with the rest of the module.
type Image struct {
	blocks []Block
}

// New returns an empty image.
func New() *Image {
	return &Image{}
}

// Add copies data into the image at the given address. Adding a range that
// overlaps an existing block fails with an *OverlapError and leaves the
// image unchanged. Adding an empty slice is a no-op.
func (img *Image) Add(address uint32, data []byte) error {
	if len(data) == 0 {
		return nil
	}

	// Ranges are compared in 64 bits so a block ending at the top of the
	// 32-bit address space does not wrap.
	start := uint64(address)
	end := start + uint64(len(data))
	for _, b := range img.blocks {
		bStart := uint64(b.Address)
		bEnd := bStart + uint64(len(b.Data))
		if start < bEnd && bStart < end {
			return &OverlapError{
				Address:         address,
				Length:          len(data),
				ExistingAddress: b.Address,
				ExistingLength:  len(b.Data),
			}
		}
	}

	i := sort.Search(len(img.blocks), func(i int) bool {
		return img.blocks[i].Address > address
	})
	img.blocks = slices.Insert(img.blocks, i, Block{
		Address: address,
		Data:    slices.Clone(data),
	})
	img.mergeContiguous()
	return nil
}

// Blocks returns the image's blocks in ascending address order. The slice
// is a copy; the block data is shared with the image.
func (img *Image) Blocks() []Block {
	return slices.Clone(img.blocks)
}

// Size returns the total number of data bytes in the image.
func (img *Image) Size() int {
	var n int
	for _, b := range img.blocks {
		n += len(b.Data)
	}
	return n
}

// mergeContiguous joins adjacent blocks whose ranges touch. Blocks must
// already be sorted by address.
func (img *Image) mergeContiguous() {
	out := img.blocks[:0]
	for _, b := range img.blocks {
		if n := len(out); n > 0 {
			prev := &out[n-1]
			if uint64(prev.Address)+uint64(len(prev.Data)) == uint64(b.Address) {
				prev.Data = append(prev.Data, b.Data...)
				continue
			}
		}
		out = append(out, b)
	}
	img.blocks = out
}
