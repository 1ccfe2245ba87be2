package index

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Bitmap is a set of row positions.
// It wraps the official roaring implementation.
type Bitmap struct {
	rb *roaring.Bitmap
}

// NewBitmap creates a new empty bitmap.
func NewBitmap() *Bitmap {
	return &Bitmap{rb: roaring.New()}
}

// Add adds a row to the bitmap.
func (b *Bitmap) Add(id uint32) {
	b.rb.Add(id)
}

// Contains checks if a row is in the bitmap.
func (b *Bitmap) Contains(id uint32) bool {
	return b.rb.Contains(id)
}

// IsEmpty returns true if the bitmap is empty.
func (b *Bitmap) IsEmpty() bool {
	return b.rb.IsEmpty()
}

// Cardinality returns the number of elements in the bitmap.
func (b *Bitmap) Cardinality() uint64 {
	return b.rb.GetCardinality()
}

// Clone returns a deep copy of the bitmap.
func (b *Bitmap) Clone() *Bitmap {
	return &Bitmap{rb: b.rb.Clone()}
}

// And computes the intersection of two bitmaps in place.
func (b *Bitmap) And(other *Bitmap) {
	b.rb.And(other.rb)
}

// All returns an iterator over the rows in ascending order.
func (b *Bitmap) All() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		it := b.rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}
