// bitops project bitops.go
package bitops

import "math/bits"

func SetBit(ary []byte, bit uint) []byte {
	ary[bit>>3] |= (1 << (bit & 7))
	return ary
}

func GetBit(ary []byte, bit uint) bool {
	return (ary[bit>>3]&(1<<(bit&7)) != 0)
}

// Set is a fixed size set of small non-negative integers.
type Set struct {
	size int
	bits []byte
}

// New returns an empty set able to hold the values [0, size).
func New(size int) *Set {
	return &Set{size: size, bits: make([]byte, (size+7)/8)}
}

// Add inserts v and reports whether it was newly added.  Values outside the
// set's range are rejected.
func (s *Set) Add(v int) bool {
	if v < 0 || v >= s.size || GetBit(s.bits, uint(v)) {
		return false
	}
	SetBit(s.bits, uint(v))
	return true
}

// Len is the number of values in the set.
func (s *Set) Len() int {
	n := 0
	for _, b := range s.bits {
		n += bits.OnesCount8(b)
	}
	return n
}

// Full reports whether every value in [0, size) is present.
func (s *Set) Full() bool {
	return s.Len() == s.size
}

func (s *Set) Reset() {
	for i := range s.bits {
		s.bits[i] = 0
	}
}
