// Package storage hides where obfuscated constant words live.
//
// Each constant group builds one immutable Container and publishes it to the
// process-wide Arena. The group keeps only the arena index XORed with its key
// mix, so locating the container requires the key components at read time.
package storage

import "math/rand/v2"

// Container holds the stored words of one constant group.
//
// 64-bit constants occupy one word. 32-bit constants occupy the low half of one
// word whose high half is random padding. Decimals pack their four 32-bit slots
// into two words, low half first. No stored word has a predictable half.
// Containers are never mutated after they are published.
type Container struct {
	words []uint64
}

// NewContainer copies words into a new Container.
func NewContainer(words []uint64) *Container {
	c := &Container{words: make([]uint64, len(words))}
	copy(c.words, words)
	return c
}

// Len returns the number of stored words.
func (c *Container) Len() int {
	return len(c.words)
}

// Word returns the stored word at offset. It panics if offset is out of range.
func (c *Container) Word(offset int) uint64 {
	return c.words[offset]
}

// Word32 returns the low 32 bits of the stored word at offset.
func (c *Container) Word32(offset int) uint32 {
	return uint32(c.words[offset])
}

// Words4 returns the four 32-bit slots packed into the two stored words at offset.
func (c *Container) Words4(offset int) [4]uint32 {
	lo, hi := c.words[offset], c.words[offset+1]
	return [4]uint32{uint32(lo), uint32(lo >> 32), uint32(hi), uint32(hi >> 32)}
}

// Builder appends stored words in slot order. The zero value is ready to use.
type Builder struct {
	words []uint64
	pad   func() uint32
}

// Append64 appends one 64-bit word and returns its offset.
func (b *Builder) Append64(word uint64) int {
	b.words = append(b.words, word)
	return len(b.words) - 1
}

// Append32 appends one 32-bit word with random high bits and returns its offset.
func (b *Builder) Append32(word uint32) int {
	return b.Append64(uint64(b.padding())<<32 | uint64(word))
}

// Append128 packs four 32-bit words into two stored words and returns the offset of the first.
func (b *Builder) Append128(words [4]uint32) int {
	offset := b.Append64(uint64(words[1])<<32 | uint64(words[0]))
	b.Append64(uint64(words[3])<<32 | uint64(words[2]))
	return offset
}

func (b *Builder) padding() uint32 {
	if b.pad == nil {
		return rand.Uint32()
	}
	return b.pad()
}

// Build returns the finished Container.
func (b *Builder) Build() *Container {
	return NewContainer(b.words)
}
