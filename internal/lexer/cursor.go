package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"pystyle/internal/source"
)

// Cursor is a byte-oriented reader over a file's normalized content.
type Cursor struct {
	file *source.File
	Off  uint32
}

// NewCursor positions a cursor at the start of file.
func NewCursor(file *source.File) Cursor {
	return Cursor{file: file}
}

func (c *Cursor) len() uint32 {
	n, err := safecast.Conv[uint32](len(c.file.Content))
	if err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}
	return n
}

// EOF reports whether the cursor is past the last byte.
func (c *Cursor) EOF() bool {
	return c.Off >= c.len()
}

// Peek returns the current byte, or 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.file.Content[c.Off]
}

// PeekAt returns the byte at offset Off+n, or 0 past EOF.
func (c *Cursor) PeekAt(n uint32) byte {
	if c.Off+n >= c.len() {
		return 0
	}
	return c.file.Content[c.Off+n]
}

// Bump advances the cursor by n bytes, clamping at EOF.
func (c *Cursor) Bump(n uint32) {
	c.Off += n
	if total := c.len(); c.Off > total {
		c.Off = total
	}
}

// Slice returns the content between two offsets.
func (c *Cursor) Slice(start, end uint32) string {
	return string(c.file.Content[start:end])
}
