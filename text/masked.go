package text

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Masked is a string displayed as a run of one mask character, such as a
// password field. Only Unmasked exposes the real content.
type Masked struct {
	inner string
	mask  rune
}

// NewMasked wraps s, displaying mask in its place
func NewMasked(s string, mask rune) Masked {
	return Masked{inner: s, mask: mask}
}

// MaskChar returns the character shown for each grapheme cluster
func (m Masked) MaskChar() rune {
	return m.mask
}

// Value returns one mask character per grapheme cluster of the content
func (m Masked) Value() string {
	n := uniseg.GraphemeClusterCount(m.inner)
	return strings.Repeat(string(m.mask), n)
}

// Unmasked returns the wrapped content
func (m Masked) Unmasked() string {
	return m.inner
}

// String returns the masked value so formatting never leaks the content
func (m Masked) String() string {
	return m.Value()
}

// Span returns the masked value as an unstyled span
func (m Masked) Span() Span {
	return Raw(m.Value())
}

// Line returns the masked value as an unstyled line
func (m Masked) Line() Line {
	return LineFrom(m.Span())
}
