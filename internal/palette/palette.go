// Package palette converts between packed 32-bit RGBA values, hex strings and
// terminal colours.
package palette

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidHex is returned for malformed colour strings.
var ErrInvalidHex = errors.New("invalid hex colour")

// RGBA is a colour with an 8-bit alpha channel.
type RGBA struct {
	Color colorful.Color
	A     uint8
}

// FromPacked unpacks v laid out as R<<24 | G<<16 | B<<8 | A.
func FromPacked(v uint32) RGBA {
	return RGBA{
		Color: colorful.Color{
			R: float64(v>>24&0xff) / 255,
			G: float64(v>>16&0xff) / 255,
			B: float64(v>>8&0xff) / 255,
		},
		A: uint8(v & 0xff),
	}
}

// Packed packs the colour as R<<24 | G<<16 | B<<8 | A.
func (c RGBA) Packed() uint32 {
	r, g, b := c.Color.Clamped().RGB255()
	return uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(c.A)
}

// ParseHex parses "#rrggbb" or "#rrggbbaa". A missing alpha is opaque.
func ParseHex(s string) (RGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}

	alpha := uint8(0xff)
	switch len(s) {
	case 7:
	case 9:
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
		}
		alpha = uint8(a)
		s = s[:7]
	default:
		return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	col, err := colorful.Hex(s)
	if err != nil {
		return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	return RGBA{Color: col, A: alpha}, nil
}

// PackedFromHex parses a hex colour straight into its packed form.
func PackedFromHex(s string) (uint32, error) {
	c, err := ParseHex(s)
	if err != nil {
		return 0, err
	}
	return c.Packed(), nil
}

// Hex formats the colour as "#rrggbb", or "#rrggbbaa" when not opaque.
func (c RGBA) Hex() string {
	hex := c.Color.Clamped().Hex()
	if c.A == 0xff {
		return hex
	}
	return fmt.Sprintf("%s%02x", hex, c.A)
}

// Lipgloss returns the colour for terminal rendering. Alpha is dropped.
func (c RGBA) Lipgloss() lipgloss.Color {
	return lipgloss.Color(c.Color.Clamped().Hex())
}

// IsDark reports whether light text reads better on top of the colour.
func (c RGBA) IsDark() bool {
	l, _, _ := c.Color.Lab()
	return l < 0.5
}
