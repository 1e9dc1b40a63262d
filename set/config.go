package set

import (
	"fmt"

	"github.com/arloliu/hodges/endian"
	"github.com/arloliu/hodges/internal/options"
	"github.com/arloliu/hodges/section"
)

// Config collects the layout parameters for a fresh Set.
//
// The zero value is not usable; newConfig supplies the defaults (256 slots
// of 3 bytes, 2-byte count field, 1-byte width field). Size-field widths
// left unset are sized to the minimum number of bytes their value needs,
// which reproduces the default p=2/q=1 layout for the default geometry.
type Config struct {
	slotCount  uint64
	slotWidth  uint64
	countWidth uint8
	widthWidth uint8

	countWidthSet bool
	widthWidthSet bool
}

func newConfig() *Config {
	return &Config{
		slotCount: section.DefaultSlotCount,
		slotWidth: section.DefaultSlotWidth,
	}
}

// layout resolves the configuration into a validated Layout.
func (c *Config) layout() (*section.Layout, error) {
	countWidth := c.countWidth
	if !c.countWidthSet {
		countWidth = uint8(endian.UintLen(c.slotCount))
	}

	widthWidth := c.widthWidth
	if !c.widthWidthSet {
		widthWidth = uint8(endian.UintLen(c.slotWidth))
	}

	return section.NewLayout(countWidth, widthWidth, c.slotCount, c.slotWidth)
}

// Option represents a functional option for configuring a fresh Set.
type Option = options.Option[*Config]

// WithSlotCount sets the number of slots (M). It must be a power of two;
// raising it lowers the false negative rate at the cost of buffer size.
func WithSlotCount(n uint64) Option {
	return options.NoError(func(c *Config) {
		c.slotCount = n
	})
}

// WithSlotWidth sets the per-slot fingerprint width in bytes (N), 1..8.
// Raising it lowers the false positive rate.
func WithSlotWidth(n uint64) Option {
	return options.NoError(func(c *Config) {
		c.slotWidth = n
	})
}

// WithCountFieldWidth fixes the encoded width of the slot count field (p).
// Rarely needed: the width is sized automatically from the slot count.
func WithCountFieldWidth(w uint8) Option {
	return options.New(func(c *Config) error {
		if w < 1 || w > section.MaxFieldWidth {
			return fmt.Errorf("count field width %d out of range [1,%d]", w, section.MaxFieldWidth)
		}
		c.countWidth = w
		c.countWidthSet = true

		return nil
	})
}

// WithWidthFieldWidth fixes the encoded width of the slot width field (q).
// Rarely needed: the width is sized automatically from the slot width.
func WithWidthFieldWidth(w uint8) Option {
	return options.New(func(c *Config) error {
		if w < 1 || w > section.MaxFieldWidth {
			return fmt.Errorf("width field width %d out of range [1,%d]", w, section.MaxFieldWidth)
		}
		c.widthWidth = w
		c.widthWidthSet = true

		return nil
	})
}
