package render

// BlendMode defines compositing operations using a bitmask (Flags | Op)
type BlendMode uint8

// Blend operations (0-15)
const (
	opReplace uint8 = 0x00
	opAlpha   uint8 = 0x01
	opAdd     uint8 = 0x02
	opMax     uint8 = 0x03
	opScreen  uint8 = 0x05
)

// Blend flags
const (
	flagBg uint8 = 0x10
	flagFg uint8 = 0x20
)

// Pre-defined blend modes
const (
	BlendReplace  = BlendMode(opReplace | flagBg | flagFg)
	BlendAlpha    = BlendMode(opAlpha | flagBg | flagFg)
	BlendAdd      = BlendMode(opAdd | flagBg | flagFg)
	BlendMax      = BlendMode(opMax | flagBg | flagFg)
	BlendScreen   = BlendMode(opScreen | flagBg | flagFg)
	BlendAlphaBg  = BlendMode(opAlpha | flagBg)
	BlendScreenBg = BlendMode(opScreen | flagBg)
	BlendFgOnly   = BlendMode(opReplace | flagFg)
)

func applyOp(op uint8, dst, src RGB, alpha float64) RGB {
	switch op {
	case opReplace:
		return src
	case opAlpha:
		return Blend(dst, src, alpha)
	case opAdd:
		return Add(dst, src, alpha)
	case opMax:
		return Max(dst, src, alpha)
	case opScreen:
		return Screen(dst, src, alpha)
	}
	return dst
}
