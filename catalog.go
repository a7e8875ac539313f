package flamerush

// DefaultCosmetic is the flame every profile owns.
const DefaultCosmetic = "classic"

// Cosmetic is a purchasable flame color.
type Cosmetic struct {
	Name  string
	Price int
	// Color is the trail tint. Ignored when Rainbow is set.
	Color   Color
	Rainbow bool
}

// Palette returns the colors the flame trail cycles through: one entry for a
// plain cosmetic, the rainbow cycle otherwise.
func (c Cosmetic) Palette() []Color {
	if c.Rainbow {
		out := make([]Color, len(rainbowPalette))
		copy(out, rainbowPalette)
		return out
	}
	return []Color{c.Color}
}

var rainbowPalette = []Color{
	ColorFromHex(0xff0000),
	ColorFromHex(0xff9900),
	ColorFromHex(0xffff00),
	ColorFromHex(0x00ff00),
	ColorFromHex(0x0099ff),
	ColorFromHex(0x9900ff),
}

// catalog is ordered as the shop lists it.
var catalog = []Cosmetic{
	{Name: "classic", Price: 0, Color: ColorFromHex(0xff4500)},
	{Name: "blue", Price: 100, Color: ColorFromHex(0x00bfff)},
	{Name: "purple", Price: 150, Color: ColorFromHex(0x9b59b6)},
	{Name: "neon", Price: 200, Color: ColorFromHex(0x00ff00)},
	{Name: "golden", Price: 300, Color: ColorFromHex(0xffd700)},
	{Name: "rainbow", Price: 500, Rainbow: true},
}

// Catalog returns a copy of the cosmetic catalog in display order.
func Catalog() []Cosmetic {
	out := make([]Cosmetic, len(catalog))
	copy(out, catalog)
	return out
}

// LookupCosmetic finds a catalog entry by name.
func LookupCosmetic(name string) (Cosmetic, bool) {
	for _, c := range catalog {
		if c.Name == name {
			return c, true
		}
	}
	return Cosmetic{}, false
}

// Palette resolves the trail colors for a cosmetic name. Unknown names fall
// back to the default cosmetic.
func Palette(name string) []Color {
	c, ok := LookupCosmetic(name)
	if !ok {
		c, _ = LookupCosmetic(DefaultCosmetic)
	}
	return c.Palette()
}
