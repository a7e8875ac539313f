package flamerush

import "testing"

func TestCatalogOrderAndPrices(t *testing.T) {
	want := []struct {
		name  string
		price int
	}{
		{"classic", 0},
		{"blue", 100},
		{"purple", 150},
		{"neon", 200},
		{"golden", 300},
		{"rainbow", 500},
	}
	got := Catalog()
	if len(got) != len(want) {
		t.Fatalf("catalog has %d entries, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Name != w.name || got[i].Price != w.price {
			t.Errorf("catalog[%d] = %s/%d, want %s/%d", i, got[i].Name, got[i].Price, w.name, w.price)
		}
	}
}

func TestCatalogIsCopied(t *testing.T) {
	c := Catalog()
	c[1].Price = 0
	if blue, _ := LookupCosmetic("blue"); blue.Price != 100 {
		t.Error("mutating Catalog() result changed the catalog")
	}
}

func TestPalette(t *testing.T) {
	if got := Palette("blue"); len(got) != 1 || got[0] != ColorFromHex(0x00bfff) {
		t.Errorf("Palette(blue) = %v", got)
	}
	rainbow := Palette("rainbow")
	if len(rainbow) != 6 {
		t.Fatalf("rainbow palette has %d colors, want 6", len(rainbow))
	}
	if rainbow[0] != ColorFromHex(0xff0000) || rainbow[5] != ColorFromHex(0x9900ff) {
		t.Errorf("rainbow palette = %v", rainbow)
	}
	if got := Palette("missing"); len(got) != 1 || got[0] != ColorFromHex(0xff4500) {
		t.Errorf("Palette(missing) = %v, want classic", got)
	}
}

func TestLookupCosmetic(t *testing.T) {
	if _, ok := LookupCosmetic("golden"); !ok {
		t.Error("golden not found")
	}
	if _, ok := LookupCosmetic("Golden"); ok {
		t.Error("lookup should be case sensitive")
	}
}
