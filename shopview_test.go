package flamerush

import (
	"testing"
	"time"
)

func testRows() []ShopRow {
	return shopRows(&Profile{currentFlame: DefaultCosmetic, unlocked: map[string]bool{DefaultCosmetic: true}})
}

func center(r Rect) (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

func TestShopViewSlidesIn(t *testing.T) {
	v := newShopView(shopPanel)
	v.Show(testRows(), 90)
	if !v.visible || v.coins != 90 || len(v.rows) != len(catalog) {
		t.Fatalf("view = %+v", v)
	}
	if v.offsetY != shopPanel.Height {
		t.Errorf("offset = %v, want the panel height", v.offsetY)
	}

	v.update(100 * time.Millisecond)
	if v.offsetY <= 0 || v.offsetY >= shopPanel.Height {
		t.Errorf("offset mid-slide = %v", v.offsetY)
	}
	v.update(200 * time.Millisecond)
	if v.offsetY != 0 || v.slide != nil {
		t.Errorf("offset = %v after the slide", v.offsetY)
	}

	// Refreshing an open panel does not replay the slide.
	v.Show(testRows(), 80)
	if v.slide != nil || v.coins != 80 {
		t.Errorf("refresh restarted the slide or kept stale coins: %+v", v)
	}
}

func TestShopViewRejectMessageExpires(t *testing.T) {
	v := newShopView(shopPanel)
	v.Show(testRows(), 0)
	v.Reject("Not enough coins!")
	if v.message != "Not enough coins!" {
		t.Fatalf("message = %q", v.message)
	}
	v.update(time.Second)
	if v.message == "" {
		t.Error("message cleared too early")
	}
	v.update(600 * time.Millisecond)
	if v.message != "" {
		t.Errorf("message = %q after it expired", v.message)
	}

	v.Reject("Not enough coins!")
	v.Hide()
	if v.visible || v.message != "" {
		t.Error("Hide should clear the panel and its message")
	}
}

func TestShopViewHit(t *testing.T) {
	v := newShopView(shopPanel)
	if name, closeBtn := v.hit(center(v.rowRect(1))); name != "" || closeBtn {
		t.Error("hidden rows should not be hit")
	}
	v.Show(testRows(), 0)

	for i, c := range catalog {
		if name, closeBtn := v.hit(center(v.rowRect(i))); name != c.Name || closeBtn {
			t.Errorf("row %d hit = %q, %v; want %q", i, name, closeBtn, c.Name)
		}
	}
	if _, closeBtn := v.hit(center(v.closeRect())); !closeBtn {
		t.Error("close button not hit")
	}
	if name, closeBtn := v.hit(0, 0); name != "" || closeBtn {
		t.Error("press outside the panel hit something")
	}
}

func TestShopViewLayoutFits(t *testing.T) {
	v := newShopView(shopPanel)
	closeBtn := v.closeRect()
	for i := range catalog {
		r := v.rowRect(i)
		if r.Y+r.Height > closeBtn.Y {
			t.Errorf("row %d (%+v) overlaps the close button %+v", i, r, closeBtn)
		}
		if r.X < shopPanel.X || r.X+r.Width > shopPanel.X+shopPanel.Width {
			t.Errorf("row %d leaves the panel", i)
		}
	}
	if closeBtn.Y+closeBtn.Height > shopPanel.Y+shopPanel.Height {
		t.Error("close button leaves the panel")
	}
}
