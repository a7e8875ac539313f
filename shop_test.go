package flamerush

import (
	"errors"
	"testing"
	"time"
)

// fakePresenter records what the shop asked it to show.
type fakePresenter struct {
	visible  bool
	rows     []ShopRow
	coins    int
	shows    int
	rejected []string
}

func (f *fakePresenter) Show(rows []ShopRow, coins int) {
	f.visible = true
	f.rows = rows
	f.coins = coins
	f.shows++
}

func (f *fakePresenter) Hide() { f.visible = false }

func (f *fakePresenter) Reject(message string) { f.rejected = append(f.rejected, message) }

func (f *fakePresenter) row(name string) ShopRow {
	for _, r := range f.rows {
		if r.Name == name {
			return r
		}
	}
	return ShopRow{}
}

func openTestShop(t *testing.T, coins string) (*Shop, *fakePresenter, *Session, *MemoryStore) {
	t.Helper()
	st := NewMemoryStore()
	if coins != "" {
		st.Set(KeyCoins, coins)
	}
	s := newTestSession(t, quietConfig(), st)
	view := &fakePresenter{}
	sh := NewShop(view)
	if err := sh.Open(s); err != nil {
		t.Fatalf("Open: %v", err)
	}
	return sh, view, s, st
}

func TestShopOpenShowsCatalog(t *testing.T) {
	sh, view, s, _ := openTestShop(t, "120")
	if !sh.IsOpen() || !s.ShopOpen() || !view.visible {
		t.Fatal("shop not open")
	}
	if len(view.rows) != 6 || view.coins != 120 {
		t.Fatalf("presented %d rows and %d coins, want 6 and 120", len(view.rows), view.coins)
	}
	classic := view.rows[0]
	if classic.Name != "classic" || !classic.Unlocked || !classic.Selected {
		t.Errorf("classic row = %+v, want unlocked and selected", classic)
	}
	if blue := view.row("blue"); blue.Unlocked || blue.Selected || blue.Price != 100 {
		t.Errorf("blue row = %+v", blue)
	}
	if len(view.row("rainbow").Palette) != 6 {
		t.Error("rainbow row should carry the full palette")
	}
}

func TestShopPurchaseAndSelect(t *testing.T) {
	sh, view, s, st := openTestShop(t, "110")
	var selected string
	sh.OnSelect = func(name string) { selected = name }

	if err := sh.Select("blue"); err != nil {
		t.Fatalf("Select(blue): %v", err)
	}
	p := s.Profile()
	if p.Coins() != 10 || !p.IsUnlocked("blue") || p.CurrentFlame() != "blue" {
		t.Errorf("profile = coins %d, blue %v, flame %s", p.Coins(), p.IsUnlocked("blue"), p.CurrentFlame())
	}
	for key, want := range map[string]string{
		KeyCoins:          "10",
		UnlockKey("blue"): "true",
		KeyCurrentFlame:   "blue",
	} {
		if got := mustGet(t, st, key); got != want {
			t.Errorf("stored %s = %q, want %q", key, got, want)
		}
	}
	if selected != "blue" {
		t.Errorf("OnSelect got %q, want blue", selected)
	}
	if view.shows != 2 || !view.row("blue").Selected || view.coins != 10 {
		t.Errorf("rows not refreshed: shows %d, blue %+v, coins %d", view.shows, view.row("blue"), view.coins)
	}
}

func TestShopRejectsWhenTooPoor(t *testing.T) {
	sh, view, s, st := openTestShop(t, "90")
	called := false
	sh.OnSelect = func(string) { called = true }

	err := sh.Select("blue")
	if !errors.Is(err, ErrInsufficientCoins) {
		t.Fatalf("err = %v, want ErrInsufficientCoins", err)
	}
	if len(view.rejected) != 1 || view.rejected[0] != "Not enough coins!" {
		t.Errorf("rejections = %q", view.rejected)
	}
	p := s.Profile()
	if p.Coins() != 90 || p.IsUnlocked("blue") || p.CurrentFlame() != "classic" {
		t.Error("state changed after a rejected purchase")
	}
	if _, ok, _ := st.Get(UnlockKey("blue")); ok {
		t.Error("unlock flag written after a rejected purchase")
	}
	if called {
		t.Error("OnSelect called after a rejected purchase")
	}
}

func TestShopSelectOwnedCostsNothing(t *testing.T) {
	sh, _, s, _ := openTestShop(t, "300")
	if err := sh.Select("golden"); err != nil {
		t.Fatal(err)
	}
	if err := sh.Select("classic"); err != nil {
		t.Fatal(err)
	}
	if err := sh.Select("golden"); err != nil {
		t.Fatal(err)
	}
	if s.Profile().Coins() != 0 || s.Profile().CurrentFlame() != "golden" {
		t.Errorf("coins %d flame %s, want 0 golden", s.Profile().Coins(), s.Profile().CurrentFlame())
	}
}

func TestShopUnknownCosmetic(t *testing.T) {
	sh, view, _, _ := openTestShop(t, "1000")
	if err := sh.Select("plaid"); !errors.Is(err, ErrUnknownCosmetic) {
		t.Errorf("err = %v, want ErrUnknownCosmetic", err)
	}
	if len(view.rejected) != 0 {
		t.Error("unknown cosmetic should not show the coin rejection")
	}
}

func TestShopClose(t *testing.T) {
	sh, view, s, _ := openTestShop(t, "")
	sh.Close()
	if sh.IsOpen() || s.ShopOpen() || view.visible {
		t.Error("shop still open after Close")
	}
	if s.Timers().Paused() {
		t.Error("timers still paused after Close")
	}
	if err := sh.Select("classic"); !errors.Is(err, ErrShopClosed) {
		t.Errorf("Select on closed shop err = %v, want ErrShopClosed", err)
	}
	sh.Close()
}

func TestShopCannotOpenAfterGameOver(t *testing.T) {
	s := newTestSession(t, quietConfig(), NewMemoryStore())
	placeObstacle(s)
	s.Tick(time.Second / 60)

	view := &fakePresenter{}
	sh := NewShop(view)
	if err := sh.Open(s); !errors.Is(err, ErrGameOver) {
		t.Errorf("Open err = %v, want ErrGameOver", err)
	}
	if sh.IsOpen() || view.visible {
		t.Error("shop opened after game over")
	}
}
