package flamerush

import (
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	shopRowHeight  = 56
	shopRowGap     = 6
	shopSlideSecs  = 0.25
	rejectShowTime = 1500 * time.Millisecond
)

var (
	colorPanel    = Color{R: 0.08, G: 0.08, B: 0.1, A: 0.95}
	colorRow      = Color{R: 0.18, G: 0.18, B: 0.22, A: 1}
	colorSelected = ColorWhite
	colorReject   = ColorFromHex(0xff4d4d)
)

// shopView is the Ebitengine shop panel. It implements ShopPresenter and
// maps pointer presses back to catalog names.
type shopView struct {
	panel Rect

	visible bool
	rows    []ShopRow
	coins   int

	message     string
	messageLeft time.Duration

	slide   *gween.Tween
	offsetY float64
}

func newShopView(panel Rect) *shopView {
	return &shopView{panel: panel}
}

// Show implements ShopPresenter.
func (v *shopView) Show(rows []ShopRow, coins int) {
	if !v.visible {
		v.offsetY = v.panel.Height
		v.slide = gween.New(float32(v.panel.Height), 0, shopSlideSecs, ease.OutCubic)
	}
	v.visible = true
	v.rows = rows
	v.coins = coins
}

// Hide implements ShopPresenter.
func (v *shopView) Hide() {
	v.visible = false
	v.message = ""
	v.messageLeft = 0
}

// Reject implements ShopPresenter.
func (v *shopView) Reject(message string) {
	v.message = message
	v.messageLeft = rejectShowTime
}

func (v *shopView) update(dt time.Duration) {
	if v.slide != nil {
		val, done := v.slide.Update(float32(dt.Seconds()))
		v.offsetY = float64(val)
		if done {
			v.slide = nil
			v.offsetY = 0
		}
	}
	if v.messageLeft > 0 {
		v.messageLeft -= dt
		if v.messageLeft <= 0 {
			v.message = ""
		}
	}
}

// rowRect is the hit and draw area of catalog row i, ignoring the slide.
func (v *shopView) rowRect(i int) Rect {
	return Rect{
		X:      v.panel.X + 20,
		Y:      v.panel.Y + 60 + float64(i)*(shopRowHeight+shopRowGap),
		Width:  v.panel.Width - 40,
		Height: shopRowHeight,
	}
}

func (v *shopView) closeRect() Rect {
	return Rect{X: v.panel.X + v.panel.Width/2 - 50, Y: v.panel.Y + v.panel.Height - 48, Width: 100, Height: 36}
}

// hit maps a press to a row name or the close button.
func (v *shopView) hit(x, y float64) (name string, close bool) {
	if v.closeRect().Contains(x, y) {
		return "", true
	}
	for i, r := range v.rows {
		if v.rowRect(i).Contains(x, y) {
			return r.Name, false
		}
	}
	return "", false
}

func (v *shopView) draw(dst *ebiten.Image) {
	if !v.visible {
		return
	}
	dy := v.offsetY
	panel := v.panel
	panel.Y += dy
	fillRect(dst, panel, colorPanel)

	drawText(dst, "FLAME SHOP", panel.X+20, panel.Y+16, 2, ColorWhite)
	drawText(dst, coinText(v.coins), panel.X+20, panel.Y+42, 1, colorCoins)

	for i, row := range v.rows {
		r := v.rowRect(i)
		r.Y += dy
		fillRect(dst, r, colorRow)
		if row.Selected {
			strokeRect(dst, r, 2, colorSelected)
		}

		swatch := Rect{X: r.X + 8, Y: r.Y + 8, Width: 40, Height: r.Height - 16}
		drawSwatch(dst, swatch, row.Palette)

		drawText(dst, strings.ToUpper(row.Name), r.X+60, r.Y+10, 1.5, ColorWhite)
		status := "UNLOCKED"
		if !row.Unlocked {
			status = "LOCKED  " + humanCoins(row.Price)
		}
		drawText(dst, status, r.X+60, r.Y+34, 1, colorCoins)
	}

	closeBtn := v.closeRect()
	closeBtn.Y += dy
	fillRect(dst, closeBtn, colorButton)
	drawTextCentered(dst, "CLOSE", closeBtn, 1.5, ColorWhite)

	if v.message != "" {
		msg := Rect{X: panel.X, Y: closeBtn.Y - 40, Width: panel.Width, Height: 30}
		drawTextCentered(dst, v.message, msg, 1.5, colorReject)
	}
}

// drawSwatch fills r with the palette as vertical stripes.
func drawSwatch(dst *ebiten.Image, r Rect, palette []Color) {
	if len(palette) == 0 {
		return
	}
	w := r.Width / float64(len(palette))
	for i, c := range palette {
		fillRect(dst, Rect{X: r.X + float64(i)*w, Y: r.Y, Width: w, Height: r.Height}, c)
	}
}
