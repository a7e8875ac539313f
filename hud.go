package flamerush

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// shopButton is the HUD control that opens the shop.
var shopButton = Rect{X: 300, Y: 30, Width: 40, Height: 40}

var (
	hudFace = text.NewGoXFace(basicfont.Face7x13)

	colorScore     = ColorWhite
	colorCoins     = ColorFromHex(0xffd700)
	colorHighScore = ColorFromHex(0x2ecc71)
	colorButton    = ColorFromHex(0x3498db)
	colorStroke    = Color{A: 1}
)

func scoreText(score int) string {
	return "Score: " + humanize.Comma(int64(score))
}

func coinText(coins int) string {
	return "Coins: " + humanize.Comma(int64(coins))
}

func highScoreText(score int) string {
	return "High Score: " + humanize.Comma(int64(score))
}

// runText is one line of the best-runs list, rank counted from 1.
func runText(rank int, r Run) string {
	return fmt.Sprintf("%d. %s  %s", rank, humanize.Comma(int64(r.Score)), r.Flame)
}

// hudStats is the optional debug line.
type hudStats struct {
	fps, tps float64
	entities int
	shield   float64 // seconds left
}

func (st hudStats) String() string {
	return fmt.Sprintf("FPS %.1f  TPS %.1f  entities %d  shield %.1fs", st.fps, st.tps, st.entities, st.shield)
}

// drawHUD renders the score, coin, and high-score counters and the shop
// button. ox, oy is the camera shake offset.
func drawHUD(dst *ebiten.Image, s *Session, ox, oy float64, stats *hudStats) {
	p := s.Profile()
	drawTextOutlined(dst, scoreText(s.Score()), 20+ox, 20+oy, 2, colorScore)
	drawText(dst, coinText(p.Coins()), 20+ox, 60+oy, 1.5, colorCoins)
	drawText(dst, highScoreText(p.HighScore()), 20+ox, 100+oy, 1.5, colorHighScore)

	btn := shopButton
	btn.X += ox
	btn.Y += oy
	fillRect(dst, btn, colorButton)
	drawTextCentered(dst, "SHOP", btn, 1, ColorWhite)

	if stats != nil {
		drawText(dst, stats.String(), 8+ox, 140+oy, 1, ColorWhite.WithAlpha(0.7))
	}
}

// drawText draws s with its top-left corner at (x, y).
func drawText(dst *ebiten.Image, s string, x, y, scale float64, c Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c.toRGBA())
	text.Draw(dst, s, hudFace, op)
}

// drawTextOutlined draws s over a one-pixel black stroke.
func drawTextOutlined(dst *ebiten.Image, s string, x, y, scale float64, c Color) {
	for _, d := range [...]Vec2{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		drawText(dst, s, x+d.X*scale, y+d.Y*scale, scale, colorStroke)
	}
	drawText(dst, s, x, y, scale, c)
}

// drawTextCentered centers s inside r.
func drawTextCentered(dst *ebiten.Image, s string, r Rect, scale float64, c Color) {
	w, h := text.Measure(s, hudFace, 0)
	drawText(dst, s, r.X+(r.Width-w*scale)/2, r.Y+(r.Height-h*scale)/2, scale, c)
}

func humanCoins(n int) string {
	return humanize.Comma(int64(n)) + " coins"
}
