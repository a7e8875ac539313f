package flamerush

import (
	"errors"
)

// ErrGameOver is returned when the shop is opened after the run ended.
var ErrGameOver = errors.New("flamerush: game over")

// ErrShopClosed is returned by Select while the shop is closed.
var ErrShopClosed = errors.New("flamerush: shop is closed")

// rejectMessage is shown when a purchase is refused.
const rejectMessage = "Not enough coins!"

// ShopRow is one catalog entry as the shop presents it.
type ShopRow struct {
	Name     string
	Price    int
	Palette  []Color
	Unlocked bool
	Selected bool
}

// ShopPresenter displays the shop. Implementations render rows and report
// selections back through Shop.Select.
type ShopPresenter interface {
	// Show displays (or refreshes) the panel with the given rows and balance.
	Show(rows []ShopRow, coins int)
	// Hide removes the panel.
	Hide()
	// Reject tells the player a selection was refused.
	Reject(message string)
}

// Shop is the cosmetic shop state machine. It pauses the session while open.
type Shop struct {
	view    ShopPresenter
	session *Session

	// OnSelect is called with the cosmetic name after every successful
	// selection.
	OnSelect func(name string)
}

// NewShop returns a closed shop rendering through view.
func NewShop(view ShopPresenter) *Shop {
	return &Shop{view: view}
}

// IsOpen reports whether the shop is open.
func (sh *Shop) IsOpen() bool {
	return sh.session != nil && sh.session.ShopOpen()
}

// Open pauses s and shows the catalog. It fails after game over.
func (sh *Shop) Open(s *Session) error {
	if err := s.OpenShop(); err != nil {
		return err
	}
	sh.session = s
	sh.refresh()
	return nil
}

// Close hides the panel and resumes the session.
func (sh *Shop) Close() {
	if sh.session == nil {
		return
	}
	sh.session.CloseShop()
	sh.session = nil
	sh.view.Hide()
}

// Rows returns the catalog as currently presented.
func (sh *Shop) Rows() []ShopRow {
	if sh.session == nil {
		return nil
	}
	return shopRows(sh.session.Profile())
}

func shopRows(p *Profile) []ShopRow {
	rows := make([]ShopRow, 0, len(catalog))
	for _, c := range catalog {
		rows = append(rows, ShopRow{
			Name:     c.Name,
			Price:    c.Price,
			Palette:  c.Palette(),
			Unlocked: p.IsUnlocked(c.Name),
			Selected: p.CurrentFlame() == c.Name,
		})
	}
	return rows
}

// Select buys the cosmetic when it is locked and affordable, then makes it
// current. A locked cosmetic the player cannot afford is rejected through
// the presenter and ErrInsufficientCoins is returned with no state changed.
// Persistence failures are logged; the in-game selection still applies.
func (sh *Shop) Select(name string) error {
	if !sh.IsOpen() {
		return ErrShopClosed
	}
	p := sh.session.Profile()

	if !p.IsUnlocked(name) {
		err := p.Purchase(name)
		switch {
		case errors.Is(err, ErrInsufficientCoins):
			sh.view.Reject(rejectMessage)
			return err
		case errors.Is(err, ErrUnknownCosmetic):
			return err
		case err != nil:
			logger.Printf("purchase %s: %v", name, err)
		default:
			logger.Printf("purchased %s: coins=%d", name, p.Coins())
		}
	}

	if err := p.Select(name); err != nil {
		if errors.Is(err, ErrUnknownCosmetic) {
			return err
		}
		logger.Printf("select %s: %v", name, err)
	}
	if sh.OnSelect != nil {
		sh.OnSelect(name)
	}
	sh.refresh()
	return nil
}

func (sh *Shop) refresh() {
	p := sh.session.Profile()
	sh.view.Show(shopRows(p), p.Coins())
}
