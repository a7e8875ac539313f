package flamerush

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInsufficientCoins is returned when a purchase costs more than the
// player owns.
var ErrInsufficientCoins = errors.New("flamerush: not enough coins")

// ErrUnknownCosmetic is returned for names missing from the catalog.
var ErrUnknownCosmetic = errors.New("flamerush: unknown cosmetic")

// Profile is the persisted part of the game state: currency, best score,
// selected cosmetic, and unlocks. Every mutation is written to the Store
// immediately; in-memory state is updated first, so a failed write leaves
// the session consistent and only the durable copy behind.
type Profile struct {
	store Store

	coins        int
	highScore    int
	currentFlame string
	unlocked     map[string]bool
}

// LoadProfile reads a profile from the store. Absent or unparsable numbers
// read as zero and an unknown selected cosmetic reads as the default.
func LoadProfile(store Store) (*Profile, error) {
	p := &Profile{store: store, unlocked: make(map[string]bool)}

	var err error
	if p.coins, err = readInt(store, KeyCoins); err != nil {
		return nil, err
	}
	if p.highScore, err = readInt(store, KeyHighScore); err != nil {
		return nil, err
	}

	for _, c := range catalog {
		v, _, err := store.Get(UnlockKey(c.Name))
		if err != nil {
			return nil, fmt.Errorf("flamerush: load %s: %w", UnlockKey(c.Name), err)
		}
		if v == "true" {
			p.unlocked[c.Name] = true
		}
	}

	// A stored flame that is unknown or not owned falls back to the default.
	flame, ok, err := store.Get(KeyCurrentFlame)
	if err != nil {
		return nil, fmt.Errorf("flamerush: load %s: %w", KeyCurrentFlame, err)
	}
	if _, known := LookupCosmetic(flame); !ok || !known || !p.IsUnlocked(flame) {
		flame = DefaultCosmetic
	}
	p.currentFlame = flame
	return p, nil
}

func readInt(store Store, key string) (int, error) {
	v, ok, err := store.Get(key)
	if err != nil {
		return 0, fmt.Errorf("flamerush: load %s: %w", key, err)
	}
	if !ok {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, nil
	}
	return n, nil
}

// Coins returns the coin balance.
func (p *Profile) Coins() int { return p.coins }

// HighScore returns the best recorded score.
func (p *Profile) HighScore() int { return p.highScore }

// CurrentFlame returns the selected cosmetic name.
func (p *Profile) CurrentFlame() string { return p.currentFlame }

// IsUnlocked reports whether a cosmetic is owned. The default cosmetic is
// always owned regardless of stored flags.
func (p *Profile) IsUnlocked(name string) bool {
	return name == DefaultCosmetic || p.unlocked[name]
}

// AddCoins credits n coins and persists the balance.
func (p *Profile) AddCoins(n int) error {
	p.coins += n
	return p.set(KeyCoins, strconv.Itoa(p.coins))
}

// Purchase unlocks a cosmetic, deducting its price once. Buying an owned
// cosmetic is a no-op. Returns ErrInsufficientCoins without changing any
// state when the balance is too low.
func (p *Profile) Purchase(name string) error {
	c, ok := LookupCosmetic(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCosmetic, name)
	}
	if p.IsUnlocked(name) {
		return nil
	}
	if p.coins < c.Price {
		return ErrInsufficientCoins
	}
	p.coins -= c.Price
	p.unlocked[name] = true
	if err := p.set(UnlockKey(name), "true"); err != nil {
		return err
	}
	return p.set(KeyCoins, strconv.Itoa(p.coins))
}

// Select makes an owned cosmetic current and persists the choice.
func (p *Profile) Select(name string) error {
	if _, ok := LookupCosmetic(name); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCosmetic, name)
	}
	if !p.IsUnlocked(name) {
		return fmt.Errorf("flamerush: cosmetic %q is locked", name)
	}
	p.currentFlame = name
	return p.set(KeyCurrentFlame, name)
}

// RecordScore raises the high score to score when it is higher. It reports
// whether the high score changed.
func (p *Profile) RecordScore(score int) (bool, error) {
	if score <= p.highScore {
		return false, nil
	}
	p.highScore = score
	return true, p.set(KeyHighScore, strconv.Itoa(score))
}

func (p *Profile) set(key, value string) error {
	if err := p.store.Set(key, value); err != nil {
		return fmt.Errorf("flamerush: save %s: %w", key, err)
	}
	return nil
}
