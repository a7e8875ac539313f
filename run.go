package flamerush

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// MemoryDB is the DBPath that selects the in-process MemoryStore.
const MemoryDB = ":memory:"

// RunConfig configures Run.
type RunConfig struct {
	Config Config
	// DBPath is the sqlite database file. Empty or MemoryDB keeps the
	// profile in memory for this process only.
	DBPath string
	// Mute disables audio regardless of Config.Audio.
	Mute bool
	// ScriptPath, when set, drives the game from a JSON test script instead
	// of the mouse and touchscreen, and exits when the script ends.
	ScriptPath    string
	ScreenshotDir string
}

// Run opens the store, builds the game, and blocks in the Ebitengine loop
// until the window closes or a script finishes.
func Run(rc RunConfig) error {
	cfg := rc.Config
	store, closeStore, err := openStore(rc.DBPath)
	if err != nil {
		return err
	}
	defer closeStore()

	g, err := NewGame(cfg, store, nil)
	if err != nil {
		return err
	}
	if rc.ScreenshotDir != "" {
		g.ScreenshotDir = rc.ScreenshotDir
	}

	if cfg.Audio.Enabled && !rc.Mute {
		snd, err := newEbitenSound(cfg.Audio)
		if err != nil {
			logger.Printf("audio disabled: %v", err)
		} else {
			g.SetSound(snd)
		}
	}

	if rc.ScriptPath != "" {
		data, err := os.ReadFile(rc.ScriptPath)
		if err != nil {
			return fmt.Errorf("flamerush: read script: %w", err)
		}
		runner, err := LoadTestScript(data)
		if err != nil {
			return fmt.Errorf("flamerush: %s: %w", rc.ScriptPath, err)
		}
		g.SetTestRunner(runner, true)
		g.DisableDeviceInput()
	}

	w, h := cfg.Window.Width, cfg.Window.Height
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(int(float64(w)*cfg.Window.Scale), int(float64(h)*cfg.Window.Scale))
	ebiten.SetTPS(cfg.Window.TPS)
	return ebiten.RunGame(g)
}

// openStore returns the Store for path and a func that releases it.
func openStore(path string) (Store, func(), error) {
	if path == "" || path == MemoryDB {
		return NewMemoryStore(), func() {}, nil
	}
	st, err := OpenSQLiteStore(path)
	if err != nil {
		return nil, nil, err
	}
	return st, func() {
		if err := st.Close(); err != nil {
			logger.Printf("close store: %v", err)
		}
	}, nil
}
