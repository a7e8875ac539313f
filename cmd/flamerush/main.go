// Command flamerush runs the Flame Rush arcade game.
package main

import (
	"flag"
	"log"

	"github.com/phanxgames/flamerush"
)

var (
	configPath     = flag.String("config", "", "YAML file overlaid on the default tuning")
	dbPath         = flag.String("db", "flamerush.db", "sqlite profile database, or :memory:")
	debugFlag      = flag.Bool("debug", false, "log loop stats and show FPS and entity counts")
	muteFlag       = flag.Bool("mute", false, "disable sound effects")
	scriptPath     = flag.String("script", "", "JSON input script to play instead of the mouse")
	screenshotPath = flag.String("screenshots", "screenshots", "directory for scripted screenshots")
)

func main() {
	flag.Parse()

	cfg := flamerush.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = flamerush.LoadConfig(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	if *debugFlag {
		cfg.Debug = true
	}

	err := flamerush.Run(flamerush.RunConfig{
		Config:        cfg,
		DBPath:        *dbPath,
		Mute:          *muteFlag,
		ScriptPath:    *scriptPath,
		ScreenshotDir: *screenshotPath,
	})
	if err != nil {
		log.Fatal(err)
	}
}
