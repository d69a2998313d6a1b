package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"darkvale/pkg/engine/input"
	"darkvale/pkg/engine/logging"
	"darkvale/pkg/game/config"
	"darkvale/pkg/game/devtools"
	"darkvale/pkg/game/generator"
	"darkvale/pkg/game/global"
	"darkvale/pkg/game/mapmode"
	"darkvale/pkg/game/renderer"
	ebitenrenderer "darkvale/pkg/game/renderer/ebiten"
	"darkvale/pkg/game/renderer/tui"
	"darkvale/pkg/game/state"
)

// loadMap reads a map file, builds the developer map for devtools.DevMapName
// or generates one for generator.RandomMapName. Generated maps are named after their
// generator and seed so their saves never land on another layout.
func loadMap(path, genName string, seed int64, rng *rand.Rand) (*config.MapData, string, error) {
	switch path {
	case devtools.DevMapName:
		return devtools.DevMapData(), devtools.DevMapName, nil
	case generator.RandomMapName:
		g, err := generator.ByName(genName)
		if err != nil {
			return nil, "", err
		}
		name := fmt.Sprintf("%s-%s-%d", generator.RandomMapName, genName, seed)
		return g.Generate(rng, generator.DefaultTilesX, generator.DefaultTilesY), name, nil
	}
	md, err := config.LoadMapData(path)
	if err != nil {
		return nil, "", err
	}
	return md, strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)), nil
}

func main() {
	mapPath := flag.String("map", "data/maps/demo.yaml", "map file to load (\"dev\" for the developer testing map, \"random\" for a generated one)")
	genName := flag.String("generator", "bsp", "generator for -map random: bsp or walker")
	backend := flag.String("renderer", renderer.BackendEbiten, "display backend: ebiten or tui")
	ticks := flag.Int("ticks", 0, "run this many ticks without input, print the last frame and exit (tui only)")
	lang := flag.String("lang", "", "language (defaults to the saved preference)")
	localeDir := flag.String("locales", "locales", "directory holding the translations")
	debug := flag.Bool("debug", false, "show the collision grid and camera information")
	dump := flag.Bool("dump", false, "write the collision map to map.txt and exit")
	seed := flag.Int64("seed", 0, "random seed (0 uses the clock)")
	flag.Parse()

	logging.SetColor(input.IsTerminal())
	prefs := config.Open()

	language := *lang
	if language == "" {
		language = prefs.Language()
	}
	if used := config.InitTranslations(*localeDir, language); used != prefs.Language() {
		prefs.SetLanguage(used)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	md, mapName, err := loadMap(*mapPath, *genName, *seed, rng)
	if err != nil {
		log.Fatalf("Failed to load map: %v", err)
	}
	m := mapmode.Load(md, global.NewMedia(), rng, prefs)
	m.SetShowHudName(prefs.HudNameOnIntro())
	if *debug || prefs.DebugInfo() {
		m.SetDebugInfo(true)
	}

	if *dump {
		path, err := devtools.DumpMap(m, ".")
		if err != nil {
			log.Fatalf("Failed to dump map: %v", err)
		}
		log.Printf("Map written to %s", path)
		return
	}

	sess := state.NewSession(m, mapName, config.NewSaveStore(prefs.Storage()))
	if restored, err := sess.Restore(); err != nil {
		logging.Warnf("Main", "could not restore the saved game: %v", err)
	} else if restored {
		logging.Infof("Main", "restored the saved game of %s", mapName)
	}

	if *ticks > 0 {
		t := tui.New()
		if err := t.Init(); err != nil {
			log.Fatalf("Failed to initialize the tui renderer: %v", err)
		}
		t.SetOutput(os.Stdout, false)
		if err := t.RunHeadless(sess, *ticks); err != nil {
			log.Fatalf("Headless run failed: %v", err)
		}
		return
	}

	r, err := renderer.Select(*backend, map[string]func() renderer.Renderer{
		renderer.BackendTUI:    func() renderer.Renderer { return tui.New() },
		renderer.BackendEbiten: func() renderer.Renderer { return ebitenrenderer.New(prefs) },
	})
	if err != nil {
		log.Fatalf("%v", err)
	}
	if err := r.Init(); err != nil {
		log.Fatalf("Failed to initialize the %s renderer: %v", *backend, err)
	}
	if err := r.Run(sess); err != nil {
		log.Fatalf("%v", err)
	}
}
