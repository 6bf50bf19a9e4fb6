//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"ledray/internal/app"
	"ledray/internal/led"
	"ledray/internal/wled"
	"ledray/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	lvl, err := world.Load(cfg.Level)
	if err != nil {
		log.Fatal(err)
	}

	mapper, err := led.NewMapper(cfg.MatrixW, cfg.MatrixH, cfg.Layout())
	if err != nil {
		log.Fatal(err)
	}

	client := wled.New(cfg.DeviceHost, cfg.StreamTimeout)
	log.Printf("streaming %dx%d (%s wiring) to %s", cfg.MatrixW, cfg.MatrixH, cfg.Wiring, client.URL())

	session := app.NewSession(lvl, cfg, mapper, client)
	game := app.New(session, cfg.Scale, cfg.Debug, client)

	ebiten.SetWindowTitle("ledray — " + lvl.Name)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.RenderW*cfg.Scale, cfg.RenderH*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	log.Printf("done: %d frames sent to device, %d dropped", client.Frames(), client.Drops())
}
