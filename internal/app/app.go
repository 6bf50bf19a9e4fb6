//go:build ebiten

package app

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Session to the ebiten.Game interface: it polls input,
// advances the session, and scales the rendered frame up to the window.
type Game struct {
	session *Session
	frames  StreamStats

	img   *ebiten.Image
	scale int
	debug bool
}

// New constructs a Game for the provided session. stats may be nil when no
// device is configured.
func New(session *Session, scale int, debug bool, stats StreamStats) *Game {
	f := session.Frame()
	return &Game{
		session: session,
		frames:  stats,
		img:     ebiten.NewImage(f.W, f.H),
		scale:   scale,
		debug:   debug,
	}
}

// Update polls the keyboard and advances the session by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.session.Tick(readInput())
	return nil
}

func readInput() Input {
	return Input{
		TurnLeft:    ebiten.IsKeyPressed(ebiten.KeyLeft),
		TurnRight:   ebiten.IsKeyPressed(ebiten.KeyRight),
		Forward:     ebiten.IsKeyPressed(ebiten.KeyUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Backward:    ebiten.IsKeyPressed(ebiten.KeyDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		StrafeLeft:  ebiten.IsKeyPressed(ebiten.KeyA),
		StrafeRight: ebiten.IsKeyPressed(ebiten.KeyD),
		Fire:        ebiten.IsKeyPressed(ebiten.KeySpace),
	}
}

// Draw uploads the rendered frame and scales it to the window.
func (g *Game) Draw(screen *ebiten.Image) {
	g.img.WritePixels(g.session.Frame().Pix())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.img, op)

	if g.debug {
		msg := fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
		if g.frames != nil {
			msg += fmt.Sprintf("\nLED: %d sent, %d dropped", g.frames.Frames(), g.frames.Drops())
		}
		ebitenutil.DebugPrint(screen, msg)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	f := g.session.Frame()
	return f.W * g.scale, f.H * g.scale
}
