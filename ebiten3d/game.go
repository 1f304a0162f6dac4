package ebiten3d

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/solarlune/stadium3d"
	"github.com/solarlune/stadium3d/scene"
	"golang.org/x/image/font/basicfont"
)

// Frames a key has to be held before it starts repeating, and the frames between repeats.
const (
	keyRepeatDelay    = 15
	keyRepeatInterval = 3
)

// Game is an ebiten.Game that shows a stadium and lets the user orbit around it.
//
// A / D turn about Z, W / S about Y, X / Z about X; J / K zoom out and in; N toggles between day and night;
// F1 toggles the help text, F4 toggles fullscreen, and Escape quits.
type Game struct {
	Width, Height int
	DrawDebugText bool

	Generator *stadium3d.Generator
	Textures  stadium3d.TextureSet
	Renderer  *Renderer
	Logger    *slog.Logger

	// Layouts, if set, delivers replacement Configs (see stadium3d.LayoutWatcher). Only the Layout is applied;
	// the textures stay as they were loaded.
	Layouts <-chan stadium3d.Config

	submitted *stadium3d.Mesh
}

// NewGame creates a Game that draws what the Generator builds, with the given Textures.
func NewGame(gen *stadium3d.Generator, textures stadium3d.TextureSet) *Game {

	game := &Game{
		Width:         1200,
		Height:        800,
		DrawDebugText: true,
		Generator:     gen,
		Textures:      textures,
		Renderer:      NewRenderer(scene.NewScene(3)),
		Logger:        slog.Default(),
	}

	return game

}

func keyRepeated(key ebiten.Key) bool {
	if inpututil.IsKeyJustPressed(key) {
		return true
	}
	d := inpututil.KeyPressDuration(key)
	return d >= keyRepeatDelay && (d-keyRepeatDelay)%keyRepeatInterval == 0
}

func (g *Game) Update() error {

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF4) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.DrawDebugText = !g.DrawDebugText
	}

	sc := g.Renderer.Scene
	camera := sc.Camera

	if keyRepeated(ebiten.KeyA) {
		camera.Rotate(scene.AxisZ, scene.RotationStep)
	}
	if keyRepeated(ebiten.KeyD) {
		camera.Rotate(scene.AxisZ, -scene.RotationStep)
	}
	if keyRepeated(ebiten.KeyW) {
		camera.Rotate(scene.AxisY, scene.RotationStep)
	}
	if keyRepeated(ebiten.KeyS) {
		camera.Rotate(scene.AxisY, -scene.RotationStep)
	}
	if keyRepeated(ebiten.KeyX) {
		camera.Rotate(scene.AxisX, scene.RotationStep)
	}
	if keyRepeated(ebiten.KeyZ) {
		camera.Rotate(scene.AxisX, -scene.RotationStep)
	}
	if keyRepeated(ebiten.KeyJ) {
		camera.Zoom(scene.ZoomStep)
	}
	if keyRepeated(ebiten.KeyK) {
		camera.Zoom(-scene.ZoomStep)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		sc.DayNight.Toggle()
		g.Logger.Debug("day/night toggled", "night", sc.DayNight.Night())
	}

	sc.DayNight.Update(1 / float32(ebiten.TPS()))

	select {
	case cfg, ok := <-g.Layouts:
		if !ok {
			g.Layouts = nil
			break
		}
		g.Generator.SetLayout(cfg.Layout)
		g.Logger.Info("layout applied", "layout", cfg.Layout.Name)
	default:
	}

	// The Generator only rebuilds when its Layout changed, so this is cheap on most frames.
	mesh, err := g.Generator.Mesh()
	if err != nil {
		return err
	}

	if mesh != g.submitted {
		if err := g.Renderer.Submit(mesh, g.Textures); err != nil {
			return err
		}
		g.submitted = mesh
	}

	return nil

}

func (g *Game) Draw(screen *ebiten.Image) {

	g.Renderer.Draw(screen)

	if g.DrawDebugText {
		camera := g.Renderer.Scene.Camera
		txt := fmt.Sprintf(
			"FPS: %.0f\nTriangles: %d\nRotation: %.0f, %.0f, %.0f\nDistance: %.1f\n\nA/D, W/S, X/Z: Rotate\nJ/K: Zoom\nN: Day / night\nF1: Toggle this text\nF4: Toggle fullscreen\nESC: Quit",
			ebiten.ActualFPS(),
			g.Renderer.DrawnTriangles,
			camera.RotationX, camera.RotationY, camera.RotationZ,
			camera.Distance,
		)
		text.Draw(screen, txt, basicfont.Face7x13, 8, 16, color.RGBA{255, 255, 255, 255})
	}

}

func (g *Game) Layout(w, h int) (int, int) {
	return g.Width, g.Height
}

// Run opens a window and runs the Game until it's closed or Escape is pressed.
func Run(game *Game, title string) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(game.Width, game.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(game)
}
