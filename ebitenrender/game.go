package ebitenrender

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/solarlune/gasket"
	"github.com/solarlune/gasket/colors"
	"golang.org/x/image/font/basicfont"
)

// Game is an ebiten.Game that renders a gasket exactly once, into an offscreen image, on its first Draw.
// Every frame after that only presents the finished image; nothing is rendered again.
type Game struct {
	Width, Height int
	Title         string
	Options       *gasket.RenderOptions // Options used for the single render; nil uses gasket.DefaultRenderOptions().
	DrawCaption   bool                  // If a caption with the depth and vertex count is stamped onto the render. Defaults to true.

	offscreen *ebiten.Image
	rendered  bool
	frame     *gasket.Frame
	err       error
}

// NewGame creates a new Game of the given size.
func NewGame(width, height int) *Game {
	return &Game{
		Width:       width,
		Height:      height,
		Title:       "Sierpinski Gasket",
		Options:     gasket.DefaultRenderOptions(),
		DrawCaption: true,
	}
}

// Frame returns information about the render, or nil if the Game hasn't rendered yet.
func (g *Game) Frame() *gasket.Frame {
	return g.frame
}

// Update returns the error from the render, if there was one, which stops the game.
func (g *Game) Update() error {
	return g.err
}

func (g *Game) Draw(screen *ebiten.Image) {

	if !g.rendered {
		g.rendered = true
		if g.err = g.checkSize(); g.err == nil {
			g.offscreen = ebiten.NewImage(g.Width, g.Height)
			g.err = g.render()
		}
	}

	if g.err != nil {
		return
	}

	screen.DrawImage(g.offscreen, nil)

}

// checkSize returns an error wrapping gasket.ErrNoContext if the Game has no area to render to.
func (g *Game) checkSize() error {
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("ebitenrender: game is %dx%d: %w", g.Width, g.Height, gasket.ErrNoContext)
	}
	return nil
}

func (g *Game) render() error {

	backend, err := NewBackend(g.offscreen)
	if err != nil {
		return err
	}

	g.frame, err = gasket.Render(backend, g.Options)
	if err != nil {
		return err
	}

	if g.DrawCaption {
		caption := fmt.Sprintf("Depth: %d\nVertices: %d", g.frame.Depth, g.frame.VertexCount)
		text.Draw(g.offscreen, caption, basicfont.Face7x13, 4, 16, colors.White().ToRGBA64())
	}

	return nil

}

func (g *Game) Layout(w, h int) (int, int) {
	return g.Width, g.Height
}

// Run opens a non-resizable window and runs the Game in it until the window is closed. A render failure
// is returned as-is; a zero-size Game or a failure to start Ebitengine at all is wrapped with gasket.ErrNoContext.
func Run(game *Game) error {

	if err := game.checkSize(); err != nil {
		return err
	}

	ebiten.SetWindowTitle(game.Title)
	ebiten.SetWindowSize(game.Width, game.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	err := ebiten.RunGame(game)

	if game.err != nil {
		return game.err
	}

	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("ebitenrender: %v: %w", err, gasket.ErrNoContext)
	}

	return nil

}
