// Package ebitenview presents softrast Framebuffers in an Ebitengine window.
package ebitenview

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/softrast"
)

// Options controls the window Run opens.
type Options struct {
	WindowWidth, WindowHeight int // The size of the window in pixels.
	Scale                     int // How many window pixels each Framebuffer pixel covers; the Framebuffer is the window size divided by Scale.
	TPS                       int // Ticks (calls to App.Update) per second.
}

// DefaultOptions returns a 900x800 window showing a Framebuffer at a scale of 4, updating 60 times a second.
func DefaultOptions() Options {
	return Options{
		WindowWidth:  900,
		WindowHeight: 800,
		Scale:        4,
		TPS:          60,
	}
}

// App is a program driven by Run.
type App interface {
	// Update is called once per tick with the tick length in seconds. Returning ebiten.Termination closes the window without an error.
	Update(dt float64) error
	// Draw is called once per frame to render into the Framebuffer, which is then presented.
	Draw(fb *softrast.Framebuffer)
}

// Presenter uploads a Framebuffer to an *ebiten.Image and draws it, scaled, onto the screen.
type Presenter struct {
	Scale int // Integer scale factor applied when drawing; values below 1 are treated as 1.
	img   *ebiten.Image
}

// NewPresenter returns a new Presenter drawing at the scale given.
func NewPresenter(scale int) *Presenter {
	return &Presenter{Scale: scale}
}

// Present copies the Framebuffer's pixels into the Presenter's texture and draws it onto the screen from the top-left corner.
func (p *Presenter) Present(screen *ebiten.Image, fb *softrast.Framebuffer) {

	w, h := fb.Size()

	if p.img == nil || p.img.Bounds().Dx() != w || p.img.Bounds().Dy() != h {
		if p.img != nil {
			p.img.Deallocate()
		}
		p.img = ebiten.NewImage(w, h)
	}

	p.img.WritePixels(fb.Image().Pix)

	scale := p.Scale
	if scale < 1 {
		scale = 1
	}

	opt := &ebiten.DrawImageOptions{}
	opt.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(p.img, opt)

}

type game struct {
	app       App
	fb        *softrast.Framebuffer
	presenter *Presenter
	options   Options
}

func (g *game) Update() error {
	return g.app.Update(1 / float64(g.options.TPS))
}

func (g *game) Draw(screen *ebiten.Image) {
	g.app.Draw(g.fb)
	g.presenter.Present(screen, g.fb)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.options.WindowWidth, g.options.WindowHeight
}

// Run opens a window with DefaultOptions and drives the App until the window closes or App.Update returns an error.
func Run(title string, app App) error {
	return RunWithOptions(title, app, DefaultOptions())
}

// RunWithOptions opens a window using the Options given and drives the App until the window closes or App.Update returns an error.
func RunWithOptions(title string, app App, options Options) error {

	defaults := DefaultOptions()
	if options.Scale < 1 {
		options.Scale = defaults.Scale
	}
	if options.TPS < 1 {
		options.TPS = defaults.TPS
	}

	fb, err := softrast.NewFramebuffer(options.WindowWidth/options.Scale, options.WindowHeight/options.Scale)
	if err != nil {
		return fmt.Errorf("ebitenview: %w", err)
	}

	g := &game{
		app:       app,
		fb:        fb,
		presenter: NewPresenter(options.Scale),
		options:   options,
	}

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(options.WindowWidth, options.WindowHeight)
	ebiten.SetTPS(options.TPS)

	softrast.Logger().Info("window opened", "title", title, "width", options.WindowWidth, "height", options.WindowHeight, "scale", options.Scale)

	return ebiten.RunGame(g)

}
