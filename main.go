package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/spritesandbox/config"
	"github.com/automoto/spritesandbox/fonts"
	"github.com/automoto/spritesandbox/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(opts scenes.Options) *Game {
	fonts.LoadDefaults()

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewLandingScene(g, opts, nil)

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	var opts scenes.Options
	flag.StringVar(&opts.ImagePath, "sheet", "", "spritesheet image to open on start")
	flag.StringVar(&opts.MetaPath, "meta", "", "metadata (.json or .yaml) for -sheet")
	flag.BoolVar(&opts.Scrolling, "scrolling", false, "use the wide scrolling level instead of a single ground")
	flag.Float64Var(&opts.Scale, "scale", config.Mapper.DefaultScale, "initial sprite scale")
	flag.BoolVar(&opts.Watch, "watch", false, "reload -sheet and -meta when they change on disk")
	flag.BoolVar(&config.Debug.DrawBoxes, "debug", false, "draw collision boxes")
	flag.Parse()

	if (opts.ImagePath == "") != (opts.MetaPath == "") {
		log.Fatal("-sheet and -meta must be given together")
	}
	if opts.Scale < config.Mapper.MinScale || opts.Scale > config.Mapper.MaxScale {
		log.Fatalf("-scale must be between %.2f and %.2f", config.Mapper.MinScale, config.Mapper.MaxScale)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(opts)); err != nil {
		log.Fatal(err)
	}
}
